package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nocoo/skill-task-notifier/internal/exec"
	"github.com/nocoo/skill-task-notifier/pkg/config"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

// ConfigChecker verifies that the configuration file exists and parses.
type ConfigChecker struct {
	path    string
	loadErr error
}

// NewConfigChecker creates a ConfigChecker for a config path and the error
// (if any) from loading it.
func NewConfigChecker(path string, loadErr error) *ConfigChecker {
	return &ConfigChecker{path: path, loadErr: loadErr}
}

// Name returns the check name.
func (*ConfigChecker) Name() string {
	return "Configuration file"
}

// Category returns the check category.
func (*ConfigChecker) Category() Category {
	return CategoryConfig
}

// Check verifies the configuration file.
func (c *ConfigChecker) Check(context.Context) CheckResult {
	if c.loadErr != nil {
		return NewCheckResult(c.Name(), c.Category(), SeverityError, StatusFail, c.loadErr.Error())
	}

	return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, c.path)
}

// PushKeyChecker verifies that a Bark device key is configured.
type PushKeyChecker struct {
	cfg *config.Config
}

// NewPushKeyChecker creates a PushKeyChecker.
func NewPushKeyChecker(cfg *config.Config) *PushKeyChecker {
	return &PushKeyChecker{cfg: cfg}
}

// Name returns the check name.
func (*PushKeyChecker) Name() string {
	return "Bark device key"
}

// Category returns the check category.
func (*PushKeyChecker) Category() Category {
	return CategoryPush
}

// Check verifies the Bark key. A missing key only disables the push
// channel, so it is a warning rather than an error.
func (c *PushKeyChecker) Check(context.Context) CheckResult {
	if c.cfg == nil {
		return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusSkipped, "config not loaded")
	}

	if c.cfg.Key() == "" {
		return NewCheckResult(
			c.Name(), c.Category(), SeverityWarning, StatusFail,
			"bark_key is empty; the push channel will be skipped",
		).WithDetails("set bark_key in config.json or TASK_NOTIFIER_BARK_KEY")
	}

	return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, fmt.Sprintf("server: %s", c.cfg.Server()))
}

// desktopTools maps OS names to the popup utility they need.
var desktopTools = map[string]string{
	"darwin":  "osascript",
	"linux":   "notify-send",
	"windows": "powershell",
}

// DesktopToolChecker verifies the popup utility for the host OS.
type DesktopToolChecker struct {
	goos  string
	tools exec.ToolChecker
}

// NewDesktopToolChecker creates a DesktopToolChecker.
func NewDesktopToolChecker(goos string, tools exec.ToolChecker) *DesktopToolChecker {
	return &DesktopToolChecker{goos: goos, tools: tools}
}

// Name returns the check name.
func (*DesktopToolChecker) Name() string {
	return "Desktop popup utility"
}

// Category returns the check category.
func (*DesktopToolChecker) Category() Category {
	return CategoryDesktop
}

// Check verifies the platform popup utility is in PATH.
func (c *DesktopToolChecker) Check(context.Context) CheckResult {
	tool, ok := desktopTools[c.goos]
	if !ok {
		return NewCheckResult(
			c.Name(), c.Category(), SeverityInfo, StatusSkipped,
			fmt.Sprintf("unsupported OS: %s", c.goos),
		)
	}

	if !c.tools.IsAvailable(tool) {
		result := NewCheckResult(
			c.Name(), c.Category(), SeverityWarning, StatusFail,
			fmt.Sprintf("%s not found in PATH", tool),
		)

		if c.goos == "linux" {
			result = result.WithDetails("install: sudo apt install libnotify-bin")
		}

		return result
	}

	return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, tool)
}

// SoundToolChecker verifies the sound player for the host OS.
type SoundToolChecker struct {
	goos   string
	tools  exec.ToolChecker
	exists func(string) bool
}

// NewSoundToolChecker creates a SoundToolChecker.
func NewSoundToolChecker(goos string, tools exec.ToolChecker) *SoundToolChecker {
	return &SoundToolChecker{
		goos:  goos,
		tools: tools,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Name returns the check name.
func (*SoundToolChecker) Name() string {
	return "Sound player"
}

// Category returns the check category.
func (*SoundToolChecker) Category() Category {
	return CategorySound
}

// Check verifies a sound player is usable on the host OS.
func (c *SoundToolChecker) Check(context.Context) CheckResult {
	switch c.goos {
	case "darwin":
		if !c.tools.IsAvailable("afplay") {
			return NewCheckResult(c.Name(), c.Category(), SeverityWarning, StatusFail, "afplay not found in PATH")
		}

		return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, "afplay")

	case "linux":
		player := c.tools.FindTool("paplay", "aplay")
		if player == "" {
			return NewCheckResult(
				c.Name(), c.Category(), SeverityWarning, StatusFail,
				"no player found in PATH (tried paplay, aplay)",
			)
		}

		if !c.exists("/usr/share/sounds/freedesktop/stereo/complete.oga") {
			return NewCheckResult(
				c.Name(), c.Category(), SeverityWarning, StatusFail,
				"freedesktop sound theme not installed",
			).WithDetails("install: sudo apt install freedesktop-sound-theme")
		}

		return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, player)

	case "windows":
		if !c.tools.IsAvailable("powershell") {
			return NewCheckResult(c.Name(), c.Category(), SeverityWarning, StatusFail, "powershell not found in PATH")
		}

		return NewCheckResult(c.Name(), c.Category(), SeverityInfo, StatusPass, "powershell")

	default:
		return NewCheckResult(
			c.Name(), c.Category(), SeverityInfo, StatusSkipped,
			fmt.Sprintf("unsupported OS: %s", c.goos),
		)
	}
}

// SeverityTableChecker verifies the severity metadata table has a complete
// entry for every level.
type SeverityTableChecker struct{}

// NewSeverityTableChecker creates a SeverityTableChecker.
func NewSeverityTableChecker() *SeverityTableChecker {
	return &SeverityTableChecker{}
}

// Name returns the check name.
func (*SeverityTableChecker) Name() string {
	return "Severity metadata"
}

// Category returns the check category.
func (*SeverityTableChecker) Category() Category {
	return CategoryConfig
}

// Check verifies every severity has all metadata fields populated.
func (c *SeverityTableChecker) Check(context.Context) CheckResult {
	var incomplete []string

	for _, sev := range severity.All {
		m := severity.Lookup(sev)
		if m.Title == "" || m.Icon == "" || m.BarkSound == "" || m.MacSound == "" || m.WindowsSound == "" {
			incomplete = append(incomplete, sev.String())
		}
	}

	if len(incomplete) > 0 {
		return NewCheckResult(
			c.Name(), c.Category(), SeverityError, StatusFail,
			fmt.Sprintf("incomplete entries: %s", strings.Join(incomplete, ", ")),
		)
	}

	return NewCheckResult(
		c.Name(), c.Category(), SeverityInfo, StatusPass,
		fmt.Sprintf("%d levels defined", len(severity.All)),
	)
}
