// Package sound plays an audible alert through the host platform's native
// player utility.
package sound

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/nocoo/skill-task-notifier/internal/channel"
	"github.com/nocoo/skill-task-notifier/internal/exec"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

// playTimeout bounds every player invocation.
const playTimeout = 5 * time.Second

// ErrSoundNotFound is returned when no playable sound file exists.
var ErrSoundNotFound = errors.New("sound not found")

// macSoundDir is where macOS system sounds live.
const macSoundDir = "/System/Library/Sounds"

// linuxPlayers are tried in order; paplay (PulseAudio) before aplay (ALSA).
var linuxPlayers = []string{"paplay", "aplay"}

// linuxSoundFiles are the freedesktop theme candidates, tried in order.
var linuxSoundFiles = []string{
	"/usr/share/sounds/freedesktop/stereo/complete.oga",
	"/usr/share/sounds/freedesktop/stereo/message.oga",
	"/usr/share/sounds/freedesktop/stereo/dialog-information.oga",
}

// windowsSoundTemplate is the PowerShell script body playing a SystemSound.
const windowsSoundTemplate = `
$sound = New-Object System.Media.SystemSound::%s
$sound.Play()
`

// strategy plays the alert for one severity on a specific platform.
type strategy func(ctx context.Context, sev severity.Severity) error

// Option configures a Player.
type Option func(*Player)

// WithStatFunc replaces the file existence check (for testing).
func WithStatFunc(statFunc func(string) bool) Option {
	return func(p *Player) {
		p.exists = statFunc
	}
}

// Player plays system sounds through the host platform's player utility.
type Player struct {
	runner exec.CommandRunner
	tools  exec.ToolChecker
	log    logger.Logger
	goos   string
	exists func(string) bool
	play   strategy
}

// New creates a Player for the current host OS.
func New(runner exec.CommandRunner, tools exec.ToolChecker, log logger.Logger, opts ...Option) *Player {
	return NewForOS(runtime.GOOS, runner, tools, log, opts...)
}

// NewForOS creates a Player for a specific OS name.
func NewForOS(
	goos string,
	runner exec.CommandRunner,
	tools exec.ToolChecker,
	log logger.Logger,
	opts ...Option,
) *Player {
	p := &Player{
		runner: runner,
		tools:  tools,
		log:    log,
		goos:   goos,
		exists: fileExists,
	}

	switch goos {
	case "darwin":
		p.play = p.playDarwin
	case "linux":
		p.play = p.playLinux
	case "windows":
		p.play = p.playWindows
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// fileExists is the default file existence check.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Name returns the channel display name.
func (*Player) Name() string {
	return "Sound"
}

// Send plays the severity's alert sound. The message is unused; sounds are
// selected by severity alone.
func (p *Player) Send(ctx context.Context, sev severity.Severity, _ string) error {
	if p.play == nil {
		return errors.Wrapf(channel.ErrUnsupportedOS, "%s", p.goos)
	}

	return p.play(ctx, sev)
}

// playDarwin plays the severity's system sound via afplay. A missing sound
// file is a failure, not a fallback.
func (p *Player) playDarwin(ctx context.Context, sev severity.Severity) error {
	soundPath := filepath.Join(macSoundDir, sev.MacSound()+".aiff")

	if !p.exists(soundPath) {
		return errors.Wrapf(ErrSoundNotFound, "%s", soundPath)
	}

	ctx, cancel := context.WithTimeout(ctx, playTimeout)
	defer cancel()

	result := p.runner.Run(ctx, "afplay", soundPath)
	if result.Failed() {
		return errors.Wrapf(result.Err, "afplay %s", soundPath)
	}

	p.log.Debug("sound played", "sound", sev.MacSound())

	return nil
}

// playLinux tries each available player against each existing candidate
// sound file, returning on the first combination that succeeds.
func (p *Player) playLinux(ctx context.Context, _ severity.Severity) error {
	for _, player := range linuxPlayers {
		if !p.tools.IsAvailable(player) {
			continue
		}

		for _, soundFile := range linuxSoundFiles {
			if !p.exists(soundFile) {
				continue
			}

			playCtx, cancel := context.WithTimeout(ctx, playTimeout)
			result := p.runner.Run(playCtx, player, soundFile)

			cancel()

			if result.Success() {
				p.log.Debug("sound played", "player", player, "file", filepath.Base(soundFile))

				return nil
			}
		}
	}

	return errors.Wrap(ErrSoundNotFound, "install: sudo apt install freedesktop-sound-theme")
}

// playWindows plays the severity's SystemSound via PowerShell.
func (p *Player) playWindows(ctx context.Context, sev severity.Severity) error {
	script := fmt.Sprintf(windowsSoundTemplate, sev.WindowsSound())

	ctx, cancel := context.WithTimeout(ctx, playTimeout)
	defer cancel()

	result := p.runner.Run(ctx, "powershell", "-NoProfile", "-Command", script)
	if result.Failed() {
		return errors.Wrapf(result.Err, "powershell sound %s", sev.WindowsSound())
	}

	p.log.Debug("sound played", "sound", sev.WindowsSound())

	return nil
}
