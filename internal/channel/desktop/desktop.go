// Package desktop shows native desktop popup notifications.
//
// The platform strategy is selected once at construction from the host OS
// name, so tests can substitute any platform (or an unsupported one) without
// touching per-call branching.
package desktop

import (
	"context"
	"fmt"
	osexec "os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/nocoo/skill-task-notifier/internal/channel"
	"github.com/nocoo/skill-task-notifier/internal/exec"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

const (
	// popupTimeout bounds osascript and notify-send invocations.
	popupTimeout = 5 * time.Second

	// windowsPopupTimeout bounds the PowerShell toast invocation, which is
	// noticeably slower to start.
	windowsPopupTimeout = 10 * time.Second

	// toastAppID is the application name shown by the Windows toast.
	toastAppID = "Claude Task Notifier"
)

// toastTemplate is the PowerShell script body for a Windows toast
// notification, with title and message interpolated.
const toastTemplate = `
Add-Type -AssemblyName Windows.UI.Notifications
Add-Type -AssemblyName Windows.Data.Xml.Dom

[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom, ContentType = WindowsRuntime] | Out-Null

$template = @"
<toast>
    <visual>
        <binding template="ToastGeneric">
            <text>%s</text>
            <text>%s</text>
        </binding>
    </visual>
</toast>
"@

$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml($template)
$toast = New-Object Windows.UI.Notifications.ToastNotification $xml
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("%s").Show($toast)
`

// strategy sends one popup on a specific platform.
type strategy func(ctx context.Context, title, message string) error

// Notifier shows desktop popups through the host platform's native utility.
type Notifier struct {
	runner exec.CommandRunner
	log    logger.Logger
	goos   string
	send   strategy
}

// New creates a Notifier for the current host OS.
func New(runner exec.CommandRunner, log logger.Logger) *Notifier {
	return NewForOS(runtime.GOOS, runner, log)
}

// NewForOS creates a Notifier for a specific OS name.
func NewForOS(goos string, runner exec.CommandRunner, log logger.Logger) *Notifier {
	n := &Notifier{
		runner: runner,
		log:    log,
		goos:   goos,
	}

	switch goos {
	case "darwin":
		n.send = n.sendDarwin
	case "linux":
		n.send = n.sendLinux
	case "windows":
		n.send = n.sendWindows
	}

	return n
}

// Name returns the channel display name.
func (*Notifier) Name() string {
	return "System"
}

// Send shows one popup with the severity's title and the message.
func (n *Notifier) Send(ctx context.Context, sev severity.Severity, message string) error {
	if n.send == nil {
		return errors.Wrapf(channel.ErrUnsupportedOS, "%s", n.goos)
	}

	return n.send(ctx, sev.Title(), message)
}

// sendDarwin shows the popup via osascript.
//
// Title and message are interpolated straight into the AppleScript source;
// double quotes in the message can break the popup, never the process.
func (n *Notifier) sendDarwin(ctx context.Context, title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)

	return n.run(ctx, popupTimeout, "osascript", "-e", script)
}

// sendLinux shows the popup via notify-send. Arguments are passed as argv
// directly, so no shell quoting is involved.
func (n *Notifier) sendLinux(ctx context.Context, title, message string) error {
	err := n.run(ctx, popupTimeout, "notify-send", title, message)
	if err != nil && errors.Is(err, osexec.ErrNotFound) {
		return errors.Wrap(err, "install: sudo apt install libnotify-bin")
	}

	return err
}

// sendWindows shows a toast via PowerShell. As on darwin, title and message
// are interpolated unescaped into the script body.
func (n *Notifier) sendWindows(ctx context.Context, title, message string) error {
	script := fmt.Sprintf(toastTemplate, title, message, toastAppID)

	return n.run(ctx, windowsPopupTimeout, "powershell", "-NoProfile", "-Command", script)
}

// run executes the platform utility with a bounded wait and folds any
// failure into one error.
func (n *Notifier) run(ctx context.Context, timeout time.Duration, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := n.runner.Run(ctx, name, args...)
	if result.Failed() {
		if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
			return errors.Wrapf(result.Err, "%s: %s", name, stderr)
		}

		return errors.Wrapf(result.Err, "%s", name)
	}

	n.log.Debug("popup sent", "os", n.goos)

	return nil
}
