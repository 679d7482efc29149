// Package channel defines the notification channel abstraction.
//
// A channel is one independent delivery mechanism (remote push, desktop
// popup, sound). Channels report failure through errors; the dispatcher
// converts every error into a non-fatal per-channel result.
package channel

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

// ErrUnsupportedOS is returned by OS-backed channels on unrecognized hosts.
var ErrUnsupportedOS = errors.New("unsupported OS")

// Channel is a single notification delivery mechanism.
type Channel interface {
	// Name returns the channel's display name for results and summaries.
	Name() string

	// Send delivers one notification. A nil return means the channel
	// succeeded; any error is recoverable and never aborts sibling channels.
	Send(ctx context.Context, sev severity.Severity, message string) error
}

// Result is the transient per-channel outcome used for the run summary.
type Result struct {
	Channel string
	OK      bool
}
