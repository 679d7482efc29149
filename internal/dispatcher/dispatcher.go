// Package dispatcher orchestrates notification delivery across channels.
package dispatcher

import (
	"context"
	"fmt"
	"io"

	"github.com/nocoo/skill-task-notifier/internal/channel"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

// Dispatcher attempts each configured channel in order. Channel failures
// are independent: a failing channel is logged and recorded as false, and
// never prevents the remaining channels from being attempted.
type Dispatcher struct {
	channels []channel.Channel
	log      logger.Logger
	out      io.Writer
}

// New creates a Dispatcher. Channels are attempted in the given order.
// Per-channel success lines go to out; warnings go through the logger.
func New(log logger.Logger, out io.Writer, channels ...channel.Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		log:      log,
		out:      out,
	}
}

// Dispatch sends the notification through every channel sequentially and
// returns the per-channel results in attempt order.
func (d *Dispatcher) Dispatch(ctx context.Context, sev severity.Severity, message string) []channel.Result {
	results := make([]channel.Result, 0, len(d.channels))

	for _, ch := range d.channels {
		ok := d.send(ctx, ch, sev, message)
		results = append(results, channel.Result{Channel: ch.Name(), OK: ok})
	}

	return results
}

// send attempts one channel and folds every failure mode into false.
func (d *Dispatcher) send(ctx context.Context, ch channel.Channel, sev severity.Severity, message string) (ok bool) {
	// A panicking channel must not take down its siblings.
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("notification not delivered", "channel", ch.Name(), "reason", fmt.Sprintf("panic: %v", r))

			ok = false
		}
	}()

	if err := ch.Send(ctx, sev, message); err != nil {
		d.log.Warn("notification not delivered", "channel", ch.Name(), "reason", err.Error())

		return false
	}

	fmt.Fprintf(d.out, "[OK]    %s notification sent (level: %s)\n", ch.Name(), sev.Tag())

	return true
}

// Summary formats the final run summary line.
func Summary(results []channel.Result) string {
	succeeded := 0

	for _, r := range results {
		if r.OK {
			succeeded++
		}
	}

	return fmt.Sprintf(
		"[SUMMARY] Notification complete: %d/%d channels succeeded",
		succeeded, len(results),
	)
}
