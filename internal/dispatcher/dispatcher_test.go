package dispatcher_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nocoo/skill-task-notifier/internal/channel"
	"github.com/nocoo/skill-task-notifier/internal/dispatcher"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

func TestDispatcher(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dispatcher Suite")
}

// fakeChannel implements channel.Channel for testing.
type fakeChannel struct {
	name  string
	err   error
	panic bool
	calls int
}

func (f *fakeChannel) Name() string {
	return f.name
}

func (f *fakeChannel) Send(context.Context, severity.Severity, string) error {
	f.calls++

	if f.panic {
		panic("channel blew up")
	}

	return f.err
}

var _ = Describe("Dispatcher", func() {
	var (
		out    *bytes.Buffer
		errOut *bytes.Buffer
		log    logger.Logger
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		errOut = &bytes.Buffer{}
		log = logger.NewConsoleLoggerWithWriter(errOut, false)
	})

	It("should attempt every channel in order", func() {
		first := &fakeChannel{name: "Bark"}
		second := &fakeChannel{name: "System"}
		third := &fakeChannel{name: "Sound"}

		d := dispatcher.New(log, out, first, second, third)
		results := d.Dispatch(context.Background(), severity.Success, "done")

		Expect(results).To(Equal([]channel.Result{
			{Channel: "Bark", OK: true},
			{Channel: "System", OK: true},
			{Channel: "Sound", OK: true},
		}))
		Expect(first.calls).To(Equal(1))
		Expect(second.calls).To(Equal(1))
		Expect(third.calls).To(Equal(1))
	})

	It("should not let one failure abort the siblings", func() {
		failing := &fakeChannel{name: "Bark", err: errors.New("connection refused")}
		healthy := &fakeChannel{name: "Sound"}

		d := dispatcher.New(log, out, failing, healthy)
		results := d.Dispatch(context.Background(), severity.Error, "x")

		Expect(results).To(Equal([]channel.Result{
			{Channel: "Bark", OK: false},
			{Channel: "Sound", OK: true},
		}))
		Expect(healthy.calls).To(Equal(1))
	})

	It("should warn on the error stream as each channel fails", func() {
		failing := &fakeChannel{name: "System", err: errors.New("notify-send missing")}

		d := dispatcher.New(log, out, failing)
		d.Dispatch(context.Background(), severity.Info, "x")

		Expect(errOut.String()).To(ContainSubstring("[WARN]"))
		Expect(errOut.String()).To(ContainSubstring("channel=System"))
		Expect(errOut.String()).To(ContainSubstring("notify-send missing"))
	})

	It("should print a success line per delivered channel", func() {
		d := dispatcher.New(log, out, &fakeChannel{name: "Bark"})
		d.Dispatch(context.Background(), severity.Success, "x")

		Expect(out.String()).To(ContainSubstring("[OK]    Bark notification sent (level: success)"))
	})

	It("should recover a panicking channel and keep going", func() {
		exploding := &fakeChannel{name: "Bark", panic: true}
		healthy := &fakeChannel{name: "Sound"}

		d := dispatcher.New(log, out, exploding, healthy)
		results := d.Dispatch(context.Background(), severity.Info, "x")

		Expect(results[0].OK).To(BeFalse())
		Expect(results[1].OK).To(BeTrue())
		Expect(errOut.String()).To(ContainSubstring("panic"))
	})
})

var _ = Describe("Summary", func() {
	It("should count successes out of attempts", func() {
		line := dispatcher.Summary([]channel.Result{
			{Channel: "Bark", OK: true},
			{Channel: "System", OK: false},
			{Channel: "Sound", OK: true},
		})

		Expect(line).To(Equal("[SUMMARY] Notification complete: 2/3 channels succeeded"))
	})

	It("should report 0/N when everything fails", func() {
		line := dispatcher.Summary([]channel.Result{
			{Channel: "Bark", OK: false},
			{Channel: "Sound", OK: false},
		})

		Expect(line).To(ContainSubstring("0/2 channels succeeded"))
	})

	It("should handle an empty result set", func() {
		Expect(dispatcher.Summary(nil)).To(ContainSubstring("0/0"))
	})
})
