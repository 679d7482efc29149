package reporters_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nocoo/skill-task-notifier/internal/color"
	"github.com/nocoo/skill-task-notifier/internal/doctor"
	"github.com/nocoo/skill-task-notifier/internal/doctor/reporters"
)

func TestReporters(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Reporters Suite")
}

func sampleResults() []doctor.CheckResult {
	return []doctor.CheckResult{
		{
			Name:     "Config file",
			Category: doctor.CategoryConfig,
			Severity: doctor.SeverityInfo,
			Status:   doctor.StatusPass,
			Message:  "Loaded from /etc/task-notifier/config.json",
		},
		{
			Name:     "Bark key",
			Category: doctor.CategoryPush,
			Severity: doctor.SeverityWarning,
			Status:   doctor.StatusFail,
			Message:  "bark_key is empty",
			Details:  []string{"Set bark_key in config.json"},
		},
		{
			Name:     "Popup tool",
			Category: doctor.CategoryDesktop,
			Severity: doctor.SeverityInfo,
			Status:   doctor.StatusPass,
			Message:  "notify-send found",
		},
		{
			Name:     "Sound player",
			Category: doctor.CategorySound,
			Severity: doctor.SeverityError,
			Status:   doctor.StatusFail,
			Message:  "no player installed",
		},
		{
			Name:     "Sound files",
			Category: doctor.CategorySound,
			Severity: doctor.SeverityInfo,
			Status:   doctor.StatusSkipped,
			Message:  "not applicable on this OS",
		},
	}
}

var _ = Describe("StatusIcon", func() {
	It("returns check for pass", func() {
		r := doctor.CheckResult{Status: doctor.StatusPass}
		Expect(reporters.StatusIcon(r)).To(Equal("✓"))
	})

	It("returns x for error", func() {
		r := doctor.CheckResult{Status: doctor.StatusFail, Severity: doctor.SeverityError}
		Expect(reporters.StatusIcon(r)).To(Equal("✗"))
	})

	It("returns bang for warning", func() {
		r := doctor.CheckResult{Status: doctor.StatusFail, Severity: doctor.SeverityWarning}
		Expect(reporters.StatusIcon(r)).To(Equal("!"))
	})

	It("returns dash for skipped", func() {
		r := doctor.CheckResult{Status: doctor.StatusSkipped}
		Expect(reporters.StatusIcon(r)).To(Equal("-"))
	})
})

var _ = Describe("SimpleReporter", func() {
	var buf bytes.Buffer

	BeforeEach(func() {
		buf.Reset()
	})

	It("prints category headings in fixed order", func() {
		reporters.NewSimpleReporter(&buf).Report(sampleResults(), false)

		out := buf.String()
		configIdx := strings.Index(out, "Configuration:")
		pushIdx := strings.Index(out, "Remote Push:")
		desktopIdx := strings.Index(out, "Desktop Popup:")
		soundIdx := strings.Index(out, "Sound:")

		Expect(configIdx).To(BeNumerically(">=", 0))
		Expect(pushIdx).To(BeNumerically(">", configIdx))
		Expect(desktopIdx).To(BeNumerically(">", pushIdx))
		Expect(soundIdx).To(BeNumerically(">", desktopIdx))
	})

	It("prints one line per check with icon and message", func() {
		reporters.NewSimpleReporter(&buf).Report(sampleResults(), false)

		Expect(buf.String()).To(ContainSubstring("✅ Config file - Loaded from"))
		Expect(buf.String()).To(ContainSubstring("❌ Sound player - no player installed"))
		Expect(buf.String()).To(ContainSubstring("⚠️ Bark key - bark_key is empty"))
	})

	It("prints the summary counts", func() {
		reporters.NewSimpleReporter(&buf).Report(sampleResults(), false)

		Expect(buf.String()).To(ContainSubstring("Summary: 1 error(s), 1 warning(s), 2 passed"))
	})

	It("hides details unless verbose", func() {
		reporters.NewSimpleReporter(&buf).Report(sampleResults(), false)
		Expect(buf.String()).NotTo(ContainSubstring("Set bark_key"))

		buf.Reset()
		reporters.NewSimpleReporter(&buf).Report(sampleResults(), true)
		Expect(buf.String()).To(ContainSubstring("Set bark_key in config.json"))
	})
})

var _ = Describe("RenderTable", func() {
	var theme color.Theme

	BeforeEach(func() {
		theme = color.NewTheme(false)
	})

	It("returns empty string for no results", func() {
		Expect(reporters.RenderTable(nil, false, theme)).To(BeEmpty())
	})

	It("includes all check names and messages", func() {
		out := reporters.RenderTable(sampleResults(), false, theme)

		Expect(out).To(ContainSubstring("Config file"))
		Expect(out).To(ContainSubstring("Bark key"))
		Expect(out).To(ContainSubstring("Sound player"))
		Expect(out).To(ContainSubstring("bark_key is empty"))
	})

	It("includes category header rows", func() {
		out := reporters.RenderTable(sampleResults(), false, theme)

		Expect(out).To(ContainSubstring("Configuration"))
		Expect(out).To(ContainSubstring("Remote Push"))
		Expect(out).To(ContainSubstring("Sound"))
	})

	It("includes details column only when verbose", func() {
		plain := reporters.RenderTable(sampleResults(), false, theme)
		Expect(plain).NotTo(ContainSubstring("Set bark_key"))

		verbose := reporters.RenderTable(sampleResults(), true, theme)
		Expect(verbose).To(ContainSubstring("Set bark_key"))
	})
})

var _ = Describe("RenderSummary", func() {
	It("counts errors, warnings, passed, and skipped", func() {
		out := reporters.RenderSummary(sampleResults(), color.NewTheme(false))

		Expect(out).To(ContainSubstring("1 error(s)"))
		Expect(out).To(ContainSubstring("1 warning(s)"))
		Expect(out).To(ContainSubstring("2 passed"))
		Expect(out).To(ContainSubstring("1 skipped"))
	})

	It("omits skipped when none were skipped", func() {
		results := []doctor.CheckResult{
			{Name: "a", Category: doctor.CategoryConfig, Status: doctor.StatusPass},
		}
		out := reporters.RenderSummary(results, color.NewTheme(false))

		Expect(out).NotTo(ContainSubstring("skipped"))
	})
})

var _ = Describe("GroupByCategory", func() {
	It("orders known categories and appends unknown ones", func() {
		results := []doctor.CheckResult{
			{Name: "x", Category: doctor.Category("custom")},
			{Name: "y", Category: doctor.CategorySound},
			{Name: "z", Category: doctor.CategoryConfig},
		}

		groups := reporters.GroupByCategory(results)

		Expect(groups).To(HaveLen(3))
		Expect(groups[0].Category).To(Equal(doctor.CategoryConfig))
		Expect(groups[1].Category).To(Equal(doctor.CategorySound))
		Expect(groups[2].Category).To(Equal(doctor.Category("custom")))
	})
})

var _ = Describe("helpers", func() {
	Describe("PadToWidth", func() {
		It("pads short strings with spaces", func() {
			Expect(reporters.PadToWidth("ab", 5)).To(Equal("ab   "))
		})

		It("leaves long strings alone", func() {
			Expect(reporters.PadToWidth("abcdef", 3)).To(Equal("abcdef"))
		})
	})

	Describe("ToCellWidths", func() {
		It("adds padding to content widths", func() {
			m := reporters.ToCellWidths(map[int]int{0: 1, 2: 10})
			Expect(m[0]).To(Equal(3))
			Expect(m[2]).To(Equal(12))
		})
	})

	Describe("CalcColumnWidths", func() {
		It("returns nil for narrow terminals", func() {
			Expect(reporters.CalcColumnWidths(30, sampleResults(), false)).To(BeNil())
		})

		It("returns nil for non-terminal output", func() {
			Expect(reporters.CalcColumnWidths(0, sampleResults(), false)).To(BeNil())
		})

		It("gives the icon column width 1 and fills the rest", func() {
			widths := reporters.CalcColumnWidths(100, sampleResults(), false)

			Expect(widths).NotTo(BeNil())
			Expect(widths[0]).To(Equal(1))
			Expect(widths[1]).To(BeNumerically(">=", 5))
			Expect(widths[2]).To(BeNumerically(">", 20))
		})

		It("splits message and details when verbose", func() {
			widths := reporters.CalcColumnWidths(120, sampleResults(), true)

			Expect(widths).To(HaveKey(3))
			Expect(widths[2] + widths[3]).To(BeNumerically(">", widths[3]))
		})
	})

	Describe("SeverityRank", func() {
		It("orders errors before warnings before passes before skips", func() {
			err := doctor.CheckResult{Status: doctor.StatusFail, Severity: doctor.SeverityError}
			warn := doctor.CheckResult{Status: doctor.StatusFail, Severity: doctor.SeverityWarning}
			pass := doctor.CheckResult{Status: doctor.StatusPass}
			skip := doctor.CheckResult{Status: doctor.StatusSkipped}

			Expect(reporters.SeverityRank(err)).To(BeNumerically("<", reporters.SeverityRank(warn)))
			Expect(reporters.SeverityRank(warn)).To(BeNumerically("<", reporters.SeverityRank(pass)))
			Expect(reporters.SeverityRank(pass)).To(BeNumerically("<", reporters.SeverityRank(skip)))
		})
	})

	Describe("ShortenPath", func() {
		It("replaces the home directory with ~", func() {
			reporters.SetHomeDir("/home/tester")
			defer reporters.SetHomeDir("")

			Expect(reporters.ShortenPath("/home/tester/config.json")).To(Equal("~/config.json"))
		})

		It("returns the string unchanged without a home dir", func() {
			reporters.SetHomeDir("")
			Expect(reporters.ShortenPath("/tmp/x")).To(Equal("/tmp/x"))
		})
	})
})
