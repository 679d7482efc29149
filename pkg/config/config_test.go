package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nocoo/skill-task-notifier/pkg/config"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

func boolPtr(b bool) *bool {
	return &b
}

var _ = Describe("Config", func() {
	Describe("Key", func() {
		It("should trim surrounding whitespace", func() {
			cfg := &config.Config{BarkKey: "  abc123  "}
			Expect(cfg.Key()).To(Equal("abc123"))
		})

		It("should return empty for whitespace-only keys", func() {
			cfg := &config.Config{BarkKey: "   \t"}
			Expect(cfg.Key()).To(BeEmpty())
		})
	})

	Describe("Server", func() {
		It("should default when unset", func() {
			cfg := &config.Config{}
			Expect(cfg.Server()).To(Equal("https://api.day.app"))
		})

		It("should strip trailing slashes", func() {
			cfg := &config.Config{BarkServer: "https://bark.example.com/"}
			Expect(cfg.Server()).To(Equal("https://bark.example.com"))
		})
	})

	Describe("Group", func() {
		It("should default to Claude Code", func() {
			cfg := &config.Config{}
			Expect(cfg.Group()).To(Equal("Claude Code"))
		})

		It("should use the configured group", func() {
			cfg := &config.Config{BarkGroup: "CI"}
			Expect(cfg.Group()).To(Equal("CI"))
		})
	})

	Describe("Icon", func() {
		It("should prefer the configured severity entry", func() {
			cfg := &config.Config{Icons: map[string]string{
				"success": "https://example.com/ok.png",
				"info":    "https://example.com/info.png",
			}}

			Expect(cfg.Icon(severity.Success)).To(Equal("https://example.com/ok.png"))
		})

		It("should fall back to the configured info entry", func() {
			cfg := &config.Config{Icons: map[string]string{
				"info": "https://example.com/info.png",
			}}

			Expect(cfg.Icon(severity.Error)).To(Equal("https://example.com/info.png"))
		})

		It("should fall back to the built-in placeholder without icons", func() {
			cfg := &config.Config{}
			Expect(cfg.Icon(severity.Error)).To(Equal(severity.Error.DefaultIcon()))
		})
	})

	Describe("channel toggles", func() {
		It("should default both channels to enabled", func() {
			cfg := &config.Config{}
			Expect(cfg.IsSoundEnabled()).To(BeTrue())
			Expect(cfg.IsSystemNotifyEnabled()).To(BeTrue())
		})

		It("should honor explicit false", func() {
			cfg := &config.Config{
				SoundEnabled:        boolPtr(false),
				SystemNotifyEnabled: boolPtr(false),
			}

			Expect(cfg.IsSoundEnabled()).To(BeFalse())
			Expect(cfg.IsSystemNotifyEnabled()).To(BeFalse())
		})
	})
})
