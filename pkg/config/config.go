// Package config provides the configuration schema for the task notifier.
package config

import (
	"strings"

	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

const (
	// DefaultBarkServer is the Bark API endpoint used when none is configured.
	DefaultBarkServer = "https://api.day.app"

	// DefaultBarkGroup is the push grouping tag used when none is configured.
	DefaultBarkGroup = "Claude Code"
)

// Config represents the notifier configuration loaded from config.json.
// All fields are optional except BarkKey, whose absence only disables the
// push channel.
type Config struct {
	// BarkKey is the Bark device key. Empty or whitespace-only disables the
	// push channel without being treated as an error.
	BarkKey string `json:"bark_key,omitempty" koanf:"bark_key"`

	// BarkServer is the Bark server URL. Defaults to DefaultBarkServer.
	BarkServer string `json:"bark_server,omitempty" koanf:"bark_server"`

	// BarkGroup is the push grouping tag. Defaults to DefaultBarkGroup.
	BarkGroup string `json:"bark_group,omitempty" koanf:"bark_group"`

	// Icons maps severity names to icon URL overrides.
	Icons map[string]string `json:"icons,omitempty" koanf:"icons"`

	// SoundEnabled controls the sound channel. Defaults to true when omitted.
	SoundEnabled *bool `json:"sound_enabled,omitempty" koanf:"sound_enabled"`

	// SystemNotifyEnabled controls the desktop popup channel. Defaults to
	// true when omitted.
	SystemNotifyEnabled *bool `json:"system_notify_enabled,omitempty" koanf:"system_notify_enabled"`
}

// Key returns the trimmed Bark device key.
func (c *Config) Key() string {
	if c == nil {
		return ""
	}

	return strings.TrimSpace(c.BarkKey)
}

// Server returns the Bark server URL with any trailing slash stripped,
// falling back to the default endpoint.
func (c *Config) Server() string {
	if c == nil || strings.TrimSpace(c.BarkServer) == "" {
		return DefaultBarkServer
	}

	return strings.TrimRight(strings.TrimSpace(c.BarkServer), "/")
}

// Group returns the push grouping tag, falling back to the default.
func (c *Config) Group() string {
	if c == nil || c.BarkGroup == "" {
		return DefaultBarkGroup
	}

	return c.BarkGroup
}

// Icon returns the icon URL for a severity. Lookup order: the configured
// entry for the severity, the configured info entry, then the built-in
// placeholder for the severity.
func (c *Config) Icon(sev severity.Severity) string {
	if c != nil && c.Icons != nil {
		if icon, ok := c.Icons[sev.Normalize().String()]; ok && icon != "" {
			return icon
		}

		if icon, ok := c.Icons[severity.Info.String()]; ok && icon != "" {
			return icon
		}
	}

	return sev.DefaultIcon()
}

// IsSoundEnabled reports whether the sound channel should be attempted.
func (c *Config) IsSoundEnabled() bool {
	if c == nil || c.SoundEnabled == nil {
		return true
	}

	return *c.SoundEnabled
}

// IsSystemNotifyEnabled reports whether the desktop popup channel should be
// attempted.
func (c *Config) IsSystemNotifyEnabled() bool {
	if c == nil || c.SystemNotifyEnabled == nil {
		return true
	}

	return *c.SystemNotifyEnabled
}
