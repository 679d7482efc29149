// Package severity defines notification severity levels and their
// presentation metadata across all channels.
package severity

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidLevel is returned when a level string is not recognized.
var ErrInvalidLevel = errors.New("invalid level")

// Severity represents a notification severity level.
type Severity string

const (
	// Success indicates a task finished successfully.
	Success Severity = "success"

	// Error indicates a task failed.
	Error Severity = "error"

	// Info indicates a neutral task notification.
	Info Severity = "info"
)

// All lists every recognized severity, in display order.
var All = []Severity{Success, Error, Info}

// Parse converts a level string (case-insensitive) into a Severity.
func Parse(s string) (Severity, error) {
	switch Severity(strings.ToLower(s)) {
	case Success:
		return Success, nil
	case Error:
		return Error, nil
	case Info:
		return Info, nil
	default:
		return "", errors.Wrapf(ErrInvalidLevel, "%q, must be one of: success, error, info", s)
	}
}

// String returns the lower-case severity name.
func (s Severity) String() string {
	return string(s)
}

// IsValid reports whether the severity is one of the recognized values.
func (s Severity) IsValid() bool {
	switch s {
	case Success, Error, Info:
		return true
	default:
		return false
	}
}

// Normalize returns the severity itself when valid, Info otherwise.
// The push channel falls back to the info metadata for unknown levels
// instead of failing.
func (s Severity) Normalize() Severity {
	if s.IsValid() {
		return s
	}

	return Info
}

// Metadata holds the static presentation entry for one severity.
type Metadata struct {
	// Title is the decorated desktop popup title.
	Title string

	// Icon is the built-in push icon URL used when no override is configured.
	Icon string

	// BarkSound is the sound name sent to the Bark service.
	BarkSound string

	// MacSound is the macOS system sound name (under /System/Library/Sounds).
	MacSound string

	// WindowsSound is the .NET SystemSound member played via PowerShell.
	WindowsSound string
}

// table is the static metadata table. Every severity must have a complete
// entry; completeness is asserted by unit test rather than patched at runtime.
var table = map[Severity]Metadata{
	Success: {
		Title:        "✅ Task Completed",
		Icon:         "https://via.placeholder.com/80/4CAF50/FFFFFF?text=✓",
		BarkSound:    "bell",
		MacSound:     "Glass",
		WindowsSound: "System.Asterisk",
	},
	Error: {
		Title:        "❌ Task Failed",
		Icon:         "https://via.placeholder.com/80/F44336/FFFFFF?text=✕",
		BarkSound:    "alarm",
		MacSound:     "Basso",
		WindowsSound: "System.Hand",
	},
	Info: {
		Title:        "ℹ️ Task Notification",
		Icon:         "https://via.placeholder.com/80/2196F3/FFFFFF?text=i",
		BarkSound:    "bell",
		MacSound:     "Ping",
		WindowsSound: "System.Default",
	},
}

// Lookup returns the metadata entry for the severity, falling back to the
// info entry for unknown values.
func Lookup(s Severity) Metadata {
	return table[s.Normalize()]
}

// Title returns the desktop popup title for the severity.
func (s Severity) Title() string {
	return Lookup(s).Title
}

// DefaultIcon returns the built-in push icon URL for the severity.
func (s Severity) DefaultIcon() string {
	return Lookup(s).Icon
}

// BarkSound returns the Bark sound name for the severity.
func (s Severity) BarkSound() string {
	return Lookup(s).BarkSound
}

// Tag returns the Bark level tag (the lower-case severity name).
func (s Severity) Tag() string {
	return strings.ToLower(string(s))
}

// MacSound returns the macOS system sound name for the severity.
func (s Severity) MacSound() string {
	return Lookup(s).MacSound
}

// WindowsSound returns the Windows system sound name for the severity.
func (s Severity) WindowsSound() string {
	return Lookup(s).WindowsSound
}
