package terminal

import (
	"os"
	"strings"
)

// Options contains all terminal-related configuration options.
type Options struct {
	// PreferenceOptions for explicit color choices
	PreferenceOptions PreferenceOptions
	// DetectorOptions for interactive detection
	DetectorOptions DetectorOptions
}

// Capabilities is the unified answer to "should this process emit ANSI
// color?". It combines interactive detection, terminal color capability, and
// user preference.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	HasExplicitUserPreference() bool
}

// DefaultCapabilities implements Capabilities by combining the detection
// components of this package.
type DefaultCapabilities struct {
	interactiveDetector InteractiveDetector
	colorDetector       ColorDetector
	userPreference      *UserPreference
}

// NewCapabilities creates a Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		interactiveDetector: NewInteractiveDetector(options.DetectorOptions),
		colorDetector:       NewColorDetector(),
		userPreference:      NewUserPreference(options.PreferenceOptions),
	}
}

// IsInteractive returns true if the current environment should be treated as
// interactive.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.interactiveDetector.IsInteractive()
}

// SupportsColor returns true if color output should be enabled. Resolution
// order:
//
//  1. explicit options (CLI flags)
//  2. CLICOLOR_FORCE
//  3. NO_COLOR
//  4. CLICOLOR, only when interactive
//  5. interactive TTY with a color-capable terminal type
//
// The answer is recomputed on every call; there is no caching, so
// environment changes between calls take effect immediately.
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.userPreference.HasExplicitPreference() {
		return c.userPreference.SupportsColor()
	}

	if !c.IsInteractive() || !c.colorDetector.SupportsColor() {
		return false
	}

	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

// HasExplicitUserPreference returns true if the user explicitly chose a
// color setting through options or environment variables.
func (c *DefaultCapabilities) HasExplicitUserPreference() bool {
	return c.userPreference.HasExplicitPreference()
}

// isTruthy accepts "1", "true", and "yes" in any case.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
