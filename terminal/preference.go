package terminal

import "os"

// PreferenceOptions carries explicit color choices, typically from CLI flags.
type PreferenceOptions struct {
	ForceColor   bool // Emit color regardless of environment
	DisableColor bool // Suppress color regardless of environment
}

// UserPreference resolves explicit user color choices from options and the
// CLICOLOR_FORCE / NO_COLOR / CLICOLOR environment conventions.
type UserPreference struct {
	options PreferenceOptions
}

// NewUserPreference creates a UserPreference with the given options.
func NewUserPreference(options PreferenceOptions) *UserPreference {
	return &UserPreference{options: options}
}

// SupportsColor returns the user's color choice. Flags win over
// CLICOLOR_FORCE, which wins over NO_COLOR. With no explicit preference the
// answer is no color; capability auto-detection happens elsewhere.
func (p *UserPreference) SupportsColor() bool {
	if p.options.ForceColor {
		return true
	}
	if p.options.DisableColor {
		return false
	}

	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	// NO_COLOR disables color when present with any value, even empty.
	// See no-color.org.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	return false
}

// HasExplicitPreference reports whether the user stated a color choice at
// all. CLICOLOR is deliberately not an explicit preference: it only applies
// in interactive mode and is evaluated by Capabilities.
func (p *UserPreference) HasExplicitPreference() bool {
	if p.options.ForceColor || p.options.DisableColor {
		return true
	}

	// CLICOLOR_FORCE=0 is not a preference, only a truthy value is.
	if cliColorForce := os.Getenv("CLICOLOR_FORCE"); cliColorForce != "" && isTruthy(cliColorForce) {
		return true
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}

	return false
}
