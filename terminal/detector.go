// Package terminal provides helpers for deciding whether the current process
// should emit ANSI escape sequences: interactive (TTY) detection, CI
// environment detection, color capability checks based on the terminal type,
// and user preference handling via the NO_COLOR and CLICOLOR conventions. It
// also exposes the one-shot Windows console-mode switch that makes a legacy
// console interpret escape sequences.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains environment variables set by common CI systems. Output
// in CI is captured, not viewed live, so CI runs are treated as
// non-interactive.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"TRAVIS",
	"CIRCLECI",
	"JENKINS_URL",
	"BUILD_NUMBER",
	"GITLAB_CI",
	"APPVEYOR",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// DetectorOptions controls interactive detection.
type DetectorOptions struct {
	ForceInteractive    bool // Treat the environment as interactive regardless of detection
	ForceNonInteractive bool // Treat the environment as non-interactive regardless of detection
}

// InteractiveDetector decides whether the process is talking to a person.
type InteractiveDetector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
}

// DefaultInteractiveDetector implements InteractiveDetector.
type DefaultInteractiveDetector struct {
	options DetectorOptions
}

// NewInteractiveDetector creates an interactive detector with the given options.
func NewInteractiveDetector(options DetectorOptions) InteractiveDetector {
	return &DefaultInteractiveDetector{options: options}
}

// IsInteractive returns true if the current environment is interactive.
// Explicit options win over CI detection, which wins over the TTY check.
func (d *DefaultInteractiveDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	if d.IsCIEnvironment() {
		return false
	}

	return d.IsTerminal()
}

// IsTerminal reports whether stdout is attached to a terminal. Escape
// sequences only matter on the stream that carries the styled text.
func (d *DefaultInteractiveDetector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsCIEnvironment reports whether a known CI environment variable is set.
func (d *DefaultInteractiveDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false or CI=0 means the variable is present but disabled.
		if envVar == "CI" {
			return isCITruthy(value)
		}
		return true
	}
	return false
}

func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
