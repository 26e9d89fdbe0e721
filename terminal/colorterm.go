package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes) known to interpret ANSI
// color sequences. Package scope so the slice is not reallocated per call.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
	"alacritty",
	"kitty",
	"wezterm",
	"foot",
}

// ColorDetector decides whether the terminal type can render ANSI colors.
type ColorDetector interface {
	SupportsColor() bool
}

// DefaultColorDetector implements ColorDetector using the TERM and COLORTERM
// environment variables.
type DefaultColorDetector struct{}

// NewColorDetector creates a new color detector.
func NewColorDetector() ColorDetector {
	return &DefaultColorDetector{}
}

// SupportsColor returns true if the terminal type is known to render ANSI
// colors. Unknown terminals default to no color: a miss costs styling,
// while a false positive prints escape bytes as garbage.
func (d *DefaultColorDetector) SupportsColor() bool {
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "" || term == "dumb" {
		return false
	}

	// COLORTERM is set by terminals advertising extended color support.
	if os.Getenv("COLORTERM") != "" {
		return true
	}

	for _, colorTerm := range colorTerminals {
		if term == colorTerm || strings.HasPrefix(term, colorTerm+"-") {
			return true
		}
	}

	// TERM values such as "xterm-256color" are caught by the prefix check
	// above; anything else declaring color in its name is trusted too.
	return strings.Contains(term, "color")
}
