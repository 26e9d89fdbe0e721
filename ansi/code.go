// Package ansi constructs and composes ANSI SGR escape sequences for terminal
// text styling: standard text styles, the 16-color and 256-color palettes, and
// 24-bit RGB truecolor. Codes from the package catalog or from the 256-color
// and RGB constructors are combined by Colorize into a single ready-to-print
// string, with output gated by a process-wide color policy and terminal
// capability detection.
package ansi

import "strings"

// Kind classifies which display attribute an SGR code affects. Foreground and
// background codes are independent, non-conflicting parameters and may coexist
// in a single composed sequence.
type Kind int

const (
	// KindStyle marks a text style attribute such as bold or underline.
	KindStyle Kind = iota
	// KindForeground marks a foreground color attribute.
	KindForeground
	// KindBackground marks a background color attribute.
	KindBackground
)

// SGR sequence framing: CSI introducer and final byte.
const (
	csi      = "\x1b["
	sgrFinal = "m"
)

// Code is a single SGR code: one or more numeric parameters plus the display
// attribute kind they affect. Codes are immutable values; obtain them from the
// package catalog or from the 256-color and RGB constructors.
type Code struct {
	kind   Kind
	params string
}

func newCode(kind Kind, params string) Code {
	return Code{kind: kind, params: params}
}

// Kind returns the display attribute classification of the code.
func (c Code) Kind() Kind {
	return c.kind
}

// Params returns the semicolon-joined numeric SGR parameters of the code,
// e.g. "1" or "38;5;128".
func (c Code) Params() string {
	return c.params
}

// String returns the complete escape sequence for the code, e.g. "\x1b[31m".
func (c Code) String() string {
	return csi + c.params + sgrFinal
}

// IsZero reports whether c is the zero value rather than a catalog or
// constructor code.
func (c Code) IsZero() bool {
	return c.params == ""
}

// Sequence is an ordered collection of codes produced by Flatten. Order is
// significant: SGR parameters are applied left to right, and all of them must
// precede the styled text.
type Sequence []Code

// Params returns the parameters of every code in the sequence joined with ";".
func (s Sequence) Params() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.params
	}
	return strings.Join(parts, ";")
}

// String returns the merged escape prefix for the whole sequence, e.g.
// "\x1b[1;31m" for bold followed by red. An empty sequence yields "".
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}
	return csi + s.Params() + sgrFinal
}
