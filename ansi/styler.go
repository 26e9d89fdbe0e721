package ansi

import (
	"sync/atomic"

	"github.com/isseis/go-term-styler/terminal"
)

// Mode is the color emission policy of a Styler.
type Mode int32

const (
	// ModeAuto emits color only when the output stream is detected to be an
	// interactive, ANSI-capable terminal.
	ModeAuto Mode = iota
	// ModeAlways emits color unconditionally.
	ModeAlways
	// ModeNever suppresses color unconditionally.
	ModeNever
)

// String returns the policy name as used in CLI flags and logs.
func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ColorSupport reports whether colored output should be produced for the
// current process. terminal.Capabilities satisfies it.
type ColorSupport interface {
	SupportsColor() bool
}

// Options configures a Styler.
type Options struct {
	// Detector supplies terminal color detection for ModeAuto. When nil the
	// default terminal capability detector is used. Tests substitute a stub
	// to avoid depending on the environment of the test runner.
	Detector ColorSupport
}

// Styler composes styled strings under a mutable color policy. The policy is
// stored atomically, so SetMode may be called from any goroutine and takes
// effect for all subsequent Colorize calls. Construct with New; the zero
// value has no detector.
type Styler struct {
	mode     atomic.Int32
	detector ColorSupport
}

// New creates a Styler in ModeAuto.
func New(opts Options) *Styler {
	detector := opts.Detector
	if detector == nil {
		detector = terminal.NewCapabilities(terminal.Options{})
	}
	return &Styler{detector: detector}
}

// Default is the process-wide Styler used by the package-level functions. It
// starts in ModeAuto at process start; nothing is persisted across runs.
var Default = New(Options{})

// SetMode replaces the color policy. The change is visible to every
// subsequent Colorize call on this Styler.
func (s *Styler) SetMode(m Mode) {
	s.mode.Store(int32(m))
}

// Mode returns the current color policy.
func (s *Styler) Mode() Mode {
	return Mode(s.mode.Load())
}

// ShouldColorize reports whether escape sequences would be emitted under the
// current policy. In ModeAuto the decision is delegated to the detector and
// re-evaluated on every call, so policy and environment changes take effect
// immediately.
func (s *Styler) ShouldColorize() bool {
	switch s.Mode() {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return s.detector.SupportsColor()
	}
}

// Colorize applies codes to text under the current policy. Codes may be
// catalog or constructor Codes, preformed escape strings, or nested
// containers of either; they are flattened in encounter order into a single
// escape prefix. When the policy suppresses color the text is returned
// byte-identical, with no escape bytes of any kind. Flattening errors are
// reported even when output would be suppressed. Colorize never writes to a
// stream.
func (s *Styler) Colorize(text string, codes ...any) (string, error) {
	return s.colorize(text, nil, codes)
}

// ColorizeForced is Colorize with a per-call override: force true emits
// escape sequences and force false suppresses them, regardless of the policy
// and the terminal.
func (s *Styler) ColorizeForced(force bool, text string, codes ...any) (string, error) {
	return s.colorize(text, &force, codes)
}

func (s *Styler) colorize(text string, force *bool, codes []any) (string, error) {
	if len(codes) == 0 {
		return text, nil
	}

	// Flatten before gating so invalid input is reported even when color
	// output is suppressed.
	seq, err := Flatten(codes...)
	if err != nil {
		return "", err
	}

	emit := s.ShouldColorize()
	if force != nil {
		emit = *force
	}
	if !emit || len(seq) == 0 {
		return text, nil
	}

	return seq.String() + text + Reset.String(), nil
}

// Colorize applies codes to text using the Default styler.
func Colorize(text string, codes ...any) (string, error) {
	return Default.Colorize(text, codes...)
}

// ColorizeForced applies codes to text using the Default styler with a
// per-call override.
func ColorizeForced(force bool, text string, codes ...any) (string, error) {
	return Default.ColorizeForced(force, text, codes...)
}

// SetMode replaces the color policy of the Default styler.
func SetMode(m Mode) {
	Default.SetMode(m)
}

// CurrentMode returns the color policy of the Default styler.
func CurrentMode() Mode {
	return Default.Mode()
}

// ShouldColorize reports the gate decision of the Default styler.
func ShouldColorize() bool {
	return Default.ShouldColorize()
}
