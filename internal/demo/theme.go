package demo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-term-styler/ansi"
)

// Error definitions for theme loading
var (
	// ErrEmptyTheme is returned when a theme file defines no swatches
	ErrEmptyTheme = errors.New("theme contains no swatches")

	// ErrSwatchNameEmpty is returned when a swatch has no name
	ErrSwatchNameEmpty = errors.New("swatch name cannot be empty")

	// ErrUnknownStyleName is returned when a swatch references a style the
	// catalog does not define
	ErrUnknownStyleName = errors.New("unknown style name")
)

// Swatch is one named color combination in a theme file. Foreground and
// background are hex color strings; styles are catalog style names.
type Swatch struct {
	Name       string   `toml:"name"`
	Foreground string   `toml:"foreground"`
	Background string   `toml:"background"`
	Styles     []string `toml:"styles"`
}

// Theme is the TOML document previewed by the -theme flag.
type Theme struct {
	Swatches []Swatch `toml:"swatch"`
}

// styleByName resolves the style names accepted in theme files.
var styleByName = map[string]ansi.Code{
	"bold":             ansi.Bold,
	"dim":              ansi.Dim,
	"italic":           ansi.Italic,
	"underline":        ansi.Underline,
	"double_underline": ansi.DoubleUnderline,
	"reversed":         ansi.Reversed,
	"hidden":           ansi.Hidden,
	"strikethrough":    ansi.Strikethrough,
	"overline":         ansi.Overline,
}

// LoadTheme reads and validates a TOML theme file. Every swatch is resolved
// eagerly so malformed colors and unknown style names are reported at load
// time, not mid-render.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme Theme
	if err := toml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if len(theme.Swatches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTheme, path)
	}

	for i := range theme.Swatches {
		if _, err := theme.Swatches[i].codes(); err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i+1, err)
		}
	}
	return &theme, nil
}

// codes resolves a swatch into the code list applied to its preview.
func (s *Swatch) codes() ([]ansi.Code, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, ErrSwatchNameEmpty
	}

	var codes []ansi.Code
	for _, name := range s.Styles {
		code, ok := styleByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyleName, name)
		}
		codes = append(codes, code)
	}
	if s.Foreground != "" {
		code, err := ansi.ForegroundRGB(s.Foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		codes = append(codes, code)
	}
	if s.Background != "" {
		code, err := ansi.BackgroundRGB(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// RenderTheme previews every swatch in the theme, one per line with its
// color annotations.
func (r *Renderer) RenderTheme(theme *Theme) error {
	if err := r.header("Theme Swatches"); err != nil {
		return err
	}

	maxLen := 0
	for _, swatch := range theme.Swatches {
		if len(swatch.Name) > maxLen {
			maxLen = len(swatch.Name)
		}
	}
	maxLen += gridCellPadding

	for _, swatch := range theme.Swatches {
		codes, err := swatch.codes()
		if err != nil {
			return err
		}
		cell, err := r.styler.Colorize(fmt.Sprintf("%-*s", maxLen, swatch.Name), codes)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.out, "%s fg=%s bg=%s\n", cell,
			valueOrDash(swatch.Foreground), valueOrDash(swatch.Background)); err != nil {
			return err
		}
	}
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
