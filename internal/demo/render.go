// Package demo renders the preview sections of the styler demo CLI: text
// styles, the standard 16-color and extended 256-color palettes, truecolor
// gradients, and user-supplied theme swatches. All rendering goes through
// the ansi package, so the active color policy applies to demo output too.
package demo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/isseis/go-term-styler/ansi"
)

// Defaults for the RGB gradient demo.
const (
	// DefaultRGBStep is the default increment applied to each RGB channel.
	DefaultRGBStep = 51
	// DefaultBlock is the default text block painted by the gradient demo.
	DefaultBlock = "ABC"

	fallbackTerminalWidth = 80
	gridCellPadding       = 2
	paletteLabelWidth     = 3
)

// Error definitions for demo rendering
var (
	// ErrInvalidRGBStep is returned when the gradient step is outside [1,255]
	ErrInvalidRGBStep = errors.New("rgb step must be between 1 and 255")
)

// Renderer writes demo sections to a single output stream.
type Renderer struct {
	out    io.Writer
	styler *ansi.Styler
	width  func() int
}

// NewRenderer creates a Renderer writing to out. A nil styler falls back to
// the process-wide default.
func NewRenderer(out io.Writer, styler *ansi.Styler) *Renderer {
	if styler == nil {
		styler = ansi.Default
	}
	return &Renderer{out: out, styler: styler, width: terminalWidth}
}

// terminalWidth returns the column count of the attached terminal, or a
// fixed fallback when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTerminalWidth
	}
	return width
}

// RenderStyles previews every text style in the catalog.
func (r *Renderer) RenderStyles() error {
	return r.grid("Text Styles", styleEntries)
}

// RenderPalette16 previews the standard foreground and background palettes.
func (r *Renderer) RenderPalette16() error {
	if err := r.grid("16-Color Foreground Palette", foregroundEntries); err != nil {
		return err
	}
	return r.grid("16-Color Background Palette", backgroundEntries)
}

// RenderPalette256 previews all 256 palette slots, as foreground when
// foreground is true and as background otherwise.
func (r *Renderer) RenderPalette256(foreground bool) error {
	title := "256-Color Palette (Background)"
	if foreground {
		title = "256-Color Palette (Foreground)"
	}
	if err := r.header(title); err != nil {
		return err
	}

	perRow := r.itemsPerRow(paletteLabelWidth, 1)
	count := 0
	for index := 0; index <= 255; index++ {
		code, err := paletteCode(foreground, index)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%*d", paletteLabelWidth, index)
		cell, err := r.styler.Colorize(label, code)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.out, "%s ", cell); err != nil {
			return err
		}
		count++
		if count%perRow == 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
	}
	return r.finishRow(count, perRow)
}

// RenderRGBGradient previews a truecolor cube walk, incrementing each channel
// by step and painting block once per color.
func (r *Renderer) RenderRGBGradient(foreground bool, step int, block string) error {
	if step < 1 || step > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidRGBStep, step)
	}
	if block == "" {
		block = DefaultBlock
	}

	title := "Truecolor RGB Gradient (Background)"
	if foreground {
		title = "Truecolor RGB Gradient (Foreground)"
	}
	if err := r.header(title); err != nil {
		return err
	}

	perRow := r.itemsPerRow(len(block), 1)
	count := 0
	for red := 0; red <= 255; red += step {
		for green := 0; green <= 255; green += step {
			for blue := 0; blue <= 255; blue += step {
				code, err := gradientCode(foreground, red, green, blue)
				if err != nil {
					return err
				}
				cell, err := r.styler.Colorize(block, code)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(r.out, "%s ", cell); err != nil {
					return err
				}
				count++
				if count%perRow == 0 {
					if _, err := fmt.Fprintln(r.out); err != nil {
						return err
					}
				}
			}
		}
	}
	return r.finishRow(count, perRow)
}

// grid renders a section of named codes, sized to the terminal width.
func (r *Renderer) grid(title string, entries []namedCode) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.header(title); err != nil {
		return err
	}

	maxLen := 0
	for _, entry := range entries {
		if len(entry.name) > maxLen {
			maxLen = len(entry.name)
		}
	}
	maxLen += gridCellPadding

	perRow := r.itemsPerRow(maxLen, gridCellPadding)
	for start := 0; start < len(entries); start += perRow {
		end := min(start+perRow, len(entries))
		cells := make([]string, 0, end-start)
		for _, entry := range entries[start:end] {
			cell, err := r.styler.Colorize(fmt.Sprintf("%-*s", maxLen, entry.name), entry.code)
			if err != nil {
				return err
			}
			cells = append(cells, cell)
		}
		if _, err := fmt.Fprintln(r.out, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}

// header renders a bold cyan section title centered with '=' fill.
func (r *Renderer) header(title string) error {
	line, err := r.styler.Colorize(centerPad(" "+title+" ", r.width(), '='), ansi.Bold, ansi.FgCyan)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "\n%s\n\n", line)
	return err
}

// finishRow terminates the last, possibly partial, row of a grid.
func (r *Renderer) finishRow(count, perRow int) error {
	if count%perRow == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.out)
	return err
}

// itemsPerRow returns how many cells of itemLen characters fit in one
// terminal row with the given padding, at least one.
func (r *Renderer) itemsPerRow(itemLen, padding int) int {
	return max(r.width()/(itemLen+padding), 1)
}

func centerPad(s string, width int, fill rune) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	right := gap - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}

func paletteCode(foreground bool, index int) (ansi.Code, error) {
	if foreground {
		return ansi.Foreground256(index)
	}
	return ansi.Background256(index)
}

func gradientCode(foreground bool, red, green, blue int) (ansi.Code, error) {
	if foreground {
		return ansi.ForegroundRGB(red, green, blue)
	}
	return ansi.BackgroundRGB(red, green, blue)
}
