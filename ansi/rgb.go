package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit truecolor value. The channel fields are always within
// [0,255] by construction.
type RGB struct {
	R, G, B uint8
}

// NewRGB validates three channel values and returns the canonical triple.
// Any out-of-range channel yields a RangeError naming the channel.
func NewRGB(r, g, b int) (RGB, error) {
	channels := [3]struct {
		name  string
		value int
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	}

	var out [3]uint8
	for i, ch := range channels {
		v, err := ValidateChannel(ch.name, ch.value)
		if err != nil {
			return RGB{}, err
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Hex returns the color in #RRGGBB notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex decodes a hex color string into an RGB triple. The string may
// carry an optional leading '#' and is case-insensitive. Three-digit
// shorthand ("F80") expands by doubling each digit. Anything else that is not
// exactly six hex digits is a malformed color.
func ParseHex(s string) (RGB, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexStr) == 3 {
		var b strings.Builder
		for _, r := range hexStr {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hexStr = b.String()
	}
	if len(hexStr) != 6 {
		return RGB{}, fmt.Errorf("%w: expected 6 hex digits (RRGGBB), got %q", ErrMalformedHex, s)
	}

	var out [3]uint8
	for i := range out {
		pair := hexStr[2*i : 2*i+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q is not a hex digit pair", ErrMalformedHex, pair)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// NormalizeRGB converts any accepted RGB input shape into a canonical triple:
//
//   - a single hex string ("#FF8800", "ff8800", shorthand "F80")
//   - a single RGB value
//   - a single [3]int or 3-element []int
//   - exactly three int arguments
//
// Downstream callers never need to know which form was used. A wrong number
// or shape of arguments yields ErrRGBArity; an unsupported element type
// yields ErrUnsupportedRGBInput; channel bounds are checked by NewRGB.
func NormalizeRGB(args ...any) (RGB, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case string:
			return ParseHex(v)
		case RGB:
			return v, nil
		case [3]int:
			return NewRGB(v[0], v[1], v[2])
		case []int:
			if len(v) != 3 {
				return RGB{}, fmt.Errorf("%w: sequence must have exactly 3 values, got %d", ErrRGBArity, len(v))
			}
			return NewRGB(v[0], v[1], v[2])
		default:
			return RGB{}, fmt.Errorf("%w: %T", ErrUnsupportedRGBInput, args[0])
		}
	case 3:
		var channels [3]int
		for i, a := range args {
			n, ok := a.(int)
			if !ok {
				return RGB{}, fmt.Errorf("%w: argument %d is %T, expected int", ErrUnsupportedRGBInput, i+1, a)
			}
			channels[i] = n
		}
		return NewRGB(channels[0], channels[1], channels[2])
	default:
		return RGB{}, fmt.Errorf("%w: got %d arguments", ErrRGBArity, len(args))
	}
}

// ForegroundRGB returns a truecolor code for the foreground using the
// 38;2;r;g;b form. It accepts the same input shapes as NormalizeRGB.
func ForegroundRGB(args ...any) (Code, error) {
	rgb, err := NormalizeRGB(args...)
	if err != nil {
		return Code{}, err
	}
	return newCode(KindForeground, fmt.Sprintf("38;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)), nil
}

// BackgroundRGB returns a truecolor code for the background using the
// 48;2;r;g;b form. It accepts the same input shapes as NormalizeRGB.
func BackgroundRGB(args ...any) (Code, error) {
	rgb, err := NormalizeRGB(args...)
	if err != nil {
		return Code{}, err
	}
	return newCode(KindBackground, fmt.Sprintf("48;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)), nil
}
