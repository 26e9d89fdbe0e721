package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// maxNestingDepth bounds container nesting during flattening. A []any can
// contain itself, so an unbounded walk over caller-supplied containers could
// loop forever; exceeding the limit reports ErrNestingTooDeep instead.
const maxNestingDepth = 64

type flattenFrame struct {
	item  any
	depth int
}

// Flatten expands codes, preformed escape strings, and arbitrarily nested
// containers of either into a flat Sequence, preserving depth-first
// left-to-right encounter order. Supported container types are []any, []Code,
// and []string; any other element type yields ErrUnsupportedCodeType. The
// traversal uses an explicit stack so deeply nested input cannot exhaust the
// call stack.
func Flatten(items ...any) (Sequence, error) {
	seq := make(Sequence, 0, len(items))
	stack := make([]flattenFrame, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, flattenFrame{item: items[i]})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.depth > maxNestingDepth {
			return nil, fmt.Errorf("%w: limit %d", ErrNestingTooDeep, maxNestingDepth)
		}

		switch v := frame.item.(type) {
		case Code:
			if v.IsZero() {
				return nil, fmt.Errorf("%w: zero Code value", ErrEmptyCode)
			}
			seq = append(seq, v)
		case string:
			codes, err := parseSequence(v)
			if err != nil {
				return nil, err
			}
			seq = append(seq, codes...)
		case []any:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, flattenFrame{item: v[i], depth: frame.depth + 1})
			}
		case []Code:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, flattenFrame{item: v[i], depth: frame.depth + 1})
			}
		case []string:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, flattenFrame{item: v[i], depth: frame.depth + 1})
			}
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedCodeType, frame.item)
		}
	}

	return seq, nil
}

// parseSequence splits a preformed escape string, one or more concatenated
// "\x1b[<params>m" sequences, into individual codes so the composer can merge
// their parameters into a single prefix.
func parseSequence(s string) ([]Code, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrEmptyCode)
	}

	var codes []Code
	rest := s
	for len(rest) > 0 {
		if !strings.HasPrefix(rest, csi) {
			return nil, fmt.Errorf("%w: %q does not start with CSI", ErrMalformedSequence, s)
		}
		end := strings.IndexByte(rest, sgrFinal[0])
		if end < 0 {
			return nil, fmt.Errorf("%w: %q has no SGR terminator", ErrMalformedSequence, s)
		}
		params := rest[len(csi):end]
		if !validParams(params) {
			return nil, fmt.Errorf("%w: invalid parameters in %q", ErrMalformedSequence, s)
		}
		codes = append(codes, newCode(inferKind(params), params))
		rest = rest[end+1:]
	}
	return codes, nil
}

// validParams reports whether params is a non-empty ";"-joined list of
// decimal integers.
func validParams(params string) bool {
	if params == "" {
		return false
	}
	for _, field := range strings.Split(params, ";") {
		if field == "" {
			return false
		}
		for _, r := range field {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// inferKind classifies a parsed parameter list by its leading parameter.
func inferKind(params string) Kind {
	first := params
	if i := strings.IndexByte(params, ';'); i >= 0 {
		first = params[:i]
	}
	n, err := strconv.Atoi(first)
	if err != nil {
		return KindStyle
	}
	switch {
	case n == 38 || n == 39 || (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
		return KindForeground
	case n == 48 || n == 49 || (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
		return KindBackground
	default:
		return KindStyle
	}
}
