package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_PreservesNestedOrder(t *testing.T) {
	// [A, [B, [C, D]], E] must flatten depth-first to [A, B, C, D, E].
	a, b, c, d, e := Bold, FgRed, BgBlue, Underline, Dim

	seq, err := Flatten(a, []any{b, []any{c, d}}, e)
	require.NoError(t, err)
	assert.Equal(t, Sequence{a, b, c, d, e}, seq)
}

func TestFlatten_SingleCode(t *testing.T) {
	seq, err := Flatten(Bold)
	require.NoError(t, err)
	assert.Equal(t, Sequence{Bold}, seq)
}

func TestFlatten_TypedContainers(t *testing.T) {
	seq, err := Flatten([]Code{Bold, FgRed}, []string{"\x1b[4m"})
	require.NoError(t, err)
	assert.Equal(t, "1;31;4", seq.Params())
}

func TestFlatten_PreformedEscapeStrings(t *testing.T) {
	seq, err := Flatten("\x1b[1m")
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, "1", seq[0].Params())
	assert.Equal(t, KindStyle, seq[0].Kind())

	// Concatenated sequences split into individual codes.
	seq, err = Flatten("\x1b[1m\x1b[31m")
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, "1;31", seq.Params())
	assert.Equal(t, KindForeground, seq[1].Kind())

	// Multi-parameter forms stay one code.
	seq, err = Flatten("\x1b[38;5;128m")
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, KindForeground, seq[0].Kind())

	seq, err = Flatten("\x1b[48;2;1;2;3m")
	require.NoError(t, err)
	assert.Equal(t, KindBackground, seq[0].Kind())
}

func TestFlatten_MixedElements(t *testing.T) {
	rgb, err := ForegroundRGB("#FF8800")
	require.NoError(t, err)

	seq, err := Flatten([]any{Bold, "\x1b[4m", []any{rgb}})
	require.NoError(t, err)
	assert.Equal(t, "1;4;38;2;255;136;0", seq.Params())
}

func TestFlatten_Errors(t *testing.T) {
	tests := []struct {
		name    string
		items   []any
		wantErr error
	}{
		{"unsupported element type", []any{42}, ErrUnsupportedCodeType},
		{"nested unsupported element", []any{[]any{Bold, 3.14}}, ErrUnsupportedCodeType},
		{"empty string", []any{""}, ErrEmptyCode},
		{"zero code", []any{Code{}}, ErrEmptyCode},
		{"plain text is not an escape sequence", []any{"red"}, ErrMalformedSequence},
		{"missing terminator", []any{"\x1b[31"}, ErrMalformedSequence},
		{"empty parameters", []any{"\x1b[m"}, ErrMalformedSequence},
		{"non-numeric parameters", []any{"\x1b[3;xm"}, ErrMalformedSequence},
		{"trailing garbage", []any{"\x1b[31mfoo"}, ErrMalformedSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.items...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFlatten_CyclicInput(t *testing.T) {
	cyclic := make([]any, 2)
	cyclic[0] = Bold
	cyclic[1] = cyclic

	_, err := Flatten(cyclic)
	assert.ErrorIs(t, err, ErrNestingTooDeep, "self-referential input must fail, not hang")
}

func TestFlatten_DeepButFiniteNesting(t *testing.T) {
	nested := any(Bold)
	for i := 0; i < 50; i++ {
		nested = []any{nested}
	}

	seq, err := Flatten(nested)
	require.NoError(t, err)
	assert.Equal(t, Sequence{Bold}, seq)
}

func TestFlatten_NestingBeyondLimit(t *testing.T) {
	nested := any(Bold)
	for i := 0; i < maxNestingDepth+1; i++ {
		nested = []any{nested}
	}

	_, err := Flatten(nested)
	assert.ErrorIs(t, err, ErrNestingTooDeep)
}
