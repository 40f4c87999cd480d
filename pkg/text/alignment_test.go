package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		in        string
		width     int
		alignment Alignment
		expected  string
	}{
		{name: "left", in: "ab", width: 5, alignment: Left, expected: "ab..."},
		{name: "right", in: "ab", width: 5, alignment: Right, expected: "...ab"},
		{name: "center-left", in: "ab", width: 5, alignment: CenterLeft, expected: "..ab."},
		{name: "center-right", in: "ab", width: 5, alignment: CenterRight, expected: ".ab.."},
		{name: "even center", in: "ab", width: 6, alignment: CenterLeft, expected: "..ab.."},
		{name: "center-left one short", in: "abcd", width: 5, alignment: CenterLeft, expected: ".abcd"},
		{name: "center-right one short", in: "abcd", width: 5, alignment: CenterRight, expected: "abcd."},
		{name: "too wide", in: "abcdef", width: 3, alignment: Right, expected: "abcdef"},
		{name: "exact", in: "abc", width: 3, alignment: Left, expected: "abc"},
		{name: "wide runes", in: "日本", width: 6, alignment: Right, expected: "..日本"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Align(tc.in, tc.width, tc.alignment, '.'))
		})
	}
}

func TestAlign_CombiningSequence(t *testing.T) {
	t.Parallel()

	decomposed := "e\u0301"
	assert.Equal(t, 1, Width(decomposed))
	assert.Equal(t, "\u00e9  ", Align(decomposed, 3, Left, ' '))
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()

	for _, name := range Alignments() {
		a, ok := ParseAlignment(name).TryGet()
		require.True(t, ok, name)
		assert.Equal(t, name, a.String())
	}

	a, ok := ParseAlignment(" Center-Right ").TryGet()
	require.True(t, ok)
	assert.Equal(t, CenterRight, a)

	unexpected, failed := ParseAlignment("middle").TryGetError()
	require.True(t, failed)
	assert.Equal(t, []string{"middle"}, unexpected.Names)
	assert.EqualError(t, unexpected, "unexpected names: middle")
}

func TestExpectNames(t *testing.T) {
	t.Parallel()

	assert.True(t, ExpectNames([]string{"a", "b"}, "a", "b", "c").IsSuccess())

	unexpected, failed := ExpectNames([]string{"x", "a", "y"}, "a").TryGetError()
	require.True(t, failed)
	assert.Equal(t, []string{"x", "y"}, unexpected.Names)
}
