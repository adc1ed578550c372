package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeFindsMarkers(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		markers []int
		length  int
	}{
		{name: "no marker", line: "plain text", markers: nil, length: 10},
		{name: "trailing marker", line: "Pick one: _____", markers: []int{10}, length: 15},
		{name: "ten underscores are two markers", line: "__________", markers: []int{0, 5}, length: 10},
		{name: "seven underscores are one marker", line: "_______", markers: []int{0}, length: 7},
		{name: "rune offsets", line: "é _____", markers: []int{2}, length: 7},
		{name: "two separated markers", line: "a _____ b _____", markers: []int{2, 10}, length: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := TokenizeLine(0, tt.line)
			assert.Equal(t, tt.markers, tl.Markers)
			assert.Equal(t, tt.length, tl.Length)
			assert.Equal(t, len(tt.markers) > 0, tl.HasMarkers())
		})
	}
}

func TestTokenizeIndexesLines(t *testing.T) {
	lines := Tokenize("first\nsecond _____\nthird")
	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[1].Index)
	assert.True(t, lines[1].HasMarkers())
	assert.False(t, lines[2].HasMarkers())
}

func TestEffectiveWidth(t *testing.T) {
	line := TokenizeLine(0, "Pick one: _____")
	assert.Equal(t, 20, line.EffectiveWidth(1, len("LongerWord")))
	assert.Equal(t, 15, line.EffectiveWidth(0, 10))

	two := TokenizeLine(0, "a _____ b _____")
	assert.Equal(t, 15, two.EffectiveWidth(0, 10))
	assert.Equal(t, 20, two.EffectiveWidth(1, 10))
	assert.Equal(t, 25, two.EffectiveWidth(2, 10))
	assert.Equal(t, 25, two.EffectiveWidth(7, 10), "bound is clamped to the marker count")
	assert.Equal(t, 15, two.EffectiveWidth(-1, 10), "negative bound is clamped to zero")
}

// Substituting option text for bound markers and measuring the line again
// must agree with EffectiveWidth.
func TestEffectiveWidthMatchesSubstitution(t *testing.T) {
	options := []string{"LongerWord", "ab", "x", "exactly5", strings.Repeat("w", 50)}
	lines := []string{"Pick one: _____", "a _____ b _____", "_____", "__________ tail", "é _____ ü"}
	for _, line := range lines {
		tl := TokenizeLine(0, line)
		for _, opt := range options {
			m := utf8.RuneCountInString(opt)
			for bound := 0; bound <= tl.MarkerCount(); bound++ {
				substituted := strings.Replace(line, Marker, opt, bound)
				assert.Equal(t, utf8.RuneCountInString(substituted), tl.EffectiveWidth(bound, m),
					"line=%q option=%q bound=%d", line, opt, bound)
			}
		}
	}
}

func TestFillMarkers(t *testing.T) {
	assert.Equal(t, "x ___ y", FillMarkers("x _____ y", 3))
	assert.Equal(t, "x __________ y", FillMarkers("x _____ y", 10))
	assert.Equal(t, "x _____ y", FillMarkers("x _____ y", 0))
	assert.True(t, ContainsMarker("a"+TargetReplacement+"b"))
}
