package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines int
		wantMax   int
	}{
		{name: "empty", text: "", wantLines: 0, wantMax: 0},
		{name: "missing value sentinel", text: "nan", wantLines: 0, wantMax: 0},
		{name: "sentinel is case and space insensitive", text: " NaN\n", wantLines: 0, wantMax: 0},
		{name: "sentinel inside a word is ordinary text", text: "banana", wantLines: 1, wantMax: 6},
		{name: "two equal lines", text: "Hello\nWorld", wantLines: 2, wantMax: 5},
		{name: "longest line wins", text: "a\nabcd\nab", wantLines: 3, wantMax: 4},
		{name: "crlf is one break", text: "a\r\nbcd", wantLines: 2, wantMax: 3},
		{name: "trailing newline adds an empty line", text: "line\n", wantLines: 2, wantMax: 4},
		{name: "runes not bytes", text: "héllo wörld", wantLines: 1, wantMax: 11},
		{name: "placeholder counts literally", text: "Pick one: _____", wantLines: 1, wantMax: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLines, LineCount(tt.text))
			assert.Equal(t, tt.wantMax, MaxLineLength(tt.text))
		})
	}
}

func TestTextBlockKeepsRaw(t *testing.T) {
	block := NewTextBlock("a\r\nb")
	assert.Equal(t, "a\r\nb", block.Raw)
	assert.Equal(t, []string{"a", "b"}, block.Lines)
}

func TestLiteralBlockKeepsMissingValueText(t *testing.T) {
	block := LiteralBlock("NaN")
	assert.Equal(t, []string{"NaN"}, block.Lines)
	assert.Equal(t, 3, block.MaxLineLength())
	assert.Empty(t, SplitLines(""))

	o, err := NewOption("nan")
	require.NoError(t, err)
	assert.Equal(t, 1, o.Lines)
}
