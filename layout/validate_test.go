package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(lineLen, lines int) TextBlock {
	row := strings.Repeat("x", lineLen)
	return NewTextBlock(strings.TrimSuffix(strings.Repeat(row+"\n", lines), "\n"))
}

func TestCheckExhibitBoundaries(t *testing.T) {
	l := DefaultLimits()

	require.NoError(t, l.CheckExhibit(block(104, 34)))

	err := l.CheckExhibit(block(105, 34))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLineTooWide))
	var le *Error
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 1, le.Line)
	assert.Equal(t, 105, le.Actual)

	err = l.CheckExhibit(block(104, 35))
	assert.True(t, errors.Is(err, ErrTooManyLines))

	err = l.CheckExhibit(block(105, 35))
	assert.True(t, errors.Is(err, ErrLineTooWide), "width is checked before line count")
}

func TestBasicSizeForAcceptedText(t *testing.T) {
	m := DefaultMetrics()
	l := DefaultLimits()
	for _, dims := range [][2]int{{1, 1}, {5, 2}, {104, 34}, {60, 10}} {
		b := block(dims[0], dims[1])
		require.NoError(t, l.CheckExhibit(b))
		assert.Equal(t, Size{Width: dims[0]*9 + 12, Height: dims[1]*17 + 12}, BasicSize(m, b))
	}
}

func TestCheckOption(t *testing.T) {
	l := DefaultLimits()

	require.NoError(t, l.CheckOption(mustOption(t, "a\nb\nc")))
	require.NoError(t, l.CheckOption(mustOption(t, strings.Repeat("w", 50))))

	assert.True(t, errors.Is(l.CheckOption(mustOption(t, "a\nb\nc\nd")), ErrOptionTooTall))
	assert.True(t, errors.Is(l.CheckOption(mustOption(t, "ok\n"+strings.Repeat("w", 51))), ErrOptionLineTooLong))
	assert.True(t, errors.Is(l.CheckOption(Option{}), ErrEmptyOption))
}

func TestAdmitCommitsOnlyOnSuccess(t *testing.T) {
	l := DefaultLimits()
	var committed CommittedLayout

	ok := Proposal{Exhibit: Size{Width: 100, Height: 100}, Total: Size{Width: 100, Height: 200}}
	require.NoError(t, l.Admit(&committed, ok))
	assert.True(t, committed.Valid)
	assert.Equal(t, ok, committed.Proposal)

	tooTall := Proposal{Exhibit: Size{Width: 1, Height: 1}, Total: Size{Width: 100, Height: 765}}
	err := l.Admit(&committed, tooTall)
	assert.True(t, errors.Is(err, ErrProposedHeightExceeded))
	assert.Equal(t, ok, committed.Proposal, "a rejected proposal leaves the committed layout untouched")

	tooWide := Proposal{Total: Size{Width: 951, Height: 765}}
	err = l.Admit(&committed, tooWide)
	assert.True(t, errors.Is(err, ErrProposedWidthExceeded))
	assert.Equal(t, ok, committed.Proposal)

	exact := Proposal{Total: Size{Width: 950, Height: 764}}
	require.NoError(t, l.Admit(&committed, exact))
	assert.Equal(t, exact, committed.Proposal)
}
