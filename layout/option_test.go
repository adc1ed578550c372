package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOption(t *testing.T) {
	o, err := NewOption("alpha\nbe")
	require.NoError(t, err)
	assert.Equal(t, 2, o.Lines)
	assert.Equal(t, 5, o.MaxLineWidth)

	_, err = NewOption("")
	assert.True(t, errors.Is(err, ErrEmptyOption))
	_, err = NewOption("  \n ")
	assert.True(t, errors.Is(err, ErrEmptyOption))
}

func TestOptionRegistryFirstFreeSlot(t *testing.T) {
	r := NewOptionRegistry(DefaultLimits().MaxOptions)
	for i := 1; i <= 10; i++ {
		slot, err := r.Assign(Option{Text: fmt.Sprintf("o%d", i), Lines: 1, MaxLineWidth: i})
		require.NoError(t, err)
		assert.Equal(t, i, slot)
	}
	assert.True(t, r.Full())

	_, err := r.Assign(Option{Text: "eleventh", Lines: 1, MaxLineWidth: 8})
	assert.True(t, errors.Is(err, ErrAllOptionSlotsUsed))
	assert.Equal(t, 10, r.Len())

	got, ok := r.Get(3)
	require.True(t, ok)
	assert.Equal(t, "o3", got.Text)
	assert.Equal(t, 10, r.MaxLineWidth())
	assert.Equal(t, 1, r.MaxLines())

	r.Reset()
	assert.Equal(t, 0, r.Len())
	slot, ok := r.FirstFree()
	assert.True(t, ok)
	assert.Equal(t, 1, slot)
	_, ok = r.Get(3)
	assert.False(t, ok)
}

func TestOptionRegistryOptionsInSlotOrder(t *testing.T) {
	r := NewOptionRegistry(3)
	_, _ = r.Assign(Option{Text: "a", Lines: 1, MaxLineWidth: 1})
	_, _ = r.Assign(Option{Text: "bb\nb", Lines: 2, MaxLineWidth: 2})

	opts := r.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, 1, opts[0].Slot)
	assert.Equal(t, 2, opts[1].Slot)
	assert.Equal(t, "bb\nb", opts[1].Text)
	assert.Equal(t, 2, r.MaxLines())
}
