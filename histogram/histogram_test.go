package histogram

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/simerr"
)

func TestIncrementOutOfRange(t *testing.T) {
	h, err := NewHistogram(5)
	require.NoError(t, err)

	assert.ErrorIs(t, h.Increment(0), simerr.ErrOutOfRange)
	assert.ErrorIs(t, h.Increment(6), simerr.ErrOutOfRange)
	require.NoError(t, h.Increment(1))
	assert.Equal(t, 1, h.N())
}

func TestFlatEnoughS3(t *testing.T) {
	h, err := NewHistogram(5)
	require.NoError(t, err)
	for _, x := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, h.Increment(x))
		require.NoError(t, h.Increment(x))
	}

	assert.True(t, h.FlatEnough(0.9, 1, 5))
}

func TestFlatEnoughFalseWithZeroBinS3(t *testing.T) {
	h, err := NewHistogram(5)
	require.NoError(t, err)
	for _, x := range []int{2, 3, 4, 5} {
		require.NoError(t, h.Increment(x))
		require.NoError(t, h.Increment(x))
	}

	assert.False(t, h.FlatEnough(0.9, 1, 5))
	assert.False(t, h.AllBinsNonZero(1, 5))
}

func TestResetZeroesEverything(t *testing.T) {
	h, err := NewHistogram(3)
	require.NoError(t, err)
	require.NoError(t, h.Increment(2))
	h.Reset()

	assert.Equal(t, 0, h.N())
	assert.Equal(t, 0, h.MinBin(1, 3))
}

func TestSaveWritesOnlyNonZeroBins(t *testing.T) {
	h, err := NewHistogram(4)
	require.NoError(t, err)
	require.NoError(t, h.Increment(1))
	require.NoError(t, h.Increment(1))
	require.NoError(t, h.Increment(3))

	var buf bytes.Buffer
	require.NoError(t, h.Save(&buf))

	out := buf.String()
	assert.Contains(t, out, "1 2 ")
	assert.Contains(t, out, "3 1 ")
	assert.NotContains(t, out, "2 0 ")
	assert.NotContains(t, out, "4 0")
}
