package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/simconfig"
)

func TestReadInteractiveERSimple(t *testing.T) {
	input := "n n /tmp/out 10 0 42 0 0 1.0 0 100"
	cfg, err := ReadInteractive(strings.NewReader(input))
	require.NoError(t, err)

	assert.False(t, cfg.Digraph)
	assert.False(t, cfg.LoopsAllowed)
	assert.Equal(t, "/tmp/out", cfg.Dir)
	assert.Equal(t, 10, cfg.N)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, simconfig.GraphER, cfg.Graph)
	assert.InDelta(t, 1.0, cfg.C, 1e-9)
	assert.Equal(t, simconfig.ActionSimple, cfg.Action)
	assert.Equal(t, 100, cfg.Samples)
}

func TestReadInteractiveSBMWangLandau(t *testing.T) {
	input := "y n /tmp/out 20 0 7 0 1 0.1 5.0 2 3 5 15 1000 1e-6"
	cfg, err := ReadInteractive(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, cfg.Digraph)
	assert.Equal(t, simconfig.GraphSBM, cfg.Graph)
	assert.InDelta(t, 0.1, cfg.CInter, 1e-9)
	assert.InDelta(t, 5.0, cfg.CIntra, 1e-9)
	assert.Equal(t, 2, cfg.Blocks)
	assert.Equal(t, simconfig.ActionWangLandau, cfg.Action)
	assert.Equal(t, 5, cfg.Lower)
	assert.Equal(t, 15, cfg.Upper)
	assert.Equal(t, 1000, cfg.SweepsToEvaluate)
	assert.InDelta(t, 1e-6, cfg.FFinal, 1e-12)
}

func TestReadInteractiveRejectsMalformedYesNo(t *testing.T) {
	_, err := ReadInteractive(strings.NewReader("maybe n /tmp 10 0 1 0 0 1.0 0 1"))
	assert.ErrorIs(t, err, ErrMalformedYesNo)
}

func TestReadInteractiveRejectsUnsupportedGenerator(t *testing.T) {
	_, err := ReadInteractive(strings.NewReader("n n /tmp 10 1 1 0 0 1.0 0 1"))
	assert.ErrorIs(t, err, ErrUnsupportedGenerator)
}
