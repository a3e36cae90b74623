package mcmc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/density"
	"github.com/katalvlaran/largedevsbm/ensemble"
	"github.com/katalvlaran/largedevsbm/graphstate"
	"github.com/katalvlaran/largedevsbm/histogram"
	"github.com/katalvlaran/largedevsbm/observable"
	"github.com/katalvlaran/largedevsbm/rngsrc"
)

func newTestDriver(t *testing.T, n int) *Driver {
	g, err := graphstate.New(n, false, false)
	require.NoError(t, err)
	rng := rngsrc.New(42)
	pol, err := ensemble.NewER(1.0, n)
	require.NoError(t, err)
	return NewDriver(g, rng, pol, observable.LargestComponent{})
}

func TestSimpleSamplingWritesKRowsAndHistogram(t *testing.T) {
	d := newTestDriver(t, 8)
	hist, err := histogram.NewHistogram(8)
	require.NoError(t, err)

	var samples, histOut bytes.Buffer
	require.NoError(t, d.SimpleSampling(20, hist, &samples, &histOut))

	lines := strings.Split(strings.TrimSpace(samples.String()), "\n")
	assert.Len(t, lines, 20)
	assert.Equal(t, 20, hist.N())
}

func TestMetropolisRejectsZeroTemperature(t *testing.T) {
	d := newTestDriver(t, 6)
	hist, err := histogram.NewHistogram(6)
	require.NoError(t, err)

	var samples, histOut bytes.Buffer
	err = d.Metropolis(0, 5, 1, hist, &samples, &histOut)
	assert.ErrorIs(t, err, ErrZeroTemperature)
}

func TestMetropolisEmitsOneRowPerSweep(t *testing.T) {
	d := newTestDriver(t, 5)
	hist, err := histogram.NewHistogram(5)
	require.NoError(t, err)

	var samples, histOut bytes.Buffer
	require.NoError(t, d.Metropolis(1.0, 10, 2, hist, &samples, &histOut))

	lines := strings.Split(strings.TrimSpace(samples.String()), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, 10, hist.N())
}

func TestEquilibrationProbeEmitsOneRowPerSweep(t *testing.T) {
	rng := rngsrc.New(7)
	pol, err := ensemble.NewER(1.0, 5)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, EquilibrationProbe(5, false, false, rng, pol, observable.LargestComponent{}, 1.0, 3, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)
}

func TestWangLandauTerminatesAndPopulatesBins(t *testing.T) {
	d := newTestDriver(t, 10)
	hist, err := histogram.NewHistogram(10)
	require.NoError(t, err)
	dens := density.NewVector(10)

	var progress, histOut, densOut bytes.Buffer
	require.NoError(t, d.WangLandau(3, 8, 2, 0.25, hist, dens, &progress, &histOut, &densOut))

	assert.Greater(t, hist.N(), 0)
	assert.Greater(t, dens.At(d.Obs.Value(d.Graph)), 0.0)
}
