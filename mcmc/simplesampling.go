package mcmc

import (
	"fmt"
	"io"

	"github.com/katalvlaran/largedevsbm/histogram"
)

// SimpleSampling generates k independent fresh random graphs, recording
// (i, value, component_count, edge_count) for each to samples and
// incrementing hist with the observed value. hist is saved to histOut at
// the end.
func (d *Driver) SimpleSampling(k int, hist *histogram.Histogram, samples, histOut io.Writer) error {
	for i := 0; i < k; i++ {
		if err := d.Graph.Random(d.RNG, d.Policy); err != nil {
			return mcmcErrorf("SimpleSampling", err)
		}
		d.Graph.RecomputeComponents()

		value := d.Obs.Value(d.Graph)
		stats := d.Obs.Statistics(d.Graph)

		if _, err := fmt.Fprintf(samples, "%d %d %d %d\n", i, value, stats.ComponentCount, stats.EdgeCount); err != nil {
			return mcmcErrorf("SimpleSampling", err)
		}
		if err := hist.Increment(value); err != nil {
			return mcmcErrorf("SimpleSampling", err)
		}
	}

	return hist.Save(histOut)
}
