package mcmc

import (
	"fmt"
	"io"

	"github.com/katalvlaran/largedevsbm/histogram"
)

// Metropolis starts from a random graph, runs n*equilibrationSweeps steps
// silently, then runs n*sweeps further steps, emitting (sweep_index,
// value, component_count, edge_count) to samples and incrementing hist
// once per sweep (every n-th step). hist is saved to histOut at the end.
// temperature must be nonzero.
func (d *Driver) Metropolis(temperature float64, sweeps, equilibrationSweeps int, hist *histogram.Histogram, samples, histOut io.Writer) error {
	if temperature == 0 {
		return ErrZeroTemperature
	}

	if err := d.Graph.Random(d.RNG, d.Policy); err != nil {
		return mcmcErrorf("Metropolis", err)
	}
	d.Graph.RecomputeComponents()

	n := d.Graph.N()

	for step := 0; step < n*equilibrationSweeps; step++ {
		d.metropolisStep(temperature)
	}

	for step := 1; step <= n*sweeps; step++ {
		value := d.metropolisStep(temperature)

		if step%n == 0 {
			sweep := step / n
			stats := d.Obs.Statistics(d.Graph)
			if _, err := fmt.Fprintf(samples, "%d %d %d %d\n", sweep, value, stats.ComponentCount, stats.EdgeCount); err != nil {
				return mcmcErrorf("Metropolis", err)
			}
			if err := hist.Increment(value); err != nil {
				return mcmcErrorf("Metropolis", err)
			}
		}
	}

	return hist.Save(histOut)
}
