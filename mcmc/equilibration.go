package mcmc

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/largedevsbm/graphstate"
	"github.com/katalvlaran/largedevsbm/observable"
	"github.com/katalvlaran/largedevsbm/rngsrc"
)

// equilibrationStartOrder matches the upstream presenter's chain order:
// complete, line, random, empty.
var equilibrationStartOrder = [4]StartCondition{StartComplete, StartLine, StartRandom, StartEmpty}

// EquilibrationProbe runs four independent chains — seeded from the
// complete, line, random, and empty graphs — in lock-step under the same
// Metropolis rule for n*equilibrationSweeps steps, sharing one RNG and
// policy so the chains are consulted in a fixed, reproducible order. Once
// per sweep it emits "sweep v_complete v_line v_random v_empty", plus a
// running per-chain mean (computed with gonum's stat.Mean) as four
// trailing columns — an additive diagnostic absent from the upstream
// trace. No convergence decision is computed; the trace is the output.
func EquilibrationProbe(n int, directed, loopsAllowed bool, rng *rngsrc.Source, policy graphstate.Policy, obs observable.Observable, temperature float64, equilibrationSweeps int, w io.Writer) error {
	if temperature == 0 {
		return ErrZeroTemperature
	}

	chains := make([]*Driver, 4)
	for i, sc := range equilibrationStartOrder {
		g, err := graphstate.New(n, directed, loopsAllowed)
		if err != nil {
			return mcmcErrorf("EquilibrationProbe", err)
		}
		d := NewDriver(g, rng, policy, obs)
		if err := sc.Apply(g, d); err != nil {
			return mcmcErrorf("EquilibrationProbe", err)
		}
		chains[i] = d
	}

	var history [4][]float64

	for step := 1; step <= n*equilibrationSweeps; step++ {
		var values [4]int
		for i, d := range chains {
			values[i] = d.metropolisStep(temperature)
		}

		if step%n == 0 {
			sweep := step / n
			var means [4]float64
			for i := range chains {
				history[i] = append(history[i], float64(values[i]))
				means[i] = stat.Mean(history[i], nil)
			}
			if _, err := fmt.Fprintf(w, "%d %d %d %d %d %g %g %g %g\n",
				sweep, values[0], values[1], values[2], values[3],
				means[0], means[1], means[2], means[3]); err != nil {
				return mcmcErrorf("EquilibrationProbe", err)
			}
		}
	}

	return nil
}
