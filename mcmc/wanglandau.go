package mcmc

import (
	"fmt"
	"io"

	"github.com/katalvlaran/largedevsbm/density"
	"github.com/katalvlaran/largedevsbm/histogram"
	"github.com/katalvlaran/largedevsbm/simerr"
)

// wlInitialModFac is the starting modification factor. The source stores
// density and f in log-space and initializes f = ln(e) = 1.0 — the
// literature's f0=e convention expressed directly as a log-space value.
const wlInitialModFac = 1.0

// WangLandau runs flat-histogram sampling over [lower,upper]: it starts
// from an empty graph, adds random edges until the largest component
// exceeds lower, then iterates the Wang-Landau step until the modification
// factor drops below fFinal. A progress line is emitted every 100*n steps.
// hist and dens accumulate the run; hist is saved to histOut and dens to
// densOut when the run completes. Bounds with lower<1, upper>n, or
// lower>upper fail with simerr.ErrOutOfRange before any sampling.
func (d *Driver) WangLandau(lower, upper, sweepsToEvaluate int, fFinal float64, hist *histogram.Histogram, dens *density.Vector, progress, histOut, densOut io.Writer) error {
	n := d.Graph.N()

	if lower < 1 || upper > n || lower > upper {
		return mcmcErrorf("WangLandau", fmt.Errorf("bounds [%d,%d] outside [1,%d]: %w", lower, upper, n, simerr.ErrOutOfRange))
	}

	d.Graph.Empty()
	for d.Graph.LargestComponentSize() <= lower {
		d.Graph.AddRandomEdge(d.RNG, d.Policy)
	}

	modiFac := wlInitialModFac
	saturated := false
	t := 0

	for {
		t++

		xBefore := d.Obs.Value(d.Graph)
		v, tok, err := d.Graph.Candidate(d.RNG, d.Policy)
		if err != nil {
			return mcmcErrorf("WangLandau", err)
		}
		xAfter := d.Obs.Value(d.Graph)

		var xCurrent int
		if wangLandauAccept(d.RNG, dens, xBefore, xAfter, lower, upper) {
			xCurrent = xAfter
		} else {
			d.Graph.Revert(v, tok)
			xCurrent = xBefore
		}

		dens.Add(xCurrent, modiFac)
		if err := hist.Increment(xCurrent); err != nil {
			return mcmcErrorf("WangLandau", err)
		}

		if t%(100*n) == 0 {
			if _, err := fmt.Fprintf(progress, "%d %g %d\n", t, modiFac, xCurrent); err != nil {
				return mcmcErrorf("WangLandau", err)
			}
		}

		if t%(sweepsToEvaluate*n) == 0 {
			tOverN := float64(t) / float64(n)
			if !saturated && modiFac > 1.0/tOverN && hist.AllBinsNonZero(lower, upper) {
				modiFac /= 2
				if modiFac >= fFinal {
					hist.Reset()
				}
			}
		}

		if t%n == 0 {
			tOverN := float64(t) / float64(n)
			if saturated || modiFac <= 1.0/tOverN {
				saturated = true
				modiFac = 1.0 / tOverN
			}
		}

		if modiFac < fFinal {
			break
		}
	}

	if err := hist.Save(histOut); err != nil {
		return mcmcErrorf("WangLandau", err)
	}
	return dens.Save(densOut, lower, upper, t)
}
