package mcmc

import (
	"math"

	"github.com/katalvlaran/largedevsbm/density"
	"github.com/katalvlaran/largedevsbm/rngsrc"
)

// metropolisAccept accepts the move from value x to x' with probability
// min(1, exp(-(x'-x)/T)). Noise is drawn after x' is known, matching the
// upstream sample-consumption order.
func metropolisAccept(rng *rngsrc.Source, x, xPrime int, temperature float64) bool {
	prob := math.Min(1, math.Exp(-(float64(xPrime-x))/temperature))
	return rng.Uniform() <= prob
}

// wangLandauAccept accepts iff the candidate value falls within [lower,upper]
// and a uniform draw passes exp(g[x]/g[x']) — a ratio of log-densities,
// not the textbook difference exp(g[x]-g[x']). This reproduces the
// upstream acceptance rule exactly; see the design log for why it is kept
// rather than corrected.
func wangLandauAccept(rng *rngsrc.Source, g *density.Vector, x, xPrime, lower, upper int) bool {
	if xPrime < lower || xPrime > upper {
		return false
	}
	exponent := g.At(x) / g.At(xPrime)
	aP := math.Min(1, math.Exp(exponent))
	return rng.Uniform() <= aP
}
