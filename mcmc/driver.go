package mcmc

import (
	"github.com/katalvlaran/largedevsbm/graphstate"
	"github.com/katalvlaran/largedevsbm/observable"
	"github.com/katalvlaran/largedevsbm/rngsrc"
)

// Driver owns every object a sampling run touches: the graph, the shared
// RNG, the ensemble policy, and the observable. It has no back-reference
// to whatever constructed it.
type Driver struct {
	Graph  *graphstate.Graph
	RNG    *rngsrc.Source
	Policy graphstate.Policy
	Obs    observable.Observable
}

// NewDriver wires a Driver from already-constructed collaborators. The
// orchestrator is the only caller; nothing here mutates global state.
func NewDriver(g *graphstate.Graph, rng *rngsrc.Source, policy graphstate.Policy, obs observable.Observable) *Driver {
	return &Driver{Graph: g, RNG: rng, Policy: policy, Obs: obs}
}

// metropolisStep performs one Metropolis-accepted-or-reverted move and returns the
// value of the observable on the resulting (possibly unchanged) graph.
func (d *Driver) metropolisStep(temperature float64) int {
	x := d.Obs.Value(d.Graph)

	v, tok, err := d.Graph.Candidate(d.RNG, d.Policy)
	if err != nil {
		panic(err) // programmer error: RNG/policy must already be non-nil by construction
	}
	xPrime := d.Obs.Value(d.Graph)

	if metropolisAccept(d.RNG, x, xPrime, temperature) {
		return xPrime
	}
	d.Graph.Revert(v, tok)
	return x
}
