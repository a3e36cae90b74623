package observable

import "github.com/katalvlaran/largedevsbm/graphstate"

// Stats carries the auxiliary fields recorded alongside every sampled
// value: component_count and edge_count.
type Stats struct {
	ComponentCount int
	EdgeCount      int
}

// Observable computes a scalar value from a graph, plus auxiliary
// statistics recorded alongside it.
type Observable interface {
	Value(g *graphstate.Graph) int
	Statistics(g *graphstate.Graph) Stats
}

// LargestComponent is the only observable the engine currently supports:
// the size of the largest connected component.
type LargestComponent struct{}

// Value returns g.LargestComponentSize(), lazily recomputing if stale.
func (LargestComponent) Value(g *graphstate.Graph) int {
	return g.LargestComponentSize()
}

// Statistics returns component_count and edge_count for g.
func (LargestComponent) Statistics(g *graphstate.Graph) Stats {
	return Stats{
		ComponentCount: g.ComponentCount(),
		EdgeCount:      g.EdgeCount(),
	}
}
