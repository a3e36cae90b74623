package graphstate

import "github.com/katalvlaran/largedevsbm/rngsrc"

// staleCache marks largestComponentSize/componentCount as needing
// recomputation. Real component sizes and counts are always >=1, so -1 can
// never be mistaken for a computed value.
const staleCache = -1

// Policy decides whether a candidate edge (u,v) should be inserted. It is
// the sole ensemble-specific behavior consulted by generators and moves;
// implementations (ER, SBM) live in package ensemble and must be stateless
// with respect to graph mutation.
type Policy interface {
	ShouldInsert(rng *rngsrc.Source, u, v int) bool
}

// Graph is a fixed-size dense-adjacency graph mutated in place by the MCMC
// move operator. n, directed, and loopsAllowed are immutable after New.
type Graph struct {
	n            int
	directed     bool
	loopsAllowed bool

	adj       [][]bool
	edgeCount int

	largestComponentSize int
	componentCount       int
}

// New returns an empty Graph on n vertices: all adjacency bits false,
// edgeCount 0, component caches stale.
func New(n int, directed, loopsAllowed bool) (*Graph, error) {
	if n < 1 {
		return nil, graphstateErrorf("New", ErrTooFewVertices)
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return &Graph{
		n:                    n,
		directed:             directed,
		loopsAllowed:         loopsAllowed,
		adj:                  adj,
		edgeCount:            0,
		largestComponentSize: staleCache,
		componentCount:       staleCache,
	}, nil
}

// N returns the fixed vertex count.
func (g *Graph) N() int { return g.n }

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// LoopsAllowed reports whether self-loops are permitted.
func (g *Graph) LoopsAllowed() bool { return g.loopsAllowed }

// EdgeCount returns the number of canonical true adjacency entries.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasEdge reports the canonical adjacency bit for (u,v). For undirected
// graphs this consults A[max(u,v)][min(u,v)] regardless of argument order.
func (g *Graph) HasEdge(u, v int) bool {
	if g.directed {
		return g.adj[u][v]
	}
	if u == v {
		return g.adj[u][u]
	}
	hi, lo := u, v
	if lo > hi {
		hi, lo = lo, hi
	}
	return g.adj[hi][lo]
}
