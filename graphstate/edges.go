package graphstate

import "github.com/katalvlaran/largedevsbm/rngsrc"

// addEdge inserts (u,v) if absent and legal, bumping edgeCount and
// invalidating the component caches. Returns true iff an edge was actually
// added; when nothing is added the caches are left untouched.
func (g *Graph) addEdge(u, v int) bool {
	if u == v && !g.loopsAllowed {
		return false
	}

	if g.directed {
		if g.adj[u][v] {
			return false
		}
		g.adj[u][v] = true
		g.edgeCount++
		g.invalidateCaches()
		return true
	}

	hi, lo := u, v
	if lo > hi {
		hi, lo = lo, hi
	}
	if g.adj[hi][lo] {
		return false
	}
	g.adj[hi][lo] = true
	g.edgeCount++
	g.invalidateCaches()
	return true
}

// removeEdge clears (u,v) if present, bumping down edgeCount and
// invalidating caches. Returns true iff a bit was actually cleared.
func (g *Graph) removeEdge(u, v int) bool {
	if g.directed {
		if !g.adj[u][v] {
			return false
		}
		g.adj[u][v] = false
		g.edgeCount--
		g.invalidateCaches()
		return true
	}

	hi, lo := u, v
	if lo > hi {
		hi, lo = lo, hi
	}
	if !g.adj[hi][lo] {
		return false
	}
	g.adj[hi][lo] = false
	g.edgeCount--
	g.invalidateCaches()
	return true
}

func (g *Graph) invalidateCaches() {
	g.largestComponentSize = staleCache
	g.componentCount = staleCache
}

// edgeRecord is a single (head,tail) pair removed from the graph during a
// move, recorded head-first so revert can replay it as addEdge(h,t)
// verbatim. For undirected edges head is always the canonical max(u,v).
type edgeRecord struct {
	h, t int
}

// removeAllEdgesOfVertex clears every edge incident to v (both directions
// for directed graphs, the canonical row+column for undirected) and
// returns the removed edges in removal order, ready for LIFO replay.
func (g *Graph) removeAllEdgesOfVertex(v int) []edgeRecord {
	var removed []edgeRecord

	if g.directed {
		for u := 0; u < g.n; u++ {
			if g.adj[v][u] {
				g.removeEdge(v, u)
				removed = append(removed, edgeRecord{h: v, t: u})
			}
			if u != v && g.adj[u][v] {
				g.removeEdge(u, v)
				removed = append(removed, edgeRecord{h: u, t: v})
			}
		}
		return removed
	}

	for u := 0; u < g.n; u++ {
		if g.HasEdge(v, u) {
			g.removeEdge(v, u)
			hi, lo := v, u
			if lo > hi {
				hi, lo = lo, hi
			}
			removed = append(removed, edgeRecord{h: hi, t: lo})
		}
	}
	return removed
}

// AddRandomEdge repeatedly samples an unordered (undirected) or ordered
// (directed) pair and inserts it via policy consultation, retrying until an
// edge is actually added. Used by the Wang-Landau warm-start, which must
// add edges one at a time until the largest component clears a threshold.
func (g *Graph) AddRandomEdge(rng *rngsrc.Source, policy Policy) {
	for {
		u := rng.UniformVertex(g.n)
		v := rng.UniformVertex(g.n)
		if u == v && !g.loopsAllowed {
			continue
		}
		if g.HasEdge(u, v) {
			continue
		}
		if policy.ShouldInsert(rng, u, v) {
			g.addEdge(u, v)
			return
		}
	}
}
