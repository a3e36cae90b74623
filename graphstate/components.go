package graphstate

// RecomputeComponents fills the component caches, using an explicit stack
// for each traversal rather than recursion. Directedness policy:
//   - undirected: edges are read through the canonical adjacency (HasEdge),
//     so the computed components are the graph's weakly-connected
//     components.
//   - directed: only outgoing edges A[u][*] are followed, so a vertex
//     already reached by an earlier start vertex's forward search is
//     skipped even if it has its own outgoing edges into unvisited
//     territory — the computed components are forward-reachable sets in
//     start-vertex order, not true strongly- or weakly-connected
//     components. This mirrors the upstream behavior and is preserved
//     deliberately.
func (g *Graph) RecomputeComponents() {
	marked := make([]bool, g.n)
	largest := 0
	count := 0

	var stack []int
	for start := 0; start < g.n; start++ {
		if marked[start] {
			continue
		}

		count++
		size := 0
		stack = append(stack[:0], start)
		marked[start] = true

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			for v := 0; v < g.n; v++ {
				if marked[v] {
					continue
				}
				if g.neighborFor(u, v) {
					marked[v] = true
					stack = append(stack, v)
				}
			}
		}

		if size > largest {
			largest = size
		}
	}

	g.largestComponentSize = largest
	g.componentCount = count
}

// neighborFor reports whether v is reachable from u via a single edge,
// under the directedness-specific traversal rule documented on
// RecomputeComponents.
func (g *Graph) neighborFor(u, v int) bool {
	if u == v {
		return false
	}
	if g.directed {
		return g.adj[u][v]
	}
	return g.HasEdge(u, v)
}

// LargestComponentSize lazily recomputes the component caches if stale,
// then returns the largest component size.
func (g *Graph) LargestComponentSize() int {
	if g.largestComponentSize == staleCache {
		g.RecomputeComponents()
	}
	return g.largestComponentSize
}

// ComponentCount lazily recomputes the component caches if stale, then
// returns the number of components.
func (g *Graph) ComponentCount() int {
	if g.componentCount == staleCache {
		g.RecomputeComponents()
	}
	return g.componentCount
}
