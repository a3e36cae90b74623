package graphstate

import "github.com/katalvlaran/largedevsbm/rngsrc"

// Candidate performs the reversible single-vertex re-randomization move:
//  1. Pick v uniformly from [0,n).
//  2. Snapshot edgeCount/lc/nc into the token.
//  3. Remove every edge incident to v, recording it in the token.
//  4. For every other vertex u (and v itself if loops are allowed), consult
//     policy and re-insert the edges it accepts.
//
// Returns the chosen vertex and a Token that Revert can use to restore the
// pre-move graph bit-for-bit.
//
// Reversibility: the proposal distribution is symmetric because v is drawn
// uniformly and, given v, every edge incident to v is independently
// re-sampled under the same policy regardless of the prior configuration —
// the joint distribution over v's edges depends only on the ensemble. This
// is what makes the Metropolis acceptance rule below correct.
func (g *Graph) Candidate(rng *rngsrc.Source, policy Policy) (int, *Token, error) {
	if rng == nil {
		return 0, nil, graphstateErrorf("Candidate", ErrNeedRandSource)
	}
	if policy == nil {
		return 0, nil, graphstateErrorf("Candidate", ErrNeedPolicy)
	}

	v := rng.UniformVertex(g.n)

	tok := newToken(g)
	tok.removed = g.removeAllEdgesOfVertex(v)

	if g.directed {
		for u := 0; u < g.n; u++ {
			if u == v && !g.loopsAllowed {
				continue
			}
			if policy.ShouldInsert(rng, v, u) {
				g.addEdge(v, u)
			}
			if u != v && policy.ShouldInsert(rng, u, v) {
				g.addEdge(u, v)
			}
		}
	} else {
		for u := 0; u < g.n; u++ {
			if u == v {
				if g.loopsAllowed && policy.ShouldInsert(rng, v, v) {
					g.addEdge(v, v)
				}
				continue
			}
			if policy.ShouldInsert(rng, v, u) {
				g.addEdge(v, u)
			}
		}
	}

	return v, tok, nil
}

// Revert removes every edge currently incident to v, then re-adds exactly
// the edges recorded in tok, restoring edgeCount/lc/nc from the snapshot.
// Postcondition: the adjacency matrix is bit-identical to the state before
// the matching Candidate call.
func (g *Graph) Revert(v int, tok *Token) {
	g.removeAllEdgesOfVertex(v)

	for _, r := range tok.replay() {
		g.addEdge(r.h, r.t)
	}

	g.edgeCount = tok.snapEdgeCount
	g.largestComponentSize = tok.snapLC
	g.componentCount = tok.snapNC
}
