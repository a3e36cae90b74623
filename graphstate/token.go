package graphstate

// Token records everything a move needs to undo itself: every edge removed
// from the chosen vertex's row/column, in removal order (replayed LIFO so
// revert re-adds the most recently removed edge first), plus a snapshot of
// the counters taken immediately before the move began.
type Token struct {
	removed []edgeRecord

	snapEdgeCount int
	snapLC        int
	snapNC        int
}

// newToken returns a Token holding a snapshot of g's counters. The removed
// edges are filled in afterwards from removeAllEdgesOfVertex's return value;
// callers never construct a Token by hand.
func newToken(g *Graph) *Token {
	return &Token{
		snapEdgeCount: g.edgeCount,
		snapLC:        g.largestComponentSize,
		snapNC:        g.componentCount,
	}
}

// replay returns the recorded edges in LIFO order: the last edge removed is
// the first one re-added during revert.
func (tok *Token) replay() []edgeRecord {
	out := make([]edgeRecord, len(tok.removed))
	for i, r := range tok.removed {
		out[len(tok.removed)-1-i] = r
	}
	return out
}
