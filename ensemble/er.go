package ensemble

import "github.com/katalvlaran/largedevsbm/rngsrc"

// ER is the Erdős–Rényi ensemble: every candidate edge is included
// independently with probability p = c/n.
type ER struct {
	n int
	c float64
	p float64
}

// NewER returns an ER policy with connectivity parameter c over n
// vertices. p = c/n is precomputed once; n>=1 required.
func NewER(c float64, n int) (*ER, error) {
	if n < 1 {
		return nil, ensembleErrorf("NewER", ErrTooFewVertices)
	}
	return &ER{n: n, c: c, p: c / float64(n)}, nil
}

// Probability returns the resolved per-edge probability c/n.
func (e *ER) Probability() float64 { return e.p }

// ShouldInsert accepts with probability p, independent of (u,v).
func (e *ER) ShouldInsert(rng *rngsrc.Source, _, _ int) bool {
	return rng.Uniform() <= e.p
}
