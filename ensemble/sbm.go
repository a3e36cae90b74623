package ensemble

import "github.com/katalvlaran/largedevsbm/rngsrc"

// SBM is the Stochastic Block Model ensemble: vertices are partitioned into
// blocks at construction, and the edge probability depends on whether the
// two endpoints share a block.
type SBM struct {
	n        int
	blocks   int
	pIntra   float64
	pInter   float64
	labeling []int
}

// NewSBM returns an SBM policy over n vertices split into blocks blocks,
// with intra-block connectivity cIntra and inter-block connectivity
// cInter (both converted to probabilities via /n). The block labeling is
// drawn uniformly, once, at construction, and is immutable afterward.
func NewSBM(rng *rngsrc.Source, cInter, cIntra float64, blocks, n int) (*SBM, error) {
	if n < 1 {
		return nil, ensembleErrorf("NewSBM", ErrTooFewVertices)
	}
	if blocks < 1 {
		return nil, ensembleErrorf("NewSBM", ErrTooFewBlocks)
	}
	if rng == nil {
		return nil, ensembleErrorf("NewSBM", ErrNeedRandSource)
	}

	labeling := make([]int, n)
	for v := 0; v < n; v++ {
		labeling[v] = int(float64(blocks) * rng.Uniform())
		if labeling[v] >= blocks {
			labeling[v] = blocks - 1
		}
	}

	return &SBM{
		n:        n,
		blocks:   blocks,
		pIntra:   cIntra / float64(n),
		pInter:   cInter / float64(n),
		labeling: labeling,
	}, nil
}

// IntraProbability returns the resolved intra-block probability cIntra/n.
func (s *SBM) IntraProbability() float64 { return s.pIntra }

// InterProbability returns the resolved inter-block probability cInter/n.
func (s *SBM) InterProbability() float64 { return s.pInter }

// Labeling returns the immutable block assignment drawn at construction.
// Callers (Graphviz emission) must not mutate the returned slice.
func (s *SBM) Labeling() []int { return s.labeling }

// ShouldInsert accepts with probability pIntra when u and v share a block,
// pInter otherwise.
func (s *SBM) ShouldInsert(rng *rngsrc.Source, u, v int) bool {
	p := s.pInter
	if s.labeling[u] == s.labeling[v] {
		p = s.pIntra
	}
	return rng.Uniform() <= p
}
