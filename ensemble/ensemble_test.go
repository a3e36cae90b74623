package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/rngsrc"
)

func TestNewERRejectsTooFewVertices(t *testing.T) {
	_, err := NewER(1.0, 0)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestERProbability(t *testing.T) {
	e, err := NewER(2.0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, e.Probability(), 1e-12)
}

func TestNewSBMRejectsTooFewBlocks(t *testing.T) {
	rng := rngsrc.New(1)
	_, err := NewSBM(rng, 0.1, 5.0, 0, 10)
	assert.ErrorIs(t, err, ErrTooFewBlocks)
}

func TestNewSBMRequiresRand(t *testing.T) {
	_, err := NewSBM(nil, 0.1, 5.0, 2, 10)
	assert.ErrorIs(t, err, ErrNeedRandSource)
}

func TestSBMLabelingInRange(t *testing.T) {
	rng := rngsrc.New(3)
	s, err := NewSBM(rng, 0.1, 5.0, 2, 30)
	require.NoError(t, err)

	for _, b := range s.Labeling() {
		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, 2)
	}
}

func TestSBMShouldInsertUsesIntraAboveInter(t *testing.T) {
	rng := rngsrc.New(4)
	s, err := NewSBM(rng, 0.0, 1.0, 2, 20)
	require.NoError(t, err)

	var sameBlockPair [2]int
	found := false
	labels := s.Labeling()
	for u := 0; u < 20 && !found; u++ {
		for v := u + 1; v < 20 && !found; v++ {
			if labels[u] == labels[v] {
				sameBlockPair = [2]int{u, v}
				found = true
			}
		}
	}
	require.True(t, found, "expected at least one same-block pair among 20 vertices in 2 blocks")

	// cIntra=1.0 over n=20 gives pIntra=0.05; cInter=0 gives pInter=0, so a
	// same-block pair must sometimes accept while a cross-block pair never does.
	accepted := false
	for i := 0; i < 10000; i++ {
		if s.ShouldInsert(rng, sameBlockPair[0], sameBlockPair[1]) {
			accepted = true
			break
		}
	}
	assert.True(t, accepted)
}
