package graphstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/rngsrc"
)

type constantPolicy struct{ insert bool }

func (p constantPolicy) ShouldInsert(_ *rngsrc.Source, _, _ int) bool { return p.insert }

type thresholdPolicy struct{ p float64 }

func (t thresholdPolicy) ShouldInsert(rng *rngsrc.Source, _, _ int) bool {
	return rng.Uniform() <= t.p
}

func TestNewRejectsTooFewVertices(t *testing.T) {
	_, err := New(0, false, false)
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCompleteGraphS1(t *testing.T) {
	g, err := New(10, false, false)
	require.NoError(t, err)

	g.Complete()

	assert.Equal(t, 45, g.EdgeCount())
	assert.Equal(t, 10, g.LargestComponentSize())
	assert.Equal(t, 1, g.ComponentCount())
}

func TestEmptyGraphS1(t *testing.T) {
	g, err := New(10, false, false)
	require.NoError(t, err)

	g.Empty()

	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 1, g.LargestComponentSize())
	assert.Equal(t, 10, g.ComponentCount())
}

func TestLineGraphS1(t *testing.T) {
	g, err := New(10, false, false)
	require.NoError(t, err)

	g.Line()

	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, 10, g.LargestComponentSize())
	assert.Equal(t, 1, g.ComponentCount())
}

func TestCanonicalUndirectedStorage(t *testing.T) {
	g, err := New(5, false, false)
	require.NoError(t, err)

	rng := rngsrc.New(1)
	require.NoError(t, g.Random(rng, constantPolicy{insert: true}))

	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i <= j {
				assert.False(t, g.adj[i][j], "A[%d][%d] must be false for i<=j in undirected mode", i, j)
			}
		}
	}
}

func TestEdgeCountMatchesStoredTruths(t *testing.T) {
	g, err := New(6, false, false)
	require.NoError(t, err)
	rng := rngsrc.New(2)
	require.NoError(t, g.Random(rng, thresholdPolicy{p: 0.5}))

	var truths int
	for i := 1; i < g.n; i++ {
		for j := 0; j < i; j++ {
			if g.adj[i][j] {
				truths++
			}
		}
	}
	assert.Equal(t, truths, g.EdgeCount())
}

func TestCandidateRevertRestoresStateS2(t *testing.T) {
	g, err := New(4, false, false)
	require.NoError(t, err)
	rng := rngsrc.New(99)
	require.NoError(t, g.Random(rng, thresholdPolicy{p: 0.5}))
	g.RecomputeComponents()

	policy := thresholdPolicy{p: 0.5}

	for i := 0; i < 1000; i++ {
		before := snapshotAdj(g)
		beforeCount, beforeLC, beforeNC := g.edgeCount, g.largestComponentSize, g.componentCount

		v, tok, err := g.Candidate(rng, policy)
		require.NoError(t, err)
		g.Revert(v, tok)

		assert.Equal(t, before, snapshotAdj(g))
		assert.Equal(t, beforeCount, g.edgeCount)
		assert.Equal(t, beforeLC, g.largestComponentSize)
		assert.Equal(t, beforeNC, g.componentCount)
	}
}

func snapshotAdj(g *Graph) [][]bool {
	out := make([][]bool, len(g.adj))
	for i, row := range g.adj {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

func TestWriteDOTEdgeCountMatchesCanonicalOrder(t *testing.T) {
	g, err := New(4, false, false)
	require.NoError(t, err)
	g.Line()

	var buf strings.Builder
	require.NoError(t, WriteDOT(&buf, g, "g", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var edgeLines int
	for _, l := range lines {
		if strings.Contains(l, "--") {
			edgeLines++
		}
	}
	assert.Equal(t, g.EdgeCount(), edgeLines)
}

func TestDirectedIndependentAdjacency(t *testing.T) {
	g, err := New(3, true, false)
	require.NoError(t, err)
	require.NoError(t, g.Random(rngsrc.New(5), constantPolicy{insert: true}))

	assert.True(t, g.adj[0][1])
	assert.True(t, g.adj[1][0])
}
