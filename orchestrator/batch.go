package orchestrator

import (
	"fmt"

	"github.com/katalvlaran/largedevsbm/ensemble"
	"github.com/katalvlaran/largedevsbm/graphstate"
	"github.com/katalvlaran/largedevsbm/rngsrc"
	"github.com/katalvlaran/largedevsbm/sink"
)

// RunBatch implements the "generate graph" batch mode: args must be
// exactly [dir, file, n, B, c_inter, c_intra, seed] — the positional
// argv[2:9] tail after the "1" mode selector. It builds an SBM graph
// (always undirected, never self-looped — the upstream batch path never
// exposed a digraph/loops toggle), samples one random graph, writes it to
// "<dir>/<file>.gv", and returns the largest component size.
func RunBatch(args []string) (int, error) {
	if len(args) != 7 {
		return 0, orchestratorErrorf("RunBatch", ErrBatchArgCount)
	}

	dir, file := args[0], args[1]
	var n, blocks int
	var cInter, cIntra float64
	var seed int64

	if _, err := fmt.Sscan(args[2], &n); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	if _, err := fmt.Sscan(args[3], &blocks); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	if _, err := fmt.Sscan(args[4], &cInter); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	if _, err := fmt.Sscan(args[5], &cIntra); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	if _, err := fmt.Sscan(args[6], &seed); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}

	rng := rngsrc.New(seed)

	policy, err := ensemble.NewSBM(rng, cInter, cIntra, blocks, n)
	if err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}

	g, err := graphstate.New(n, false, false)
	if err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	if err := g.Random(rng, policy); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	g.RecomputeComponents()

	s, err := sink.NewSink(dir)
	if err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}

	w, err := s.Create(sink.GraphvizFile(file))
	if err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}
	defer w.Close()

	if err := graphstate.WriteDOT(w, g, file, policy.Labeling()); err != nil {
		return 0, orchestratorErrorf("RunBatch", err)
	}

	return g.LargestComponentSize(), nil
}
