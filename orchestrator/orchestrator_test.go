package orchestrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/largedevsbm/simconfig"
)

func TestRunSimpleWritesExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &simconfig.Config{
		Digraph:      false,
		LoopsAllowed: false,
		Dir:          dir,
		N:            8,
		Generator:    simconfig.GeneratorRandom,
		Seed:         1,
		Value:        simconfig.ValueLargestComponent,
		Graph:        simconfig.GraphER,
		C:            1.0,
		Action:       simconfig.ActionSimple,
		Samples:      15,
	}

	o, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, o.Run())

	_, err = os.Stat(filepath.Join(dir, "ss_8_15.dat"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "hist_ss_8_15.dat"))
	assert.NoError(t, err)
}

func TestRunBatchWritesGraphviz(t *testing.T) {
	dir := t.TempDir()
	lc, err := RunBatch([]string{dir, "mygraph", "20", "2", "0.1", "5.0", "3"})
	require.NoError(t, err)
	assert.Greater(t, lc, 0)

	_, err = os.Stat(filepath.Join(dir, "mygraph.gv"))
	assert.NoError(t, err)
}

func TestRunBatchRejectsWrongArgCount(t *testing.T) {
	_, err := RunBatch([]string{"only", "two"})
	assert.ErrorIs(t, err, ErrBatchArgCount)
}
