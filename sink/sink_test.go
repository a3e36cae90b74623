package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSinkRejectsEmptyDir(t *testing.T) {
	_, err := NewSink("")
	assert.ErrorIs(t, err, ErrEmptyDir)
}

func TestCreateWritesAndFlushes(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSink(dir)
	require.NoError(t, err)

	w, err := s.Create("ss_10_5.dat")
	require.NoError(t, err)
	_, err = w.Write([]byte("0 10 1 45\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	contents, err := os.ReadFile(filepath.Join(dir, "ss_10_5.dat"))
	require.NoError(t, err)
	assert.Equal(t, "0 10 1 45\n", string(contents))
}

func TestFileNamingConvention(t *testing.T) {
	assert.Equal(t, "ss_10_100.dat", SimpleSamplingFile(10, 100))
	assert.Equal(t, "hist_ss_10_100.dat", HistSimpleSamplingFile(10, 100))
	assert.Equal(t, "hist_wl_20_5_15.dat", HistWangLandauFile(20, 5, 15))
	assert.Equal(t, "density_20_5_15.dat", DensityFile(20, 5, 15))
	assert.Equal(t, "mygraph.gv", GraphvizFile("mygraph"))
}
