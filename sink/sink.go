package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Sink owns a single output directory. Every Create call returns a
// buffered writer rooted at that directory; callers are responsible for
// flushing/closing it via the returned *Writer's Close.
type Sink struct {
	dir string
}

// NewSink returns a Sink rooted at dir. dir is created (including parents)
// if it does not already exist.
func NewSink(dir string) (*Sink, error) {
	if dir == "" {
		return nil, sinkErrorf("NewSink", ErrEmptyDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, sinkErrorf("NewSink", err)
	}
	return &Sink{dir: dir}, nil
}

// Writer is a buffered file handle; Close flushes the buffer before
// closing the underlying file.
type Writer struct {
	f *os.File
	w *bufio.Writer
}

// Write implements io.Writer by buffering through bufio.
func (wr *Writer) Write(p []byte) (int, error) { return wr.w.Write(p) }

// Close flushes the buffer and closes the underlying file.
func (wr *Writer) Close() error {
	if err := wr.w.Flush(); err != nil {
		_ = wr.f.Close()
		return err
	}
	return wr.f.Close()
}

// Create opens name (relative to the sink's directory) for writing,
// truncating any existing contents.
func (s *Sink) Create(name string) (*Writer, error) {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, sinkErrorf("Create", err)
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// File-naming convention. n is vertex count, K/S are sample/sweep counts,
// T is temperature, lo/hi are the Wang-Landau bounds, fFinal the target
// modification factor.

func SimpleSamplingFile(n, k int) string { return fmt.Sprintf("ss_%d_%d.dat", n, k) }

func HistSimpleSamplingFile(n, k int) string { return fmt.Sprintf("hist_ss_%d_%d.dat", n, k) }

func ImportanceSamplingFile(n, sweeps int, t float64) string {
	return fmt.Sprintf("is_%d_%d_%g.dat", n, sweeps, t)
}

func HistImportanceSamplingFile(n, sweeps int, t float64) string {
	return fmt.Sprintf("hist_is_%d_%d_%g.dat", n, sweeps, t)
}

func EquilibrationFile(n, sweeps int, t float64) string {
	return fmt.Sprintf("equiExperiment_%d_%d_%g.dat", n, sweeps, t)
}

func HistWangLandauFile(n, lo, hi int) string {
	return fmt.Sprintf("hist_wl_%d_%d_%d.dat", n, lo, hi)
}

func WangLandauProgressFile(n, lo, hi, sweeps int, fFinal float64) string {
	return fmt.Sprintf("wl_%d_%d_%d_%d_%g.dat", n, lo, hi, sweeps, fFinal)
}

func DensityFile(n, lo, hi int) string { return fmt.Sprintf("density_%d_%d_%d.dat", n, lo, hi) }

func GraphvizFile(base string) string { return base + ".gv" }
