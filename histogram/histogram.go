package histogram

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/largedevsbm/simerr"
)

// Histogram is a fixed-size integer histogram of length S. Bin b counts
// observations of value b+1.
type Histogram struct {
	bins []int
	n    int // total number of increments, i.e. Σbins
}

// NewHistogram allocates a histogram with S bins, all zero.
func NewHistogram(s int) (*Histogram, error) {
	if s < 1 {
		return nil, histogramErrorf("NewHistogram", ErrInvalidSize)
	}
	return &Histogram{bins: make([]int, s)}, nil
}

// Size returns S, the number of bins.
func (h *Histogram) Size() int { return len(h.bins) }

// N returns the total number of increments recorded.
func (h *Histogram) N() int { return h.n }

// Increment records an observation of value x, 1<=x<=S. Any other value
// fails with simerr.ErrOutOfRange, which is fatal at the CLI layer.
func (h *Histogram) Increment(x int) error {
	if x < 1 || x > len(h.bins) {
		return fmt.Errorf("histogram: Increment(%d) outside [1,%d]: %w", x, len(h.bins), simerr.ErrOutOfRange)
	}
	h.bins[x-1]++
	h.n++
	return nil
}

// Reset zeroes every bin and N.
func (h *Histogram) Reset() {
	for i := range h.bins {
		h.bins[i] = 0
	}
	h.n = 0
}

// AllBinsNonZero reports whether every bin in the inclusive window
// [lo-1,hi-1] is positive.
func (h *Histogram) AllBinsNonZero(lo, hi int) bool {
	for b := lo - 1; b <= hi-1; b++ {
		if h.bins[b] == 0 {
			return false
		}
	}
	return true
}

// MinBin returns the minimum bin value over the inclusive window
// [lo-1,hi-1].
func (h *Histogram) MinBin(lo, hi int) int {
	min := h.bins[lo-1]
	for b := lo; b <= hi-1; b++ {
		if h.bins[b] < min {
			min = h.bins[b]
		}
	}
	return min
}

// FlatEnough reports MinBin(lo,hi) > eps * (N/S). The denominator is the
// full histogram length S, not the window width hi-lo+1 — the upstream
// flatness check has always normalized this way, which makes the
// threshold easier to satisfy for narrow windows; preserved deliberately
// rather than "fixed" to the windowed convention (see the design log).
func (h *Histogram) FlatEnough(eps float64, lo, hi int) bool {
	threshold := eps * (float64(h.n) / float64(len(h.bins)))
	return float64(h.MinBin(lo, hi)) > threshold
}

// sumBins computes the total observation count directly from the bin
// counts via gonum's Sum, rather than trusting the incrementally tracked
// n. Save emits p/err against this value and panics before writing any
// row if it disagrees with n, so a bookkeeping bug in Increment/Reset
// never reaches the output.
func (h *Histogram) sumBins() int {
	f := make([]float64, len(h.bins))
	for i, c := range h.bins {
		f[i] = float64(c)
	}
	return int(math.Round(floats.Sum(f)))
}

// Save writes every non-zero bin as "value count err" where value=b+1 and
// err = sqrt(p*(1-p)/(N-1)), p = count/total. Bins with zero count are
// skipped entirely, matching the upstream file format. total is recomputed
// from the bins via sumBins rather than read off N directly.
func (h *Histogram) Save(w io.Writer) error {
	total := h.sumBins()
	if total != h.n {
		panic(fmt.Sprintf("histogram: N=%d disagrees with Σbins=%d", h.n, total))
	}

	for b, count := range h.bins {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		stderr := math.Sqrt(p * (1 - p) / float64(total-1))
		if _, err := fmt.Fprintf(w, "%d %d %g\n", b+1, count, stderr); err != nil {
			return err
		}
	}
	return nil
}
