package density

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is the log-density-of-states array g[0..n). g[i] holds the
// accumulated log-density for largest-component size i+1.
type Vector struct {
	g []float64
}

// NewVector allocates a length-n Vector initialized to 0 (log 1), per
// vertex count n.
func NewVector(n int) *Vector {
	return &Vector{g: make([]float64, n)}
}

// At returns g[value-1].
func (v *Vector) At(value int) float64 { return v.g[value-1] }

// Add adds delta to g[value-1]. delta is the current modification factor
// f, always added in log-space.
func (v *Vector) Add(value int, delta float64) {
	v.g[value-1] += delta
}

// Save writes "value g[value-1] err" for every non-zero entry with value
// in [lo,hi], normalizing p_b = g[b]/Σg over [lo-1,hi) and
// err = sqrt(p*(1-p)/(numberOfCounts-1)).
//
// Σg is computed with gonum's Sum rather than a hand-rolled accumulator.
func (v *Vector) Save(w io.Writer, lo, hi, numberOfCounts int) error {
	window := v.g[lo-1 : hi]
	total := floats.Sum(window)

	for i, g := range window {
		if g == 0 {
			continue
		}
		value := lo + i
		p := g / total
		stderr := math.Sqrt(p * (1 - p) / float64(numberOfCounts-1))
		if _, err := fmt.Fprintf(w, "%d %g %g\n", value, g, stderr); err != nil {
			return err
		}
	}
	return nil
}
