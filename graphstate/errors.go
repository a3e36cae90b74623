package graphstate

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates n < 1 was requested for a new Graph.
// Usage: if errors.Is(err, ErrTooFewVertices) { ... }.
var ErrTooFewVertices = errors.New("graphstate: n must be >= 1")

// ErrNeedRandSource indicates Random or Candidate was called without an RNG.
var ErrNeedRandSource = errors.New("graphstate: rng is required")

// ErrNeedPolicy indicates Random or Candidate was called without an
// ensemble policy.
var ErrNeedPolicy = errors.New("graphstate: ensemble policy is required")

// ErrVertexOutOfRange indicates a vertex index outside [0,n).
var ErrVertexOutOfRange = errors.New("graphstate: vertex index out of range")

func graphstateErrorf(method string, err error) error {
	return fmt.Errorf("graphstate: %s: %w", method, err)
}
