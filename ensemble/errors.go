package ensemble

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates n < 1 was passed to an ensemble constructor.
var ErrTooFewVertices = errors.New("ensemble: n must be >= 1")

// ErrTooFewBlocks indicates B < 1 was passed to NewSBM.
var ErrTooFewBlocks = errors.New("ensemble: blocks must be >= 1")

// ErrNeedRandSource indicates NewSBM was called without an RNG to draw the
// block labeling.
var ErrNeedRandSource = errors.New("ensemble: rng is required")

func ensembleErrorf(method string, err error) error {
	return fmt.Errorf("ensemble: %s: %w", method, err)
}
