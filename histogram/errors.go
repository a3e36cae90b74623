package histogram

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates NewHistogram was called with S < 1.
var ErrInvalidSize = errors.New("histogram: size must be >= 1")

func histogramErrorf(method string, err error) error {
	return fmt.Errorf("histogram: %s: %w", method, err)
}
