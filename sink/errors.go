package sink

import (
	"errors"
	"fmt"
)

// ErrEmptyDir indicates NewSink was called with an empty directory path.
var ErrEmptyDir = errors.New("sink: directory must be non-empty")

func sinkErrorf(method string, err error) error {
	return fmt.Errorf("sink: %s: %w", method, err)
}
