package orchestrator

import (
	"fmt"

	"github.com/katalvlaran/largedevsbm/simerr"
)

// ErrMalformedYesNo indicates a y/n prompt answer was neither "y" nor "n".
var ErrMalformedYesNo = fmt.Errorf("orchestrator: expected y or n: %w", simerr.ErrInvalidArgument)

// ErrUnsupportedGenerator indicates a generator_id other than 0 was given.
var ErrUnsupportedGenerator = fmt.Errorf("orchestrator: unsupported generator_id: %w", simerr.ErrInvalidArgument)

// ErrUnsupportedValue indicates a value_id other than 0 was given.
var ErrUnsupportedValue = fmt.Errorf("orchestrator: unsupported value_id: %w", simerr.ErrInvalidArgument)

// ErrUnsupportedGraph indicates a graph_id other than 0/1 was given.
var ErrUnsupportedGraph = fmt.Errorf("orchestrator: unsupported graph_id: %w", simerr.ErrInvalidArgument)

// ErrUnsupportedAction indicates an action_id other than 0-3 was given.
var ErrUnsupportedAction = fmt.Errorf("orchestrator: unsupported action_id: %w", simerr.ErrInvalidArgument)

// ErrBatchArgCount indicates batch mode did not receive exactly the
// expected positional argument count.
var ErrBatchArgCount = fmt.Errorf("orchestrator: batch mode expects 8 arguments: %w", simerr.ErrInvalidArgument)

func orchestratorErrorf(method string, err error) error {
	return fmt.Errorf("orchestrator: %s: %w", method, err)
}
