package mcmc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/largedevsbm/simerr"
)

// ErrZeroTemperature indicates Metropolis/EquilibrationProbe was called
// with T=0, which divides by zero in the acceptance rule.
var ErrZeroTemperature = fmt.Errorf("mcmc: temperature must be nonzero: %w", simerr.ErrInvalidArgument)

// ErrStartConditionUnknown indicates an unrecognized start-condition
// selector was requested from a generator table.
var ErrStartConditionUnknown = errors.New("mcmc: unknown start condition")

func mcmcErrorf(method string, err error) error {
	return fmt.Errorf("mcmc: %s: %w", method, err)
}
