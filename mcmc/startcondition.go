package mcmc

import "github.com/katalvlaran/largedevsbm/graphstate"

// StartCondition selects one of the four canonical initial graphs a chain
// can be seeded from.
type StartCondition int

const (
	StartComplete StartCondition = 0
	StartLine     StartCondition = 1
	StartRandom   StartCondition = 2
	StartEmpty    StartCondition = 3
)

// Apply resets g to the chosen canonical state, consuming rng/policy only
// for StartRandom.
func (sc StartCondition) Apply(g *graphstate.Graph, d *Driver) error {
	switch sc {
	case StartComplete:
		g.Complete()
	case StartLine:
		g.Line()
	case StartRandom:
		if err := g.Random(d.RNG, d.Policy); err != nil {
			return err
		}
	case StartEmpty:
		g.Empty()
	default:
		return mcmcErrorf("StartCondition.Apply", ErrStartConditionUnknown)
	}
	g.RecomputeComponents()
	return nil
}
