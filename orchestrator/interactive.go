package orchestrator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/largedevsbm/simconfig"
)

// ReadInteractive parses the strict-order token stream of the interactive
// prompt mode: is_digraph, loops_allowed, directory, n, generator_id,
// seed, value_id, graph_id, then either c (ER) or c_inter c_intra B
// (SBM), then action_id and its action-specific parameters. Tokens are
// whitespace/newline separated, matching fmt.Fscan's default splitting.
func ReadInteractive(r io.Reader) (*simconfig.Config, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	yesNo := func(field string) (bool, error) {
		tok, ok := next()
		if !ok {
			return false, orchestratorErrorf("ReadInteractive", fmt.Errorf("%s: %w", field, io.ErrUnexpectedEOF))
		}
		switch tok {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			return false, orchestratorErrorf("ReadInteractive", fmt.Errorf("%s=%q: %w", field, tok, ErrMalformedYesNo))
		}
	}

	scanInto := func(field string, dst interface{}) error {
		tok, ok := next()
		if !ok {
			return orchestratorErrorf("ReadInteractive", fmt.Errorf("%s: %w", field, io.ErrUnexpectedEOF))
		}
		if _, err := fmt.Sscan(tok, dst); err != nil {
			return orchestratorErrorf("ReadInteractive", fmt.Errorf("%s=%q: %w", field, tok, err))
		}
		return nil
	}

	var cfg simconfig.Config
	var err error

	if cfg.Digraph, err = yesNo("is_digraph"); err != nil {
		return nil, err
	}
	if cfg.LoopsAllowed, err = yesNo("loops_allowed"); err != nil {
		return nil, err
	}

	dirTok, ok := next()
	if !ok {
		return nil, orchestratorErrorf("ReadInteractive", fmt.Errorf("directory: %w", io.ErrUnexpectedEOF))
	}
	cfg.Dir = dirTok

	if err = scanInto("n", &cfg.N); err != nil {
		return nil, err
	}

	var generatorID int
	if err = scanInto("generator_id", &generatorID); err != nil {
		return nil, err
	}
	if generatorID != int(simconfig.GeneratorRandom) {
		return nil, orchestratorErrorf("ReadInteractive", ErrUnsupportedGenerator)
	}
	cfg.Generator = simconfig.GeneratorRandom

	if err = scanInto("seed", &cfg.Seed); err != nil {
		return nil, err
	}

	var valueID int
	if err = scanInto("value_id", &valueID); err != nil {
		return nil, err
	}
	if valueID != int(simconfig.ValueLargestComponent) {
		return nil, orchestratorErrorf("ReadInteractive", ErrUnsupportedValue)
	}
	cfg.Value = simconfig.ValueLargestComponent

	var graphID int
	if err = scanInto("graph_id", &graphID); err != nil {
		return nil, err
	}
	switch simconfig.GraphID(graphID) {
	case simconfig.GraphER:
		cfg.Graph = simconfig.GraphER
		if err = scanInto("c", &cfg.C); err != nil {
			return nil, err
		}
	case simconfig.GraphSBM:
		cfg.Graph = simconfig.GraphSBM
		if err = scanInto("c_inter", &cfg.CInter); err != nil {
			return nil, err
		}
		if err = scanInto("c_intra", &cfg.CIntra); err != nil {
			return nil, err
		}
		if err = scanInto("B", &cfg.Blocks); err != nil {
			return nil, err
		}
	default:
		return nil, orchestratorErrorf("ReadInteractive", ErrUnsupportedGraph)
	}

	var actionID int
	if err = scanInto("action_id", &actionID); err != nil {
		return nil, err
	}
	cfg.Action = simconfig.ActionID(actionID)

	switch cfg.Action {
	case simconfig.ActionSimple:
		if err = scanInto("samples", &cfg.Samples); err != nil {
			return nil, err
		}
	case simconfig.ActionMetropolis:
		if err = scanInto("T", &cfg.Temperature); err != nil {
			return nil, err
		}
		if err = scanInto("samples", &cfg.Samples); err != nil {
			return nil, err
		}
		if err = scanInto("equilibration", &cfg.Equilibration); err != nil {
			return nil, err
		}
	case simconfig.ActionEquilibrate:
		if err = scanInto("T", &cfg.Temperature); err != nil {
			return nil, err
		}
		if err = scanInto("samples", &cfg.Samples); err != nil {
			return nil, err
		}
	case simconfig.ActionWangLandau:
		if err = scanInto("lower", &cfg.Lower); err != nil {
			return nil, err
		}
		if err = scanInto("upper", &cfg.Upper); err != nil {
			return nil, err
		}
		if err = scanInto("sweeps_to_evaluate", &cfg.SweepsToEvaluate); err != nil {
			return nil, err
		}
		if err = scanInto("f_final", &cfg.FFinal); err != nil {
			return nil, err
		}
	default:
		return nil, orchestratorErrorf("ReadInteractive", ErrUnsupportedAction)
	}

	return &cfg, nil
}
