package orchestrator

import (
	"github.com/katalvlaran/largedevsbm/density"
	"github.com/katalvlaran/largedevsbm/ensemble"
	"github.com/katalvlaran/largedevsbm/graphstate"
	"github.com/katalvlaran/largedevsbm/histogram"
	"github.com/katalvlaran/largedevsbm/mcmc"
	"github.com/katalvlaran/largedevsbm/observable"
	"github.com/katalvlaran/largedevsbm/rngsrc"
	"github.com/katalvlaran/largedevsbm/simconfig"
	"github.com/katalvlaran/largedevsbm/sink"
)

// Orchestrator wires every collaborator from a resolved Config and owns
// their lifetimes for the duration of one run. There are no globals and
// no back-references: the driver holds the graph/RNG/policy/observable
// directly, and this struct holds the driver plus the sink.
type Orchestrator struct {
	cfg    *simconfig.Config
	rng    *rngsrc.Source
	policy graphstate.Policy
	driver *mcmc.Driver
	sink   *sink.Sink
}

// New builds an Orchestrator from cfg: a single RNG seeded from cfg.Seed,
// the ensemble policy selected by cfg.Graph, an empty Graph of size
// cfg.N, the largest-component observable, and a Sink rooted at cfg.Dir.
func New(cfg *simconfig.Config) (*Orchestrator, error) {
	rng := rngsrc.New(cfg.Seed)

	var policy graphstate.Policy
	switch cfg.Graph {
	case simconfig.GraphER:
		pol, err := ensemble.NewER(cfg.C, cfg.N)
		if err != nil {
			return nil, orchestratorErrorf("New", err)
		}
		policy = pol
	case simconfig.GraphSBM:
		pol, err := ensemble.NewSBM(rng, cfg.CInter, cfg.CIntra, cfg.Blocks, cfg.N)
		if err != nil {
			return nil, orchestratorErrorf("New", err)
		}
		policy = pol
	default:
		return nil, orchestratorErrorf("New", ErrUnsupportedGraph)
	}

	g, err := graphstate.New(cfg.N, cfg.Digraph, cfg.LoopsAllowed)
	if err != nil {
		return nil, orchestratorErrorf("New", err)
	}

	s, err := sink.NewSink(cfg.Dir)
	if err != nil {
		return nil, orchestratorErrorf("New", err)
	}

	driver := mcmc.NewDriver(g, rng, policy, observable.LargestComponent{})

	return &Orchestrator{cfg: cfg, rng: rng, policy: policy, driver: driver, sink: s}, nil
}

// Run dispatches to the sampling mode selected by cfg.Action, opening the
// sink files the upstream naming convention requires.
func (o *Orchestrator) Run() error {
	switch o.cfg.Action {
	case simconfig.ActionSimple:
		return o.runSimple()
	case simconfig.ActionMetropolis:
		return o.runMetropolis()
	case simconfig.ActionEquilibrate:
		return o.runEquilibrate()
	case simconfig.ActionWangLandau:
		return o.runWangLandau()
	default:
		return orchestratorErrorf("Run", ErrUnsupportedAction)
	}
}

func (o *Orchestrator) runSimple() error {
	hist, err := histogram.NewHistogram(o.cfg.N)
	if err != nil {
		return orchestratorErrorf("runSimple", err)
	}

	samples, err := o.sink.Create(sink.SimpleSamplingFile(o.cfg.N, o.cfg.Samples))
	if err != nil {
		return orchestratorErrorf("runSimple", err)
	}
	defer samples.Close()

	histOut, err := o.sink.Create(sink.HistSimpleSamplingFile(o.cfg.N, o.cfg.Samples))
	if err != nil {
		return orchestratorErrorf("runSimple", err)
	}
	defer histOut.Close()

	return o.driver.SimpleSampling(o.cfg.Samples, hist, samples, histOut)
}

func (o *Orchestrator) runMetropolis() error {
	hist, err := histogram.NewHistogram(o.cfg.N)
	if err != nil {
		return orchestratorErrorf("runMetropolis", err)
	}

	samples, err := o.sink.Create(sink.ImportanceSamplingFile(o.cfg.N, o.cfg.Samples, o.cfg.Temperature))
	if err != nil {
		return orchestratorErrorf("runMetropolis", err)
	}
	defer samples.Close()

	histOut, err := o.sink.Create(sink.HistImportanceSamplingFile(o.cfg.N, o.cfg.Samples, o.cfg.Temperature))
	if err != nil {
		return orchestratorErrorf("runMetropolis", err)
	}
	defer histOut.Close()

	return o.driver.Metropolis(o.cfg.Temperature, o.cfg.Samples, o.cfg.Equilibration, hist, samples, histOut)
}

func (o *Orchestrator) runEquilibrate() error {
	w, err := o.sink.Create(sink.EquilibrationFile(o.cfg.N, o.cfg.Samples, o.cfg.Temperature))
	if err != nil {
		return orchestratorErrorf("runEquilibrate", err)
	}
	defer w.Close()

	return mcmc.EquilibrationProbe(o.cfg.N, o.cfg.Digraph, o.cfg.LoopsAllowed, o.rng, o.policy,
		observable.LargestComponent{}, o.cfg.Temperature, o.cfg.Samples, w)
}

func (o *Orchestrator) runWangLandau() error {
	hist, err := histogram.NewHistogram(o.cfg.N)
	if err != nil {
		return orchestratorErrorf("runWangLandau", err)
	}
	dens := density.NewVector(o.cfg.N)

	progress, err := o.sink.Create(sink.WangLandauProgressFile(o.cfg.N, o.cfg.Lower, o.cfg.Upper, o.cfg.SweepsToEvaluate, o.cfg.FFinal))
	if err != nil {
		return orchestratorErrorf("runWangLandau", err)
	}
	defer progress.Close()

	histOut, err := o.sink.Create(sink.HistWangLandauFile(o.cfg.N, o.cfg.Lower, o.cfg.Upper))
	if err != nil {
		return orchestratorErrorf("runWangLandau", err)
	}
	defer histOut.Close()

	densOut, err := o.sink.Create(sink.DensityFile(o.cfg.N, o.cfg.Lower, o.cfg.Upper))
	if err != nil {
		return orchestratorErrorf("runWangLandau", err)
	}
	defer densOut.Close()

	return o.driver.WangLandau(o.cfg.Lower, o.cfg.Upper, o.cfg.SweepsToEvaluate, o.cfg.FFinal, hist, dens, progress, histOut, densOut)
}
