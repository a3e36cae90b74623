// Package largedevsbm estimates the probability distribution of the size
// of the largest connected component in Erdős–Rényi and Stochastic Block
// Model random graphs, via Monte Carlo sampling over the space of random
// graphs.
//
// 🚀 What is largedevsbm?
//
//	A deterministic-seed, dense-adjacency sampler that brings together:
//		• Graph state: reversible single-vertex re-randomization moves
//		  with exact rollback (graphstate)
//		• Ensembles: Erdős–Rényi and Stochastic Block Model edge policies
//		  (ensemble)
//		• Sampling modes: plain sampling, Metropolis importance sampling,
//		  an equilibration probe, and Wang–Landau flat-histogram sampling
//		  (mcmc)
//		• Bookkeeping: fixed-range histograms and a log-density vector
//		  feeding the Wang–Landau acceptance rule (histogram, density)
//		• Output: per-mode flat files (sink) and Graphviz DOT emission
//		  (graphstate)
//
// Under the hood, everything is organized under per-concern packages:
//
//	cmd/largedevsbm/ — CLI entrypoint (interactive prompt + batch mode)
//	density/         — Wang–Landau log-density vector bookkeeping
//	ensemble/        — ER/SBM edge-insertion policies
//	graphstate/      — adjacency state, moves, rollback, component analysis
//	histogram/       — fixed-range sample histogram with flatness checks
//	mcmc/            — the four sampling-mode drivers
//	observable/      — pluggable per-graph statistic (largest component)
//	orchestrator/    — wires one resolved run together and dispatches it
//	rngsrc/          — the single owned [0,1) random source
//	simconfig/       — the resolved parameters for one run
//	simerr/          — the two fatal error sentinels shared by every layer
//	sink/            — output-file naming and buffered writers
package largedevsbm
