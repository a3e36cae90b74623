// Package rngsrc provides the single deterministic randomness source shared
// by graph generation, ensemble policies, and MCMC acceptance tests.
//
// There is exactly one RNG per run, owned by the orchestrator and passed by
// reference to every collaborator that needs randomness. Nothing in this
// package duplicates state or reads the wall clock.
package rngsrc
