// Package mcmc implements the four sampling modes driven over a
// graphstate.Graph: simple sampling, the Metropolis importance sampler, the
// four-chain equilibration probe, and Wang-Landau flat-histogram sampling.
// Driver owns the graph, RNG, ensemble policy, and observable directly —
// there are no back-references between the driver and its caller.
//
// Every mode draws acceptance noise only after the proposal has produced
// the candidate value, preserving the upstream RNG consumption order so a
// fixed seed reproduces a fixed trajectory.
package mcmc
