// Package ensemble implements the two random-graph ensembles the engine
// samples from: Erdős–Rényi (ER) and the Stochastic Block Model (SBM). Each
// type implements graphstate.Policy — a single ShouldInsert(u,v) decision —
// so the graph never needs to know which ensemble produced it.
//
// Both policies are stateless with respect to graph mutation: ShouldInsert
// never mutates the policy and never touches global state, only the RNG
// passed in at each call.
package ensemble
