// Package simerr defines the two fatal error sentinels shared by every
// layer of the simulation: graph state, ensemble policies, histogram,
// MCMC driver, and the CLI orchestrator.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("...: %w", ErrX).
//   - Both kinds below are fatal: there is no recovery path. The CLI layer
//     logs a diagnostic and exits non-zero; library callers just get the
//     wrapped error back.
//   - Internal consistency (graph invariants, rollback correctness) is a
//     precondition, not an error path, and is enforced with panics instead.
package simerr

import "errors"

// ErrInvalidArgument covers unrecognized mode selectors, malformed y/n
// answers, unsupported generator/graph/value identifiers, and T=0.
var ErrInvalidArgument = errors.New("simerr: invalid argument")

// ErrOutOfRange covers histogram increments of a value outside [1,S] and
// Wang-Landau bound violations that reach a caller instead of being
// silently rejected by the acceptance rule.
var ErrOutOfRange = errors.New("simerr: value out of range")
