// Package simconfig defines the plain, non-global configuration struct the
// CLI layer populates and the orchestrator consumes. There is exactly one
// Config per run; it is built once by the interactive prompt or the batch
// argv parser and passed by reference, never stored in a package-level
// variable.
package simconfig
