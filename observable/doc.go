// Package observable defines the scalar quantity the MCMC driver samples —
// currently always the largest connected component size — behind a single
// interface, so additional observables can be added without touching the
// driver.
package observable
