// Package histogram implements the fixed-range integer histogram used by
// every sampling mode to track the observed distribution of the
// largest-component-size observable, plus the flatness and non-zero-bins
// checks Wang-Landau needs to decide when to refine its modification
// factor.
//
// Bin b counts observations of value b+1 (sizes 1..S map to bins 0..S-1).
package histogram
