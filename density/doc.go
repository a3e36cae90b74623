// Package density implements the Wang-Landau log-density-of-states vector:
// g[i] approximates log(density of graphs with largest-component size i+1).
// Values are stored and updated in log-space throughout the chain. Save
// normalizes the raw log-space values directly (p_b = g[b]/Σg) without
// exponentiating them.
package density
