// Package sink owns the output directory and file-naming convention for
// every record the engine emits: per-sample rows, histograms, the
// equilibration trace, Wang-Landau progress, the density table, and the
// Graphviz export. Every name matches the upstream convention exactly so
// existing analysis scripts keep working unchanged.
//
// Treated by the rest of the engine as opaque: callers ask for a named
// writer and format their own rows into it.
package sink
