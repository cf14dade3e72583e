// Package export persists generated batches: sequences and derived
// matrices as CSV, the probability matrix as a heatmap PNG.
//
// The package is thin I/O glue above seqgen and matrix. It owns no
// domain logic: writers take finished values, validate their shape and
// serialize them. All functions are safe for concurrent use as long as
// no two calls target the same file.
//
// WriteBatchArtifacts bundles the conventional output set of a batch
// directory:
//
//	sequences.csv                       one row per sequence
//	sequences_transition_matrix.csv     row-normalized probabilities
//	sequences_transition_matrix.png     heatmap of the same matrix
package export
