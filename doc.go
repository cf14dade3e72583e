// Package balseq generates batches of sequences whose transition usage is
// counterbalanced — every ordered pair of distinct symbols appears about
// equally often across the batch.
//
// 🚀 What is balseq?
//
//	A small, deterministic-when-seeded toolkit for experiment designs:
//		• Greedy balanced generation over a usage-cost matrix
//		• No self-transitions, exact shape guarantees, seedable randomness
//		• Empirical transition counts & row-normalized probabilities
//		• Balance diagnostics (mean / stddev / CV of pair usage)
//		• CSV + heatmap PNG artifacts, YAML batch plans, parallel plan runs
//
// ✨ Why choose balseq?
//
//   - Provable fairness mechanics – a used transition is priced out until
//     its whole row catches up
//   - Reproducible – inject a seed (or a *rand.Rand) and get the same batch
//     on every platform
//   - Honest errors – sentinel errors matched with errors.Is, no panics on
//     user input
//
// Everything is organized under five subpackages:
//
//	matrix/  — dense float64 matrix, row ops, spread statistics
//	seqgen/  — the core: usage matrix, batch generator, derived matrices
//	export/  — CSV writers, heatmap renderer, per-batch artifact bundles
//	plan/    — YAML plans running several independent batches, in parallel
//	cmd/     — the balseq CLI (generate one batch, or run a whole plan)
//
// Quick example:
//
//	batch, _ := seqgen.Generate(4, 72, seqgen.WithSeed(7))
//	probs, _ := seqgen.TransitionProbabilities(batch)
//
//	produces 72 sequences over symbols {0,1,2,3} and the 4×4 empirical
//	transition probability matrix of the batch.
//
//	go get github.com/katalvlaran/balseq
package balseq
