package seqgen_test

import (
	"fmt"

	"github.com/katalvlaran/balseq/seqgen"
)

// ExampleGenerate builds a counterbalanced batch and reports facts that
// hold for every seed: the shape and the arithmetic of the balance report.
func ExampleGenerate() {
	batch, err := seqgen.Generate(4, 100, seqgen.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}

	report, err := seqgen.BalanceReport(batch)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("sequences: %d of length %d\n", len(batch.Sequences), len(batch.Sequences[0]))
	fmt.Printf("transitions: %d, mean per pair: %.0f\n", report.Transitions, report.Mean)
	// Output:
	// sequences: 100 of length 4
	// transitions: 300, mean per pair: 25
}

// ExampleTransitionProbabilities shows the exact two-symbol outcome: two
// sequences use each transition once, so the rows normalize to the
// exchange matrix regardless of the seed.
func ExampleTransitionProbabilities() {
	batch, err := seqgen.Generate(2, 2, seqgen.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	probs, err := seqgen.TransitionProbabilities(batch)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Print(probs)
	// Output:
	// [0, 1]
	// [1, 0]
}
