// Package seqgen_test provides benchmarks for batch generation and the
// derivation pass, sized around realistic experiment designs.
package seqgen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/balseq/matrix"
	"github.com/katalvlaran/balseq/seqgen"
)

// sinks to defeat dead-code elimination
var (
	sinkBatch *seqgen.Batch
	sinkDense *matrix.Dense
)

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for _, size := range []struct{ n, m int }{
		{4, 50},
		{8, 100},
		{16, 100},
		{32, 50},
	} {
		b.Run(fmt.Sprintf("n=%d/m=%d", size.n, size.m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				batch, err := seqgen.Generate(size.n, size.m, seqgen.WithSeed(404))
				if err != nil {
					b.Fatal(err)
				}
				sinkBatch = batch
			}
		})
	}
}

func BenchmarkTransitionProbabilities(b *testing.B) {
	b.ReportAllocs()
	for _, size := range []struct{ n, m int }{
		{8, 100},
		{16, 200},
	} {
		b.Run(fmt.Sprintf("n=%d/m=%d", size.n, size.m), func(b *testing.B) {
			batch, err := seqgen.Generate(size.n, size.m, seqgen.WithSeed(505))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				probs, err := seqgen.TransitionProbabilities(batch)
				if err != nil {
					b.Fatal(err)
				}
				sinkDense = probs
			}
		})
	}
}
