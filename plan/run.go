// Package plan - parallel plan execution.
//
// Concurrency contract:
//   - Parallelism is ONLY across batches. Each worker owns its batch's
//     UsageMatrix; nothing is shared between workers except the result
//     slice, which is index-partitioned.
//   - The first failing batch cancels the group; workers observe the
//     context before starting work.
//   - Randomized batches (seed 0) derive per-batch seeds by mixing the
//     clock with the batch index, so concurrent workers never share a
//     seed even when they start within the same clock tick.
package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/balseq/export"
	"github.com/katalvlaran/balseq/seqgen"
)

// Result reports one finished batch of a plan run.
type Result struct {
	// Name is the batch name from the plan.
	Name string

	// Dir is the directory the artifacts were written into.
	Dir string

	// Artifacts lists the files written for the batch.
	Artifacts export.Artifacts

	// Report summarizes the batch's transition balance.
	Report seqgen.Report
}

// RunOption customizes Run.
type RunOption func(*runConfig)

type runConfig struct {
	// maxParallel bounds concurrent batch workers; 0 means unbounded.
	maxParallel int

	// outDir overrides the plan's outdir when non-empty.
	outDir string
}

// WithMaxParallel bounds the number of batches generated concurrently.
// Panics on k < 1; use the default for unbounded execution.
func WithMaxParallel(k int) RunOption {
	if k < 1 {
		panic("plan: WithMaxParallel(k<1)")
	}
	return func(c *runConfig) {
		c.maxParallel = k
	}
}

// WithOutDir overrides the plan's output directory. Empty keeps the
// plan's own value.
func WithOutDir(dir string) RunOption {
	return func(c *runConfig) {
		c.outDir = dir
	}
}

// Run generates and exports every batch of p, fanning out one worker per
// batch. Results are ordered by plan position regardless of completion
// order. On error the returned slice is nil; artifacts of batches that
// finished before the failure remain on disk.
//
// Errors: wrapped seqgen/export errors carrying the batch name; ctx
// errors when cancelled.
func Run(ctx context.Context, p *Plan, opts ...RunOption) ([]Result, error) {
	if p == nil {
		return nil, planErrorf("Run", ErrEmptyPlan)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	outDir := p.OutDir
	if cfg.outDir != "" {
		outDir = cfg.outDir
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.maxParallel > 0 {
		g.SetLimit(cfg.maxParallel)
	}

	results := make([]Result, len(p.Batches))
	for i, spec := range p.Batches {
		i, spec := i, spec
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := runBatch(spec, outDir, uint64(i))
			if err != nil {
				return planErrorf(fmt.Sprintf("Run: batch %q", spec.Name), err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// runBatch generates one batch and writes its artifact set.
func runBatch(spec BatchSpec, outDir string, stream uint64) (Result, error) {
	var opts []seqgen.Option
	if spec.Seed != 0 {
		opts = append(opts, seqgen.WithSeed(spec.Seed))
	} else {
		opts = append(opts, seqgen.WithSeed(deriveSeed(time.Now().UnixNano(), stream)))
	}

	batch, err := seqgen.Generate(spec.Length, spec.Count, opts...)
	if err != nil {
		return Result{}, err
	}
	report, err := seqgen.BalanceReport(batch)
	if err != nil {
		return Result{}, err
	}

	dir := filepath.Join(outDir, spec.Name)
	arts, err := export.WriteBatchArtifacts(dir, batch)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Name:      spec.Name,
		Dir:       dir,
		Artifacts: arts,
		Report:    report,
	}, nil
}

// deriveSeed mixes a clock sample and a stream identifier into a 64-bit
// seed with a SplitMix64-style finalizer, decorrelating workers that start
// within the same clock tick.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
