// Package plan runs several independent batches from one YAML document.
//
// A plan names a set of batches, each with its own alphabet size, count
// and optional seed. Every batch gets its own usage matrix, so batches are
// independent by construction and may run in parallel (Run); generation
// within a batch stays strictly sequential.
//
// Schema:
//
//	outdir: results        # optional; WithOutDir overrides
//	batches:
//	  - name: practice     # unique directory-safe name
//	    length: 12         # alphabet size / sequence length, >= 2
//	    count: 72          # sequences in the batch, >= 1
//	    seed: 7            # optional; 0 or absent randomizes
//
// Unknown fields are rejected, so typos fail loudly instead of silently
// running a half-configured plan.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/balseq/seqgen"
)

// Plan is a validated batch plan.
type Plan struct {
	// OutDir is the root output directory; each batch writes into
	// OutDir/<name>. Empty means the current directory.
	OutDir string `yaml:"outdir"`

	// Batches lists the batches in execution-report order.
	Batches []BatchSpec `yaml:"batches"`
}

// BatchSpec describes one batch of a plan.
type BatchSpec struct {
	// Name is the output subdirectory, unique within the plan, free of
	// path separators.
	Name string `yaml:"name"`

	// Length is the alphabet size and sequence length (n).
	Length int `yaml:"length"`

	// Count is the number of sequences (m).
	Count int `yaml:"count"`

	// Seed locks the batch when non-zero; 0 or absent randomizes.
	Seed int64 `yaml:"seed"`
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, planErrorf(fmt.Sprintf("Load: %s", path), err)
	}

	p, err := Parse(raw)
	if err != nil {
		return nil, planErrorf(fmt.Sprintf("Load: %s", path), err)
	}

	return p, nil
}

// Parse decodes and validates a YAML plan document. Decoding is strict:
// unknown fields are errors.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, planErrorf("Parse", ErrEmptyPlan)
		}

		return nil, planErrorf("Parse", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// validate enforces the plan invariants: at least one batch, unique
// directory-safe names, admissible sizes. Size bounds mirror the
// generator's own validation so a bad plan fails before any work starts.
func (p *Plan) validate() error {
	if len(p.Batches) == 0 {
		return planErrorf("Parse", ErrEmptyPlan)
	}

	seen := make(map[string]struct{}, len(p.Batches))
	for i, b := range p.Batches {
		if !cleanBatchName(b.Name) {
			return planErrorf(fmt.Sprintf("Parse: batches[%d] name %q", i, b.Name), ErrBadBatchName)
		}
		if _, dup := seen[b.Name]; dup {
			return planErrorf(fmt.Sprintf("Parse: batches[%d] name %q", i, b.Name), ErrDuplicateBatch)
		}
		seen[b.Name] = struct{}{}

		if b.Length < seqgen.MinSequenceLength {
			return planErrorf(fmt.Sprintf("Parse: batch %q length %d", b.Name, b.Length), seqgen.ErrInvalidSize)
		}
		if b.Count < seqgen.MinBatchCount {
			return planErrorf(fmt.Sprintf("Parse: batch %q count %d", b.Name, b.Count), seqgen.ErrInvalidBatchSize)
		}
	}

	return nil
}

// cleanBatchName accepts names usable as a single directory component.
func cleanBatchName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	return !strings.ContainsAny(name, `/\`)
}
