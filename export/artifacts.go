// Package export - the conventional per-batch artifact set.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/balseq/seqgen"
)

// Conventional artifact file names inside a batch output directory.
const (
	SequencesFileName = "sequences.csv"
	MatrixFileName    = "sequences_transition_matrix.csv"
	HeatmapFileName   = "sequences_transition_matrix.png"
)

// dirPerm is the mode for created output directories (umask applies).
const dirPerm = 0o755

// Artifacts lists the paths written for one batch.
type Artifacts struct {
	SequencesCSV string
	MatrixCSV    string
	HeatmapPNG   string
}

// EnsureDir creates dir and any missing parents. Existing directories are
// left as they are.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return exportErrorf(fmt.Sprintf("EnsureDir: %s", dir), err)
	}

	return nil
}

// WriteBatchArtifacts derives the probability matrix of b and writes the
// full artifact set into dir (created if missing): the sequences CSV, the
// probability matrix CSV and its heatmap PNG.
//
// Errors: seqgen batch errors (nil/malformed), directory and file errors
// from this package. On error some artifacts may already exist; the
// returned paths are only meaningful when err is nil.
func WriteBatchArtifacts(dir string, b *seqgen.Batch) (Artifacts, error) {
	probs, err := seqgen.TransitionProbabilities(b)
	if err != nil {
		return Artifacts{}, err
	}
	if err = EnsureDir(dir); err != nil {
		return Artifacts{}, err
	}

	out := Artifacts{
		SequencesCSV: filepath.Join(dir, SequencesFileName),
		MatrixCSV:    filepath.Join(dir, MatrixFileName),
		HeatmapPNG:   filepath.Join(dir, HeatmapFileName),
	}
	if err = SaveSequences(out.SequencesCSV, b.Sequences); err != nil {
		return Artifacts{}, err
	}
	if err = SaveMatrixCSV(out.MatrixCSV, probs); err != nil {
		return Artifacts{}, err
	}
	if err = SaveHeatmapPNG(out.HeatmapPNG, probs, DefaultHeatmapTitle); err != nil {
		return Artifacts{}, err
	}

	return out, nil
}
