// Package export - CSV serialization of sequences and matrices.
//
// Formats:
//   - Sequences: one CSV record per sequence, one column per position,
//     plain decimal symbols. No header row.
//   - Matrices: one CSV record per row, cells in strconv 'g' format at
//     full precision, so values round-trip through ParseFloat.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/balseq/matrix"
)

// WriteSequences streams seqs as CSV into w, one record per sequence.
//
// Errors: ErrNilWriter, ErrNoSequences, wrapped csv/io errors.
func WriteSequences(w io.Writer, seqs [][]int) error {
	if w == nil {
		return exportErrorf("WriteSequences", ErrNilWriter)
	}
	if len(seqs) == 0 {
		return exportErrorf("WriteSequences", ErrNoSequences)
	}

	cw := csv.NewWriter(w)
	record := make([]string, 0, len(seqs[0]))
	for k, seq := range seqs {
		record = record[:0]
		for _, s := range seq {
			record = append(record, strconv.Itoa(s))
		}
		if err := cw.Write(record); err != nil {
			return exportErrorf(fmt.Sprintf("WriteSequences: record %d", k), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return exportErrorf("WriteSequences: flush", err)
	}

	return nil
}

// SaveSequences writes seqs as CSV to path, creating or truncating it.
func SaveSequences(path string, seqs [][]int) error {
	return saveTo("SaveSequences", path, func(f io.Writer) error {
		return WriteSequences(f, seqs)
	})
}

// WriteMatrixCSV streams m as CSV into w, one record per matrix row.
//
// Errors: ErrNilWriter, matrix.ErrNilMatrix, wrapped csv/io errors.
func WriteMatrixCSV(w io.Writer, m matrix.Matrix) error {
	if w == nil {
		return exportErrorf("WriteMatrixCSV", ErrNilWriter)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return exportErrorf("WriteMatrixCSV", err)
	}

	cw := csv.NewWriter(w)
	record := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return exportErrorf("WriteMatrixCSV", err)
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return exportErrorf(fmt.Sprintf("WriteMatrixCSV: row %d", i), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return exportErrorf("WriteMatrixCSV: flush", err)
	}

	return nil
}

// SaveMatrixCSV writes m as CSV to path, creating or truncating it.
func SaveMatrixCSV(path string, m matrix.Matrix) error {
	return saveTo("SaveMatrixCSV", path, func(f io.Writer) error {
		return WriteMatrixCSV(f, m)
	})
}

// saveTo creates path, runs write against it and surfaces the first error,
// including the one from Close (a short write may only fail there).
func saveTo(op, path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return exportErrorf(fmt.Sprintf("%s: create %s", op, path), err)
	}
	if err = write(f); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return exportErrorf(fmt.Sprintf("%s: close %s", op, path), err)
	}

	return nil
}
