// Package export - heatmap rendering of square matrices.
//
// Rendering contract:
//   - Input must be square and finite (validated up front, so the plot
//     adapter below never sees an error path).
//   - Row index is the current symbol (Y axis), column index is the next
//     symbol (X axis), matching the conventional reading of a transition
//     matrix.
//   - Output format follows the file extension; the conventional artifact
//     is PNG.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/balseq/matrix"
)

// Heatmap appearance defaults.
const (
	// DefaultHeatmapTitle matches the conventional transition-matrix
	// artifact; pass a non-empty title to override.
	DefaultHeatmapTitle = "Transition probability matrix"

	heatmapXLabel = "Next element"
	heatmapYLabel = "Current element"

	// heatPaletteColors is the number of discrete heat colors; enough for
	// a readable gradient without banding on small matrices.
	heatPaletteColors = 12

	// heatmapSide is the rendered square edge length.
	heatmapSide = 4 * vg.Inch
)

// heatGrid adapts a row-major snapshot of a square matrix to
// plotter.GridXYZ. Values are copied up front so the adapter is pure.
type heatGrid struct {
	n    int
	vals []float64
}

func (g heatGrid) Dims() (c, r int) { return g.n, g.n }
func (g heatGrid) Z(c, r int) float64 {
	return g.vals[r*g.n+c]
}
func (g heatGrid) X(c int) float64 { return float64(c) }
func (g heatGrid) Y(r int) float64 { return float64(r) }

// SaveHeatmapPNG renders m as a heat-colored cell grid and writes it to
// path. An empty title selects DefaultHeatmapTitle.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// wrapped render/encode errors from the plot backend.
func SaveHeatmapPNG(path string, m matrix.Matrix, title string) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return exportErrorf("SaveHeatmapPNG", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return exportErrorf("SaveHeatmapPNG", err)
	}

	n := m.Rows()
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return exportErrorf("SaveHeatmapPNG", err)
			}
			vals[i*n+j] = v
		}
	}

	if title == "" {
		title = DefaultHeatmapTitle
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = heatmapXLabel
	p.Y.Label.Text = heatmapYLabel
	p.Add(plotter.NewHeatMap(heatGrid{n: n, vals: vals}, palette.Heat(heatPaletteColors, 1)))

	if err := p.Save(heatmapSide, heatmapSide, path); err != nil {
		return exportErrorf(fmt.Sprintf("SaveHeatmapPNG: save %s", path), err)
	}

	return nil
}
