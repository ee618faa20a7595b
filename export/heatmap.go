package export

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HeatmapChart renders an hour by day grid, Values[i][h] belongs to
// Days[i] and hour h
type HeatmapChart struct {
	Title  string
	Days   []float64
	Values [][]float64
	Width  vg.Length
	Height vg.Length
}

// Dims implements plotter.GridXYZ, columns are hours and rows are days
func (c HeatmapChart) Dims() (int, int) {
	if len(c.Values) == 0 {
		return 0, 0
	}
	return len(c.Values[0]), len(c.Values)
}

func (c HeatmapChart) Z(col, row int) float64 {
	return c.Values[row][col]
}

func (c HeatmapChart) X(col int) float64 {
	return float64(col)
}

func (c HeatmapChart) Y(row int) float64 {
	return c.Days[row]
}

func (c HeatmapChart) RenderPNG(w io.Writer) error {
	cols, rows := c.Dims()
	if cols == 0 || rows == 0 {
		return ErrEmptyChart
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range c.Values {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if math.IsInf(min, 0) {
		return ErrEmptyChart
	}

	h := plotter.NewHeatMap(c, palette.Heat(16, 1))
	h.Min, h.Max = min, max
	if max == min {
		h.Max = min + 1
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Hour of Day"
	p.Y.Label.Text = "Day"
	p.Add(h)

	width, height := c.Width, c.Height
	if width == 0 {
		width = 10 * vg.Inch
	}
	if height == 0 {
		height = 5 * vg.Inch
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
