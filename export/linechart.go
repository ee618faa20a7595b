// Package export writes static renditions of plots: PNG images and an
// HTML report embedding the SVG documents.
package export

import (
	"errors"
	"io"
	"math"

	"github.com/martin2250/circaplot/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptyChart = errors.New("chart has no series")

// Chart is a plot that can be rendered to PNG
type Chart interface {
	RenderPNG(w io.Writer) error
}

// LineSeries is one line of a LineChart, X and Y have equal length
type LineSeries struct {
	Name  string
	X     []float64
	Y     []float64
	Color drawing.Color
}

// LineChart renders line series over minutes with shaded bands
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int

	Series []LineSeries
	Bands  []types.TimeRange

	// XFormat labels x ticks, nil prints the raw value
	XFormat func(v float64) string
	// YMin fixes the bottom of the y axis when set
	YMin *float64
}

func (c LineChart) RenderPNG(w io.Writer) error {
	if len(c.Series) == 0 {
		return ErrEmptyChart
	}

	width, height := c.Width, c.Height
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 500
	}

	var series []chart.Series
	ymin, ymax := 0.0, 0.0
	first := true

	for _, s := range c.Series {
		xs, ys := dropNaN(s.X, s.Y)
		if len(xs) < 2 {
			// go-chart needs at least two points per series
			continue
		}
		for _, y := range ys {
			if first || y < ymin {
				ymin = y
			}
			if first || y > ymax {
				ymax = y
			}
			first = false
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: s.Color,
				StrokeWidth: 1.5,
			},
		})
	}
	if len(series) == 0 {
		return ErrEmptyChart
	}
	if c.YMin != nil {
		ymin = *c.YMin
	}
	if ymax <= ymin {
		ymax = ymin + 1
	}

	series = append(bandSeries(c.Bands, ymin, ymax), series...)

	graph := chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: c.XLabel,
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: series,
	}
	if c.XFormat != nil {
		graph.XAxis.ValueFormatter = func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return c.XFormat(f)
			}
			return ""
		}
	}
	legend := graph
	legend.Series = legendSeries(series)
	graph.Elements = []chart.Renderable{chart.Legend(&legend)}

	return graph.Render(chart.PNG, w)
}

// BandLabel is the legend entry of the shaded bands
const BandLabel = "Estrus"

// bandSeries draws bands as filled rectangles spanning the y range. Only
// the first band is named so the legend lists it once.
func bandSeries(bands []types.TimeRange, ymin, ymax float64) []chart.Series {
	out := make([]chart.Series, len(bands))
	for i, b := range bands {
		s := chart.ContinuousSeries{
			XValues: []float64{float64(b.Start), float64(b.Start), float64(b.End), float64(b.End)},
			YValues: []float64{ymin, ymax, ymax, ymin},
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				FillColor:   bandColor,
			},
		}
		if i == 0 {
			s.Name = BandLabel
		}
		out[i] = s
	}
	return out
}

var bandColor = drawing.Color{R: 255, G: 192, B: 203, A: 77}

// legendSeries returns the named series
func legendSeries(series []chart.Series) []chart.Series {
	var out []chart.Series
	for _, s := range series {
		if s.GetName() != "" {
			out = append(out, s)
		}
	}
	return out
}

func dropNaN(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}
