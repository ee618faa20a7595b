package render

import (
	"fmt"

	"github.com/martin2250/circaplot/dataset"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/types"
	"github.com/martin2250/circaplot/util"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// SeriesPlot draws values over minutes since the start of a recording
type SeriesPlot struct {
	*Plot
	X scale.Linear
	Y scale.Linear
}

// Series is one named line of a series plot
type Series struct {
	Name   string
	Values []float64
	Color  drawing.Color
}

var seriesMargin = Margin{Top: 20, Right: 100, Bottom: 50, Left: 50}

func newSeriesPlot(o Options, length int, series ...[]float64) (*SeriesPlot, error) {
	if length == 0 {
		return nil, ErrNoData
	}

	min, max, err := scale.Extent(series...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if o.YFromZero {
		min = 0
	}

	p := newPlot(o)
	s := &SeriesPlot{
		Plot: p,
		X:    scale.NewLinear(0, float64(util.RoundUp(int64(length), types.MinutesPerDay)), 0, p.Width),
		Y:    scale.NewLinear(min, max, p.Height, 0).Nice(10),
	}

	p.addClip()
	drawBands(p, o.Bands, s.X)

	var days []float64
	for _, d := range types.Days(int64(s.X.D1)) {
		days = append(days, float64(d.Start))
	}
	axisBottom(p.Canvas, ticksOf(days, s.X.Map, dayLabel(0)), p.Width, p.Height)
	axisLeft(p.Canvas, ticksOf(s.Y.Ticks(10), s.Y.Map, unitLabel(o.Unit)), p.Height)
	axisLabels(p, o)

	return s, nil
}

func (s *SeriesPlot) drawLine(values []float64, color drawing.Color, width string) {
	xs := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, v := range values {
		xs[i] = s.X.Map(float64(i))
		ys[i] = s.Y.Map(v)
	}
	s.Canvas.Add("path").
		Set("class", "line").
		Set("clip-path", "url(#"+s.ClipID()+")").
		Set("d", linePath(xs, ys)).
		Set("fill", "none").
		Set("stroke", scale.Hex(color)).
		Set("stroke-width", width)
}

// Subjects draws one line per subject of a wide recording
func Subjects(t dataset.Table, o Options) (*SeriesPlot, error) {
	o = o.withDefaults(1000, 500, seriesMargin)

	columns := make([][]float64, len(t.Subjects))
	for j := range t.Subjects {
		columns[j] = t.Column(j)
	}

	s, err := newSeriesPlot(o, len(t.Rows), columns...)
	if err != nil {
		return nil, err
	}

	legend := make([]LegendEntry, len(columns))
	for j, values := range columns {
		s.drawLine(values, scale.Category(j), "1.5")
		legend[j] = LegendEntry{Label: t.Subjects[j], Color: scale.Category(j)}
	}
	drawLegend(s.Plot, s.Width+10, 0, legend)

	return s, nil
}

// Comparison draws several group series into one plot
func Comparison(series []Series, o Options) (*SeriesPlot, error) {
	o = o.withDefaults(1000, 500, seriesMargin)

	length := 0
	values := make([][]float64, len(series))
	for i, sr := range series {
		values[i] = sr.Values
		if len(sr.Values) > length {
			length = len(sr.Values)
		}
	}

	s, err := newSeriesPlot(o, length, values...)
	if err != nil {
		return nil, err
	}

	legend := make([]LegendEntry, len(series))
	for i, sr := range series {
		color := sr.Color
		if color == (drawing.Color{}) {
			color = scale.Category(i)
		}
		s.drawLine(sr.Values, color, "2")
		legend[i] = LegendEntry{Label: sr.Name, Color: color}
	}
	drawLegend(s.Plot, s.Width+10, 0, legend)

	return s, nil
}
