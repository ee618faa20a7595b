package render

import (
	"fmt"
	"sort"

	"github.com/martin2250/circaplot/dataset"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/types"
	"github.com/martin2250/circaplot/util"
)

// Trace draws the per-minute values of one subject of a long recording
// with a dot per sample
func Trace(records []dataset.LongRecord, subject string, o Options) (*SeriesPlot, error) {
	o = o.withDefaults(1000, 500, Margin{Top: 30, Right: 30, Bottom: 50, Left: 60})

	valid, err := dataset.FilterValid(records, subject)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: subject %q has no valid samples", ErrNoData, subject)
	}

	sort.SliceStable(valid, func(a, b int) bool { return valid[a].Slot < valid[b].Slot })

	slots := make([]float64, len(valid))
	values := make([]float64, len(valid))
	for i, r := range valid {
		slots[i] = r.Slot
		values[i] = r.Value
	}

	_, maxSlot, err := scale.Extent(slots)
	if err != nil {
		return nil, err
	}
	min, max, err := scale.Extent(values)
	if err != nil {
		return nil, err
	}

	p := newPlot(o)
	s := &SeriesPlot{
		Plot: p,
		X:    scale.NewLinear(0, float64(util.RoundUp(int64(maxSlot)+1, types.MinutesPerDay)), 0, p.Width),
		Y:    scale.NewLinear(min, max, p.Height, 0),
	}

	var days []float64
	for _, d := range types.Days(int64(s.X.D1) + 1) {
		days = append(days, float64(d.Start))
	}
	axisBottom(p.Canvas, ticksOf(days, s.X.Map, dayLabel(1)), p.Width, p.Height)
	axisLeft(p.Canvas, ticksOf(s.Y.Ticks(10), s.Y.Map, unitLabel(o.Unit)), p.Height)
	axisLabels(p, o)

	xs := make([]float64, len(valid))
	ys := make([]float64, len(valid))
	for i := range valid {
		xs[i] = s.X.Map(slots[i])
		ys[i] = s.Y.Map(values[i])
	}
	p.Canvas.Add("path").
		Set("class", "line").
		Set("d", linePath(xs, ys)).
		Set("fill", "none").
		Set("stroke", scale.Hex(o.Color)).
		Set("stroke-width", "1.5")

	dots := p.Canvas.Add("g").Set("class", "dots")
	for i, r := range valid {
		dot := dots.Add("circle").
			Set("class", "dot").
			SetFloat("cx", xs[i]).
			SetFloat("cy", ys[i]).
			SetFloat("r", 2).
			Set("fill", scale.Hex(scale.Named["tomato"]))
		dot.Datum = r
		dot.Add("title").SetText(fmt.Sprintf("Minute: %g\nValue: %g%s", r.Slot, r.Value, o.Unit))
	}

	return s, nil
}
