package render

import (
	"math"

	"github.com/martin2250/circaplot/aggregate"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/svg"
	"github.com/martin2250/circaplot/types"
)

// MarkClass is the class of the per-minute marks of a circular plot
const MarkClass = "datapoint-line"

type CircularOptions struct {
	Options
	InnerRadius float64
	OuterRadius float64
}

// CircularPlot is a 24 hour clock with one radial mark per minute of the
// day, colored by the minute's average
type CircularPlot struct {
	*Plot
	Color       scale.ColorLinear
	Profile     []aggregate.AveragedPoint
	InnerRadius float64
	OuterRadius float64

	// Marks[i] is the mark of Profile[i]
	Marks []*svg.Element
}

// Angle returns the clockwise angle of minute from midnight at the top, in
// the coordinate system of the canvas
func Angle(minute int) float64 {
	return 2*math.Pi*float64(minute)/types.MinutesPerDay - math.Pi/2
}

func Circular(profile []aggregate.AveragedPoint, o CircularOptions) (*CircularPlot, error) {
	if len(profile) == 0 {
		return nil, ErrNoData
	}

	o.Options = o.Options.withDefaults(500, 500, Margin{})
	if o.InnerRadius <= 0 {
		o.InnerRadius = 150
	}
	if o.OuterRadius <= o.InnerRadius {
		o.OuterRadius = o.InnerRadius + 20
	}

	min, max, err := scale.Extent(aggregate.Averages(profile))
	if err != nil {
		return nil, err
	}

	p := newPlot(o.Options)
	p.Canvas.Set("transform", translate(o.Width/2, o.Height/2))

	c := &CircularPlot{
		Plot: p,
		Color: scale.ColorLinear{
			D0:   min,
			D1:   max,
			From: scale.Named["blue"],
			To:   scale.Named["red"],
		},
		Profile:     profile,
		InnerRadius: o.InnerRadius,
		OuterRadius: o.OuterRadius,
		Marks:       make([]*svg.Element, len(profile)),
	}

	for _, r := range []float64{c.InnerRadius, c.OuterRadius} {
		p.Canvas.Add("circle").
			Set("class", "ring").
			SetFloat("r", r).
			Set("fill", "none").
			Set("stroke", "black").
			Set("stroke-width", "2")
	}

	marks := p.Canvas.Add("g").Set("class", "marks")
	for i, point := range profile {
		a := Angle(point.MinuteOfDay)
		mark := marks.Add("line").
			Set("class", MarkClass).
			Set("data-minute", itoa(point.MinuteOfDay)).
			SetFloat("x1", math.Cos(a)*c.InnerRadius).
			SetFloat("y1", math.Sin(a)*c.InnerRadius).
			SetFloat("x2", math.Cos(a)*c.OuterRadius).
			SetFloat("y2", math.Sin(a)*c.OuterRadius).
			Set("stroke", scale.Hex(c.Color.Map(point.Average))).
			Set("stroke-width", "2")
		mark.Datum = point
		c.Marks[i] = mark
	}

	labels := p.Canvas.Add("g").Set("class", "labels")
	for _, point := range profile {
		if point.MinuteOfDay%60 != 0 {
			continue
		}
		a := Angle(point.MinuteOfDay)
		labels.Add("text").
			Set("class", "time-label").
			SetFloat("x", math.Cos(a)*(c.OuterRadius+20)).
			SetFloat("y", math.Sin(a)*(c.OuterRadius+20)).
			Set("text-anchor", "middle").
			Set("dominant-baseline", "middle").
			Set("font-size", "10px").
			SetText(point.Time.Format("15:04"))
	}

	return c, nil
}

// Mark returns the mark drawn for minute
func (c *CircularPlot) Mark(minute int) (*svg.Element, bool) {
	for i, p := range c.Profile {
		if p.MinuteOfDay == minute {
			return c.Marks[i], true
		}
	}
	return nil, false
}
