package render

import (
	"github.com/martin2250/circaplot/svg"
)

// Tick is a labelled position along an axis in canvas coordinates
type Tick struct {
	Pos   float64
	Label string
}

func ticksOf(values []float64, pos func(float64) float64, label func(float64) string) []Tick {
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Pos: pos(v), Label: label(v)}
	}
	return ticks
}

// axisBottom draws a horizontal axis of the given length at height y
func axisBottom(parent *svg.Element, ticks []Tick, length, y float64) *svg.Element {
	g := parent.Add("g").Set("class", "axis axis-x").Set("transform", translate(0, y))
	g.Add("line").
		SetFloat("x1", 0).
		SetFloat("x2", length).
		Set("stroke", "black")
	for _, t := range ticks {
		g.Add("line").
			SetFloat("x1", t.Pos).
			SetFloat("x2", t.Pos).
			SetFloat("y2", 6).
			Set("stroke", "black")
		g.Add("text").
			SetFloat("x", t.Pos).
			SetFloat("y", 18).
			Set("text-anchor", "middle").
			Set("font-size", "10px").
			SetText(t.Label)
	}
	return g
}

// axisLeft draws a vertical axis of the given length at x = 0
func axisLeft(parent *svg.Element, ticks []Tick, length float64) *svg.Element {
	g := parent.Add("g").Set("class", "axis axis-y")
	g.Add("line").
		SetFloat("y1", 0).
		SetFloat("y2", length).
		Set("stroke", "black")
	for _, t := range ticks {
		g.Add("line").
			SetFloat("x1", -6).
			SetFloat("y1", t.Pos).
			SetFloat("y2", t.Pos).
			Set("stroke", "black")
		g.Add("text").
			SetFloat("x", -9).
			SetFloat("y", t.Pos).
			Set("text-anchor", "end").
			Set("dominant-baseline", "middle").
			Set("font-size", "10px").
			SetText(t.Label)
	}
	return g
}

// axisLabels adds the axis titles around the canvas of p
func axisLabels(p *Plot, o Options) {
	m := *o.Margin
	if o.XLabel != "" {
		p.Doc.Root.Add("text").
			Set("class", "axis-label").
			Set("text-anchor", "middle").
			SetFloat("x", m.Left+p.Width/2).
			SetFloat("y", m.Top+p.Height+m.Bottom-8).
			SetText(o.XLabel)
	}
	if o.YLabel != "" {
		p.Doc.Root.Add("text").
			Set("class", "axis-label").
			Set("text-anchor", "middle").
			Set("transform", "rotate(-90)").
			SetFloat("x", -(m.Top+p.Height/2)).
			SetFloat("y", 14).
			SetText(o.YLabel)
	}
}
