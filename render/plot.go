// Package render draws recordings and daily profiles into SVG documents.
//
// Every renderer returns its own plot context holding the document and
// the scales used to draw it. Interaction code works on these contexts,
// there is no state shared between plots.
package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/svg"
	"github.com/martin2250/circaplot/types"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("nothing to draw")

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Options are shared by all renderers, zero values select the renderer's
// defaults
type Options struct {
	Title  string
	Width  float64
	Height float64
	Margin *Margin

	XLabel string
	YLabel string
	// Unit is appended to y tick labels
	Unit string
	// YFromZero starts the y domain at zero instead of the data minimum
	YFromZero bool

	Color drawing.Color
	Bands []types.TimeRange
}

func (o Options) withDefaults(width, height float64, m Margin) Options {
	if o.Width <= 0 {
		o.Width = width
	}
	if o.Height <= 0 {
		o.Height = height
	}
	if o.Margin == nil {
		o.Margin = &m
	}
	if o.Color == (drawing.Color{}) {
		o.Color = scale.Named["steelblue"]
	}
	return o
}

// Plot is the drawing surface of one rendered plot
type Plot struct {
	// ID is unique per plot, it prefixes document keys and element ids so
	// several plots can share one HTML page
	ID     string
	Doc    *svg.Document
	Canvas *svg.Element

	// Width and Height of the canvas inside the margins
	Width  float64
	Height float64
}

func newPlot(o Options) *Plot {
	id := uuid.NewString()
	m := *o.Margin

	doc := svg.NewDocument(o.Width, o.Height)
	doc.Root.Set("id", "plot-"+id).Set("font-family", "sans-serif")

	p := &Plot{
		ID:     id,
		Doc:    doc,
		Width:  o.Width - m.Left - m.Right,
		Height: o.Height - m.Top - m.Bottom,
	}

	if o.Title != "" {
		doc.Root.Add("text").
			Set("class", "title").
			SetFloat("x", o.Width/2).
			SetFloat("y", math.Max(m.Top-8, 14)).
			Set("text-anchor", "middle").
			Set("font-size", "14px").
			SetText(o.Title)
	}

	p.Canvas = doc.Root.Add("g").Set("transform", translate(m.Left, m.Top))
	return p
}

// Key namespaces a document key with the plot id
func (p *Plot) Key(name string) string {
	return p.ID + "/" + name
}

// ClipID returns the id of the clip path that bounds the canvas
func (p *Plot) ClipID() string {
	return "clip-" + p.ID
}

func (p *Plot) addClip() {
	clip := p.Canvas.Add("clipPath").Set("id", p.ClipID())
	clip.Add("rect").
		SetFloat("width", p.Width).
		SetFloat("height", p.Height)
}

func (p *Plot) String() string {
	return p.Doc.String()
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// linePath builds path data through the points, NaN values break the line
func linePath(xs, ys []float64) string {
	var sb strings.Builder
	pen := false
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			pen = false
			continue
		}
		if pen {
			sb.WriteByte('L')
		} else {
			sb.WriteByte('M')
			pen = true
		}
		sb.WriteString(num(xs[i]))
		sb.WriteByte(',')
		sb.WriteString(num(ys[i]))
	}
	return sb.String()
}

func drawBands(p *Plot, bands []types.TimeRange, x scale.Linear) {
	for _, b := range bands {
		x0 := x.Map(float64(b.Start))
		x1 := x.Map(float64(b.End))
		p.Canvas.Add("rect").
			Set("class", "estrus-band").
			SetFloat("x", x0).
			SetFloat("width", x1-x0).
			SetFloat("y", 0).
			SetFloat("height", p.Height).
			Set("fill", "pink").
			Set("opacity", "0.3")
	}
}

// LegendEntry is one row of a plot legend
type LegendEntry struct {
	Label string
	Color drawing.Color
}

func drawLegend(p *Plot, x, y float64, entries []LegendEntry) {
	g := p.Canvas.Add("g").Set("class", "legend").Set("transform", translate(x, y))
	for i, e := range entries {
		cy := float64(i) * 20
		g.Add("circle").
			SetFloat("r", 5).
			SetFloat("cy", cy).
			Set("fill", scale.Hex(e.Color))
		g.Add("text").
			SetFloat("x", 10).
			SetFloat("y", cy+5).
			Set("font-size", "12px").
			SetText(e.Label)
	}
}

func dayLabel(offset int) func(v float64) string {
	return func(v float64) string {
		return fmt.Sprintf("Day %d", int(math.Floor(v/types.MinutesPerDay))+offset)
	}
}

func unitLabel(unit string) func(v float64) string {
	return func(v float64) string {
		return strconv.FormatFloat(math.Round(v*1e9)/1e9, 'f', -1, 64) + unit
	}
}
