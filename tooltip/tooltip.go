// Package tooltip links hovering over a circular time-of-day plot to the
// matching point of a line plot of the same minutes.
package tooltip

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/martin2250/circaplot/aggregate"
	"github.com/martin2250/circaplot/render"
	"github.com/martin2250/circaplot/svg"
)

var ErrUnknownMinute = errors.New("minute not in profile")

type State int

const (
	Idle State = iota
	Hovering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	}
	return "unknown"
}

const (
	markerKey  = "hover-marker"
	tooltipKey = "tooltip"
	valueKey   = "tooltip-value"
	timeKey    = "tooltip-time"

	highlightStroke = "black"
	highlightWidth  = "4"
)

// Coordinator shows a marker line and a tooltip on the line plot for the
// minute hovered on the circular plot. It reuses one marker and one
// tooltip element for all hovers.
type Coordinator struct {
	source *render.CircularPlot
	target *render.LinePlot

	// profile is indexed by minute of day
	profile map[int]int

	state   State
	minute  int
	mark    *svg.Element
	restore map[string]string

	// Format renders the value shown in the tooltip
	Format func(p aggregate.AveragedPoint) string
}

// New links source to target, the target's profile supplies the values
// shown for each hovered minute
func New(source *render.CircularPlot, target *render.LinePlot) *Coordinator {
	c := &Coordinator{
		source:  source,
		target:  target,
		profile: make(map[int]int, len(target.Profile)),
		Format: func(p aggregate.AveragedPoint) string {
			return strconv.FormatFloat(p.Average, 'f', 2, 64)
		},
	}
	for i, p := range target.Profile {
		c.profile[p.MinuteOfDay] = i
	}
	return c
}

// Bind registers pointer handlers on every mark of the circular plot
func (c *Coordinator) Bind() {
	for _, mark := range c.source.Marks {
		mark.On(svg.PointerEnter, c.onEnter)
		mark.On(svg.PointerLeave, c.onLeave)
	}
}

func (c *Coordinator) onEnter(ev svg.Event) {
	p, ok := ev.Target.Datum.(aggregate.AveragedPoint)
	if !ok {
		return
	}
	// errors only arise for minutes missing from the target profile,
	// hovering such a mark has no effect
	_ = c.Enter(p.MinuteOfDay)
}

func (c *Coordinator) onLeave(ev svg.Event) {
	c.Leave()
}

// State returns the current state and the hovered minute
func (c *Coordinator) State() (State, int) {
	return c.state, c.minute
}

// Enter moves to Hovering(minute). When another minute is hovered its
// highlight is removed first.
func (c *Coordinator) Enter(minute int) error {
	i, ok := c.profile[minute]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMinute, minute)
	}
	mark, ok := c.source.Mark(minute)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMinute, minute)
	}

	if c.state == Hovering {
		c.Leave()
	}

	act := c.target.Profile[i]
	x, y := c.target.Point(i)

	doc := c.target.Doc
	canvas := c.target.Canvas

	marker, _ := doc.Upsert(c.target.Key(markerKey), canvas, "line")
	marker.
		Set("class", "hover-marker").
		SetFloat("x1", x).
		SetFloat("x2", x).
		SetFloat("y1", 0).
		SetFloat("y2", c.target.Height).
		Set("stroke", "gray").
		Set("stroke-dasharray", "4,2").
		Set("visibility", "visible")

	panel, created := doc.Upsert(c.target.Key(tooltipKey), canvas, "g")
	if created {
		panel.Set("class", "tooltip")
		panel.Add("rect").
			SetFloat("width", 90).
			SetFloat("height", 36).
			Set("fill", "white").
			Set("stroke", "gray").
			Set("opacity", "0.9")
	}
	panel.
		Set("transform", "translate("+strconv.FormatFloat(x+10, 'f', -1, 64)+","+strconv.FormatFloat(y-28, 'f', -1, 64)+")").
		Set("visibility", "visible")

	value, _ := doc.Upsert(c.target.Key(valueKey), panel, "text")
	value.SetFloat("x", 6).SetFloat("y", 15).Set("font-size", "11px").SetText(c.Format(act))

	when, _ := doc.Upsert(c.target.Key(timeKey), panel, "text")
	when.SetFloat("x", 6).SetFloat("y", 29).Set("font-size", "11px").SetText(act.Time.Format("15:04"))

	c.restore = map[string]string{
		"stroke":       mark.Attr("stroke"),
		"stroke-width": mark.Attr("stroke-width"),
	}
	mark.Set("stroke", highlightStroke).Set("stroke-width", highlightWidth)

	c.mark = mark
	c.minute = minute
	c.state = Hovering
	return nil
}

// Leave hides the marker and tooltip and restores the hovered mark
func (c *Coordinator) Leave() {
	if c.state != Hovering {
		return
	}

	if marker, ok := c.target.Doc.Lookup(c.target.Key(markerKey)); ok {
		marker.Set("visibility", "hidden")
	}
	if panel, ok := c.target.Doc.Lookup(c.target.Key(tooltipKey)); ok {
		panel.Set("visibility", "hidden")
	}

	for k, v := range c.restore {
		c.mark.Set(k, v)
	}

	c.mark = nil
	c.restore = nil
	c.state = Idle
}

// Marker returns the marker line if it has been created
func (c *Coordinator) Marker() (*svg.Element, bool) {
	return c.target.Doc.Lookup(c.target.Key(markerKey))
}

// Tooltip returns the tooltip panel if it has been created
func (c *Coordinator) Tooltip() (*svg.Element, bool) {
	return c.target.Doc.Lookup(c.target.Key(tooltipKey))
}

// Visible reports whether the tooltip is currently shown
func (c *Coordinator) Visible() bool {
	panel, ok := c.Tooltip()
	return ok && panel.Attr("visibility") == "visible"
}
