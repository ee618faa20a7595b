package render

import (
	"sort"
	"strconv"
	"time"

	"github.com/martin2250/circaplot/aggregate"
	"github.com/martin2250/circaplot/scale"
)

// LinePlot draws a daily profile over wall clock time
type LinePlot struct {
	*Plot
	X       scale.Time
	Y       scale.Linear
	Profile []aggregate.AveragedPoint
}

func Line(profile []aggregate.AveragedPoint, o Options) (*LinePlot, error) {
	if len(profile) == 0 {
		return nil, ErrNoData
	}

	o = o.withDefaults(1000, 500, Margin{Top: 30, Right: 30, Bottom: 50, Left: 60})

	times := make([]time.Time, len(profile))
	for i, point := range profile {
		times[i] = point.Time
	}
	t0, t1, _ := scale.TimeExtent(times)

	min, max, err := scale.Extent(aggregate.Averages(profile))
	if err != nil {
		return nil, err
	}
	if o.YFromZero {
		min = 0
	}

	p := newPlot(o)
	l := &LinePlot{
		Plot:    p,
		X:       scale.NewTime(t0, t1, 0, p.Width),
		Y:       scale.NewLinear(min, max, p.Height, 0).Nice(10),
		Profile: profile,
	}

	var xt []Tick
	for _, t := range l.X.Ticks(3 * time.Hour) {
		xt = append(xt, Tick{Pos: l.X.Map(t), Label: t.Format("15:04")})
	}
	axisBottom(p.Canvas, xt, p.Width, p.Height)
	axisLeft(p.Canvas, ticksOf(l.Y.Ticks(10), l.Y.Map, unitLabel(o.Unit)), p.Height)
	axisLabels(p, o)

	// profiles starting after midnight wrap around, draw in time order
	order := make([]int, len(profile))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return profile[order[a]].Time.Before(profile[order[b]].Time)
	})

	xs := make([]float64, len(profile))
	ys := make([]float64, len(profile))
	for i, j := range order {
		xs[i] = l.X.Map(profile[j].Time)
		ys[i] = l.Y.Map(profile[j].Average)
	}

	p.Canvas.Add("path").
		Set("class", "line").
		Set("d", linePath(xs, ys)).
		Set("fill", "none").
		Set("stroke", scale.Hex(o.Color)).
		Set("stroke-width", "1.5")

	return l, nil
}

// Point returns the canvas coordinates of profile point i
func (l *LinePlot) Point(i int) (x, y float64) {
	return l.X.Map(l.Profile[i].Time), l.Y.Map(l.Profile[i].Average)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
