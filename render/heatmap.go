package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/martin2250/circaplot/dataset"
	"github.com/martin2250/circaplot/scale"
	"github.com/martin2250/circaplot/svg"
)

const hoursPerDay = 24

// HeatmapPlot is an hour-of-day by day grid of one subject's values
type HeatmapPlot struct {
	*Plot
	X       scale.Linear
	Y       scale.Linear
	Color   scale.Sequential
	Subject string

	// Days are the distinct days in ascending order, Values[i][h] is the
	// value of Days[i] at hour h or NaN
	Days   []float64
	Values [][]float64

	Cells []*svg.Element
}

// HeatmapLabel is the text shown when hovering a cell
func HeatmapLabel(r dataset.LongRecord) string {
	return fmt.Sprintf("Mouse: %s\nDay: %g\nHour: %g\nActivity: %g", strings.ToUpper(r.Subject), r.Day, r.Slot, r.Value)
}

func Heatmap(records []dataset.LongRecord, subject string, o Options) (*HeatmapPlot, error) {
	o = o.withDefaults(1000, 500, Margin{Top: 20, Right: 20, Bottom: 70, Left: 70})

	valid, err := dataset.FilterValid(records, subject)
	if err != nil {
		return nil, err
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: subject %q has no valid cells", ErrNoData, subject)
	}

	values := make([]float64, len(valid))
	days := make(map[float64]bool)
	for i, r := range valid {
		values[i] = r.Value
		days[r.Day] = true
	}
	min, max, err := scale.Extent(values)
	if err != nil {
		return nil, err
	}

	h := &HeatmapPlot{
		Color:   scale.Sequential{D0: min, D1: max, Interp: scale.YlOrRd},
		Subject: valid[0].Subject,
	}
	for d := range days {
		h.Days = append(h.Days, d)
	}
	sort.Float64s(h.Days)

	dayIndex := make(map[float64]int, len(h.Days))
	h.Values = make([][]float64, len(h.Days))
	for i, d := range h.Days {
		dayIndex[d] = i
		h.Values[i] = make([]float64, hoursPerDay)
		for j := range h.Values[i] {
			h.Values[i][j] = math.NaN()
		}
	}
	for _, r := range valid {
		if r.Slot >= 0 && r.Slot < hoursPerDay {
			h.Values[dayIndex[r.Day]][int(r.Slot)] = r.Value
		}
	}

	firstDay, lastDay := h.Days[0], h.Days[len(h.Days)-1]

	h.Plot = newPlot(o)
	h.X = scale.NewLinear(0, hoursPerDay, 0, h.Width)
	h.Y = scale.NewLinear(firstDay, lastDay+1, 0, h.Height)

	cellWidth := h.X.Map(1) - h.X.Map(0)
	cellHeight := h.Y.Map(firstDay+1) - h.Y.Map(firstDay)

	var xt []Tick
	for hour := 0; hour < hoursPerDay; hour++ {
		xt = append(xt, Tick{Pos: h.X.Map(float64(hour)) + cellWidth/2, Label: itoa(hour)})
	}
	var yt []Tick
	for d := firstDay; d <= lastDay; d++ {
		yt = append(yt, Tick{Pos: h.Y.Map(d) + cellHeight/2, Label: fmt.Sprintf("%g", d)})
	}

	cells := h.Canvas.Add("g").Set("class", "cells")
	for _, r := range valid {
		if r.Slot < 0 || r.Slot >= hoursPerDay {
			continue
		}
		cell := cells.Add("rect").
			Set("class", "cell").
			SetFloat("x", h.X.Map(r.Slot)).
			SetFloat("y", h.Y.Map(r.Day)).
			SetFloat("width", cellWidth).
			SetFloat("height", cellHeight).
			Set("fill", scale.Hex(h.Color.Map(r.Value)))
		cell.Datum = r
		cell.Add("title").SetText(HeatmapLabel(r))
		h.Cells = append(h.Cells, cell)
	}

	axisBottom(h.Canvas, xt, h.Width, h.Height)
	axisLeft(h.Canvas, yt, h.Height)
	if o.XLabel == "" {
		o.XLabel = "Hour of Day"
	}
	if o.YLabel == "" {
		o.YLabel = "Day"
	}
	axisLabels(h.Plot, o)

	return h, nil
}
