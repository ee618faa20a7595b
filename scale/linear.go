// Package scale maps data values to pixel coordinates and colors.
package scale

import (
	"math"
	"time"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Linear maps the domain [D0, D1] onto the range [R0, R1]
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map returns the range value for v. A degenerate domain maps everything
// to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	t := (v - s.D0) / (s.D1 - s.D0)
	return s.R0 + t*(s.R1-s.R0)
}

// Invert maps a range value back onto the domain
func (s Linear) Invert(r float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	t := (r - s.R0) / (s.R1 - s.R0)
	return s.D0 + t*(s.D1-s.D0)
}

// Nice extends the domain to round values so that roughly count ticks
// fall on its ends
func (s Linear) Nice(count int) Linear {
	d0, d1 := s.D0, s.D1
	reversed := d1 < d0
	if reversed {
		d0, d1 = d1, d0
	}

	prev := 0.0
	for i := 0; i < 10; i++ {
		step := TickStep(d0, d1, count)
		if step == prev || step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
			break
		}
		d0 = math.Floor(d0/step) * step
		d1 = math.Ceil(d1/step) * step
		prev = step
	}

	if reversed {
		d0, d1 = d1, d0
	}
	s.D0, s.D1 = d0, d1
	return s
}

// Ticks returns about count round values within the domain
func (s Linear) Ticks(count int) []float64 {
	d0, d1 := s.D0, s.D1
	if d1 < d0 {
		d0, d1 = d1, d0
	}

	step := TickStep(d0, d1, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{d0}
	}

	first := math.Ceil(d0 / step)
	last := math.Floor(d1 / step)

	n := int(last-first) + 1
	if n < 0 {
		n = 0
	}
	ticks := make([]float64, 0, n)
	for i := first; i <= last; i++ {
		// multiply instead of accumulating to keep values round
		ticks = append(ticks, i*step)
	}
	return ticks
}

// TickStep returns a power of ten multiplied by 1, 2 or 5 that splits
// [start, stop] into about count intervals
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || stop == start {
		return 0
	}
	step0 := math.Abs(stop-start) / float64(count)
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	e := step0 / step1
	switch {
	case e >= e10:
		step1 *= 10
	case e >= e5:
		step1 *= 5
	case e >= e2:
		step1 *= 2
	}
	return step1
}

// Time maps a time domain linearly onto a range
type Time struct {
	T0, T1 time.Time
	R0, R1 float64
}

func NewTime(t0, t1 time.Time, r0, r1 float64) Time {
	return Time{T0: t0, T1: t1, R0: r0, R1: r1}
}

func (s Time) linear() Linear {
	return Linear{
		D0: 0,
		D1: float64(s.T1.Sub(s.T0)),
		R0: s.R0,
		R1: s.R1,
	}
}

func (s Time) Map(t time.Time) float64 {
	return s.linear().Map(float64(t.Sub(s.T0)))
}

func (s Time) Invert(r float64) time.Time {
	return s.T0.Add(time.Duration(s.linear().Invert(r)))
}

// Ticks returns times every step starting at the first multiple of step
// after T0, relative to midnight of T0
func (s Time) Ticks(step time.Duration) []time.Time {
	if step <= 0 || s.T1.Before(s.T0) {
		return nil
	}
	y, m, d := s.T0.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, s.T0.Location())
	for t.Before(s.T0) {
		t = t.Add(step)
	}
	var ticks []time.Time
	for ; !t.After(s.T1); t = t.Add(step) {
		ticks = append(ticks, t)
	}
	return ticks
}
