package types

import "github.com/martin2250/circaplot/util"

// MinutesPerDay is the number of one-minute samples in a day
const MinutesPerDay = 1440

// TimeRange is a half-open interval [Start, End) of minutes since the
// start of a recording
type TimeRange struct {
	Start int64
	End   int64
}

func (r TimeRange) ContainsRange(other TimeRange) bool {
	return other.End <= r.End && other.Start >= r.Start
}

func (r TimeRange) Contains(minute int64) bool {
	return r.Start <= minute && minute < r.End
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Clip returns the part of r that lies within limit
func (r TimeRange) Clip(limit TimeRange) (TimeRange, bool) {
	if !r.Overlaps(limit) {
		return TimeRange{}, false
	}
	if r.Start < limit.Start {
		r.Start = limit.Start
	}
	if r.End > limit.End {
		r.End = limit.End
	}
	return r, true
}

func (r TimeRange) Duration() int64 {
	return r.End - r.Start
}

// TimeRangeFromPoint returns the step-aligned range containing minute
func TimeRangeFromPoint(minute, step int64) TimeRange {
	x := util.RoundDown(minute, step)
	return TimeRange{
		Start: x,
		End:   x + step,
	}
}

// Periodic returns ranges of length duration starting at start and
// repeating every period, clipped to [0, limit)
func Periodic(start, period, duration, limit int64) []TimeRange {
	if period <= 0 || duration <= 0 {
		return nil
	}
	bounds := TimeRange{Start: 0, End: limit}
	var ranges []TimeRange
	for t := start; t < limit; t += period {
		r, ok := TimeRange{Start: t, End: t + duration}.Clip(bounds)
		if ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// Days returns the day-aligned ranges covering [0, limit)
func Days(limit int64) []TimeRange {
	var days []TimeRange
	for t := int64(0); t < limit; t += MinutesPerDay {
		days = append(days, TimeRangeFromPoint(t, MinutesPerDay))
	}
	return days
}
