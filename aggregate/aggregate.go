// Package aggregate reduces multi-day per-minute recordings into a daily
// profile of 1440 per-minute-of-day values.
package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/martin2250/circaplot/downsampling"
	"github.com/martin2250/circaplot/types"
	"github.com/martin2250/circaplot/util"
)

var ErrInvalidInput = errors.New("invalid input")

// Bucket accumulates the row values of one minute of the day over all days
type Bucket struct {
	MinuteOfDay   int
	Sum           float64
	Count         int
	LastTimestamp time.Time
}

// AveragedPoint is one minute of an averaged day
type AveragedPoint struct {
	MinuteOfDay int
	Average     float64
	// Time is the last wall clock time seen for this minute, it is only
	// used for display
	Time time.Time
}

// Aggregator folds consecutive one-minute rows starting at Base into
// minute-of-day buckets. Each row is first reduced across its subjects
// with Reducer.
type Aggregator struct {
	Reducer downsampling.Reducer
	Base    time.Time
}

// DailyProfile averages rows into 1440 points, row i being sampled at
// base + i minutes
func DailyProfile(rows [][]float64, base time.Time) ([]AveragedPoint, error) {
	return Aggregator{Reducer: downsampling.Mean, Base: base}.Profile(rows)
}

// MinuteOfDay returns the minute within the day of t in t's location
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Midnight returns the start of the day containing t
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ReduceRow reduces the numeric cells of row, cells that are NaN are
// excluded
func ReduceRow(r downsampling.Reducer, row []float64) (float64, error) {
	values := util.Numeric(row)
	if len(values) == 0 {
		return 0, downsampling.ErrEmpty
	}
	return r.Reduce(values)
}

func (a Aggregator) reducer() downsampling.Reducer {
	if a.Reducer == nil {
		return downsampling.Mean
	}
	return a.Reducer
}

// Buckets returns the filled minute-of-day buckets for rows
func (a Aggregator) Buckets(rows [][]float64) ([]Bucket, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}

	buckets := make([]Bucket, types.MinutesPerDay)
	for i := range buckets {
		buckets[i].MinuteOfDay = i
	}

	r := a.reducer()

	for i, row := range rows {
		timestamp := a.Base.Add(time.Duration(i) * time.Minute)

		value, err := ReduceRow(r, row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, i, err)
		}

		b := &buckets[MinuteOfDay(timestamp)]
		b.Sum += value
		b.Count++
		b.LastTimestamp = timestamp
	}

	return buckets, nil
}

// Profile aggregates rows into exactly 1440 points ordered by minute of
// day. Minutes without observations have an average of zero.
func (a Aggregator) Profile(rows [][]float64) ([]AveragedPoint, error) {
	buckets, err := a.Buckets(rows)
	if err != nil {
		return nil, err
	}

	midnight := Midnight(a.Base)

	points := make([]AveragedPoint, len(buckets))
	for i, b := range buckets {
		p := AveragedPoint{
			MinuteOfDay: b.MinuteOfDay,
			Time:        b.LastTimestamp,
		}
		if b.Count > 0 {
			p.Average = b.Sum / float64(b.Count)
		} else {
			p.Time = midnight.Add(time.Duration(b.MinuteOfDay) * time.Minute)
		}
		points[i] = p
	}

	return points, nil
}

// RowSeries reduces every row across its subjects, giving one value per
// minute of the recording
func (a Aggregator) RowSeries(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidInput)
	}

	r := a.reducer()

	out := make([]float64, len(rows))
	for i, row := range rows {
		v, err := ReduceRow(r, row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Averages returns the averages of points in order
func Averages(points []AveragedPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Average
	}
	return out
}
