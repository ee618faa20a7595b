package scale

import (
	"errors"
	"time"

	"github.com/martin2250/circaplot/util"
	"github.com/montanaflynn/stats"
)

var ErrNoValues = errors.New("no numeric values")

// Extent returns the minimum and maximum of the numeric values
func Extent(values ...[]float64) (min, max float64, err error) {
	var all []float64
	for _, v := range values {
		all = append(all, util.Numeric(v)...)
	}
	if len(all) == 0 {
		return 0, 0, ErrNoValues
	}
	min, err = stats.Min(all)
	if err != nil {
		return 0, 0, err
	}
	max, err = stats.Max(all)
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

// TimeExtent returns the earliest and latest of times
func TimeExtent(times []time.Time) (min, max time.Time, ok bool) {
	for i, t := range times {
		if i == 0 || t.Before(min) {
			min = t
		}
		if i == 0 || t.After(max) {
			max = t
		}
	}
	return min, max, len(times) > 0
}
