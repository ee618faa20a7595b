package downsampling

import (
	"errors"
	"fmt"
	"strings"
)

// Reducer reduces the values of one row or one bucket to a single value.
// Input only contains numbers, callers drop NaN before reducing
type Reducer interface {
	// Reduce returns ErrEmpty when values is empty
	Reduce(values []float64) (float64, error)
}

var ErrEmpty = errors.New("no values to reduce")

var ErrUnknownReducer = errors.New("no matching reducer found")

// reducers
var (
	First  = firstReducer{}
	Last   = lastReducer{}
	Min    = minReducer{}
	Max    = maxReducer{}
	Sum    = sumReducer{}
	Mean   = meanReducer{}
	Median = medianReducer{}

	PeakPeak = peakpeakReducer{}
)

var Reducers = map[string]Reducer{
	"first":    First,
	"last":     Last,
	"min":      Min,
	"max":      Max,
	"sum":      Sum,
	"mean":     Mean,
	"avg":      Mean,
	"median":   Median,
	"peakpeak": PeakPeak,
}

// FindReducer looks up a reducer by name, an empty name selects Mean
func FindReducer(name string) (Reducer, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "" {
		return Mean, nil
	}

	if r, ok := Reducers[name]; ok {
		return r, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
}
