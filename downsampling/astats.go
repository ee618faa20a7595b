package downsampling

import "github.com/montanaflynn/stats"

type meanReducer struct{}

func (meanReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return stats.Mean(values)
}

type medianReducer struct{}

func (medianReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return stats.Median(values)
}

type minReducer struct{}

func (minReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return stats.Min(values)
}

type maxReducer struct{}

func (maxReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return stats.Max(values)
}

type sumReducer struct{}

func (sumReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return stats.Sum(values)
}
