package downsampling

type lastReducer struct{}

func (lastReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return values[len(values)-1], nil
}
