package downsampling

type firstReducer struct{}

func (firstReducer) Reduce(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return values[0], nil
}
