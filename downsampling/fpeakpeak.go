package downsampling

type peakpeakReducer struct{}

func (peakpeakReducer) Reduce(values []float64) (float64, error) {
	max, err := Max.Reduce(values)
	if err != nil {
		return 0, err
	}
	min, err := Min.Reduce(values)
	if err != nil {
		return 0, err
	}
	return max - min, nil
}
