package util

import "math"

// CompareFloat64 compares two slices element by element, NaN equals NaN
func CompareFloat64(f1, f2 []float64) bool {
	if len(f1) != len(f2) {
		return false
	}
	for i := range f1 {
		if math.IsNaN(f1[i]) && math.IsNaN(f2[i]) {
			continue
		}
		if f1[i] != f2[i] {
			return false
		}
	}
	return true
}

// Compare2DFloat64 compares two tables element by element, NaN equals NaN
func Compare2DFloat64(f1, f2 [][]float64) bool {
	if len(f1) != len(f2) {
		return false
	}
	for i := range f1 {
		if !CompareFloat64(f1[i], f2[i]) {
			return false
		}
	}
	return true
}
