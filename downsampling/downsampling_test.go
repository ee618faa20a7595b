package downsampling

import (
	"errors"
	"testing"
)

func TestReducers(t *testing.T) {
	values := []float64{36.5, 36.1, 36.9, 36.3}

	tests := []struct {
		name string
		want float64
	}{
		{"first", 36.5},
		{"last", 36.3},
		{"min", 36.1},
		{"max", 36.9},
		{"median", 36.4},
		{"peakpeak", 36.9 - 36.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FindReducer(tt.name)
			if err != nil {
				t.Fatalf("FindReducer() error = %v", err)
			}
			got, err := r.Reduce(values)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Reduce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	got, err := Mean.Reduce([]float64{36.1, 36.3})
	if err != nil {
		t.Fatal(err)
	}
	if diff := got - 36.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Reduce() = %v, want 36.2", got)
	}
}

func TestReduceEmpty(t *testing.T) {
	for name, r := range Reducers {
		if _, err := r.Reduce(nil); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s: expected ErrEmpty, got %v", name, err)
		}
	}
}

func TestFindReducerDefault(t *testing.T) {
	r, err := FindReducer("")
	if err != nil {
		t.Fatal(err)
	}
	if r != Mean {
		t.Error("empty name should select mean")
	}
}

func TestFindReducerUnknown(t *testing.T) {
	if _, err := FindReducer("mode"); !errors.Is(err, ErrUnknownReducer) {
		t.Errorf("expected ErrUnknownReducer, got %v", err)
	}
}
