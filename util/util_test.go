package util

import (
	"math"
	"testing"
)

func TestRoundDown(t *testing.T) {
	tests := []struct {
		value, modulo, want int64
	}{
		{0, 1440, 0},
		{1439, 1440, 0},
		{1440, 1440, 1440},
		{4000, 1440, 2880},
		{-5, 1440, 0},
	}
	for _, tt := range tests {
		if got := RoundDown(tt.value, tt.modulo); got != tt.want {
			t.Errorf("RoundDown(%d, %d) = %d, want %d", tt.value, tt.modulo, got, tt.want)
		}
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		value, modulo, want int64
	}{
		{0, 1440, 0},
		{1, 1440, 1440},
		{1440, 1440, 1440},
		{20159, 1440, 20160},
	}
	for _, tt := range tests {
		if got := RoundUp(tt.value, tt.modulo); got != tt.want {
			t.Errorf("RoundUp(%d, %d) = %d, want %d", tt.value, tt.modulo, got, tt.want)
		}
	}
}

func TestNumeric(t *testing.T) {
	in := []float64{1, math.NaN(), 2, math.Inf(1), 3}

	result := Numeric(in)

	if !CompareFloat64(result, []float64{1, 2, 3}) {
		t.Errorf("unexpected result %v", result)
	}
}

func TestCompareFloat64NaN(t *testing.T) {
	a := []float64{1, math.NaN()}
	b := []float64{1, math.NaN()}

	if !CompareFloat64(a, b) {
		t.Error("should return true")
	}
	if CompareFloat64(a, []float64{1, 2}) {
		t.Error("should return false")
	}
}

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID("  F1 "); got != "f1" {
		t.Errorf("NormalizeID() = %q", got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"activity-heatmap_f1", "activity-heatmap_f1"},
		{"../etc/passwd", "___etc_passwd"},
		{"..", "__"},
		{"mouse 7/b", "mouse_7_b"},
		{"", "_"},
	}
	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
