package types

import (
	"reflect"
	"testing"
)

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Start: 10, End: 20}

	if !r.Contains(10) {
		t.Error("start should be contained")
	}
	if r.Contains(20) {
		t.Error("end should not be contained")
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"disjoint", TimeRange{0, 10}, TimeRange{10, 20}, false},
		{"partial", TimeRange{0, 11}, TimeRange{10, 20}, true},
		{"inner", TimeRange{0, 100}, TimeRange{10, 20}, true},
		{"outer", TimeRange{10, 20}, TimeRange{0, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeRangeFromPoint(t *testing.T) {
	got := TimeRangeFromPoint(3000, MinutesPerDay)
	want := TimeRange{Start: 2880, End: 4320}

	if got != want {
		t.Errorf("TimeRangeFromPoint() = %v, want %v", got, want)
	}
}

func TestEstrusBands(t *testing.T) {
	got := DefaultEstrus.Bands(20160)
	want := []TimeRange{
		{Start: 2880, End: 4320},
		{Start: 8640, End: 10080},
		{Start: 14400, End: 15840},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bands() = %v, want %v", got, want)
	}
}

func TestPeriodicClipped(t *testing.T) {
	got := Periodic(100, 1000, 500, 1200)
	want := []TimeRange{
		{Start: 100, End: 600},
		{Start: 1100, End: 1200},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Periodic() = %v, want %v", got, want)
	}
}

func TestDays(t *testing.T) {
	if got := len(Days(20160)); got != 14 {
		t.Errorf("Days() returned %d ranges", got)
	}
}
