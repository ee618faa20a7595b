package aggregate

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/martin2250/circaplot/downsampling"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func constantRows(n int, values ...float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = append([]float64(nil), values...)
	}
	return rows
}

func TestDailyProfileShape(t *testing.T) {
	points, err := DailyProfile(constantRows(3*1440+17, 36.5, 36.7), base)
	if err != nil {
		t.Fatal(err)
	}

	if len(points) != 1440 {
		t.Fatalf("expected 1440 points, got %d", len(points))
	}
	for i, p := range points {
		if p.MinuteOfDay != i {
			t.Fatalf("point %d has minute %d", i, p.MinuteOfDay)
		}
	}
}

func TestDailyProfileTwoDays(t *testing.T) {
	rows := constantRows(2*1440, math.NaN())
	rows[0] = []float64{36.1, 36.3}
	rows[1440] = []float64{36.5, 36.7}
	for i := range rows {
		if i != 0 && i != 1440 {
			rows[i] = []float64{37}
		}
	}

	points, err := DailyProfile(rows, base)
	if err != nil {
		t.Fatal(err)
	}

	if diff := points[0].Average - 36.4; math.Abs(diff) > 1e-9 {
		t.Errorf("bucket 0 average = %v, want 36.4", points[0].Average)
	}
	if want := base.Add(1440 * time.Minute); !points[0].Time.Equal(want) {
		t.Errorf("bucket 0 time = %v, want %v", points[0].Time, want)
	}
}

func TestDailyProfileOneDay(t *testing.T) {
	rows := make([][]float64, 1440)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i) + 2}
	}

	a := Aggregator{Reducer: downsampling.Mean, Base: base}

	buckets, err := a.Buckets(rows)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range buckets {
		if b.Count != 1 {
			t.Fatalf("bucket %d has count %d", b.MinuteOfDay, b.Count)
		}
	}

	points, err := a.Profile(rows)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		if p.Average != float64(i)+1 {
			t.Fatalf("point %d average = %v", i, p.Average)
		}
	}
}

func TestDailyProfileZeroFill(t *testing.T) {
	rows := constantRows(60, 10)

	points, err := DailyProfile(rows, base.Add(6*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range points {
		observed := p.MinuteOfDay >= 360 && p.MinuteOfDay < 420
		if observed && p.Average != 10 {
			t.Errorf("minute %d average = %v, want 10", p.MinuteOfDay, p.Average)
		}
		if !observed && p.Average != 0 {
			t.Errorf("minute %d average = %v, want 0", p.MinuteOfDay, p.Average)
		}
		if MinuteOfDay(p.Time) != p.MinuteOfDay {
			t.Errorf("minute %d has display time %v", p.MinuteOfDay, p.Time)
		}
	}
}

func TestDailyProfileOffsetStart(t *testing.T) {
	rows := constantRows(2, 1)
	rows[1] = []float64{3}

	points, err := DailyProfile(rows, base.Add(1439*time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	if points[1439].Average != 1 || points[0].Average != 3 {
		t.Errorf("rows should wrap around midnight, got %v and %v", points[1439].Average, points[0].Average)
	}
}

func TestDailyProfileIdempotent(t *testing.T) {
	rows := make([][]float64, 5000)
	for i := range rows {
		rows[i] = []float64{math.Sin(float64(i)), math.Cos(float64(i)), math.NaN()}
	}

	a, err := DailyProfile(rows, base)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DailyProfile(rows, base)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("aggregating twice gave different results")
	}
}

func TestDailyProfileMissingValuesExcluded(t *testing.T) {
	rows := [][]float64{{36.0, math.NaN(), 38.0}}

	points, err := DailyProfile(rows, base)
	if err != nil {
		t.Fatal(err)
	}

	if points[0].Average != 37 {
		t.Errorf("average = %v, want 37", points[0].Average)
	}
}

func TestDailyProfileInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"empty", nil},
		{"no numeric values", [][]float64{{1}, {math.NaN(), math.NaN()}}},
		{"no columns", [][]float64{{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := DailyProfile(tt.rows, base)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if points != nil {
				t.Error("expected no partial output")
			}
		})
	}
}

type brokenReducer struct{}

func (brokenReducer) Reduce([]float64) (float64, error) {
	return 0, errors.New("reducer broke")
}

func TestReducerErrorReported(t *testing.T) {
	a := Aggregator{Reducer: brokenReducer{}, Base: base}
	rows := [][]float64{{1, 2}}

	_, err := a.Profile(rows)
	if !errors.Is(err, ErrInvalidInput) || !strings.Contains(err.Error(), "reducer broke") {
		t.Errorf("Profile() error = %v", err)
	}

	_, err = a.RowSeries(rows)
	if !errors.Is(err, ErrInvalidInput) || !strings.Contains(err.Error(), "reducer broke") {
		t.Errorf("RowSeries() error = %v", err)
	}

	_, err = Aggregator{Base: base}.Profile([][]float64{{math.NaN()}})
	if !strings.Contains(err.Error(), downsampling.ErrEmpty.Error()) {
		t.Errorf("empty row error = %v", err)
	}
}

func TestBucketCountInvariant(t *testing.T) {
	rows := constantRows(4321, 1, 2)

	buckets, err := Aggregator{Base: base}.Buckets(rows)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(rows) {
		t.Errorf("bucket counts sum to %d, want %d", total, len(rows))
	}
}

func TestRowSeries(t *testing.T) {
	rows := [][]float64{{1, 3}, {math.NaN(), 4}, {10, 20, 30}}

	got, err := Aggregator{Reducer: downsampling.Max}.RowSeries(rows)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, []float64{3, 4, 30}) {
		t.Errorf("RowSeries() = %v", got)
	}
}
