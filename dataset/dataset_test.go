package dataset

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/martin2250/circaplot/util"
)

func TestLoadWide(t *testing.T) {
	table, err := LoadWide("testdata/wide.csv")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(table.Subjects, []string{"f1", "f2", "f3"}) {
		t.Errorf("unexpected subjects %v", table.Subjects)
	}

	want := [][]float64{
		{36.1, 36.3, 36.2},
		{36.5, math.NaN(), 36.7},
		{36.4, math.NaN(), math.NaN()},
	}
	if !util.Compare2DFloat64(table.Rows, want) {
		t.Errorf("unexpected rows %v", table.Rows)
	}

	if !util.CompareFloat64(table.Column(0), []float64{36.1, 36.5, 36.4}) {
		t.Errorf("unexpected column %v", table.Column(0))
	}
}

func TestLoadWideMissingFile(t *testing.T) {
	if _, err := LoadWide("testdata/missing.csv"); err == nil {
		t.Error("expected an error")
	}
}

func TestReadWideHeaderOnly(t *testing.T) {
	if _, err := ReadWide(strings.NewReader("f1,f2\n")); err == nil {
		t.Error("expected an error for a file without rows")
	}
}

func TestLoadLong(t *testing.T) {
	records, err := LoadLong("testdata/hourly.csv", HourlyActivity)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	first := LongRecord{Subject: "f2", Day: 1, Slot: 0, Value: 10}
	if records[0] != first {
		t.Errorf("records[0] = %+v, want %+v", records[0], first)
	}

	if records[3].Valid() {
		t.Error("record with empty activity should not be valid")
	}

	if got := Subjects(records); !reflect.DeepEqual(got, []string{"f1", "f2", "m1"}) {
		t.Errorf("Subjects() = %v", got)
	}
}

func TestFilterValid(t *testing.T) {
	records, err := LoadLong("testdata/hourly.csv", HourlyActivity)
	if err != nil {
		t.Fatal(err)
	}

	f1, err := FilterValid(records, " F1")
	if err != nil {
		t.Fatal(err)
	}
	if len(f1) != 1 || f1[0].Value != 3 {
		t.Errorf("FilterValid() = %+v", f1)
	}

	if _, err := FilterValid(records, "x9"); !errors.Is(err, ErrUnknownSubject) {
		t.Errorf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestReadLongMissingColumn(t *testing.T) {
	in := "MouseID,Day,Minute\nf1,1,0\n"

	_, err := ReadLong(strings.NewReader(in), MinuteTemperature)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestReadWideRaggedRows(t *testing.T) {
	in := "f1,f2,f3\n36.1,36.3,36.2\n36.5,36.7\n36.4,,abc,99\n36.8\n"

	table, err := ReadWide(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	nan := math.NaN()
	want := [][]float64{
		{36.1, 36.3, 36.2},
		{36.5, 36.7, nan},
		{36.4, nan, nan},
		{36.8, nan, nan},
	}
	if !util.Compare2DFloat64(table.Rows, want) {
		t.Errorf("unexpected rows %v", table.Rows)
	}
}

func TestReadLongRaggedRows(t *testing.T) {
	in := "MouseID,Day,HourOfDay,Activity\nf1,1,0,4\nf1,1,1\nf2,1,0,7,extra\n"

	records, err := ReadLong(strings.NewReader(in), HourlyActivity)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Subject != "f1" || records[1].Slot != 1 || !math.IsNaN(records[1].Value) {
		t.Errorf("short row parsed as %+v", records[1])
	}
	if records[1].Valid() {
		t.Error("short row should not be valid")
	}
	want := LongRecord{Subject: "f2", Day: 1, Slot: 0, Value: 7}
	if records[2] != want {
		t.Errorf("long row parsed as %+v, want %+v", records[2], want)
	}
}
