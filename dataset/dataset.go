// Package dataset loads mouse recordings from CSV files.
//
// Wide files have one column per subject and one row per minute. Long
// files have one row per subject and time slot with explicit columns.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/martin2250/circaplot/util"
)

var ErrNoData = errors.New("dataset contains no rows")

var ErrMissingColumn = errors.New("missing column")

var ErrUnknownSubject = errors.New("unknown subject")

// Table is a wide recording, Rows[i][j] is the value of subject j at
// minute i. Cells that are not numbers are NaN.
type Table struct {
	Subjects []string
	Rows     [][]float64
}

// Column returns the values of one subject
func (t Table) Column(j int) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out
}

// missing is the cell gota reads as NaN
const missing = "NA"

// readRecords reads a CSV file whose rows may be shorter or longer than
// the header. Short rows are padded with missing cells and long rows are
// cut, so row i stays row i.
func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	width := len(records[0])
	for i, rec := range records[1:] {
		switch {
		case len(rec) > width:
			records[i+1] = rec[:width]
		case len(rec) < width:
			padded := make([]string, width)
			copy(padded, rec)
			for j := len(rec); j < width; j++ {
				padded[j] = missing
			}
			records[i+1] = padded
		}
	}
	return records, nil
}

// ReadWide parses a wide CSV recording
func ReadWide(r io.Reader) (Table, error) {
	records, err := readRecords(r)
	if err != nil {
		return Table{}, err
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return Table{}, df.Err
	}

	nrow, ncol := df.Dims()
	if nrow == 0 || ncol == 0 {
		return Table{}, ErrNoData
	}

	t := Table{
		Subjects: df.Names(),
		Rows:     make([][]float64, nrow),
	}
	for i := range t.Rows {
		t.Rows[i] = make([]float64, ncol)
	}

	for j, name := range t.Subjects {
		values := df.Col(name).Float()
		for i, v := range values {
			t.Rows[i][j] = v
		}
	}

	return t, nil
}

// LoadWide reads a wide CSV recording from path
func LoadWide(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := ReadWide(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LongFormat names the columns of a long CSV recording
type LongFormat struct {
	Subject string `yaml:"subject"`
	Day     string `yaml:"day"`
	Slot    string `yaml:"slot"`
	Value   string `yaml:"value"`
}

// HourlyActivity is the layout of the hour-by-day activity file
var HourlyActivity = LongFormat{
	Subject: "MouseID",
	Day:     "Day",
	Slot:    "HourOfDay",
	Value:   "Activity",
}

// MinuteTemperature is the layout of the per-minute temperature file
var MinuteTemperature = LongFormat{
	Subject: "MouseID",
	Day:     "Day",
	Slot:    "Minute",
	Value:   "Temperature",
}

// LongRecord is one row of a long recording. Numeric fields that could not
// be parsed are NaN.
type LongRecord struct {
	Subject string
	Day     float64
	Slot    float64
	Value   float64
}

// Valid reports whether all numeric fields are numbers
func (r LongRecord) Valid() bool {
	return util.IsNumber(r.Day) && util.IsNumber(r.Slot) && util.IsNumber(r.Value)
}

func (f LongFormat) withDefaults() LongFormat {
	if f.Subject == "" {
		f.Subject = "MouseID"
	}
	if f.Day == "" {
		f.Day = "Day"
	}
	return f
}

// ReadLong parses a long CSV recording. Subject identifiers are trimmed
// and lower-cased.
func ReadLong(r io.Reader, f LongFormat) ([]LongRecord, error) {
	f = f.withDefaults()
	if f.Slot == "" || f.Value == "" {
		return nil, fmt.Errorf("%w: slot and value columns must be configured", ErrMissingColumn)
	}

	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{
			f.Subject: series.String,
		}),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	if df.Nrow() == 0 {
		return nil, ErrNoData
	}

	names := make(map[string]bool)
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, col := range []string{f.Subject, f.Day, f.Slot, f.Value} {
		if !names[col] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	subjects := df.Col(f.Subject).Records()
	slots := df.Col(f.Slot).Float()
	values := df.Col(f.Value).Float()
	days := df.Col(f.Day).Float()

	out := make([]LongRecord, len(subjects))
	for i := range out {
		out[i] = LongRecord{
			Subject: util.NormalizeID(subjects[i]),
			Day:     days[i],
			Slot:    slots[i],
			Value:   values[i],
		}
	}

	return out, nil
}

// LoadLong reads a long CSV recording from path
func LoadLong(path string, f LongFormat) ([]LongRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := ReadLong(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Subjects returns the sorted distinct subjects of records
func Subjects(records []LongRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.Subject] {
			seen[r.Subject] = true
			out = append(out, r.Subject)
		}
	}
	sort.Strings(out)
	return out
}

// Filter returns the records of subject in file order
func Filter(records []LongRecord, subject string) []LongRecord {
	subject = util.NormalizeID(subject)
	var out []LongRecord
	for _, r := range records {
		if r.Subject == subject {
			out = append(out, r)
		}
	}
	return out
}

// FilterValid returns the records of subject whose numeric fields are all
// numbers
func FilterValid(records []LongRecord, subject string) ([]LongRecord, error) {
	all := Filter(records, subject)
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
	}
	var out []LongRecord
	for _, r := range all {
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out, nil
}
