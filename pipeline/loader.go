package pipeline

import (
	"fmt"
	"sync"

	"github.com/martin2250/circaplot/dataset"
)

type entry struct {
	once    sync.Once
	table   dataset.Table
	records []dataset.LongRecord
	err     error
}

// Loader reads every dataset at most once and shares the result between
// pipelines. Loaded data is never modified.
type Loader struct {
	datasets map[string]Dataset

	mu      sync.Mutex
	entries map[string]*entry
}

func NewLoader(datasets []Dataset) *Loader {
	l := &Loader{
		datasets: make(map[string]Dataset, len(datasets)),
		entries:  make(map[string]*entry),
	}
	for _, d := range datasets {
		l.datasets[d.Name] = d
	}
	return l
}

func (l *Loader) entry(name string) (*entry, Dataset, error) {
	d, ok := l.datasets[name]
	if !ok {
		return nil, Dataset{}, fmt.Errorf("%w: unknown dataset %q", ErrInvalidConfig, name)
	}

	l.mu.Lock()
	e, ok := l.entries[name]
	if !ok {
		e = &entry{}
		l.entries[name] = e
	}
	l.mu.Unlock()

	e.once.Do(func() {
		switch d.Format {
		case FormatWide:
			e.table, e.err = dataset.LoadWide(d.Path)
		case FormatLong:
			e.records, e.err = dataset.LoadLong(d.Path, d.Columns)
		default:
			e.err = fmt.Errorf("%w: dataset %q has unknown format %q", ErrInvalidConfig, name, d.Format)
		}
	})
	return e, d, e.err
}

// Wide returns the table of a wide dataset
func (l *Loader) Wide(name string) (dataset.Table, Dataset, error) {
	e, d, err := l.entry(name)
	if err != nil {
		return dataset.Table{}, d, err
	}
	if d.Format != FormatWide {
		return dataset.Table{}, d, fmt.Errorf("%w: dataset %q is not wide", ErrInvalidConfig, name)
	}
	return e.table, d, nil
}

// Long returns the records of a long dataset
func (l *Loader) Long(name string) ([]dataset.LongRecord, Dataset, error) {
	e, d, err := l.entry(name)
	if err != nil {
		return nil, d, err
	}
	if d.Format != FormatLong {
		return nil, d, fmt.Errorf("%w: dataset %q is not long", ErrInvalidConfig, name)
	}
	return e.records, d, nil
}
