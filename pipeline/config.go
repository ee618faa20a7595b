package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/martin2250/circaplot/dataset"
	"github.com/martin2250/circaplot/downsampling"
	"github.com/martin2250/circaplot/types"
)

type Kind string

const (
	// KindLinked is a circular plot of the first dataset linked to a
	// profile line plot of the second dataset
	KindLinked     Kind = "linked"
	KindCircular   Kind = "circular"
	KindProfile    Kind = "profile"
	KindSubjects   Kind = "subjects"
	KindComparison Kind = "comparison"
	KindHeatmap    Kind = "heatmap"
	KindTrace      Kind = "trace"
)

type Format string

const (
	FormatWide Format = "wide"
	FormatLong Format = "long"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Dataset is a CSV recording
type Dataset struct {
	Name    string             `yaml:"name"`
	Path    string             `yaml:"path"`
	Format  Format             `yaml:"format"`
	Columns dataset.LongFormat `yaml:"columns"`
	Label   string             `yaml:"label"`
	Color   string             `yaml:"color"`
}

// Plot describes one load and render pipeline
type Plot struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	Datasets []string `yaml:"datasets"`
	// Subjects selects the subjects of long datasets, all when empty
	Subjects []string `yaml:"subjects"`
	Reducer  string   `yaml:"reducer"`

	Title     string  `yaml:"title"`
	XLabel    string  `yaml:"xlabel"`
	YLabel    string  `yaml:"ylabel"`
	Unit      string  `yaml:"unit"`
	YFromZero bool    `yaml:"yfromzero"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`

	Estrus *types.Estrus `yaml:"estrus"`

	// PNG additionally renders a static image
	PNG bool `yaml:"png"`
}

type Config struct {
	// Start is the wall clock time of the first row of wide recordings
	Start    time.Time
	Datasets []Dataset
	Plots    []Plot
}

var datasetCount = map[Kind][2]int{
	KindLinked:     {2, 2},
	KindCircular:   {1, 1},
	KindProfile:    {1, 1},
	KindSubjects:   {1, 1},
	KindComparison: {1, 10},
	KindHeatmap:    {1, 1},
	KindTrace:      {1, 1},
}

var datasetFormat = map[Kind]Format{
	KindLinked:     FormatWide,
	KindCircular:   FormatWide,
	KindProfile:    FormatWide,
	KindSubjects:   FormatWide,
	KindComparison: FormatWide,
	KindHeatmap:    FormatLong,
	KindTrace:      FormatLong,
}

// Validate checks plot kinds, dataset references and reducers
func (c Config) Validate() error {
	datasets := make(map[string]Dataset)
	for _, d := range c.Datasets {
		if d.Name == "" {
			return fmt.Errorf("%w: dataset without name", ErrInvalidConfig)
		}
		if _, ok := datasets[d.Name]; ok {
			return fmt.Errorf("%w: duplicate dataset %q", ErrInvalidConfig, d.Name)
		}
		if d.Format != FormatWide && d.Format != FormatLong {
			return fmt.Errorf("%w: dataset %q has unknown format %q", ErrInvalidConfig, d.Name, d.Format)
		}
		datasets[d.Name] = d
	}

	names := make(map[string]bool)
	for _, p := range c.Plots {
		if p.Name == "" {
			return fmt.Errorf("%w: plot without name", ErrInvalidConfig)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate plot %q", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true

		count, ok := datasetCount[p.Kind]
		if !ok {
			return fmt.Errorf("%w: plot %q has unknown kind %q", ErrInvalidConfig, p.Name, p.Kind)
		}
		if len(p.Datasets) < count[0] || len(p.Datasets) > count[1] {
			return fmt.Errorf("%w: plot %q of kind %s needs %d to %d datasets", ErrInvalidConfig, p.Name, p.Kind, count[0], count[1])
		}
		for _, name := range p.Datasets {
			d, ok := datasets[name]
			if !ok {
				return fmt.Errorf("%w: plot %q references unknown dataset %q", ErrInvalidConfig, p.Name, name)
			}
			if d.Format != datasetFormat[p.Kind] {
				return fmt.Errorf("%w: plot %q of kind %s needs %s datasets, %q is %s", ErrInvalidConfig, p.Name, p.Kind, datasetFormat[p.Kind], name, d.Format)
			}
		}
		if _, err := downsampling.FindReducer(p.Reducer); err != nil {
			return fmt.Errorf("%w: plot %q: %v", ErrInvalidConfig, p.Name, err)
		}
	}
	return nil
}
