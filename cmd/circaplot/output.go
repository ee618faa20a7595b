package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/martin2250/circaplot/export"
	"github.com/martin2250/circaplot/pipeline"
	"github.com/martin2250/circaplot/svg"
	"github.com/martin2250/circaplot/util"
	"github.com/sirupsen/logrus"
)

// Output writes pipeline results to a directory
type Output struct {
	Dir    string
	Report string
	Title  string
	// Hover lists the minutes of day to snapshot on linked plots
	Hover []int
}

func writeFile(path string, f func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeDocument(path string, doc *svg.Document) error {
	return writeFile(path, func(f *os.File) error { return doc.Render(f) })
}

func writeChart(path string, chart export.Chart) error {
	return writeFile(path, func(f *os.File) error { return chart.RenderPNG(f) })
}

// section writes the figures of one result and returns its report section
func (o Output) section(res pipeline.Result) (export.Section, error) {
	sec := export.Section{
		Name:     res.Plot.Name,
		Kind:     string(res.Plot.Kind),
		Duration: res.Duration,
	}
	if res.Err != nil {
		sec.Error = res.Err.Error()
		return sec, nil
	}

	for _, fig := range res.Figures {
		base := util.FileName(fig.Name)
		ef := export.Figure{
			Name: fig.Name,
			SVG:  template.HTML(fig.Doc.String()),
		}
		if err := writeDocument(filepath.Join(o.Dir, base+".svg"), fig.Doc); err != nil {
			return sec, err
		}
		if fig.Chart != nil {
			ef.Image = base + ".png"
			if err := writeChart(filepath.Join(o.Dir, ef.Image), fig.Chart); err != nil {
				return sec, err
			}
		}
		sec.Figures = append(sec.Figures, ef)
	}

	if res.Coordinator == nil {
		return sec, nil
	}
	for _, minute := range o.Hover {
		if err := res.Coordinator.Enter(minute); err != nil {
			logrus.WithError(err).WithField("plot", res.Plot.Name).Warning("skipping hover snapshot")
			continue
		}
		for _, fig := range res.Figures {
			name := fmt.Sprintf("%s-hover-%04d.svg", util.FileName(fig.Name), minute)
			if err := writeDocument(filepath.Join(o.Dir, name), fig.Doc); err != nil {
				return sec, err
			}
		}
		res.Coordinator.Leave()
	}

	return sec, nil
}

// Write stores all figures and the report, results that failed only
// appear as errors in the report
func (o Output) Write(results []pipeline.Result) error {
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return err
	}

	report := export.Report{
		Title:     o.Title,
		Generated: time.Now(),
	}
	for _, res := range results {
		sec, err := o.section(res)
		if err != nil {
			return fmt.Errorf("plot %s: %w", res.Plot.Name, err)
		}
		report.Sections = append(report.Sections, sec)
	}

	if o.Report == "" {
		return nil
	}
	return writeFile(filepath.Join(o.Dir, o.Report), func(f *os.File) error {
		return export.WriteReport(f, report)
	})
}
