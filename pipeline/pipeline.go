// Package pipeline runs the load, aggregate and render sequence of every
// configured plot. Pipelines run concurrently and fail independently.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/martin2250/circaplot/export"
	"github.com/martin2250/circaplot/svg"
	"github.com/martin2250/circaplot/tooltip"
	"github.com/sirupsen/logrus"
)

// Figure is one document produced by a pipeline
type Figure struct {
	Name string
	Doc  *svg.Document
	// Chart is the static rendition, nil unless requested
	Chart export.Chart
}

type Result struct {
	Plot     Plot
	Figures  []Figure
	Err      error
	Duration time.Duration

	// Coordinator links the figures of linked plots
	Coordinator *tooltip.Coordinator
}

type Runner struct {
	Config Config
	Log    logrus.FieldLogger

	loader *Loader
}

func NewRunner(conf Config, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		Config: conf,
		Log:    log,
		loader: NewLoader(conf.Datasets),
	}
}

// Run executes all plots and returns their results in configuration
// order. A failing plot only sets Err on its own result.
func (r *Runner) Run(ctx context.Context) []Result {
	results := make([]Result, len(r.Config.Plots))

	var wg sync.WaitGroup
	for i := range r.Config.Plots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.RunPlot(ctx, r.Config.Plots[i])
		}(i)
	}
	wg.Wait()

	return results
}

// RunPlot executes a single plot
func (r *Runner) RunPlot(ctx context.Context, p Plot) (res Result) {
	logp := r.Log.WithFields(logrus.Fields{"plot": p.Name, "kind": p.Kind})
	start := time.Now()

	res.Plot = p

	defer func() {
		if rec := recover(); rec != nil {
			res.Err = fmt.Errorf("plot %s: panic: %v", p.Name, rec)
		}
		res.Duration = time.Since(start)
		if res.Err != nil {
			logp.WithError(res.Err).Error("plot failed")
			return
		}
		logp.WithFields(logrus.Fields{
			"figures":  len(res.Figures),
			"duration": res.Duration,
		}).Info("plot rendered")
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	build, ok := builders[p.Kind]
	if !ok {
		res.Err = fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, p.Kind)
		return res
	}

	logp.Debug("rendering plot")
	res.Err = build(r, p, &res)
	if res.Err != nil {
		res.Figures = nil
		res.Coordinator = nil
	}
	return res
}
