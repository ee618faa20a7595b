package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/martin2250/circaplot/pipeline"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(readCommandLineOptions()))
}

// run renders all plots and returns the exit code
func run(opts CommandLineOptions) int {
	// profiling
	if opts.Profile != "" {
		defer debugStartProfile(opts.Profile, opts.ProfilePath).Stop()
	}

	// configuration
	conf := readConfigurationFile(opts.ConfigPath)
	if opts.OutputPath != "" {
		conf.Output = opts.OutputPath
	}

	if err := logConfigure(conf.Logging, len(opts.Verbose) > 0); err != nil {
		log.WithError(err).Fatal("invalid logging configuration")
	}

	if err := conf.selectPlots(opts.Plots); err != nil {
		log.WithError(err).Fatal("invalid plot selection")
	}

	pconf, err := conf.Pipeline()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	// shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}

	log.WithField("plots", len(pconf.Plots)).Info("rendering plots")
	results := pipeline.NewRunner(pconf, log.StandardLogger()).Run(ctx)

	out := Output{
		Dir:    conf.Output,
		Report: conf.Report,
		Title:  conf.Title,
		Hover:  opts.Hover,
	}
	if err := out.Write(results); err != nil {
		log.WithError(err).Fatal("could not write output")
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	log.WithFields(log.Fields{
		"path":   conf.Output,
		"plots":  len(results),
		"failed": failed,
	}).Info("done")

	if failed > 0 {
		return 1
	}
	return 0
}
