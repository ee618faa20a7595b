package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/martin2250/circaplot/pipeline"
	"github.com/martin2250/circaplot/util"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const startLayout = "2006-01-02T15:04:05"

type Configuration struct {
	// Start is the local wall clock time of the first row of wide recordings
	Start    string `yaml:"start"`
	Timezone string `yaml:"timezone"`

	Output string `yaml:"output"`
	// Report names the HTML report inside the output directory, empty
	// disables it
	Report string `yaml:"report"`
	Title  string `yaml:"title"`

	Timeout time.Duration `yaml:"timeout"`

	Logging confLogging `yaml:"logging"`

	Datasets []pipeline.Dataset `yaml:"datasets"`
	Plots    []pipeline.Plot    `yaml:"plots"`
}

var ConfigDefault = Configuration{
	Start:    "2025-01-01T00:00:00",
	Timezone: "UTC",
	Output:   "plots",
	Report:   "index.html",
	Title:    "Mouse temperature and activity",
	Timeout:  time.Minute,
	Logging: confLogging{
		Level: "info",
	},
}

// parseConfiguration decodes a configuration over the defaults. Relative
// paths are resolved against dir.
func parseConfiguration(r io.Reader, dir string) (Configuration, error) {
	conf := ConfigDefault

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return conf, err
	}

	if !filepath.IsAbs(conf.Output) {
		conf.Output = filepath.Join(dir, conf.Output)
	}
	for i := range conf.Datasets {
		d := &conf.Datasets[i]
		if d.Format == "" {
			d.Format = pipeline.FormatWide
		}
		if !filepath.IsAbs(d.Path) {
			d.Path = filepath.Join(dir, d.Path)
		}
	}

	return conf, nil
}

// readConfigurationFile does what the name implies
// kills the application when there is an error
func readConfigurationFile(confpath string) Configuration {
	logrus.WithField("path", confpath).Info("loading configuration file")

	if !util.FileExists(confpath) {
		logrus.WithField("path", confpath).Fatal("configuration file does not exist")
	}

	f, err := os.Open(confpath)
	if err != nil {
		logrus.WithError(err).Fatal("could not open configuration file")
	}
	defer f.Close()

	conf, err := parseConfiguration(f, filepath.Dir(confpath))
	if err != nil {
		logrus.WithError(err).Fatal("could not parse configuration file")
	}

	return conf
}

// Pipeline converts the configuration and validates it
func (c Configuration) Pipeline() (pipeline.Config, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("%w: timezone: %v", pipeline.ErrInvalidConfig, err)
	}
	start, err := time.ParseInLocation(startLayout, c.Start, loc)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("%w: start: %v", pipeline.ErrInvalidConfig, err)
	}

	conf := pipeline.Config{
		Start:    start,
		Datasets: c.Datasets,
		Plots:    c.Plots,
	}
	return conf, conf.Validate()
}

// selectPlots keeps the named plots, all when names is empty
func (c *Configuration) selectPlots(names []string) error {
	if len(names) == 0 {
		return nil
	}
	plots := make(map[string]pipeline.Plot, len(c.Plots))
	for _, p := range c.Plots {
		plots[p.Name] = p
	}
	selected := make([]pipeline.Plot, 0, len(names))
	for _, name := range names {
		p, ok := plots[name]
		if !ok {
			return fmt.Errorf("%w: unknown plot %q", pipeline.ErrInvalidConfig, name)
		}
		selected = append(selected, p)
	}
	c.Plots = selected
	return nil
}
