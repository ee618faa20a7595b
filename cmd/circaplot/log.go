package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type confLogging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// logConfigure applies the logging section, verbose forces debug output
func logConfigure(conf confLogging, verbose bool) error {
	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	switch conf.Format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", conf.Format)
	}
	return nil
}
