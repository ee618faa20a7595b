package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type CommandLineOptions struct {
	ConfigPath string `short:"c" long:"config" description:"configuration file" required:"true"`
	OutputPath string `short:"o" long:"output" description:"output directory, overrides the configuration"`

	Plots []string `short:"p" long:"plot" description:"only render the named plot, may be repeated"`
	Hover []int    `long:"hover" description:"write a snapshot of linked plots with this minute of day hovered, may be repeated"`

	Verbose []bool `short:"v" long:"verbose" description:"log debug messages"`

	Profile     string `long:"profile" description:"the type of profile to record"`
	ProfilePath string `long:"profilepath" description:"path for the profile"`
}

func readCommandLineOptions() CommandLineOptions {
	opts := CommandLineOptions{}
	_, err := flags.Parse(&opts)

	switch errt := err.(type) {
	case *flags.Error:
		if errt.Type == flags.ErrHelp {
			os.Exit(0)
		}
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not parse command line arguments")
	}

	return opts
}
