/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command numericoverflow demonstrates the detection of overflows and underflows on native numeric types.
// It always exits with status 0: overflows are expected outcomes and failures around the report are only logged.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/numeric-overflow/config"
	"github.com/ARM-software/numeric-overflow/logs"
	"github.com/ARM-software/numeric-overflow/report"
)

func main() {
	run(os.Args[1:], afero.NewOsFs(), os.Stderr)
	os.Exit(0)
}

func newFlagSet(errOutput io.Writer) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("numericoverflow", pflag.ContinueOnError)
	flagSet.SetOutput(errOutput)
	flagSet.String("logger", logs.KindStd, fmt.Sprintf("logging backends %v, separated by %q", logs.SupportedKinds(), logs.KindSeparator))
	flagSet.BoolP("verbose", "v", false, "log every test outcome")
	flagSet.StringP("output", "o", "", "file to write the report to (standard output if empty)")
	return flagSet
}

func loadConfiguration(args []string, errOutput io.Writer) (*config.RunConfiguration, error) {
	flagSet := newFlagSet(errOutput)
	err := flagSet.Parse(args)
	if err != nil {
		return config.DefaultRunConfiguration(), err
	}
	session := viper.New()
	err = config.BindFlags(session, flagSet)
	if err != nil {
		return config.DefaultRunConfiguration(), err
	}
	cfg := &config.RunConfiguration{}
	err = config.LoadFromViper(session, config.EnvVarPrefix, cfg, config.DefaultRunConfiguration())
	if err != nil {
		return config.DefaultRunConfiguration(), err
	}
	return cfg, nil
}

// run writes the report. Problems with the configuration or the destination make it fall back to defaults.
func run(args []string, fs afero.Fs, errOutput io.Writer) {
	cfg, cfgErr := loadConfiguration(args, errOutput)
	logger, err := logs.NewLoggers(cfg.Logger, config.DefaultLoggerSource, cfg.Verbose)
	if err != nil {
		logger, _ = logs.NewStdLogger(config.DefaultLoggerSource)
		logger.LogError(err)
	}
	defer func() { _ = logger.Close() }()
	if cfgErr != nil {
		logger.LogError(cfgErr, "- using default configuration")
	}

	sink, err := report.NewSink(fs, cfg.Output)
	if err != nil {
		logger.LogError(err, "- writing report to standard output")
		sink = report.NewStdoutSink()
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.LogError(err)
		}
	}()

	reporter, err := report.NewReporter(sink, logger, report.WithVerbose(cfg.Verbose))
	if err != nil {
		logger.LogError(err)
		return
	}
	if cfg.Verbose {
		logger.Log("writing report to", sink.Name())
	}
	if _, err := reporter.Run(); err != nil {
		logger.LogError(err)
	}
}
