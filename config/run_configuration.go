/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/logs"
)

const (
	// EnvVarPrefix is the prefix of environment variables configuring the program.
	EnvVarPrefix = "numovf"
	// DefaultLoggerSource is the name under which the program logs.
	DefaultLoggerSource = "numeric-overflow"
)

// RunConfiguration configures how the numeric tests are traced and where the report is written.
type RunConfiguration struct {
	// Logger lists the logging backends (std, stdr, zap, logrus, hclog or noop) separated by commas.
	Logger string `mapstructure:"logger"`
	// Verbose logs every test outcome.
	Verbose bool `mapstructure:"verbose"`
	// Output is the path of the file to write the report to. The report goes to the standard output if empty.
	Output string `mapstructure:"output"`
}

func (cfg *RunConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Logger, validation.Required, validation.By(validateLoggerKinds)),
		validation.Field(&cfg.Output, validation.Length(0, 4096)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "structure failed validation")
	}
	return nil
}

func validateLoggerKinds(value interface{}) error {
	kinds, _ := value.(string)
	_, err := logs.ParseKinds(kinds)
	return err
}

// DefaultRunConfiguration returns the configuration used when nothing is specified.
func DefaultRunConfiguration() *RunConfiguration {
	return &RunConfiguration{
		Logger:  logs.KindStd,
		Verbose: false,
		Output:  "",
	}
}
