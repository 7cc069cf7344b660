/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/commonerrors/errortest"
	"github.com/ARM-software/numeric-overflow/logs"
)

func TestRunConfiguration_Validate(t *testing.T) {
	require.NoError(t, DefaultRunConfiguration().Validate())
	for _, kind := range logs.SupportedKinds() {
		cfg := DefaultRunConfiguration()
		cfg.Logger = kind
		assert.NoError(t, cfg.Validate())
	}
	cfg := DefaultRunConfiguration()
	cfg.Logger = logs.KindZap + logs.KindSeparator + logs.KindStd
	assert.NoError(t, cfg.Validate())
	cfg.Logger = logs.KindZap + logs.KindSeparator + "console"
	errortest.AssertError(t, cfg.Validate(), commonerrors.ErrInvalid)
	cfg.Logger = ""
	errortest.AssertError(t, cfg.Validate(), commonerrors.ErrInvalid)
	cfg.Logger = "console-" + faker.Word()
	err := cfg.Validate()
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	errortest.AssertErrorDescription(t, err, "logger")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NUMOVF_LOGGER", "")
	t.Setenv("NUMOVF_OUTPUT", "")
	t.Setenv("NUMOVF_VERBOSE", "")
	cfg := &RunConfiguration{}
	require.NoError(t, Load(EnvVarPrefix, cfg, DefaultRunConfiguration()))
	assert.Equal(t, DefaultRunConfiguration(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	output := fmt.Sprintf("report-%v.txt", faker.Word())
	t.Setenv("NUMOVF_LOGGER", logs.KindZap)
	t.Setenv("NUMOVF_VERBOSE", "true")
	t.Setenv("NUMOVF_OUTPUT", output)
	cfg := &RunConfiguration{}
	require.NoError(t, Load(EnvVarPrefix, cfg, DefaultRunConfiguration()))
	assert.Equal(t, logs.KindZap, cfg.Logger)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, output, cfg.Output)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("NUMOVF_LOGGER", "syslog")
	cfg := &RunConfiguration{}
	err := Load(EnvVarPrefix, cfg, DefaultRunConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestLoad_Undefined(t *testing.T) {
	errortest.AssertError(t, LoadFromViper(nil, EnvVarPrefix, &RunConfiguration{}, nil), commonerrors.ErrUndefined)
	errortest.AssertError(t, LoadFromViper(viper.New(), EnvVarPrefix, nil, nil), commonerrors.ErrUndefined)
	errortest.AssertError(t, BindFlags(nil, nil), commonerrors.ErrUndefined)
}

func TestLoad_Flags(t *testing.T) {
	t.Setenv("NUMOVF_LOGGER", logs.KindLogrus)
	t.Setenv("NUMOVF_OUTPUT", "")
	t.Setenv("NUMOVF_VERBOSE", "")
	output := fmt.Sprintf("report-%v.txt", faker.Word())
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("logger", "std", "logger")
	flagSet.Bool("verbose", false, "verbose")
	flagSet.StringP("output", "o", "", "output")
	require.NoError(t, flagSet.Parse([]string{"--verbose", "-o", output}))

	session := viper.New()
	require.NoError(t, BindFlags(session, flagSet))
	cfg := &RunConfiguration{}
	require.NoError(t, LoadFromViper(session, EnvVarPrefix, cfg, DefaultRunConfiguration()))
	// flags which were not set do not override the environment
	assert.Equal(t, logs.KindLogrus, cfg.Logger)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, output, cfg.Output)

	require.NoError(t, flagSet.Set("logger", logs.KindHclog))
	cfg = &RunConfiguration{}
	require.NoError(t, LoadFromViper(session, EnvVarPrefix, cfg, DefaultRunConfiguration()))
	assert.Equal(t, logs.KindHclog, cfg.Logger)
}

func TestFlagToKey(t *testing.T) {
	assert.Equal(t, "log_level", FlagToKey(" Log-Level "))
	assert.Equal(t, "output", FlagToKey("output"))
}
