/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads the configuration of the tooling around the numeric tests (logging and report destination).
// It never affects the parameters of the tests themselves.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/numeric-overflow/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "numovf", the env registry will look for env variables that start with "NUMOVF_".
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained: flags set, then environment (variables or `.env`), then default values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.ErrUndefined
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]interface{}
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not decode default configuration")
			return
		}
		for k, v := range defaults {
			viperSession.SetDefault(k, v)
		}
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlags binds every flag of the flag set to the configuration entry with the same name.
// Dashes in flag names correspond to underscores in configuration keys.
func BindFlags(viperSession *viper.Viper, flagSet *pflag.FlagSet) (err error) {
	if viperSession == nil || flagSet == nil {
		err = commonerrors.ErrUndefined
		return
	}
	flagSet.VisitAll(func(flag *pflag.Flag) {
		if err != nil {
			return
		}
		err = viperSession.BindPFlag(FlagToKey(flag.Name), flag)
	})
	return
}

// FlagToKey returns the configuration key corresponding to a flag name.
func FlagToKey(flagName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(flagName)), "-", EnvVarSeparator)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)

	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}
