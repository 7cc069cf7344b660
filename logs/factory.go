/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/logs/logrimp"
)

// Logging backends which can be selected by name.
const (
	KindStd    = "std"
	KindStdr   = "stdr"
	KindZap    = "zap"
	KindLogrus = "logrus"
	KindHclog  = "hclog"
	KindNoop   = "noop"
)

// SupportedKinds lists the logging backends NewLoggers can create.
func SupportedKinds() []string {
	return []string{KindStd, KindStdr, KindZap, KindLogrus, KindHclog, KindNoop}
}

// KindSeparator separates the backends of a combined logger, e.g. "zap,std".
const KindSeparator = ","

// IsSupportedKind states whether kind is a known logging backend.
func IsSupportedKind(kind string) bool {
	return slices.Contains(SupportedKinds(), strings.ToLower(strings.TrimSpace(kind)))
}

// ParseKinds splits a list of backend names separated by KindSeparator and checks every one of them is supported.
// Duplicates are removed.
func ParseKinds(kinds string) (parsed []string, err error) {
	for _, kind := range strings.Split(kinds, KindSeparator) {
		if !IsSupportedKind(kind) {
			err = commonerrors.Newf(commonerrors.ErrUnsupported, "logger kind %q is not supported (expected one of %v)", kind, SupportedKinds())
			return
		}
		kind = strings.ToLower(strings.TrimSpace(kind))
		if !slices.Contains(parsed, kind) {
			parsed = append(parsed, kind)
		}
	}
	return
}

// NewLoggers creates loggers using the backends listed in kinds. All backends log to the standard error.
// If more than one backend is listed, messages are sent to all of them. An empty list selects the std backend.
// If verbose is set, backends with levels also emit debug messages.
func NewLoggers(kinds string, loggerSource string, verbose bool) (loggers Loggers, err error) {
	if strings.TrimSpace(loggerSource) == "" {
		err = commonerrors.ErrNoLoggerSource
		return
	}
	if strings.TrimSpace(kinds) == "" {
		kinds = KindStd
	}
	parsed, err := ParseKinds(kinds)
	if err != nil {
		return
	}
	if len(parsed) == 1 {
		return newLoggers(parsed[0], loggerSource, verbose)
	}
	list := make([]Loggers, 0, len(parsed))
	for i := range parsed {
		l, subErr := newLoggers(parsed[i], loggerSource, verbose)
		if subErr != nil {
			errs := []error{subErr}
			for j := range list {
				errs = append(errs, list[j].Close())
			}
			err = commonerrors.Join(errs...)
			return
		}
		list = append(list, l)
	}
	return NewCombinedLoggers(list...)
}

func newLoggers(kind string, loggerSource string, verbose bool) (loggers Loggers, err error) {
	switch kind {
	case KindStd:
		return NewStdLogger(loggerSource)
	case KindStdr:
		verbosity := 0
		if verbose {
			verbosity = 1
		}
		return NewLogrLogger(logrimp.NewStdLogr(os.Stderr, verbosity), loggerSource)
	case KindZap:
		zapL, subErr := newZapStderrLogger(verbose)
		if subErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, subErr, "could not create zap logger")
			return
		}
		return NewZapLogger(zapL, loggerSource)
	case KindLogrus:
		logrusL := logrus.New()
		logrusL.SetOutput(os.Stderr)
		if verbose {
			logrusL.SetLevel(logrus.DebugLevel)
		}
		return NewLogrusLogger(logrusL, loggerSource)
	case KindHclog:
		level := hclog.Info
		if verbose {
			level = hclog.Debug
		}
		return NewHclogLogger(hclog.New(&hclog.LoggerOptions{
			Name:   loggerSource,
			Level:  level,
			Output: os.Stderr,
		}), loggerSource)
	case KindNoop:
		return NewNoopLogger(loggerSource)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "logger kind %q is not supported (expected one of %v)", kind, SupportedKinds())
		return
	}
}
