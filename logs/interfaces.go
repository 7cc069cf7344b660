/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "io"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/numeric-overflow/$GOPACKAGE Loggers

type Loggers interface {
	io.Closer
	// Check checks whether the loggers are correctly defined or not.
	Check() error
	// SetLogSource sets the source of the log message e.g. the test currently running.
	SetLogSource(source string) error
	// SetLoggerSource sets the source of the logger e.g. the program name.
	SetLoggerSource(source string) error
	// Log logs to the output logger.
	Log(output ...any)
	// LogError logs to the Error logger.
	LogError(err ...any)
}

// IMultipleLoggers defines loggers which fan out to a list of loggers.
type IMultipleLoggers interface {
	Loggers
	// Append adds loggers to the list.
	Append(l ...Loggers) error
}
