/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ARM-software/numeric-overflow/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu     sync.RWMutex
	base   logr.Logger
	logger logr.Logger
	source string
	close  func() error
}

func (l *logrLogger) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

// Check always succeeds: a logr logger without sink discards messages.
func (l *logrLogger) Check() error {
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.base.WithName(l.source).WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	l.logger = l.base.WithName(source)
	return nil
}

func (l *logrLogger) current() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Log(output ...interface{}) {
	l.current().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...interface{}) {
	var cause error
	msg := make([]interface{}, 0, len(err))
	for i := range err {
		if e, ok := err[i].(error); ok && cause == nil {
			cause = e
			continue
		}
		msg = append(msg, err[i])
	}
	l.current().Error(cause, strings.TrimSpace(fmt.Sprintln(msg...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but also runs closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	loggers = &logrLogger{base: logrImpl, logger: logrImpl, close: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}
