/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/numeric-overflow/commonerrors"
)

// MultipleLogger logs to every logger of a list.
type MultipleLogger struct {
	mu      sync.RWMutex
	loggers []Loggers
}

func (c *MultipleLogger) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make([]error, len(c.loggers))
	g := new(errgroup.Group)
	for i := range c.loggers {
		g.Go(func() error {
			errs[i] = c.loggers[i].Close()
			return nil
		})
	}
	_ = g.Wait()
	return commonerrors.Join(errs...)
}

func (c *MultipleLogger) Check() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g := new(errgroup.Group)
	for i := range c.loggers {
		g.Go(c.loggers[i].Check)
	}
	return g.Wait()
}

func (c *MultipleLogger) SetLogSource(source string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	errs := make([]error, 0, len(c.loggers))
	for i := range c.loggers {
		errs = append(errs, c.loggers[i].SetLogSource(source))
	}
	return commonerrors.Join(errs...)
}

func (c *MultipleLogger) SetLoggerSource(source string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.loggers {
		err := c.loggers[i].SetLoggerSource(source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *MultipleLogger) Log(output ...interface{}) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.loggers {
		c.loggers[i].Log(output...)
	}
}

func (c *MultipleLogger) LogError(err ...interface{}) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.loggers {
		c.loggers[i].LogError(err...)
	}
}

func (c *MultipleLogger) Append(l ...Loggers) error {
	for i := range l {
		if l[i] == nil {
			return commonerrors.ErrNoLogger
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loggers = append(c.loggers, l...)
	return nil
}

// NewCombinedLoggers returns a logger which logs to a list of logger. If list is empty, it will error.
func NewCombinedLoggers(loggersList ...Loggers) (l IMultipleLoggers, err error) {
	if len(loggersList) == 0 {
		err = commonerrors.ErrNoLogger
		return
	}
	l = &MultipleLogger{}
	err = l.Append(loggersList...)
	return
}
