/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report runs the overflow and underflow tests on every numeric domain and writes a human-readable report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ARM-software/numeric-overflow/commonerrors"
	"github.com/ARM-software/numeric-overflow/logs"
	"github.com/ARM-software/numeric-overflow/scenario"
)

const (
	starLineLength = 50
	indentation    = "    "

	StartBanner = "Starting Numeric Underflow / Overflow Tests!"
	EndBanner   = "All Numeric Underflow / Overflow Tests Complete!"
)

// StarLine separates the sections of the report.
var StarLine = strings.Repeat("*", starLineLength)

type wording struct {
	verb string
	flag string
}

var wordings = map[scenario.Direction]wording{
	scenario.Overflow:  {verb: "Adding", flag: "Overflow"},
	scenario.Underflow: {verb: "Subtracting", flag: "Underflow"},
}

// Reporter writes the report of the numeric tests.
type Reporter struct {
	w       io.Writer
	err     error
	logger  logs.Loggers
	verbose bool
	cases   []scenario.Case
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithVerbose logs every outcome and not only the unexpected ones.
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) {
		r.verbose = verbose
	}
}

// WithCases replaces the domains tested.
func WithCases(cases ...scenario.Case) Option {
	return func(r *Reporter) {
		r.cases = cases
	}
}

// NewReporter returns a reporter writing to w and tracing to logger.
func NewReporter(w io.Writer, logger logs.Loggers, opts ...Option) (*Reporter, error) {
	if w == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing report destination")
	}
	if logger == nil {
		return nil, commonerrors.ErrNoLogger
	}
	r := &Reporter{
		w:      w,
		logger: logger,
		cases:  scenario.Cases(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run runs the overflow tests and then the underflow tests of every domain and writes their report.
// It returns the outcomes in report order. An error is only returned if the report could not be written.
func (r *Reporter) Run() (outcomes []*scenario.Outcome, err error) {
	outcomes = make([]*scenario.Outcome, 0, 2*len(r.cases))
	r.printf("%v\n", StartBanner)
	for _, direction := range []scenario.Direction{scenario.Overflow, scenario.Underflow} {
		outcomes = append(outcomes, r.runSection(direction)...)
	}
	r.printf("\n%v\n", EndBanner)
	if r.err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, r.err, "could not write report")
	}
	return
}

func (r *Reporter) runSection(direction scenario.Direction) []*scenario.Outcome {
	r.printf("\n%v\n*** Running %v Tests ***\n%v\n", StarLine, direction, StarLine)
	outcomes := make([]*scenario.Outcome, 0, len(r.cases))
	for i := range r.cases {
		c := &r.cases[i]
		_ = r.logger.SetLogSource(fmt.Sprintf("%v test of %v", strings.ToLower(direction.String()), c.Domain.Label()))
		o := c.Run(direction)
		r.writeOutcome(o)
		r.trace(o)
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func (r *Reporter) writeOutcome(o *scenario.Outcome) {
	words := wordings[o.Direction]
	r.printf("%v Test of Type = %v\n", o.Direction, o.Domain.Label())
	r.printf("%v%v Numbers Without %v (%v, %v, %v) = %v (%v: %v)\n", indentation, words.verb, words.flag, o.Start, o.Step, o.Safe.Steps, o.Safe.Value, words.flag, o.Safe.Flag)
	r.printf("%v%v Numbers With %v (%v, %v, %v) = %v (%v: %v)\n", indentation, words.verb, words.flag, o.Start, o.Step, o.Unsafe.Steps, o.Unsafe.Value, words.flag, o.Unsafe.Flag)
}

func (r *Reporter) trace(o *scenario.Outcome) {
	if r.verbose {
		r.logger.Log(o.String())
	}
	if o.ExpectationMet() {
		return
	}
	first := "no violation found"
	if o.FirstViolation != nil {
		first = fmt.Sprintf("first violation after %v steps", *o.FirstViolation)
	}
	r.logger.Log(fmt.Sprintf("warning: %v of %v was not detected as expected after %v steps: %v", strings.ToLower(o.Direction.String()), o.Domain.Label(), o.Unsafe.Steps, first))
}

// printf writes to the report output until the first failure.
func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
