/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package scenario

import (
	"fmt"

	"github.com/ARM-software/numeric-overflow/bounded"
	"github.com/ARM-software/numeric-overflow/numeric"
)

// violationSearchLimit bounds the search for the first step crossing the boundary.
// Signed and real domains only reach their lower bound after about twice SafeSteps steps.
const violationSearchLimit = 4 * SafeSteps

// RunResult is a printable bounded.Result.
type RunResult struct {
	Steps uint64
	Value string
	Flag  bool
}

// Outcome is the printable result of a test on a domain, independent of the domain's Go type.
type Outcome struct {
	Domain    numeric.Domain
	Direction Direction
	Start     string
	Step      string
	Safe      RunResult
	Unsafe    RunResult
	// FirstViolation is the smallest number of steps flagging a violation, if one was found.
	FirstViolation *uint64
}

// ExpectationMet states whether the run with safe steps stayed in range and the run with one more step was flagged.
func (o *Outcome) ExpectationMet() bool {
	return !o.Safe.Flag && o.Unsafe.Flag
}

func (o *Outcome) String() string {
	return fmt.Sprintf("%v test of %v: start=%v step=%v safe=%v(%v) unsafe=%v(%v)", o.Direction, o.Domain.Label(), o.Start, o.Step, o.Safe.Value, o.Safe.Flag, o.Unsafe.Value, o.Unsafe.Flag)
}

func newRunResult[T numeric.Number](steps uint64, r bounded.Result[T]) RunResult {
	return RunResult{
		Steps: steps,
		Value: numeric.Format(r.Value),
		Flag:  r.Flag,
	}
}

// Run runs the test of domain T in the given direction: once with the safe number of steps and once with one more.
func Run[T numeric.Number](domain numeric.Domain, direction Direction) *Outcome {
	p := ParametersFor[T](direction)
	op := OperationFor[T](direction)
	o := &Outcome{
		Domain:    domain,
		Direction: direction,
		Start:     numeric.Format(p.Start),
		Step:      numeric.Format(p.Step),
		Safe:      newRunResult(p.SafeSteps, op(p.Start, p.Step, p.SafeSteps)),
		Unsafe:    newRunResult(p.UnsafeSteps, op(p.Start, p.Step, p.UnsafeSteps)),
	}
	if first, found := bounded.FirstViolation[T](op, p.Start, p.Step, violationSearchLimit); found {
		o.FirstViolation = &first
	}
	return o
}
