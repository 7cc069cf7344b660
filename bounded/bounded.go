/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package bounded provides iterative arithmetic which checks the bounds of the numeric domain before every step
// and stops rather than wrapping around or losing precision silently.
package bounded

import (
	"fmt"

	"github.com/ARM-software/numeric-overflow/numeric"
)

// Result is the outcome of a bounded operation: the value reached and whether the boundary would have been crossed.
type Result[T numeric.Number] struct {
	Value T
	// Flag is true if the operation stopped because the next step would have crossed the boundary of T.
	Flag bool
}

func (r Result[T]) String() string {
	return fmt.Sprintf("%v (%v)", numeric.Format(r.Value), r.Flag)
}

// Operation is the signature shared by Accumulate and Deaccumulate.
type Operation[T numeric.Number] func(start, delta T, steps uint64) Result[T]

// Accumulate adds increment to start at most steps times.
// Before each addition, the accumulator is compared to Max - increment (or Min - increment for a negative increment)
// so that the check itself cannot overflow.
// If the addition would leave the domain of T, it stops and returns the accumulator as it was with the flag set.
func Accumulate[T numeric.Number](start, increment T, steps uint64) Result[T] {
	var zero T
	upper, lower := numeric.Max[T](), numeric.Min[T]()
	switch {
	case increment > zero:
		upper -= increment
	case increment < zero:
		lower -= increment
	}
	acc := start
	for i := uint64(0); i < steps; i++ {
		if (increment > zero && acc > upper) || (increment < zero && acc < lower) {
			return Result[T]{Value: acc, Flag: true}
		}
		acc += increment
	}
	return Result[T]{Value: acc}
}

// Deaccumulate subtracts decrement from start at most steps times.
// Before each subtraction, the accumulator is compared to Min + decrement (or Max + decrement for a negative decrement).
// If the subtraction would leave the domain of T, it stops and returns the accumulator as it was with the flag set.
func Deaccumulate[T numeric.Number](start, decrement T, steps uint64) Result[T] {
	var zero T
	upper, lower := numeric.Max[T](), numeric.Min[T]()
	switch {
	case decrement > zero:
		lower += decrement
	case decrement < zero:
		upper += decrement
	}
	acc := start
	for i := uint64(0); i < steps; i++ {
		if (decrement > zero && acc < lower) || (decrement < zero && acc > upper) {
			return Result[T]{Value: acc, Flag: true}
		}
		acc -= decrement
	}
	return Result[T]{Value: acc}
}

// FirstViolation returns the smallest number of steps, up to limit, for which op flags a boundary violation.
// found is false if no violation happens within limit steps.
func FirstViolation[T numeric.Number](op Operation[T], start, delta T, limit uint64) (steps uint64, found bool) {
	if op == nil {
		return
	}
	for steps = 0; ; steps++ {
		if op(start, delta, steps).Flag {
			found = true
			return
		}
		if steps == limit {
			break
		}
	}
	steps = 0
	return
}
