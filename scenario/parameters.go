/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package scenario derives the overflow and underflow test parameters of a numeric domain and runs the bounded operations with them.
package scenario

import (
	"github.com/ARM-software/numeric-overflow/bounded"
	"github.com/ARM-software/numeric-overflow/numeric"
)

// SafeSteps is the number of steps which is expected to stay within the bounds of every domain.
const SafeSteps uint64 = 5

// Direction states which boundary a test is pushing against.
type Direction int

const (
	Overflow Direction = iota
	Underflow
)

func (d Direction) String() string {
	if d == Underflow {
		return "Underflow"
	}
	return "Overflow"
}

// Parameters are the derived inputs of a test on domain T.
type Parameters[T numeric.Number] struct {
	Start       T
	Step        T
	SafeSteps   uint64
	UnsafeSteps uint64
}

// OverflowParameters starts from zero and adds a fifth of the maximum at every step.
func OverflowParameters[T numeric.Number]() Parameters[T] {
	return Parameters[T]{
		Start:       0,
		Step:        numeric.Max[T]() / T(SafeSteps),
		SafeSteps:   SafeSteps,
		UnsafeSteps: SafeSteps + 1,
	}
}

// UnderflowParameters starts from the maximum and subtracts a fifth of it at every step.
func UnderflowParameters[T numeric.Number]() Parameters[T] {
	return Parameters[T]{
		Start:       numeric.Max[T](),
		Step:        numeric.Max[T]() / T(SafeSteps),
		SafeSteps:   SafeSteps,
		UnsafeSteps: SafeSteps + 1,
	}
}

// ParametersFor returns the parameters of a test in the given direction.
func ParametersFor[T numeric.Number](direction Direction) Parameters[T] {
	if direction == Underflow {
		return UnderflowParameters[T]()
	}
	return OverflowParameters[T]()
}

// OperationFor returns the bounded operation pushing against the boundary in the given direction.
func OperationFor[T numeric.Number](direction Direction) bounded.Operation[T] {
	if direction == Underflow {
		return bounded.Deaccumulate[T]
	}
	return bounded.Accumulate[T]
}
