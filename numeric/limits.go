/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import "math"

const (
	smallestNormalFloat32 = 0x1p-126
	smallestNormalFloat64 = 0x1p-1022
)

// Max returns the maximum representable value of T.
func Max[T Number]() (m T) {
	switch p := any(&m).(type) {
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint:
		*p = math.MaxUint
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return
}

// Min returns the minimum representable value of T.
// For floating point types, this is the smallest positive normalised value, as given by C's FLT_MIN and DBL_MIN.
func Min[T Number]() (m T) {
	switch p := any(&m).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = smallestNormalFloat32
	case *float64:
		*p = smallestNormalFloat64
	}
	// unsigned integers: zero value
	return
}

// IsInteger states whether T is an integer domain.
func IsInteger[T Number]() bool {
	switch any(*new(T)).(type) {
	case float32, float64:
		return false
	default:
		return true
	}
}

// IsSigned states whether T can hold negative values.
func IsSigned[T Number]() bool {
	switch any(*new(T)).(type) {
	case uint, uint8, uint16, uint32, uint64:
		return false
	default:
		return true
	}
}
