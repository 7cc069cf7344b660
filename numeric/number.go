/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package numeric describes the native numeric domains exercised by the overflow tests: their bounds and how their values are printed.
package numeric

// ISignedInteger is the set of native signed integer types.
// Unlike constraints.Signed, named types are excluded so that bounds can be resolved with a type switch.
type ISignedInteger interface {
	int | int8 | int16 | int32 | int64
}

// IUnsignedInteger is the set of native unsigned integer types.
type IUnsignedInteger interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// IInteger is an alias for all native integers
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	float32 | float64
}

// Number is the closed set of numeric domains supported.
type Number interface {
	IInteger | IFloat
}
