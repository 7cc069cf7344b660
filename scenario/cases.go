/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package scenario

import "github.com/ARM-software/numeric-overflow/numeric"

// Case is a numeric domain under test.
type Case struct {
	Domain numeric.Domain
	run    func(direction Direction) *Outcome
}

// Run runs the test of the case's domain in the given direction.
func (c *Case) Run(direction Direction) *Outcome {
	return c.run(direction)
}

// NewCase defines a case for the domain T. alias is the C-family name of the type the domain stands for.
func NewCase[T numeric.Number](alias string, kind numeric.Kind) Case {
	domain := numeric.DomainOf[T](alias, kind)
	return Case{
		Domain: domain,
		run: func(direction Direction) *Outcome {
			return Run[T](domain, direction)
		},
	}
}

// Cases returns the fixed list of domains tested, in reporting order:
// signed integers, unsigned integers and then real numbers.
// Go has no extended precision type so `long double` is tested as a float64, as it is on some platforms.
func Cases() []Case {
	return []Case{
		// signed integers
		NewCase[int8]("char", numeric.KindCharacter),
		NewCase[rune]("wchar_t", numeric.KindCharacter),
		NewCase[int16]("short", numeric.KindSigned),
		NewCase[int32]("int", numeric.KindSigned),
		NewCase[int]("long", numeric.KindSigned),
		NewCase[int64]("long long", numeric.KindSigned),

		// unsigned integers
		NewCase[uint8]("unsigned char", numeric.KindCharacter),
		NewCase[uint16]("unsigned short", numeric.KindUnsigned),
		NewCase[uint32]("unsigned int", numeric.KindUnsigned),
		NewCase[uint]("unsigned long", numeric.KindUnsigned),
		NewCase[uint64]("unsigned long long", numeric.KindUnsigned),

		// real numbers
		NewCase[float32]("float", numeric.KindReal),
		NewCase[float64]("double", numeric.KindReal),
		NewCase[float64]("long double", numeric.KindReal),
	}
}
