/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"fmt"
	"reflect"
)

// Kind classifies a numeric domain.
type Kind int

const (
	KindUnknown Kind = iota
	KindCharacter
	KindSigned
	KindUnsigned
	KindReal
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindCharacter: "character",
	KindSigned:    "signed integer",
	KindUnsigned:  "unsigned integer",
	KindReal:      "real",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Domain describes a representable numeric type: a stable name, the C-family alias it stands for and its bounds.
type Domain struct {
	// Name is the Go type name e.g. int8.
	Name string
	// Alias is the C-family name of the type the domain stands for e.g. signed char.
	Alias string
	Kind  Kind
	// Min is the printable minimum representable value.
	Min string
	// Max is the printable maximum representable value.
	Max string
}

// Label returns a clear and stable label for the domain.
func (d Domain) Label() string {
	if d.Alias == "" || d.Alias == d.Name {
		return d.Name
	}
	return fmt.Sprintf("%v (%v)", d.Name, d.Alias)
}

func (d Domain) String() string {
	return fmt.Sprintf("%v [%v, %v]", d.Label(), d.Min, d.Max)
}

// DomainOf builds the domain of T.
func DomainOf[T Number](alias string, kind Kind) Domain {
	return Domain{
		Name:  reflect.TypeFor[T]().Name(),
		Alias: alias,
		Kind:  kind,
		Min:   Format(Min[T]()),
		Max:   Format(Max[T]()),
	}
}
