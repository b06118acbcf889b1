// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

// Class is the 8-way complexity category of a canonical value, the
// product of two axes: integer (denominator 1) against fraction, and
// rational / simple / mixed / composed irrational. It exists to pick
// fast paths; it is assigned once at construction, which is safe
// because values never change afterwards.
type Class int

const (
	IntegerRational Class = iota
	IntegerSimpleIrrational
	IntegerMixedIrrational
	IntegerComposedIrrational
	FractionRational
	FractionSimpleIrrational
	FractionMixedIrrational
	FractionComposedIrrational
)

var classNames = [...]string{
	IntegerRational:            "integer rational",
	IntegerSimpleIrrational:    "integer simple irrational",
	IntegerMixedIrrational:     "integer mixed irrational",
	IntegerComposedIrrational:  "integer composed irrational",
	FractionRational:           "fraction rational",
	FractionSimpleIrrational:   "fraction simple irrational",
	FractionMixedIrrational:    "fraction mixed irrational",
	FractionComposedIrrational: "fraction composed irrational",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "invalid class"
	}
	return classNames[c]
}

// Integer reports a denominator of exactly 1.
func (c Class) Integer() bool {
	return c <= IntegerComposedIrrational
}

// Rational reports that no radical or nested component survives.
func (c Class) Rational() bool {
	return c == IntegerRational || c == FractionRational
}

// classify inspects structure only; nothing is recomputed.
func classify(a *Real) Class {
	base := FractionRational
	if linearIsOne(a.den) {
		base = IntegerRational
	}
	return base + Class(kind(a))
}

func kind(a *Real) int {
	const (
		rational = iota
		simple
		mixed
		composed
	)
	plain := true // every field a plain integer
	roots := false
	for _, lin := range []Linear{a.num, a.den} {
		for _, u := range significant(lin) {
			for _, s := range []Scalar{u.C, u.R, u.L} {
				if _, ok := s.(Int); !ok {
					plain = false
				}
			}
			if !isIntVal(u.L, 1) {
				roots = true
			}
		}
	}
	topRoot := !isIntVal(a.index, 1)
	switch {
	case plain && !roots && !topRoot:
		return rational
	case plain && !topRoot && len(significant(a.num)) == 1:
		return simple
	case plain && !topRoot:
		return mixed
	}
	return composed
}
