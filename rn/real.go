// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rn implements exact real numbers as nested radical
// expressions over the rationals, held in a unique canonical form.
// A value is the index-th root of a quotient of linears, each linear a
// sum of units C·R^(1/L); every field may itself be a nested value.
// Construction reduces immediately and values are immutable after
// that, so they are safely shareable across goroutines.
package rn

import (
	"math/big"

	"github.com/Andrea-Vigano/rnenv/config"
)

var conf = &config.Config{}

// SetConfig replaces the package configuration. Not safe to call
// concurrently with reductions.
func SetConfig(c *config.Config) {
	if c != nil {
		conf = c
	}
}

// Real is a canonical real number: the index-th root of the quotient
// of the two linears. num and den are kept at equal length, the
// shorter side zero-padded. Immutable once constructed.
type Real struct {
	num   Linear
	den   Linear
	index Scalar
	class Class
}

func (*Real) isScalar() {}

// New constructs the canonical real for the given numerator and
// denominator unit rows and outer root index. A nil index means 1.
// Mismatched row counts are zero-padded during reduction.
func New(num, den []Unit, index Scalar) (r *Real, err error) {
	defer catch(&err)
	n := make(Linear, len(num))
	copy(n, num)
	d := make(Linear, len(den))
	copy(d, den)
	if len(n) == 0 {
		n = Linear{unitZero()}
	}
	if len(d) == 0 {
		d = Linear{unitOne()}
	}
	return newReal(n, d, index), nil
}

// integerReal builds the canonical form of a plain integer directly;
// no reduction pass is needed.
func integerReal(i Int) *Real {
	r := &Real{
		num:   Linear{unitOf(i)},
		den:   Linear{unitOne()},
		index: intOne(),
	}
	r.class = classify(r)
	return r
}

// body is the value with the outer index stripped.
func body(a *Real) *Real {
	if isIntVal(a.index, 1) {
		return a
	}
	b := &Real{num: a.num, den: a.den, index: intOne()}
	b.class = classify(b)
	return b
}

// demote rewrites a value with outer index L > 1 as an index-1 value
// whose single unit holds the body as a nested radicand. Arithmetic
// works on the demoted forms.
func demote(a *Real) *Real {
	if isIntVal(a.index, 1) {
		return a
	}
	u := Unit{C: intOne(), R: body(a), L: a.index}
	r := &Real{num: Linear{u}, den: Linear{unitOne()}, index: intOne()}
	r.class = classify(r)
	return r
}

// Num returns the canonical numerator units.
func (a *Real) Num() Linear {
	return append(Linear(nil), a.num...)
}

// Den returns the canonical denominator units.
func (a *Real) Den() Linear {
	return append(Linear(nil), a.den...)
}

// Index returns the outer root index.
func (a *Real) Index() Scalar {
	return a.index
}

// Class returns the 8-way classification assigned at construction.
func (a *Real) Class() Class {
	return a.class
}

func (a *Real) IsZero() bool {
	return linearIsZero(a.num)
}

// Equal reports structural equality, which for canonical values is
// value equality.
func (a *Real) Equal(b *Real) bool {
	if a == b {
		return true
	}
	return scalarEqual(a.index, b.index) &&
		equalLinear(a.num, b.num) &&
		equalLinear(a.den, b.den)
}

// AsInt returns the plain integer a denotes, if it denotes one.
func (a *Real) AsInt() (Int, bool) {
	p, q, ok := ratParts(a.num, a.den)
	if !ok || !isIntVal(a.index, 1) || !isIntVal(q, 1) {
		return Int{}, false
	}
	return p, true
}

// AsRat returns the exact rational a denotes, if it denotes one.
func (a *Real) AsRat() (*big.Rat, bool) {
	p, q, ok := ratParts(a.num, a.den)
	if !ok || !isIntVal(a.index, 1) {
		return nil, false
	}
	return new(big.Rat).SetFrac(p.Int, q.Int), true
}

// depth is the nesting depth of the value: 1 for a flat value, one
// more for each level of nested reals.
func (a *Real) depth() int {
	d := 0
	for _, lin := range []Linear{a.num, a.den} {
		for _, u := range lin {
			for _, s := range []Scalar{u.C, u.R, u.L} {
				if n := scalarDepth(s); n > d {
					d = n
				}
			}
		}
	}
	if n := scalarDepth(a.index); n > d {
		d = n
	}
	return d + 1
}
