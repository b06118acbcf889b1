// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"math"
	"math/big"
)

// Friendly constructors, lowering the shorthand forms into the
// rectangular construction. Everything still funnels through the
// reducer, so every value built here is canonical.

// Integer returns the canonical value of a plain integer.
func Integer(x int64) *Real {
	return integerReal(NewInt(x))
}

// FromBigInt returns the canonical value of an arbitrary integer.
func FromBigInt(x *big.Int) *Real {
	return integerReal(Int{new(big.Int).Set(x)})
}

// Rational returns the canonical value of p/q.
func Rational(p, q int64) (r *Real, err error) {
	defer catch(&err)
	return newReal(Linear{U(p, 1, 1)}, Linear{U(q, 1, 1)}, nil), nil
}

// FromBigRat returns the canonical value of an exact rational.
func FromBigRat(x *big.Rat) *Real {
	num := Linear{unitOf(Int{new(big.Int).Set(x.Num())})}
	den := Linear{unitOf(Int{new(big.Int).Set(x.Denom())})}
	return newReal(num, den, nil)
}

// FromFloat returns the canonical value of the exact binary fraction f
// holds. NaN and infinities are rejected.
func FromFloat(f float64) (*Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Errorf("no exact value for %v", f)
	}
	return FromBigRat(new(big.Rat).SetFloat64(f)), nil
}

// Radical returns the canonical value of the single unit c·ᴸ√r.
func Radical(c, r, l int64) (v *Real, err error) {
	defer catch(&err)
	return newReal(Linear{U(c, r, l)}, Linear{unitOne()}, nil), nil
}

// Sqrt returns the square root of x.
func Sqrt(x *Real) (*Real, error) {
	return Root(2, x)
}

// Root returns the n-th root of x.
func Root(n int64, x *Real) (r *Real, err error) {
	defer catch(&err)
	return newReal(Linear{unitOf(x)}, Linear{unitOne()}, NewInt(n)), nil
}
