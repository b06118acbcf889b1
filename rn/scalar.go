// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import "math/big"

// Scalar is a coefficient, radicand or root index: an exact integer or
// a nested real number. Algorithms branch on the two variants with a
// type switch; there is no third implementation.
type Scalar interface {
	String() string
	isScalar()
}

// Int is the exact integer scalar.
type Int struct {
	*big.Int
}

func (Int) isScalar() {}

func NewInt(x int64) Int {
	return Int{big.NewInt(x)}
}

func intOne() Int  { return NewInt(1) }
func intZero() Int { return NewInt(0) }

// isIntVal reports whether s is the plain integer x.
func isIntVal(s Scalar, x int64) bool {
	i, ok := s.(Int)
	return ok && i.Int.Cmp(big.NewInt(x)) == 0
}

// smallInt returns s as a machine int when s is a plain integer that
// fits. Root indices live in this range; radicands and coefficients
// need not.
func smallInt(s Scalar) (int, bool) {
	i, ok := s.(Int)
	if !ok || !i.Int.IsInt64() {
		return 0, false
	}
	x := i.Int.Int64()
	if int64(int(x)) != x {
		return 0, false
	}
	return int(x), true
}

func scalarIsZero(s Scalar) bool {
	switch s := s.(type) {
	case Int:
		return s.Sign() == 0
	case *Real:
		return s.IsZero()
	}
	panic(Errorf("unknown scalar %T", s))
}

// unwrapScalar replaces an integer-valued nested real with its plain
// integer. The second result reports whether anything changed.
func unwrapScalar(s Scalar) (Scalar, bool) {
	r, ok := s.(*Real)
	if !ok {
		return s, false
	}
	if i, ok := r.AsInt(); ok {
		return i, true
	}
	return s, false
}

func scalarNeg(s Scalar) Scalar {
	switch s := s.(type) {
	case Int:
		return Int{new(big.Int).Neg(s.Int)}
	case *Real:
		return negReal(s)
	}
	panic(Errorf("unknown scalar %T", s))
}

func scalarAdd(a, b Scalar) Scalar {
	if x, ok := a.(Int); ok {
		if y, ok := b.(Int); ok {
			return Int{new(big.Int).Add(x.Int, y.Int)}
		}
	}
	return shrinkReal(addReal(promote(a), promote(b)))
}

func scalarMul(a, b Scalar) Scalar {
	if x, ok := a.(Int); ok {
		if y, ok := b.(Int); ok {
			return Int{new(big.Int).Mul(x.Int, y.Int)}
		}
	}
	if isIntVal(a, 1) {
		return b
	}
	if isIntVal(b, 1) {
		return a
	}
	return shrinkReal(mulReal(promote(a), promote(b)))
}

// scalarPow raises s to a non-negative integer power.
func scalarPow(s Scalar, n int) Scalar {
	if n < 0 {
		panic(Errorf("negative power %d", n))
	}
	if i, ok := s.(Int); ok {
		return Int{new(big.Int).Exp(i.Int, big.NewInt(int64(n)), nil)}
	}
	p := Scalar(intOne())
	for ; n > 0; n-- {
		p = scalarMul(p, s)
	}
	return p
}

func scalarEqual(a, b Scalar) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a.Int.Cmp(b.Int) == 0
	case *Real:
		b, ok := b.(*Real)
		return ok && a.Equal(b)
	}
	panic(Errorf("unknown scalar %T", a))
}

// scalarLess is the deterministic order used to sort linears: plain
// integers by value, integers before nested reals, nested reals by
// their configuration-independent rendering.
func scalarLess(a, b Scalar) bool {
	x, xok := a.(Int)
	y, yok := b.(Int)
	switch {
	case xok && yok:
		return x.Int.Cmp(y.Int) < 0
	case xok:
		return true
	case yok:
		return false
	}
	return scalarKey(a) < scalarKey(b)
}

func scalarDepth(s Scalar) int {
	if r, ok := s.(*Real); ok {
		return r.depth()
	}
	return 0
}

// promote views a scalar as a real number. Plain integers become the
// literal canonical form without running the reducer.
func promote(s Scalar) *Real {
	switch s := s.(type) {
	case Int:
		return integerReal(s)
	case *Real:
		return s
	}
	panic(Errorf("unknown scalar %T", s))
}

// shrinkReal pulls, if possible, a real back down to a plain integer.
func shrinkReal(r *Real) Scalar {
	if i, ok := r.AsInt(); ok {
		return i
	}
	return r
}
