// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"math/big"

	"github.com/Andrea-Vigano/rnenv/intmath"
)

// newReal runs the whole reduction pipeline and returns the canonical
// value. Every construction and arithmetic result passes through here.
// Panics with the package error types; public entry points recover.
func newReal(num, den Linear, index Scalar) *Real {
	if index == nil {
		index = intOne()
	}
	num = reduceLinear(num)
	den = reduceLinear(den)
	num, den = interReduce(num, den)

	if linearIsZero(den) {
		panic(&DivisionByZeroError{})
	}
	if linearIsZero(num) {
		// The index must be resolved before zero collapses: index 0 is
		// undefined for any body, and 0 under a negative index is 1/0
		// after the reciprocal swap.
		if s, known := indexSign(index); known {
			if s == 0 {
				panic(invalidUnitf("undefined index 0"))
			}
			if s < 0 {
				panic(&DivisionByZeroError{})
			}
		}
		// Zero has one canonical shape, whatever den held.
		num = Linear{unitZero()}
		den = Linear{unitOne()}
		index = intOne()
	}
	num, den = positiveDen(num, den)

	if r, folded := reduceIndex(num, den, index); folded {
		return r
	}

	num, den = padLinears(num, den)
	r := &Real{num: num, den: den, index: index}
	r.class = classify(r)
	if d := r.depth(); d > conf.MaxDepth() {
		panic(&DepthError{Depth: d, Max: conf.MaxDepth()})
	}
	return r
}

// indexSign reports the sign of an outer index when it is statically
// known: a plain or nested integer, or a nested rational. Irrational
// nested indexes stay opaque.
func indexSign(index Scalar) (int, bool) {
	index, _ = unwrapScalar(index)
	switch i := index.(type) {
	case Int:
		return i.Sign(), true
	case *Real:
		if r, ok := i.AsRat(); ok {
			return r.Sign(), true
		}
	}
	return 0, false
}

// reduceIndex resolves the outer index against the reduced body. It
// reports true when the value was rebuilt through another reduction
// pass (index folded into the body), false when the caller should keep
// the pair as is.
func reduceIndex(num, den Linear, index Scalar) (*Real, bool) {
	index, _ = unwrapScalar(index)
	li, ok := index.(Int)
	if !ok {
		return nil, false // opaque nested index, kept
	}
	l, small := smallInt(li)
	if !small || l > maxIndex || l < -maxIndex {
		panic(invalidUnitf("index %s out of range", li))
	}
	switch {
	case l == 0:
		panic(invalidUnitf("undefined index 0"))
	case l < 0:
		// x^(1/-L) = 1/x^(1/L).
		return newReal(den, num, NewInt(int64(-l))), true
	case l == 1:
		if a, ok := soleNestedBody(num, den); ok {
			// A bare wrapped nested value is that value.
			return a, true
		}
		if r, m, ok := soleRadicalBody(num, den); ok {
			// A sole pure radical of a nested value is that value's
			// index form: (1, r, m) over 1 is ᴹ√r.
			return newReal(r.num, r.den, scalarMul(m, r.index)), true
		}
		return nil, false
	}

	if p, q, ok := ratParts(num, den); ok {
		// ᴸ√(p/q) = ᴸ√(p·qᴸ⁻¹)/q, an index-1 radical unit.
		if p.Sign() < 0 && l%2 == 0 {
			panic(invalidUnitf("even index %d with negative radicand %s", l, p))
		}
		rad := new(big.Int).Exp(q.Int, big.NewInt(int64(l-1)), nil)
		rad.Mul(rad, p.Int)
		return newReal(Linear{Unit{C: intOne(), R: Int{rad}, L: li}}, Linear{unitOf(q)}, nil), true
	}
	if a, ok := soleNestedBody(num, den); ok {
		// ᴸ√(a) where a is itself an ᴹ-th root composes to index L·M.
		return newReal(a.num, a.den, scalarMul(li, a.index)), true
	}
	if r, m, ok := soleRadicalBody(num, den); ok {
		return newReal(r.num, r.den, scalarMul(li, scalarMul(m, r.index))), true
	}
	return nil, false
}

// soleRadicalBody matches a body that is one pure radical of a nested
// value: a single unit (1, r, m) with r nested and m > 1, over 1.
func soleRadicalBody(num, den Linear) (*Real, Scalar, bool) {
	if !linearIsOne(den) {
		return nil, nil, false
	}
	nu := significant(num)
	if len(nu) != 1 || !isIntVal(nu[0].C, 1) {
		return nil, nil, false
	}
	r, ok := nu[0].R.(*Real)
	if !ok {
		return nil, nil, false
	}
	if m, ok := smallInt(nu[0].L); !ok || m < 2 {
		return nil, nil, false
	}
	return r, nu[0].L, true
}

// ratParts extracts (p, q) when the pair is a plain rational: single
// trivial-signature integer units on both sides.
func ratParts(num, den Linear) (p, q Int, ok bool) {
	nu, du := significant(num), significant(den)
	if len(du) != 1 || !trivialSig(du[0]) {
		return Int{}, Int{}, false
	}
	qi, qok := du[0].C.(Int)
	if !qok {
		return Int{}, Int{}, false
	}
	if len(nu) == 0 {
		return intZero(), qi, true
	}
	if len(nu) != 1 || !trivialSig(nu[0]) {
		return Int{}, Int{}, false
	}
	pi, pok := nu[0].C.(Int)
	if !pok {
		return Int{}, Int{}, false
	}
	return pi, qi, true
}

// soleNestedBody matches a body that is exactly one nested real: a
// single unit with trivial signature and nested coefficient, over 1.
func soleNestedBody(num, den Linear) (*Real, bool) {
	if !linearIsOne(den) {
		return nil, false
	}
	nu := significant(num)
	if len(nu) != 1 || !trivialSig(nu[0]) {
		return nil, false
	}
	a, ok := nu[0].C.(*Real)
	return a, ok
}

// interReduce simplifies a reduced numerator and denominator jointly:
// the shared coefficient gcd, full cancellation, then denominator
// rationalization. Rationalization feeds its raw products back through
// the pipeline.
func interReduce(num, den Linear) (Linear, Linear) {
	num, den = gcdReduce(num, den)
	num, den = cancel(num, den)
	if n2, d2, ok := rationalize(num, den); ok {
		return interReduce(reduceLinear(n2), reduceLinear(d2))
	}
	return num, den
}

// gcdReduce divides every coefficient by the gcd of all coefficients
// across both linears. Skipped when any coefficient is nested.
func gcdReduce(num, den Linear) (Linear, Linear) {
	var cs []*big.Int
	for _, u := range append(append(Linear{}, num...), den...) {
		i, ok := u.C.(Int)
		if !ok {
			return num, den
		}
		cs = append(cs, i.Int)
	}
	g := intmath.GCD(cs...)
	if g.Cmp(big.NewInt(1)) <= 0 {
		return num, den
	}
	div := func(lin Linear) Linear {
		out := make(Linear, len(lin))
		for i, u := range lin {
			out[i] = Unit{C: Int{new(big.Int).Quo(u.C.(Int).Int, g)}, R: u.R, L: u.L}
		}
		return out
	}
	return div(num), div(den)
}

// cancel collapses num/den to a single rational when the two linears
// share every radical signature position by position and their
// coefficients are proportional by one exact factor.
func cancel(num, den Linear) (Linear, Linear) {
	if len(num) != len(den) {
		return num, den
	}
	same, allInt := true, true
	var nc, dc []*big.Int
	for i := range num {
		if !sigEqual(num[i], den[i]) {
			return num, den
		}
		if !scalarEqual(num[i].C, den[i].C) {
			same = false
		}
		ni, nok := num[i].C.(Int)
		di, dok := den[i].C.(Int)
		if !nok || !dok {
			allInt = false
			continue
		}
		nc = append(nc, ni.Int)
		dc = append(dc, di.Int)
	}
	if same {
		// Identical linears, nested coefficients included.
		return Linear{unitOne()}, Linear{unitOne()}
	}
	if !allInt {
		return num, den
	}
	p, q, ok := intmath.Proportional(nc, dc)
	if !ok {
		return num, den
	}
	return Linear{unitOf(Int{p})}, Linear{unitOf(Int{q})}
}

// rationalize clears radicals from a short denominator: the power
// completion for a single radical unit, the algebraic conjugate for a
// degree-2 pair.
func rationalize(num, den Linear) (Linear, Linear, bool) {
	if len(den) > 2 {
		return nil, nil, false
	}
	irrational := false
	for _, u := range den {
		if !isIntVal(u.L, 1) {
			irrational = true
		}
	}
	if !irrational {
		return nil, nil, false
	}
	if len(den) == 1 {
		u := den[0]
		l, ok := smallInt(u.L)
		if !ok || l < 2 {
			return nil, nil, false
		}
		// Multiply num by R^((L-1)/L); den becomes the rational C·R.
		num = mulLinear(num, Linear{Unit{C: intOne(), R: scalarPow(u.R, l-1), L: u.L}})
		return num, Linear{unitOf(scalarMul(u.C, u.R))}, true
	}
	// Conjugate case: both indices at most 2.
	for _, u := range den {
		if l, ok := smallInt(u.L); !ok || l > 2 {
			return nil, nil, false
		}
	}
	num = mulLinear(num, conjugateLinear(den))
	// (C₁√R₁+C₂√R₂)(C₁√R₁-C₂√R₂) = C₁²R₁ - C₂²R₂; the cross terms
	// cancel, so the product is computed in closed form.
	d := scalarAdd(
		scalarMul(scalarPow(den[0].C, 2), den[0].R),
		scalarNeg(scalarMul(scalarPow(den[1].C, 2), den[1].R)),
	)
	return num, Linear{unitOf(d)}, true
}

// positiveDen moves the sign of a single-unit rational denominator
// into the numerator, so that equal values cannot differ by a -1/-1
// factor.
func positiveDen(num, den Linear) (Linear, Linear) {
	du := significant(den)
	if len(du) != 1 || !trivialSig(du[0]) {
		return num, den
	}
	c, ok := du[0].C.(Int)
	if !ok || c.Sign() >= 0 {
		return num, den
	}
	return negLinear(num), Linear{unitOf(Int{new(big.Int).Neg(c.Int)})}
}

// padLinears zero-pads the shorter side so num and den share a shape.
func padLinears(num, den Linear) (Linear, Linear) {
	for len(num) < len(den) {
		num = append(num, unitZero())
	}
	for len(den) < len(num) {
		den = append(den, unitZero())
	}
	return num, den
}
