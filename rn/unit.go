// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"math/big"

	"github.com/Andrea-Vigano/rnenv/intmath"
)

// Unit is the triad (C, R, L) denoting C·R^(1/L). Any field may be a
// nested real. Once normalized, L ≥ 1, R is never 0 unless the whole
// unit is the zero unit (0,1,1), and R ∈ {1,-1} with L > 1 never
// survives (the sign is absorbed into C).
type Unit struct {
	C Scalar // coefficient
	R Scalar // radicand
	L Scalar // root index; 1 means no root
}

// U builds a unit from a plain integer triad. A radicand and index of
// both 0 is the rectangular-array placeholder for the rational unit
// (c, 1, 1).
func U(c, r, l int64) Unit {
	return Unit{C: NewInt(c), R: NewInt(r), L: NewInt(l)}
}

// maxIndex bounds root indices so that index products and lcms stay
// well inside machine-int range.
const maxIndex = 1 << 31

// mulIndex multiplies two positive root indices, panicking with
// *InvalidUnitError instead of wrapping past the bound.
func mulIndex(a, b int) int {
	if b != 0 && a > maxIndex/b {
		panic(invalidUnitf("index product %d·%d out of range", a, b))
	}
	return a * b
}

func unitZero() Unit { return Unit{C: intZero(), R: intOne(), L: intOne()} }
func unitOne() Unit  { return Unit{C: intOne(), R: intOne(), L: intOne()} }

// unitOf wraps a scalar as the rational unit (s, 1, 1).
func unitOf(s Scalar) Unit {
	return Unit{C: s, R: intOne(), L: intOne()}
}

// trivialSig reports the rational signature (R, L) == (1, 1).
func trivialSig(u Unit) bool {
	return isIntVal(u.R, 1) && isIntVal(u.L, 1)
}

func unitIsZero(u Unit) bool {
	return scalarIsZero(u.C)
}

// fillUnit resolves nil fields and the (R, L) == (0, 0) placeholder
// left by rectangular-array construction.
func fillUnit(u Unit) Unit {
	if u.C == nil {
		u.C = intZero()
	}
	if u.R == nil {
		u.R = intOne()
	}
	if u.L == nil {
		u.L = intOne()
	}
	if isIntVal(u.R, 0) && isIntVal(u.L, 0) {
		u.R, u.L = intOne(), intOne()
	}
	return u
}

// normalizeUnit reduces one triad to lowest terms. It panics with
// *InvalidUnitError on domain violations.
func normalizeUnit(u Unit) Unit {
	u = fillUnit(u)

	// An integer-valued nested field unwraps to its plain integer and
	// the triad is normalized from scratch.
	for {
		c, c1 := unwrapScalar(u.C)
		r, r1 := unwrapScalar(u.R)
		l, l1 := unwrapScalar(u.L)
		u = Unit{C: c, R: r, L: l}
		if !c1 && !r1 && !l1 {
			break
		}
	}

	if scalarIsZero(u.C) {
		return unitZero()
	}

	if c, ok := u.C.(*Real); ok && !isIntVal(c.index, 1) {
		// A root-carrying coefficient is itself a radical; merge it
		// with the unit's own radical part.
		rad := Unit{C: intOne(), R: shrinkReal(body(c)), L: c.index}
		return normalizeUnit(mulUnit(rad, Unit{C: intOne(), R: u.R, L: u.L}))
	}

	if r, ok := u.R.(*Real); ok {
		if v, folded := foldDoubleRoot(u, r); folded {
			return normalizeUnit(v)
		}
	}

	ci, cOK := u.C.(Int)
	ri, rOK := u.R.(Int)
	li, lOK := u.L.(Int)
	if lOK && li.Sign() == 0 {
		panic(invalidUnitf("undefined index 0"))
	}
	if !cOK || !rOK || !lOK {
		// Composed unit; nested non-integer fields are kept opaque and
		// already canonical (children are reduced before embedding).
		if lOK {
			if l, ok := smallInt(li); ok {
				if l == 1 {
					return unitOf(scalarMul(u.C, u.R))
				}
				if l < 0 {
					recip := newReal(Linear{unitOne()}, Linear{Unit{C: intOne(), R: u.R, L: NewInt(int64(-l))}}, nil)
					return unitOf(scalarMul(u.C, shrinkReal(recip)))
				}
			}
		}
		return u
	}

	l, ok := smallInt(li)
	if !ok || l > maxIndex || l < -maxIndex {
		panic(invalidUnitf("index %s out of range", li))
	}
	if l%2 == 0 && ri.Sign() < 0 {
		panic(invalidUnitf("even index %d with negative radicand %s", l, ri))
	}
	if l < 0 && ri.Sign() == 0 {
		panic(invalidUnitf("negative index %d with zero radicand", l))
	}

	if u, done := foldTrivial(ci, ri, l); done {
		return u
	}
	if l < 0 {
		// C·R^(1/L) with L < 0 is C/R^(1/|L|); the reciprocal radical
		// becomes a nested coefficient factor.
		recip := newReal(Linear{unitOne()}, Linear{Unit{C: intOne(), R: ri, L: NewInt(int64(-l))}}, nil)
		return unitOf(scalarMul(ci, shrinkReal(recip)))
	}

	// General path: factor the radicand, reduce the root degree by the
	// gcd of the index and all exponents, then extract maximal powers.
	neg := ri.Sign() < 0
	fs := intmath.Factorize(ri.Int)
	exps := make([]int, 0, len(fs)+1)
	for _, f := range fs {
		exps = append(exps, f.E)
	}
	if g := intmath.GCDInts(append(exps, l)...); g > 1 {
		l /= g
		for i := range fs {
			fs[i].E /= g
		}
	}
	coef := new(big.Int).Set(ci.Int)
	for i := range fs {
		if fs[i].E >= l {
			// A single maximal extraction per factor completes the job.
			coef.Mul(coef, new(big.Int).Exp(fs[i].P, big.NewInt(int64(fs[i].E/l)), nil))
			fs[i].E %= l
		}
	}
	rad := intmath.Unfactor(fs)
	if neg {
		rad.Neg(rad)
	}
	if u, done := foldTrivial(Int{coef}, Int{rad}, l); done {
		return u
	}
	return Unit{C: Int{coef}, R: Int{rad}, L: NewInt(int64(l))}
}

// foldTrivial applies the fast paths: index 1 folds the radicand into
// the coefficient, and a radicand of 0, 1 or -1 does the same.
func foldTrivial(c, r Int, l int) (Unit, bool) {
	if l == 1 || r.CmpAbs(big.NewInt(1)) <= 0 {
		return unitOf(Int{new(big.Int).Mul(c.Int, r.Int)}), true
	}
	return Unit{}, false
}

// foldDoubleRoot combines ᴸ√(ᴹ√x) into ᴸᴹ√x when the nested radicand
// is a pure root: a coefficient-free single radical, or any value held
// under an outer index.
func foldDoubleRoot(u Unit, r *Real) (Unit, bool) {
	l, ok := smallInt(u.L)
	if !ok || l < 1 {
		return u, false
	}
	if m, ok := smallInt(r.index); ok && m > 1 {
		// ᴸ√(ᴹ√body) = ᴸᴹ√body.
		return Unit{C: u.C, R: shrinkReal(body(r)), L: NewInt(int64(mulIndex(l, m)))}, true
	}
	if !isIntVal(r.index, 1) || !linearIsOne(r.den) {
		return u, false
	}
	units := significant(r.num)
	if len(units) != 1 || !isIntVal(units[0].C, 1) || trivialSig(units[0]) {
		return u, false
	}
	m, ok := smallInt(units[0].L)
	if !ok || m < 1 {
		return u, false
	}
	return Unit{C: u.C, R: units[0].R, L: NewInt(int64(mulIndex(l, m)))}, true
}
