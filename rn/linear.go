// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"sort"

	"github.com/Andrea-Vigano/rnenv/intmath"
)

// Linear is an ordered sum of units; a numerator or a denominator.
// Canonical form: units are normalized, no two share a radical
// signature, no zero units except the canonical zero linear (0,1,1),
// and the order is (L, R) ascending so equal values compare equal.
type Linear []Unit

// significant returns the units that carry value, skipping the zero
// units used for shape padding.
func significant(lin Linear) Linear {
	out := make(Linear, 0, len(lin))
	for _, u := range lin {
		if !unitIsZero(u) {
			out = append(out, u)
		}
	}
	return out
}

func linearIsZero(lin Linear) bool {
	return len(significant(lin)) == 0
}

func linearIsOne(lin Linear) bool {
	units := significant(lin)
	return len(units) == 1 && trivialSig(units[0]) && isIntVal(units[0].C, 1)
}

// reduceLinear normalizes every unit, merges units sharing a radical
// signature, drops zero terms and orders the result.
func reduceLinear(lin Linear) Linear {
	merged := make(Linear, 0, len(lin))
	for _, u := range lin {
		u = normalizeUnit(u)
		if unitIsZero(u) {
			continue
		}
		found := false
		for i := range merged {
			if sigEqual(merged[i], u) {
				merged[i].C = scalarAdd(merged[i].C, u.C)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, u)
		}
	}
	out := make(Linear, 0, len(merged))
	for _, u := range merged {
		if !unitIsZero(u) {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return Linear{unitZero()}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !scalarEqual(out[i].L, out[j].L) {
			return scalarLess(out[i].L, out[j].L)
		}
		return scalarLess(out[i].R, out[j].R)
	})
	return out
}

func sigEqual(a, b Unit) bool {
	return scalarEqual(a.R, b.R) && scalarEqual(a.L, b.L)
}

// mulLinear returns the raw pairwise product of two linears. The
// result is unmerged; it is always fed back through the reducer.
func mulLinear(a, b Linear) Linear {
	out := make(Linear, 0, len(a)*len(b))
	for _, u := range a {
		for _, v := range b {
			out = append(out, mulUnit(u, v))
		}
	}
	return out
}

// mulUnit multiplies two units. A trivial signature on either side is
// a pure coefficient scale; otherwise the radicands are raised to the
// lcm of the indices. Nested indices combine only when equal.
func mulUnit(a, b Unit) Unit {
	if unitIsZero(a) || unitIsZero(b) {
		return unitZero()
	}
	if trivialSig(a) {
		return Unit{C: scalarMul(a.C, b.C), R: b.R, L: b.L}
	}
	if trivialSig(b) {
		return Unit{C: scalarMul(a.C, b.C), R: a.R, L: a.L}
	}
	la, aok := smallInt(a.L)
	lb, bok := smallInt(b.L)
	if aok && bok {
		if la == lb && la%2 == 0 && scalarEqual(a.R, b.R) {
			// ᴸ√R·ᴸ√R is R^(2/L); for even L the index halves exactly.
			return Unit{C: scalarMul(a.C, b.C), R: a.R, L: NewInt(int64(la / 2))}
		}
		g := intmath.GCDInts(la, lb)
		m := mulIndex(la/g, lb)
		r := scalarMul(scalarPow(a.R, m/la), scalarPow(b.R, m/lb))
		return Unit{C: scalarMul(a.C, b.C), R: r, L: NewInt(int64(m))}
	}
	if scalarEqual(a.L, b.L) {
		return Unit{C: scalarMul(a.C, b.C), R: scalarMul(a.R, b.R), L: a.L}
	}
	panic(invalidUnitf("incomparable root indices %s and %s", a.L, b.L))
}

// conjugateLinear negates the coefficient of the second unit. The
// argument must be a reduced two-unit linear whose leading unit is
// rational.
func conjugateLinear(a Linear) Linear {
	out := make(Linear, len(a))
	copy(out, a)
	out[1].C = scalarNeg(out[1].C)
	return out
}

// negLinear negates every coefficient.
func negLinear(a Linear) Linear {
	out := make(Linear, len(a))
	for i, u := range a {
		out[i] = Unit{C: scalarNeg(u.C), R: u.R, L: u.L}
	}
	return out
}

func equalLinear(a, b Linear) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalarEqual(a[i].C, b[i].C) || !sigEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
