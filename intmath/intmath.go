// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intmath provides the exact integer-theory primitives the
// reduction engine is built on: prime factorization, gcd/lcm over any
// number of values, coprimality and proportionality tests. Everything
// operates on math/big integers and is total over its stated domain.
package intmath

import "math/big"

// Factor is a single prime in a factorization.
type Factor struct {
	P *big.Int
	E int
}

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Factorize returns the prime factorization of |n|, smallest prime
// first. Factorize of 0, 1 and -1 is nil.
func Factorize(n *big.Int) []Factor {
	m := new(big.Int).Abs(n)
	if m.Cmp(one) <= 0 {
		return nil
	}
	var fs []Factor
	div := func(p *big.Int) {
		e := 0
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(m, p, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			e++
		}
		if e > 0 {
			fs = append(fs, Factor{P: new(big.Int).Set(p), E: e})
		}
	}
	div(two)
	p := big.NewInt(3)
	sq := new(big.Int)
	for sq.Mul(p, p); sq.Cmp(m) <= 0; sq.Mul(p, p) {
		div(p)
		p.Add(p, two)
	}
	if m.Cmp(one) > 0 {
		// Remaining cofactor is prime.
		fs = append(fs, Factor{P: new(big.Int).Set(m), E: 1})
	}
	return fs
}

// Unfactor rebuilds the (non-negative) integer from a factorization.
func Unfactor(fs []Factor) *big.Int {
	n := big.NewInt(1)
	for _, f := range fs {
		if f.E == 0 {
			continue
		}
		n.Mul(n, new(big.Int).Exp(f.P, big.NewInt(int64(f.E)), nil))
	}
	return n
}

// GCD returns the non-negative gcd of its arguments; GCD of no
// arguments, or of all zeros, is 0.
func GCD(xs ...*big.Int) *big.Int {
	g := new(big.Int)
	for _, x := range xs {
		g.GCD(nil, nil, g, new(big.Int).Abs(x))
		if g.Cmp(one) == 0 {
			break
		}
	}
	return g
}

// GCDInts is GCD over plain ints, used for root indices and exponents.
func GCDInts(xs ...int) int {
	g := 0
	for _, x := range xs {
		if x < 0 {
			x = -x
		}
		for x != 0 {
			g, x = x, g%x
		}
		if g == 1 {
			break
		}
	}
	return g
}

// LCM returns the non-negative least common multiple of a and b.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := GCD(a, b)
	m := new(big.Int).Mul(a, b)
	m.Abs(m)
	return m.Quo(m, g)
}

// LCMInts is LCM over plain positive ints.
func LCMInts(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	return a / GCDInts(a, b) * b
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// Proportional reports whether the two coefficient lists are related by
// one exact rational factor k = a[i]/b[i], the same for every i. On
// success it returns k as num/den in lowest terms with den > 0. The
// test is exact cross-multiplication, never floating point.
func Proportional(a, b []*big.Int) (num, den *big.Int, ok bool) {
	if len(a) != len(b) || len(a) == 0 || b[0].Sign() == 0 {
		return nil, nil, false
	}
	l, r := new(big.Int), new(big.Int)
	for i := 1; i < len(a); i++ {
		l.Mul(a[i], b[0])
		r.Mul(b[i], a[0])
		if l.Cmp(r) != 0 {
			return nil, nil, false
		}
	}
	num = new(big.Int).Set(a[0])
	den = new(big.Int).Set(b[0])
	g := GCD(num, den)
	if g.Sign() != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	return num, den, true
}
