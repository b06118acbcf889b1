// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

// Arithmetic over canonical values. Every operation assembles fresh
// num/den linears from the operands and hands them to the reducer, so
// results come back canonical and operands are never touched.

// Add returns a + b.
func (a *Real) Add(b *Real) (r *Real, err error) {
	defer catch(&err)
	return addReal(a, b), nil
}

// Sub returns a - b.
func (a *Real) Sub(b *Real) (r *Real, err error) {
	defer catch(&err)
	return addReal(a, negReal(b)), nil
}

// Mul returns a × b.
func (a *Real) Mul(b *Real) (r *Real, err error) {
	defer catch(&err)
	return mulReal(a, b), nil
}

// Div returns a ÷ b.
func (a *Real) Div(b *Real) (r *Real, err error) {
	defer catch(&err)
	return divReal(a, b), nil
}

// Neg returns -a. Negation cannot fail.
func (a *Real) Neg() *Real {
	return negReal(a)
}

// Conjugate returns the algebraic conjugate of a two-term value whose
// leading unit is rational: the second numerator coefficient is
// negated.
func (a *Real) Conjugate() (r *Real, err error) {
	defer catch(&err)
	units := significant(a.num)
	if len(units) != 2 || !trivialSig(units[0]) {
		return nil, Errorf("conjugate undefined for %s", a)
	}
	return newReal(conjugateLinear(units), a.den, a.index), nil
}

func addReal(a, b *Real) *Real {
	a, b = demote(a), demote(b)
	num := append(mulLinear(a.num, b.den), mulLinear(b.num, a.den)...)
	return newReal(num, mulLinear(a.den, b.den), nil)
}

func mulReal(a, b *Real) *Real {
	a, b = demote(a), demote(b)
	return newReal(mulLinear(a.num, b.num), mulLinear(a.den, b.den), nil)
}

func divReal(a, b *Real) *Real {
	if b.IsZero() {
		panic(&DivisionByZeroError{})
	}
	a, b = demote(a), demote(b)
	return newReal(mulLinear(a.num, b.den), mulLinear(a.den, b.num), nil)
}

func negReal(a *Real) *Real {
	a = demote(a)
	return newReal(negLinear(a.num), a.den, nil)
}
