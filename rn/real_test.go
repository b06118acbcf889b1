// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrea-Vigano/rnenv/config"
	"github.com/Andrea-Vigano/rnenv/rn"
)

func mk(t *testing.T, num, den []rn.Unit, index rn.Scalar) *rn.Real {
	t.Helper()
	v, err := rn.New(num, den, index)
	require.NoError(t, err)
	return v
}

func rational(t *testing.T, p, q int64) *rn.Real {
	t.Helper()
	v, err := rn.Rational(p, q)
	require.NoError(t, err)
	return v
}

func radical(t *testing.T, c, r, l int64) *rn.Real {
	t.Helper()
	v, err := rn.Radical(c, r, l)
	require.NoError(t, err)
	return v
}

// TestIndexOverRational covers the index form of a plain rational: the
// square root of 2/1 reduces to the single radical unit √2.
func TestIndexOverRational(t *testing.T) {
	v := mk(t, []rn.Unit{rn.U(2, 0, 0)}, []rn.Unit{rn.U(1, 0, 0)}, rn.NewInt(2))
	assert.Equal(t, "√2", v.String())
	assert.True(t, v.Equal(radical(t, 1, 2, 2)))
	assert.Equal(t, rn.NewInt(1), v.Index())
}

// TestRationalizedDenominator covers conjugate rationalization with the
// shared gcd and sign normalization that follow it.
func TestRationalizedDenominator(t *testing.T) {
	v := mk(t, []rn.Unit{rn.U(3, 0, 0)}, []rn.Unit{rn.U(4, 0, 0), rn.U(-4, 5, 2)}, nil)
	assert.Equal(t, "(-3-3√5)/16", v.String())
	assert.Equal(t, rn.FractionMixedIrrational, v.Class())
	assert.Len(t, v.Num(), 2)
	assert.Len(t, v.Den(), 2)
}

// TestIndexComposition covers ᴸ√ over a value that already carries an
// index: the indexes multiply and the body stays put.
func TestIndexComposition(t *testing.T) {
	a := mk(t, []rn.Unit{rn.U(2, 0, 0), rn.U(3, 5, 2)}, []rn.Unit{rn.U(4, 3, 2)}, rn.NewInt(2))
	assert.Equal(t, "√((2√3+3√15)/12)", a.String())
	assert.Equal(t, rn.NewInt(2), a.Index())

	b, err := rn.Root(3, a)
	require.NoError(t, err)
	assert.Equal(t, rn.NewInt(6), b.Index())
	assert.Equal(t, "⁶√((2√3+3√15)/12)", b.String())
	assert.Equal(t, a.Num(), b.Num())
	assert.Equal(t, a.Den(), b.Den())
}

func TestZeroIsCanonical(t *testing.T) {
	v := mk(t, []rn.Unit{rn.U(0, 0, 0)}, []rn.Unit{rn.U(7, 0, 0)}, nil)
	assert.True(t, v.IsZero())
	assert.Equal(t, "0", v.String())
	assert.True(t, v.Equal(rn.Integer(0)))
	assert.Equal(t, rn.IntegerRational, v.Class())
}

// TestRebuildIdempotent reconstructs values from their own canonical
// rows; the result must be structurally identical.
func TestRebuildIdempotent(t *testing.T) {
	values := []*rn.Real{
		rn.Integer(5),
		rn.Integer(-7),
		rational(t, 5, 6),
		radical(t, 1, 8, 2),
		mk(t, []rn.Unit{rn.U(1, 0, 0), rn.U(1, 2, 2)}, nil, nil),
		mk(t, []rn.Unit{rn.U(3, 0, 0)}, []rn.Unit{rn.U(4, 0, 0), rn.U(-4, 5, 2)}, nil),
		mk(t, []rn.Unit{rn.U(2, 0, 0), rn.U(3, 5, 2)}, []rn.Unit{rn.U(4, 3, 2)}, rn.NewInt(2)),
	}
	for _, v := range values {
		w, err := rn.New(v.Num(), v.Den(), v.Index())
		require.NoError(t, err, "%s", v)
		assert.True(t, v.Equal(w), "rebuild of %s changed to %s", v, w)
	}
}

func TestAsInt(t *testing.T) {
	i, ok := rn.Integer(-7).AsInt()
	require.True(t, ok)
	assert.Equal(t, "-7", i.String())

	i, ok = rational(t, 6, 3).AsInt()
	require.True(t, ok)
	assert.Equal(t, "2", i.String())

	_, ok = rational(t, 1, 2).AsInt()
	assert.False(t, ok)
	_, ok = radical(t, 1, 2, 2).AsInt()
	assert.False(t, ok)
}

func TestAsRat(t *testing.T) {
	r, ok := rational(t, -10, 4).AsRat()
	require.True(t, ok)
	assert.Equal(t, "-5/2", r.RatString())

	_, ok = radical(t, 1, 2, 2).AsRat()
	assert.False(t, ok)
}

func TestFromFloat(t *testing.T) {
	v, err := rn.FromFloat(0.5)
	require.NoError(t, err)
	assert.True(t, v.Equal(rational(t, 1, 2)))

	v, err = rn.FromFloat(0.1)
	require.NoError(t, err)
	r, ok := v.AsRat()
	require.True(t, ok)
	assert.Equal(t, "3602879701896397/36028797018963968", r.RatString())

	_, err = rn.FromFloat(math.NaN())
	assert.Error(t, err)
	_, err = rn.FromFloat(math.Inf(1))
	assert.Error(t, err)
}

func TestFromBigInt(t *testing.T) {
	n, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	require.True(t, ok)
	v := rn.FromBigInt(n)
	assert.Equal(t, n.String(), v.String())
}

func TestConstructionErrors(t *testing.T) {
	var inv *rn.InvalidUnitError
	_, err := rn.Radical(1, 5, 0)
	require.ErrorAs(t, err, &inv)

	_, err = rn.Radical(1, -4, 2)
	require.ErrorAs(t, err, &inv)

	_, err = rn.Root(2, rn.Integer(-2))
	require.ErrorAs(t, err, &inv)

	_, err = rn.Root(0, rn.Integer(2))
	require.ErrorAs(t, err, &inv)

	var dz *rn.DivisionByZeroError
	_, err = rn.Rational(1, 0)
	require.ErrorAs(t, err, &dz)
}

func TestNegativeRootIndex(t *testing.T) {
	v, err := rn.Root(-2, rn.Integer(4))
	require.NoError(t, err)
	assert.True(t, v.Equal(rational(t, 1, 2)))
}

// TestNegativeRootIndexOfZero checks that the reciprocal swap is
// honored before zero collapses: 0 under a negative index is 1/0.
func TestNegativeRootIndexOfZero(t *testing.T) {
	var dz *rn.DivisionByZeroError
	_, err := rn.Root(-2, rn.Integer(0))
	require.ErrorAs(t, err, &dz)

	_, err = rn.New([]rn.Unit{rn.U(0, 0, 0)}, []rn.Unit{rn.U(7, 0, 0)}, rn.NewInt(-3))
	require.ErrorAs(t, err, &dz)

	var inv *rn.InvalidUnitError
	_, err = rn.Root(0, rn.Integer(0))
	require.ErrorAs(t, err, &inv)
}

// TestIndexRangeGuard checks that oversized indices are rejected, both
// stated directly and reached through index composition.
func TestIndexRangeGuard(t *testing.T) {
	var inv *rn.InvalidUnitError
	_, err := rn.Radical(1, 2, 1<<40)
	require.ErrorAs(t, err, &inv)

	inner := mk(t, []rn.Unit{rn.U(1, 0, 0), rn.U(1, 2, 2)}, nil, nil)
	x, err := rn.Root(1<<20, inner)
	require.NoError(t, err)
	_, err = rn.Root(1<<20, x)
	require.ErrorAs(t, err, &inv)
}

func TestDepthLimit(t *testing.T) {
	c := &config.Config{}
	c.SetMaxDepth(1)
	rn.SetConfig(c)
	defer rn.SetConfig(&config.Config{})

	inner := mk(t, []rn.Unit{rn.U(1, 0, 0), rn.U(1, 2, 2)}, nil, nil)
	w, err := rn.Sqrt(inner)
	require.NoError(t, err)

	_, err = rn.Integer(1).Add(w)
	var derr *rn.DepthError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, derr.Depth)
	assert.Equal(t, 1, derr.Max)
}
