// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		n    int64
		want []Factor
	}{
		{0, nil},
		{1, nil},
		{-1, nil},
		{2, []Factor{{big.NewInt(2), 1}}},
		{8, []Factor{{big.NewInt(2), 3}}},
		{-8, []Factor{{big.NewInt(2), 3}}},
		{97, []Factor{{big.NewInt(97), 1}}},
		{360, []Factor{{big.NewInt(2), 3}, {big.NewInt(3), 2}, {big.NewInt(5), 1}}},
		{9409, []Factor{{big.NewInt(97), 2}}},
	}
	for _, tt := range tests {
		got := Factorize(big.NewInt(tt.n))
		assert.Equal(t, tt.want, got, "Factorize(%d)", tt.n)
	}
}

func TestUnfactorRoundTrip(t *testing.T) {
	for _, n := range []int64{2, 6, 12, 49, 360, 1024, 9699690} {
		fs := Factorize(big.NewInt(n))
		require.NotEmpty(t, fs, "Factorize(%d)", n)
		assert.Equal(t, big.NewInt(n), Unfactor(fs), "Unfactor(Factorize(%d))", n)
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(0), GCD().Int64())
	assert.Equal(t, int64(0), GCD(big.NewInt(0), big.NewInt(0)).Int64())
	assert.Equal(t, int64(5), GCD(big.NewInt(0), big.NewInt(5)).Int64())
	assert.Equal(t, int64(6), GCD(big.NewInt(12), big.NewInt(18)).Int64())
	assert.Equal(t, int64(6), GCD(big.NewInt(-12), big.NewInt(18)).Int64())
	assert.Equal(t, int64(1), GCD(big.NewInt(9), big.NewInt(14), big.NewInt(6)).Int64())
	assert.Equal(t, int64(4), GCD(big.NewInt(12), big.NewInt(16), big.NewInt(20)).Int64())
}

func TestGCDInts(t *testing.T) {
	assert.Equal(t, 0, GCDInts())
	assert.Equal(t, 2, GCDInts(4, 6))
	assert.Equal(t, 2, GCDInts(-4, 6))
	assert.Equal(t, 3, GCDInts(3))
	assert.Equal(t, 1, GCDInts(8, 9, 25))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(12), LCM(big.NewInt(4), big.NewInt(6)).Int64())
	assert.Equal(t, int64(12), LCM(big.NewInt(-4), big.NewInt(6)).Int64())
	assert.Equal(t, int64(0), LCM(big.NewInt(0), big.NewInt(6)).Int64())
	assert.Equal(t, 12, LCMInts(4, 6))
	assert.Equal(t, 6, LCMInts(2, 3))
	assert.Equal(t, 0, LCMInts(5, 0))
}

func TestCoprime(t *testing.T) {
	assert.True(t, Coprime(big.NewInt(9), big.NewInt(14)))
	assert.False(t, Coprime(big.NewInt(6), big.NewInt(9)))
	assert.False(t, Coprime(big.NewInt(0), big.NewInt(0)))
}

func TestProportional(t *testing.T) {
	bigs := func(xs ...int64) []*big.Int {
		out := make([]*big.Int, len(xs))
		for i, x := range xs {
			out[i] = big.NewInt(x)
		}
		return out
	}

	num, den, ok := Proportional(bigs(2, 4), bigs(1, 2))
	require.True(t, ok)
	assert.Equal(t, int64(2), num.Int64())
	assert.Equal(t, int64(1), den.Int64())

	num, den, ok = Proportional(bigs(-3, -6), bigs(6, 12))
	require.True(t, ok)
	assert.Equal(t, int64(-1), num.Int64())
	assert.Equal(t, int64(2), den.Int64())

	_, _, ok = Proportional(bigs(2, 4), bigs(1, 3))
	assert.False(t, ok)

	_, _, ok = Proportional(bigs(2, 4), bigs(1))
	assert.False(t, ok)

	_, _, ok = Proportional(bigs(2), bigs(0))
	assert.False(t, ok)
}
