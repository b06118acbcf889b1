// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceLinearMerges(t *testing.T) {
	got := reduceLinear(Linear{U(1, 2, 2), U(2, 3, 2), U(3, 2, 2)})
	assert.Equal(t, Linear{U(4, 2, 2), U(2, 3, 2)}, got)
}

func TestReduceLinearMergesAfterNormalization(t *testing.T) {
	// √8 is 2√2, so it merges with a plain √2 term.
	got := reduceLinear(Linear{U(1, 8, 2), U(1, 2, 2)})
	assert.Equal(t, Linear{U(3, 2, 2)}, got)
}

func TestReduceLinearCancelsToZero(t *testing.T) {
	got := reduceLinear(Linear{U(1, 2, 2), U(-1, 2, 2)})
	assert.Equal(t, Linear{unitZero()}, got)
}

func TestReduceLinearOrder(t *testing.T) {
	// Rational terms sort before radicals, radicals by (L, R).
	got := reduceLinear(Linear{U(1, 3, 3), U(1, 2, 2), U(5, 0, 0)})
	assert.Equal(t, Linear{U(5, 1, 1), U(1, 2, 2), U(1, 3, 3)}, got)
}

func TestConjugateLinear(t *testing.T) {
	got := conjugateLinear(Linear{U(4, 1, 1), U(-4, 5, 2)})
	assert.Equal(t, Linear{U(4, 1, 1), U(4, 5, 2)}, got)
}

func TestNegLinear(t *testing.T) {
	got := negLinear(Linear{U(2, 1, 1), U(-3, 5, 2)})
	assert.Equal(t, Linear{U(-2, 1, 1), U(3, 5, 2)}, got)
}

func TestScalarOps(t *testing.T) {
	assert.Equal(t, NewInt(5), scalarAdd(NewInt(2), NewInt(3)))
	assert.Equal(t, NewInt(-6), scalarMul(NewInt(2), NewInt(-3)))
	assert.Equal(t, NewInt(1024), scalarPow(NewInt(2), 10))
	assert.Equal(t, NewInt(1), scalarPow(NewInt(7), 0))
	assert.True(t, scalarLess(NewInt(2), NewInt(3)))
	assert.False(t, scalarLess(NewInt(3), NewInt(2)))
}
