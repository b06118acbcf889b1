// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		name string
		in   Unit
		want Unit
	}{
		{"extract square", U(1, 8, 2), U(2, 2, 2)},
		{"reduce index by gcd", U(1, 9, 4), U(1, 3, 2)},
		{"extract and keep remainder", U(6, 72, 2), U(36, 2, 2)},
		{"radicand one folds", U(3, 1, 5), U(3, 1, 1)},
		{"perfect odd cube", U(2, -8, 3), U(-4, 1, 1)},
		{"negative cube to integer", U(1, -27, 3), U(-3, 1, 1)},
		{"zero radicand", U(5, 0, 2), U(0, 1, 1)},
		{"zero coefficient", U(0, 7, 3), U(0, 1, 1)},
		{"placeholder pair", U(7, 0, 0), U(7, 1, 1)},
		{"negative index reciprocal", U(2, 4, -2), U(1, 1, 1)},
		{"irreducible", U(1, 10, 2), U(1, 10, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeUnit(tt.in))
		})
	}
}

func TestNormalizeUnitInvalid(t *testing.T) {
	for _, u := range []Unit{
		U(1, 5, 0),  // index 0
		U(1, -4, 2), // even index, negative radicand
		U(1, 0, -2), // negative index, zero radicand
	} {
		assert.Panics(t, func() { normalizeUnit(u) }, "%v", u)
	}
}

func TestMulUnit(t *testing.T) {
	assert.Equal(t, U(6, 5, 2), mulUnit(U(3, 1, 1), U(2, 5, 2)))
	assert.Equal(t, U(10, 3, 1), mulUnit(U(2, 3, 2), U(5, 3, 2)))
	assert.Equal(t, U(6, 32, 6), mulUnit(U(2, 2, 2), U(3, 2, 3)))
	assert.Equal(t, unitZero(), mulUnit(U(0, 1, 1), U(2, 5, 2)))
}
