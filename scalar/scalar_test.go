// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package scalar_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/wei25519/scalar"
)

func randomScalar(t *testing.T) scalar.Scalar {
	t.Helper()

	var b [32]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)

	return scalar.FromBytes(&b)
}

func TestFieldLaws(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randomScalar(t)
		b := randomScalar(t)
		c := randomScalar(t)

		var ab, ba scalar.Scalar
		ab.Add(&a, &b)
		ba.Add(&b, &a)
		assert.Equal(t, 1, ab.Equal(&ba))

		var lhs, rhs, ac, ab2, sum2 scalar.Scalar
		ab2.Add(&a, &b)
		lhs.Add(&ab2, &c)
		ac.Add(&b, &c)
		sum2.Add(&a, &ac)
		rhs = sum2
		assert.Equal(t, 1, lhs.Equal(&rhs))

		if !a.IsZero() {
			var inv, one scalar.Scalar
			inv.Invert(&a)
			one.Mul(&a, &inv)
			assert.True(t, one.Equal(oneScalar()) == 1)
		}
	}
}

func oneScalar() *scalar.Scalar {
	one := scalar.One()
	return &one
}

func TestByteRoundTrip(t *testing.T) {
	a := randomScalar(t)
	b := a.Bytes()
	c := scalar.FromBytes(&b)
	assert.Equal(t, 1, a.Equal(&c))
}

func TestReductionIsCanonical(t *testing.T) {
	// All 0xff bytes is well above n; FromBytes must still reduce into range.
	var in [32]byte
	for i := range in {
		in[i] = 0xff
	}

	s := scalar.FromBytes(&in)
	b := s.Bytes()
	s2 := scalar.FromBytes(&b)
	assert.Equal(t, 1, s.Equal(&s2))
}
