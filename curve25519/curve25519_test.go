// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve25519_test

import (
	"crypto/rand"
	"testing"

	xcurve25519 "golang.org/x/crypto/curve25519"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/wei25519/curve25519"
	"github.com/bytemare/wei25519/field"
)

func randomScalarBytes(t *testing.T) [32]byte {
	t.Helper()

	var b [32]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)

	// Clamp per RFC 7748 so the scalar lands in the expected subgroup-cofactor
	// form the ladder assumes.
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64

	return b
}

// TestScalarMultMatchesIndependentReference cross-checks the x-only ladder
// against golang.org/x/crypto/curve25519, an unrelated constant-time x25519
// implementation.
func TestScalarMultMatchesIndependentReference(t *testing.T) {
	base := [32]byte{9}

	for i := 0; i < 16; i++ {
		scalar := randomScalarBytes(t)

		var got [32]byte
		curve25519.ScalarMult(&got, &scalar, &base)

		want, err := xcurve25519.X25519(scalar[:], base[:])
		require.NoError(t, err)

		assert.Equal(t, want, got[:])
	}
}

// TestScalarMultBasepointMatchesReference exercises the fixed base point
// path specifically, since it is the case every key-agreement caller uses.
func TestScalarMultBasepointMatchesReference(t *testing.T) {
	scalar := randomScalarBytes(t)

	var got [32]byte
	bx := curve25519.BaseX().Bytes()
	curve25519.ScalarMult(&got, &scalar, &bx)

	want, err := xcurve25519.X25519(scalar[:], xcurve25519.Basepoint)
	require.NoError(t, err)

	assert.Equal(t, want, got[:])
}

// TestScalarMultXYRecoversConsistentY checks that the Okeya-Sakurai recovery
// path's x-coordinate agrees with the plain x-only ladder, and that the
// recovered (x, y) actually lies on the Montgomery curve
// y^2 = x^3 + 486662*x^2 + x.
func TestScalarMultXYRecoversConsistentY(t *testing.T) {
	base := curve25519.AffinePoint{X: curve25519.BaseX(), Y: curve25519.BaseY()}
	baseXBytes := curve25519.BaseX().Bytes()

	for i := 0; i < 16; i++ {
		scalar := randomScalarBytes(t)

		var wantX [32]byte
		curve25519.ScalarMult(&wantX, &scalar, &baseXBytes)

		got := curve25519.ScalarMultXY(&scalar, base)

		gotXBytes := got.X.Bytes()
		assert.Equal(t, wantX, gotXBytes, "recovered x must match the x-only ladder")

		assertOnMontgomeryCurve(t, got.X, got.Y)
	}
}

func assertOnMontgomeryCurve(t *testing.T, x, y field.Element) {
	t.Helper()

	a := field.FromUint64(486662)

	var x2, x3, ax2, rhs, lhs field.Element
	x2.Square(&x)
	x3.Mul(&x2, &x)
	ax2.Mul(&a, &x2)
	rhs.Add(&x3, &ax2)
	rhs.Add(&rhs, &x)

	lhs.Square(&y)

	assert.Equal(t, 1, lhs.Equal(&rhs), "(x,y) must satisfy the Montgomery curve equation")
}
