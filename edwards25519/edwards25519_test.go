// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519_test

import (
	"crypto/rand"
	"testing"

	filippoed25519 "filippo.io/edwards25519"
	filippofield "filippo.io/edwards25519/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/wei25519/edwards25519"
	"github.com/bytemare/wei25519/field"
)

func randomClampedScalar(t *testing.T) [32]byte {
	t.Helper()

	var b [32]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)

	b[0] &= 248
	b[31] &= 127
	b[31] |= 64

	return b
}

// toField converts a filippo.io/edwards25519/field.Element to this repo's
// own field.Element via a byte round-trip, so results from the two
// independent implementations can be compared directly.
func toField(e *filippofield.Element) field.Element {
	var b [32]byte
	copy(b[:], e.Bytes())

	return field.FromBytes(&b)
}

// filippoAffine extracts the affine (x, y) coordinates of a
// filippo.io/edwards25519 point, converted to this repo's field.Element.
func filippoAffine(p *filippoed25519.Point) (x, y field.Element) {
	xF, yF, zF, _ := p.ExtendedCoordinates()

	var zInv filippofield.Element
	zInv.Invert(zF)

	var xA, yA filippofield.Element
	xA.Multiply(xF, &zInv)
	yA.Multiply(yF, &zInv)

	return toField(&xA), toField(&yA)
}

func TestBaseIsOnCurve(t *testing.T) {
	bx, by := edwards25519.BaseX(), edwards25519.BaseY()
	assertOnEdwardsCurve(t, bx, by)
}

func assertOnEdwardsCurve(t *testing.T, x, y field.Element) {
	t.Helper()

	one := field.One()

	var x2, y2, lhs, dx2y2, rhs field.Element
	x2.Square(&x)
	y2.Square(&y)

	lhs.Negate(&x2)
	lhs.Add(&lhs, &y2)

	dx2y2.Mul(&x2, &y2)
	dx2y2.Mul(&dx2y2, &edwards25519.D)
	rhs.Add(&one, &dx2y2)

	assert.Equal(t, 1, lhs.Equal(&rhs), "(x,y) must satisfy the twisted Edwards curve equation")
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	bx, by := edwards25519.BaseX(), edwards25519.BaseY()
	p := edwards25519.Project(&bx, &by)

	gotX, gotY := p.Unproject()

	assert.Equal(t, 1, bx.Equal(&gotX))
	assert.Equal(t, 1, by.Equal(&gotY))
}

// TestScalarMultBaseMatchesIndependentReference cross-checks ScalarMultBase
// against filippo.io/edwards25519, an unrelated constant-time Ed25519
// implementation.
func TestScalarMultBaseMatchesIndependentReference(t *testing.T) {
	for i := 0; i < 8; i++ {
		e := randomClampedScalar(t)

		var got edwards25519.Point
		got.ScalarMultBase(&e)
		gotX, gotY := got.Unproject()

		fScalar, err := new(filippoed25519.Scalar).SetBytesWithClamping(e[:])
		require.NoError(t, err)

		fPoint := new(filippoed25519.Point).ScalarBaseMult(fScalar)
		wantX, wantY := filippoAffine(fPoint)

		assert.Equal(t, 1, gotX.Equal(&wantX))
		assert.Equal(t, 1, gotY.Equal(&wantY))
	}
}

func TestAddMatchesDouble(t *testing.T) {
	base := edwards25519.Base()

	var viaAdd, viaDouble edwards25519.Point
	viaAdd.Add(&base, &base)
	viaDouble.Double(&base)

	assert.Equal(t, 1, viaAdd.Equal(&viaDouble))
}

func TestScalarMultIdentityIsIdentity(t *testing.T) {
	base := edwards25519.Base()
	identity := edwards25519.Identity()

	var zero [32]byte

	var got edwards25519.Point
	got.ScalarMult(&base, &zero)

	assert.Equal(t, 1, got.Equal(&identity))
}
