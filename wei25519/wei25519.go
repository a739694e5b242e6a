// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package wei25519 implements the short Weierstrass curve
//
//	wy^2 = wx^3 + a*wx + b
//
// over Fp (p = 2^255-19), the model ECDSA is defined on in this engine, and
// the birational morphism layer that moves affine points between this
// curve, Curve25519 (Montgomery form) and Ed25519 (twisted Edwards form).
package wei25519

import "github.com/bytemare/wei25519/field"

// A, B are the Weierstrass curve coefficients, derived from the Montgomery
// coefficient 486662 by the standard substitution wx = mx + A/3 (A/3 here
// is the Montgomery curve's own A, not this package's Weierstrass A):
//
//	a = (3 - A_mont^2) / 3
//	b = (2*A_mont^3 - 9*A_mont) / 27
var (
	A = field.FromBytes(&[32]byte{
		0x44, 0xa1, 0x14, 0x49, 0x98, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a,
	})
	B = field.FromBytes(&[32]byte{
		0x64, 0xc8, 0x10, 0x77, 0x9c, 0x5e, 0x0b, 0x26, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b, 0x09, 0xed,
		0x25, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b, 0x09, 0xed, 0x25, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b,
	})
)

// baseXBytes, baseYBytes are the Weierstrass image of the Curve25519/Ed25519
// base point, i.e. (9, montgomeryBaseY) shifted by delta. Exported so
// ECDSA's test vectors and key-generation callers can cross-check directly
// in Wei25519 coordinates without going through the morphism layer.
var baseXBytes = [32]byte{
	0x5a, 0x24, 0xad, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
	0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a,
}

var baseYBytes = [32]byte{
	0xd9, 0xd3, 0xce, 0x7e, 0xa2, 0xc5, 0xe9, 0x29, 0xb2, 0x61, 0x7c, 0x6d, 0x7e, 0x4d, 0x3d, 0x92,
	0x4c, 0xd1, 0x48, 0x77, 0x2c, 0xdd, 0x1e, 0xe0, 0xb4, 0x86, 0xa0, 0xb8, 0xa1, 0x19, 0xae, 0x20,
}

// BaseX returns the Weierstrass image of the engine's shared base point.
func BaseX() field.Element { return field.FromBytes(&baseXBytes) }

// BaseY returns the Weierstrass image of the engine's shared base point.
func BaseY() field.Element { return field.FromBytes(&baseYBytes) }

// Point is a Wei25519 affine point. The pair (0, 0) is reserved to encode
// the identity/point-at-infinity, per spec.md §3: it is not itself a
// curve point, so Infinity must be consulted before trusting X, Y.
type Point struct {
	X, Y     field.Element
	Infinity bool
}

// InfinityPoint returns the identity element in its (0, 0) encoding.
func InfinityPoint() Point {
	return Point{Infinity: true}
}

// IsInfinity reports whether p is the identity/point-at-infinity.
func (p *Point) IsInfinity() bool {
	return p.Infinity
}

// IsOnCurve reports whether p's affine coordinates satisfy
// wy^2 = wx^3 + a*wx + b. Always false for the identity encoding, since
// spec.md §3 documents (0, 0) as not itself a curve point.
//
// Resolved open question (spec.md §9): ECDSA's Verify calls this before
// trusting a caller-supplied public key, even though the morphism layer
// itself does not require it on its documented domain.
func (p *Point) IsOnCurve() bool {
	if p.Infinity {
		return false
	}

	var x2, x3, ax, rhs, lhs field.Element
	x2.Square(&p.X)
	x3.Mul(&x2, &p.X)
	ax.Mul(&A, &p.X)

	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, &B)

	lhs.Square(&p.Y)

	return lhs.Equal(&rhs) == 1
}
