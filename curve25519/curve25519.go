// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve25519 implements the Montgomery curve
//
//	y^2 = x^3 + 486662*x^2 + x
//
// over Fp (p = 2^255-19), via a projective x-only Montgomery ladder, plus
// Okeya-Sakurai recovery of the y-coordinate for callers that need the full
// affine point rather than only its x-coordinate.
package curve25519

import "github.com/bytemare/wei25519/field"

// A is the Montgomery curve coefficient 486662.
var A = field.FromUint64(486662)

// a24 is (A-2)/4 = 121665, the constant folded into the ladder's doubling
// step per the standard constant-time x25519 formulas.
var a24 = field.FromUint64(121665)

// twoA is 2*A = 973324, used by the Okeya-Sakurai y-recovery formula.
var twoA = field.FromUint64(973324)

// BaseX returns the Curve25519 base point's x-coordinate, the constant 9.
func BaseX() field.Element {
	return field.FromUint64(9)
}

// baseYBytes is the Curve25519 base point's y-coordinate (the Montgomery affine
// base used by the morphism layer and Okeya-Sakurai recovery), encoded
// little-endian.
var baseYBytes = [32]byte{
	0xd9, 0xd3, 0xce, 0x7e, 0xa2, 0xc5, 0xe9, 0x29, 0xb2, 0x61, 0x7c, 0x6d, 0x7e, 0x4d, 0x3d, 0x92,
	0x4c, 0xd1, 0x48, 0x77, 0x2c, 0xdd, 0x1e, 0xe0, 0xb4, 0x86, 0xa0, 0xb8, 0xa1, 0x19, 0xae, 0x20,
}

// BaseY returns the Curve25519 base point's y-coordinate.
func BaseY() field.Element {
	return field.FromBytes(&baseYBytes)
}

// MontgomeryPoint is a projective (X:Z) representation of the x-coordinate
// of a Curve25519 point, x = X/Z. Z == 0 (in its normalized sense) encodes
// the identity in x-only form.
type MontgomeryPoint struct {
	X, Z field.Element
}

// AffinePoint is a full affine Montgomery point (mx, my), or the identity
// (spec.md §9's Infinity | Affine(x,y) convention; the identity is carried
// by the Infinity flag, not by the (0,0) coordinate value, and this package
// has no octet encoding of an AffinePoint).
type AffinePoint struct {
	X, Y     field.Element
	Infinity bool
}

// cswap conditionally swaps (a1, a2) with (b1, b2) in constant time.
func cswap(swap int, a1, a2 *MontgomeryPoint) {
	nx := field.Select(swap, &a2.X, &a1.X)
	nz := field.Select(swap, &a2.Z, &a1.Z)
	ox := field.Select(swap, &a1.X, &a2.X)
	oz := field.Select(swap, &a1.Z, &a2.Z)

	a1.X, a1.Z = nx, nz
	a2.X, a2.Z = ox, oz
}

// ladder runs the constant-time projective Montgomery ladder of spec.md
// §4.3 (the RFC 7748 x25519 formulation of the same xDBL+xADD+cswap
// recurrence): scalar, interpreted little-endian with bit 254 fixed to 1
// per the ladder's clamping convention, applied to the base x-coordinate q.
// Returns the pair ((X_m:Z_m), (X_{m+1}:Z_{m+1})) after processing all 255
// bits, i.e. (scalar*P, (scalar+1)*P) in x-only projective form.
func ladder(q *field.Element, scalar *[32]byte) (m, mPlus1 MontgomeryPoint) {
	x1 := *q

	x2 := field.One()
	var z2 field.Element // 0: identity

	x3 := *q
	z3 := field.One()

	swap := 0

	for t := 254; t >= 0; t-- {
		kt := int((scalar[t/8] >> uint(t%8)) & 1)
		swap ^= kt

		p2 := MontgomeryPoint{X: x2, Z: z2}
		p3 := MontgomeryPoint{X: x3, Z: z3}
		cswap(swap, &p2, &p3)
		x2, z2, x3, z3 = p2.X, p2.Z, p3.X, p3.Z
		swap = kt

		var A_, AA, B, BB, E, C, D, DA, CB field.Element
		A_.Add(&x2, &z2)
		AA.Square(&A_)
		B.Sub(&x2, &z2)
		BB.Square(&B)
		E.Sub(&AA, &BB)
		C.Add(&x3, &z3)
		D.Sub(&x3, &z3)
		DA.Mul(&D, &A_)
		CB.Mul(&C, &B)

		var sum, diff field.Element
		sum.Add(&DA, &CB)
		x3.Square(&sum)

		diff.Sub(&DA, &CB)
		var diffSq field.Element
		diffSq.Square(&diff)
		z3.Mul(&x1, &diffSq)

		x2.Mul(&AA, &BB)

		var a24E field.Element
		a24E.Mul(&a24, &E)

		var inner field.Element
		inner.Add(&AA, &a24E)
		z2.Mul(&E, &inner)
	}

	p2 := MontgomeryPoint{X: x2, Z: z2}
	p3 := MontgomeryPoint{X: x3, Z: z3}
	cswap(swap, &p2, &p3)

	return p2, p3
}

// ScalarMult computes the Curve25519 x-only scalar multiplication
// scalar*base and writes the normalized 32-byte little-endian result to
// out. Matches spec.md §4.3 / §6's curve25519_scalar_mult.
func ScalarMult(out *[32]byte, scalar *[32]byte, base *[32]byte) {
	q := field.FromBytes(base)

	m, _ := ladder(&q, scalar)

	var zInv, x field.Element
	zInv.Invert(&m.Z)
	x.Mul(&m.X, &zInv)
	x.Normalize()

	*out = x.Bytes()
}

// ScalarMultXY computes scalar*base for a full affine base point (bx, by)
// and recovers the full affine result (x, y) via Okeya-Sakurai y-recovery,
// rather than only the x-only ladder output. Matches spec.md §4.4 /
// §6's curve25519_scalar_mult_xy.
//
// Precondition (per spec.md §4.4): base is not 2-torsion, and scalar*base is
// not the identity, base, or -base. Violating it does not panic, but the
// result is not meaningful.
func ScalarMultXY(scalar *[32]byte, base AffinePoint) AffinePoint {
	if base.Infinity {
		return AffinePoint{Infinity: true}
	}

	m, d := ladder(&base.X, scalar)

	return recoverY(base.X, base.Y, m, d)
}

// recoverY implements the Okeya-Sakurai y-coordinate recovery formula
// (10M + 1S + 2c + 3a + 3s, matching spec.md §4.4's operation budget
// exactly): given the base affine point (bx, by) and the ladder's two
// output points Q = (xQ:zQ) and D = (xD:zD) = P(+)Q, recovers Q in full
// projective form (X':Y':Z') and returns the normalized affine point
// Q = (X'/Z', Y'/Z').
func recoverY(bx, by field.Element, q, d MontgomeryPoint) AffinePoint {
	x1, z1 := q.X, q.Z
	x2, z2 := d.X, d.Z

	var t1, t2, t3, t4 field.Element

	t1.Mul(&bx, &z1)
	t2.Add(&x1, &t1)
	t3.Sub(&x1, &t1)
	t3.Square(&t3)
	t3.Mul(&t3, &x2)

	t1.Mul(&z1, &twoA) // t1 = z1 * 2A

	t2.Add(&t2, &t1)
	t4.Mul(&bx, &x1)
	t4.Add(&t4, &z1)
	t2.Mul(&t2, &t4)
	t1.Mul(&t1, &z1)
	t2.Sub(&t2, &t1)
	t2.Mul(&t2, &z2)

	var y field.Element
	y.Sub(&t2, &t3)

	var t1b field.Element
	t1b.MulSmall(&by, 2)
	t1b.Mul(&t1b, &z1)
	t1b.Mul(&t1b, &z2)

	var x, z field.Element
	x.Mul(&t1b, &x1)
	z.Mul(&t1b, &z1)

	var zInv field.Element
	zInv.Invert(&z)

	var outX, outY field.Element
	outX.Mul(&x, &zInv)
	outY.Mul(&y, &zInv)
	outX.Normalize()
	outY.Normalize()

	return AffinePoint{X: outX, Y: outY}
}
