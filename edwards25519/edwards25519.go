// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards25519 implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// over Fp (p = 2^255-19), the curve underlying Ed25519, in extended
// projective coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z, x*y = T/Z.
package edwards25519

import "github.com/bytemare/wei25519/field"

// D is the Ed25519 curve constant d = -121665/121666 mod p.
var D = field.FromBytes(&[32]byte{
	0xa3, 0x78, 0x59, 0x13, 0xca, 0x4d, 0xeb, 0x75, 0xab, 0xd8, 0x41, 0x41, 0x4d, 0x0a, 0x70, 0x00,
	0x98, 0xe8, 0x79, 0x77, 0x79, 0x40, 0xc7, 0x8c, 0x73, 0xfe, 0x6f, 0x2b, 0xee, 0x6c, 0x03, 0x52,
})

var twoD = func() field.Element {
	var t field.Element
	t.Add(&D, &D)
	return t
}()

// baseXBytes, baseYBytes are the standard Ed25519 base point's affine
// coordinates, little-endian encoded.
var baseXBytes = [32]byte{
	0x1a, 0xd5, 0x25, 0x8f, 0x60, 0x2d, 0x56, 0xc9, 0xb2, 0xa7, 0x25, 0x95, 0x60, 0xc7, 0x2c, 0x69,
	0x5c, 0xdc, 0xd6, 0xfd, 0x31, 0xe2, 0xa4, 0xc0, 0xfe, 0x53, 0x6e, 0xcd, 0xd3, 0x36, 0x69, 0x21,
}

var baseYBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

// BaseX returns the x-coordinate of the standard Ed25519 base point.
func BaseX() field.Element { return field.FromBytes(&baseXBytes) }

// BaseY returns the y-coordinate of the standard Ed25519 base point.
func BaseY() field.Element { return field.FromBytes(&baseYBytes) }

// Base returns the standard Ed25519 base point, projected.
func Base() Point {
	bx, by := BaseX(), BaseY()
	return Project(&bx, &by)
}

// Point is an Ed25519 group element in extended projective coordinates.
// The zero value is not a valid point; use Identity.
type Point struct {
	X, Y, Z, T field.Element
}

// Identity returns the Edwards neutral element (0 : 1 : 1 : 0).
func Identity() Point {
	return Point{X: field.Zero(), Y: field.One(), Z: field.One(), T: field.Zero()}
}

// Project converts an affine point (ex, ey) to extended projective
// coordinates. Matches spec.md §4.5's project(ex, ey).
func Project(ex, ey *field.Element) Point {
	var t Point
	t.X = *ex
	t.Y = *ey
	t.Z = field.One()
	t.T.Mul(ex, ey)

	return t
}

// Unproject recovers the affine coordinates (ex, ey) of P via field
// inversion of Z. Matches spec.md §4.5's unproject(P).
func (p *Point) Unproject() (ex, ey field.Element) {
	var zInv field.Element
	zInv.Invert(&p.Z)

	ex.Mul(&p.X, &zInv)
	ey.Mul(&p.Y, &zInv)
	ex.Normalize()
	ey.Normalize()

	return ex, ey
}

// Add sets p = a + b using the unified "add-2008-hwcd-3" formula (8M, a =
// -1) and returns p. Safe for a == b (doubling is not a separate code path
// here; Double exists as a cheaper dedicated formula for the hot ladder
// path).
func (p *Point) Add(a, b *Point) *Point {
	var yPlusX, yMinusX, tmp1, tmp2, A, B, C, Dd, E, F, G, H field.Element

	yPlusX.Add(&a.Y, &a.X)
	yMinusX.Sub(&a.Y, &a.X)
	tmp1.Add(&b.Y, &b.X)
	tmp2.Sub(&b.Y, &b.X)

	A.Mul(&yMinusX, &tmp2)
	B.Mul(&yPlusX, &tmp1)
	C.Mul(&a.T, &b.T)
	C.Mul(&C, &twoD)
	Dd.Mul(&a.Z, &b.Z)
	Dd.Add(&Dd, &Dd)

	E.Sub(&B, &A)
	F.Sub(&Dd, &C)
	G.Add(&Dd, &C)
	H.Add(&B, &A)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// Double sets p = 2*a using the dedicated doubling formula (4M + 4S, a =
// -1) and returns p.
func (p *Point) Double(a *Point) *Point {
	var A, B, C, Dd, E, G, H, xPlusY field.Element

	A.Square(&a.X)
	B.Square(&a.Y)
	C.Square(&a.Z)
	C.Add(&C, &C)
	Dd.Negate(&A)

	xPlusY.Add(&a.X, &a.Y)
	xPlusY.Square(&xPlusY)
	E.Sub(&xPlusY, &A)
	E.Sub(&E, &B)

	G.Add(&Dd, &B)
	H.Sub(&Dd, &B)
	var F field.Element
	F.Sub(&G, &C)

	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)

	return p
}

// Negate sets p = -a and returns p.
func (p *Point) Negate(a *Point) *Point {
	p.X.Negate(&a.X)
	p.Y = a.Y
	p.Z = a.Z
	p.T.Negate(&a.T)

	return p
}

// Equal returns 1 if p and q represent the same affine point, 0 otherwise,
// comparing via cross-multiplication so no inversion is required.
func (p *Point) Equal(q *Point) int {
	var x1, x2, y1, y2 field.Element
	x1.Mul(&p.X, &q.Z)
	x2.Mul(&q.X, &p.Z)
	y1.Mul(&p.Y, &q.Z)
	y2.Mul(&q.Y, &p.Z)

	return x1.Equal(&x2) & y1.Equal(&y2)
}

// cselect sets p to a if cond == 1, or to b if cond == 0, in constant time.
func cselect(cond int, a, b *Point) Point {
	return Point{
		X: field.Select(cond, &a.X, &b.X),
		Y: field.Select(cond, &a.Y, &b.Y),
		Z: field.Select(cond, &a.Z, &b.Z),
		T: field.Select(cond, &a.T, &b.T),
	}
}

// ScalarMult sets p = e*a for a 32-byte little-endian scalar e, via a
// constant-time double-and-add evaluated over every bit of e regardless of
// value, matching spec.md §4.5's smult(P, e) constant-time requirement.
func (p *Point) ScalarMult(a *Point, e *[32]byte) *Point {
	acc := Identity()
	base := *a

	for i := 0; i < 256; i++ {
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		bit := int((e[byteIdx] >> bitIdx) & 1)

		var withBase Point
		withBase.Add(&acc, &base)
		acc = cselect(bit, &withBase, &acc)

		var doubled Point
		doubled.Double(&base)
		base = doubled
	}

	*p = acc

	return p
}

// ScalarMultBase sets p = e*Base() and returns p. Equivalent to
// ScalarMult(Base(), e) but named for the common key-generation path.
func (p *Point) ScalarMultBase(e *[32]byte) *Point {
	base := Base()
	return p.ScalarMult(&base, e)
}
