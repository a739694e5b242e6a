// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package wei25519

import "github.com/bytemare/wei25519/field"

// delta is delta = (p + 486662)/3 mod p, the additive offset relating the
// Montgomery and Weierstrass x-coordinates: wx = mx + delta.
var delta = field.FromBytes(&[32]byte{
	0x51, 0x24, 0xad, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
	0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a,
})

// c is sqrt(-(486662+2)) mod p and cInv its inverse, the constants the
// Montgomery<->Edwards maps scale by. Of the two square roots, c is the one
// under which the Ed25519 base point maps to the Curve25519 base point
// (9, BaseY).
var (
	c = field.FromBytes(&[32]byte{
		0xe7, 0x81, 0xba, 0x00, 0x55, 0xfb, 0x91, 0x33, 0x7d, 0xe5, 0x82, 0xb4, 0x2e, 0x2c, 0x5e, 0x3a,
		0x81, 0xb0, 0x03, 0xfc, 0x23, 0xf7, 0x84, 0x2d, 0x44, 0xf9, 0x5f, 0x9f, 0x0b, 0x12, 0xd9, 0x70,
	})
	cInv = field.FromBytes(&[32]byte{
		0xe9, 0x68, 0x42, 0xdb, 0xaf, 0x04, 0xb4, 0x40, 0xa1, 0xd5, 0x43, 0xf2, 0xf9, 0x38, 0x31, 0x28,
		0x01, 0x17, 0x05, 0x67, 0x9b, 0x81, 0x61, 0xf8, 0xa9, 0x5b, 0x3e, 0x6a, 0x20, 0x67, 0x4b, 0x24,
	})
)

// dEdwards is the Ed25519 curve constant d = -121665/121666 mod p, used by
// EdwardsYToEdwardsX. Kept as a local copy of edwards25519.D's value rather
// than importing that package, since only this one constant is needed and
// importing would create an import cycle once edwards25519 ever needs the
// morphism layer (it currently does not, but ecdsa imports both).
var dEdwards = field.FromBytes(&[32]byte{
	0xa3, 0x78, 0x59, 0x13, 0xca, 0x4d, 0xeb, 0x75, 0xab, 0xd8, 0x41, 0x41, 0x4d, 0x0a, 0x70, 0x00,
	0x98, 0xe8, 0x79, 0x77, 0x79, 0x40, 0xc7, 0x8c, 0x73, 0xfe, 0x6f, 0x2b, 0xee, 0x6c, 0x03, 0x52,
})

// EdwardsYToMontgomeryX computes mx = (1+ey)*(1-ey)^-1. Undefined at
// ey = 1 (the Edwards identity's y-coordinate); callers must not pass it.
func EdwardsYToMontgomeryX(ey *field.Element) field.Element {
	one := field.One()

	var num, den, denInv, mx field.Element
	num.Add(&one, ey)
	den.Sub(&one, ey)
	denInv.Invert(&den)
	mx.Mul(&num, &denInv)
	mx.Normalize()

	return mx
}

// MontgomeryXToEdwardsY computes ey = (mx-1)*(mx+1)^-1. Undefined at
// mx = -1; callers must not pass it.
func MontgomeryXToEdwardsY(mx *field.Element) field.Element {
	one := field.One()

	var num, den, denInv, ey field.Element
	num.Sub(mx, &one)
	den.Add(mx, &one)
	denInv.Invert(&den)
	ey.Mul(&num, &denInv)
	ey.Normalize()

	return ey
}

// EdwardsYToEdwardsX recovers ex from ey and a target parity bit (the low
// bit of the normalized x, matching field.Element.IsNegative): c = y^2,
// b = (1+d*c)^-1, a = c-1, solve x^2 = a*b, pick the root whose parity
// matches, and verify x^2 == a*b before returning. Reports false (ex is
// left unspecified but non-meaningful, not panicking) if a*b is not a
// quadratic residue.
func EdwardsYToEdwardsX(ey *field.Element, parity int) (ex field.Element, ok bool) {
	one := field.One()

	var ySq, dc, onePlusDc, b, a, ab, root, negRoot field.Element
	ySq.Square(ey)
	dc.Mul(&dEdwards, &ySq)
	onePlusDc.Add(&one, &dc)
	b.Invert(&onePlusDc)
	a.Sub(&ySq, &one)
	ab.Mul(&a, &b)

	if !root.Sqrt(&ab) {
		return field.Zero(), false
	}

	negRoot.Negate(&root)
	chosen := field.Select(root.IsNegative()^parity^1, &root, &negRoot)

	var check field.Element
	check.Square(&chosen)
	if check.Equal(&ab) != 1 {
		return field.Zero(), false
	}

	chosen.Normalize()

	return chosen, true
}

// WeierstrassXToWeierstrassY recovers wy from wx and a target sign bit
// (the low bit of the normalized y): solve wy^2 = wx^3 + a*wx + b, pick the
// root whose parity matches sign, and verify before returning.
func WeierstrassXToWeierstrassY(wx *field.Element, sign int) (wy field.Element, ok bool) {
	var x2, x3, ax, rhs, root, negRoot field.Element
	x2.Square(wx)
	x3.Mul(&x2, wx)
	ax.Mul(&A, wx)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, &B)

	if !root.Sqrt(&rhs) {
		return field.Zero(), false
	}

	negRoot.Negate(&root)
	chosen := field.Select(root.IsNegative()^sign^1, &root, &negRoot)

	var check field.Element
	check.Square(&chosen)
	if check.Equal(&rhs) != 1 {
		return field.Zero(), false
	}

	chosen.Normalize()

	return chosen, true
}

// MontgomeryXToWeierstrassX computes wx = mx + delta, preserving the
// (0 <-> 0) identity convention with a branch-free select rather than an
// early-return branch on mx.
func MontgomeryXToWeierstrassX(mx *field.Element) field.Element {
	var sum field.Element
	sum.Add(mx, &delta)

	isZero := mx.Equal(&field.Element{})
	zero := field.Zero()

	return field.Select(isZero, &zero, &sum)
}

// WeierstrassXToMontgomeryX computes mx = wx - delta, preserving the
// (0 <-> 0) identity convention with the same branch-free select.
func WeierstrassXToMontgomeryX(wx *field.Element) field.Element {
	var negDelta, diff field.Element
	negDelta.Negate(&delta)
	diff.Add(wx, &negDelta)

	isZero := wx.Equal(&field.Element{})
	zero := field.Zero()

	return field.Select(isZero, &zero, &diff)
}

// MontgomeryToEdwards converts a full affine Montgomery point (mx, my) to
// its Edwards image: ex = (c*mx) * my^-1, ey = (mx-1)/(mx+1).
func MontgomeryToEdwards(mx, my *field.Element) (ex, ey field.Element) {
	var cmx, myInv field.Element
	cmx.Mul(&c, mx)
	myInv.Invert(my)
	ex.Mul(&cmx, &myInv)
	ex.Normalize()

	ey = MontgomeryXToEdwardsY(mx)

	return ex, ey
}

// EdwardsToMontgomery converts a full affine Edwards point (ex, ey) to its
// Montgomery image: my = c*(1+ey) / ((1-ey)*ex), mx = (1+ey)/(1-ey).
func EdwardsToMontgomery(ex, ey *field.Element) (mx, my field.Element) {
	one := field.One()

	var onePlusEy, oneMinusEy, denom, denomInv, num field.Element
	onePlusEy.Add(&one, ey)
	oneMinusEy.Sub(&one, ey)
	denom.Mul(&oneMinusEy, ex)
	denomInv.Invert(&denom)
	num.Mul(&c, &onePlusEy)
	my.Mul(&num, &denomInv)
	my.Normalize()

	mx = EdwardsYToMontgomeryX(ey)

	return mx, my
}

// EdwardsToWeierstrass converts a full affine Edwards point (ex, ey)
// directly to Weierstrass, via the composed closed forms:
//
//	wx = (1+ey)/(1-ey) + delta
//	wy = c*(1+ey) * ((1-ey)*ex)^-1
func EdwardsToWeierstrass(ex, ey *field.Element) (wx, wy field.Element) {
	mx := EdwardsYToMontgomeryX(ey)
	wx = MontgomeryXToWeierstrassX(&mx)

	one := field.One()
	var onePlusEy, oneMinusEy, denom, denomInv, num field.Element
	onePlusEy.Add(&one, ey)
	oneMinusEy.Sub(&one, ey)
	denom.Mul(&oneMinusEy, ex)
	denomInv.Invert(&denom)
	num.Mul(&c, &onePlusEy)
	wy.Mul(&num, &denomInv)
	wy.Normalize()

	return wx, wy
}

// WeierstrassToEdwards converts a full affine Weierstrass point (wx, wy)
// back to Edwards, via:
//
//	pa = 3*wx - A_montgomery
//	ex = (c*pa) / (3*wy)
//	ey = (pa-3) / (pa+3)
//
// where A_montgomery = 486662 is folded in through delta: pa = 3*(wx-delta).
func WeierstrassToEdwards(wx, wy *field.Element) (ex, ey field.Element) {
	three := field.FromUint64(3)

	var mx, pa field.Element
	mx = WeierstrassXToMontgomeryX(wx)
	pa.Mul(&mx, &three)

	var threeWy, threeWyInv, cpa field.Element
	threeWy.Mul(wy, &three)
	threeWyInv.Invert(&threeWy)
	cpa.Mul(&c, &pa)
	ex.Mul(&cpa, &threeWyInv)
	ex.Normalize()

	var paMinus3, paPlus3, paPlus3Inv field.Element
	paMinus3.Sub(&pa, &three)
	paPlus3.Add(&pa, &three)
	paPlus3Inv.Invert(&paPlus3)
	ey.Mul(&paMinus3, &paPlus3Inv)
	ey.Normalize()

	return ex, ey
}
