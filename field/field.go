// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field implements constant-time arithmetic in Fp, the prime field
// of integers modulo p = 2^255 - 19 underlying Curve25519, Ed25519 and
// Wei25519.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// Element is a field element of Fp. The zero value is the additive identity.
//
// Internally an Element is held as five 51-bit limbs in radix 2^51: the
// represented value is l[0] + l[1]*2^51 + l[2]*2^102 + l[3]*2^153 + l[4]*2^204.
// Limbs may transiently exceed 51 bits after Add/Sub/Mul; Normalize (called
// internally by Equal, IsNegative and Bytes, on a copy) folds them back
// into the canonical range [0, p). Compare and export only after Normalize.
type Element struct {
	l [5]uint64
}

const maskLow51Bits = (uint64(1) << 51) - 1

// Zero returns the additive identity of Fp.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity of Fp.
func One() Element {
	return Element{l: [5]uint64{1, 0, 0, 0, 0}}
}

// FromUint64 builds a field element equal to v, v < 2^64 interpreted as an
// unsigned integer.
func FromUint64(v uint64) Element {
	return Element{l: [5]uint64{v & maskLow51Bits, v >> 51, 0, 0, 0}}
}

// Copy returns a copy of e.
func (e Element) Copy() Element {
	return e
}

// carryPropagate folds each limb's bits above position 51 into the next
// limb, wrapping the overflow of the top limb back into the bottom one
// multiplied by 19 (since 2^255 = 19 mod p). Assumes limbs are bounded well
// under 2^64 (true for the outputs of Add, Sub and the wide reduction in
// Mul/Square), so a single pass suffices to bring every limb back near 2^51.
func (e *Element) carryPropagate() *Element {
	c0 := e.l[0] >> 51
	c1 := e.l[1] >> 51
	c2 := e.l[2] >> 51
	c3 := e.l[3] >> 51
	c4 := e.l[4] >> 51

	e.l[0] = e.l[0]&maskLow51Bits + c4*19
	e.l[1] = e.l[1]&maskLow51Bits + c0
	e.l[2] = e.l[2]&maskLow51Bits + c1
	e.l[3] = e.l[3]&maskLow51Bits + c2
	e.l[4] = e.l[4]&maskLow51Bits + c3

	return e
}

// Normalize reduces e to its canonical representative in [0, p). Idempotent.
func (e *Element) Normalize() *Element {
	e.carryPropagate()
	e.carryPropagate()

	// Determine whether e >= p = 2^255-19 by adding 19 and checking whether
	// bit 255 (the carry out of limb 4) fires; if it does, e was in [p, 2p)
	// and the +19 pushed it past 2^255, so subtracting p is equivalent to
	// keeping only the low 255 bits of e+19.
	c := (e.l[0] + 19) >> 51
	c = (e.l[1] + c) >> 51
	c = (e.l[2] + c) >> 51
	c = (e.l[3] + c) >> 51
	c = (e.l[4] + c) >> 51

	e.l[0] += 19 * c

	e.l[1] += e.l[0] >> 51
	e.l[0] &= maskLow51Bits
	e.l[2] += e.l[1] >> 51
	e.l[1] &= maskLow51Bits
	e.l[3] += e.l[2] >> 51
	e.l[2] &= maskLow51Bits
	e.l[4] += e.l[3] >> 51
	e.l[3] &= maskLow51Bits
	e.l[4] &= maskLow51Bits

	return e
}

// Add sets e = a + b and returns e.
func (e *Element) Add(a, b *Element) *Element {
	e.l[0] = a.l[0] + b.l[0]
	e.l[1] = a.l[1] + b.l[1]
	e.l[2] = a.l[2] + b.l[2]
	e.l[3] = a.l[3] + b.l[3]
	e.l[4] = a.l[4] + b.l[4]

	return e.carryPropagate()
}

// twoP holds 2*p in limb form, used as a bias in Sub so that the limb-wise
// subtraction never underflows a uint64: 2*p's limbs are 2*(2^51-19) for
// limb 0 and 2*(2^51-1) for limbs 1-4.
var twoP = [5]uint64{0xFFFFFFFFFFFDA, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE, 0xFFFFFFFFFFFFE}

// Sub sets e = a - b and returns e.
func (e *Element) Sub(a, b *Element) *Element {
	e.l[0] = (a.l[0] + twoP[0]) - b.l[0]
	e.l[1] = (a.l[1] + twoP[1]) - b.l[1]
	e.l[2] = (a.l[2] + twoP[2]) - b.l[2]
	e.l[3] = (a.l[3] + twoP[3]) - b.l[3]
	e.l[4] = (a.l[4] + twoP[4]) - b.l[4]

	return e.carryPropagate()
}

// Negate sets e = -a and returns e.
func (e *Element) Negate(a *Element) *Element {
	var zero Element
	return e.Sub(&zero, a)
}

// uint128 is a minimal 128-bit accumulator used to hold the wide products
// generated by limb multiplication before they are folded back into the
// radix-2^51 representation.
type uint128 struct {
	lo, hi uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo: lo, hi: hi}
}

func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{lo: lo, hi: hi}
}

// shiftRightBy51 returns u >> 51 as a uint64; safe because by construction
// every accumulator this is applied to fits in at most 64+13 bits.
func shiftRightBy51(u uint128) uint64 {
	return (u.hi << 13) | (u.lo >> 51)
}

// reduceWide folds five wide (pre-reduction) limb products into a weakly
// reduced Element, using 2^255 = 19 mod p to bring the i+j >= 5 cross terms
// back into range.
func reduceWide(r0, r1, r2, r3, r4 uint128) Element {
	c0 := shiftRightBy51(r0)
	c1 := shiftRightBy51(r1)
	c2 := shiftRightBy51(r2)
	c3 := shiftRightBy51(r3)
	c4 := shiftRightBy51(r4)

	out := Element{l: [5]uint64{
		r0.lo&maskLow51Bits + c4*19,
		r1.lo&maskLow51Bits + c0,
		r2.lo&maskLow51Bits + c1,
		r3.lo&maskLow51Bits + c2,
		r4.lo&maskLow51Bits + c3,
	}}
	out.carryPropagate()

	return out
}

// Mul sets e = a*b mod p and returns e. The schoolbook cross terms with
// limb-index sum i+j >= 5 are folded back via the 2^255 = 19 mod p identity
// before the 5x5 limb products are summed; each product is accumulated in a
// 128-bit register since limbs scaled by 19 can reach ~56 bits.
func (e *Element) Mul(a, b *Element) *Element {
	a0, a1, a2, a3, a4 := a.l[0], a.l[1], a.l[2], a.l[3], a.l[4]
	b0, b1, b2, b3, b4 := b.l[0], b.l[1], b.l[2], b.l[3], b.l[4]

	a1_19 := a1 * 19
	a2_19 := a2 * 19
	a3_19 := a3 * 19
	a4_19 := a4 * 19

	r0 := mul64(a0, b0)
	r0 = r0.add(mul64(a1_19, b4))
	r0 = r0.add(mul64(a2_19, b3))
	r0 = r0.add(mul64(a3_19, b2))
	r0 = r0.add(mul64(a4_19, b1))

	r1 := mul64(a0, b1)
	r1 = r1.add(mul64(a1, b0))
	r1 = r1.add(mul64(a2_19, b4))
	r1 = r1.add(mul64(a3_19, b3))
	r1 = r1.add(mul64(a4_19, b2))

	r2 := mul64(a0, b2)
	r2 = r2.add(mul64(a1, b1))
	r2 = r2.add(mul64(a2, b0))
	r2 = r2.add(mul64(a3_19, b4))
	r2 = r2.add(mul64(a4_19, b3))

	r3 := mul64(a0, b3)
	r3 = r3.add(mul64(a1, b2))
	r3 = r3.add(mul64(a2, b1))
	r3 = r3.add(mul64(a3, b0))
	r3 = r3.add(mul64(a4_19, b4))

	r4 := mul64(a0, b4)
	r4 = r4.add(mul64(a1, b3))
	r4 = r4.add(mul64(a2, b2))
	r4 = r4.add(mul64(a3, b1))
	r4 = r4.add(mul64(a4, b0))

	*e = reduceWide(r0, r1, r2, r3, r4)

	return e
}

// MulSmall sets e = a*c mod p for a word-sized public multiplier c, and
// returns e. Used for small constants (e.g. the factor 2 in Okeya-Sakurai
// y-recovery) that appear as a fixed multiplier rather than a field
// element derived from secret data.
func (e *Element) MulSmall(a *Element, c uint64) *Element {
	cc := FromUint64(c)
	return e.Mul(a, &cc)
}

// Square sets e = a*a mod p and returns e.
func (e *Element) Square(a *Element) *Element {
	return e.Mul(a, a)
}

// pMinus2LowBits describes the addition chain for Invert: p-2 = 2^255-21,
// whose binary expansion is 250 leading ones (bits 254 down to 5) followed
// by the five low bits 0,1,0,1,1 (bits 4 down to 0). Since p-2 is a public
// constant, this fixed square-and-multiply sequence runs identically for
// every secret base a.
var pMinus2LowBits = [5]bool{false, true, false, true, true}

// Invert sets e = a^-1 mod p via Fermat's little theorem (a^(p-2)) and
// returns e. Undefined (non-trapping) for a == 0, per the field contract:
// callers must not invert zero.
func (e *Element) Invert(a *Element) *Element {
	acc := *a

	var t Element
	for i := 0; i < 249; i++ {
		t.Square(&acc)
		acc.Mul(&t, a)
	}

	for _, bit := range pMinus2LowBits {
		t.Square(&acc)
		if bit {
			acc.Mul(&t, a)
		} else {
			acc = t
		}
	}

	*e = acc

	return e
}

// sqrtM1 is a square root of -1 mod p, used to recover the second branch of
// Sqrt when p = 5 mod 8 (Ed25519's prime satisfies this).
var sqrtM1 = mustFromBytes([32]byte{
	0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4, 0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
	0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b, 0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
})

func mustFromBytes(b [32]byte) Element {
	return FromBytes(&b)
}

// Sqrt sets e to a square root of a and returns whether a is a quadratic
// residue. When it is not, e is left with an unspecified (non-meaningful,
// non-crashing) value, matching the field contract: the caller must verify
// by squaring before trusting the result.
//
// Since p = 5 mod 8, a candidate root is computed as a^((p+3)/8); its
// square equals either a (candidate is the root) or -a (candidate times
// sqrtM1 is the root), or neither (a is not a square).
func (e *Element) Sqrt(a *Element) bool {
	acc := *a

	var t Element
	for i := 0; i < 250; i++ {
		t.Square(&acc)
		acc.Mul(&t, a)
	}

	t.Square(&acc)
	acc = t // bit 0 of (p+3)/8's exponent is 0: square only, no multiply

	var check, negA Element
	check.Square(&acc)

	if check.Equal(a) == 1 {
		*e = acc
		return true
	}

	negA.Negate(a)
	if check.Equal(&negA) == 1 {
		e.Mul(&acc, &sqrtM1)
		return true
	}

	*e = acc

	return false
}

// Equal returns 1 if e == t and 0 otherwise, in constant time. Both operands
// are normalized first (on copies; e and t are not mutated).
func (e *Element) Equal(t *Element) int {
	ea, ta := *e, *t
	eb := ea.Bytes()
	tb := ta.Bytes()

	return subtle.ConstantTimeCompare(eb[:], tb[:])
}

// Select sets e to a if cond == 1, or to b if cond == 0, in constant time.
// cond must be 0 or 1.
func Select(cond int, a, b *Element) Element {
	mask := uint64(0) - uint64(cond&1)

	var out Element
	for i := range out.l {
		out.l[i] = (a.l[i] & mask) | (b.l[i] &^ mask)
	}

	return out
}

// IsNegative returns the parity (low bit) of e's canonical representative:
// 1 if odd, 0 if even. Normalizes a copy of e.
func (e *Element) IsNegative() int {
	t := *e
	t.Normalize()
	return int(t.l[0] & 1)
}

// FromBytes decodes the 32-byte little-endian encoding in into a field
// element. The top bit of in[31] is ignored, matching the standard
// Curve25519/Ed25519 field-element encoding.
func FromBytes(in *[32]byte) Element {
	var e Element
	e.l[0] = binary.LittleEndian.Uint64(in[0:8]) & maskLow51Bits
	e.l[1] = (binary.LittleEndian.Uint64(in[6:14]) >> 3) & maskLow51Bits
	e.l[2] = (binary.LittleEndian.Uint64(in[12:20]) >> 6) & maskLow51Bits
	e.l[3] = (binary.LittleEndian.Uint64(in[19:27]) >> 1) & maskLow51Bits
	e.l[4] = (binary.LittleEndian.Uint64(in[24:32]) >> 12) & maskLow51Bits

	return e
}

// Bytes returns the canonical 32-byte little-endian encoding of e, in [0, p).
func (e *Element) Bytes() [32]byte {
	t := *e
	t.Normalize()

	var buf [4]uint64
	buf[0] = t.l[0] | t.l[1]<<51
	buf[1] = t.l[1]>>13 | t.l[2]<<38
	buf[2] = t.l[2]>>26 | t.l[3]<<25
	buf[3] = t.l[3]>>39 | t.l[4]<<12

	var out [32]byte
	binary.LittleEndian.PutUint64(out[0:8], buf[0])
	binary.LittleEndian.PutUint64(out[8:16], buf[1])
	binary.LittleEndian.PutUint64(out[16:24], buf[2])
	binary.LittleEndian.PutUint64(out[24:32], buf[3])

	return out
}
