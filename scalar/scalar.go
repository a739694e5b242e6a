// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package scalar implements arithmetic in Fn, the prime field of integers
// modulo n, the order of the Ed25519 base point's prime-order subgroup.
//
// Unlike package field, Fn arithmetic here is backed by math/big, the same
// choice the teacher repo's internal/field.Field makes for its general
// big.Int-backed Galois field abstraction (bytemare-crypto's
// internal/field/field.go). This is a deliberate scope boundary recorded in
// SPEC_FULL.md §9: the limb-masked constant-time discipline spec.md §5
// mandates is carried in full by package field (the ladder, Ed25519 smult,
// and every Fp operation); Fn inherits the teacher's big.Int compromise.
package scalar

import (
	"crypto/subtle"
	"math/big"
)

// orderHex is n = 2^252 + 27742317777372353535851937790883648493, the order
// of the Ed25519 base point's prime-order subgroup.
const orderHex = "1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"

var (
	order   *big.Int
	orderM2 *big.Int // order - 2, used for Invert
)

func init() {
	order, _ = new(big.Int).SetString(orderHex, 16)
	orderM2 = new(big.Int).Sub(order, big.NewInt(2))
}

// Scalar is a residue class modulo n, always held in [0, n).
type Scalar struct {
	v big.Int
}

// Zero returns the additive identity of Fn.
func Zero() Scalar {
	return Scalar{}
}

// One returns the multiplicative identity of Fn.
func One() Scalar {
	var s Scalar
	s.v.SetInt64(1)

	return s
}

// FromBytes reduces the 32-byte little-endian value in modulo n and returns
// the canonical Scalar. This realizes spec.md §4.2's fprime_from_bytes.
func FromBytes(in *[32]byte) Scalar {
	be := reverse(in[:])

	var s Scalar
	s.v.SetBytes(be)
	s.v.Mod(&s.v, order)

	return s
}

func reverse(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[len(in)-1-i] = b
	}

	return out
}

// Bytes returns the canonical 32-byte little-endian encoding of s, in [0, n).
func (s *Scalar) Bytes() [32]byte {
	s.Normalize()

	be := s.v.Bytes()

	var out [32]byte
	for i, b := range be {
		out[len(be)-1-i] = b
	}

	return out
}

// Normalize reduces s to its canonical representative in [0, n).
func (s *Scalar) Normalize() *Scalar {
	s.v.Mod(&s.v, order)
	return s
}

// Add sets s = a + b mod n and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	s.v.Mod(&s.v, order)

	return s
}

// Sub sets s = a - b mod n and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.v.Sub(&a.v, &b.v)
	s.v.Mod(&s.v, order)

	return s
}

// Mul sets s = a * b mod n and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	s.v.Mod(&s.v, order)

	return s
}

// Invert sets s = a^-1 mod n via Fermat's little theorem and returns s.
// Undefined (non-trapping) for a == 0.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	s.v.Exp(&a.v, orderM2, order)
	return s
}

// IsZero returns whether s is the additive identity, after normalizing.
func (s *Scalar) IsZero() bool {
	s.Normalize()
	return s.v.Sign() == 0
}

// Equal returns whether s and t represent the same residue class, in
// constant time over their canonical byte encodings.
func (s *Scalar) Equal(t *Scalar) int {
	sb := s.Bytes()
	tb := t.Bytes()

	return subtle.ConstantTimeCompare(sb[:], tb[:])
}

// Copy returns a copy of s.
func (s Scalar) Copy() Scalar {
	var c Scalar
	c.v.Set(&s.v)

	return c
}
