// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ecdsa implements ECDSA on Wei25519, using Ed25519's base point
// and group order n for the scalar arithmetic and the Weierstrass curve as
// the public key and signature space. Message hashing, random-number
// generation and key serialization beyond raw fixed-width octets are the
// caller's responsibility: Sign takes an already-computed digest and a
// caller-supplied nonce, never deriving either itself.
package ecdsa

import (
	"math/big"

	"github.com/bytemare/wei25519/edwards25519"
	"github.com/bytemare/wei25519/internal"
	"github.com/bytemare/wei25519/scalar"
	"github.com/bytemare/wei25519/wei25519"
)

// PublicKey is a Wei25519 affine point (wx, wy), the verification key
// corresponding to some Ed25519 secret d.
type PublicKey struct {
	Point wei25519.Point
}

// Signature is the pair (r, s), each canonical mod n.
type Signature struct {
	R, S scalar.Scalar
}

// Bytes returns the FPRIME-wide little-endian encoding (r, s), 64 bytes
// total.
func (sig *Signature) Bytes() (r, s [32]byte) {
	return sig.R.Bytes(), sig.S.Bytes()
}

// SignatureFromBytes decodes a signature from its (r, s) octet encoding,
// reducing each component mod n; this constructor never fails. A
// non-canonical encoding (a value >= n) is accepted as its reduced value:
// Verify sees only the reduced components and rejects only a zero r or s.
func SignatureFromBytes(r, s *[32]byte) Signature {
	return Signature{R: scalar.FromBytes(r), S: scalar.FromBytes(s)}
}

// PublicKeyFromSecret computes Q = d*G in Ed25519 and maps it to its
// Wei25519 affine image (wx, wy), per the public-key-generation procedure.
func PublicKeyFromSecret(d *[32]byte) PublicKey {
	var q edwards25519.Point
	q.ScalarMultBase(d)

	ex, ey := q.Unproject()
	wx, wy := wei25519.EdwardsToWeierstrass(&ex, &ey)

	return PublicKey{Point: wei25519.Point{X: wx, Y: wy}}
}

// isZero32 reports, in constant time, whether b is the all-zero 32-byte
// string.
func isZero32(b *[32]byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}

	return acc == 0
}

// shiftRight3 interprets in as a 32-byte little-endian integer and returns
// in >> 3, re-encoded as a 32-byte little-endian value. This realizes the
// digest-to-scalar step z = e >> 3 that both Sign and Verify share.
func shiftRight3(in *[32]byte) [32]byte {
	be := make([]byte, 32)
	for i, b := range in {
		be[31-i] = b
	}

	z := new(big.Int).SetBytes(be)
	z.Rsh(z, 3)

	zb := z.Bytes()

	var out [32]byte
	for i, b := range zb {
		out[len(zb)-1-i] = b
	}

	return out
}

// Sign computes a signature over digest using secret key d and nonce k,
// following the seven-step procedure: reject a zero nonce, derive r from
// the Wei25519 x-coordinate of k*G, reject r = 0, fold in z = digest >> 3
// and r*d, invert k, and reject a resulting s = 0. The caller must supply
// a fresh, uniformly random k for every call; reuse across two signatures
// leaks d.
func Sign(d, digest, k *[32]byte) (Signature, error) {
	if isZero32(k) {
		return Signature{}, internal.ErrZeroNonce
	}

	var kPoint edwards25519.Point
	kPoint.ScalarMultBase(k)

	kx, ky := kPoint.Unproject()
	wx, _ := wei25519.EdwardsToWeierstrass(&kx, &ky)

	wxBytes := wx.Bytes()
	r := scalar.FromBytes(&wxBytes)

	if r.IsZero() {
		return Signature{}, internal.ErrZeroR
	}

	zBytes := shiftRight3(digest)
	z := scalar.FromBytes(&zBytes)

	dScalar := scalar.FromBytes(d)

	var t, zPlusT scalar.Scalar
	t.Mul(&r, &dScalar)
	zPlusT.Add(&z, &t)

	kScalar := scalar.FromBytes(k)

	var kInv, s scalar.Scalar
	kInv.Invert(&kScalar)
	s.Mul(&kInv, &zPlusT)
	s.Normalize()

	if s.IsZero() {
		return Signature{}, internal.ErrZeroS
	}

	return Signature{R: r, S: s}, nil
}

// isCanonicalScalar reports whether the 32-byte little-endian encoding b
// already equals the canonical (reduced mod n, nonzero) Scalar it decodes
// to, i.e. b represents a value in [1, n) rather than something FromBytes
// silently wrapped.
func isCanonicalScalar(b *[32]byte) (scalar.Scalar, bool) {
	s := scalar.FromBytes(b)
	if s.IsZero() {
		return s, false
	}

	return s, s.Bytes() == *b
}

// Verify checks sig against digest and the public key pub, per the
// five-step verification procedure. It additionally requires pub to lie on
// the Wei25519 curve and r, s to be canonical representatives in [1, n),
// hardening the otherwise-implicit domain assumptions the morphism layer
// would silently tolerate.
func Verify(pub PublicKey, digest *[32]byte, sig Signature) (bool, error) {
	if pub.Point.IsInfinity() {
		return false, internal.ErrIdentityPoint
	}

	if !pub.Point.IsOnCurve() {
		return false, internal.ErrPointNotOnCurve
	}

	rBytes, sBytes := sig.Bytes()

	r, rOK := isCanonicalScalar(&rBytes)
	s, sOK := isCanonicalScalar(&sBytes)

	if !rOK || !sOK {
		return false, internal.ErrInvalidSignature
	}

	zBytes := shiftRight3(digest)
	z := scalar.FromBytes(&zBytes)

	var w, u1, u2 scalar.Scalar
	w.Invert(&s)
	u1.Mul(&z, &w)
	u2.Mul(&r, &w)

	ex, ey := wei25519.WeierstrassToEdwards(&pub.Point.X, &pub.Point.Y)
	q := edwards25519.Project(&ex, &ey)

	u1Bytes := u1.Bytes()
	u2Bytes := u2.Bytes()

	var u1G, u2Q, rPoint edwards25519.Point
	u1G.ScalarMultBase(&u1Bytes)
	u2Q.ScalarMult(&q, &u2Bytes)
	rPoint.Add(&u1G, &u2Q)

	rex, rey := rPoint.Unproject()
	wxR, _ := wei25519.EdwardsToWeierstrass(&rex, &rey)

	wxRBytes := wxR.Bytes()
	rCheck := scalar.FromBytes(&wxRBytes)

	return rCheck.Equal(&r) == 1, nil
}
