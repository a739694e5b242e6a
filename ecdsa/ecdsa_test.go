// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ecdsa_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/wei25519/ecdsa"
	"github.com/bytemare/wei25519/wei25519"
)

func fixedSecret() [32]byte {
	var d [32]byte
	for i := range d {
		d[i] = byte(i + 1)
	}

	return d
}

func digestOf(msg string) [32]byte {
	return sha256.Sum256([]byte(msg))
}

func fixedNonce() [32]byte {
	var k [32]byte
	for i := range k {
		k[i] = 0xAA
	}

	return k
}

// TestSignVerifyRoundTrip is scenario E: a fixed secret, digest and nonce
// produce a signature that verifies, and flipping a digest bit breaks it.
// The flipped bit is bit 3: z = digest >> 3 discards bits 0-2, so a flip
// there leaves the signature valid.
func TestSignVerifyRoundTrip(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")
	k := fixedNonce()

	pub := ecdsa.PublicKeyFromSecret(&d)

	sig, err := ecdsa.Sign(&d, &e, &k)
	require.NoError(t, err)

	ok, err := ecdsa.Verify(pub, &e, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	tamperedE := e
	tamperedE[0] ^= 1 << 3

	ok, err = ecdsa.Verify(pub, &tamperedE, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignRejectsZeroNonce(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")

	var zeroK [32]byte

	_, err := ecdsa.Sign(&d, &e, &zeroK)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedR(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")
	k := fixedNonce()

	pub := ecdsa.PublicKeyFromSecret(&d)

	sig, err := ecdsa.Sign(&d, &e, &k)
	require.NoError(t, err)

	rBytes, sBytes := sig.Bytes()
	rBytes[0] ^= 1

	tampered := ecdsa.SignatureFromBytes(&rBytes, &sBytes)

	ok, err := ecdsa.Verify(pub, &e, tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsTamperedS(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")
	k := fixedNonce()

	pub := ecdsa.PublicKeyFromSecret(&d)

	sig, err := ecdsa.Sign(&d, &e, &k)
	require.NoError(t, err)

	rBytes, sBytes := sig.Bytes()
	sBytes[0] ^= 1

	tampered := ecdsa.SignatureFromBytes(&rBytes, &sBytes)

	ok, err := ecdsa.Verify(pub, &e, tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerifyRejectsPointNotOnCurve checks the resolved open question: a
// public key whose coordinates do not satisfy the Wei25519 curve equation
// must be rejected before any arithmetic proceeds.
func TestVerifyRejectsPointNotOnCurve(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")
	k := fixedNonce()

	pub := ecdsa.PublicKeyFromSecret(&d)
	sig, err := ecdsa.Sign(&d, &e, &k)
	require.NoError(t, err)

	bad := pub
	bad.Point.X = pub.Point.Y
	bad.Point.Y = pub.Point.X

	ok, err := ecdsa.Verify(bad, &e, sig)
	assert.Error(t, err)
	assert.False(t, ok)
}

// TestVerifyRejectsIdentityPublicKey checks that a public key at infinity
// is rejected before any curve-equation or scalar arithmetic proceeds.
func TestVerifyRejectsIdentityPublicKey(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")
	k := fixedNonce()

	sig, err := ecdsa.Sign(&d, &e, &k)
	require.NoError(t, err)

	bad := ecdsa.PublicKey{Point: wei25519.InfinityPoint()}

	ok, err := ecdsa.Verify(bad, &e, sig)
	assert.Error(t, err)
	assert.False(t, ok)
}

// TestSignDifferentNoncesDifferentSignatures checks that two distinct
// nonces over the same digest produce distinct, independently valid
// signatures (no accidental determinism collapsing them).
func TestSignDifferentNoncesDifferentSignatures(t *testing.T) {
	d := fixedSecret()
	e := digestOf("test")

	k1 := fixedNonce()
	k2 := fixedNonce()
	k2[0] = 0xBB

	pub := ecdsa.PublicKeyFromSecret(&d)

	sig1, err := ecdsa.Sign(&d, &e, &k1)
	require.NoError(t, err)

	sig2, err := ecdsa.Sign(&d, &e, &k2)
	require.NoError(t, err)

	r1, s1 := sig1.Bytes()
	r2, s2 := sig2.Bytes()
	assert.NotEqual(t, r1, r2)
	assert.NotEqual(t, s1, s2)

	ok, err := ecdsa.Verify(pub, &e, sig1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ecdsa.Verify(pub, &e, sig2)
	require.NoError(t, err)
	assert.True(t, ok)
}
