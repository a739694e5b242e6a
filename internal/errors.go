// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds sentinel errors shared across the engine's
// exported packages.
package internal

import (
	"errors"
	"fmt"
)

const errParams = "parameter error"

// ParameterError wraps err with the standard "parameter error" prefix.
func ParameterError(err string) error {
	return NewError(errParams, err)
}

// NewError returns an error prefixed with prefix and embedding err as an error.
func NewError(prefix, err string) error {
	return fmt.Errorf("%s : %w", prefix, errors.New(err))
}

// Sentinel errors for the ECDSA-on-Wei25519 layer (spec.md §4.7, §7).
var (
	// ErrZeroNonce is returned by Sign when the caller-supplied nonce k is
	// zero.
	ErrZeroNonce = ParameterError("nonce k must not be zero")

	// ErrZeroR is returned by Sign when r = wx(k*G) mod n reduces to zero;
	// the caller must retry with a fresh nonce.
	ErrZeroR = ParameterError("signature r reduced to zero, retry with a new nonce")

	// ErrZeroS is returned by Sign when s reduces to zero; the caller must
	// retry with a fresh nonce.
	ErrZeroS = ParameterError("signature s reduced to zero, retry with a new nonce")

	// ErrInvalidSignature is returned by Verify when r or s fall outside
	// [1, n).
	ErrInvalidSignature = ParameterError("signature components must satisfy 1 <= r, s < n")

	// ErrPointNotOnCurve is returned when a public key's affine coordinates
	// do not satisfy the Wei25519 curve equation.
	ErrPointNotOnCurve = ParameterError("point is not on the curve")

	// ErrIdentityPoint is returned where an operation's documented domain
	// excludes the identity element.
	ErrIdentityPoint = ParameterError("point is the identity")
)
