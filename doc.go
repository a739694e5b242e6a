// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

/*
Package wei25519 is a constant-time elliptic-curve engine built around the
prime p = 2^255-19, implementing the three birationally equivalent curve
models over that field and an ECDSA primitive composed from them.

Subpackages are layered leaves-first:

  - field: constant-time arithmetic in Fp, the field underlying every
    curve model below.

  - scalar: arithmetic in Fn, the prime order of the Ed25519 base
    point's subgroup, used as the ECDSA scalar modulus.

  - curve25519: the Montgomery-form curve, a projective x-only ladder,
    and the Okeya-Sakurai y-coordinate recovery that turns an x-only
    result into a full affine point.

  - edwards25519: the twisted-Edwards-form curve in extended projective
    coordinates, with constant-time point addition, doubling and scalar
    multiplication.

  - wei25519: the short-Weierstrass-form curve, and the birational
    morphism layer moving affine points between all three models.

  - ecdsa: ECDSA signing and verification on the Weierstrass curve,
    built entirely from the layers above.

This package performs no hashing, no random-number generation, and no key
serialization beyond the raw fixed-width octet encodings each subpackage
documents: callers supply digests, nonces and secrets directly, and read
results back as fixed-size byte arrays.
*/
package wei25519
