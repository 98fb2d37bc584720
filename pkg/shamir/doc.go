// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package shamir implements Shamir's Secret Sharing over a prime field.
//
// A secret is divided into N shares such that any K shares (the threshold)
// reconstruct the original secret exactly, while K-1 or fewer shares reveal
// no information about it. This is achieved through polynomial interpolation
// modulo a large prime.
//
// # Mathematical Foundation
//
// The secret is encoded as the constant term (a0) of a polynomial of degree
// K-1 over GF(p):
//
//	f(x) = a0 + a1*x + a2*x^2 + ... + a(K-1)*x^(K-1)  (mod p)
//
// Coefficients a1 through a(K-1) are drawn uniformly from [0, p) using a
// cryptographically secure random source. Shares are the evaluations
// f(1), f(2), ..., f(N). Any K of them determine the polynomial uniquely,
// and Lagrange interpolation at x=0 recovers a0.
//
// Unlike byte-oriented GF(256) variants, arithmetic here is performed over
// a single configurable prime modulus, so the whole secret is one field
// element. The modulus must be strictly larger than the big-endian integer
// representation of any secret split under it; DefaultModulus returns the
// 521-bit Mersenne prime 2^521-1, which accommodates secrets up to 65 bytes.
//
// # Usage
//
//	params, err := shamir.NewSchemeParameters(2, 3, shamir.DefaultModulus())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	scheme, err := shamir.New(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	secret := []byte("my secret key")
//	shares, err := scheme.Split(secret, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Distribute shares to their holders over a trusted channel...
//
//	// Later, any 2 of the 3 shares reconstruct the secret. The secret
//	// length is not encoded in the shares and must be supplied by the
//	// caller.
//	recovered, err := scheme.Reconstruct(shares[:2], len(secret))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Security Properties
//
//   - Information-theoretic secrecy: K-1 shares reveal nothing
//   - Fresh randomness per split: two splits of the same secret produce
//     unrelated share values, both reconstructing to the same secret
//   - No silent coercion: out-of-range shares, duplicate indices and
//     oversize secrets are rejected with typed errors, never truncated
//
// All operations are pure and safe for concurrent use. Polynomial
// coefficients and intermediate values are zeroized before a call returns.
//
// This package defines no serialization, transport or storage format for
// shares; distributing them and authenticating their holders is the
// caller's responsibility.
package shamir
