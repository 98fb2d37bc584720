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

package shamir

import (
	"crypto/rand"
	"io"
	"math/big"
)

// field performs modular arithmetic over a fixed prime modulus.
// Operands are expected to be in [0, prime); results always are.
type field struct {
	prime *big.Int
}

// add computes (a + b) mod prime.
func (f field) add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.prime)
}

// sub computes (a - b) mod prime.
func (f field) sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.prime)
}

// mul computes (a * b) mod prime.
func (f field) mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.prime)
}

// neg computes (-a) mod prime.
func (f field) neg(a *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, f.prime)
}

// inverse returns the multiplicative inverse of a modulo the prime, or
// nil when no inverse exists (a congruent to 0 mod prime). Zero has no
// inverse; callers must treat a nil result as an invariant violation.
func (f field) inverse(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, f.prime)
}

// random draws a uniform field element in [0, prime) from the given
// cryptographically secure source.
func (f field) random(source io.Reader) (*big.Int, error) {
	return rand.Int(source, f.prime)
}

// wipe overwrites the limbs of each value and resets it to zero so
// sensitive material does not outlive the call that created it.
func wipe(values ...*big.Int) {
	for _, v := range values {
		if v == nil {
			continue
		}
		bits := v.Bits()
		for i := range bits {
			bits[i] = 0
		}
		v.SetInt64(0)
	}
}
