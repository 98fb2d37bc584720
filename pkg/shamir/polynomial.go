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
	"fmt"
	"math/big"
)

// polynomial is the ephemeral random polynomial constructed during a split.
// coefficients[0] is the secret. A polynomial must never outlive the Split
// call that created it and must never be logged.
type polynomial struct {
	coefficients []*big.Int
	field        field
}

// newRandomPolynomial creates a polynomial of degree (threshold - 1) with
// the given secret as the constant term. The remaining threshold-1
// coefficients are drawn independently and uniformly from [0, prime) using
// crypto/rand, so every split carries fresh randomness.
func newRandomPolynomial(secret *big.Int, threshold int, f field) (*polynomial, error) {
	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coefficient, err := f.random(rand.Reader)
		if err != nil {
			wipe(coefficients[:i]...)
			return nil, fmt.Errorf("shamir: failed to generate random coefficient: %w", err)
		}
		coefficients[i] = coefficient
	}

	return &polynomial{coefficients: coefficients, field: f}, nil
}

// evaluate computes f(x) mod prime using Horner's method:
//
//	f(x) = a0 + x(a1 + x(a2 + ... + x*a(K-1)))
//
// Evaluation is deterministic for fixed coefficients and x.
func (p *polynomial) evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.field.mul(result, x)
		result = p.field.add(result, p.coefficients[i])
	}
	return result
}

// destroy zeroizes all coefficient material, including the secret
// constant term.
func (p *polynomial) destroy() {
	wipe(p.coefficients...)
}
