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
	"fmt"
	"math/big"
)

// primalityRounds is the number of Miller-Rabin rounds used to validate a
// caller-supplied modulus.
const primalityRounds = 20

// SchemeParameters holds the immutable configuration of a threshold
// scheme: the threshold K, the total number of shares N, and the prime
// field modulus. Construct via NewSchemeParameters; a validated instance
// is reusable across any number of Split and Reconstruct calls.
type SchemeParameters struct {
	threshold   int
	totalShares int
	modulus     *big.Int
}

// NewSchemeParameters validates and returns scheme parameters.
// The invariants are 1 <= threshold <= totalShares and a prime modulus.
// The modulus must also be strictly greater than the integer
// representation of any secret split under these parameters; that is
// enforced per call by Split.
func NewSchemeParameters(threshold, totalShares int, modulus *big.Int) (*SchemeParameters, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1, got %d",
			ErrInvalidConfiguration, threshold)
	}
	if totalShares < threshold {
		return nil, fmt.Errorf("%w: total shares (%d) must be >= threshold (%d)",
			ErrInvalidConfiguration, totalShares, threshold)
	}
	if modulus == nil {
		return nil, fmt.Errorf("%w: modulus is required", ErrInvalidConfiguration)
	}
	if modulus.Cmp(big.NewInt(2)) <= 0 || !modulus.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: modulus must be prime", ErrInvalidConfiguration)
	}

	return &SchemeParameters{
		threshold:   threshold,
		totalShares: totalShares,
		modulus:     new(big.Int).Set(modulus),
	}, nil
}

// Threshold returns K, the minimum number of shares required to
// reconstruct.
func (p *SchemeParameters) Threshold() int {
	return p.threshold
}

// TotalShares returns N, the number of shares produced by a split.
func (p *SchemeParameters) TotalShares() int {
	return p.totalShares
}

// Modulus returns a copy of the prime field modulus.
func (p *SchemeParameters) Modulus() *big.Int {
	return new(big.Int).Set(p.modulus)
}

// Scheme executes (K,N)-threshold splits and reconstructions over the
// configured prime field. Every call is stateless and self-contained;
// a Scheme is safe for concurrent use.
type Scheme struct {
	params *SchemeParameters
	field  field
}

// New creates a Scheme from validated parameters.
func New(params *SchemeParameters) (*Scheme, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: parameters are required", ErrInvalidConfiguration)
	}
	return &Scheme{
		params: params,
		field:  field{prime: params.modulus},
	}, nil
}

// Parameters returns the scheme's parameters.
func (s *Scheme) Parameters() *SchemeParameters {
	return s.params
}

// Split divides the secret into N shares, any K of which reconstruct it.
//
// The secret is interpreted as a big-endian unsigned integer and must be
// strictly smaller than the modulus, or Split fails with
// ErrSecretTooLarge. ownerLabels may be nil, in which case shares are
// labeled node_1 through node_N; a non-nil slice must have exactly N
// entries.
//
// Each call draws fresh polynomial coefficients, so two splits of the same
// secret produce unrelated share values. Coefficients are zeroized before
// Split returns.
func (s *Scheme) Split(secret []byte, ownerLabels []string) ([]*Share, error) {
	if ownerLabels != nil && len(ownerLabels) != s.params.totalShares {
		return nil, fmt.Errorf("%w: need %d owner labels, got %d",
			ErrInvalidConfiguration, s.params.totalShares, len(ownerLabels))
	}

	secretElement, err := secretToFieldElement(secret, s.params.modulus)
	if err != nil {
		return nil, err
	}
	defer wipe(secretElement)

	poly, err := newRandomPolynomial(secretElement, s.params.threshold, s.field)
	if err != nil {
		return nil, err
	}
	defer poly.destroy()

	shares := make([]*Share, s.params.totalShares)
	for i := 1; i <= s.params.totalShares; i++ {
		label := fmt.Sprintf("node_%d", i)
		if ownerLabels != nil {
			label = ownerLabels[i-1]
		}
		shares[i-1] = &Share{
			Index:      i,
			Value:      poly.evaluate(big.NewInt(int64(i))),
			OwnerLabel: label,
		}
	}

	return shares, nil
}

// Reconstruct recovers the secret from at least K shares using Lagrange
// interpolation at x=0.
//
// Only the first K shares presented are used; any K-subset of a valid
// split yields the identical result, so the selection is deterministic
// rather than security-relevant. Each selected share is validated for
// index and value range, and duplicate indices are rejected before any
// arithmetic runs. secretLength is the original secret's size in bytes and
// must be communicated out-of-band; it is not encoded in the shares.
//
// Reconstruction is non-destructive: the same shares may be combined any
// number of times.
func (s *Scheme) Reconstruct(shares []*Share, secretLength int) ([]byte, error) {
	if len(shares) < s.params.threshold {
		return nil, &InsufficientSharesError{Have: len(shares), Threshold: s.params.threshold}
	}

	selected := shares[:s.params.threshold]
	seen := make(map[int]bool, len(selected))
	for _, share := range selected {
		if err := share.validate(s.params); err != nil {
			return nil, err
		}
		if seen[share.Index] {
			return nil, &DuplicateShareIndexError{Index: share.Index}
		}
		seen[share.Index] = true
	}

	secretElement, err := s.interpolateAtZero(selected)
	if err != nil {
		return nil, err
	}
	defer wipe(secretElement)

	return fieldElementToSecret(secretElement, secretLength)
}

// interpolateAtZero computes f(0) = sum(value_i * L_i(0)) where
// L_i(0) = prod(j != i, (0 - x_j) / (x_i - x_j)) mod p.
func (s *Scheme) interpolateAtZero(shares []*Share) (*big.Int, error) {
	secret := big.NewInt(0)

	for i, shareI := range shares {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)
		xi := big.NewInt(int64(shareI.Index))

		for j, shareJ := range shares {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(shareJ.Index))
			numerator = s.field.mul(numerator, s.field.neg(xj))
			denominator = s.field.mul(denominator, s.field.sub(xi, xj))
		}

		// Distinct validated indices make a zero denominator
		// unreachable; a nil inverse is an internal invariant
		// violation, never silently recovered.
		inverse := s.field.inverse(denominator)
		if inverse == nil {
			wipe(secret)
			return nil, fmt.Errorf("%w: denominator for share index %d has no inverse",
				ErrInterpolationFailure, shareI.Index)
		}

		basis := s.field.mul(numerator, inverse)
		term := s.field.mul(shareI.Value, basis)
		next := s.field.add(secret, term)
		wipe(secret, term, basis, inverse, numerator, denominator)
		secret = next
	}

	return secret, nil
}

// VerifyShare checks that a single share is well-formed under the scheme
// parameters: index in [1, N] and value in [0, modulus). It cannot detect
// a share whose value was altered within the field; that requires a
// verifiable secret sharing scheme, which this package does not implement.
func (s *Scheme) VerifyShare(share *Share) error {
	return share.validate(s.params)
}
