// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import (
	"fmt"
	"math/big"
)

// Share is a single piece of a split secret: the secret polynomial
// evaluated at a nonzero index, optionally tagged with the label of the
// holder it is destined for.
//
// A share in isolation carries no information about the secret. Shares are
// produced fresh on every Split call and ownership transfers entirely to
// the caller; the scheme retains no copy.
type Share struct {
	// Index is the x-coordinate the polynomial was evaluated at (1 to N).
	Index int

	// Value is the field element f(Index), in [0, modulus).
	Value *big.Int

	// OwnerLabel identifies the intended holder of this share.
	OwnerLabel string
}

// String returns a representation safe for logs: the share value is
// redacted.
func (s *Share) String() string {
	return fmt.Sprintf("Share{Index: %d, Owner: %q, Value: <redacted>}", s.Index, s.OwnerLabel)
}

// validate checks the share against the scheme parameters.
func (s *Share) validate(params *SchemeParameters) error {
	if s == nil {
		return &InvalidShareError{Index: 0, Reason: "share is nil"}
	}
	if s.Index < 1 || s.Index > params.totalShares {
		return &InvalidShareError{
			Index:  s.Index,
			Reason: fmt.Sprintf("index must be between 1 and %d", params.totalShares),
		}
	}
	if s.Value == nil {
		return &InvalidShareError{Index: s.Index, Reason: "value is nil"}
	}
	if s.Value.Sign() < 0 || s.Value.Cmp(params.modulus) >= 0 {
		return &InvalidShareError{Index: s.Index, Reason: "value out of field range"}
	}
	return nil
}
