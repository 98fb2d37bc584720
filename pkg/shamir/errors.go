// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates invalid scheme parameters or
	// split arguments (threshold, share count, modulus, owner labels).
	ErrInvalidConfiguration = errors.New("shamir: invalid configuration")

	// ErrSecretTooLarge indicates the secret's integer representation is
	// not smaller than the field modulus.
	ErrSecretTooLarge = errors.New("shamir: secret too large for modulus")

	// ErrInsufficientShares indicates fewer than threshold shares were
	// provided for reconstruction.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrInvalidShare indicates a share failed validation.
	ErrInvalidShare = errors.New("shamir: invalid share")

	// ErrDuplicateShareIndex indicates two supplied shares carry the same
	// index, which would make an interpolation denominator zero.
	ErrDuplicateShareIndex = errors.New("shamir: duplicate share index")

	// ErrInterpolationFailure indicates an internal invariant violation
	// during Lagrange interpolation. Unreachable for validated shares.
	ErrInterpolationFailure = errors.New("shamir: interpolation failure")
)

// InsufficientSharesError wraps ErrInsufficientShares with details.
type InsufficientSharesError struct {
	Have      int
	Threshold int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("shamir: insufficient shares: have %d, need %d", e.Have, e.Threshold)
}

func (e *InsufficientSharesError) Unwrap() error {
	return ErrInsufficientShares
}

// InvalidShareError wraps ErrInvalidShare with context about which share
// was rejected and why.
type InvalidShareError struct {
	Index  int
	Reason string
}

func (e *InvalidShareError) Error() string {
	return fmt.Sprintf("shamir: invalid share %d: %s", e.Index, e.Reason)
}

func (e *InvalidShareError) Unwrap() error {
	return ErrInvalidShare
}

// DuplicateShareIndexError wraps ErrDuplicateShareIndex with the
// offending index.
type DuplicateShareIndexError struct {
	Index int
}

func (e *DuplicateShareIndexError) Error() string {
	return fmt.Sprintf("shamir: duplicate share index %d", e.Index)
}

func (e *DuplicateShareIndexError) Unwrap() error {
	return ErrDuplicateShareIndex
}
