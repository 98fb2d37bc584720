// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretToFieldElement(t *testing.T) {
	modulus := big.NewInt(65537)

	tests := []struct {
		name    string
		secret  []byte
		want    int64
		wantErr error
	}{
		{name: "single byte", secret: []byte{0x2A}, want: 42},
		{name: "big endian order", secret: []byte{0x01, 0x00}, want: 256},
		{name: "empty secret is zero", secret: []byte{}, want: 0},
		{name: "boundary below modulus", secret: []byte{0x01, 0x00, 0x00}, want: 65536},
		{name: "equal to modulus", secret: []byte{0x01, 0x00, 0x01}, wantErr: ErrSecretTooLarge},
		{name: "above modulus", secret: []byte{0xFF, 0xFF, 0xFF}, wantErr: ErrSecretTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			element, err := secretToFieldElement(tt.secret, modulus)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, element.Int64())
		})
	}
}

func TestFieldElementToSecret(t *testing.T) {
	t.Run("round trip with leading zeros", func(t *testing.T) {
		original := []byte{0x00, 0x00, 0xAB, 0xCD}
		element, err := secretToFieldElement(original, DefaultModulus())
		require.NoError(t, err)

		secret, err := fieldElementToSecret(element, len(original))
		require.NoError(t, err)
		assert.Equal(t, original, secret)
	})

	t.Run("zero length", func(t *testing.T) {
		secret, err := fieldElementToSecret(big.NewInt(0), 0)
		require.NoError(t, err)
		assert.Empty(t, secret)
	})

	t.Run("value wider than length", func(t *testing.T) {
		_, err := fieldElementToSecret(big.NewInt(65536), 2)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := fieldElementToSecret(big.NewInt(1), -1)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}
