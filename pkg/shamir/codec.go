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

// secretToFieldElement interprets the secret as a big-endian unsigned
// integer. The integer must be strictly smaller than the modulus; there is
// no chunking for oversize secrets, callers must choose a sufficiently
// large modulus instead.
func secretToFieldElement(secret []byte, modulus *big.Int) (*big.Int, error) {
	element := new(big.Int).SetBytes(secret)
	if element.Cmp(modulus) >= 0 {
		wipe(element)
		return nil, fmt.Errorf("%w: %d-byte secret does not fit in a %d-bit modulus",
			ErrSecretTooLarge, len(secret), modulus.BitLen())
	}
	return element, nil
}

// fieldElementToSecret encodes the field element back to fixed-width
// big-endian bytes. The caller supplies the original secret length because
// the field element alone does not encode it: leading zero bytes would
// otherwise be lost.
func fieldElementToSecret(element *big.Int, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative secret length %d", ErrInvalidConfiguration, length)
	}
	if (element.BitLen()+7)/8 > length {
		return nil, fmt.Errorf("%w: reconstructed value does not fit in %d bytes",
			ErrInvalidConfiguration, length)
	}

	secret := make([]byte, length)
	element.FillBytes(secret)
	return secret, nil
}
