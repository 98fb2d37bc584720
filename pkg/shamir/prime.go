// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import "math/big"

// defaultModulusDecimal is the Mersenne prime 2^521 - 1.
const defaultModulusDecimal = "6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151"

var defaultModulus, _ = new(big.Int).SetString(defaultModulusDecimal, 10)

// DefaultModulus returns a copy of the default field modulus, the 521-bit
// Mersenne prime 2^521 - 1. It accommodates secrets up to 65 bytes; larger
// secrets require a caller-supplied prime.
func DefaultModulus() *big.Int {
	return new(big.Int).Set(defaultModulus)
}
