// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import (
	"math/big"
	"testing"
)

func TestNewRandomPolynomial(t *testing.T) {
	f := field{prime: DefaultModulus()}
	secret := big.NewInt(1234567890)

	poly, err := newRandomPolynomial(secret, 4, f)
	if err != nil {
		t.Fatalf("failed to create polynomial: %v", err)
	}

	if len(poly.coefficients) != 4 {
		t.Fatalf("expected 4 coefficients, got %d", len(poly.coefficients))
	}
	if poly.coefficients[0].Cmp(secret) != 0 {
		t.Error("constant term must equal the secret")
	}
	for i, c := range poly.coefficients[1:] {
		if c.Sign() < 0 || c.Cmp(f.prime) >= 0 {
			t.Errorf("coefficient %d out of field range", i+1)
		}
	}

	// The polynomial holds a copy; mutating the input must not affect it.
	secret.SetInt64(0)
	if poly.coefficients[0].Int64() != 1234567890 {
		t.Error("polynomial must copy the secret, not alias it")
	}
}

func TestPolynomialEvaluate(t *testing.T) {
	f := field{prime: big.NewInt(257)}

	t.Run("constant polynomial", func(t *testing.T) {
		poly := &polynomial{coefficients: []*big.Int{big.NewInt(42)}, field: f}
		for x := int64(0); x <= 10; x++ {
			if got := poly.evaluate(big.NewInt(x)); got.Int64() != 42 {
				t.Errorf("f(%d) = %d, want 42", x, got.Int64())
			}
		}
	})

	t.Run("known quadratic", func(t *testing.T) {
		// f(x) = 3 + 2x + x^2 mod 257
		poly := &polynomial{
			coefficients: []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(1)},
			field:        f,
		}
		cases := map[int64]int64{
			0: 3,
			1: 6,
			2: 11,
			5: 38,
			// f(16) = 3 + 32 + 256 = 291 = 34 mod 257
			16: 34,
		}
		for x, want := range cases {
			if got := poly.evaluate(big.NewInt(x)); got.Int64() != want {
				t.Errorf("f(%d) = %d, want %d", x, got.Int64(), want)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		poly, err := newRandomPolynomial(big.NewInt(99), 3, f)
		if err != nil {
			t.Fatalf("failed to create polynomial: %v", err)
		}
		x := big.NewInt(7)
		first := poly.evaluate(x)
		second := poly.evaluate(x)
		if first.Cmp(second) != 0 {
			t.Error("evaluation must be deterministic for fixed coefficients")
		}
	})

	t.Run("empty polynomial", func(t *testing.T) {
		poly := &polynomial{field: f}
		if got := poly.evaluate(big.NewInt(5)); got.Sign() != 0 {
			t.Errorf("empty polynomial evaluates to %v, want 0", got)
		}
	})
}

func TestPolynomialDestroy(t *testing.T) {
	f := field{prime: DefaultModulus()}
	poly, err := newRandomPolynomial(big.NewInt(424242), 3, f)
	if err != nil {
		t.Fatalf("failed to create polynomial: %v", err)
	}

	poly.destroy()

	for i, c := range poly.coefficients {
		if c.Sign() != 0 {
			t.Errorf("coefficient %d not zeroized", i)
		}
	}
}
