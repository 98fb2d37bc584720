// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.

package shamir

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestFieldArithmetic(t *testing.T) {
	f := field{prime: big.NewInt(17)}

	t.Run("addition wraps", func(t *testing.T) {
		if got := f.add(big.NewInt(16), big.NewInt(5)); got.Int64() != 4 {
			t.Errorf("16 + 5 mod 17 = %d, want 4", got.Int64())
		}
	})

	t.Run("subtraction stays non-negative", func(t *testing.T) {
		if got := f.sub(big.NewInt(3), big.NewInt(5)); got.Int64() != 15 {
			t.Errorf("3 - 5 mod 17 = %d, want 15", got.Int64())
		}
	})

	t.Run("multiplication wraps", func(t *testing.T) {
		if got := f.mul(big.NewInt(6), big.NewInt(6)); got.Int64() != 2 {
			t.Errorf("6 * 6 mod 17 = %d, want 2", got.Int64())
		}
	})

	t.Run("negation", func(t *testing.T) {
		if got := f.neg(big.NewInt(5)); got.Int64() != 12 {
			t.Errorf("-5 mod 17 = %d, want 12", got.Int64())
		}
		if got := f.neg(big.NewInt(0)); got.Int64() != 0 {
			t.Errorf("-0 mod 17 = %d, want 0", got.Int64())
		}
	})

	t.Run("inverse property", func(t *testing.T) {
		for a := int64(1); a < 17; a++ {
			inv := f.inverse(big.NewInt(a))
			if inv == nil {
				t.Fatalf("inverse of %d is nil", a)
			}
			if product := f.mul(big.NewInt(a), inv); product.Int64() != 1 {
				t.Errorf("%d * %d mod 17 = %d, want 1", a, inv.Int64(), product.Int64())
			}
		}
	})

	t.Run("zero has no inverse", func(t *testing.T) {
		if inv := f.inverse(big.NewInt(0)); inv != nil {
			t.Errorf("inverse of 0 = %v, want nil", inv)
		}
	})

	t.Run("multiple of prime has no inverse", func(t *testing.T) {
		if inv := f.inverse(big.NewInt(34)); inv != nil {
			t.Errorf("inverse of 34 mod 17 = %v, want nil", inv)
		}
	})
}

func TestFieldRandom(t *testing.T) {
	f := field{prime: big.NewInt(17)}

	for i := 0; i < 100; i++ {
		v, err := f.random(rand.Reader)
		if err != nil {
			t.Fatalf("random draw failed: %v", err)
		}
		if v.Sign() < 0 || v.Cmp(f.prime) >= 0 {
			t.Fatalf("random element %v out of [0, 17)", v)
		}
	}
}

func TestWipe(t *testing.T) {
	v := new(big.Int).SetBytes([]byte("sensitive coefficient"))
	bits := v.Bits()

	wipe(v)

	if v.Sign() != 0 {
		t.Error("wiped value is not zero")
	}
	for i, limb := range bits {
		if limb != 0 {
			t.Errorf("limb %d not cleared", i)
		}
	}

	// nil entries are tolerated
	wipe(nil, v)
}

func BenchmarkFieldOperations(b *testing.B) {
	f := field{prime: DefaultModulus()}
	a, _ := f.random(rand.Reader)
	c, _ := f.random(rand.Reader)

	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = f.mul(a, c)
		}
	})

	b.Run("Inverse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = f.inverse(a)
		}
	})
}
