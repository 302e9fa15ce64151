// Package modexp computes (n^m) mod d for digit-extraction series, picking
// native 64-bit arithmetic when it cannot overflow and a 256-bit intermediate
// otherwise.
package modexp

import (
	"errors"
	"math/big"
)

// ErrZeroModulus is the precondition violation of calling PowMod with d = 0.
var ErrZeroModulus = errors.New("modexp: zero modulus")

// PowMod returns (n^m) mod d. By convention n^0 mod 1 is 0. PowMod panics
// with ErrZeroModulus if d is 0; use CheckedPowMod for unvalidated input.
func PowMod(n, m, d uint64) uint64 {
	if d == 0 {
		panic(ErrZeroModulus)
	}
	return powModWidth(SelectWidth(n, d), n, m, d)
}

// CheckedPowMod is PowMod returning ErrZeroModulus instead of panicking.
func CheckedPowMod(n, m, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrZeroModulus
	}
	return powModWidth(SelectWidth(n, d), n, m, d), nil
}

func powModWidth(w Width, n, m, d uint64) uint64 {
	if w == Narrow {
		return uint64(powMod(narrow(n), narrow(m), narrow(d)))
	}
	r := powMod(widen(n), widen(m), widen(d))
	// r < d, so narrowing is lossless
	return r.v.Uint64()
}

// powMod is exponentiation by squaring with recursion depth log2(m). k is
// always reduced mod d, so the widest product is k*k*n.
func powMod[T word[T]](n, m, d T) T {
	var w T
	zero, one, two := w.of(0), w.of(1), w.of(2)
	switch {
	case m.equal(zero):
		if d.equal(one) {
			return zero
		}
		return one
	case m.equal(one):
		return n.rem(d)
	}
	k := powMod(n, m.quo(two), d)
	if m.rem(two).equal(zero) {
		return k.mul(k).rem(d)
	}
	return k.mul(k).mul(n).rem(d)
}

// PowModBig is the arbitrary precision counterpart of PowMod with the same
// conventions. It panics with ErrZeroModulus if d is 0. The inputs must be
// non-negative.
func PowModBig(n, m, d *big.Int) *big.Int {
	if d.Sign() == 0 {
		panic(ErrZeroModulus)
	}
	if m.Sign() == 0 {
		if d.Cmp(big.NewInt(1)) == 0 {
			return new(big.Int)
		}
		return big.NewInt(1)
	}
	return new(big.Int).Exp(n, m, d)
}
