package modexp

import (
	"github.com/holiman/uint256"
)

// Width is the integer width carrying a single PowMod computation.
type Width int

const (
	// Narrow computes in native uint64 arithmetic.
	Narrow Width = iota
	// Wide widens the operands to 256 bits and narrows the result back.
	Wide
)

func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// Bounds of the narrow path. Every intermediate k is a residue mod d, so the
// largest product is k*k*n <= (4e8-1)^2 * 99 < 1.584e19 < 2^64.
const (
	NarrowBaseLimit    = 100
	NarrowModulusLimit = 400_000_000
)

// SelectWidth decides which width computes (n^m) mod d without overflowing.
// The wide path holds k*k*n < 2^192 for any uint64 operands, so it is always
// safe; the narrow path is only picked when the bound above holds.
func SelectWidth(n, d uint64) Width {
	if n < NarrowBaseLimit && d < NarrowModulusLimit {
		return Narrow
	}
	return Wide
}

// word is the arithmetic powMod needs from a width. of ignores its receiver
// and converts a small constant into the width.
type word[T any] interface {
	mul(T) T
	quo(T) T
	rem(T) T
	equal(T) bool
	of(uint64) T
}

type narrow uint64

func (a narrow) mul(b narrow) narrow { return a * b }
func (a narrow) quo(b narrow) narrow { return a / b }
func (a narrow) rem(b narrow) narrow { return a % b }
func (a narrow) equal(b narrow) bool { return a == b }
func (narrow) of(v uint64) narrow    { return narrow(v) }

type wide struct {
	v uint256.Int
}

func widen(v uint64) wide {
	var w wide
	w.v.SetUint64(v)
	return w
}

func (a wide) mul(b wide) wide {
	var z wide
	z.v.Mul(&a.v, &b.v)
	return z
}

func (a wide) quo(b wide) wide {
	var z wide
	z.v.Div(&a.v, &b.v)
	return z
}

func (a wide) rem(b wide) wide {
	var z wide
	z.v.Mod(&a.v, &b.v)
	return z
}

func (a wide) equal(b wide) bool { return a.v.Eq(&b.v) }

func (wide) of(v uint64) wide { return widen(v) }
