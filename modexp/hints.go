package modexp

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark/constraint/solver"
)

var registerOnce sync.Once

func init() {
	registerOnce.Do(registerHints)
}

func registerHints() {
	solver.RegisterHint(GetHints()...)
}

func GetHints() []solver.Hint {
	return []solver.Hint{PowModHint}
}

// PowModHint computes out[0] = (in[0]^in[1]) mod in[2]. Operands that fit in
// 64 bits go through PowMod, wider ones through PowModBig.
func PowModHint(_ *big.Int, in, out []*big.Int) error {
	if len(in) != 3 {
		return fmt.Errorf("PowModHint: input len must be 3")
	}
	if len(out) != 1 {
		return fmt.Errorf("PowModHint: output len must be 1")
	}
	n, m, d := in[0], in[1], in[2]
	for _, v := range in {
		if v.Sign() < 0 {
			return fmt.Errorf("PowModHint: negative input %s", v)
		}
	}
	if d.Sign() == 0 {
		return fmt.Errorf("PowModHint: %w", ErrZeroModulus)
	}
	if out[0] == nil {
		out[0] = new(big.Int)
	}
	if n.IsUint64() && m.IsUint64() && d.IsUint64() {
		out[0].SetUint64(PowMod(n.Uint64(), m.Uint64(), d.Uint64()))
		return nil
	}
	out[0].Set(PowModBig(n, m, d))
	return nil
}
