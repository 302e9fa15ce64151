package modexp

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// PowModVar returns (n^m) mod d computed by PowModHint. The result is an
// unconstrained witness; the caller is responsible for constraining it.
func PowModVar(api frontend.API, n, m, d frontend.Variable) frontend.Variable {
	out, err := api.Compiler().NewHint(PowModHint, 1, n, m, d)
	if err != nil {
		panic(fmt.Errorf("failed to initialize PowModHint instance: %s", err.Error()))
	}
	return out[0]
}
