package modexp

import (
	"math/big"
	"os"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPowModHint(t *testing.T) {
	out := []*big.Int{new(big.Int)}
	err := PowModHint(nil, []*big.Int{big.NewInt(2), big.NewInt(10), big.NewInt(1000)}, out)
	require.NoError(t, err)
	require.Equal(t, int64(24), out[0].Int64())

	err = PowModHint(nil, []*big.Int{big.NewInt(9), new(big.Int), big.NewInt(1)}, out)
	require.NoError(t, err)
	require.Equal(t, 0, out[0].Sign())
}

func TestPowModHintWideOperands(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(3), 90)
	m := big.NewInt(65537)
	d := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(45))
	out := []*big.Int{nil}
	require.NoError(t, PowModHint(ecc.BN254.ScalarField(), []*big.Int{n, m, d}, out))
	require.Equal(t, 0, out[0].Cmp(new(big.Int).Exp(n, m, d)))
}

func TestPowModHintInvalidInput(t *testing.T) {
	one := big.NewInt(1)
	out := []*big.Int{new(big.Int)}

	require.Error(t, PowModHint(nil, []*big.Int{one, one}, out))
	require.Error(t, PowModHint(nil, []*big.Int{one, one, one}, []*big.Int{}))
	require.Error(t, PowModHint(nil, []*big.Int{big.NewInt(-2), one, big.NewInt(5)}, out))

	err := PowModHint(nil, []*big.Int{one, one, new(big.Int)}, out)
	require.ErrorIs(t, err, ErrZeroModulus)
}

func TestGetHints(t *testing.T) {
	hints := GetHints()
	require.Len(t, hints, 1)
	require.Equal(t, solver.GetHintName(PowModHint), solver.GetHintName(hints[0]))

	var registered bool
	for _, h := range solver.GetRegisteredHints() {
		if solver.GetHintName(h) == solver.GetHintName(PowModHint) {
			registered = true
		}
	}
	require.True(t, registered)
}

type powModCircuit struct {
	N, M, D  frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *powModCircuit) Define(api frontend.API) error {
	r := PowModVar(api, c.N, c.M, c.D)
	api.AssertIsEqual(r, c.Expected)
	return nil
}

func TestPowModVar(t *testing.T) {
	logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger())

	cases := [][3]uint64{
		{16, 12, 97},
		{2, 1 << 40, 400_000_007},
		{12345678901, 987654321, 1<<61 - 1},
		{7, 0, 1},
	}
	for _, c := range cases {
		expected := PowMod(c[0], c[1], c[2])
		circuit := &powModCircuit{N: c[0], M: c[1], D: c[2], Expected: expected}
		assignment := &powModCircuit{N: c[0], M: c[1], D: c[2], Expected: expected}
		err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField())
		require.NoError(t, err, "n=%d m=%d d=%d", c[0], c[1], c[2])
	}
}

func TestPowModVarWrongResult(t *testing.T) {
	circuit := &powModCircuit{N: 2, M: 10, D: 1000, Expected: 24}
	assignment := &powModCircuit{N: 2, M: 10, D: 1000, Expected: 25}
	err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField())
	require.Error(t, err)
}
