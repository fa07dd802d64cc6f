// circuit.go - In-circuit mirrors of the native formulas.
//
// These gadgets recompute, over the BLS12-381 scalar field, the same value
// commitment, rk derivation and value bit order as the native code. They fix
// the generator identities and bit order that a spend or output circuit has to
// agree with.

package sapling

import (
	"math/big"

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"sapling/internal/jubjub"
)

// ValueCommitmentCircuit proves knowledge of an opening (Value, Randomness) of
// the public commitment Cv, with Value in [0, 2^64).
type ValueCommitmentCircuit struct {
	Cv twistededwards.Point `gnark:",public"`

	Value      frontend.Variable
	Randomness frontend.Variable

	params *jubjub.Params
}

// NewValueCommitmentCircuit binds the circuit to the generators of params.
func NewValueCommitmentCircuit(params *jubjub.Params) *ValueCommitmentCircuit {
	return &ValueCommitmentCircuit{params: params}
}

func (c *ValueCommitmentCircuit) Define(api frontend.API) error {
	curve, err := twistededwards.NewEdCurve(api, tedwards.BLS12_381)
	if err != nil {
		return err
	}

	// Range check: the value is a u64.
	api.ToBinary(c.Value, 64)

	cv := curve.Add(
		curve.ScalarMul(CircuitPoint(c.params.Generator(jubjub.ValueCommitmentValue)), c.Value),
		curve.ScalarMul(CircuitPoint(c.params.Generator(jubjub.ValueCommitmentRandomness)), c.Randomness),
	)
	api.AssertIsEqual(cv.X, c.Cv.X)
	api.AssertIsEqual(cv.Y, c.Cv.Y)
	return nil
}

// ViewingKeyCircuit checks Rk = Rsk·G_pgk.
type ViewingKeyCircuit struct {
	Rk twistededwards.Point `gnark:",public"`

	Rsk frontend.Variable

	params *jubjub.Params
}

// NewViewingKeyCircuit binds the circuit to the generators of params.
func NewViewingKeyCircuit(params *jubjub.Params) *ViewingKeyCircuit {
	return &ViewingKeyCircuit{params: params}
}

func (c *ViewingKeyCircuit) Define(api frontend.API) error {
	curve, err := twistededwards.NewEdCurve(api, tedwards.BLS12_381)
	if err != nil {
		return err
	}
	curve.AssertIsOnCurve(c.Rk)

	rk := curve.ScalarMul(CircuitPoint(c.params.Generator(jubjub.ProofGenerationKey)), c.Rsk)
	api.AssertIsEqual(rk.X, c.Rk.X)
	api.AssertIsEqual(rk.Y, c.Rk.Y)
	return nil
}

// ValueBitsCircuit checks that Bits is the value prefix of the note
// commitment input.
type ValueBitsCircuit struct {
	Bits [64]frontend.Variable `gnark:",public"`

	Value frontend.Variable
}

func (c *ValueBitsCircuit) Define(api frontend.API) error {
	bits := ValueBitsMSB(api, c.Value)
	for i := range bits {
		api.AssertIsEqual(c.Bits[i], bits[i])
	}
	return nil
}

// ValueBitsMSB decomposes v into 64 bits, most significant first, as
// NoteContentsBitOrder requires.
func ValueBitsMSB(api frontend.API, v frontend.Variable) []frontend.Variable {
	bits := api.ToBinary(v, 64)
	out := make([]frontend.Variable, len(bits))
	for i, b := range bits {
		out[len(bits)-1-i] = b
	}
	return out
}

// CircuitPoint converts a native point into a circuit constant or assignment.
func CircuitPoint(p jubjub.Point) twistededwards.Point {
	x, y := p.X(), p.Y()
	return twistededwards.Point{
		X: x.BigInt(new(big.Int)),
		Y: y.BigInt(new(big.Int)),
	}
}
