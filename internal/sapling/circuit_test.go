package sapling

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"sapling/internal/jubjub"
)

func TestValueCommitmentCircuit(t *testing.T) {
	p := params(t)
	field := ecc.BLS12_381.ScalarField()

	vc := ValueCommitment{Value: 1000, Randomness: randomFs(t)}

	assignment := NewValueCommitmentCircuit(p)
	assignment.Cv = CircuitPoint(vc.Cm(p))
	assignment.Value = vc.Value
	assignment.Randomness = vc.Randomness.BigInt()
	require.NoError(t, test.IsSolved(NewValueCommitmentCircuit(p), assignment, field))

	wrong := NewValueCommitmentCircuit(p)
	wrong.Cv = CircuitPoint(ValueCommitment{Value: 1001, Randomness: vc.Randomness}.Cm(p))
	wrong.Value = vc.Value
	wrong.Randomness = vc.Randomness.BigInt()
	require.Error(t, test.IsSolved(NewValueCommitmentCircuit(p), wrong, field))
}

func TestViewingKeyCircuit(t *testing.T) {
	p := params(t)
	field := ecc.BLS12_381.ScalarField()

	pgk := NewProofGenerationKey(randomFs(t), randomFs(t), p)
	vk := pgk.IntoViewingKey(p)

	assignment := NewViewingKeyCircuit(p)
	assignment.Rk = CircuitPoint(vk.Rk)
	assignment.Rsk = pgk.Rsk.BigInt()
	require.NoError(t, test.IsSolved(NewViewingKeyCircuit(p), assignment, field))

	assignment.Rsk = pgk.Rsk.Add(jubjub.FsFromUint64(1)).BigInt()
	require.Error(t, test.IsSolved(NewViewingKeyCircuit(p), assignment, field))
}

func TestValueBitsCircuit(t *testing.T) {
	field := ecc.BLS12_381.ScalarField()
	_, note := randomNote(t)
	note.Value = 0x8000_0000_dead_beef

	bits := note.ContentBits()[:64]
	var assignment ValueBitsCircuit
	assignment.Value = note.Value
	for i, b := range bits {
		if b {
			assignment.Bits[i] = 1
		} else {
			assignment.Bits[i] = 0
		}
	}
	require.NoError(t, test.IsSolved(&ValueBitsCircuit{}, &assignment, field))

	// Reversed order must not satisfy the circuit.
	var reversed ValueBitsCircuit
	reversed.Value = note.Value
	for i := range reversed.Bits {
		reversed.Bits[i] = assignment.Bits[63-i]
	}
	require.Error(t, test.IsSolved(&ValueBitsCircuit{}, &reversed, field))
}

var _ frontend.Circuit = (*ValueCommitmentCircuit)(nil)
var _ frontend.Circuit = (*ViewingKeyCircuit)(nil)
var _ frontend.Circuit = (*ValueBitsCircuit)(nil)
