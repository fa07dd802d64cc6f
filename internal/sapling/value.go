package sapling

import "sapling/internal/jubjub"

// ValueCommitment opens a commitment to a 64-bit value.
type ValueCommitment struct {
	Value      uint64
	Randomness jubjub.Fs
}

// Cm returns Value·G_v + Randomness·G_rcv. Value is used as a plain integer.
// Commitments add: Cm(v1, r1) + Cm(v2, r2) == Cm(v1+v2, r1+r2).
func (vc ValueCommitment) Cm(params *jubjub.Params) jubjub.Point {
	return params.Generator(jubjub.ValueCommitmentValue).
		MulUint64(vc.Value).
		Add(params.Generator(jubjub.ValueCommitmentRandomness).Mul(vc.Randomness))
}
