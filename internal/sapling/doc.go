// Package sapling implements the note, key and commitment algebra of a shielded
// value-transfer protocol over the Jubjub curve.
//
// Overview:
//   - ValueCommitment: homomorphic commitment cv = v·G_v + rcv·G_rcv
//   - Key hierarchy: ProofGenerationKey -> ViewingKey -> ivk -> PaymentAddress
//   - Diversifier: 11 bytes group-hashed to the diversified base g_d
//   - Note: commitment cm (u coordinate of a Pedersen commitment) and nullifier
//     nf = nr·ak with nr = PRF_nr(rk, cm + position·G_pos)
//
// Every function is a pure computation over its arguments and a shared,
// read-only *jubjub.Params; callers may invoke them from any number of
// goroutines. Commitments and nullifiers are recomputed on demand, never cached.
//
// Error model:
//   - A diversifier that does not hash to a point is an expected outcome and is
//     reported as ok == false by G_d, IntoPaymentAddress and CreateNote.
//   - A PRF digest that fails to decode as a scalar, or a serialized buffer of
//     the wrong length, breaks an internal invariant and panics.
//
// The same formulas are evaluated inside arithmetic circuits (see circuit.go);
// the byte layout and bit order of the note contents, the personalizations and
// the generator identities are part of that contract.
package sapling
