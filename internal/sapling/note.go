// note.go - Note type, note commitment and nullifier.
//
// A Note is the spendable unit: a value sent to a (g_d, pk_d) address, blinded
// by the commitment randomness r. Its commitment is published when the note is
// created and its nullifier when it is spent.

package sapling

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"sapling/internal/jubjub"
	"sapling/internal/pedersen"
)

// NoteContentsLen is the size of the serialized note contents:
// value (8 bytes, big-endian) || g_d (32 bytes) || pk_d (32 bytes).
const NoteContentsLen = 8 + 2*jubjub.PointBytes

// NoteContentsLayoutVersion identifies the byte layout above together with
// NoteContentsBitOrder. Circuits that recompute the commitment must follow
// the same version.
const NoteContentsLayoutVersion = 1

// BitOrder describes how a byte string becomes the bit sequence that is fed to
// the Pedersen hash.
type BitOrder int

const (
	// MSBFirst walks the bytes in order and each byte from bit 7 down to bit 0.
	MSBFirst BitOrder = iota + 1
)

// NoteContentsBitOrder is the bit order of the note commitment input.
const NoteContentsBitOrder = MSBFirst

// Bits expands buf in order o.
func (o BitOrder) Bits(buf []byte) []bool {
	switch o {
	case MSBFirst:
		return pedersen.BitsMSB(buf)
	default:
		panic(fmt.Sprintf("sapling: unknown bit order %d", int(o)))
	}
}

// Note represents a spendable amount owned by a payment address.
type Note struct {
	Value uint64       // The value of the note
	G_d   jubjub.Point // The diversified base of the address, GH(d)
	PkD   jubjub.Point // The public key of the address, ivk·g_d
	R     jubjub.Fs    // The commitment randomness
}

// Uncommitted returns the u coordinate used for empty commitment tree leaves.
// 1 is the smallest u coordinate with no point on the curve.
func Uncommitted() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

// Contents returns the serialized note contents hashed by the commitment.
func (n Note) Contents() []byte {
	buf := make([]byte, 0, NoteContentsLen)
	buf = binary.BigEndian.AppendUint64(buf, n.Value)
	buf = n.G_d.AppendBytes(buf)
	buf = n.PkD.AppendBytes(buf)
	if len(buf) != NoteContentsLen {
		panic(fmt.Sprintf("sapling: note contents have %d bytes", len(buf)))
	}
	return buf
}

// ContentBits returns the exact bit sequence hashed by the commitment.
func (n Note) ContentBits() []bool {
	return NoteContentsBitOrder.Bits(n.Contents())
}

// CmFullPoint computes the note commitment point
// r·G_rcm + PedersenHash(NoteCommitment, contents).
func (n Note) CmFullPoint(params *jubjub.Params) jubjub.Point {
	hashOfContents := pedersen.Hash(pedersen.NoteCommitment, n.ContentBits(), params)
	return params.Generator(jubjub.NoteCommitmentRandomness).
		Mul(n.R).
		Add(hashOfContents)
}

// Cm computes the note commitment. The commitment point is in the prime-order
// subgroup, so keeping only its u coordinate is an injective encoding.
func (n Note) Cm(params *jubjub.Params) fr.Element {
	return n.CmFullPoint(params).X()
}

// Nf computes the nullifier of the note at the given position in the
// commitment tree: ak·PRF_nr(rk, cm + position·G_pos).
func (n Note) Nf(vk ViewingKey, position uint64, params *jubjub.Params) jubjub.Point {
	cmPlusPosition := n.CmFullPoint(params).Add(
		params.Generator(jubjub.NullifierPosition).MulUint64(position),
	)
	return vk.Ak.Mul(prfNr(vk.Rk, cmPlusPosition))
}
