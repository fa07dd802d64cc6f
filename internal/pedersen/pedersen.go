// Package pedersen implements the windowed Pedersen hash from bit strings to
// Jubjub points.
//
// The input is split into 3-bit chunks (a, b, c). Chunk j of a segment
// contributes (1 + a + 2b)·(1 - 2c)·2^(4j) to that segment's scalar, each
// segment covers jubjub.PedersenChunksPerGenerator chunks, and the hash is the
// sum over segments of scalar·generator. A short final chunk is padded with
// zero bits. The output always lies in the prime-order subgroup.
package pedersen

import (
	"fmt"

	"sapling/internal/jubjub"
)

type kind int

const (
	noteCommitment kind = iota
	merkleTree
)

// Personalization is the domain separator prepended to every hash input.
type Personalization struct {
	kind  kind
	depth uint
}

// NoteCommitment separates note commitments from every Merkle tree level.
var NoteCommitment = Personalization{kind: noteCommitment}

// MerkleTreeDepthLimit bounds MerkleTree; 63 is the all-ones pattern reserved
// for note commitments.
const MerkleTreeDepthLimit = 63

// MerkleTree separates the hash of tree nodes at the given depth.
func MerkleTree(depth uint) Personalization {
	if depth >= MerkleTreeDepthLimit {
		panic(fmt.Sprintf("pedersen: merkle tree depth %d out of range", depth))
	}
	return Personalization{kind: merkleTree, depth: depth}
}

// Bits returns the 6 personalization bits.
func (p Personalization) Bits() []bool {
	bits := make([]bool, 6)
	switch p.kind {
	case noteCommitment:
		for i := range bits {
			bits[i] = true
		}
	case merkleTree:
		for i := range bits {
			bits[i] = (p.depth>>i)&1 == 1
		}
	}
	return bits
}

// Hash computes the Pedersen hash of bits under personalization p. It panics
// if params does not carry enough generators for the input length.
func Hash(p Personalization, bits []bool, params *jubjub.Params) jubjub.Point {
	input := append(p.Bits(), bits...)
	generators := params.PedersenHashGenerators()
	chunksPerGenerator := params.PedersenHashChunksPerGenerator()

	result := jubjub.Identity()
	for segment := 0; len(input) > 0; segment++ {
		if segment >= len(generators) {
			panic(fmt.Sprintf("pedersen: %d generators cannot absorb %d bits", len(generators), len(bits)+6))
		}

		var acc jubjub.Fs
		cur := jubjub.FsFromUint64(1)
		for chunk := 0; chunk < chunksPerGenerator && len(input) > 0; chunk++ {
			a, b, c := bitAt(input, 0), bitAt(input, 1), bitAt(input, 2)
			input = input[min(3, len(input)):]

			tmp := cur
			if a {
				tmp = tmp.Add(cur)
			}
			cur = cur.Double()
			if b {
				tmp = tmp.Add(cur)
			}
			if c {
				tmp = tmp.Neg()
			}
			acc = acc.Add(tmp)
			cur = cur.Double().Double().Double()
		}
		result = result.Add(generators[segment].Mul(acc))
	}
	return result
}

func bitAt(bits []bool, i int) bool {
	return i < len(bits) && bits[i]
}

// BitsMSB expands buf into bits, bytes in order and each byte from its most
// significant bit down.
func BitsMSB(buf []byte) []bool {
	bits := make([]bool, 0, 8*len(buf))
	for _, b := range buf {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1 == 1)
		}
	}
	return bits
}
