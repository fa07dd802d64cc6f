// crypto.go - Personalizations and the PRFs shared by the key and note code.

package sapling

import (
	"fmt"
	"math/big"

	"sapling/internal/jubjub"
)

// Personalizations of the BLAKE2s invocations owned by this package.
var (
	// CRHIvkPersonalization derives ivk from (ak, rk).
	CRHIvkPersonalization = []byte("Zcashivk")
	// PRFNrPersonalization derives nr from (rk, cm + position·G_pos).
	PRFNrPersonalization = []byte("Zcash_nr")
	// KeyDiversificationPersonalization maps a diversifier to g_d.
	KeyDiversificationPersonalization = []byte("Zcash_gd")
)

// scalarDigestMask keeps the low 3 bits of the first digest byte, leaving a
// 251-bit big-endian integer.
const scalarDigestMask = 0b0000_0111

const prfPreimageLen = 2 * jubjub.PointBytes

// A 251-bit integer is a canonical scalar only if 2^251 <= r_J.
func init() {
	bound := new(big.Int).Lsh(big.NewInt(1), 251)
	if bound.Cmp(jubjub.Order()) > 0 {
		panic("sapling: masked digests do not fit the scalar field")
	}
}

// prfPoints hashes the encodings of a and b under personalization and turns the
// digest into a scalar.
func prfPoints(personalization []byte, a, b jubjub.Point) jubjub.Fs {
	preimage := make([]byte, 0, prfPreimageLen)
	preimage = a.AppendBytes(preimage)
	preimage = b.AppendBytes(preimage)
	if len(preimage) != prfPreimageLen {
		panic(fmt.Sprintf("sapling: prf preimage has %d bytes", len(preimage)))
	}
	return scalarFromDigest(jubjub.HashPersonalized(personalization, preimage))
}

// scalarFromDigest drops the top 5 bits of h and reads the rest as a big-endian
// scalar.
func scalarFromDigest(h [32]byte) jubjub.Fs {
	h[0] &= scalarDigestMask
	s, err := jubjub.FsFromBytes(h[:])
	if err != nil {
		panic(fmt.Errorf("sapling: masked digest is not a scalar: %w", err))
	}
	return s
}

// crhIvk computes ivk = CRH_ivk(ak, rk).
func crhIvk(ak, rk jubjub.Point) jubjub.Fs {
	return prfPoints(CRHIvkPersonalization, ak, rk)
}

// prfNr computes nr = PRF_nr(rk, cm + position·G_pos).
func prfNr(rk, cmPlusPosition jubjub.Point) jubjub.Fs {
	return prfPoints(PRFNrPersonalization, rk, cmPlusPosition)
}
