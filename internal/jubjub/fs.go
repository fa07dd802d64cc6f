// fs.go - Scalars modulo the order of the Jubjub prime-order subgroup.

package jubjub

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	hex "github.com/tmthrgd/go-hex"
)

// FsBytes is the size of an encoded scalar.
const FsBytes = 32

// FsBits is the bit length of r_J.
const FsBits = 252

var order = func() *big.Int {
	params := twistededwards.GetEdwardsCurve()
	return new(big.Int).Set(&params.Order)
}()

// Order returns r_J, the order of the prime-order subgroup.
func Order() *big.Int {
	return new(big.Int).Set(order)
}

// Fs is an element of the scalar field of the prime-order subgroup, kept in
// canonical big-endian form. The zero value is the scalar 0.
type Fs [FsBytes]byte

// FsFromUint64 returns v as a scalar.
func FsFromUint64(v uint64) Fs {
	return fsFromBig(new(big.Int).SetUint64(v))
}

// FsFromBigInt reduces v modulo r_J.
func FsFromBigInt(v *big.Int) Fs {
	return fsFromBig(new(big.Int).Mod(v, order))
}

// FsFromBytes decodes a canonical 32-byte big-endian scalar.
func FsFromBytes(b []byte) (Fs, error) {
	if len(b) != FsBytes {
		return Fs{}, fmt.Errorf("%w: scalar has %d bytes", ErrInvalidLength, len(b))
	}
	if new(big.Int).SetBytes(b).Cmp(order) >= 0 {
		return Fs{}, ErrNonCanonicalScalar
	}
	var s Fs
	copy(s[:], b)
	return s, nil
}

// RandomFs draws a uniformly distributed scalar from r. 64 bytes are read and
// reduced so the bias is negligible.
func RandomFs(r io.Reader) (Fs, error) {
	var wide [2 * FsBytes]byte
	if _, err := io.ReadFull(r, wide[:]); err != nil {
		return Fs{}, fmt.Errorf("jubjub: reading scalar randomness: %w", err)
	}
	return FsFromBigInt(new(big.Int).SetBytes(wide[:])), nil
}

// fsFromBig expects 0 <= v < r_J.
func fsFromBig(v *big.Int) Fs {
	var s Fs
	v.FillBytes(s[:])
	return s
}

// BigInt returns the scalar as a new big.Int.
func (s Fs) BigInt() *big.Int {
	return new(big.Int).SetBytes(s[:])
}

func (s Fs) Add(t Fs) Fs {
	v := s.BigInt()
	v.Add(v, t.BigInt())
	return FsFromBigInt(v)
}

func (s Fs) Sub(t Fs) Fs {
	v := s.BigInt()
	v.Sub(v, t.BigInt())
	return FsFromBigInt(v)
}

func (s Fs) Mul(t Fs) Fs {
	v := s.BigInt()
	v.Mul(v, t.BigInt())
	return FsFromBigInt(v)
}

func (s Fs) Neg() Fs {
	return Fs{}.Sub(s)
}

func (s Fs) Double() Fs {
	return s.Add(s)
}

func (s Fs) IsZero() bool {
	return s == Fs{}
}

func (s Fs) Equal(t Fs) bool {
	return s == t
}

// Bytes returns the canonical big-endian encoding.
func (s Fs) Bytes() [FsBytes]byte {
	return s
}

func (s Fs) String() string {
	return hex.EncodeToString(s[:])
}
