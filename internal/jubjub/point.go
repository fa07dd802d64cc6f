// point.go - Jubjub points and their canonical 32-byte encoding.

package jubjub

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	hex "github.com/tmthrgd/go-hex"
)

// PointBytes is the size of an encoded point.
const PointBytes = 32

// Cofactor of the Jubjub curve.
const Cofactor = 8

var curveD = twistededwards.GetEdwardsCurve().D

// Point is an affine Jubjub point. Points are values: every operation returns
// a new Point and leaves its operands untouched.
type Point struct {
	p twistededwards.PointAffine
}

// Identity returns the neutral element (0, 1).
func Identity() Point {
	var p Point
	p.p.X.SetZero()
	p.p.Y.SetOne()
	return p
}

func (p Point) Add(q Point) Point {
	var r Point
	r.p.Add(&p.p, &q.p)
	return r
}

func (p Point) Neg() Point {
	var r Point
	r.p.Neg(&p.p)
	return r
}

func (p Point) Double() Point {
	var r Point
	r.p.Double(&p.p)
	return r
}

// Mul returns s·p.
func (p Point) Mul(s Fs) Point {
	return p.mulBig(s.BigInt())
}

// MulUint64 returns v·p with v taken as a plain integer, not reduced mod r_J.
func (p Point) MulUint64(v uint64) Point {
	return p.mulBig(new(big.Int).SetUint64(v))
}

func (p Point) mulBig(k *big.Int) Point {
	if k.Sign() == 0 {
		return Identity()
	}
	var r Point
	r.p.ScalarMultiplication(&p.p, k)
	return r
}

// MulByCofactor returns 8·p, which always lies in the prime-order subgroup.
func (p Point) MulByCofactor() Point {
	return p.Double().Double().Double()
}

func (p Point) IsIdentity() bool {
	return p.p.IsZero()
}

// IsPrimeOrder reports whether p lies in the prime-order subgroup, identity
// included.
func (p Point) IsPrimeOrder() bool {
	return p.mulBig(order).IsIdentity()
}

func (p Point) IsOnCurve() bool {
	return p.p.IsOnCurve()
}

func (p Point) Equal(q Point) bool {
	return p.p.Equal(&q.p)
}

// X returns the u coordinate.
func (p Point) X() fr.Element {
	return p.p.X
}

// Y returns the v coordinate.
func (p Point) Y() fr.Element {
	return p.p.Y
}

// Bytes returns the canonical encoding of p.
func (p Point) Bytes() [PointBytes]byte {
	var out [PointBytes]byte
	y := p.p.Y.Bytes()
	for i := range y {
		out[i] = y[len(y)-1-i]
	}
	if isOdd(&p.p.X) {
		out[PointBytes-1] |= 0x80
	}
	return out
}

// AppendBytes appends the canonical encoding of p to dst.
func (p Point) AppendBytes(dst []byte) []byte {
	b := p.Bytes()
	return append(dst, b[:]...)
}

func (p Point) String() string {
	b := p.Bytes()
	return hex.EncodeToString(b[:])
}

// DecodePoint reads a canonical encoding and checks that the point lies in the
// prime-order subgroup.
func DecodePoint(b []byte) (Point, error) {
	p, err := decode(b)
	if err != nil {
		return Point{}, err
	}
	if !p.IsPrimeOrder() {
		return Point{}, ErrNotPrimeOrder
	}
	return p, nil
}

// decode recovers u from v and the sign bit. The result may have a small-order
// component.
func decode(b []byte) (Point, error) {
	if len(b) != PointBytes {
		return Point{}, fmt.Errorf("%w: point has %d bytes", ErrInvalidLength, len(b))
	}
	var be [PointBytes]byte
	for i := range be {
		be[i] = b[PointBytes-1-i]
	}
	sign := be[0]>>7 == 1
	be[0] &= 0x7f

	v := new(big.Int).SetBytes(be[:])
	if v.Cmp(fr.Modulus()) >= 0 {
		return Point{}, ErrNotInField
	}

	var p Point
	p.p.Y.SetBigInt(v)

	// u^2 = (v^2 - 1) / (d*v^2 + 1)
	var y2, num, den, one fr.Element
	one.SetOne()
	y2.Square(&p.p.Y)
	num.Sub(&y2, &one)
	den.Mul(&y2, &curveD).Add(&den, &one)
	if den.IsZero() {
		return Point{}, ErrNotOnCurve
	}
	den.Inverse(&den)
	num.Mul(&num, &den)
	if p.p.X.Sqrt(&num) == nil {
		return Point{}, ErrNotOnCurve
	}
	if isOdd(&p.p.X) != sign {
		p.p.X.Neg(&p.p.X)
	}
	return p, nil
}

// isOdd looks at the least significant bit of the canonical representative.
func isOdd(e *fr.Element) bool {
	b := e.Bytes()
	return b[len(b)-1]&1 == 1
}
