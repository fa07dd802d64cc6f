package jubjub

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	hex "github.com/tmthrgd/go-hex"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncodingRoundTrip(t *testing.T) {
	p := params(t)
	for g := FixedGenerator(0); g < numFixedGenerators; g++ {
		for _, k := range []uint64{1, 2, 3, 1 << 40} {
			pt := p.Generator(g).MulUint64(k)
			enc := pt.Bytes()
			dec, err := DecodePoint(enc[:])
			require.NoError(t, err)
			require.True(t, dec.Equal(pt))
		}
	}

	id := Identity().Bytes()
	dec, err := DecodePoint(id[:])
	require.NoError(t, err)
	require.True(t, dec.IsIdentity())
}

func TestScalarMultiplicationVectors(t *testing.T) {
	g := params(t).Generator(SpendingKeyGenerator)
	require.Equal(t, "32b723d709d9ba86b35fb94e73bf4faf0239230df656613117a396107e7b6363", g.MulUint64(5).String())
	require.Equal(t, "601dd2aa5c26d9f1658346378cf8a4708a22de4217f11fcd3e09cd2f2d4af78f", g.MulUint64(^uint64(0)).String())
	require.True(t, g.Mul(FsFromUint64(5)).Equal(g.MulUint64(5)))
	require.True(t, g.MulUint64(0).IsIdentity())
	require.True(t, g.Mul(FsFromUint64(7)).Add(g.Mul(FsFromUint64(7)).Neg()).IsIdentity())
	require.True(t, g.Double().Equal(g.Add(g)))
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodePoint(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)

	tooLarge := bytes.Repeat([]byte{0xff}, PointBytes)
	tooLarge[PointBytes-1] = 0x7f
	_, err = DecodePoint(tooLarge)
	require.ErrorIs(t, err, ErrNotInField)

	_, err = DecodePoint(mustHex(t, "0200000000000000000000000000000000000000000000000000000000000000"))
	require.ErrorIs(t, err, ErrNotOnCurve)

	// (0, -1) has order 2.
	torsion := mustHex(t, "00000000fffffffffe5bfeff02a4bd5305d8a10908d83933487d9d2953a7ed73")
	_, err = DecodePoint(torsion)
	require.ErrorIs(t, err, ErrNotPrimeOrder)

	pt, err := decode(torsion)
	require.NoError(t, err)
	require.True(t, pt.IsOnCurve())
	require.True(t, pt.Double().IsIdentity())
	require.True(t, pt.MulByCofactor().IsIdentity())
}

func TestMulByCofactorClearsTorsion(t *testing.T) {
	torsion, err := decode(mustHex(t, "00000000fffffffffe5bfeff02a4bd5305d8a10908d83933487d9d2953a7ed73"))
	require.NoError(t, err)
	g := params(t).Generator(NullifierPosition)

	mixed := g.Add(torsion)
	require.False(t, mixed.IsPrimeOrder())
	require.True(t, mixed.MulByCofactor().IsPrimeOrder())
	require.True(t, mixed.MulByCofactor().Equal(g.MulUint64(Cofactor)))
}
