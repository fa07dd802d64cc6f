package sapling

import (
	"crypto/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	hex "github.com/tmthrgd/go-hex"

	"sapling/internal/jubjub"
)

var testParams = sync.OnceValues(func() (*jubjub.Params, error) {
	return jubjub.NewParams()
})

func params(t testing.TB) *jubjub.Params {
	t.Helper()
	p, err := testParams()
	require.NoError(t, err)
	return p
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustFs(t testing.TB, s string) jubjub.Fs {
	t.Helper()
	f, err := jubjub.FsFromBytes(mustHex(t, s))
	require.NoError(t, err)
	return f
}

func randomFs(t testing.TB) jubjub.Fs {
	t.Helper()
	f, err := jubjub.RandomFs(rand.Reader)
	require.NoError(t, err)
	return f
}

// randomAddress returns a viewing key and an address with a valid diversifier.
func randomAddress(t testing.TB) (ViewingKey, PaymentAddress) {
	t.Helper()
	p := params(t)
	vk := NewProofGenerationKey(randomFs(t), randomFs(t), p).IntoViewingKey(p)
	for {
		var d Diversifier
		_, err := rand.Read(d[:])
		require.NoError(t, err)
		if addr, ok := vk.IntoPaymentAddress(d, p); ok {
			return vk, addr
		}
	}
}

func randomNote(t testing.TB) (ViewingKey, Note) {
	t.Helper()
	vk, addr := randomAddress(t)
	var v [8]byte
	_, err := rand.Read(v[:])
	require.NoError(t, err)
	note, ok := addr.CreateNote(uint64(v[0])<<8|uint64(v[1]), randomFs(t), params(t))
	require.True(t, ok)
	return vk, note
}
