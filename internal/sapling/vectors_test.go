package sapling

import (
	"testing"

	"github.com/stretchr/testify/require"
	hex "github.com/tmthrgd/go-hex"

	"sapling/internal/jubjub"
)

// Vectors computed once by an independent implementation of the same formulas.
var scenario = struct {
	Ask, Rsk    string
	Ak, Rk      string
	Ivk         string
	Diversifier string
	G_d, PkD    string
	Value       uint64
	Rcm         string
	Cm          string
	CmPoint     string
	Nf          map[uint64]string
	Rcv         uint64
	Cv          string
}{
	Ask:         "000123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd",
	Rsk:         "0000fedcba9876543210fedcba9876543210fedcba9876543210fedcba987654",
	Ak:          "7e8ea956202362118f268460032542673a90edd4b380a34b730666aa08e1ac25",
	Rk:          "8e730cefe800c53cc2f089fc187eace3935d410147c543f3f5362590d61b7ba2",
	Ivk:         "00f5cbf4286656fb7a957992a7b874c7760b45091365ac953fba43c753d93eca",
	Diversifier: "0000000000000000000000",
	G_d:         "f109663f2351de3db935211d9712531adcee2ac99ecd4ebf2ce68f868e0a1e6c",
	PkD:         "9aab1c45d13417e3df764fe14f8e71b7381f2c2ab6ed3c0fd9a4cc825238e041",
	Value:       1000,
	Rcm:         "0000abcdef0123456789abcdef0123456789abcdef0123456789abcdef012345",
	Cm:          "4698ae10f3f2f711caa0c16c0ad29052c8b29209d07910bf2d1de3c5ead14ca6",
	CmPoint:     "8407fe4e0ba461944318a13f5fcdd2ff6b36369744607981edf61672a3148946",
	Nf: map[uint64]string{
		0:  "4b37e5a397b3cfca2ed953805769b120ab84e4efba3d2e3c4565d9c959a9410c",
		1:  "8b8bf164dd938f6db108d14f2fdedb82c0abb09ea044e18dd72a0127b52fecc1",
		42: "9f033ec3f24a14e11c091813c4f67a95f23c3ac033146c7d9b124726e47b7d06",
	},
	Rcv: 0x0123456789,
	Cv:  "360ef471de1a35fa09ee0ce54b23d693ec2ea871dac27ad25d1e9c1baa102a29",
}

func TestScenarioVectors(t *testing.T) {
	p := params(t)

	pgk := NewProofGenerationKey(mustFs(t, scenario.Ask), mustFs(t, scenario.Rsk), p)
	require.Equal(t, scenario.Ak, pgk.Ak.String())

	vk := pgk.IntoViewingKey(p)
	require.Equal(t, scenario.Ak, vk.Ak.String())
	require.Equal(t, scenario.Rk, vk.Rk.String())
	require.Equal(t, scenario.Ivk, vk.Ivk().String())

	var d Diversifier
	copy(d[:], mustHex(t, scenario.Diversifier))
	addr, ok := vk.IntoPaymentAddress(d, p)
	require.True(t, ok)
	require.Equal(t, scenario.PkD, addr.PkD.String())

	note, ok := addr.CreateNote(scenario.Value, mustFs(t, scenario.Rcm), p)
	require.True(t, ok)
	require.Equal(t, scenario.G_d, note.G_d.String())
	require.Equal(t, scenario.PkD, note.PkD.String())

	require.Equal(t, scenario.CmPoint, note.CmFullPoint(p).String())
	cm := note.Cm(p)
	cmBytes := cm.Bytes()
	require.Equal(t, scenario.Cm, hex.EncodeToString(cmBytes[:]))

	for position, expected := range scenario.Nf {
		require.Equal(t, expected, note.Nf(vk, position, p).String(), "position %d", position)
	}

	cv := ValueCommitment{Value: scenario.Value, Randomness: jubjub.FsFromUint64(scenario.Rcv)}.Cm(p)
	require.Equal(t, scenario.Cv, cv.String())
}
