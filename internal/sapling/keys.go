// keys.go - Proof generation key, viewing key, diversifier and payment address.

package sapling

import "sapling/internal/jubjub"

// DiversifierLen is the size of a diversifier.
const DiversifierLen = 11

// ProofGenerationKey lets its holder build spend proofs.
type ProofGenerationKey struct {
	Ak  jubjub.Point
	Rsk jubjub.Fs
}

// NewProofGenerationKey derives ak = ask·G_spend and pairs it with rsk.
func NewProofGenerationKey(ask, rsk jubjub.Fs, params *jubjub.Params) ProofGenerationKey {
	return ProofGenerationKey{
		Ak:  params.Generator(jubjub.SpendingKeyGenerator).Mul(ask),
		Rsk: rsk,
	}
}

// IntoViewingKey computes rk = rsk·G_pgk; ak is carried over.
func (k ProofGenerationKey) IntoViewingKey(params *jubjub.Params) ViewingKey {
	return ViewingKey{
		Ak: k.Ak,
		Rk: params.Generator(jubjub.ProofGenerationKey).Mul(k.Rsk),
	}
}

// ViewingKey lets its holder detect incoming notes and compute nullifiers.
type ViewingKey struct {
	Ak jubjub.Point
	Rk jubjub.Point
}

// Ivk returns the incoming viewing scalar CRH_ivk(ak, rk).
func (vk ViewingKey) Ivk() jubjub.Fs {
	return crhIvk(vk.Ak, vk.Rk)
}

// IntoPaymentAddress derives pk_d = ivk·g_d for diversifier d. ok is false
// when d has no diversified base.
func (vk ViewingKey) IntoPaymentAddress(d Diversifier, params *jubjub.Params) (addr PaymentAddress, ok bool) {
	gd, ok := d.G_d(params)
	if !ok {
		return PaymentAddress{}, false
	}
	return PaymentAddress{
		PkD:         gd.Mul(vk.Ivk()),
		Diversifier: d,
	}, true
}

// Diversifier selects one of the unlinkable addresses of a viewing key.
type Diversifier [DiversifierLen]byte

// G_d returns the diversified base GH(d). Roughly half of all diversifiers have
// none; the wallet is expected to try another one.
func (d Diversifier) G_d(params *jubjub.Params) (jubjub.Point, bool) {
	gd, ok := jubjub.GroupHash(d[:], KeyDiversificationPersonalization)
	if !ok {
		params.Logger().Debug().Hex("diversifier", d[:]).Msg("diversifier has no base point")
	}
	return gd, ok
}

// PaymentAddress is the public destination of a note.
type PaymentAddress struct {
	PkD         jubjub.Point
	Diversifier Diversifier
}

// G_d recomputes the diversified base of the address.
func (a PaymentAddress) G_d(params *jubjub.Params) (jubjub.Point, bool) {
	return a.Diversifier.G_d(params)
}

// CreateNote builds a note of the given value to this address. ok is false
// when the diversifier has no base point.
func (a PaymentAddress) CreateNote(value uint64, randomness jubjub.Fs, params *jubjub.Params) (Note, bool) {
	gd, ok := a.G_d(params)
	if !ok {
		return Note{}, false
	}
	return Note{
		Value: value,
		G_d:   gd,
		PkD:   a.PkD,
		R:     randomness,
	}, true
}
