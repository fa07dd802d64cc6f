// vectors.go - Evaluation of every core operation for one input case.
package main

import (
	"context"
	"fmt"

	hex "github.com/tmthrgd/go-hex"
	"golang.org/x/sync/errgroup"

	"sapling/internal/jubjub"
	"sapling/internal/sapling"
)

// Vector holds the outputs for one case. Points use the 32-byte point
// encoding, scalars and field elements 32-byte big-endian, all hex.
type Vector struct {
	Name             string            `json:"name"`
	Ak               string            `json:"ak"`
	Rk               string            `json:"rk"`
	Ivk              string            `json:"ivk"`
	Diversifier      string            `json:"diversifier"`
	DiversifierValid bool              `json:"diversifier_valid"`
	G_d              string            `json:"g_d,omitempty"`
	PkD              string            `json:"pk_d,omitempty"`
	Value            uint64            `json:"value"`
	Cv               string            `json:"cv"`
	Cm               string            `json:"cm,omitempty"`
	CmPoint          string            `json:"cm_point,omitempty"`
	Nullifiers       []NullifierVector `json:"nullifiers,omitempty"`
}

// NullifierVector is the nullifier of a case's note at one position.
type NullifierVector struct {
	Position uint64 `json:"position"`
	Nf       string `json:"nf"`
}

func decodeScalar(field, s string) (jubjub.Fs, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return jubjub.Fs{}, fmt.Errorf("%s: %w", field, err)
	}
	f, err := jubjub.FsFromBytes(b)
	if err != nil {
		return jubjub.Fs{}, fmt.Errorf("%s: %w", field, err)
	}
	return f, nil
}

// evaluate runs the whole derivation chain for c. A diversifier without a base
// point is not an error: the vector records it and stops after the keys.
func evaluate(c Case, params *jubjub.Params) (*Vector, error) {
	ask, err := decodeScalar("ask", c.Ask)
	if err != nil {
		return nil, err
	}
	rsk, err := decodeScalar("rsk", c.Rsk)
	if err != nil {
		return nil, err
	}
	rcm, err := decodeScalar("rcm", c.Rcm)
	if err != nil {
		return nil, err
	}
	rcv, err := decodeScalar("rcv", c.Rcv)
	if err != nil {
		return nil, err
	}
	db, err := hex.DecodeString(c.Diversifier)
	if err != nil {
		return nil, fmt.Errorf("diversifier: %w", err)
	}
	if len(db) != sapling.DiversifierLen {
		return nil, fmt.Errorf("diversifier: want %d bytes, got %d", sapling.DiversifierLen, len(db))
	}
	var d sapling.Diversifier
	copy(d[:], db)

	vk := sapling.NewProofGenerationKey(ask, rsk, params).IntoViewingKey(params)
	cv := sapling.ValueCommitment{Value: c.Value, Randomness: rcv}.Cm(params)
	v := &Vector{
		Name:        c.Name,
		Ak:          vk.Ak.String(),
		Rk:          vk.Rk.String(),
		Ivk:         vk.Ivk().String(),
		Diversifier: c.Diversifier,
		Value:       c.Value,
		Cv:          cv.String(),
	}

	addr, ok := vk.IntoPaymentAddress(d, params)
	if !ok {
		return v, nil
	}
	note, ok := addr.CreateNote(c.Value, rcm, params)
	if !ok {
		return v, nil
	}
	v.DiversifierValid = true
	v.G_d = note.G_d.String()
	v.PkD = note.PkD.String()

	cm := note.Cm(params)
	cmBytes := cm.Bytes()
	v.Cm = hex.EncodeToString(cmBytes[:])
	v.CmPoint = note.CmFullPoint(params).String()
	for _, pos := range c.Positions {
		v.Nullifiers = append(v.Nullifiers, NullifierVector{
			Position: pos,
			Nf:       note.Nf(vk, pos, params).String(),
		})
	}
	return v, nil
}

// evaluateAll evaluates the cases with at most limit running at once. Output
// order follows the input.
func evaluateAll(ctx context.Context, cases []Case, params *jubjub.Params, limit int) ([]*Vector, error) {
	out := make([]*Vector, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := evaluate(c, params)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}
			params.Logger().Debug().
				Str("case", c.Name).
				Bool("diversifier_valid", v.DiversifierValid).
				Msg("evaluated case")
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
