// batch.go - Parallel evaluation of commitments and nullifiers.
//
// Notes share no state, so each one is handled by its own goroutine, bounded by
// GOMAXPROCS. Results keep the input order.

package sapling

import (
	"context"
	"errors"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"sapling/internal/jubjub"
)

// ErrLengthMismatch is returned when notes and positions differ in length.
var ErrLengthMismatch = errors.New("sapling: notes and positions differ in length")

// Commitments computes Cm for every note. It stops early and returns the
// context error if ctx is cancelled.
func Commitments(ctx context.Context, notes []Note, params *jubjub.Params) ([]fr.Element, error) {
	out := make([]fr.Element, len(notes))
	err := forEach(ctx, len(notes), func(i int) {
		out[i] = notes[i].Cm(params)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Nullifiers computes notes[i].Nf(vk, positions[i]) for every i.
func Nullifiers(ctx context.Context, vk ViewingKey, notes []Note, positions []uint64, params *jubjub.Params) ([]jubjub.Point, error) {
	if len(notes) != len(positions) {
		return nil, ErrLengthMismatch
	}
	out := make([]jubjub.Point, len(notes))
	err := forEach(ctx, len(notes), func(i int) {
		out[i] = notes[i].Nf(vk, positions[i], params)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func forEach(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
