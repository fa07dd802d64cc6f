// params.go - Immutable parameter set: fixed generators and Pedersen bases.

package jubjub

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog"
)

// FixedGenerator names one of the fixed prime-order generators.
type FixedGenerator int

const (
	// ProofGenerationKey is the base of rk = rsk·G.
	ProofGenerationKey FixedGenerator = iota
	// NoteCommitmentRandomness blinds note commitments.
	NoteCommitmentRandomness
	// NullifierPosition mixes the tree position into the nullifier.
	NullifierPosition
	// ValueCommitmentValue carries the value in a value commitment.
	ValueCommitmentValue
	// ValueCommitmentRandomness blinds a value commitment.
	ValueCommitmentRandomness
	// SpendingKeyGenerator is the base of ak = ask·G.
	SpendingKeyGenerator

	numFixedGenerators
)

func (g FixedGenerator) String() string {
	switch g {
	case ProofGenerationKey:
		return "ProofGenerationKey"
	case NoteCommitmentRandomness:
		return "NoteCommitmentRandomness"
	case NullifierPosition:
		return "NullifierPosition"
	case ValueCommitmentValue:
		return "ValueCommitmentValue"
	case ValueCommitmentRandomness:
		return "ValueCommitmentRandomness"
	case SpendingKeyGenerator:
		return "SpendingKeyGenerator"
	default:
		return fmt.Sprintf("FixedGenerator(%d)", int(g))
	}
}

// Personalizations used to derive the parameter set.
var (
	PedersenHashGeneratorsPersonalization      = []byte("Zcash_PH")
	ProofGenerationKeyGeneratorPersonalization = []byte("Zcash_H_")
	NullifierPositionGeneratorPersonalization  = []byte("Zcash_J_")
	ValueCommitmentGeneratorPersonalization    = []byte("Zcash_cv")
	SpendingKeyGeneratorPersonalization        = []byte("Zcash_G_")
)

// DefaultPedersenGenerators covers inputs up to 945 bits, enough for a note
// commitment and a Merkle tree node.
const DefaultPedersenGenerators = 5

// PedersenChunksPerGenerator is the number of 3-bit chunks absorbed by each
// Pedersen generator before moving on to the next one.
const PedersenChunksPerGenerator = 63

var fixedGeneratorSeeds = [numFixedGenerators]struct {
	tag             []byte
	personalization []byte
}{
	ProofGenerationKey:        {nil, ProofGenerationKeyGeneratorPersonalization},
	NoteCommitmentRandomness:  {[]byte("r"), PedersenHashGeneratorsPersonalization},
	NullifierPosition:         {nil, NullifierPositionGeneratorPersonalization},
	ValueCommitmentValue:      {[]byte("v"), ValueCommitmentGeneratorPersonalization},
	ValueCommitmentRandomness: {[]byte("r"), ValueCommitmentGeneratorPersonalization},
	SpendingKeyGenerator:      {nil, SpendingKeyGeneratorPersonalization},
}

// Params is the read-only parameter object passed to every operation.
type Params struct {
	fixed    [numFixedGenerators]Point
	pedersen []Point
	log      zerolog.Logger
}

type config struct {
	log                zerolog.Logger
	pedersenGenerators int
}

// Option configures NewParams.
type Option func(*config)

// WithLogger sets the logger used while building and using the parameters.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithPedersenGenerators sets how many Pedersen generators to derive.
func WithPedersenGenerators(n int) Option {
	return func(c *config) {
		c.pedersenGenerators = n
	}
}

// NewParams derives every generator. All of them are checked to lie in the
// prime-order subgroup and to be pairwise distinct.
func NewParams(opts ...Option) (*Params, error) {
	cfg := config{
		log:                zerolog.Nop(),
		pedersenGenerators: DefaultPedersenGenerators,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pedersenGenerators <= 0 {
		return nil, fmt.Errorf("jubjub: pedersen generator count must be positive, got %d", cfg.pedersenGenerators)
	}

	params := &Params{
		pedersen: make([]Point, cfg.pedersenGenerators),
		log:      cfg.log,
	}
	for g := FixedGenerator(0); g < numFixedGenerators; g++ {
		seed := fixedGeneratorSeeds[g]
		p, counter := findGroupHash(seed.tag, seed.personalization)
		params.fixed[g] = p
		cfg.log.Debug().
			Stringer("generator", g).
			Uint8("counter", counter).
			Stringer("point", p).
			Msg("derived fixed generator")
	}
	for m := range params.pedersen {
		var segment [4]byte
		binary.LittleEndian.PutUint32(segment[:], uint32(m))
		p, counter := findGroupHash(segment[:], PedersenHashGeneratorsPersonalization)
		params.pedersen[m] = p
		cfg.log.Debug().
			Int("segment", m).
			Uint8("counter", counter).
			Stringer("point", p).
			Msg("derived pedersen generator")
	}

	all := append(params.fixed[:len(params.fixed):len(params.fixed)], params.pedersen...)
	for i, p := range all {
		if !p.IsPrimeOrder() {
			return nil, fmt.Errorf("%w: generator %d", ErrNotPrimeOrder, i)
		}
		for _, q := range all[:i] {
			if p.Equal(q) {
				return nil, fmt.Errorf("%w: generator %d", ErrDuplicateGenerator, i)
			}
		}
	}
	return params, nil
}

// Generator returns the named fixed generator.
func (p *Params) Generator(g FixedGenerator) Point {
	if g < 0 || g >= numFixedGenerators {
		panic(fmt.Sprintf("jubjub: unknown generator %d", int(g)))
	}
	return p.fixed[g]
}

// PedersenHashGenerators returns a copy of the Pedersen generators.
func (p *Params) PedersenHashGenerators() []Point {
	return append([]Point(nil), p.pedersen...)
}

// PedersenHashChunksPerGenerator returns the segment length of the Pedersen hash.
func (p *Params) PedersenHashChunksPerGenerator() int {
	return PedersenChunksPerGenerator
}

// Logger returns the logger the parameters were built with.
func (p *Params) Logger() *zerolog.Logger {
	return &p.log
}
