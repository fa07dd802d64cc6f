package jubjub

import (
	"fmt"

	"github.com/dchest/blake2s"
)

// PersonalizationBytes is the size of every BLAKE2s personalization tag.
const PersonalizationBytes = 8

// HashPersonalized returns BLAKE2s-256 of the concatenated inputs under an
// 8-byte personalization tag. It panics on a malformed tag.
func HashPersonalized(personalization []byte, data ...[]byte) [32]byte {
	if len(personalization) != PersonalizationBytes {
		panic(fmt.Sprintf("jubjub: personalization must be %d bytes, got %d", PersonalizationBytes, len(personalization)))
	}
	h, err := blake2s.New(&blake2s.Config{Size: 32, Person: personalization})
	if err != nil {
		panic(fmt.Errorf("jubjub: blake2s: %w", err))
	}
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
