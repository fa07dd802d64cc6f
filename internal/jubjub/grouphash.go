// grouphash.go - Hashing byte strings to prime-order Jubjub points.

package jubjub

import "fmt"

// GHFirstBlock is hashed ahead of every group hash input. It is the hex text of
// a BLAKE2s digest, fixed so that nobody controls the first compression block.
var GHFirstBlock = []byte("096b36a5804bfacef1691e173c366a47ff5ba84a44f26ddd7e8d9f79d5b42df0")

// GroupHash maps tag to a point of the prime-order subgroup under the given
// 8-byte personalization. The second result is false when the digest does not
// decode to a curve point or when the point has small order; callers pick
// another tag in that case.
func GroupHash(tag, personalization []byte) (Point, bool) {
	h := HashPersonalized(personalization, GHFirstBlock, tag)
	p, err := decode(h[:])
	if err != nil {
		return Point{}, false
	}
	p = p.MulByCofactor()
	if p.IsIdentity() {
		return Point{}, false
	}
	return p, true
}

// findGroupHash appends a counter byte to m and increments it until the group
// hash succeeds. It also reports the counter that worked.
func findGroupHash(m, personalization []byte) (Point, byte) {
	tag := make([]byte, len(m)+1)
	copy(tag, m)
	for i := 0; i < 256; i++ {
		tag[len(m)] = byte(i)
		if p, ok := GroupHash(tag, personalization); ok {
			return p, byte(i)
		}
	}
	panic(fmt.Sprintf("jubjub: no group hash for %x under %q", m, personalization))
}
