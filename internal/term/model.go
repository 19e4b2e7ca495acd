package term

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Hash is a 32-bit fingerprint of a stemmed surface term.
type Hash uint32

// Model stems surface terms, hashes stems to fingerprints, and tracks the
// small closed sets of fingerprints tagged numeric or opaque. A Model is
// built once at load time and is read-only thereafter; IsNumberHash and
// IsTokenHash are O(1) map lookups. The opaque set is fixed by NewModel; the
// numeric set is filled by the number parser while the lexicon is built.
type Model struct {
	numberHashes map[Hash]struct{}
	opaqueHashes map[Hash]struct{}
}

// opaqueSentinel is the single surface term reserved to seed the opaque-token
// tag. No catalog alias is expected to contain it; it exists purely to give
// IsTokenHash a non-empty, stable set without requiring callers to register
// anything.
const opaqueSentinel = "\x00opaque-token\x00"

// NewModel builds a term model with its opaque tag pre-seeded.
func NewModel() *Model {
	m := &Model{
		numberHashes: make(map[Hash]struct{}),
		opaqueHashes: make(map[Hash]struct{}),
	}
	m.opaqueHashes[m.StemAndHash(opaqueSentinel)] = struct{}{}
	return m
}

// Stem reduces a surface term to its stem using the Porter2 (Snowball
// English) algorithm. Stem is deterministic and total: every input string,
// including the empty string, returns a value.
func (m *Model) Stem(term string) string {
	lower := strings.ToLower(term)
	if lower == "" {
		return lower
	}
	return porter2.Stem(lower)
}

// HashTerm computes the 32-bit fingerprint of an already-stemmed term using
// the 32-bit x86 variant of MurmurHash3 with seed 0, matching the reference
// implementation's choice of hash function.
func (m *Model) HashTerm(stem string) Hash {
	return Hash(murmur3_32([]byte(stem), 0))
}

// StemAndHash composes Stem and HashTerm.
func (m *Model) StemAndHash(term string) Hash {
	return m.HashTerm(m.Stem(term))
}

// RegisterNumberTerm marks the fingerprint of term as numeric. The number
// parser registers its own words through RegisterNumberHash instead.
func (m *Model) RegisterNumberTerm(term string) {
	m.numberHashes[m.StemAndHash(term)] = struct{}{}
}

// RegisterNumberHash marks a fingerprint directly as numeric.
func (m *Model) RegisterNumberHash(h Hash) {
	m.numberHashes[h] = struct{}{}
}

// IsNumberHash reports whether h is reserved for the number parser.
func (m *Model) IsNumberHash(h Hash) bool {
	_, ok := m.numberHashes[h]
	return ok
}

// IsTokenHash reports whether h is a reserved opaque-token fingerprint.
func (m *Model) IsTokenHash(h Hash) bool {
	_, ok := m.opaqueHashes[h]
	return ok
}

// murmur3_32 implements the 32-bit x86 variant of MurmurHash3. No library in
// the dependency set provides this algorithm, and the term model's literal
// fingerprint test vectors are pinned to it, so it is implemented directly
// rather than substituted with a different hash family.
func murmur3_32(key []byte, seed uint32) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
	)

	h1 := seed
	nblocks := len(key) / 4

	for i := 0; i < nblocks; i++ {
		k1 := uint32(key[i*4]) | uint32(key[i*4+1])<<8 | uint32(key[i*4+2])<<16 | uint32(key[i*4+3])<<24
		k1 *= c1
		k1 = rotl32(k1, 15)
		k1 *= c2

		h1 ^= k1
		h1 = rotl32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	tail := key[nblocks*4:]
	var k1 uint32
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = rotl32(k1, 15)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint32(len(key))
	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16

	return h1
}

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}
