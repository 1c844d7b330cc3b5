package rc5

import (
	"crypto/cipher"
)

// Magic constants P_w and Q_w from the RC5 paper, derived from e and the
// golden ratio, odd-rounded and truncated to the word width. Indexed by word
// size in bytes.
var magicTable = [9][2]uint64{
	2: {0xb7e1, 0x9e37},
	4: {0xb7e15163, 0x9e3779b9},
	8: {0xb7e151628aed2a6b, 0x9e3779b97f4a7c15},
}

func magic[W Word]() (p, q W) {
	m := magicTable[wordSize[W]()]
	return W(m[0]), W(m[1])
}

// expandKey derives the subkey table S of 2*(rounds+1) words from key: the
// key bytes are packed little-endian into words, S is seeded with P and
// successive additions of Q, then both tables are mixed over 3*max(t,c)
// interleaved passes. Total for any key length, including zero.
func expandKey[W Word](key []byte, rounds int) []W {
	u := wordSize[W]()

	c := (max(len(key), 1) + u - 1) / u
	l := make([]W, c)
	for i := len(key) - 1; i >= 0; i-- {
		l[i/u] = l[i/u]<<8 + W(key[i])
	}

	t := 2 * (rounds + 1)
	s := make([]W, t)
	p, q := magic[W]()
	s[0] = p
	for i := 1; i < t; i++ {
		s[i] = s[i-1] + q
	}

	var a, b W
	var i, j int
	for k := 0; k < 3*max(t, c); k++ {
		a = rotl(s[i]+a+b, 3)
		s[i] = a
		b = rotl(l[j]+a+b, uint(a+b))
		l[j] = b
		i = (i + 1) % t
		j = (j + 1) % c
	}
	return s
}

// Schedule is an expanded subkey table bound to a round count. It is
// immutable after expansion and safe for concurrent use.
//
// Schedule implements crypto/cipher.Block.
type Schedule[W Word] struct {
	rounds int
	s      []W
}

var _ cipher.Block = (*Schedule[uint32])(nil)

// BlockSize returns the cipher block size in bytes, two words.
func (s *Schedule[W]) BlockSize() int { return blockSize[W]() }

// Encrypt encrypts the first block in src into dst. Dst and src must
// overlap entirely or not at all.
func (s *Schedule[W]) Encrypt(dst, src []byte) {
	u := wordSize[W]()
	if len(src) < 2*u || len(dst) < 2*u {
		panic("rc5: buffer size mismatch")
	}
	a := packWord[W](src[0:])
	b := packWord[W](src[u:])
	a, b = s.encryptWords(a, b)
	unpackWord(dst[0:], a)
	unpackWord(dst[u:], b)
}

// Decrypt decrypts the first block in src into dst.
func (s *Schedule[W]) Decrypt(dst, src []byte) {
	u := wordSize[W]()
	if len(src) < 2*u || len(dst) < 2*u {
		panic("rc5: buffer size mismatch")
	}
	a := packWord[W](src[0:])
	b := packWord[W](src[u:])
	a, b = s.decryptWords(a, b)
	unpackWord(dst[0:], a)
	unpackWord(dst[u:], b)
}

// encryptWords runs the forward half-round chain. B's rotation in each round
// uses the just-updated A.
func (s *Schedule[W]) encryptWords(a, b W) (W, W) {
	k := s.s

	a += k[0]
	b += k[1]

	for i := 1; i <= s.rounds; i++ {
		a = rotl(a^b, uint(b)) + k[2*i]
		b = rotl(b^a, uint(a)) + k[2*i+1]
	}
	return a, b
}

// decryptWords inverts encryptWords: B is recovered before A in each round,
// from the not-yet-updated A.
func (s *Schedule[W]) decryptWords(a, b W) (W, W) {
	k := s.s

	for i := s.rounds; i >= 1; i-- {
		b = rotr(b-k[2*i+1], uint(a)) ^ a
		a = rotr(a-k[2*i], uint(b)) ^ b
	}

	b -= k[1]
	a -= k[0]
	return a, b
}
