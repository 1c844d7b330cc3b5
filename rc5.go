// Package rc5 implements the RC5 block cipher.
//
// RC5 is parameterized by word width w, round count r and key length b,
// commonly written RC5-w/r/b. A block is two words; all arithmetic is
// modulo 2^w with data-dependent rotations. The word width is selected at
// compile time through the Word type parameter, so only the widths RC5
// defines parameters for (16, 32 and 64 bits) can be instantiated.
//
// The package implements the raw single-block transform only. Modes of
// operation, padding and key derivation are up to the caller; *Schedule
// satisfies crypto/cipher.Block for composing with stdlib modes.
//
// Reference: R.L. Rivest, "The RC5 Encryption Algorithm", 1994.
package rc5

import (
	"strconv"
)

// Word is the set of word widths RC5 defines magic constants for.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

const (
	// MaxRounds is the largest accepted round count.
	MaxRounds = 255
	// MaxKeySize is the largest accepted key length in bytes.
	MaxKeySize = 255
)

// KeySizeError indicates the supplied key length was invalid
type KeySizeError int

func (k KeySizeError) Error() string { return "rc5: invalid key size " + strconv.Itoa(int(k)) }

// BlockSizeError indicates the supplied block length was invalid
type BlockSizeError int

func (b BlockSizeError) Error() string { return "rc5: invalid block size " + strconv.Itoa(int(b)) }

// RoundCountError indicates the supplied round count was invalid
type RoundCountError int

func (r RoundCountError) Error() string { return "rc5: invalid round count " + strconv.Itoa(int(r)) }

// Cipher is an RC5 instance with fixed round count and key length. The key
// is supplied per call and the subkey table is derived fresh on every
// operation; use ExpandKey for explicit schedule reuse, or ScheduleCache to
// memoize schedules across many keys.
//
// A Cipher holds no key material and is safe for concurrent use.
type Cipher[W Word] struct {
	rounds int
	keyLen int
}

// New returns an RC5-w/rounds/keyLen instance, with w fixed by the type
// parameter.
func New[W Word](rounds, keyLen int) (*Cipher[W], error) {
	if rounds < 0 || rounds > MaxRounds {
		return nil, RoundCountError(rounds)
	}
	if keyLen < 0 || keyLen > MaxKeySize {
		return nil, KeySizeError(keyLen)
	}
	return &Cipher[W]{
		rounds: rounds,
		keyLen: keyLen,
	}, nil
}

// BlockSize returns the cipher block size in bytes, two words.
func (c *Cipher[W]) BlockSize() int { return blockSize[W]() }

// Rounds returns the configured round count.
func (c *Cipher[W]) Rounds() int { return c.rounds }

// KeySize returns the configured key length in bytes.
func (c *Cipher[W]) KeySize() int { return c.keyLen }

// Encode encrypts a single block. The key must be exactly KeySize bytes and
// the plaintext exactly BlockSize bytes; both are checked before any
// arithmetic. The ciphertext is returned in a fresh buffer.
func (c *Cipher[W]) Encode(key, plaintext []byte) ([]byte, error) {
	if len(plaintext) != blockSize[W]() {
		return nil, BlockSizeError(len(plaintext))
	}
	s, err := c.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, blockSize[W]())
	s.Encrypt(ciphertext, plaintext)
	return ciphertext, nil
}

// Decode decrypts a single block, the inverse of Encode under the same key.
func (c *Cipher[W]) Decode(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != blockSize[W]() {
		return nil, BlockSizeError(len(ciphertext))
	}
	s, err := c.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, blockSize[W]())
	s.Decrypt(plaintext, ciphertext)
	return plaintext, nil
}

// ExpandKey derives the subkey table for key once, for callers encrypting
// many blocks under the same key.
func (c *Cipher[W]) ExpandKey(key []byte) (*Schedule[W], error) {
	if len(key) != c.keyLen {
		return nil, KeySizeError(len(key))
	}
	return &Schedule[W]{
		rounds: c.rounds,
		s:      expandKey[W](key, c.rounds),
	}, nil
}
