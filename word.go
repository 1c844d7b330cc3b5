package rc5

import (
	"unsafe"
)

// wordSize returns the width of W in bytes.
func wordSize[W Word]() int {
	return int(unsafe.Sizeof(W(0)))
}

// blockSize returns the size of a two-word block in bytes.
func blockSize[W Word]() int {
	return 2 * wordSize[W]()
}

// rotl rotates x left by n mod w bit positions. Both shift amounts stay
// inside [0, w), including when n mod w == 0.
func rotl[W Word](x W, n uint) W {
	w := uint(unsafe.Sizeof(x)) * 8
	n &= w - 1
	return x<<n | x>>((w-n)&(w-1))
}

// rotr rotates x right by n mod w bit positions.
func rotr[W Word](x W, n uint) W {
	w := uint(unsafe.Sizeof(x)) * 8
	n &= w - 1
	return x>>n | x<<((w-n)&(w-1))
}

// packWord reads one word from the start of src, least-significant byte
// first.
func packWord[W Word](src []byte) W {
	var x W
	for i := wordSize[W]() - 1; i >= 0; i-- {
		x = x<<8 | W(src[i])
	}
	return x
}

// unpackWord writes x into dst, least-significant byte first.
func unpackWord[W Word](dst []byte, x W) {
	for i := 0; i < wordSize[W](); i++ {
		dst[i] = byte(x)
		x >>= 8
	}
}
