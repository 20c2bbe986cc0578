package port

import (
	"math/bits"
	"unicode/utf16"
)

// Murmur3 constants for the single-field product finalizer.
const (
	productSeed uint32 = 0xcafebabe
	murmurC1    uint32 = 0xcc9e2d51
	murmurC2    uint32 = 0x1b873593
	murmurN     uint32 = 0xe6546b64
)

// StringHash returns the 32-bit polynomial hash of s: h = 31*h + c for every
// UTF-16 code unit c, wrapping on overflow.
func StringHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(c)
	}
	return h
}

// KeyHash returns the scrambled hash used to place a key.
func KeyHash(k Key) int32 {
	h := mix(productSeed, uint32(StringHash(k.HashInput())))
	return int32(finalize(h, 1))
}

// PreferredSlot returns the zero-based offset a key would occupy in a range of
// the given size absent collisions.
func PreferredSlot(k Key, size int) int {
	h := int64(KeyHash(k))
	if h < 0 {
		h = -h
	}
	return int(h % int64(size))
}

// PreferredPort returns the port a key would occupy in r absent collisions.
func (r Range) PreferredPort(k Key) int {
	return r.Min + PreferredSlot(k, r.Size())
}

func mix(h, data uint32) uint32 {
	h = mixLast(h, data)
	h = bits.RotateLeft32(h, 13)
	return h*5 + murmurN
}

func mixLast(h, k uint32) uint32 {
	k *= murmurC1
	k = bits.RotateLeft32(k, 15)
	k *= murmurC2
	return h ^ k
}

func finalize(h, length uint32) uint32 {
	h ^= length
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
