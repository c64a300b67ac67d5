// Package pmath provides power-of-two sizing helpers for mask-addressed
// structures.
package pmath

import "math/bits"

// IsPowerOf2 reports whether size is a positive power of two.
func IsPowerOf2(size int) bool {
	return size > 0 && size&(size-1) == 0
}

// CeilToPowerOf2 rounds size up to the nearest power of two.
func CeilToPowerOf2(size int) int {
	if size < 2 {
		return 1
	}
	return 1 << (bits.Len(uint(size - 1)))
}

// PowerOf2Index returns the bit index of the power of two that
// CeilToPowerOf2 would round size to.
func PowerOf2Index(size int) int {
	return bits.TrailingZeros(uint(CeilToPowerOf2(size)))
}
