package utils

import "math/bits"

// Log2Floor returns the position of the highest set bit of v, or -1 for 0.
func Log2Floor(v uint32) int {
	return bits.Len32(v) - 1
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
