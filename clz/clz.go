// Package clz counts leading zero bits.
//
// The hardware count-leading-zeros instructions (and the C builtins wrapping
// them) are undefined for a zero input. LeadingZeros64 defines that case as
// 64: a zero value has no set bits, so all 64 positions are leading zeros.
package clz

import (
	"math/bits"
)

// LeadingZeros64 returns the number of leading zero bits in x. The result is
// 64 for x == 0.
func LeadingZeros64(x uint64) uint64 {
	if x == 0 {
		return 64
	}

	return uint64(bits.LeadingZeros64(x))
}

// Len64 returns the minimum number of bits required to represent x. The
// result is 0 for x == 0.
func Len64(x uint64) uint64 {
	return 64 - LeadingZeros64(x)
}
