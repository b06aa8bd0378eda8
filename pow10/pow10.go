package pow10

import (
	"math/bits"
)

// Size is the number of place values in a table. It is also the longest
// input the parser accepts (the digit count of the largest uint64).
const Size = 20

// Unsigned is the set of output types a table can be built for.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type row struct {
	pow    [Size]uint64
	cut    [Size]uint8
	digits int
}

var (
	// exact holds the untruncated place values 10^19 .. 10^0.
	exact [Size]uint64

	// rows are indexed by width class: 8, 16, 32 and 64 bits.
	rows [4]row
)

func init() {
	p := uint64(1)
	for i := Size - 1; i >= 0; i-- {
		exact[i] = p
		p *= 10
	}

	for c := range rows {
		rows[c] = build(8 << c)
	}
}

// build materializes the table for a width. Entries too large for the width
// wrap exactly as repeated multiplication in that width would.
func build(width int) (r row) {
	mask := ^uint64(0) >> (64 - width)

	p := uint64(1)
	for i := Size - 1; i >= 0; i-- {
		r.pow[i] = p

		if exact[i] <= mask {
			r.cut[i] = uint8(min(9, mask/exact[i]))
			r.digits++
		}

		p = (p * 10) & mask
	}

	return r
}

func class(width int) int {
	return bits.TrailingZeros(uint(width)) - 3
}

// Width returns the size of T in bits.
func Width[T Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// Digits returns the number of decimal digits in the largest value of T.
func Digits[T Unsigned]() int {
	return rows[class(Width[T]())].digits
}

// Powers is a read-only view of the place value table for T.
type Powers[T Unsigned] struct {
	r *row
}

// Table returns the place value table for T. The same table is returned for
// every call; it is never rebuilt.
func Table[T Unsigned]() Powers[T] {
	return Powers[T]{r: &rows[class(Width[T]())]}
}

// At returns 10^(19-i) truncated to T.
func (p Powers[T]) At(i int) T {
	return T(p.r.pow[i])
}

// Cutoff returns the largest digit d for which d * 10^(19-i) fits in T. It is
// zero when 10^(19-i) itself does not fit.
func (p Powers[T]) Cutoff(i int) uint8 {
	return p.r.cut[i]
}

// Digits returns the number of decimal digits in the largest value of T.
func (p Powers[T]) Digits() int {
	return p.r.digits
}

// Array returns a copy of the table.
func (p Powers[T]) Array() (a [Size]T) {
	for i, v := range p.r.pow {
		a[i] = T(v)
	}

	return a
}
