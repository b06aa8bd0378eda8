package atoi

import (
	"github.com/calebcase/atoi/pow10"
)

const maxLen = pow10.Size

// Text is the set of input types Parse accepts.
type Text interface {
	~[]byte | ~string
}

// Parse converts the decimal digits in s to a T.
//
// Every byte must be an ASCII digit. Leading zeros are allowed. The input may
// be at most 20 bytes long regardless of T; values that do not fit in T are
// rejected with ErrOverflow rather than wrapped.
func Parse[T pow10.Unsigned, S Text](s S) (T, error) {
	n := len(s)

	switch {
	case n == 0:
		return 0, &ParseError{Err: ErrEmpty}
	case n > maxLen:
		return 0, &ParseError{Err: ErrTooLong, Len: n}
	}

	p := pow10.Table[T]()

	var (
		v    T
		over bool
	)

	// The last byte always lands on index 19 (the ones place).
	i, k := 0, maxLen-n

	for ; n-i >= 4; i, k = i+4, k+4 {
		d1 := s[i] - '0'
		if d1 > 9 {
			return 0, invalid(s[i], i)
		}
		r1, o1 := place(p, k, d1)

		d2 := s[i+1] - '0'
		if d2 > 9 {
			return 0, invalid(s[i+1], i+1)
		}
		r2, o2 := place(p, k+1, d2)

		d3 := s[i+2] - '0'
		if d3 > 9 {
			return 0, invalid(s[i+2], i+2)
		}
		r3, o3 := place(p, k+2, d3)

		d4 := s[i+3] - '0'
		if d4 > 9 {
			return 0, invalid(s[i+3], i+3)
		}
		r4, o4 := place(p, k+3, d4)

		over = over || o1 || o2 || o3 || o4

		v, over = add(v, r1, over)
		v, over = add(v, r2, over)
		v, over = add(v, r3, over)
		v, over = add(v, r4, over)
	}

	for ; i < n; i, k = i+1, k+1 {
		d := s[i] - '0'
		if d > 9 {
			return 0, invalid(s[i], i)
		}
		r, o := place(p, k, d)

		v, over = add(v, r, over || o)
	}

	if over {
		return 0, &ParseError{Err: ErrOverflow, Len: n, Bits: pow10.Width[T]()}
	}

	return v, nil
}

// place returns d times the place value at index k, and whether that product
// exceeds T.
func place[T pow10.Unsigned](p pow10.Powers[T], k int, d byte) (T, bool) {
	return T(d) * p.At(k), d > p.Cutoff(k)
}

func add[T pow10.Unsigned](v, r T, over bool) (T, bool) {
	s := v + r

	return s, over || s < v
}

func invalid(b byte, pos int) error {
	return &ParseError{Err: ErrInvalidDigit, Pos: pos, Byte: b}
}

// IndexNonDigit returns the index of the first byte in s that is not an ASCII
// digit, or -1 if there is none.
func IndexNonDigit[S Text](s S) int {
	for i := 0; i < len(s); i++ {
		if s[i]-'0' > 9 {
			return i
		}
	}

	return -1
}

// ParseUint8 parses b as a uint8.
func ParseUint8(b []byte) (uint8, error) { return Parse[uint8](b) }

// ParseUint16 parses b as a uint16.
func ParseUint16(b []byte) (uint16, error) { return Parse[uint16](b) }

// ParseUint32 parses b as a uint32.
func ParseUint32(b []byte) (uint32, error) { return Parse[uint32](b) }

// ParseUint64 parses b as a uint64.
func ParseUint64(b []byte) (uint64, error) { return Parse[uint64](b) }

// ParseUint parses b as a platform sized uint.
func ParseUint(b []byte) (uint, error) { return Parse[uint](b) }
