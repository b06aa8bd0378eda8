package atoi_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/calebcase/atoi"
)

// FuzzParse checks every width against strconv.ParseUint.
func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"0",
		"255",
		"256",
		"054321",
		"1e3",
		"12a4",
		"4294967296",
		"18446744073709551615",
		"18446744073709551616",
		"99999999999999999999",
		"000000000000000000000",
		"",
		"999a",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, bits := range widths {
			got, err := parse(bits, s)
			want, werr := strconv.ParseUint(s, 10, bits)

			switch {
			case len(s) == 0:
				if !errors.Is(err, atoi.ErrEmpty) {
					t.Fatalf("u%d %q: got %v, want ErrEmpty", bits, s, err)
				}
			case len(s) > 20:
				if !errors.Is(err, atoi.ErrTooLong) {
					t.Fatalf("u%d %q: got %v, want ErrTooLong", bits, s, err)
				}
			case atoi.IndexNonDigit(s) >= 0:
				var pe *atoi.ParseError
				if !errors.As(err, &pe) || pe.Err != atoi.ErrInvalidDigit || pe.Pos != atoi.IndexNonDigit(s) {
					t.Fatalf("u%d %q: got %v, want invalid digit at %d", bits, s, err, atoi.IndexNonDigit(s))
				}
				if werr == nil {
					t.Fatalf("u%d %q: strconv accepted %d", bits, s, want)
				}
			case werr != nil:
				if !errors.Is(err, atoi.ErrOverflow) {
					t.Fatalf("u%d %q: got %d, %v; strconv %v", bits, s, got, err, werr)
				}
			default:
				if err != nil || got != want {
					t.Fatalf("u%d %q: got %d, %v; want %d", bits, s, got, err, want)
				}
			}
		}
	})
}
