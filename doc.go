// Package atoi converts ASCII decimal text to fixed width unsigned integers.
//
// Parsing is table driven. Each output width has a table of the place values
// 10^19 down to 10^0 (see package pow10). An input of n digits is aligned so
// its first byte multiplies entry 20-n and its last byte multiplies entry 19:
//
//  input  "054321" (n=6)
//  index   14 15 16 17 18 19
//  place   1e5 1e4 1e3 100 10 1
//
// Digits are consumed four at a time while at least four remain. The four
// products in a group are independent of each other so a pipelined processor
// can overlap them. The remaining zero to three digits are handled one at a
// time. The result is identical to a plain digit-at-a-time loop.
//
// Validation
//
// A byte is a digit when byte-'0' <= 9 (bytes below '0' wrap around to large
// values). The first byte that fails this check ends the parse with
// ErrInvalidDigit and its position; nothing accumulated so far is returned.
//
// Errors
//
//  | Error           | Condition                                        |
//  |-----------------|--------------------------------------------------|
//  | ErrEmpty        | len(s) == 0                                      |
//  | ErrTooLong      | len(s) > 20                                      |
//  | ErrInvalidDigit | some byte is not in '0'..'9'                     |
//  | ErrOverflow     | all bytes are digits but the value does not fit  |
//
// Errors are returned as *ParseError which unwraps to one of the sentinels
// above. When an input both overflows and contains a non-digit,
// ErrInvalidDigit is reported.
//
// Concurrency
//
// Parse has no side effects and does not allocate on success. It is safe to
// call from any number of goroutines.
package atoi
