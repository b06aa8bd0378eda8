// Package integer selects the parse width at runtime.
//
// The generic parser in package atoi fixes the output width at compile time.
// A Schema carries the width as data instead, which suits callers that learn
// it from a column definition or a protocol field:
//
//  d := integer.NewDecoder(integer.Schema{Bits: 16})
//
//  b := &integer.Block{}
//  err := d.Decode([]byte("8080"), b)
//
// A Schema with Bits of zero uses the platform's uint width.
//
// Encoding
//
// Blocks marshal to big-endian bytes with leading zero bytes removed. The
// byte count is derived from the value's bit length:
//
//  | Value    | Bit Length | Bytes                   |
//  |----------|------------|-------------------------|
//  | 0        | 0          | 00                      |
//  | 255      | 8          | ff                      |
//  | 256      | 9          | 01 00                   |
//  | 2^64 - 1 | 64         | ff ff ff ff ff ff ff ff |
package integer
