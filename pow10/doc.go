// Package pow10 provides the decimal place value tables used by the parser.
//
// Each supported output width has one table of twenty entries. Entry i holds
// 10^(19-i):
//
//  | i     | 0    | 1    | ... | 17  | 18 | 19 |
//  |-------|------|------|-----|-----|----|----|
//  | value | 10^19| 10^18| ... | 100 | 10 | 1  |
//
// Index Alignment
//
// An input of n digits starts at index 20-n so that its last digit always
// lands on index 19 (the ones place). The digit at input position j is
// multiplied by entry 20-n+j. No branch on decimal position is needed.
//
// Narrow Widths
//
// For widths narrower than 64 bits the larger powers do not fit. They are
// still stored, truncated with the width's wraparound semantics, so every
// table has the same shape. The parser never lets a truncated entry reach the
// result: each entry carries a cutoff, the largest digit whose product with
// the true power fits the width, and a cutoff of zero means any nonzero digit
// at that place is an overflow.
//
//  | width | digits | first index with a nonzero cutoff |
//  |-------|--------|-----------------------------------|
//  | 8     | 3      | 17 (100, cutoff 2)                |
//  | 16    | 5      | 15 (10000, cutoff 6)              |
//  | 32    | 10     | 10 (10^9, cutoff 4)               |
//  | 64    | 20     | 0 (10^19, cutoff 1)               |
//
// Tables are built once in init and are read-only afterwards, so they are
// safe for concurrent use.
package pow10
