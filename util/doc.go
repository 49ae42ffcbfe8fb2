// Package util provides conversions between Bitarray values and unbounded
// non-negative integers, hexadecimal strings and Huffman prefix codes.
//
// All functions are pure transformations: inputs are never mutated and
// every call returns newly allocated values, except where a function
// documents an identity fast path.  Errors report caller contract
// violations and are never retryable; they match ErrInvalidArgument or are
// of type OverflowError.
//
// Functions with an endianness parameter accept bitarray.Default to select
// the process-wide default endianness.
package util
