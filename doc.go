// Package bitarray implements an endianness-tagged sequence of bits packed
// into a byte buffer.  It is the storage primitive underneath the conversion
// utilities in the util subpackage.
//
// The endianness of a Bitarray only affects how its bits map to and from
// byte buffers and integers.  Bit i of a big-endian array occupies bit
// position 7-(i%8) of byte i/8, while a little-endian array places it at
// position i%8.  The logical bit sequence itself is independent of the
// endianness, and two arrays of different endianness compare equal whenever
// their logical bits match.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Bit_array>
//
//	<https://en.wikipedia.org/wiki/Endianness#Bit_endianness>
package bitarray
