package util

import (
	"encoding/hex"
	"fmt"

	"github.com/pombredanne/bitarray"
)

// swapHiLo is a translation table swapping the high and low nibble of every
// byte value.  Little-endian byte storage places the logically first nibble
// in the low half of each byte, the reverse of hex digit order.
var swapHiLo = makeSwapHiLo()

func makeSwapHiLo() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i<<4 | i>>4)
	}
	return t
}

func translate(b []byte, table *[256]byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = table[c]
	}
	return out
}

// ToHex returns the hexadecimal representation of a, whose length must be a
// multiple of 4.  Output digits are lowercase.
func ToHex(a *bitarray.Bitarray) (string, error) {
	if a == nil {
		return "", invalidArg("bitarray expected")
	}
	la := a.Len()
	if la%4 != 0 {
		return "", invalidArg(fmt.Sprintf("bitarray length %d not multiple of 4", la))
	}
	if la%8 != 0 {
		// pad to a byte boundary; the padding nibble is dropped below
		a = a.Concat(bitarray.New(4, a.Endianness()))
	}

	b := a.Bytes()
	if a.Endianness() == bitarray.Little {
		b = translate(b, &swapHiLo)
	}
	s := hex.EncodeToString(b)
	if la%8 != 0 {
		s = s[:len(s)-1]
	}
	return s, nil
}

// FromHex decodes a hexadecimal string into a Bitarray under the given
// endianness or the process default.  Input may contain any number of hex
// digits, upper or lower case.
func FromHex(s string, endian bitarray.Endianness) (*bitarray.Bitarray, error) {
	e, err := resolveEndian(endian)
	if err != nil {
		return nil, err
	}

	ls := len(s)
	if ls%2 != 0 {
		s += "0"
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalidArg(fmt.Sprintf("hexadecimal string expected: %v", err))
	}
	if e == bitarray.Little {
		b = translate(b, &swapHiLo)
	}

	a := bitarray.FromBytes(b, e)
	if ls%2 != 0 {
		a = a.Slice(0, a.Len()-4)
	}
	return a, nil
}
