package util

import (
	"fmt"
	mathbits "math/bits"

	"github.com/pombredanne/bitarray"
)

// resolveEndian validates endian and maps bitarray.Default to the
// process-wide default.
func resolveEndian(endian bitarray.Endianness) (bitarray.Endianness, error) {
	switch endian {
	case bitarray.Default:
		return bitarray.DefaultEndianness(), nil
	case bitarray.Big, bitarray.Little:
		return endian, nil
	}
	return 0, invalidArg(fmt.Sprintf("endian can only be big or little, got %v", endian))
}

// MakeEndian re-expresses a under the given endianness.  The result holds
// the same logical bit sequence as a, so the two compare equal even though
// their byte layouts differ.  When a already has the requested endianness,
// a itself is returned.
//
// Flipping the in-byte bit placement of a whole byte amounts to reversing
// its bit order, so full bytes are transformed wholesale.  The trailing
// partial byte has no mirror image and its bits are copied one by one.
func MakeEndian(a *bitarray.Bitarray, endian bitarray.Endianness) (*bitarray.Bitarray, error) {
	if a == nil {
		return nil, invalidArg("bitarray expected")
	}
	e, err := resolveEndian(endian)
	if err != nil {
		return nil, err
	}
	if a.Endianness() == e {
		return a, nil
	}

	la := a.Len()
	src := a.Bytes()
	buf := make([]byte, len(src))
	for k := 0; k < la/8; k++ {
		buf[k] = mathbits.Reverse8(src[k])
	}
	b := bitarray.FromBytes(buf, e).Slice(0, la)
	for i := la - la%8; i < la; i++ {
		b.Set(i, a.Get(i))
	}
	return b, nil
}
