package util

import (
	"fmt"
	"math/big"

	"github.com/chronos-tachyon/assert"

	"github.com/pombredanne/bitarray"
)

// ToInt interprets a as an unbounded non-negative integer, honoring its
// endianness.  The sequence is first padded to a byte boundary with zero
// bits, prepended for big-endian and appended for little-endian, which
// leaves the numeric value unchanged.
func ToInt(a *bitarray.Bitarray) (*big.Int, error) {
	if a == nil {
		return nil, invalidArg("bitarray expected")
	}
	if a.Len() == 0 {
		return nil, invalidArg("non-empty bitarray expected")
	}

	e := a.Endianness()
	if n := a.Len() % 8; n != 0 {
		pad := bitarray.New(8-n, e)
		if e == bitarray.Big {
			a = pad.Concat(a)
		} else {
			a = a.Concat(pad)
		}
	}
	assert.Assertf(a.Len()%8 == 0, "padded length %d not byte aligned", a.Len())

	b := a.Bytes()
	if e == bitarray.Little {
		reverseBytes(b)
	}
	return new(big.Int).SetBytes(b), nil
}

// FromInt converts a non-negative integer into a Bitarray under the given
// endianness or the process default.  A length of 0 requests the minimal
// width, at least one bit, with no leading (big-endian) or trailing
// (little-endian) zeros.  A positive length fixes the result width exactly:
// the value is zero-extended to reach it, and an OverflowError is returned
// when its significant bits do not fit.  Any other length is invalid.
func FromInt(value *big.Int, length int, endian bitarray.Endianness) (*bitarray.Bitarray, error) {
	if value == nil {
		return nil, invalidArg("integer expected")
	}
	if value.Sign() < 0 {
		return nil, invalidArg("non-negative integer expected")
	}
	if length < 0 {
		return nil, invalidArg(fmt.Sprintf("length larger than 0 expected, got %d", length))
	}
	e, err := resolveEndian(endian)
	if err != nil {
		return nil, err
	}

	if value.Sign() == 0 {
		// zero has no minimal byte form; emit the requested width directly
		if length == 0 {
			length = 1
		}
		return bitarray.New(length, e), nil
	}

	bigEndian := e == bitarray.Big
	b := value.Bytes()
	if !bigEndian {
		reverseBytes(b)
	}
	a := bitarray.FromBytes(b, e)
	la := a.Len()
	if la == length {
		return a, nil
	}

	if length == 0 {
		if bigEndian {
			return Strip(a, StripLeft)
		}
		return Strip(a, StripRight)
	}

	if la > length {
		var size int
		if bigEndian {
			i, ok := a.Index(true)
			assert.Assertf(ok, "positive integer with no set bit")
			size = la - i
		} else {
			i, ok := a.Rindex(true)
			assert.Assertf(ok, "positive integer with no set bit")
			size = i + 1
		}
		if size > length {
			return nil, OverflowError{Size: size, Length: length}
		}
		if bigEndian {
			a = a.Slice(la-length, la)
		} else {
			a = a.Slice(0, length)
		}
	} else {
		pad := bitarray.New(length-la, e)
		if bigEndian {
			a = pad.Concat(a)
		} else {
			a = a.Concat(pad)
		}
	}

	assert.Assertf(a.Len() == length, "result length %d != requested length %d", a.Len(), length)
	return a, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
