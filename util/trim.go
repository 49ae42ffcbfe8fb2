package util

import (
	"fmt"

	"github.com/pombredanne/bitarray"
)

// StripMode selects which ends Strip removes zero bits from.
type StripMode uint8

const (
	// StripRight removes trailing zero bits.
	StripRight StripMode = iota

	// StripLeft removes leading zero bits.
	StripLeft

	// StripBoth removes zero bits from both ends.
	StripBoth
)

// String returns the string representation of this StripMode.
func (m StripMode) String() string {
	switch m {
	case StripRight:
		return "right"
	case StripLeft:
		return "left"
	case StripBoth:
		return "both"
	}
	return fmt.Sprintf("StripMode(%d)", uint8(m))
}

var _ fmt.Stringer = StripMode(0)

// Zeros returns a Bitarray of the given length with every bit 0, under the
// given endianness or the process default.
func Zeros(length int, endian bitarray.Endianness) (*bitarray.Bitarray, error) {
	if length < 0 {
		return nil, invalidArg(fmt.Sprintf("non-negative length expected, got %d", length))
	}
	e, err := resolveEndian(endian)
	if err != nil {
		return nil, err
	}
	return bitarray.New(length, e), nil
}

// Strip removes zero bits from the left, right or both ends of a.  An
// all-zero (or empty) input yields an empty Bitarray with a's endianness,
// not an error.
func Strip(a *bitarray.Bitarray, mode StripMode) (*bitarray.Bitarray, error) {
	if a == nil {
		return nil, invalidArg("bitarray expected")
	}
	if mode > StripBoth {
		return nil, invalidArg(fmt.Sprintf("allowed modes are right, left and both, got %v", mode))
	}

	first := 0
	if mode == StripLeft || mode == StripBoth {
		i, ok := a.Index(true)
		if !ok {
			return bitarray.New(0, a.Endianness()), nil
		}
		first = i
	}

	last := a.Len() - 1
	if mode == StripRight || mode == StripBoth {
		i, ok := a.Rindex(true)
		if !ok {
			return bitarray.New(0, a.Endianness()), nil
		}
		last = i
	}

	return a.Slice(first, last+1), nil
}
