package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pombredanne/bitarray"
)

// mustBits builds a Bitarray from a string of '0' and '1' characters.
func mustBits(t *testing.T, s string, e bitarray.Endianness) *bitarray.Bitarray {
	t.Helper()
	a := bitarray.New(len(s), e)
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			a.Set(i, true)
		default:
			t.Fatalf("bad bit char %q", c)
		}
	}
	return a
}

// bitString renders the logical bit sequence without quotes.
func bitString(a *bitarray.Bitarray) string {
	out := make([]byte, a.Len())
	for i := range out {
		out[i] = '0'
		if a.Get(i) {
			out[i] = '1'
		}
	}
	return string(out)
}

func TestZeros(t *testing.T) {
	r := require.New(t)

	a, err := Zeros(8, bitarray.Big)
	r.NoError(err)
	r.Equal(8, a.Len())
	r.Equal("00000000", bitString(a))
	r.Equal(bitarray.Big, a.Endianness())

	a, err = Zeros(0, bitarray.Little)
	r.NoError(err)
	r.Equal(0, a.Len())
	r.Equal(bitarray.Little, a.Endianness())

	a, err = Zeros(3, bitarray.Default)
	r.NoError(err)
	r.Equal(bitarray.DefaultEndianness(), a.Endianness())

	_, err = Zeros(-1, bitarray.Big)
	r.ErrorIs(err, ErrInvalidArgument)

	_, err = Zeros(4, bitarray.Endianness(9))
	r.ErrorIs(err, ErrInvalidArgument)
}

func TestStrip(t *testing.T) {
	for _, e := range []bitarray.Endianness{bitarray.Big, bitarray.Little} {
		r := require.New(t)
		a := mustBits(t, "00101100", e)

		s, err := Strip(a, StripRight)
		r.NoError(err)
		r.Equal("001011", bitString(s))

		s, err = Strip(a, StripLeft)
		r.NoError(err)
		r.Equal("101100", bitString(s))

		s, err = Strip(a, StripBoth)
		r.NoError(err)
		r.Equal("1011", bitString(s))
		r.Equal(e, s.Endianness())

		// input untouched
		r.Equal("00101100", bitString(a))
	}
}

func TestStripAllZeros(t *testing.T) {
	r := require.New(t)

	for _, mode := range []StripMode{StripRight, StripLeft, StripBoth} {
		z, err := Zeros(8, bitarray.Little)
		r.NoError(err)
		s, err := Strip(z, mode)
		r.NoError(err)
		r.Equal(0, s.Len())
		r.Equal(bitarray.Little, s.Endianness())
	}

	s, err := Strip(bitarray.New(0, bitarray.Big), StripBoth)
	r.NoError(err)
	r.Equal(0, s.Len())
}

func TestStripIdempotent(t *testing.T) {
	r := require.New(t)

	a := mustBits(t, "000110100", bitarray.Big)
	once, err := Strip(a, StripBoth)
	r.NoError(err)
	twice, err := Strip(once, StripBoth)
	r.NoError(err)
	r.True(once.Equal(twice))
}

func TestStripInvalid(t *testing.T) {
	r := require.New(t)

	_, err := Strip(nil, StripBoth)
	r.ErrorIs(err, ErrInvalidArgument)

	a := mustBits(t, "01", bitarray.Big)
	_, err = Strip(a, StripMode(7))
	r.ErrorIs(err, ErrInvalidArgument)
}
