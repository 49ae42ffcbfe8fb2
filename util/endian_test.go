package util

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pombredanne/bitarray"
)

func TestMakeEndianIdentity(t *testing.T) {
	r := require.New(t)

	a := mustBits(t, "1010", bitarray.Big)
	b, err := MakeEndian(a, bitarray.Big)
	r.NoError(err)
	r.Same(a, b)

	// Default resolves to the process default (big) before comparing
	b, err = MakeEndian(a, bitarray.Default)
	r.NoError(err)
	r.Same(a, b)
}

func TestMakeEndianWholeBytes(t *testing.T) {
	r := require.New(t)

	a := bitarray.FromBytes([]byte{0xa3}, bitarray.Big)
	b, err := MakeEndian(a, bitarray.Little)
	r.NoError(err)
	r.Equal(bitarray.Little, b.Endianness())
	r.True(b.Equal(a))
	r.Equal("10100011", bitString(b))
	// value-equal, but the byte layout differs
	r.Equal([]byte{0xc5}, b.Bytes())
}

func TestMakeEndianPartialByte(t *testing.T) {
	r := require.New(t)

	a := mustBits(t, "101000111111", bitarray.Big)
	r.Equal([]byte{0xa3, 0xf0}, a.Bytes())

	b, err := MakeEndian(a, bitarray.Little)
	r.NoError(err)
	r.True(b.Equal(a))
	// whole byte is bit-reversed, the 4-bit tail is copied by position
	r.Equal([]byte{0xc5, 0x0f}, b.Bytes())
}

func TestMakeEndianRoundTrip(t *testing.T) {
	r := require.New(t)

	for _, s := range []string{"", "1", "10110", "10100011", "0000000000010", "1111111100000001"} {
		a := mustBits(t, s, bitarray.Big)
		little, err := MakeEndian(a, bitarray.Little)
		r.NoError(err)
		back, err := MakeEndian(little, bitarray.Big)
		r.NoError(err)
		r.True(back.Equal(a), "round trip mismatch for %q", s)
		r.Equal(a.Bytes(), back.Bytes())
	}
}

func TestMakeEndianInvalid(t *testing.T) {
	r := require.New(t)

	_, err := MakeEndian(nil, bitarray.Big)
	r.ErrorIs(err, ErrInvalidArgument)

	a := mustBits(t, "1", bitarray.Big)
	_, err = MakeEndian(a, bitarray.Endianness(5))
	r.ErrorIs(err, ErrInvalidArgument)
}
