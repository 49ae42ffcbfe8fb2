package bitarray

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// bitsToBytes returns the number of bytes needed to hold n bits.
func bitsToBytes(n int) int {
	return (n + 7) / 8
}

// Bitarray is an ordered sequence of bits packed into a byte buffer and
// tagged with an Endianness.
//
// Methods taking bit indexes panic when the index is out of range, the same
// contract as indexing a slice.  Unused positions of the final partial byte
// are always 0.
type Bitarray struct {
	buf    []byte
	length int
	endian Endianness
}

// New returns a Bitarray of the given length with every bit 0, under the
// given endianness or the process default.  It panics if length is negative.
func New(length int, endian Endianness) *Bitarray {
	if length < 0 {
		panic("bitarray: negative length " + strconv.Itoa(length))
	}
	return &Bitarray{
		buf:    make([]byte, bitsToBytes(length)),
		length: length,
		endian: endian.resolve(),
	}
}

// FromBytes returns a Bitarray holding the 8*len(b) bits of b, read under
// the given endianness.  The buffer is copied.
func FromBytes(b []byte, endian Endianness) *Bitarray {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Bitarray{
		buf:    buf,
		length: 8 * len(b),
		endian: endian.resolve(),
	}
}

// FromBits returns a Bitarray built from a list of 0/1 values.
func FromBits(values []int, endian Endianness) (*Bitarray, error) {
	a := New(len(values), endian)
	for i, v := range values {
		switch v {
		case 0:
			// already 0
		case 1:
			a.Set(i, true)
		default:
			return nil, fmt.Errorf("bit value must be 0 or 1, got %d at index %d", v, i)
		}
	}
	return a, nil
}

// pos maps a logical bit index to its byte index and in-byte bit position.
func (a *Bitarray) pos(i int) (int, uint) {
	if a.endian == Big {
		return i >> 3, uint(7 - i&7)
	}
	return i >> 3, uint(i & 7)
}

func (a *Bitarray) check(i int) {
	if i < 0 || i >= a.length {
		panic("bitarray: index " + strconv.Itoa(i) + " out of range with length " + strconv.Itoa(a.length))
	}
}

// Len returns the number of bits.
func (a *Bitarray) Len() int {
	return a.length
}

// Endianness returns the endianness tag.
func (a *Bitarray) Endianness() Endianness {
	return a.endian
}

// Get returns the bit at index i.
func (a *Bitarray) Get(i int) bool {
	a.check(i)
	k, p := a.pos(i)
	return a.buf[k]&(1<<p) != 0
}

// Set sets the bit at index i to v.
func (a *Bitarray) Set(i int, v bool) {
	a.check(i)
	k, p := a.pos(i)
	if v {
		a.buf[k] |= 1 << p
	} else {
		a.buf[k] &^= 1 << p
	}
}

// SetAll sets every bit to v.
func (a *Bitarray) SetAll(v bool) {
	fill := byte(0)
	if v {
		fill = 0xff
	}
	for k := range a.buf {
		a.buf[k] = fill
	}
	a.clearTail()
}

// clearTail zeroes the unused positions of the final partial byte.
func (a *Bitarray) clearTail() {
	used := uint(a.length % 8)
	if used == 0 || len(a.buf) == 0 {
		return
	}
	k := len(a.buf) - 1
	if a.endian == Big {
		a.buf[k] &= ^byte(0) << (8 - used)
	} else {
		a.buf[k] &= ^(^byte(0) << used)
	}
}

// Append adds one bit at the end.
func (a *Bitarray) Append(v bool) {
	if a.length%8 == 0 {
		a.buf = append(a.buf, 0)
	}
	a.length++
	a.Set(a.length-1, v)
}

// Copy returns a new Bitarray with the same endianness and bits.
func (a *Bitarray) Copy() *Bitarray {
	buf := make([]byte, len(a.buf))
	copy(buf, a.buf)
	return &Bitarray{buf: buf, length: a.length, endian: a.endian}
}

// Index returns the index of the first bit with value v, and whether any
// such bit exists.
func (a *Bitarray) Index(v bool) (int, bool) {
	for i := 0; i < a.length; i++ {
		if a.Get(i) == v {
			return i, true
		}
	}
	return 0, false
}

// Rindex returns the index of the last bit with value v, and whether any
// such bit exists.
func (a *Bitarray) Rindex(v bool) (int, bool) {
	for i := a.length - 1; i >= 0; i-- {
		if a.Get(i) == v {
			return i, true
		}
	}
	return 0, false
}

// Slice returns a new Bitarray holding bits [start:end).  It panics if the
// bounds are out of range.
func (a *Bitarray) Slice(start, end int) *Bitarray {
	if start < 0 || end > a.length || start > end {
		panic(fmt.Sprintf("bitarray: slice bounds [%d:%d] out of range with length %d", start, end, a.length))
	}
	out := New(end-start, a.endian)
	for i := start; i < end; i++ {
		if a.Get(i) {
			out.Set(i-start, true)
		}
	}
	return out
}

// Concat returns a new Bitarray holding the bits of a followed by the bits
// of b, under a's endianness.
func (a *Bitarray) Concat(b *Bitarray) *Bitarray {
	out := New(a.length+b.length, a.endian)
	for i := 0; i < a.length; i++ {
		if a.Get(i) {
			out.Set(i, true)
		}
	}
	for i := 0; i < b.length; i++ {
		if b.Get(i) {
			out.Set(a.length+i, true)
		}
	}
	return out
}

// Bytes returns a copy of the packed byte buffer.
func (a *Bitarray) Bytes() []byte {
	buf := make([]byte, len(a.buf))
	copy(buf, a.buf)
	return buf
}

// Equal reports whether a and b hold the same logical bit sequence.  The
// endianness tags do not participate in the comparison.
func (a *Bitarray) Equal(b *Bitarray) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.length != b.length {
		return false
	}
	if a.endian == b.endian {
		return bytes.Equal(a.buf, b.buf)
	}
	for i := 0; i < a.length; i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// String returns the quoted string of bits, first bit leftmost.
func (a *Bitarray) String() string {
	var sb strings.Builder
	sb.Grow(a.length)
	for i := 0; i < a.length; i++ {
		if a.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = (*Bitarray)(nil)
