package bitarray

import (
	"io"

	"github.com/icza/bitio"
)

// WriteTo writes the logical bit sequence to w as a bit stream, first bit
// in the most significant position, padding the final partial byte with
// zero bits.  The stream layout does not depend on the array's endianness,
// so a sequence written from a big-endian array reads back identically into
// a little-endian one.  The returned count is the number of bytes written.
func (a *Bitarray) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	for i := 0; i < a.length; i++ {
		if err := bw.WriteBool(a.Get(i)); err != nil {
			return int64(i / 8), err
		}
	}
	if err := bw.Close(); err != nil {
		return int64(a.length / 8), err
	}
	return int64(bitsToBytes(a.length)), nil
}

// ReadFrom reads whole bytes from r until EOF, appending their bits to a in
// stream order.  The returned count is the number of bytes read.
func (a *Bitarray) ReadFrom(r io.Reader) (int64, error) {
	br := bitio.NewReader(r)
	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		for p := 7; p >= 0; p-- {
			a.Append((b>>uint(p))&1 == 1)
		}
		n++
	}
}

var (
	_ io.WriterTo   = (*Bitarray)(nil)
	_ io.ReaderFrom = (*Bitarray)(nil)
)
