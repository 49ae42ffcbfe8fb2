package util

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a caller contract violation: a wrong length
// modulus, an invalid mode or endianness, a negative integer, an empty
// input where a non-empty one is required.  Returned errors wrap it, so
// callers test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArg(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// OverflowError reports that an integer's significant bits do not fit the
// requested fixed length.
type OverflowError struct {
	Size   int // number of significant bits in the integer
	Length int // requested width in bits
}

func (err OverflowError) Error() string {
	return fmt.Sprintf("cannot represent %d bit integer in %d bits", err.Size, err.Length)
}
