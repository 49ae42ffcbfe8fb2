package bitarray

import (
	"fmt"
	"sync/atomic"
)

// Endianness selects how a Bitarray maps its logical bit sequence onto byte
// buffers and integers.
type Endianness uint8

const (
	// Default resolves to the process-wide default endianness at
	// construction time.
	Default Endianness = iota

	// Big fills each byte starting at the most significant bit.
	Big

	// Little fills each byte starting at the least significant bit.
	Little
)

// String returns the string representation of this Endianness.
func (e Endianness) String() string {
	switch e {
	case Default:
		return "default"
	case Big:
		return "big"
	case Little:
		return "little"
	}
	return fmt.Sprintf("Endianness(%d)", uint8(e))
}

var _ fmt.Stringer = Endianness(0)

// defaultEndianness holds the process-wide default, Big unless reconfigured.
var defaultEndianness atomic.Uint32

// DefaultEndianness returns the process-wide default endianness, consulted
// by every constructor that receives Default.
func DefaultEndianness() Endianness {
	if e := Endianness(defaultEndianness.Load()); e != Default {
		return e
	}
	return Big
}

// SetDefaultEndianness configures the process-wide default endianness.
// It is meant to be called once at startup; e must be Big or Little.
func SetDefaultEndianness(e Endianness) error {
	if e != Big && e != Little {
		return fmt.Errorf("endianness must be Big or Little, got %v", e)
	}
	defaultEndianness.Store(uint32(e))
	return nil
}

// resolve maps Default to the configured process-wide default.
func (e Endianness) resolve() Endianness {
	if e == Default {
		return DefaultEndianness()
	}
	return e
}

// valid reports whether e names a concrete or default endianness.
func (e Endianness) valid() bool {
	return e <= Little
}
