package register

import (
	"fmt"
	"strings"
)

// MaxClassicalWidth is the widest bit pattern whose value fits in a uint64
// with room to spare for 1<<width.
const MaxClassicalWidth = 63

// ClassicalRegister is an immutable fixed-width bit pattern. Bit position 1
// is the most significant bit.
type ClassicalRegister struct {
	bits  []uint8
	value uint64
}

// FromValue builds a register of the given width holding value.
func FromValue(width int, value uint64) (ClassicalRegister, error) {
	if width < 1 || width > MaxClassicalWidth {
		return ClassicalRegister{}, fmt.Errorf("%w: width %d outside [1, %d]", ErrInvalidInput, width, MaxClassicalWidth)
	}
	if value >= uint64(1)<<uint(width) {
		return ClassicalRegister{}, fmt.Errorf("%w: value %d does not fit in %d bits", ErrInvalidInput, value, width)
	}

	bits := make([]uint8, width)
	for i := range bits {
		bits[i] = uint8(value >> uint(width-1-i) & 1)
	}
	return ClassicalRegister{bits: bits, value: value}, nil
}

// FromBits builds a register from an explicit MSB-first bit slice.
func FromBits(bits []int) (ClassicalRegister, error) {
	if len(bits) < 1 || len(bits) > MaxClassicalWidth {
		return ClassicalRegister{}, fmt.Errorf("%w: width %d outside [1, %d]", ErrInvalidInput, len(bits), MaxClassicalWidth)
	}

	var value uint64
	for i, b := range bits {
		if b != 0 && b != 1 {
			return ClassicalRegister{}, fmt.Errorf("%w: bit %d is %d, want 0 or 1", ErrInvalidInput, i+1, b)
		}
		value = value<<1 | uint64(b)
	}
	return FromValue(len(bits), value)
}

// Zeros returns the all-zero pattern of the given width.
func Zeros(width int) (ClassicalRegister, error) {
	return FromValue(width, 0)
}

func (c ClassicalRegister) Width() int    { return len(c.bits) }
func (c ClassicalRegister) Value() uint64 { return c.value }

// Bit returns the bit at the 1-based position pos.
func (c ClassicalRegister) Bit(pos int) (int, error) {
	if pos < 1 || pos > len(c.bits) {
		return 0, fmt.Errorf("%w: bit %d outside [1, %d]", ErrIndexOutOfRange, pos, len(c.bits))
	}
	return int(c.bits[pos-1]), nil
}

// Bits returns a copy of the pattern, most significant bit first.
func (c ClassicalRegister) Bits() []int {
	out := make([]int, len(c.bits))
	for i, b := range c.bits {
		out[i] = int(b)
	}
	return out
}

func (c ClassicalRegister) Equal(o ClassicalRegister) bool {
	return len(c.bits) == len(o.bits) && c.value == o.value
}

func (c ClassicalRegister) String() string {
	var sb strings.Builder
	sb.Grow(len(c.bits))
	for _, b := range c.bits {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}
