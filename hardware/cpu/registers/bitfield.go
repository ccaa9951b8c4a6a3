// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
)

// Sentinal error patterns.
const (
	InvalidWidth    = "registers: invalid bit field width (%d)"
	IndexOutOfRange = "registers: bit index (%d) out of range for width %d"
)

// MaxWidth is the widest BitField that can be created.
const MaxWidth = 32

// BitField is an unsigned value of a fixed number of bits.
type BitField struct {
	width uint
	mask  uint32
	value uint32
}

func maskForWidth(width uint) uint32 {
	return uint32((uint64(1) << width) - 1)
}

// fixedBitField is used for the registers of the CPU, all of which have a
// width known to be valid.
func fixedBitField(width uint) BitField {
	return BitField{
		width: width,
		mask:  maskForWidth(width),
	}
}

// NewBitField is the preferred method of initialisation for the BitField
// type. The width must be between one and MaxWidth.
func NewBitField(width uint) (BitField, error) {
	if width == 0 || width > MaxWidth {
		return BitField{}, curated.Errorf(InvalidWidth, width)
	}
	return fixedBitField(width), nil
}

func (bf BitField) String() string {
	return fmt.Sprintf("%0*b", bf.width, bf.value)
}

// Width returns the number of bits in the field.
func (bf BitField) Width() uint {
	return bf.width
}

// Mask returns the mask applied to every value loaded into the field.
func (bf BitField) Mask() uint32 {
	return bf.mask
}

// Value returns the current value of the field.
func (bf BitField) Value() uint32 {
	return bf.value
}

// Load a value into the field. Bits beyond the width of the field are
// discarded.
func (bf *BitField) Load(val uint32) {
	bf.value = val & bf.mask
}

// Bit returns the value (zero or one) of the indexed bit.
func (bf BitField) Bit(i uint) (uint8, error) {
	if i >= bf.width {
		return 0, curated.Errorf(IndexOutOfRange, i, bf.width)
	}
	return uint8((bf.value >> i) & 0x01), nil
}

// SetBit sets or clears the indexed bit.
func (bf *BitField) SetBit(i uint, set bool) error {
	if i >= bf.width {
		return curated.Errorf(IndexOutOfRange, i, bf.width)
	}
	if set {
		bf.value |= 1 << i
	} else {
		bf.value &^= 1 << i
	}
	return nil
}

// Range returns the bits from begin to end inclusive, shifted down so that
// the begin bit is bit zero of the result. The begin index must not be
// greater than the end index.
func (bf BitField) Range(begin uint, end uint) (uint32, error) {
	if end >= bf.width {
		return 0, curated.Errorf(IndexOutOfRange, end, bf.width)
	}
	if begin > end {
		return 0, curated.Errorf(IndexOutOfRange, begin, end+1)
	}
	v := uint64(bf.value) & ((uint64(1) << (end + 1)) - 1)
	return uint32(v >> begin), nil
}
