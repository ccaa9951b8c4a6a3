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
)

// Register is an eight bit data register. Used for the A, X and Y registers
// of the CPU and for intermediate values during instruction execution.
type Register struct {
	label string
	bits  BitField
}

// NewRegister creates a new register with a name and initial value.
func NewRegister(val uint8, label string) Register {
	r := Register{
		label: label,
		bits:  fixedBitField(8),
	}
	r.Load(val)
	return r
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.Value())
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return uint8(r.bits.Value())
}

// Address returns the current value of the register as a uint16. Useful when
// the register is used in an address context.
func (r Register) Address() uint16 {
	return uint16(r.bits.Value())
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.bits.Value()&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.bits.Value() == 0
}

// IsBitV returns the state of the second most significant bit.
func (r Register) IsBitV() bool {
	return r.bits.Value()&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.bits.Load(uint32(val))
}

// Add value to register with carry in. Returns the carry out and overflow
// states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	a := r.Value()

	sum := uint32(a) + uint32(val)
	if carry {
		sum++
	}
	r.bits.Load(sum)
	c := r.Value()

	// overflow if both operands have the same sign and the sign of the result
	// is different
	overflow = ((a^val)^0x80)&(a^c)&0x80 != 0

	return sum > 0xff, overflow
}

// Subtract value from register with carry in. A clear carry is a borrow.
// Returns carry and overflow states. The operation is an Add() of the ones'
// complement of the value.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	return r.Add(val^0xff, carry)
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.bits.Load(r.bits.Value() & uint32(val))
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.bits.Load(r.bits.Value() | uint32(val))
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.bits.Load(r.bits.Value() ^ uint32(val))
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.bits.Load(r.bits.Value() << 1)
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns
// the least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.bits.Value()&0x01 == 0x01
	r.bits.Load(r.bits.Value() >> 1)
	return carry
}

// ROL rotates register one bit to the left through the carry. Returns the
// most significant bit as it was before the rotation.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	v := r.bits.Value() << 1
	if carry {
		v |= 0x01
	}
	r.bits.Load(v)
	return rcarry
}

// ROR rotates register one bit to the right through the carry. Returns the
// least significant bit as it was before the rotation.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.bits.Value()&0x01 == 0x01
	v := r.bits.Value() >> 1
	if carry {
		v |= 0x80
	}
	r.bits.Load(v)
	return rcarry
}
