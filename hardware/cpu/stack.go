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

package cpu

// push8 writes the value to the stack and decrements the stack pointer.
func (mc *CPU) push8(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

// pull8 increments the stack pointer and returns the value at the top of the
// stack.
func (mc *CPU) pull8() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// push16 writes the value to the stack, high byte first, so that it sits in
// memory as a little-endian word.
func (mc *CPU) push16(value uint16) error {
	err := mc.push8(uint8(value >> 8))
	if err != nil {
		return err
	}
	return mc.push8(uint8(value))
}

// pull16 is the reverse of push16.
func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull8()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
