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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolve consumes the operand bytes of the current instruction and returns
// the effective address for the addressing mode. The second return value
// indicates whether the indexing or relative offset moved the address onto a
// different page.
//
// For immediate addressing the address is that of the operand byte itself.
// For implied and accumulator addressing the address is meaningless and will
// be zero.
//
// LastResult.InstructionData is set to the operand as it appears in memory.
func (mc *CPU) resolve(mode instructions.AddressingMode) (uint16, bool, error) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false, nil

	case instructions.Immediate:
		address := mc.PC.Address()
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		return address, false, nil

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		return uint16(v), false, nil

	case instructions.ZeroPageIndexedX:
		return mc.resolveZeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		return mc.resolveZeroPageIndexed(mc.Y.Value())

	case instructions.Absolute:
		v, err := mc.read16BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = v
		return v, false, nil

	case instructions.AbsoluteIndexedX:
		return mc.resolveAbsoluteIndexed(mc.X.Value())

	case instructions.AbsoluteIndexedY:
		return mc.resolveAbsoluteIndexed(mc.Y.Value())

	case instructions.Indirect:
		// only used by JMP. the pointer is read as a normal 16 bit value and
		// does not suffer from the page wrapping of the NMOS part
		indirectAddress, err := mc.read16BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = indirectAddress

		address, err := mc.read16Bit(indirectAddress)
		if err != nil {
			return 0, false, err
		}
		return address, false, nil

	case instructions.IndexedIndirect: // x indexing
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)

		// the pointer never leaves the zero page
		address, err := mc.read16Bit(uint16(v + mc.X.Value()))
		if err != nil {
			return 0, false, err
		}

		// never a page fault with pre-index indirect addressing
		return address, false, nil

	case instructions.IndirectIndexed: // y indexing
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)

		base, err := mc.read16Bit(uint16(v))
		if err != nil {
			return 0, false, err
		}

		address := base + mc.Y.Address()
		return address, crossesPage(base, address), nil

	case instructions.Relative:
		// the offset is relative to the PC after the operand has been read
		v, err := mc.read8BitPC()
		if err != nil {
			return 0, false, err
		}
		mc.LastResult.InstructionData = uint16(v)

		pc := mc.PC.Address()
		address := pc + uint16(int8(v))
		return address, crossesPage(pc, address), nil
	}

	return 0, false, fmt.Errorf("cpu: unknown addressing mode (%s)", mode)
}

func (mc *CPU) resolveZeroPageIndexed(index uint8) (uint16, bool, error) {
	v, err := mc.read8BitPC()
	if err != nil {
		return 0, false, err
	}
	mc.LastResult.InstructionData = uint16(v)

	// 8 bit addition wraps within the zero page
	mc.acc8.Load(v)
	mc.acc8.Add(index, false)

	return mc.acc8.Address(), false, nil
}

func (mc *CPU) resolveAbsoluteIndexed(index uint8) (uint16, bool, error) {
	base, err := mc.read16BitPC()
	if err != nil {
		return 0, false, err
	}
	mc.LastResult.InstructionData = base

	address := base + uint16(index)
	return address, crossesPage(base, address), nil
}

// crossesPage returns true if the two addresses are on different pages.
func crossesPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}
