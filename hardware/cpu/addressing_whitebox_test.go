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
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func newWhiteboxCPU(t *testing.T) (*CPU, *memory.RAM) {
	t.Helper()
	mem, err := memory.NewRAM(cpubus.AddressSpace)
	test.DemandSuccess(t, err)
	return NewCPU(mem), mem
}

func TestResolve(t *testing.T) {
	type resolution struct {
		mode        instructions.AddressingMode
		operand     []uint8
		address     uint16
		pageCrossed bool
	}

	mc, mem := newWhiteboxCPU(t)

	mem.Poke(0x0001, 0x34)
	mem.Poke(0x0002, 0x12)
	mem.Poke(0x0080, 0xf0)
	mem.Poke(0x0081, 0x20)
	mem.Poke(0x00ff, 0x00)
	mem.Poke(0x0100, 0x30)
	mem.Poke(0x2000, 0x78)
	mem.Poke(0x2001, 0x56)

	mc.X.Load(0x10)
	mc.Y.Load(0x20)

	resolutions := []resolution{
		{mode: instructions.Implied},
		{mode: instructions.Accumulator},
		{mode: instructions.Immediate, operand: []uint8{0x42}, address: 0x0200},
		{mode: instructions.ZeroPage, operand: []uint8{0x42}, address: 0x0042},
		{mode: instructions.ZeroPageIndexedX, operand: []uint8{0x42}, address: 0x0052},
		{mode: instructions.ZeroPageIndexedX, operand: []uint8{0xf8}, address: 0x0008},
		{mode: instructions.ZeroPageIndexedY, operand: []uint8{0xf8}, address: 0x0018},
		{mode: instructions.Absolute, operand: []uint8{0x34, 0x12}, address: 0x1234},
		{mode: instructions.AbsoluteIndexedX, operand: []uint8{0x34, 0x12}, address: 0x1244},
		{mode: instructions.AbsoluteIndexedX, operand: []uint8{0xf8, 0x12}, address: 0x1308, pageCrossed: true},
		{mode: instructions.AbsoluteIndexedY, operand: []uint8{0xf0, 0xff}, address: 0x0010, pageCrossed: true},
		{mode: instructions.Indirect, operand: []uint8{0x00, 0x20}, address: 0x5678},
		{mode: instructions.IndexedIndirect, operand: []uint8{0xf1}, address: 0x1234},
		{mode: instructions.IndexedIndirect, operand: []uint8{0xef}, address: 0x3000},
		{mode: instructions.IndirectIndexed, operand: []uint8{0x80}, address: 0x2110, pageCrossed: true},
		{mode: instructions.Relative, operand: []uint8{0x10}, address: 0x0211},
		{mode: instructions.Relative, operand: []uint8{0xff}, address: 0x0200},
		{mode: instructions.Relative, operand: []uint8{0xfe}, address: 0x01ff, pageCrossed: true},
		{mode: instructions.Relative, operand: []uint8{0x80}, address: 0x0181, pageCrossed: true},
	}

	for _, r := range resolutions {
		mc.LastResult.Reset()
		mc.LoadPC(0x0200)
		_, err := mem.Load(0x0200, r.operand...)
		test.DemandSuccess(t, err)

		address, pageCrossed, err := mc.resolve(r.mode)
		test.ExpectSuccess(t, err, r.mode)
		test.ExpectEquality(t, address, r.address, r.mode)
		test.ExpectEquality(t, pageCrossed, r.pageCrossed, r.mode)

		// the PC is advanced by exactly the number of operand bytes
		test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(r.mode.OperandBytes()), r.mode)
		test.ExpectEquality(t, mc.LastResult.ByteCount, r.mode.OperandBytes(), r.mode)
	}
}

func TestResolveWrap(t *testing.T) {
	mc, mem := newWhiteboxCPU(t)

	// absolute indexing wraps around the address space
	mc.X.Load(0x02)
	mc.LoadPC(0x0200)
	_, err := mem.Load(0x0200, 0xff, 0xff)
	test.DemandSuccess(t, err)

	address, pageCrossed, err := mc.resolve(instructions.AbsoluteIndexedX)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, address, uint16(0x0001))
	test.ExpectEquality(t, pageCrossed, true)

	// program counter wraps around the address space
	mc.LoadPC(0xffff)
	mem.Poke(0xffff, 0x42)
	address, _, err = mc.resolve(instructions.Immediate)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, address, uint16(0xffff))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0000))
	test.ExpectEquality(t, mc.LastResult.InstructionData, uint16(0x42))

	// 16 bit reads wrap around the address space
	mem.Poke(0xffff, 0x00)
	mem.Poke(0x0000, 0x80)
	v, err := mc.read16Bit(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x8000))
}

func TestStack(t *testing.T) {
	mc, mem := newWhiteboxCPU(t)

	test.DemandSuccess(t, mc.push16(0x1234))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mem.Peek(0x01ff), uint8(0x12))
	test.ExpectEquality(t, mem.Peek(0x01fe), uint8(0x34))

	v, err := mc.pull16()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1234))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	// the stack pointer wraps within the stack page
	mc.SP.Load(0x00)
	test.DemandSuccess(t, mc.push8(0x99))
	test.ExpectEquality(t, mem.Peek(0x0100), uint8(0x99))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	b, err := mc.pull8()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x99))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x00))
}

func TestCrossesPage(t *testing.T) {
	test.ExpectEquality(t, crossesPage(0x00ff, 0x0100), true)
	test.ExpectEquality(t, crossesPage(0x0100, 0x01ff), false)
	test.ExpectEquality(t, crossesPage(0xffff, 0x0000), true)
}
