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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func TestNewCPU(t *testing.T) {
	mc, _ := newTestCPU(0)
	test.ExpectEquality(t, mc.String(), "PC:0000 CLK:0000 A:00 X:00 Y:00 S:FF __R_____")
	test.ExpectEquality(t, mc.State(), cpu.Running)
}

func TestEndToEnd(t *testing.T) {
	mem := newMockMem(4)
	mem.putInstructions(0, 0x38, 0xf8, 0x78, 0xaa)

	mc := cpu.NewCPU(mem)
	test.ExpectSuccess(t, mc.RunFor(4))

	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), true)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Decimal), true)
	test.ExpectEquality(t, mc.Status.IsSet(registers.InterruptDisable), true)
	test.ExpectEquality(t, mc.X.Value(), mc.A.Value())
	test.ExpectEquality(t, mc.Cycles, uint64(8))
	test.ExpectEquality(t, mc.State(), cpu.Halted)

	// TAX of zero sets the zero flag
	test.ExpectEquality(t, mc.String(), "PC:0004 CLK:0008 A:00 X:00 Y:00 S:FF __R_DIZC")
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "__R____C")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "__R_____")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "__R_____")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "__R__I__")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "__R_DI__")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "__R__I__")

	mc.Status.SetOverflow()
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "__R__I__")
	test.ExpectEquality(t, mc.Cycles, uint64(14))
}

func TestStackInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// SEC; PHP; CLC; PLP
	mem.putInstructions(0, 0x38, 0x08, 0x18, 0x28)
	step(t, mc) // SEC
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	// the pushed copy has the break flag set. the live register does not
	mem.assert(t, 0x01ff, 0x31)
	test.ExpectEquality(t, mc.Status.String(), "__R____C")

	step(t, mc) // CLC
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x31))

	// LDA #$00; PHA; LDA #$ff; PLA; PLP
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0xa9, 0x00, 0x48, 0xa9, 0xff, 0x68, 0x48, 0x28)
	step(t, mc) // LDA #$00
	step(t, mc) // PHA
	mem.assert(t, 0x01ff, 0x00)
	step(t, mc) // LDA #$ff
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), true)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), false)

	// PLP restores the status register verbatim, including the reserved bit
	step(t, mc) // PHA
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x00))

	// TSX; TXS
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0xba, 0xa2, 0x80, 0x9a)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)
	step(t, mc) // LDX #$80
	mc.Status.ClearNegative()
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x80))

	// TXS does not affect flags
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), false)
}

func TestRegisterArithmetic(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$80; ADC #$80
	mem.putInstructions(0, 0xa9, 0x80, 0x69, 0x80)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.String(), "_VR___ZC")

	// SEC; LDA #$05; SBC #$06
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0x38, 0xa9, 0x05, 0xe9, 0x06)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "N_R_____")

	// SED; CLC; LDA #$09; ADC #$01
	//
	// decimal mode is ignored
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0a))

	// LDX #$ff; INX; DEY; INY
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0xa2, 0xff, 0xe8, 0x88, 0xc8)
	step(t, mc)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), true)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), true)
}

func TestLogicalInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$f0; AND #$3c; ORA #$01; EOR #$ff
	mem.putInstructions(0, 0xa9, 0xf0, 0x29, 0x3c, 0x09, 0x01, 0x49, 0xff)
	step(t, mc)
	step(t, mc) // AND
	test.ExpectEquality(t, mc.A.Value(), uint8(0x30))
	step(t, mc) // ORA
	test.ExpectEquality(t, mc.A.Value(), uint8(0x31))
	step(t, mc) // EOR
	test.ExpectEquality(t, mc.A.Value(), uint8(0xce))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)

	// BIT $10
	mc, mem = newTestCPU(0)
	mem.putInstructions(0x10, 0xc0)
	mem.putInstructions(0, 0xa9, 0x01, 0x24, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "NVR___Z_")
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func TestCompareInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$10; CMP #$10; LDX #$10; CPX #$20; LDY #$30; CPY #$20
	mem.putInstructions(0, 0xa9, 0x10, 0xc9, 0x10, 0xa2, 0x10, 0xe0, 0x20, 0xa0, 0x30, 0xc0, 0x20)
	step(t, mc)
	step(t, mc) // CMP
	test.ExpectEquality(t, mc.Status.String(), "__R___ZC")
	step(t, mc)
	step(t, mc) // CPX
	test.ExpectEquality(t, mc.Status.String(), "N_R_____")
	step(t, mc)
	step(t, mc) // CPY
	test.ExpectEquality(t, mc.Status.String(), "__R____C")

	// registers are not changed by compare instructions
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x30))
}

func TestShiftInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$81; ASL A; LSR A; ROR A; ROL A
	mem.putInstructions(0, 0xa9, 0x81, 0x0a, 0x4a, 0x6a, 0x2a)
	step(t, mc)
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), true)
	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.Status.IsSet(registers.Carry), false)
	step(t, mc) // ROR A
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.String(), "__R___ZC")
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectEquality(t, mc.Status.String(), "__R_____")

	// ASL $10; ROR $10; INC $11; DEC $12
	mc, mem = newTestCPU(0)
	mem.putInstructions(0x10, 0x40, 0xff, 0x00)
	mem.putInstructions(0, 0x06, 0x10, 0x66, 0x10, 0xe6, 0x11, 0xc6, 0x12)
	r := step(t, mc) // ASL $10
	test.ExpectEquality(t, r.Cycles, 5)
	mem.assert(t, 0x10, 0x80)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)
	step(t, mc) // ROR $10
	mem.assert(t, 0x10, 0x40)
	step(t, mc) // INC $11
	mem.assert(t, 0x11, 0x00)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Zero), true)
	step(t, mc) // DEC $12
	mem.assert(t, 0x12, 0xff)
	test.ExpectEquality(t, mc.Status.IsSet(registers.Negative), true)

	// accumulator is untouched by RMW instructions on memory
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
}

func TestStoreInstructions(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$11; LDX #$22; LDY #$33; STA $0300; STX $40; STY $41,X
	mem.putInstructions(0, 0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33,
		0x8d, 0x00, 0x03, 0x86, 0x40, 0x94, 0x41)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0300, 0x11)
	mem.assert(t, 0x0040, 0x22)
	mem.assert(t, 0x0063, 0x33)
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDX #$01; LDA $02ff,X; STA $02ff,X; LDA $0200,X
	mem.putInstructions(0, 0xa2, 0x01, 0xbd, 0xff, 0x02, 0x9d, 0xff, 0x02, 0xbd, 0x00, 0x02)
	mem.putInstructions(0x0300, 0x42)

	r := step(t, mc) // LDX
	test.ExpectEquality(t, r.Cycles, 2)

	r = step(t, mc) // LDA $02ff,X
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))

	// stores never pay the page penalty
	r = step(t, mc) // STA $02ff,X
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, r.PageFault, false)

	r = step(t, mc) // LDA $0200,X
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, r.PageFault, false)

	test.ExpectEquality(t, mc.Cycles, uint64(16))

	// LDY #$10; LDA ($80),Y with pointer to $02f8
	mc, mem = newTestCPU(0)
	mem.putInstructions(0x80, 0xf8, 0x02)
	mem.putInstructions(0x0308, 0x99)
	mem.putInstructions(0, 0xa0, 0x10, 0xb1, 0x80)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
}

func TestBranching(t *testing.T) {
	// BNE not taken
	mc, mem := newTestCPU(0)
	mem.putInstructions(0, 0xa9, 0x00, 0xd0, 0x02)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0004))

	// BNE taken, same page
	mc, mem = newTestCPU(0)
	mem.putInstructions(0, 0xd0, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0004))

	// BNE taken, different page
	mc, mem = newTestCPU(0x00f0)
	mem.putInstructions(0x00f0, 0xd0, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0102))

	// BNE taken, backwards to a different page
	mc, mem = newTestCPU(0x0100)
	mem.putInstructions(0x0100, 0xd0, 0xf0)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x00f2))

	// every branch instruction with its flag set and then cleared
	branches := []struct {
		opcode uint8
		flag   registers.Flag
		taken  bool
	}{
		{opcode: 0x90, flag: registers.Carry, taken: false},
		{opcode: 0xb0, flag: registers.Carry, taken: true},
		{opcode: 0xf0, flag: registers.Zero, taken: true},
		{opcode: 0xd0, flag: registers.Zero, taken: false},
		{opcode: 0x30, flag: registers.Negative, taken: true},
		{opcode: 0x10, flag: registers.Negative, taken: false},
		{opcode: 0x70, flag: registers.Overflow, taken: true},
		{opcode: 0x50, flag: registers.Overflow, taken: false},
	}

	for _, b := range branches {
		for _, set := range []bool{true, false} {
			mc, mem = newTestCPU(0x0200)
			mem.putInstructions(0x0200, b.opcode, 0x10)
			mc.Status.SetTo(b.flag, set)
			r = step(t, mc)

			taken := b.taken == set
			test.ExpectEquality(t, r.BranchSuccess, taken, r.Defn.Operator, set)
			if taken {
				test.ExpectEquality(t, mc.PC.Address(), uint16(0x0212), r.Defn.Operator, set)
			} else {
				test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202), r.Defn.Operator, set)
			}
		}
	}
}

func TestJumps(t *testing.T) {
	// JMP $0300
	mc, mem := newTestCPU(0x0200)
	mem.putInstructions(0x0200, 0x4c, 0x00, 0x03)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))

	// JMP ($10ff). the pointer is not subject to page wrapping
	mc, mem = newTestCPU(0x0200)
	mem.putInstructions(0x10ff, 0x34, 0x12)
	mem.putInstructions(0x1000, 0x99)
	mem.putInstructions(0x0200, 0x6c, 0xff, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// JSR $0300; ... RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)

	r := step(t, mc) // JSR
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// return address is the last byte of the JSR instruction
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x02)

	r = step(t, mc) // RTS
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestBreak(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.setVector(cpubus.BRK, 0x0400)

	// BRK; ... RTI
	mem.putInstructions(0x0200, 0x00)
	mem.putInstructions(0x0400, 0x40)

	r := step(t, mc) // BRK
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0400))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x01)
	mem.assert(t, 0x01fd, 0x30)

	// break flag is only set in the pushed copy
	test.ExpectEquality(t, mc.Status.String(), "__R__I__")

	r = step(t, mc) // RTI
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	// status register is restored verbatim
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x30))
}

func TestInterrupt(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.setVector(cpubus.NMI, 0x0500)
	mem.setVector(cpubus.IRQ, 0x0600)

	// IRQ is masked by the interrupt disable flag
	mc.Status.SetInterruptDisable()
	test.ExpectSuccess(t, mc.Interrupt(false))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, mc.Cycles, uint64(0))

	// NMI is not masked
	mc.Status.SetCarry()
	test.ExpectSuccess(t, mc.Interrupt(true))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0500))
	test.ExpectEquality(t, mc.Cycles, uint64(7))
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x00)
	mem.assert(t, 0x01fd, 0x25)

	// IRQ with interrupt disable clear. break flag is clear in the pushed copy
	mc, mem = newTestCPU(0x0200)
	mem.setVector(cpubus.IRQ, 0x0600)
	mc.Status.SetBreak()
	test.ExpectSuccess(t, mc.Interrupt(false))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0600))
	test.ExpectEquality(t, mc.Status.IsSet(registers.InterruptDisable), true)
	mem.assert(t, 0x01fd, 0x20)
}

func TestIllegalOpcode(t *testing.T) {
	mc, mem := newTestCPU(0)
	mem.putInstructions(0, 0x02)

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.IllegalOpcode), true)

	// PC is left after the illegal opcode
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0001))
	test.ExpectEquality(t, mc.Cycles, uint64(0))

	// the run loop does not recover from the error
	mc.LoadPC(0)
	err = mc.Run()
	test.ExpectEquality(t, curated.Is(err, cpu.IllegalOpcode), true)
}

func TestOutOfRange(t *testing.T) {
	mem := newMockMem(4)
	mc := cpu.NewCPU(mem)

	// LDA $1000
	mem.putInstructions(0, 0xad, 0x00, 0x10)
	err := mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpubus.OutOfRange), true)

	// operand beyond end of memory
	mem.putInstructions(0, 0xea, 0xea, 0xea, 0xad)
	mc.LoadPC(3)
	err = mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpubus.OutOfRange), true)

	// stack beyond end of memory
	mem.putInstructions(0, 0x48)
	mc.LoadPC(0)
	err = mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpubus.OutOfRange), true)
}

func TestRun(t *testing.T) {
	// run until PC is beyond the end of memory
	mem := newMockMem(4)
	mem.putInstructions(0, 0xea, 0xea, 0xea, 0xea)
	mc := cpu.NewCPU(mem)
	test.ExpectSuccess(t, mc.Run())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0004))
	test.ExpectEquality(t, mc.Cycles, uint64(8))
	test.ExpectEquality(t, mc.State(), cpu.Halted)

	// instruction budget
	mc.Reset()
	test.ExpectEquality(t, mc.State(), cpu.Running)
	test.ExpectSuccess(t, mc.RunFor(3))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0003))
	test.ExpectEquality(t, mc.State(), cpu.Halted)

	// a budget of zero executes nothing
	test.ExpectSuccess(t, mc.RunFor(0))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0003))
}

func TestHalt(t *testing.T) {
	mc, mem := newTestCPU(0)
	mem.putInstructions(0, 0xea, 0xea, 0xea, 0xea)

	// a halt request before running stops the run before any instruction
	mc.Halt()
	test.ExpectSuccess(t, mc.RunFor(4))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0000))
	test.ExpectEquality(t, mc.State(), cpu.Halted)

	// the request has been consumed
	test.ExpectSuccess(t, mc.RunFor(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0002))

	// halt from the hook function
	mc.Reset()
	err := mc.RunWithHook(-1, func(r *execution.Result) error {
		if r.Address == 0x0001 {
			mc.Halt()
		}
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0002))

	// unconsumed halt requests do not carry over
	mc.Reset()
	err = mc.RunWithHook(1, func(r *execution.Result) error {
		mc.Halt()
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mc.RunFor(1))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0002))
}

func TestRunWithHook(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA #$01; TAX; INX
	mem.putInstructions(0, 0xa9, 0x01, 0xaa, 0xe8)

	var trace []string
	err := mc.RunWithHook(3, func(r *execution.Result) error {
		trace = append(trace, r.Defn.Operator.String())
		return r.IsValid()
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(trace), 3)
	test.ExpectEquality(t, trace[0], "LDA")
	test.ExpectEquality(t, trace[1], "TAX")
	test.ExpectEquality(t, trace[2], "INX")
	test.ExpectEquality(t, mc.X.Value(), uint8(0x02))

	// errors from the hook stop the run
	mc.Reset()
	stop := errors.New("stop")
	err = mc.RunWithHook(-1, func(r *execution.Result) error {
		return stop
	})
	test.ExpectEquality(t, errors.Is(err, stop), true)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0002))
}

func TestSnapshot(t *testing.T) {
	mc, mem := newTestCPU(0)
	mem.putInstructions(0, 0xa9, 0x42)

	snapshot := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, snapshot.A.Value(), uint8(0x00))
	test.ExpectEquality(t, snapshot.PC.Address(), uint16(0x0000))

	// the snapshot shares memory with the original
	step(t, snapshot)
	test.ExpectEquality(t, snapshot.A.Value(), uint8(0x42))
}

func TestLoadPCIndirect(t *testing.T) {
	mc, mem := newTestCPU(0)
	mem.setVector(cpubus.Reset, 0xc000)
	test.ExpectSuccess(t, mc.LoadPCIndirect(cpubus.Reset))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xc000))

	mc = cpu.NewCPU(newMockMem(0x100))
	err := mc.LoadPCIndirect(cpubus.Reset)
	test.ExpectEquality(t, curated.Is(err, cpubus.OutOfRange), true)
}

// every defined opcode should execute without error on an empty memory and
// produce a valid result.
func TestAllOpcodes(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		mc, mem := newTestCPU(0x0200)
		mem.putInstructions(0x0200, defn.OpCode)

		err := mc.ExecuteInstruction()
		if !test.ExpectSuccess(t, err, defn) {
			continue
		}
		test.ExpectSuccess(t, mc.LastResult.IsValid(), defn)
		test.ExpectEquality(t, mc.LastResult.ByteCount, defn.Bytes, defn)
		test.ExpectEquality(t, mc.Cycles >= uint64(defn.Cycles), true, defn)
	}
}
