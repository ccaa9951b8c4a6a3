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
	"sync/atomic"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// IllegalOpcode is the error pattern used when the CPU fetches an opcode that
// has no definition in the instruction table.
const IllegalOpcode = "cpu: illegal opcode (%#02x) at %#04x"

// CPU implements the NMOS 6502. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	registers.File

	// cumulative number of cycles consumed since the last Reset()
	Cycles uint64

	// the result of the most recent call to ExecuteInstruction(). the address
	// field is valid even when ExecuteInstruction() returned an error
	LastResult execution.Result

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// some operations only need an accumulator
	acc8 registers.Register

	// halt is checked once per iteration of the run loop. it can be set from
	// any goroutine
	halt atomic.Bool

	state State
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is initialised in the power-on state with the program counter at zero.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		File:         registers.NewFile(),
		mem:          mem,
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
		state:        Running,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares the
// memory of the original.
func (mc *CPU) Snapshot() *CPU {
	return &CPU{
		File:         mc.File,
		Cycles:       mc.Cycles,
		LastResult:   mc.LastResult,
		mem:          mc.mem,
		instructions: mc.instructions,
		acc8:         mc.acc8,
		state:        mc.state,
	}
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// String returns a single line summary of the CPU state, suitable for
// diagnostics.
func (mc *CPU) String() string {
	return fmt.Sprintf("PC:%04X CLK:%04d A:%02X X:%02X Y:%02X S:%02X %s",
		mc.PC.Address(), mc.Cycles,
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.SP.Value(),
		mc.Status)
}

// Reset reinitialises all registers and the cycle count. Does not load PC with
// RESET vector. Use cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.File.Reset()
	mc.Cycles = 0
	mc.LastResult.Reset()
	mc.halt.Store(false)
	mc.state = Running
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// ExecuteInstruction steps CPU forward one instruction. The cycle count of the
// instruction is added to the Cycles field and the details of the instruction
// are recorded in LastResult.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		err = curated.Errorf(IllegalOpcode, opcode, mc.LastResult.Address)
		logger.Log(logger.Allow, "cpu", err.Error())
		return err
	}
	mc.LastResult.Defn = defn

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	address, pageCrossed, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return err
	}

	// page crossing only costs a cycle for page sensitive instructions. for
	// branches the penalty is only paid if the branch is taken (see branch())
	if defn.PageSensitive {
		mc.LastResult.PageFault = pageCrossed
	}

	// value is the operand of the instruction. for RMW instructions the value
	// will change during execution and is written back to memory (or the
	// accumulator) at the end of the instruction
	var value uint8

	if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
		switch defn.AddressingMode {
		case instructions.Implied:
			// no value required
		case instructions.Accumulator:
			value = mc.A.Value()
		case instructions.Immediate:
			value = uint8(mc.LastResult.InstructionData)
		default:
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.ClearInterruptDisable()

	case instructions.Sei:
		mc.Status.SetInterruptDisable()

	case instructions.Clc:
		mc.Status.ClearCarry()

	case instructions.Sec:
		mc.Status.SetCarry()

	case instructions.Cld:
		mc.Status.ClearDecimal()

	case instructions.Sed:
		mc.Status.SetDecimal()

	case instructions.Clv:
		mc.Status.ClearOverflow()

	case instructions.Pha:
		err = mc.push8(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Pla:
		value, err = mc.pull8()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Php:
		// the pushed copy always has the break and reserved bits set
		err = mc.push8(mc.Status.Value() | breakAndReserved)
		if err != nil {
			return err
		}

	case instructions.Plp:
		value, err = mc.pull8()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.TestNZ(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.TestNZ(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.TestNZ(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.TestNZ(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.TestNZ(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.TestNZ(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.TestNZ(mc.Y.Value())

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.TestNZ(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.TestNZ(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.TestNZ(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.TestNZ(mc.Y.Value())

	case instructions.Asl:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetTo(registers.Carry, r.ASL()).TestNZ(r.Value())
		value = r.Value()

	case instructions.Lsr:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetTo(registers.Carry, r.LSR()).TestNZ(r.Value())
		value = r.Value()

	case instructions.Rol:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetTo(registers.Carry, r.ROL(mc.Status.IsSet(registers.Carry))).TestNZ(r.Value())
		value = r.Value()

	case instructions.Ror:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetTo(registers.Carry, r.ROR(mc.Status.IsSet(registers.Carry))).TestNZ(r.Value())
		value = r.Value()

	case instructions.Inc:
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.TestNZ(r.Value())
		value = r.Value()

	case instructions.Dec:
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.TestNZ(r.Value())
		value = r.Value()

	case instructions.Adc:
		// the decimal flag is ignored. arithmetic is always binary
		carry, overflow := mc.A.Add(value, mc.Status.IsSet(registers.Carry))
		mc.Status.SetTo(registers.Carry, carry).SetTo(registers.Overflow, overflow).TestNZ(mc.A.Value())

	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(value, mc.Status.IsSet(registers.Carry))
		mc.Status.SetTo(registers.Carry, carry).SetTo(registers.Overflow, overflow).TestNZ(mc.A.Value())

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetTo(registers.Negative, r.IsNegative())
		mc.Status.SetTo(registers.Overflow, r.IsBitV())
		r.AND(mc.A.Value())
		mc.Status.SetTo(registers.Zero, r.IsZero())

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.IsSet(registers.Carry), address, pageCrossed)

	case instructions.Bcs:
		mc.branch(mc.Status.IsSet(registers.Carry), address, pageCrossed)

	case instructions.Beq:
		mc.branch(mc.Status.IsSet(registers.Zero), address, pageCrossed)

	case instructions.Bmi:
		mc.branch(mc.Status.IsSet(registers.Negative), address, pageCrossed)

	case instructions.Bne:
		mc.branch(!mc.Status.IsSet(registers.Zero), address, pageCrossed)

	case instructions.Bpl:
		mc.branch(!mc.Status.IsSet(registers.Negative), address, pageCrossed)

	case instructions.Bvc:
		mc.branch(!mc.Status.IsSet(registers.Overflow), address, pageCrossed)

	case instructions.Bvs:
		mc.branch(mc.Status.IsSet(registers.Overflow), address, pageCrossed)

	case instructions.Jsr:
		// the return address on the stack is the address of the last byte of
		// the JSR instruction
		err = mc.push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var rtn uint16
		rtn, err = mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(rtn)
		mc.PC.Add(1)

	case instructions.Brk:
		// PC has already been advanced past the BRK opcode
		err = mc.push16(mc.PC.Address())
		if err != nil {
			return err
		}

		// the break flag is only set in the pushed copy of the status register
		err = mc.push8(mc.Status.Value() | breakAndReserved)
		if err != nil {
			return err
		}

		mc.Status.SetInterruptDisable()

		err = mc.LoadPCIndirect(cpubus.BRK)
		if err != nil {
			return err
		}

	case instructions.Rti:
		value, err = mc.pull8()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		var rtn uint16
		rtn, err = mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(rtn)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory or accumulator
	if defn.Effect == instructions.RMW {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		} else {
			err = mc.write8Bit(address, value)
			if err != nil {
				return err
			}
		}
	}

	// finalise result
	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles++
	}
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}
	mc.LastResult.Final = true

	mc.Cycles += uint64(mc.LastResult.Cycles)

	return nil
}

// the status bits forced on in the copy of the status register pushed by PHP
// and BRK
const breakAndReserved = uint8(1<<registers.Break | 1<<registers.Reserved)

// compare sets the flags according to the result of subtracting value from
// the register. the register is unchanged.
func (mc *CPU) compare(reg registers.Register, value uint8) {
	r := mc.acc8
	r.Load(reg.Value())
	carry, _ := r.Subtract(value, true)
	mc.Status.SetTo(registers.Carry, carry).TestNZ(r.Value())
}

// branch loads the address into the PC if the condition is true. the address
// and pageCrossed arguments are the result of relative addressing.
func (mc *CPU) branch(condition bool, address uint16, pageCrossed bool) {
	if !condition {
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.LastResult.PageFault = pageCrossed
	mc.PC.Load(address)
}
