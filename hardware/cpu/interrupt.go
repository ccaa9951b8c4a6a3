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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// the number of cycles taken by the interrupt acknowledgement sequence.
const interruptCycles = 7

// Interrupt performs the acknowledgement sequence for a hardware interrupt.
// The CPU does not model the interrupt lines so the caller decides when an
// interrupt occurs, usually between calls to ExecuteInstruction().
//
// A maskable interrupt (nmi == false) is ignored if the InterruptDisable flag
// is set. Otherwise the PC and the status register are pushed onto the stack,
// the InterruptDisable flag is set and the PC is loaded from the NMI or IRQ
// vector. The pushed copy of the status register has the Break flag cleared,
// which is how an interrupt handler distinguishes an interrupt from a BRK
// instruction.
func (mc *CPU) Interrupt(nmi bool) error {
	if !nmi && mc.Status.IsSet(registers.InterruptDisable) {
		return nil
	}

	err := mc.push16(mc.PC.Address())
	if err != nil {
		return err
	}

	p := (mc.Status.Value() &^ (1 << registers.Break)) | (1 << registers.Reserved)
	err = mc.push8(p)
	if err != nil {
		return err
	}

	mc.Status.SetInterruptDisable()

	vector := cpubus.IRQ
	if nmi {
		vector = cpubus.NMI
	}

	err = mc.LoadPCIndirect(vector)
	if err != nil {
		return err
	}

	mc.Cycles += interruptCycles

	return nil
}
