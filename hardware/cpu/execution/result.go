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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. nil if the opcode is undefined
	Defn *instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode
	ByteCount int

	// the operand of the instruction. for relative addressing this is the
	// unsigned offset as it appears in memory
	InstructionData uint16

	// the number of cycles taken by the instruction. usually the same as
	// Defn.Cycles but page faults and branches may add to this
	Cycles int

	// whether an extra cycle was required because the effective address is
	// on a different page to the base address
	PageFault bool

	// whether the branch condition was met
	BranchSuccess bool

	// whether the instruction has been fully executed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a disassembly of the instruction.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04X  ???", r.Address)
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf("$%04X", r.BranchTarget())
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02X,Y", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02X),Y", r.InstructionData)
	}

	s := fmt.Sprintf("%04X  %s", r.Address, r.Defn.Operator)
	if operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}

	if r.Final {
		s = fmt.Sprintf("%-20s [%d]", s, r.Cycles)
	}

	return s
}

// BranchTarget returns the address a relative branch would jump to. The
// result is meaningless for instructions that are not branches.
func (r Result) BranchTarget() uint16 {
	next := r.Address + uint16(r.ByteCount)
	return next + uint16(int8(uint8(r.InstructionData)))
}
