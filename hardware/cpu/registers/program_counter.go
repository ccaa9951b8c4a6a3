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

// ProgramCounter represents the PC register in the CPU.
type ProgramCounter struct {
	bits BitField
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	pc := ProgramCounter{bits: fixedBitField(16)}
	pc.Load(val)
	return pc
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.Address())
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return uint16(pc.bits.Value())
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.bits.Load(uint32(val))
}

// Add a value to the PC. The PC wraps around at the top of the 16 bit address
// space. Returns true if the addition wrapped.
func (pc *ProgramCounter) Add(val uint16) bool {
	v := pc.bits.Value() + uint32(val)
	pc.bits.Load(v)
	return v > 0xffff
}
