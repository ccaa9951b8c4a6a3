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

import "fmt"

// File is the complete set of CPU registers.
type File struct {
	PC     ProgramCounter
	A      Register
	X      Register
	Y      Register
	SP     StackPointer
	Status StatusRegister
}

// NewFile returns a register file in the power-on state: every register is
// zero except for the stack pointer, which is 0xff, and the Reserved flag of
// the status register, which is set.
func NewFile() File {
	return File{
		PC:     NewProgramCounter(0),
		A:      NewRegister(0, "A"),
		X:      NewRegister(0, "X"),
		Y:      NewRegister(0, "Y"),
		SP:     NewStackPointer(0xff),
		Status: NewStatusRegister(),
	}
}

// Reset the register file to the power-on state.
func (f *File) Reset() {
	f.PC.Load(0)
	f.A.Load(0)
	f.X.Load(0)
	f.Y.Load(0)
	f.SP.Load(0xff)
	f.Status.Reset()
}

func (f File) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		f.PC.Label(), f.PC, f.A, f.X, f.Y,
		f.SP, f.Status.Label(), f.Status)
}
