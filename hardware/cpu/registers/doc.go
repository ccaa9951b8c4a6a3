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

// Package registers implements the registers of the 6502. Every register is
// built on the BitField type, which stores a value of a fixed width and masks
// every value loaded into it. Overflow of a register is therefore always
// silent truncation, as it is in the hardware.
//
// The data registers (A, X and Y) carry the arithmetic and logical primitives
// used by the CPU. Flags are not changed by these functions, setting of flags
// is done by the caller. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.SetTo(registers.Carry, carry).SetTo(registers.Overflow, overflow)
//	sr.TestNZ(a.Value())
//
// In this case, the carry flag in the status register will be clear and the
// negative flag will be set.
//
// The status register composes a BitField of width eight and gives names to
// each bit with the Flag type.
package registers
