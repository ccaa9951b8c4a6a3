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

// Package script runs Lua scripts against a CPU and its memory. Scripts are
// useful for setting up memory, running a program and checking the results
// without having to write any Go.
//
// The following global functions are available to scripts:
//
//	poke(address, value)      write value to memory
//	peek(address)             read value from memory
//	load(origin, {bytes})     copy bytes into memory. returns the address after the last byte
//	step([n])                 execute n instructions (default 1). returns the number of cycles taken
//	run()                     execute instructions until the CPU halts
//	interrupt([nmi])          perform the interrupt acknowledgement sequence
//	reg(name)                 value of register A, X, Y, S, P or PC
//	setreg(name, value)       load register with value
//	flag(letter)              state of status flag N, V, R, B, D, I, Z or C
//	cycles()                  number of cycles executed since the CPU was reset
//	dump()                    print and return the CPU summary line
//	expect(condition, [msg])  fail the script if the condition is false
//
// The standard Lua print() function writes to the output given to NewRunner().
package script
