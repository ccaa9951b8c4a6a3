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

// Package cpu emulates the NMOS 6502 microprocessor at instruction level.
// Like all 8-bit processors of the era, the 6502 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The CPU never allocates memory of its own.
// Every access is checked against the size of the memory before it is
// delegated, so the Memory implementation does not need to be defensive.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// It executes exactly one instruction and adds the number of cycles taken to
// the Cycles field.
//
//	mem, _ := memory.NewRAM(cpubus.AddressSpace)
//	mem.Load(0x0200, 0xa9, 0x42, 0xaa)
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPC(0x0200)
//
//	err := mc.RunFor(2)
//
// The Run(), RunFor() and RunWithHook() functions repeatedly call
// ExecuteInstruction() until the CPU halts or an error occurs. The CPU halts
// when the instruction budget is exhausted, when the program counter runs off
// the end of memory, or when Halt() is called from another goroutine.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Errors are returned as curated errors. The patterns for errors raised by
// the CPU and its sub-packages are:
//
//	registers.InvalidWidth
//	registers.IndexOutOfRange
//	cpubus.OutOfRange
//	cpu.IllegalOpcode
//
// None of these errors are recoverable. The state of the CPU after an error is
// not rolled back so use Snapshot() before running if the pristine state is
// required.
package cpu
