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

// Package cpubus defines the interface between the CPU and the memory it
// executes from. The CPU never allocates memory of its own, the caller
// provides an implementation of the Memory interface.
//
// The addresses of the interrupt vectors are also defined here. By convention
// the top six bytes of the address space hold the vectors and the second page
// of memory is the stack. Neither convention is enforced.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Size() returns the number of addressable bytes. The CPU will not call Read()
// or Write() with an address that is equal to or greater than Size(). For the
// full address space of the 6502 the size is 0x10000. Smaller memories are
// allowed.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Size() int
}

// OutOfRange is the error pattern used when an address is beyond the end of
// memory.
const OutOfRange = "cpubus: address %#04x out of range for memory of size %#04x"

// AddressSpace is the size of the full 6502 address space.
const AddressSpace = 0x10000

// StackOrigin is the address of the first byte of the stack page.
const StackOrigin = uint16(0x0100)

// Address of the vectors in memory.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
	BRK   = IRQ
)
