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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// InvalidSize is the error pattern used when a RAM cannot be created.
const InvalidSize = "memory: invalid size (%d)"

// RAM is a flat area of memory starting at address zero.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The size
// must be between one and the size of the full address space.
func NewRAM(size int) (*RAM, error) {
	if size <= 0 || size > cpubus.AddressSpace {
		return nil, curated.Errorf(InvalidSize, size)
	}
	return &RAM{
		memory: make([]uint8, size),
	}, nil
}

// String returns a hex dump of the RAM. Rows that are entirely zero are
// omitted.
func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(ram.memory); y += 16 {
		row := ram.memory[y:min(y+16, len(ram.memory))]

		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			continue
		}

		s.WriteString(fmt.Sprintf("%03X- | ", y>>4))
		for _, v := range row {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Size implements the cpubus.Memory interface.
func (ram RAM) Size() int {
	return len(ram.memory)
}

func (ram RAM) check(address uint16) error {
	if int(address) >= len(ram.memory) {
		return curated.Errorf(cpubus.OutOfRange, address, len(ram.memory))
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (ram RAM) Read(address uint16) (uint8, error) {
	if err := ram.check(address); err != nil {
		return 0, err
	}
	return ram.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	if err := ram.check(address); err != nil {
		return err
	}
	ram.memory[address] = data
	return nil
}

// Peek returns the value at address. Addresses beyond the end of memory
// return zero.
func (ram RAM) Peek(address uint16) uint8 {
	if int(address) >= len(ram.memory) {
		return 0
	}
	return ram.memory[address]
}

// Poke writes the value to address. Writes beyond the end of memory are
// ignored.
func (ram *RAM) Poke(address uint16, value uint8) {
	if int(address) < len(ram.memory) {
		ram.memory[address] = value
	}
}

// Load copies data into memory starting at origin. Returns the address after
// the last byte written.
func (ram *RAM) Load(origin uint16, data ...uint8) (uint16, error) {
	if int(origin)+len(data) > len(ram.memory) {
		return origin, curated.Errorf(cpubus.OutOfRange, int(origin)+len(data)-1, len(ram.memory))
	}
	copy(ram.memory[origin:], data)
	return origin + uint16(len(data)), nil
}

// SetVector writes the little-endian address to the vector. The vector should
// be one of the vector addresses in the cpubus package.
func (ram *RAM) SetVector(vector uint16, address uint16) error {
	_, err := ram.Load(vector, uint8(address), uint8(address>>8))
	return err
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	clear(ram.memory)
}
