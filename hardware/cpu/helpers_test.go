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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/test"
)

// mockMem is a flat memory of any size. it doesn't check the bounds of
// addresses because the CPU is expected to do that.
type mockMem struct {
	internal []uint8
}

func newMockMem(size int) *mockMem {
	return &mockMem{internal: make([]uint8, size)}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Size() int {
	return len(mem.internal)
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	copy(mem.internal[origin:], bytes)
	return origin + uint16(len(bytes))
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

// step executes one instruction and checks the result for consistency. the
// test fails immediately if either the instruction or the check fails.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// newTestCPU returns a CPU with a full 64K mock memory and the PC set to
// origin.
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem(0x10000)
	mc := cpu.NewCPU(mem)
	mc.LoadPC(origin)
	return mc, mem
}
