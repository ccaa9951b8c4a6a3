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

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// StackPointer is the S register. It is an offset into the stack page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%s=%#02x", sp.Label(), sp.Value())
}

// Address returns the address in memory pointed to by the stack pointer.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackOrigin + uint16(sp.Value())
}

// Decrement moves the stack pointer down by one. Called after a value is
// pushed onto the stack.
func (sp *StackPointer) Decrement() {
	sp.Load(sp.Value() - 1)
}

// Increment moves the stack pointer up by one. Called before a value is
// pulled from the stack.
func (sp *StackPointer) Increment() {
	sp.Load(sp.Value() + 1)
}
