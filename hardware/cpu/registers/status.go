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
	"strings"
)

// Flag is the index of a bit in the status register.
type Flag uint

// List of valid Flag values.
const (
	Carry Flag = iota
	Zero
	InterruptDisable
	Decimal
	Break
	Reserved
	Overflow
	Negative
)

// the letter used for each flag when rendering the status register, indexed
// by Flag
var flagLetters = [8]rune{'C', 'Z', 'I', 'D', 'B', 'R', 'V', 'N'}

func (f Flag) String() string {
	if int(f) < len(flagLetters) {
		return string(flagLetters[f])
	}
	return "?"
}

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	bits BitField
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is returned in the reset state.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{bits: fixedBitField(8)}
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String renders the status register with one character per flag, from
// Negative down to Carry. The letter for the flag is used when it is set and
// an underscore when it is clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for f := Negative; ; f-- {
		if sr.IsSet(f) {
			s.WriteRune(flagLetters[f])
		} else {
			s.WriteRune('_')
		}
		if f == Carry {
			break
		}
	}
	return s.String()
}

// Reset clears all flags except for the Reserved flag, which is always set
// after a reset.
func (sr *StatusRegister) Reset() {
	sr.bits.Load(0)
	sr.SetFlag(Reserved)
}

// Value returns the status register as an eight bit value.
func (sr StatusRegister) Value() uint8 {
	return uint8(sr.bits.Value())
}

// Load an eight bit value into the status register. The value is loaded
// verbatim, including the Break and Reserved bits.
func (sr *StatusRegister) Load(v uint8) {
	sr.bits.Load(uint32(v))
}

// SetFlag sets the flag.
func (sr *StatusRegister) SetFlag(f Flag) *StatusRegister {
	sr.bits.Load(sr.bits.Value() | 1<<f)
	return sr
}

// ClearFlag clears the flag.
func (sr *StatusRegister) ClearFlag(f Flag) *StatusRegister {
	sr.bits.Load(sr.bits.Value() &^ (1 << f))
	return sr
}

// SetTo sets the flag if set is true and clears it otherwise.
func (sr *StatusRegister) SetTo(f Flag, set bool) *StatusRegister {
	if set {
		return sr.SetFlag(f)
	}
	return sr.ClearFlag(f)
}

// GetFlag returns the value of the flag as zero or one.
func (sr StatusRegister) GetFlag(f Flag) uint8 {
	return uint8(sr.bits.Value()>>f) & 0x01
}

// IsSet returns true if the flag is set.
func (sr StatusRegister) IsSet(f Flag) bool {
	return sr.GetFlag(f) == 1
}

// TestNZ sets the Negative and Zero flags according to the value. No other
// flag is affected.
func (sr *StatusRegister) TestNZ(v uint8) *StatusRegister {
	return sr.SetTo(Negative, v&0x80 == 0x80).SetTo(Zero, v == 0)
}

// SetCarry sets the Carry flag.
func (sr *StatusRegister) SetCarry() *StatusRegister { return sr.SetFlag(Carry) }

// ClearCarry clears the Carry flag.
func (sr *StatusRegister) ClearCarry() *StatusRegister { return sr.ClearFlag(Carry) }

// SetZero sets the Zero flag.
func (sr *StatusRegister) SetZero() *StatusRegister { return sr.SetFlag(Zero) }

// ClearZero clears the Zero flag.
func (sr *StatusRegister) ClearZero() *StatusRegister { return sr.ClearFlag(Zero) }

// SetInterruptDisable sets the InterruptDisable flag.
func (sr *StatusRegister) SetInterruptDisable() *StatusRegister {
	return sr.SetFlag(InterruptDisable)
}

// ClearInterruptDisable clears the InterruptDisable flag.
func (sr *StatusRegister) ClearInterruptDisable() *StatusRegister {
	return sr.ClearFlag(InterruptDisable)
}

// SetDecimal sets the Decimal flag.
func (sr *StatusRegister) SetDecimal() *StatusRegister { return sr.SetFlag(Decimal) }

// ClearDecimal clears the Decimal flag.
func (sr *StatusRegister) ClearDecimal() *StatusRegister { return sr.ClearFlag(Decimal) }

// SetBreak sets the Break flag.
func (sr *StatusRegister) SetBreak() *StatusRegister { return sr.SetFlag(Break) }

// ClearBreak clears the Break flag.
func (sr *StatusRegister) ClearBreak() *StatusRegister { return sr.ClearFlag(Break) }

// SetOverflow sets the Overflow flag.
func (sr *StatusRegister) SetOverflow() *StatusRegister { return sr.SetFlag(Overflow) }

// ClearOverflow clears the Overflow flag.
func (sr *StatusRegister) ClearOverflow() *StatusRegister { return sr.ClearFlag(Overflow) }

// SetNegative sets the Negative flag.
func (sr *StatusRegister) SetNegative() *StatusRegister { return sr.SetFlag(Negative) }

// ClearNegative clears the Negative flag.
func (sr *StatusRegister) ClearNegative() *StatusRegister { return sr.ClearFlag(Negative) }
