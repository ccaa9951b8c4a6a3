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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is the identity of the error. Packages that raise errors that
// callers need to test for declare the pattern as an exported constant. For
// example, the registers package declares:
//
//	const InvalidWidth = "registers: invalid bit field width (%d)"
//
// And a caller can test for it with the Is() function:
//
//	_, err := registers.NewBitField(0)
//	if curated.Is(err, registers.InvalidWidth) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	err := mc.RunFor(100)
//	f := curated.Errorf("harness: %v", err)
//
//	if curated.Has(f, cpu.IllegalOpcode) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: illegal opcode"))
//	fmt.Println(e)
//
// Will print "cpu: illegal opcode" and not "cpu: cpu: illegal opcode".
//
// Curated errors that wrap another error value also implement Unwrap() so
// that the errors.Is() and errors.As() functions in the standard library will
// reach into the chain.
package curated
