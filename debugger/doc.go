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

// Package debugger implements a simple single-key stepping debugger for the
// CPU. Keys are read from an io.Reader, usually a terminal in cbreak mode (see
// the easyterm sub-package), and the results are written to an io.Writer.
//
// The debugger is deliberately simple. There are no command lines, only
// single key commands:
//
//	s, space, return    step one instruction
//	r                   run until a breakpoint is reached or the CPU halts
//	b                   toggle breakpoint at the current PC
//	l                   list breakpoints
//	m                   show memory at the current PC
//	z                   show the zero page
//	i                   trigger a maskable interrupt (IRQ)
//	n                   trigger a non-maskable interrupt (NMI)
//	x                   reset the CPU and load the PC from the reset vector
//	?                   show help
//	q, ctrl-c, ctrl-d   quit
package debugger
