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

// Package instructions defines the instruction set of the 6502. The table of
// definitions in table.go is generated from the CSV file in the generator
// directory:
//
//	go generate ./hardware/cpu/instructions
//
// Only the documented NMOS instructions are defined. Every other opcode has a
// nil entry in the table and it is the job of the CPU to treat that as an
// error.
package instructions

//go:generate go run ./generator
