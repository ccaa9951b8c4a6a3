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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestString(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{
		Address:         0x0200,
		Defn:            defs[0xa9],
		ByteCount:       2,
		InstructionData: 0x42,
	}
	test.ExpectEquality(t, r.String(), "0200  LDA #$42")

	r.Final = true
	r.Cycles = 2
	test.ExpectEquality(t, r.String(), "0200  LDA #$42       [2]")

	r = execution.Result{
		Address:         0x0300,
		Defn:            defs[0xbd],
		ByteCount:       3,
		InstructionData: 0x12ff,
	}
	test.ExpectEquality(t, r.String(), "0300  LDA $12FF,X")

	r = execution.Result{Address: 0x0400, Defn: defs[0x0a], ByteCount: 1}
	test.ExpectEquality(t, r.String(), "0400  ASL A")

	r = execution.Result{Address: 0x0400, Defn: defs[0xea], ByteCount: 1}
	test.ExpectEquality(t, r.String(), "0400  NOP")

	r = execution.Result{Address: 0x0500}
	test.ExpectEquality(t, r.String(), "0500  ???")
}

func TestBranchTarget(t *testing.T) {
	defs := instructions.GetDefinitions()

	// backwards
	r := execution.Result{Address: 0x0210, Defn: defs[0xd0], ByteCount: 2, InstructionData: 0xfc}
	test.ExpectEquality(t, r.BranchTarget(), 0x020e)
	test.ExpectEquality(t, r.String(), "0210  BNE $020E")

	// forwards
	r.InstructionData = 0x10
	test.ExpectEquality(t, r.BranchTarget(), 0x0222)
}

func TestIsValid(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{}
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Defn: defs[0xa9], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())

	// wrong number of bytes
	r.ByteCount = 3
	test.ExpectFailure(t, r.IsValid())

	// page faults only for page sensitive instructions
	r = execution.Result{Defn: defs[0xbd], ByteCount: 3, Cycles: 5, PageFault: true, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r = execution.Result{Defn: defs[0x9d], ByteCount: 3, Cycles: 6, PageFault: true, Final: true}
	test.ExpectFailure(t, r.IsValid())

	// branches
	r = execution.Result{Defn: defs[0xd0], ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = false
	test.ExpectFailure(t, r.IsValid())
}
