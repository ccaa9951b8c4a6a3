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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher6502/test"
)

func TestBreakpointsList(t *testing.T) {
	bp := newBreakpoints()
	test.ExpectEquality(t, bp.String(), "no breakpoints")

	test.ExpectEquality(t, bp.toggle(0x1000), true)
	test.ExpectEquality(t, bp.toggle(0x0200), true)
	test.ExpectEquality(t, bp.toggle(0xffff), true)
	test.ExpectEquality(t, bp.String(), "0200 1000 FFFF")
	test.ExpectEquality(t, bp.check(0x0200), true)
	test.ExpectEquality(t, bp.check(0x0201), false)

	test.ExpectEquality(t, bp.toggle(0x1000), false)
	test.ExpectEquality(t, bp.String(), "0200 FFFF")
	test.ExpectEquality(t, bp.check(0x1000), false)
}
