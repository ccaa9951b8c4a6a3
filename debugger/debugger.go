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
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/debugger/easyterm"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Breakpoint is the error pattern used to stop a run when a breakpoint is
// reached.
const Breakpoint = "debugger: breakpoint at %04X"

// DefaultRunLimit is the maximum number of instructions executed by the run
// command.
const DefaultRunLimit = 1000000

// Debugger is the single-key stepping debugger.
type Debugger struct {
	mc     *cpu.CPU
	mem    *memory.RAM
	input  *bufio.Reader
	output io.Writer

	breakpoints breakpoints

	// the maximum number of instructions executed by the run command. a
	// negative value means there is no limit
	RunLimit int
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(mc *cpu.CPU, mem *memory.RAM, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		mc:          mc,
		mem:         mem,
		input:       bufio.NewReader(input),
		output:      output,
		breakpoints: newBreakpoints(),
		RunLimit:    DefaultRunLimit,
	}
}

func (dbg *Debugger) printf(format string, args ...any) {
	fmt.Fprintf(dbg.output, format, args...)
}

// Loop reads keys from the input until the quit key is pressed or the input
// is exhausted. Errors from the CPU are printed and do not end the loop.
func (dbg *Debugger) Loop() error {
	dbg.printf("%s\n", dbg.mc)

	for {
		key, err := dbg.input.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch key {
		case 'q', easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
			return nil

		case 's', ' ', easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			dbg.step()

		case 'r':
			dbg.run()

		case 'b':
			pc := dbg.mc.PC.Address()
			if dbg.breakpoints.toggle(pc) {
				dbg.printf("breakpoint set at %04X\n", pc)
			} else {
				dbg.printf("breakpoint cleared at %04X\n", pc)
			}

		case 'l':
			dbg.printf("%s\n", dbg.breakpoints)

		case 'm':
			dbg.printMemory(dbg.mc.PC.Address(), 16)

		case 'z':
			dbg.printMemory(0x0000, 256)

		case 'i':
			dbg.interrupt(false)

		case 'n':
			dbg.interrupt(true)

		case 'x':
			dbg.mc.Reset()
			if err := dbg.mc.LoadPCIndirect(cpubus.Reset); err != nil {
				dbg.printf("%v\n", err)
			}
			dbg.printf("%s\n", dbg.mc)

		case '?':
			dbg.printf("%s", help)

		default:
			dbg.printf("unknown key (press ? for help)\n")
		}
	}
}

const help = `s step  r run  b breakpoint  l list  m memory  z zeropage
i irq  n nmi  x reset  ? help  q quit
`

func (dbg *Debugger) step() {
	err := dbg.mc.ExecuteInstruction()
	if err != nil {
		dbg.printf("%v\n", err)
		return
	}
	dbg.printf("%s\n%s\n", dbg.mc.LastResult, dbg.mc)
}

func (dbg *Debugger) run() {
	err := dbg.mc.RunWithHook(dbg.RunLimit, func(r *execution.Result) error {
		pc := dbg.mc.PC.Address()
		if dbg.breakpoints.check(pc) {
			return curated.Errorf(Breakpoint, pc)
		}
		return nil
	})

	if err != nil {
		dbg.printf("%v\n", err)
		if !curated.Is(err, Breakpoint) {
			logger.Log(logger.Allow, "debugger", err.Error())
		}
	} else {
		dbg.printf("%s\n", dbg.mc.State())
	}

	dbg.printf("%s\n", dbg.mc)
}

func (dbg *Debugger) interrupt(nmi bool) {
	if err := dbg.mc.Interrupt(nmi); err != nil {
		dbg.printf("%v\n", err)
		return
	}
	dbg.printf("%s\n", dbg.mc)
}

// print memory in rows of 16 bytes starting from address.
func (dbg *Debugger) printMemory(address uint16, n int) {
	for i := 0; i < n; i++ {
		if i%16 == 0 {
			if i > 0 {
				dbg.printf("\n")
			}
			dbg.printf("%04X:", address)
		}
		dbg.printf(" %02X", dbg.mem.Peek(address))
		address++
	}
	dbg.printf("\n")
}
