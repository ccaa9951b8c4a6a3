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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
	Expectation = "script: expectation failed: %s"
)

// Runner executes Lua scripts against a CPU.
type Runner struct {
	mc     *cpu.CPU
	mem    *memory.RAM
	output io.Writer
	state  *lua.LState

	// the error returned by the CPU or memory that caused the script to
	// stop. lua errors are strings so the curated error would otherwise be
	// lost
	err error
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(mc *cpu.CPU, mem *memory.RAM, output io.Writer) *Runner {
	r := &Runner{
		mc:     mc,
		mem:    mem,
		output: output,
		state:  lua.NewState(),
	}

	funcs := map[string]lua.LGFunction{
		"poke":      r.poke,
		"peek":      r.peek,
		"load":      r.load,
		"step":      r.step,
		"run":       r.run,
		"interrupt": r.interrupt,
		"reg":       r.reg,
		"setreg":    r.setreg,
		"flag":      r.flag,
		"cycles":    r.cycles,
		"dump":      r.dump,
		"expect":    r.expect,
		"print":     r.print,
	}
	for name, fn := range funcs {
		r.state.SetGlobal(name, r.state.NewFunction(fn))
	}

	return r
}

// Close the Lua state. The Runner cannot be used after Close().
func (r *Runner) Close() {
	r.state.Close()
}

// RunString executes the Lua source.
func (r *Runner) RunString(source string) error {
	return r.result(r.state.DoString(source))
}

// RunFile executes the Lua source in the named file.
func (r *Runner) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	return r.result(r.state.DoFile(filename))
}

func (r *Runner) result(err error) error {
	if err == nil {
		return nil
	}

	// prefer the error that caused the script to stop
	if r.err != nil {
		err = r.err
		r.err = nil
		if curated.Is(err, Expectation) {
			return err
		}
	}

	return curated.Errorf(ScriptError, err)
}

// raise stops the script with the error.
func (r *Runner) raise(L *lua.LState, err error) int {
	r.err = err
	L.RaiseError("%v", err)
	return 0
}

// address returns argument n as an address. Lua numbers are not bounded so
// anything outside the address space is OutOfRange rather than truncated.
func (r *Runner) address(L *lua.LState, n int) (uint16, error) {
	v := L.CheckInt(n)
	if v < 0 || v >= cpubus.AddressSpace {
		return 0, curated.Errorf(cpubus.OutOfRange, v, r.mem.Size())
	}
	return uint16(v), nil
}

func (r *Runner) poke(L *lua.LState) int {
	address, err := r.address(L, 1)
	if err != nil {
		return r.raise(L, err)
	}
	value := uint8(L.CheckInt(2))
	if err := r.mem.Write(address, value); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runner) peek(L *lua.LState) int {
	address, err := r.address(L, 1)
	if err != nil {
		return r.raise(L, err)
	}
	v, err := r.mem.Read(address)
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (r *Runner) load(L *lua.LState) int {
	origin, err := r.address(L, 1)
	if err != nil {
		return r.raise(L, err)
	}
	tbl := L.CheckTable(2)

	data := make([]uint8, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		v, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok {
			L.ArgError(2, fmt.Sprintf("element %d is not a number", i))
			return 0
		}
		data = append(data, uint8(v))
	}

	end, err := r.mem.Load(origin, data...)
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(end))
	return 1
}

func (r *Runner) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	start := r.mc.Cycles
	if err := r.mc.RunFor(n); err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(r.mc.Cycles - start))
	return 1
}

func (r *Runner) run(L *lua.LState) int {
	if err := r.mc.Run(); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runner) interrupt(L *lua.LState) int {
	nmi := L.OptBool(1, false)
	if err := r.mc.Interrupt(nmi); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runner) reg(L *lua.LState) int {
	var v int
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = int(r.mc.A.Value())
	case "X":
		v = int(r.mc.X.Value())
	case "Y":
		v = int(r.mc.Y.Value())
	case "S", "SP":
		v = int(r.mc.SP.Value())
	case "P":
		v = int(r.mc.Status.Value())
	case "PC":
		v = int(r.mc.PC.Address())
	default:
		L.ArgError(1, "unknown register")
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (r *Runner) setreg(L *lua.LState) int {
	v := L.CheckInt(2)
	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		r.mc.A.Load(uint8(v))
	case "X":
		r.mc.X.Load(uint8(v))
	case "Y":
		r.mc.Y.Load(uint8(v))
	case "S", "SP":
		r.mc.SP.Load(uint8(v))
	case "P":
		r.mc.Status.Load(uint8(v))
	case "PC":
		pc, err := r.address(L, 2)
		if err != nil {
			return r.raise(L, err)
		}
		r.mc.LoadPC(pc)
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

// flag letters in the order of the registers.Flag values.
const flagLetters = "CZIDBRVN"

func (r *Runner) flag(L *lua.LState) int {
	letter := strings.ToUpper(L.CheckString(1))
	i := strings.Index(flagLetters, letter)
	if len(letter) != 1 || i < 0 {
		L.ArgError(1, "unknown flag")
		return 0
	}
	L.Push(lua.LBool(r.mc.Status.IsSet(registers.Flag(i))))
	return 1
}

func (r *Runner) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(r.mc.Cycles))
	return 1
}

func (r *Runner) dump(L *lua.LState) int {
	s := r.mc.String()
	fmt.Fprintln(r.output, s)
	L.Push(lua.LString(s))
	return 1
}

func (r *Runner) expect(L *lua.LState) int {
	if L.ToBool(1) {
		return 0
	}
	msg := L.OptString(2, r.mc.String())
	return r.raise(L, curated.Errorf(Expectation, msg))
}

func (r *Runner) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(r.output, strings.Join(s, "\t"))
	return 0
}
