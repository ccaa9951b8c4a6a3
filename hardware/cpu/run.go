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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/logger"
)

// State of the CPU with regard to the run loop.
type State int

// List of valid State values.
const (
	Running State = iota
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// State returns the current state of the CPU. A CPU that has never been run is
// in the Running state.
func (mc *CPU) State() State {
	return mc.state
}

// Halt the CPU at the next opportunity. Safe to call from any goroutine. The
// request is consumed by the run loop, it does not persist between calls to
// Run(), RunFor() or RunWithHook().
//
// If no run loop is active the request will be seen by the next run, which
// will halt before executing any instructions.
func (mc *CPU) Halt() {
	mc.halt.Store(true)
}

// Run executes instructions until the CPU halts. Returns nil if the CPU
// halted normally and the first error encountered otherwise.
func (mc *CPU) Run() error {
	return mc.RunWithHook(-1, nil)
}

// RunFor executes at most n instructions. Returns nil if the CPU halted
// normally and the first error encountered otherwise.
func (mc *CPU) RunFor(n int) error {
	return mc.RunWithHook(n, nil)
}

// RunWithHook executes at most n instructions, calling the hook function after
// every instruction. A negative value for n means there is no limit. The hook
// function can be nil. An error returned by the hook function stops the run
// loop and is returned by RunWithHook().
//
// The CPU halts when:
//   - n instructions have been executed
//   - the PC is at or beyond the end of memory
//   - Halt() has been called
func (mc *CPU) RunWithHook(n int, hook func(*execution.Result) error) error {
	mc.state = Running

	count := 0
	for {
		if mc.halt.Swap(false) {
			logger.Logf(logger.Allow, "cpu", "halt requested at %#04x", mc.PC.Address())
			break
		}

		if int(mc.PC.Address()) >= mc.mem.Size() {
			logger.Logf(logger.Allow, "cpu", "PC (%#04x) beyond end of memory", mc.PC.Address())
			break
		}

		if n >= 0 && count >= n {
			break
		}

		err := mc.ExecuteInstruction()
		if err != nil {
			return err
		}
		count++

		if hook != nil {
			err = hook(&mc.LastResult)
			if err != nil {
				return err
			}
		}
	}

	// an unconsumed halt request does not carry over to the next run
	mc.halt.Store(false)
	mc.state = Halted

	return nil
}
