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

package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/debugger"
	"github.com/jetsetilly/gopher6502/debugger/easyterm"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/remote"
	"github.com/jetsetilly/gopher6502/script"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

// LoadError is the error pattern used when a binary file cannot be loaded.
const LoadError = "harness: cannot load binary: %v"

// FlagConflict is the error pattern used when two flags cannot be used
// together.
const FlagConflict = "harness: -%s and -%s cannot be used together"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "SCRIPT", "REMOTE")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = runMode(md, os.Stdout)

	case "STEP":
		err = stepMode(md, os.Stdin, os.Stdout)

	case "SCRIPT":
		err = scriptMode(md, os.Stdout)

	case "REMOTE":
		err = remoteMode(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// machineFlags are the flags common to every mode that creates a CPU.
type machineFlags struct {
	origin *uint16
	pc     *string
	reset  *bool

	// flags given on the command line. filled in by check()
	set map[string]bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		origin: md.AddAddress("origin", 0x0000, "address at which the binary is loaded"),
		pc:     md.AddString("pc", "", "initial program counter (defaults to origin)"),
		reset:  md.AddBool("reset", false, "load program counter from the reset vector"),
		set:    make(map[string]bool),
	}
}

// check the machine flags for conflicts. must be called after Parse().
func (mf machineFlags) check(md *modalflag.Modes) error {
	md.Visit(func(name string) {
		mf.set[name] = true
	})
	if mf.set["pc"] && mf.set["reset"] {
		return curated.Errorf(FlagConflict, "pc", "reset")
	}
	return nil
}

// create a CPU and 64K of RAM. the binary file is optional.
func (mf machineFlags) create(filename string) (*cpu.CPU, *memory.RAM, error) {
	mem, err := memory.NewRAM(cpubus.AddressSpace)
	if err != nil {
		return nil, nil, err
	}

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, nil, curated.Errorf(LoadError, err)
		}
		end, err := mem.Load(*mf.origin, data...)
		if err != nil {
			return nil, nil, curated.Errorf(LoadError, err)
		}
		logger.Logf(logger.Allow, "harness", "loaded %s (%#04x to %#04x)", filename, *mf.origin, end)
	}

	mc := cpu.NewCPU(mem)

	switch {
	case *mf.reset:
		err = mc.LoadPCIndirect(cpubus.Reset)
		if err != nil {
			return nil, nil, err
		}
	case *mf.pc != "":
		pc, err := modalflag.ParseAddress(*mf.pc)
		if err != nil {
			return nil, nil, err
		}
		mc.LoadPC(pc)
	default:
		mc.LoadPC(*mf.origin)
	}

	return mc, mem, nil
}

// haltOnInterrupt halts the CPU when ctrl-c is pressed. The returned function
// must be called to stop listening.
func haltOnInterrupt(mc *cpu.CPU) func() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan struct{})
	go func() {
		select {
		case <-intChan:
			mc.Halt()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(intChan)
		close(done)
	}
}

func runMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	steps := md.AddInt("steps", -1, "maximum number of instructions to execute (negative for no limit)")
	trace := md.AddBool("trace", false, "print each instruction as it is executed")
	memvizFile := md.AddString("memviz", "", "write graphviz of CPU registers to file after the run")
	stats := md.AddBool("statsview", false, "run stats server (only available with statsview build tag)")
	log := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = mf.check(md)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mc, _, err := mf.create(filename)
	if err != nil {
		return err
	}

	stop := haltOnInterrupt(mc)
	defer stop()

	var hook func(*execution.Result) error
	if *trace {
		hook = func(r *execution.Result) error {
			fmt.Fprintln(output, r)
			return nil
		}
	}

	err = mc.RunWithHook(*steps, hook)

	// the state of the CPU is printed even if the run ended with an error
	fmt.Fprintln(output, mc)
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &mc.File)
	}

	return nil
}

func stepMode(md *modalflag.Modes, input *os.File, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	runLimit := md.AddInt("runlimit", debugger.DefaultRunLimit, "maximum number of instructions for the run command")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = mf.check(md)
	if err != nil {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary file required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mc, mem, err := mf.create(filename)
	if err != nil {
		return err
	}

	// ctrl-c stops the run command without quitting the debugger
	stop := haltOnInterrupt(mc)
	defer stop()

	// single key presses are only possible on a real terminal. input from a
	// pipe is read as it is
	if term.IsTerminal(int(input.Fd())) {
		var et easyterm.Terminal
		err = et.Initialise(input, os.Stdout)
		if err != nil {
			return err
		}
		defer et.CleanUp()

		err = et.CBreakMode()
		if err != nil {
			return err
		}
	}

	dbg := debugger.NewDebugger(mc, mem, input, output)
	dbg.RunLimit = *runLimit
	return dbg.Loop()
}

func scriptMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	image := md.AddString("image", "", "binary file to load before the script is run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = mf.check(md)
	if err != nil {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mc, mem, err := mf.create(*image)
	if err != nil {
		return err
	}

	r := script.NewRunner(mc, mem, output)
	defer r.Close()

	return r.RunFile(filename)
}

func remoteMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0000, "address at which the binary is loaded")
	tcpAddr := md.AddString("tcp", "localhost:6502", "address for TCP connections (empty to disable)")
	wsAddr := md.AddString("ws", "", "address for websocket connections (empty to disable)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	img := remote.Image{Origin: *origin}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		img.Data, err = os.ReadFile(md.GetArg(0))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *tcpAddr == "" && *wsAddr == "" {
		return fmt.Errorf("no address to listen on")
	}

	errChan := make(chan error, 2)

	if *tcpAddr != "" {
		l, err := net.Listen("tcp", *tcpAddr)
		if err != nil {
			return err
		}
		defer l.Close()

		fmt.Fprintf(output, "listening for TCP connections at %s\n", l.Addr())
		go func() {
			errChan <- remote.ServeTCP(l, img)
		}()
	}

	if *wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(remote.WebsocketPath, remote.WebsocketHandler(img))
		srv := &http.Server{Addr: *wsAddr, Handler: mux}
		defer srv.Close()

		fmt.Fprintf(output, "listening for websocket connections at ws://%s%s\n", *wsAddr, remote.WebsocketPath)
		go func() {
			err := srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errChan <- err
		}()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	select {
	case err := <-errChan:
		return err
	case <-intChan:
		fmt.Fprint(output, "\r")
		return nil
	}
}
