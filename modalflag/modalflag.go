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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Modes handles command line arguments that are divided into modes, each mode
// having its own set of flags. Output should be set before Parse() is called
// or help messages will be discarded.
type Modes struct {
	Output io.Writer

	// a new flag set is created for every mode
	flags *flag.FlagSet

	args []string

	// index of the first argument not yet consumed by a mode
	consumed int

	// sub-modes accepted by the next call to Parse(). the first entry is the
	// default
	subModes []string

	// every mode selected so far, outermost first
	selected []string

	additionalHelp string
}

// String returns the modes selected so far, separated by a slash.
func (md *Modes) String() string {
	return strings.Join(md.selected, "/")
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.selected) == 0 {
		return ""
	}
	return md.selected[len(md.selected)-1]
}

// NewArgs sets the arguments to be parsed, usually os.Args[1:]. It implies a
// call to NewMode().
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.consumed = 0
	md.NewMode()
}

// NewMode starts a new mode. Flags and sub-modes added after this call apply
// to the arguments that remain after the previous mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
}

// AdditionalHelp is printed after the list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() returns the selected sub-mode
	ParseContinue ParseResult = iota

	// help was requested and has already been printed to Output
	ParseHelp

	// the flags could not be parsed. the error is returned alongside
	ParseError
)

// Parse the arguments for the current mode.
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.consumed:])
	if err == flag.ErrHelp {
		hw.Help(md.Output, md.String(), md.subModes, md.additionalHelp)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// an unrecognised flag selects the default sub-mode. the flag will be
	// seen again when that mode is parsed
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.consumed++
				break
			}
		}
	}
	md.selected = append(md.selected, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns one of the RemainingArgs(). Empty if there is no such
// argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode added is the default. Comparison is case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddAddress flag for next call to Parse(). See ParseAddress() for the
// accepted formats.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := addressValue(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}

// Visit calls fn with the name of every flag that was set on the command
// line, in lexicographical order.
func (md *Modes) Visit(fn func(name string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// ParseAddress parses a 16 bit address written in hexadecimal. The address can
// optionally be prefixed with "$" or "0x".
func ParseAddress(s string) (uint16, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("modalflag: invalid address (%s)", s)
	}
	return uint16(v), nil
}

// addressValue implements the flag.Value interface.
type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}
