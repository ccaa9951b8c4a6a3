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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, where Parse() is called with the list of arguments, the
// arguments are first given to NewArgs() and then Parse() is called with no
// arguments. This allows the arguments to be consumed mode by mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "SCRIPT", "REMOTE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0200, "load address")
//		...
//	}
//
// The first sub-mode in the list is the default mode. It is selected if the
// first argument after the flags is not one of the listed sub-modes. Sub-mode
// comparisons are case insensitive.
//
// Flags are added with the Add*() functions, which return a pointer to the
// value of the flag, in the same way as the flag package. The AddAddress()
// function adds a flag for a 16 bit address, written in hexadecimal.
//
// Help messages are printed automatically when the -help flag is given. The
// Output field must be set for help messages to be visible.
package modalflag
