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

// Package logger is the central log for the emulator. Entries are tagged with
// the name of the component making the entry and repeated entries are folded
// into a single entry with a repeat count.
//
// The package level functions operate on the central logger. A separate
// Logger instance can be created with NewLogger(), which is useful for
// testing.
//
// Log entries are only made if the Permission argument allows it. Use
// logger.Allow when an entry should always be made.
package logger
