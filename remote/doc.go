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

// Package remote serves the CPU over a simple byte protocol, allowing a client
// on the other end of a network connection to step the CPU and to inspect and
// alter its registers and memory. Each connection has its own CPU and its own
// 64K of memory.
//
// The protocol is the same for TCP connections and for WebSocket connections.
// For TCP the protocol bytes are sent as a stream. For WebSockets the bytes
// are sent as binary messages, a single request may be split across more than
// one message.
//
// Every request begins with an Opbyte. Every response begins with either Ack
// or Fail. Words are sent in big-endian order.
//
//	Bye                             no response, connection is closed
//	TraceOn / TraceOff              Ack
//	Reset                           Ack (or Fail if the reset vector is unreadable)
//	Tick                            Ack (or Fail if the instruction failed)
//	WriteA / X / Y / S / P  byte    Ack
//	ReadA / X / Y / S / P           Ack byte
//	WritePC  word                   Ack
//	ReadPC                          Ack word
//	WriteMem word byte              Ack
//	ReadMem  word                   Ack byte
//	ReadCycles                      Ack [8]byte
//
// Unrecognised opbytes are answered with Fail and the connection stays open.
package remote
