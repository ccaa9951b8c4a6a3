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

package remote

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Opbyte is the first byte of every request and response.
type Opbyte uint8

// List of valid Opbyte values.
const (
	// responses
	Ack  Opbyte = 0x00
	Fail Opbyte = 0x01

	// general commands
	Bye      Opbyte = 0x10
	TraceOn  Opbyte = 0x11
	TraceOff Opbyte = 0x12
	Reset    Opbyte = 0x13
	Tick     Opbyte = 0x1f

	// cpu state
	WriteA  Opbyte = 0x20
	ReadA   Opbyte = 0x21
	WriteX  Opbyte = 0x22
	ReadX   Opbyte = 0x23
	WriteY  Opbyte = 0x24
	ReadY   Opbyte = 0x25
	WriteS  Opbyte = 0x26
	ReadS   Opbyte = 0x27
	WriteP  Opbyte = 0x28
	ReadP   Opbyte = 0x29
	WritePC Opbyte = 0x2a
	ReadPC  Opbyte = 0x2b

	// memory and clock
	WriteMem   Opbyte = 0x30
	ReadMem    Opbyte = 0x31
	ReadCycles Opbyte = 0x32
)

// conn is implemented by each of the transports.
type conn interface {
	inB() (uint8, error)
	inW() (uint16, error)
	out(b []uint8) error
	String() string
}

// Image is the initial content of memory for every session.
type Image struct {
	Origin uint16
	Data   []uint8
}

// session is the state for a single connection.
type session struct {
	conn   conn
	mc     *cpu.CPU
	mem    *memory.RAM
	closed bool
	trace  bool
}

func newSession(c conn, img Image) (*session, error) {
	mem, err := memory.NewRAM(cpubus.AddressSpace)
	if err != nil {
		return nil, err
	}

	if len(img.Data) > 0 {
		_, err = mem.Load(img.Origin, img.Data...)
		if err != nil {
			return nil, err
		}
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(img.Origin)

	return &session{
		conn: c,
		mc:   mc,
		mem:  mem,
	}, nil
}

// serve commands until the client says goodbye or an error occurs.
func (s *session) serve() error {
	logger.Logf(logger.Allow, "remote", "new session (%s)", s.conn)
	for !s.closed {
		err := s.serveNextCmd()
		if err != nil {
			logger.Logf(logger.Allow, "remote", "closing session (%s): %v", s.conn, err)
			return err
		}
	}
	logger.Logf(logger.Allow, "remote", "closing session (%s)", s.conn)
	return nil
}

func (s *session) ack(data ...uint8) error {
	return s.conn.out(append([]uint8{uint8(Ack)}, data...))
}

func (s *session) fail() error {
	return s.conn.out([]uint8{uint8(Fail)})
}

func (s *session) serveNextCmd() error {
	hdr, err := s.conn.inB()
	if err != nil {
		return err
	}

	switch Opbyte(hdr) {
	case Bye:
		s.closed = true
		return nil

	case TraceOn:
		s.trace = true
		return s.ack()

	case TraceOff:
		s.trace = false
		return s.ack()

	case Reset:
		s.mc.Reset()
		err := s.mc.LoadPCIndirect(cpubus.Reset)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "reset: %v", err)
			return s.fail()
		}
		return s.ack()

	case Tick:
		err := s.mc.ExecuteInstruction()
		if err != nil {
			logger.Logf(logger.Allow, "remote", "tick: %v", err)
			return s.fail()
		}
		if s.trace {
			logger.Logf(logger.Allow, "remote", "%s", s.mc.LastResult.String())
		}
		return s.ack()

	case WriteA, WriteX, WriteY, WriteS, WriteP:
		v, err := s.conn.inB()
		if err != nil {
			return err
		}
		switch Opbyte(hdr) {
		case WriteA:
			s.mc.A.Load(v)
		case WriteX:
			s.mc.X.Load(v)
		case WriteY:
			s.mc.Y.Load(v)
		case WriteS:
			s.mc.SP.Load(v)
		case WriteP:
			s.mc.Status.Load(v)
		}
		return s.ack()

	case ReadA:
		return s.ack(s.mc.A.Value())

	case ReadX:
		return s.ack(s.mc.X.Value())

	case ReadY:
		return s.ack(s.mc.Y.Value())

	case ReadS:
		return s.ack(s.mc.SP.Value())

	case ReadP:
		return s.ack(s.mc.Status.Value())

	case WritePC:
		v, err := s.conn.inW()
		if err != nil {
			return err
		}
		s.mc.LoadPC(v)
		return s.ack()

	case ReadPC:
		return s.ack(binary.BigEndian.AppendUint16(nil, s.mc.PC.Address())...)

	case WriteMem:
		address, err := s.conn.inW()
		if err != nil {
			return err
		}
		v, err := s.conn.inB()
		if err != nil {
			return err
		}
		err = s.mem.Write(address, v)
		if err != nil {
			return s.fail()
		}
		return s.ack()

	case ReadMem:
		address, err := s.conn.inW()
		if err != nil {
			return err
		}
		v, err := s.mem.Read(address)
		if err != nil {
			return s.fail()
		}
		return s.ack(v)

	case ReadCycles:
		return s.ack(binary.BigEndian.AppendUint64(nil, s.mc.Cycles)...)
	}

	logger.Logf(logger.Allow, "remote", "unrecognised opbyte (%#02x) from %s", hdr, s.conn)
	return s.fail()
}

func (op Opbyte) String() string {
	switch op {
	case Ack:
		return "Ack"
	case Fail:
		return "Fail"
	case Bye:
		return "Bye"
	case TraceOn:
		return "TraceOn"
	case TraceOff:
		return "TraceOff"
	case Reset:
		return "Reset"
	case Tick:
		return "Tick"
	case WriteA:
		return "WriteA"
	case ReadA:
		return "ReadA"
	case WriteX:
		return "WriteX"
	case ReadX:
		return "ReadX"
	case WriteY:
		return "WriteY"
	case ReadY:
		return "ReadY"
	case WriteS:
		return "WriteS"
	case ReadS:
		return "ReadS"
	case WriteP:
		return "WriteP"
	case ReadP:
		return "ReadP"
	case WritePC:
		return "WritePC"
	case ReadPC:
		return "ReadPC"
	case WriteMem:
		return "WriteMem"
	case ReadMem:
		return "ReadMem"
	case ReadCycles:
		return "ReadCycles"
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(op))
}
