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
	"bufio"
	"errors"
	"io"
	"net"

	"github.com/jetsetilly/gopher6502/logger"
)

type tcpConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (c *tcpConn) String() string {
	return c.conn.RemoteAddr().String()
}

func (c *tcpConn) out(b []uint8) error {
	_, err := c.conn.Write(b)
	return err
}

func (c *tcpConn) inB() (uint8, error) {
	return c.reader.ReadByte()
}

func (c *tcpConn) inW() (uint16, error) {
	var b [2]uint8
	_, err := io.ReadFull(c.reader, b[:])
	if err != nil {
		return 0, err
	}
	return (uint16(b[0]) << 8) | uint16(b[1]), nil
}

// ServeTCP accepts connections on the listener and serves each one in its own
// goroutine. Returns when the listener is closed.
func ServeTCP(listener net.Listener, img Image) error {
	logger.Logf(logger.Allow, "remote", "serving TCP at %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go serveTCP(conn, img)
	}
}

func serveTCP(conn net.Conn, img Image) {
	defer conn.Close()

	c := &tcpConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}

	s, err := newSession(c, img)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "%v", err)
		return
	}
	_ = s.serve()
}
