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
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
)

// WebsocketPath is the path used by the harness when serving the WebSocket
// handler.
const WebsocketPath = "/gopher6502"

// NotBinary is the error pattern used when a WebSocket message is not a
// binary message.
const NotBinary = "remote: expected binary message (type %d)"

type wsConn struct {
	conn   *websocket.Conn
	msgBuf []uint8
}

func (c *wsConn) String() string {
	return c.conn.RemoteAddr().String()
}

func (c *wsConn) out(b []uint8) error {
	return c.conn.WriteMessage(websocket.BinaryMessage, b)
}

// fill the message buffer until it holds at least n bytes.
func (c *wsConn) fill(n int) error {
	for len(c.msgBuf) < n {
		tp, msg, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		if tp != websocket.BinaryMessage {
			return curated.Errorf(NotBinary, tp)
		}
		c.msgBuf = append(c.msgBuf, msg...)
	}
	return nil
}

func (c *wsConn) inB() (uint8, error) {
	if err := c.fill(1); err != nil {
		return 0, err
	}
	v := c.msgBuf[0]
	c.msgBuf = c.msgBuf[1:]
	return v, nil
}

func (c *wsConn) inW() (uint16, error) {
	if err := c.fill(2); err != nil {
		return 0, err
	}
	v := (uint16(c.msgBuf[0]) << 8) | uint16(c.msgBuf[1])
	c.msgBuf = c.msgBuf[2:]
	return v, nil
}

// WebsocketHandler returns an http.Handler that upgrades requests to a
// WebSocket connection and serves a session over it.
func WebsocketHandler(img Image) http.Handler {
	upgrader := websocket.Upgrader{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		s, err := newSession(&wsConn{conn: conn}, img)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "%v", err)
			return
		}

		err = s.serve()
		if err == nil {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, fmt.Sprintf("bye from %s", r.Host))
			_ = conn.WriteMessage(websocket.CloseMessage, msg)
		}
	})
}
