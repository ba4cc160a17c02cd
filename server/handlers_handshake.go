package server

import (
	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
)

// HandleHandshake validates the requested next state and transitions the
// connection out of Handshake, per §4.7's first representative handler.
// Any NextState outside {Status, Login} is a protocol violation and the
// connection is dropped without a Disconnect, since no protocol state
// has been negotiated yet to send one in.
func HandleHandshake(c *Connection, p *packets.Handshake) error {
	switch p.NextState {
	case packets.IntentStatus:
		c.SetState(jp.StateStatus)
		return nil
	case packets.IntentLogin:
		c.SetState(jp.StateLogin)
		return nil
	default:
		return newError(KindProtocolViolation, "invalid handshake next_state", nil)
	}
}
