package server

import (
	"encoding/json"

	"github.com/go-mclib/mcserver/java_protocol/packets"
)

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type statusPlayerSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type statusPlayers struct {
	Max    int                  `json:"max"`
	Online int                  `json:"online"`
	Sample []statusPlayerSample `json:"sample"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusDocument struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
}

// HandleStatusRequest answers the server-list ping with a JSON document
// built from the live player count and configured MOTD, per §4.7.
func HandleStatusRequest(s *Server, c *Connection, _ *packets.StatusRequest) error {
	online := 0
	for _, conn := range s.Connections() {
		if conn.Player() != nil {
			online++
		}
	}

	doc := statusDocument{
		Version: statusVersion{
			Name:     s.Config.VersionName,
			Protocol: s.Config.ProtocolVersion,
		},
		Players: statusPlayers{
			Max:    s.Config.MaxPlayers,
			Online: online,
		},
		Description: statusDescription{Text: s.Config.MOTD},
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return newError(KindDecode, "marshal status response", err)
	}

	return c.WritePacket(&packets.StatusResponse{JSON: string(body)})
}

// HandleStatusPing echoes the ping payload back verbatim, per §4.7.
func HandleStatusPing(c *Connection, p *packets.StatusPing) error {
	return c.WritePacket(&packets.StatusPong{Payload: p.Payload})
}
