package server

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"net"

	mccrypto "github.com/go-mclib/mcserver/crypto"
	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/go-mclib/mcserver/session"
)

// verifyTokenLength is the 128-bit (16-byte) verify token mandated by
// §3/§4.7/the glossary and matched by the original source's
// network/packethandlers/login.c.
const verifyTokenLength = 16

// HandleLoginStart either completes login immediately in offline mode or
// mints a fresh RSA key pair and verify token and sends Encryption
// Request, per §4.7. The key and token live in the connection's
// login-scratch until Encryption Response arrives or the connection
// dies, whichever comes first.
func HandleLoginStart(s *Server, c *Connection, p *packets.LoginStart) error {
	if !s.Config.OnlineMode {
		return completeLogin(s, c, OfflinePlayerUUID(p.Name), p.Name)
	}

	key, err := mccrypto.GenerateLoginKeyPair()
	if err != nil {
		return newError(KindCrypto, "generate login key pair", err)
	}

	der, err := mccrypto.PublicKeyDER(key)
	if err != nil {
		c.ClearLoginScratch()
		return newError(KindCrypto, "encode login public key", err)
	}

	token := make([]byte, verifyTokenLength)
	if _, err := rand.Read(token); err != nil {
		return newError(KindCrypto, "generate verify token", err)
	}

	c.SetLoginScratch(key, token, p.Name)

	return c.WritePacket(&packets.EncryptionRequest{
		ServerID:    "",
		PublicKey:   der,
		VerifyToken: token,
	})
}

// HandleEncryptionResponse decrypts the shared secret and verify token,
// enables the cipher, verifies the session with Mojang for online-mode
// servers, and completes login. Every return path — success or failure —
// clears the login scratch exactly once, since the original C source
// this is grounded on leaks the RSA key and verify token on several of
// its own early-return paths.
func HandleEncryptionResponse(ctx context.Context, s *Server, c *Connection, p *packets.EncryptionResponse) error {
	defer c.ClearLoginScratch()

	key, verifyToken, username := c.LoginScratch()
	if key == nil {
		return newError(KindProtocolViolation, "encryption response with no pending login", nil)
	}

	decryptedToken, err := mccrypto.DecryptPKCS1v15(key, p.VerifyToken)
	if err != nil {
		s.Metrics.LoginFailures.WithLabelValues("verify_token_decrypt").Inc()
		return newError(KindCrypto, "decrypt verify token", err)
	}
	if subtle.ConstantTimeCompare(decryptedToken, verifyToken) != 1 {
		s.Metrics.LoginFailures.WithLabelValues("verify_token_mismatch").Inc()
		return newError(KindCrypto, "verify token mismatch", nil)
	}

	sharedSecret, err := mccrypto.DecryptPKCS1v15(key, p.SharedSecret)
	if err != nil {
		s.Metrics.LoginFailures.WithLabelValues("shared_secret_decrypt").Inc()
		return newError(KindCrypto, "decrypt shared secret", err)
	}

	if err := c.EnableEncryption(sharedSecret); err != nil {
		s.Metrics.LoginFailures.WithLabelValues("enable_encryption").Inc()
		return err
	}
	c.AttachCipherToReader()

	if !s.Config.OnlineMode {
		return completeLogin(s, c, OfflinePlayerUUID(username), username)
	}

	der, err := mccrypto.PublicKeyDER(key)
	if err != nil {
		s.Metrics.LoginFailures.WithLabelValues("encode_public_key").Inc()
		return newError(KindCrypto, "encode login public key", err)
	}
	hash := mccrypto.ServerIDHash("", sharedSecret, der)

	clientIP, _, _ := net.SplitHostPort(c.RemoteAddr())

	resp, err := s.Session.HasJoined(ctx, username, hash, clientIP)
	if err != nil {
		cause := "session_service"
		if err == session.ErrNoSuchSession {
			cause = "no_such_session"
		}
		s.Metrics.LoginFailures.WithLabelValues(cause).Inc()
		return newError(KindSessionService, "hasJoined query failed", err)
	}

	playerUUID, err := session.FormatUUID(resp.ID)
	if err != nil {
		s.Metrics.LoginFailures.WithLabelValues("malformed_session_uuid").Inc()
		return newError(KindSessionService, "malformed session uuid", err)
	}

	return completeLogin(s, c, playerUUID, resp.Name)
}

// completeLogin runs the shared tail of both the offline-mode and
// online-mode login paths: optional Set Compression, Login Success, the
// state transition to Play, and the join sequence of §4.7 (Join Game,
// the server-brand plugin message, Spawn Position, and Player
// Abilities). The initial absolute Player Position and Look is sent
// later, by Client Settings, at the pinned teleport id 0.
func completeLogin(s *Server, c *Connection, playerUUID ns.UUID, username string) error {
	threshold := s.Config.CompressionThreshold
	if threshold >= 0 {
		if err := c.WritePacket(&packets.SetCompression{Threshold: int32(threshold)}); err != nil {
			return err
		}
		c.EnableCompression(threshold)
	}

	if err := c.WritePacket(&packets.LoginSuccess{UUID: playerUUID.String(), Username: username}); err != nil {
		return err
	}

	c.SetState(jp.StatePlay)

	player := NewPlayer(playerUUID, username, s.EntityIDs.Next(), s.Config)
	// The keep-alive timeout runs from login until the first reply.
	player.LastKeepAliveReceived = s.Clock.Now()
	c.SetPlayer(player)
	s.Metrics.PlayersOnline.Inc()

	if err := c.WritePacket(&packets.JoinGame{
		EntityID:         player.EntityID,
		Gamemode:         s.Config.Gamemode,
		Dimension:        s.Config.Dimension,
		Difficulty:       s.Config.Difficulty,
		MaxPlayers:       uint8(s.Config.MaxPlayers),
		LevelType:        s.Config.LevelType,
		ReducedDebugInfo: s.Config.ReducedDebugInfo,
	}); err != nil {
		return err
	}

	brandBuf := ns.NewWriteBuffer()
	if err := brandBuf.WriteString(s.Config.ServerBrand); err != nil {
		return newError(KindDecode, "encode server brand", err)
	}
	if err := c.WritePacket(&packets.PluginMessageClientbound{
		Channel: brandChannel,
		Data:    brandBuf.Bytes(),
	}); err != nil {
		return err
	}

	if err := c.WritePacket(&packets.SpawnPosition{Location: player.CompassTarget}); err != nil {
		return err
	}

	return c.WritePacket(&packets.PlayerAbilitiesClientbound{
		Flags:               abilitiesFlags(player),
		FlyingSpeed:         player.FlyingSpeed,
		FieldOfViewModifier: 0.1,
	})
}

func abilitiesFlags(p *Player) uint8 {
	var f uint8
	if p.Invulnerable {
		f |= 0x01
	}
	if p.Flying {
		f |= 0x02
	}
	if p.AllowFlying {
		f |= 0x04
	}
	if p.Gamemode == 1 { // creative
		f |= 0x08
	}
	return f
}
