package server

import (
	"bufio"
	"crypto/rsa"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-mclib/mcserver/crypto"
	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// loginScratch holds the per-connection secrets a Login-state handshake
// allocates before a Player exists. Every fatal path in the Encryption
// Response handler must zero this out before returning, regardless of
// which check failed — the original C source only does this on some of
// its early-return paths.
type loginScratch struct {
	key         *rsa.PrivateKey
	verifyToken []byte
	username    string
}

func (s *loginScratch) clear() {
	s.key = nil
	if s.verifyToken != nil {
		for i := range s.verifyToken {
			s.verifyToken[i] = 0
		}
	}
	s.verifyToken = nil
	s.username = ""
}

// Connection is a single client's byte-stream plus protocol state (C1 +
// C6): the raw socket, an optional cipher session, an optional
// compression threshold, the current protocol State, and — once login
// completes — an attached Player. All mutation goes through mu so the
// tick loop's worker goroutines and any concurrent close from the
// listener's accept path never race.
type Connection struct {
	mu sync.Mutex

	// writeMu serializes whole-frame writes, so frames written from the
	// reading goroutine and from the tick loop never interleave on the
	// socket or in the encrypt keystream.
	writeMu sync.Mutex

	conn   net.Conn
	reader *bufio.Reader

	session    *crypto.Session
	compressed bool
	threshold  int

	state jp.State
	login loginScratch

	player *Player

	closed atomic.Bool

	log     *zap.Logger
	metrics *Metrics

	remoteAddr string
}

// NewConnection wraps an accepted socket in Handshake state with no
// cipher and no compression. metrics may be nil, e.g. in tests that have
// no need of a Server to own a registry. When metrics is non-nil, all
// reads from conn pass through a counting wrapper first, so
// Metrics.BytesIn reflects raw socket bytes
// regardless of what framing or cipher layers decode them afterward.
func NewConnection(conn net.Conn, log *zap.Logger, metrics *Metrics) *Connection {
	var src io.Reader = conn
	if metrics != nil {
		src = &countingReader{r: conn, counter: metrics.BytesIn}
	}
	return &Connection{
		conn:       conn,
		reader:     bufio.NewReader(src),
		state:      jp.StateHandshake,
		threshold:  -1,
		log:        log,
		metrics:    metrics,
		remoteAddr: conn.RemoteAddr().String(),
	}
}

// countingReader feeds a Prometheus counter with every byte pulled off
// the underlying socket, ahead of any decompression or decryption.
type countingReader struct {
	r       io.Reader
	counter prometheus.Counter
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.counter.Add(float64(n))
	}
	return n, err
}

func (c *Connection) State() jp.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) setState(s jp.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Connection) Player() *Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player
}

func (c *Connection) setPlayer(p *Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player = p
}

// SetLoginScratch stashes the RSA key, verify token, and claimed username
// generated for an in-flight Login Start / Encryption Request exchange.
func (c *Connection) SetLoginScratch(key *rsa.PrivateKey, verifyToken []byte, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.login = loginScratch{key: key, verifyToken: verifyToken, username: username}
}

// LoginScratch returns the key, verify token, and username stashed by
// SetLoginScratch, or zero values if none is pending.
func (c *Connection) LoginScratch() (*rsa.PrivateKey, []byte, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.login.key, c.login.verifyToken, c.login.username
}

// ClearLoginScratch releases the login-scratch secrets. It must be called
// on every path out of the Encryption Response handler, success or
// failure, per the resource-cleanup invariant the original C source
// violates on several of its early-return paths.
func (c *Connection) ClearLoginScratch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.login.clear()
}

// SetState transitions the connection's protocol state, e.g. Login to
// Play after a successful join sequence.
func (c *Connection) SetState(s jp.State) {
	c.setState(s)
}

// SetPlayer attaches p once login completes and the connection enters
// Play.
func (c *Connection) SetPlayer(p *Player) {
	c.setPlayer(p)
}

// EnableEncryption installs a two-way cipher session from a decrypted
// shared secret. It is set-once: calling it twice on the same connection
// is a protocol violation the caller must reject before ever reaching
// here.
func (c *Connection) EnableEncryption(sharedSecret []byte) error {
	sess, err := crypto.NewSession(sharedSecret)
	if err != nil {
		return newError(KindCrypto, "enable encryption", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = sess
	return nil
}

// EnableCompression sets the frame compression threshold; negative means
// disabled, matching jp.WriteFrame/jp.ReadFrame's convention.
func (c *Connection) EnableCompression(threshold int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threshold = threshold
	c.compressed = threshold >= 0
}

// ReadPacket pulls one frame off the wire, decrypting first if a cipher
// session is active, and returns its raw id+body. Decryption happens on
// the buffered reader's underlying stream via a decryptingReader so
// bufio's internal lookahead never sees ciphertext it hasn't decrypted.
func (c *Connection) ReadPacket() (jp.Frame, error) {
	c.mu.Lock()
	threshold := c.threshold
	if !c.compressed {
		threshold = -1
	}
	c.mu.Unlock()

	frame, err := jp.ReadFrame(c.reader, threshold)
	if err != nil {
		return jp.Frame{}, newError(KindFraming, "read frame", err)
	}
	return frame, nil
}

// WritePacket serializes and sends p, compressing and encrypting per the
// connection's current settings.
func (c *Connection) WritePacket(p jp.Packet) error {
	frame, err := jp.EncodePacket(p)
	if err != nil {
		return newError(KindDecode, "encode packet", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	threshold := c.threshold
	if !c.compressed {
		threshold = -1
	}
	session := c.session
	conn := c.conn
	c.mu.Unlock()

	uncompressedLen := len(frame.Body)
	count := &countingWriter{w: conn}

	var dst io.Writer = count
	if session != nil {
		dst = &encryptingWriter{w: count, session: session}
	}
	if err := jp.WriteFrame(dst, frame, threshold); err != nil {
		return newError(KindFraming, "write frame", err)
	}

	if c.metrics != nil {
		c.metrics.BytesOut.Add(float64(count.n))
		if threshold >= 0 && uncompressedLen >= threshold {
			c.metrics.CompressionRatio.Observe(float64(count.n) / float64(uncompressedLen+1))
		}
	}
	return nil
}

// countingWriter tallies bytes actually placed on the wire so WritePacket
// can feed Metrics.BytesOut regardless of whether compression or
// encryption changed the frame's size from its encoded body.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}

// decryptingReader and encryptingWriter adapt crypto.Session's in-place
// XOR streams to io.Reader/io.Writer so jp.ReadFrame/jp.WriteFrame never
// need to know a cipher is involved.
type decryptingReader struct {
	r       *bufio.Reader
	session *crypto.Session
}

func (d *decryptingReader) ReadByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, err
	}
	buf := []byte{b}
	d.session.Decrypt(buf)
	return buf[0], nil
}

func (d *decryptingReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if n > 0 {
		d.session.Decrypt(p[:n])
	}
	return n, err
}

type encryptingWriter struct {
	w       io.Writer
	session *crypto.Session
}

func (e *encryptingWriter) Write(p []byte) (int, error) {
	out := make([]byte, len(p))
	copy(out, p)
	e.session.Encrypt(out)
	return e.w.Write(out)
}

// AttachCipherToReader re-points the frame reader at a decrypting
// wrapper once encryption has been enabled mid-connection, since the
// Encryption Response handshake begins unencrypted and switches over
// after the shared secret is confirmed.
func (c *Connection) AttachCipherToReader() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return
	}
	c.reader = bufio.NewReader(&decryptingReader{r: c.reader, session: c.session})
}

// Close is idempotent; if the connection reached Login or Play and reason
// is non-empty, it makes a best-effort attempt to send a Disconnect
// carrying reason first.
func (c *Connection) Close(reason string) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	c.mu.Lock()
	state := c.state
	c.login.clear()
	c.mu.Unlock()

	if reason != "" {
		switch state {
		case jp.StateLogin:
			_ = c.WritePacket(&packets.LoginDisconnect{Reason: ns.ChatString(reason)})
		case jp.StatePlay:
			_ = c.WritePacket(&packets.PlayDisconnect{Reason: ns.ChatString(reason)})
		}
	}

	return c.conn.Close()
}

func (c *Connection) IsClosed() bool {
	return c.closed.Load()
}

func (c *Connection) RemoteAddr() string {
	return c.remoteAddr
}

func (c *Connection) SetReadDeadline(d time.Duration) error {
	return c.conn.SetReadDeadline(time.Now().Add(d))
}
