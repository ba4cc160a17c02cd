package server

import (
	"sync"
	"time"

	"github.com/go-mclib/mcserver/session"
	"go.uber.org/zap"
)

// Server owns the listener-independent shared state: configuration,
// metrics, the session-service client, the logger, and the two pieces of
// permitted global mutable state (Clock and EntityIDGenerator), plus the
// registry of live connections per §5.
type Server struct {
	Config Config
	Log    *zap.Logger

	Metrics   *Metrics
	Session   *session.Client
	Clock     *Clock
	EntityIDs *EntityIDGenerator

	mu    sync.RWMutex
	conns map[*Connection]struct{}
}

// NewServer wires the shared state a listener and its worker pool need.
func NewServer(cfg Config, log *zap.Logger) *Server {
	return &Server{
		Config:    cfg,
		Log:       log,
		Metrics:   NewMetrics(),
		Session:   session.NewClient(log),
		Clock:     NewClock(time.Now()),
		EntityIDs: NewEntityIDGenerator(),
		conns:     make(map[*Connection]struct{}),
	}
}

// Register adds c to the live-connection set.
func (s *Server) Register(c *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[c] = struct{}{}
	s.Metrics.ConnectionsAccepted.Inc()
}

// Unregister removes c from the live-connection set; safe to call more
// than once.
func (s *Server) Unregister(c *Connection, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conns[c]; !ok {
		return
	}
	delete(s.conns, c)
	s.Metrics.ConnectionsClosed.WithLabelValues(reason).Inc()
	if c.Player() != nil {
		s.Metrics.PlayersOnline.Dec()
	}
}

// Connections returns a snapshot slice of the currently live connections,
// safe for the tick loop to range over without holding the lock.
func (s *Server) Connections() []*Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Connection, 0, len(s.conns))
	for c := range s.conns {
		out = append(out, c)
	}
	return out
}
