package server

import (
	"context"
	"net"
	"runtime"
	"time"

	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	ns "github.com/go-mclib/mcserver/net_structures"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// tickWorkers bounds how many connections the liveness sweep touches
// concurrently per tick; GOMAXPROCS is a reasonable default for CPU-bound
// framing/crypto work and keeps one misbehaving peer from stalling the
// whole sweep.
func tickWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 1 {
		return n
	}
	return 1
}

// Serve runs the accept loop and the fixed-tick liveness loop until ctx
// is canceled, per §8's "fixed 50ms tick using a worker pool" design.
// Each accepted connection gets its own goroutine that reads and
// dispatches packets in order; the tick loop never touches the read
// side, only send-side keep-alive bookkeeping, and its writes share the
// connection's frame-write lock with the handlers', so per-connection
// ordering is preserved.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.acceptLoop(gctx, ln)
	})

	g.Go(func() error {
		return s.tickLoop(gctx)
	})

	return g.Wait()
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return newError(KindIO, "accept", err)
		}
		c := NewConnection(conn, s.Log, s.Metrics)
		s.Register(c)
		go s.serveConnection(ctx, c)
	}
}

// serveConnection owns c's entire read side: it blocks on ReadPacket,
// dispatches synchronously, and loops until the connection closes or
// ctx is canceled.
func (s *Server) serveConnection(ctx context.Context, c *Connection) {
	defer func() {
		_ = c.Close("")
		s.Unregister(c, "closed")
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		frame, err := c.ReadPacket()
		if err != nil {
			if !c.IsClosed() {
				s.Log.Debug("connection read failed", zap.String("remote", c.RemoteAddr()), zap.Error(err))
			}
			return
		}

		s.Metrics.PacketsDecoded.WithLabelValues(c.State().String()).Inc()

		if err := s.dispatch(ctx, c, frame); err != nil {
			s.Log.Debug("dispatch failed", zap.String("remote", c.RemoteAddr()), zap.Int32("packet_id", frame.ID), zap.Error(err))
			_ = c.Close(err.Error())
			s.Unregister(c, "protocol_error")
			return
		}
	}
}

// dispatch routes a decoded frame to the handler for the connection's
// current state and the frame's packet id, per §4.7's representative
// handler set. Unknown ids within a known state are ignored rather than
// treated as fatal, matching vanilla's tolerance of packets it doesn't
// care about (e.g. client brand on channels the server has no listener
// for).
func (s *Server) dispatch(ctx context.Context, c *Connection, frame jp.Frame) error {
	state := c.State()
	buf := ns.NewReadBuffer(frame.Body)

	switch state {
	case jp.StateHandshake:
		if frame.ID != (packets.Handshake{}).ID() {
			return nil
		}
		p := &packets.Handshake{}
		if err := p.Read(buf); err != nil {
			return newError(KindDecode, "decode handshake", err)
		}
		return HandleHandshake(c, p)

	case jp.StateStatus:
		switch frame.ID {
		case (packets.StatusRequest{}).ID():
			return HandleStatusRequest(s, c, &packets.StatusRequest{})
		case (packets.StatusPing{}).ID():
			p := &packets.StatusPing{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode status ping", err)
			}
			return HandleStatusPing(c, p)
		}
		return nil

	case jp.StateLogin:
		switch frame.ID {
		case (packets.LoginStart{}).ID():
			p := &packets.LoginStart{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode login start", err)
			}
			return HandleLoginStart(s, c, p)
		case (packets.EncryptionResponse{}).ID():
			p := &packets.EncryptionResponse{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode encryption response", err)
			}
			return HandleEncryptionResponse(ctx, s, c, p)
		}
		return nil

	case jp.StatePlay:
		switch frame.ID {
		case (packets.TeleportConfirm{}).ID():
			p := &packets.TeleportConfirm{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode teleport confirm", err)
			}
			return HandleTeleportConfirm(c, p)
		case (packets.ClientSettings{}).ID():
			p := &packets.ClientSettings{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode client settings", err)
			}
			return HandleClientSettings(c, p)
		case (packets.PluginMessageServerbound{}).ID():
			p := &packets.PluginMessageServerbound{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode plugin message", err)
			}
			return HandlePluginMessageServerbound(c, p)
		case (packets.KeepAliveServerbound{}).ID():
			p := &packets.KeepAliveServerbound{}
			if err := p.Read(buf); err != nil {
				return newError(KindDecode, "decode keep alive", err)
			}
			return HandleKeepAliveServerbound(c, s.Clock, p)
		}
		return nil
	}

	return nil
}

// tickLoop advances the shared clock once per TickInterval and sweeps
// live connections for keep-alive bookkeeping, fanning the sweep out
// across a bounded worker pool so one slow write can't delay the rest
// of the tick.
func (s *Server) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.Config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Clock.Advance(s.Config.TickInterval)
			s.sweepKeepAlives(ctx)
		}
	}
}

func (s *Server) sweepKeepAlives(ctx context.Context) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(tickWorkers())

	now := s.Clock.Now()
	for _, c := range s.Connections() {
		c := c
		g.Go(func() error {
			s.sweepOne(c, now)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Server) sweepOne(c *Connection, now time.Time) {
	if c.State() != jp.StatePlay {
		return
	}
	player := c.Player()
	if player == nil {
		return
	}

	if !player.LastKeepAliveSent.IsZero() && player.LastKeepAliveSent.After(player.LastKeepAliveReceived) &&
		now.Sub(player.LastKeepAliveReceived) > s.Config.KeepAliveTimeout {
		s.Metrics.KeepAliveTimeouts.Inc()
		_ = c.Close("Timed out")
		s.Unregister(c, "keepalive_timeout")
		return
	}

	if now.Sub(player.LastKeepAliveSent) < s.Config.KeepAliveInterval {
		return
	}

	player.LastKeepAliveID = int32(now.Unix())
	player.LastKeepAliveSent = now
	_ = c.WritePacket(&packets.KeepAliveClientbound{KeepAliveID: player.LastKeepAliveID})
}
