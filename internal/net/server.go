package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/log"
)

// Server hosts a game between a local player, one TCP joiner, and bots
// on every remaining faction.
type Server struct {
	Port        string
	Seed        int64
	HostFaction game.Faction
}

// Run starts the server, waits for a client to join, then runs the game
// to completion.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for a second player on port %s...\n", s.Port)

	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Player connected from %s\n", conn.RemoteAddr())

	// Read the joiner's faction choice.
	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	joinFaction, ok := game.FactionByName(joinMsg.Faction)
	if !ok || joinFaction == s.HostFaction {
		joinFaction = firstFreeFaction(s.HostFaction)
	}

	fmt.Printf("Host plays %s, joiner plays %s, bots fill the rest\n",
		s.HostFaction, joinFaction)

	// Pipe for the host's local connection.
	hostConn, hostServerConn := net.Pipe()

	hostCtrl := NewNetworkController(hostServerConn, s.HostFaction)
	joinCtrl := NewNetworkController(conn, joinFaction)

	logger := NewRelayLogger(log.NewTextLogger(os.Stdout), hostCtrl, joinCtrl)
	g := game.NewGame(s.Seed, logger)
	for f := game.Faction(0); f < game.NumFactions; f++ {
		switch f {
		case s.HostFaction:
			g.SetController(f, hostCtrl)
		case joinFaction:
			g.SetController(f, joinCtrl)
		default:
			g.SetController(f, game.BotFor(f))
		}
	}

	errCh := make(chan error, 2)
	go func() {
		client := &Client{conn: hostConn}
		errCh <- client.RunREPL(ctx)
	}()

	go func() {
		if err := g.Run(ctx); err != nil {
			errCh <- fmt.Errorf("game error: %w", err)
			return
		}
		result := fmt.Sprintf("%s win", g.Winner)
		_ = joinCtrl.SendGameOver(g.Winner, result)
		_ = hostCtrl.SendGameOver(g.Winner, result)
		errCh <- nil
	}()

	return <-errCh
}

func firstFreeFaction(taken game.Faction) game.Faction {
	for f := game.Faction(0); f < game.NumFactions; f++ {
		if f != taken {
			return f
		}
	}
	return game.NoFaction
}

// RelayLogger is an EventLogger that forwards every event to the
// connected controllers while keeping the inner logger's record.
type RelayLogger struct {
	inner log.EventLogger
	ctrls []*NetworkController
}

// NewRelayLogger wraps an inner logger with client notification.
func NewRelayLogger(inner log.EventLogger, ctrls ...*NetworkController) *RelayLogger {
	return &RelayLogger{inner: inner, ctrls: ctrls}
}

func (r *RelayLogger) Log(e log.GameEvent) {
	r.inner.Log(e)
	for _, c := range r.ctrls {
		_ = c.Notify(e)
	}
}

func (r *RelayLogger) Events() []log.GameEvent {
	return r.inner.Events()
}
