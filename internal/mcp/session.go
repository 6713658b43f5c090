package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	stdnet "net"

	"github.com/google/uuid"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/log"
	lodxnet "github.com/peterkuimelis/lodx/internal/net"
)

// DecisionType identifies what the game engine is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionGameOver     DecisionType = "game_over"
)

// PendingDecision is a decision the game engine is waiting for.
type PendingDecision struct {
	Type    DecisionType         `json:"type"`
	Faction string               `json:"faction"`
	State   *lodxnet.StateView   `json:"state"`
	Actions []lodxnet.ActionView `json:"actions,omitempty"`
}

// ActionResponse is sent from the take_action tool to the controller.
type ActionResponse struct {
	Index int
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string              `json:"session_id,omitempty"`
	Events    []lodxnet.EventView `json:"events"`
	State     *lodxnet.StateView  `json:"state,omitempty"`
	Pending   *PendingView        `json:"pending,omitempty"`
	GameOver  bool                `json:"game_over"`
	Winner    string              `json:"winner,omitempty"`
	Result    string              `json:"result,omitempty"`
	Port      string              `json:"port,omitempty"`
}

// PendingView is the pending decision as presented in tool responses.
type PendingView struct {
	Type      DecisionType         `json:"type"`
	ForPlayer string               `json:"for_player"`
	Faction   string               `json:"faction"`
	Actions   []lodxnet.ActionView `json:"actions,omitempty"`
}

// GameSession holds the state of a single MCP game session. The MCP
// client drives one faction, an optional human drives another over TCP,
// and bots fill the remaining seats.
type GameSession struct {
	ID string

	game       *game.Game
	mcpCtrl    *MCPController
	humanCtrl  *lodxnet.NetworkController
	mcpFaction game.Faction

	listener  stdnet.Listener
	humanConn stdnet.Conn

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []lodxnet.EventView
	gameOver bool
	winner   string
	result   string
}

// NewGameSession starts a session. When humanFaction is a real faction,
// the constructor listens on port and blocks until a human connects via
// `lodx join`; otherwise every other faction is a bot.
func NewGameSession(seed int64, mcpFaction, humanFaction game.Faction, port string) (*GameSession, error) {
	sess := &GameSession{
		ID:         uuid.NewString(),
		mcpFaction: mcpFaction,
		pendingCh:  make(chan *PendingDecision, 1),
	}

	if humanFaction != game.NoFaction {
		ln, err := stdnet.Listen("tcp", ":"+port)
		if err != nil {
			return nil, fmt.Errorf("listen on port %s: %w", port, err)
		}
		conn, err := ln.Accept()
		if err != nil {
			ln.Close()
			return nil, fmt.Errorf("accept: %w", err)
		}
		var joinMsg lodxnet.ClientMessage
		if err := json.NewDecoder(conn).Decode(&joinMsg); err != nil {
			conn.Close()
			ln.Close()
			return nil, fmt.Errorf("read join message: %w", err)
		}
		sess.listener = ln
		sess.humanConn = conn
		sess.humanCtrl = lodxnet.NewNetworkController(conn, humanFaction)
	}

	sess.mcpCtrl = NewMCPController(mcpFaction, sess)

	g := game.NewGame(seed, &sessionLogger{session: sess})
	sess.game = g
	for f := game.Faction(0); f < game.NumFactions; f++ {
		switch f {
		case mcpFaction:
			g.SetController(f, sess.mcpCtrl)
		case humanFaction:
			g.SetController(f, sess.humanCtrl)
		default:
			g.SetController(f, game.BotFor(f))
		}
	}

	go func() {
		err := g.Run(context.Background())

		result := fmt.Sprintf("%s win", g.Winner)
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
		}

		if sess.humanCtrl != nil {
			_ = sess.humanCtrl.SendGameOver(g.Winner, result)
			sess.humanConn.Close()
			sess.listener.Close()
		}

		sess.mu.Lock()
		sess.gameOver = true
		sess.winner = g.Winner.String()
		sess.result = result
		sess.mu.Unlock()

		sess.pendingCh <- &PendingDecision{
			Type:  DecisionGameOver,
			State: lodxnet.BuildStateView(g),
		}
	}()

	return sess, nil
}

// sessionLogger records every event for the MCP client and relays it to
// the human connection, on top of the in-memory log.
type sessionLogger struct {
	log.MemoryLogger
	session *GameSession
}

func (l *sessionLogger) Log(e log.GameEvent) {
	l.MemoryLogger.Log(e)
	s := l.session
	s.mu.Lock()
	s.events = append(s.events, lodxnet.EventView{
		Card:    e.Card,
		Faction: e.Faction,
		Type:    e.Type.String(),
		Details: e.Details,
	})
	s.mu.Unlock()
	if s.humanCtrl != nil {
		_ = s.humanCtrl.Notify(e)
	}
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []lodxnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}

// waitForPending blocks until the next decision arrives from the game
// engine, then builds a ToolResponse around it.
func (s *GameSession) waitForPending() (*ToolResponse, error) {
	pending := <-s.pendingCh
	s.currentPending = pending

	resp := &ToolResponse{
		SessionID: s.ID,
		Events:    s.drainEvents(),
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Winner = s.winner
		resp.Result = s.result
		s.mu.Unlock()
		resp.State = pending.State
		return resp, nil
	}

	resp.State = pending.State
	resp.Pending = &PendingView{
		Type:      pending.Type,
		ForPlayer: s.playerLabel(pending.Faction),
		Faction:   pending.Faction,
		Actions:   pending.Actions,
	}
	return resp, nil
}

// playerLabel tags whose decision is pending.
func (s *GameSession) playerLabel(faction string) string {
	if faction == s.mcpFaction.String() {
		return "mcp"
	}
	return "human"
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
