package mcp

import (
	"context"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/net"
)

// MCPController implements game.PlayerController by publishing pending
// decisions to the session and blocking on a response channel.
type MCPController struct {
	faction    game.Faction
	session    *GameSession
	responseCh chan ActionResponse
}

// NewMCPController creates a controller for the given faction.
func NewMCPController(f game.Faction, session *GameSession) *MCPController {
	return &MCPController{
		faction:    f,
		session:    session,
		responseCh: make(chan ActionResponse),
	}
}

func (c *MCPController) Name() string {
	return c.faction.String() + " (mcp)"
}

// ChooseAction implements game.PlayerController.
func (c *MCPController) ChooseAction(ctx context.Context, g *game.Game, f game.Faction, opts []game.SlotOption) (*game.Action, error) {
	acts, views := net.CandidateActions(g, f, opts)

	c.session.pendingCh <- &PendingDecision{
		Type:    DecisionChooseAction,
		Faction: f.String(),
		State:   net.BuildStateView(g),
		Actions: views,
	}

	select {
	case resp := <-c.responseCh:
		if resp.Index < 0 || resp.Index >= len(acts) {
			return acts[0], nil
		}
		return acts[resp.Index], nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
