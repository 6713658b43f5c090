package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/lodx/internal/game"
	lodxnet "github.com/peterkuimelis/lodx/internal/net"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// port is the TCP port for the optional human connection, set by main.
var port string

// SetPort sets the TCP port for the human player connection.
func SetPort(p string) {
	port = p
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new four-faction game. You drive one faction; the others are bots "+
			"unless human_faction is set, in which case that seat waits for a human to connect via "+
			"`lodx join --addr localhost:<port> --faction NAME` and this call blocks until they do. "+
			"Returns the initial state and the first pending decision."),
		mcp.WithString("faction", mcp.Required(), mcp.Description("Faction to play: British, Patriots, Indians, or French")),
		mcp.WithNumber("seed", mcp.Description("Deck shuffle seed (default 1)")),
		mcp.WithString("human_faction", mcp.Description("Optional faction for a human player connecting over TCP")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list by index. Use this when the pending decision is yours."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the action to take from the actions list")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current board state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	f, ok := game.FactionByName(request.GetString("faction", ""))
	if !ok {
		return mcp.NewToolResultError("faction must be British, Patriots, Indians, or French"), nil
	}
	seed := int64(request.GetInt("seed", 1))

	humanFaction := game.NoFaction
	if name := request.GetString("human_faction", ""); name != "" {
		hf, ok := game.FactionByName(name)
		if !ok || hf == f {
			return mcp.NewToolResultError("human_faction must name a different faction"), nil
		}
		humanFaction = hf
	}

	sess, err := NewGameSession(seed, f, humanFaction, port)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	if humanFaction != game.NoFaction {
		resp.Port = port
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	pending := sess.currentPending
	if pending == nil || pending.Type != DecisionChooseAction {
		return mcp.NewToolResultError("No pending decision."), nil
	}
	if pending.Faction != sess.mcpFaction.String() {
		return mcp.NewToolResultError("Waiting for the human player to respond via their terminal."), nil
	}

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}

	sess.mcpCtrl.responseCh <- ActionResponse{Index: index}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if resp.GameOver {
		activeSession = nil
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession

	sess.mu.Lock()
	gameOver := sess.gameOver
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		SessionID: sess.ID,
		Events:    sess.drainEvents(),
		GameOver:  gameOver,
		Winner:    winner,
		Result:    result,
	}

	if gameOver {
		if sess.currentPending != nil {
			resp.State = sess.currentPending.State
		}
	} else {
		resp.State = lodxnet.BuildStateView(sess.game)
		if p := sess.currentPending; p != nil {
			resp.Pending = &PendingView{
				Type:      p.Type,
				ForPlayer: sess.playerLabel(p.Faction),
				Faction:   p.Faction,
				Actions:   p.Actions,
			}
		}
	}

	if resp.Events == nil {
		resp.Events = []lodxnet.EventView{}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}
