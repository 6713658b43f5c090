package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/log"
)

// NetworkController implements game.PlayerController over a TCP
// connection. The server enumerates the legal choices for the slot and
// the remote player picks one by index; plan construction stays on the
// server, advised by the faction's bot.
type NetworkController struct {
	conn    net.Conn
	enc     *json.Encoder
	dec     *json.Decoder
	faction game.Faction
	mu      sync.Mutex
}

// NewNetworkController creates a controller for the given connection.
func NewNetworkController(conn net.Conn, f game.Faction) *NetworkController {
	return &NetworkController{
		conn:    conn,
		enc:     json.NewEncoder(conn),
		dec:     json.NewDecoder(conn),
		faction: f,
	}
}

func (nc *NetworkController) Name() string {
	return nc.faction.String() + " (remote)"
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements game.PlayerController.
func (nc *NetworkController) ChooseAction(ctx context.Context, g *game.Game, f game.Faction, opts []game.SlotOption) (*game.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	acts, views := CandidateActions(g, f, opts)
	msg := ServerMessage{
		Type:    "choose_action",
		Actions: views,
		State:   BuildStateView(g),
	}
	if err := nc.send(msg); err != nil {
		return nil, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return nil, fmt.Errorf("recv action: %w", err)
	}
	if resp.Index < 0 || resp.Index >= len(acts) {
		return acts[0], nil // fall back to pass
	}
	return acts[resp.Index], nil
}

// Notify pushes one game event to the client.
func (nc *NetworkController) Notify(e log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "notify", Event: viewOf(e)})
}

// SendGameOver tells the client the game ended.
func (nc *NetworkController) SendGameOver(winner game.Faction, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner.String(), Result: result})
}

func viewOf(e log.GameEvent) *EventView {
	return &EventView{
		Card:    e.Card,
		Faction: e.Faction,
		Type:    e.Type.String(),
		Details: e.Details,
	}
}

// CandidateActions enumerates the concrete choices for a card slot:
// pass, the event texts the card offers, and the faction bot's advised
// Command. Plans stay server-side; the client only picks an index.
func CandidateActions(g *game.Game, f game.Faction, opts []game.SlotOption) ([]*game.Action, []ActionView) {
	var acts []*game.Action
	add := func(a *game.Action) {
		acts = append(acts, a)
	}

	add(&game.Action{Type: game.ActPass})

	c := game.LookupCard(g.CurrentCardID())
	if hasOpt(opts, game.OptEvent) && c.IsEvent() {
		add(&game.Action{Type: game.ActEvent})
		if c.Dual {
			add(&game.Action{Type: game.ActEvent, Shaded: true})
		}
	}

	if hasOpt(opts, game.OptCommandSA) || hasOpt(opts, game.OptCommandOnly) ||
		hasOpt(opts, game.OptLimitedCommand) {
		if bot := game.BotFor(f); bot != nil {
			if advised, err := bot.ChooseAction(context.Background(), g, f, opts); err == nil &&
				advised != nil && advised.Type == game.ActCommand {
				add(advised)
			}
		}
	}

	views := make([]ActionView, len(acts))
	for i, a := range acts {
		views[i] = ActionView{Index: i, Desc: DescribeAction(g, a)}
	}
	return acts, views
}

// DescribeAction renders one candidate action for a menu.
func DescribeAction(g *game.Game, a *game.Action) string {
	switch a.Type {
	case game.ActPass:
		return "Pass"
	case game.ActEvent:
		c := game.LookupCard(g.CurrentCardID())
		side := "unshaded"
		if a.Shaded {
			side = "shaded"
		}
		return fmt.Sprintf("Play Event: %s (%s)", c.Title, side)
	case game.ActCommand:
		desc := fmt.Sprintf("%s (%d spaces)", a.Command.Type, a.Command.AffectedSpaces())
		if a.SA != nil {
			desc += " + " + a.SA.Type.String()
		}
		return desc
	}
	return "Unknown"
}

func hasOpt(opts []game.SlotOption, o game.SlotOption) bool {
	for _, x := range opts {
		if x == o {
			return true
		}
	}
	return false
}

// BuildStateView snapshots the public board state. The deck order is
// the only hidden information, so all factions share one view.
func BuildStateView(g *game.Game) *StateView {
	b := g.Board
	sv := &StateView{
		Year:      b.Year,
		Card:      g.CurrentCardID(),
		Resources: make(map[string]int, game.NumFactions),
		Treaty:    b.TreatyOfAlliance,
		Naval:     b.NavalIntervention,
		Squadron:  b.Squadron,
		Margins:   make(map[string]MarginView, game.NumFactions),
	}
	if sv.Card != 0 {
		sv.CardName = game.LookupCard(sv.Card).Title
	}
	if up := g.UpcomingCardID(); up != 0 {
		sv.Upcoming = game.LookupCard(up).Title
	}
	for f := game.Faction(0); f < game.NumFactions; f++ {
		sv.Resources[f.String()] = b.Resources[f]
		if g.Eligible[f] {
			sv.Eligible = append(sv.Eligible, f.String())
		}
		m := g.Margins(f)
		sv.Margins[f.String()] = MarginView{First: m.First, Second: m.Second}
	}
	for _, s := range game.AllSpaces() {
		sv.Spaces = append(sv.Spaces, spaceView(b, s))
	}
	return sv
}

func spaceView(b *game.Board, s game.SpaceID) SpaceView {
	v := SpaceView{
		Name:       s.String(),
		Support:    b.Support[s].String(),
		Control:    b.ControlOf(s).String(),
		Blockade:   b.Blockade[s],
		Propaganda: b.Propaganda[s],
		Raid:       b.RaidMarker[s],
	}
	for p := game.PieceType(0); p < game.NumPieceTypes; p++ {
		if n := b.Pieces[s][p]; n > 0 {
			if v.Pieces == nil {
				v.Pieces = make(map[string]int)
			}
			v.Pieces[p.String()] = n
		}
	}
	for l := game.LeaderName(0); l < game.NumLeaders; l++ {
		if b.Leaders[l] == s {
			v.Leaders = append(v.Leaders, l.String())
		}
	}
	return v
}
