package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// ScriptedController is a PlayerController that follows a predefined
// script of actions. Used in tests to deterministically drive the game.
type ScriptedController struct {
	t       *testing.T
	name    string
	actions []*Action
	pos     int
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

func (sc *ScriptedController) Name() string { return sc.name }

func (sc *ScriptedController) AddPass() *ScriptedController {
	sc.actions = append(sc.actions, &Action{Type: ActPass})
	return sc
}

func (sc *ScriptedController) AddEvent(shaded bool) *ScriptedController {
	sc.actions = append(sc.actions, &Action{Type: ActEvent, Shaded: shaded})
	return sc
}

func (sc *ScriptedController) AddCommand(plan *CommandPlan) *ScriptedController {
	sc.actions = append(sc.actions, &Action{Type: ActCommand, Command: plan})
	return sc
}

func (sc *ScriptedController) AddCommandSA(plan *CommandPlan, sa *SAPlan) *ScriptedController {
	sc.actions = append(sc.actions, &Action{Type: ActCommand, Command: plan, SA: sa})
	return sc
}

// ChooseAction consumes the script in order, passing once it runs out.
func (sc *ScriptedController) ChooseAction(_ context.Context, _ *Game, _ Faction, _ []SlotOption) (*Action, error) {
	if sc.pos >= len(sc.actions) {
		return &Action{Type: ActPass}, nil
	}
	act := sc.actions[sc.pos]
	sc.pos++
	return act, nil
}

// bareGame builds a game over an empty board, for tests that lay out
// pieces surgically. The two-card deck keeps CurrentCardID meaningful.
func bareGame(logger log.EventLogger) *Game {
	g := &Game{
		Board:  NewBoard(),
		Roller: NewRoller(7),
		Logger: logger,
		Winner: NoFaction,
		deck:   []int{1, 2},
	}
	for f := Faction(0); f < NumFactions; f++ {
		g.Eligible[f] = true
	}
	g.Board.Year = 1775
	return g
}

// newTestGame builds the standard 1775 layout with a memory logger and
// scripted controllers on every faction.
func newTestGame(t *testing.T, seed int64) (*Game, *log.MemoryLogger, map[Faction]*ScriptedController) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := NewGame(seed, logger)
	ctrls := make(map[Faction]*ScriptedController, NumFactions)
	for f := Faction(0); f < NumFactions; f++ {
		sc := NewScriptedController(t, f.String())
		ctrls[f] = sc
		g.SetController(f, sc)
	}
	return g, logger, ctrls
}

func mustPlace(t *testing.T, b *Board, p PieceType, s SpaceID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		b.EnsureAvailable(p)
		if err := b.PlacePiece(p, s); err != nil {
			t.Fatalf("place %s in %s: %v", p, s, err)
		}
	}
}

func assertConserved(t *testing.T, b *Board) {
	t.Helper()
	if err := b.CheckConservation(); err != nil {
		t.Fatalf("piece conservation broken: %v", err)
	}
}
