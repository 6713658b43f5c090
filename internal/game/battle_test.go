package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// Force level: Regulars in full, Tories capped at the Regulars, Active
// War Parties at half value.
func TestAttackForceArithmetic(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Virginia, 3)
	mustPlace(t, b, Tory, Virginia, 5)
	mustPlace(t, b, WarPartyActive, Virginia, 2)

	got := g.attackForce(British, Virginia, NewTurnContext())
	if got != 7 {
		t.Fatalf("attack force = %d, want 7 (3 + min(5,3) + 2/2)", got)
	}
}

// Three Regulars against three Active Militia is not a battle; a leader
// tips it over the gate.
func TestBattleViabilityGate(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, NewYork, 3)
	mustPlace(t, b, MilitiaActive, NewYork, 3)

	ctx := NewTurnContext()
	if g.viableBattle(British, NewYork, ctx) {
		t.Fatal("3 vs 3 should not be battleable")
	}
	b.PlaceLeader(Gage, NewYork)
	if !g.viableBattle(British, NewYork, ctx) {
		t.Fatal("a leader's +1 should open the battle")
	}
}

func TestBattleIllegalLeavesBoardUntouched(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, NewYork, 1)
	mustPlace(t, b, MilitiaActive, NewYork, 3)
	b.Resources[British] = 5

	plan := &CommandPlan{Type: CmdBattle, Faction: British,
		Battle: &BattlePlan{Spaces: []BattleSpace{{Space: NewYork}}}}
	err := g.Execute(plan, NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("err = %v, want ErrIllegalAction", err)
	}
	if b.Resources[British] != 5 {
		t.Fatalf("illegal battle still charged: %d", b.Resources[British])
	}
	if b.Pieces[NewYork][MilitiaActive] != 3 {
		t.Fatal("illegal battle mutated the board")
	}
	assertConserved(t, b)
}

func TestBattleChargesPerSpace(t *testing.T) {
	logger := log.NewMemoryLogger()
	g := bareGame(logger)
	b := g.Board
	mustPlace(t, b, BritishRegular, NewJersey, 6)
	mustPlace(t, b, MilitiaActive, NewJersey, 1)
	b.Resources[British] = 4

	plan := &CommandPlan{Type: CmdBattle, Faction: British,
		Battle: &BattlePlan{Spaces: []BattleSpace{{Space: NewJersey}}}}
	if err := g.Execute(plan, NewTurnContext()); err != nil {
		t.Fatalf("battle failed: %v", err)
	}
	if b.Resources[British] != 3 {
		t.Fatalf("resources = %d, want 3 after a one-space battle", b.Resources[British])
	}
	if len(logger.EventsOfType(log.EventBattle)) != 1 {
		t.Fatal("no battle event logged")
	}
	assertConserved(t, b)
}

// A defending Village pulls all but one of its War Parties into the open.
func TestDefendingVillageActivatesWarParties(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, Continental, Northwest, 8)
	mustPlace(t, b, WarPartyUnderground, Northwest, 3)
	mustPlace(t, b, Village, Northwest, 1)
	b.Resources[Patriots] = 3

	plan := &CommandPlan{Type: CmdBattle, Faction: Patriots,
		Battle: &BattlePlan{Spaces: []BattleSpace{{Space: Northwest}}}}
	if err := g.Execute(plan, NewTurnContext()); err != nil {
		t.Fatalf("battle failed: %v", err)
	}
	under := b.Pieces[Northwest][WarPartyUnderground]
	if under > 1 {
		t.Fatalf("%d War Parties still Underground, want at most 1", under)
	}
	assertConserved(t, b)
}
