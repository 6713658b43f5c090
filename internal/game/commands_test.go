package game

import (
	"errors"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// A rally plan that fails its legality check must leave the treasury and
// the map exactly as they were.
func TestIllegalRallyLeavesBoardUntouched(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[Patriots] = 5
	mustPlace(t, b, MilitiaUnderground, Virginia, 1)

	err := g.Execute(&CommandPlan{Type: CmdRally, Faction: Patriots,
		Rally: &RallyPlan{Spaces: []RallySpace{{Space: Virginia, Action: RallyFort}}}},
		NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("one Militia cannot build a Fort, got %v", err)
	}
	if b.Resources[Patriots] != 5 {
		t.Errorf("resources = %d, want 5", b.Resources[Patriots])
	}
	if b.Pieces[Virginia][MilitiaUnderground] != 1 {
		t.Errorf("%d Militia left in Virginia, want 1", b.Pieces[Virginia][MilitiaUnderground])
	}
	if b.Pieces[Virginia][PatriotFort] != 0 {
		t.Error("a Fort appeared despite the illegal plan")
	}
	assertConserved(t, b)
}

// Relocations inside an illegal rally must not survive either.
func TestIllegalRallyMoveStaysHome(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[Patriots] = 5
	mustPlace(t, b, PatriotFort, Pennsylvania, 1)
	mustPlace(t, b, MilitiaUnderground, Virginia, 2)

	// The move-in is fine; the second space's Fort swap is not.
	err := g.Execute(&CommandPlan{Type: CmdRally, Faction: Patriots,
		Rally: &RallyPlan{Spaces: []RallySpace{
			{Space: Pennsylvania, Action: RallyMove,
				MoveIn: []RallyMoveIn{{From: Virginia, Count: 2}}},
			{Space: NorthCarolina, Action: RallyFort},
		}}}, NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("an empty space cannot build a Fort, got %v", err)
	}
	if b.Pieces[Virginia][MilitiaUnderground] != 2 {
		t.Errorf("%d Militia left in Virginia, want 2", b.Pieces[Virginia][MilitiaUnderground])
	}
	if b.Pieces[Pennsylvania][MilitiaUnderground] != 0 {
		t.Error("Militia relocated under an illegal plan")
	}
	if b.Resources[Patriots] != 5 {
		t.Errorf("resources = %d, want 5", b.Resources[Patriots])
	}
	assertConserved(t, b)
}

// Reward Loyalty requires British control even counting the Regulars the
// same Muster brings in; a shortfall must not leave anything placed.
func TestIllegalMusterLeavesBoardUntouched(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[British] = 5
	mustPlace(t, b, Tory, Boston, 1)
	mustPlace(t, b, MilitiaActive, Boston, 3)

	err := g.Execute(&CommandPlan{Type: CmdMuster, Faction: British,
		Muster: &MusterPlan{Spaces: []MusterSpace{
			{Space: Boston, Regulars: 2, RewardLoyalty: 1},
		}}}, NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("Reward Loyalty without control must be illegal, got %v", err)
	}
	if b.Resources[British] != 5 {
		t.Errorf("resources = %d, want 5", b.Resources[British])
	}
	if b.Pieces[Boston][BritishRegular] != 0 {
		t.Errorf("%d Regulars placed under an illegal plan", b.Pieces[Boston][BritishRegular])
	}
	if b.Support[Boston] != Neutral {
		t.Errorf("support shifted to %s under an illegal plan", b.Support[Boston])
	}
	assertConserved(t, b)
}

// A gather whose second space cannot pay its Village must not keep the
// first space's placement.
func TestIllegalGatherLeavesBoardUntouched(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[Indians] = 5
	mustPlace(t, b, WarPartyUnderground, Pennsylvania, 1)

	err := g.Execute(&CommandPlan{Type: CmdGather, Faction: Indians,
		Gather: &GatherPlan{Spaces: []GatherSpace{
			{Space: NewYork, Action: GatherPlace},
			{Space: Pennsylvania, Action: GatherVillage},
		}}}, NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("one War Party cannot raise a Village, got %v", err)
	}
	if b.Resources[Indians] != 5 {
		t.Errorf("resources = %d, want 5", b.Resources[Indians])
	}
	if b.Pieces[NewYork][WarPartyUnderground] != 0 {
		t.Error("a War Party was placed under an illegal plan")
	}
	if b.Pieces[Pennsylvania][Village] != 0 {
		t.Error("a Village appeared despite the illegal plan")
	}
	assertConserved(t, b)
}

// Displacement control is judged on the post-redeployment City; a column
// too small to take it must leave the Regulars where they started.
func TestIllegalGarrisonLeavesBoardUntouched(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[British] = 5
	mustPlace(t, b, BritishRegular, Massachusetts, 3)
	mustPlace(t, b, MilitiaActive, Boston, 3)

	err := g.Execute(&CommandPlan{Type: CmdGarrison, Faction: British,
		Garrison: &GarrisonPlan{
			Moves:        []GarrisonMove{{From: Massachusetts, To: Boston, Regulars: 2}},
			Displace:     true,
			DisplaceFrom: Boston,
			DisplaceTo:   Massachusetts,
		}}, NewTurnContext())
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("an outnumbered garrison cannot displace, got %v", err)
	}
	if b.Resources[British] != 5 {
		t.Errorf("resources = %d, want 5", b.Resources[British])
	}
	if b.Pieces[Massachusetts][BritishRegular] != 3 {
		t.Errorf("%d Regulars left in Massachusetts, want 3", b.Pieces[Massachusetts][BritishRegular])
	}
	if b.Pieces[Boston][MilitiaActive] != 3 {
		t.Errorf("%d Militia left in Boston, want 3", b.Pieces[Boston][MilitiaActive])
	}
	assertConserved(t, b)
}
