package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// Clinton's pursuit adds exactly one extra Militia, never more.
func TestSkirmishClintonBonus(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, NewJersey, 2)
	mustPlace(t, b, MilitiaActive, NewJersey, 3)
	b.PlaceLeader(Clinton, NewJersey)

	plan := &SAPlan{Type: SASkirmish, Faction: British,
		Skirmish: &SkirmishPlan{Spaces: []SkirmishSpace{{Space: NewJersey, Option: SkirmishHarass}}}}
	applied, err := g.ExecuteSA(plan, NewTurnContext())
	if err != nil || !applied {
		t.Fatalf("skirmish: applied=%v err=%v", applied, err)
	}
	if got := b.Pieces[NewJersey][MilitiaActive]; got != 1 {
		t.Fatalf("militia left = %d, want 1 (harass + Clinton = exactly 2 removed)", got)
	}
	assertConserved(t, b)
}

func TestSkirmishGuerrillasReturnCubesFall(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, Continental, Massachusetts, 1)
	mustPlace(t, b, Tory, Massachusetts, 1)
	mustPlace(t, b, WarPartyActive, Massachusetts, 1)

	plan := &SAPlan{Type: SASkirmish, Faction: Patriots,
		Skirmish: &SkirmishPlan{Spaces: []SkirmishSpace{{Space: Massachusetts, Option: SkirmishPress}}}}
	applied, err := g.ExecuteSA(plan, NewTurnContext())
	if err != nil || !applied {
		t.Fatalf("skirmish: applied=%v err=%v", applied, err)
	}
	// Press: the Active War Party to Available, the Tory to Casualties,
	// and the pressing Continental to Casualties.
	if b.Available[WarPartyActive] != pieceCaps[WarPartyActive] {
		t.Fatal("guerrilla loss did not return to Available")
	}
	if b.Casualties[Tory] != 1 {
		t.Fatalf("Tory casualties = %d, want 1", b.Casualties[Tory])
	}
	if b.Casualties[Continental] != 1 {
		t.Fatalf("Continental casualties = %d, want 1", b.Casualties[Continental])
	}
	assertConserved(t, b)
}

func TestSkirmishStormNeedsClearedCubes(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Virginia, 1)
	mustPlace(t, b, PatriotFort, Virginia, 1)
	mustPlace(t, b, Continental, Virginia, 1)

	plan := &SAPlan{Type: SASkirmish, Faction: British,
		Skirmish: &SkirmishPlan{Spaces: []SkirmishSpace{{Space: Virginia, Option: SkirmishStorm}}}}
	applied, err := g.ExecuteSA(plan, NewTurnContext())
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Fatal("storm accepted with an enemy cube still in the space")
	}

	if err := b.RemovePiece(Continental, Virginia, ZoneAvailable); err != nil {
		t.Fatal(err)
	}
	applied, err = g.ExecuteSA(plan, NewTurnContext())
	if err != nil || !applied {
		t.Fatalf("storm after clearing: applied=%v err=%v", applied, err)
	}
	if b.Pieces[Virginia][PatriotFort] != 0 {
		t.Fatal("fort survived the storm")
	}
	if b.Casualties[BritishRegular] != 1 {
		t.Fatal("storming Regular did not fall")
	}
	assertConserved(t, b)
}
