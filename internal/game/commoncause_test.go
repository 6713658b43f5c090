package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

func TestCommonCauseUsableMarchPreserve(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, WarPartyActive, Northwest, 1)
	mustPlace(t, b, WarPartyUnderground, Northwest, 1)

	if got := g.CommonCauseUsable(Northwest, false, true); got != 1 {
		t.Fatalf("march preserve with 1A+1U = %d, want 1", got)
	}
	if got := g.CommonCauseUsable(Northwest, false, false); got != 2 {
		t.Fatalf("unrestricted march = %d, want 2", got)
	}
}

func TestCommonCauseLoneWarPartyStaysHome(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	mustPlace(t, g.Board, WarPartyUnderground, Southwest, 1)

	if got := g.CommonCauseUsable(Southwest, false, true); got != 0 {
		t.Fatalf("lone War Party usable = %d, want 0", got)
	}
}

func TestCommonCauseBattlePreserveKeepsUnderground(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, WarPartyActive, Northwest, 2)
	mustPlace(t, b, WarPartyUnderground, Northwest, 1)

	if got := g.CommonCauseUsable(Northwest, true, true); got != 2 {
		t.Fatalf("battle preserve with 2A+1U = %d, want 2", got)
	}
}

func TestExecuteCommonCauseFlipsAndRecords(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Pennsylvania, 1)
	mustPlace(t, b, WarPartyUnderground, Pennsylvania, 2)

	ctx := NewTurnContext()
	plan := &SAPlan{Type: SACommonCause, Faction: British,
		CommonCause: &CommonCausePlan{
			Uses:      []CommonCauseUse{{Space: Pennsylvania, Use: 1}},
			ForBattle: true,
			Preserve:  true,
		}}
	applied, err := g.ExecuteSA(plan, ctx)
	if err != nil || !applied {
		t.Fatalf("common cause: applied=%v err=%v", applied, err)
	}
	if ctx.CommonCause[Pennsylvania] != 1 {
		t.Fatalf("loan recorded as %d, want 1", ctx.CommonCause[Pennsylvania])
	}
	if !ctx.PreserveWP {
		t.Fatal("preserve flag not carried into the turn context")
	}
	if b.Pieces[Pennsylvania][WarPartyActive] != 1 ||
		b.Pieces[Pennsylvania][WarPartyUnderground] != 1 {
		t.Fatalf("flip wrong: %dA/%dU, want 1A/1U",
			b.Pieces[Pennsylvania][WarPartyActive],
			b.Pieces[Pennsylvania][WarPartyUnderground])
	}
	assertConserved(t, b)
}

func TestCommonCauseNeedsRegulars(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	mustPlace(t, g.Board, WarPartyUnderground, Pennsylvania, 2)

	plan := &SAPlan{Type: SACommonCause, Faction: British,
		CommonCause: &CommonCausePlan{
			Uses: []CommonCauseUse{{Space: Pennsylvania, Use: 1}},
		}}
	applied, err := g.ExecuteSA(plan, NewTurnContext())
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Fatal("loan accepted without a British Regular present")
	}
}
