package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// A pass pays the award and leaves the slot open for the next faction.
func TestPassLeavesSlotOpen(t *testing.T) {
	g, logger, _ := newTestGame(t, 3)
	if err := g.PlayCard(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := [NumFactions]int{British: 12, Patriots: 6, Indians: 5, French: 6}
	for f := Faction(0); f < NumFactions; f++ {
		if g.Board.Resources[f] != want[f] {
			t.Errorf("%s resources = %d, want %d", f, g.Board.Resources[f], want[f])
		}
		if !g.Eligible[f] {
			t.Errorf("%s lost eligibility by passing", f)
		}
	}
	if n := len(logger.EventsOfType(log.EventPass)); n != 4 {
		t.Fatalf("pass events = %d, want 4", n)
	}
}

func TestExecutionConsumesEligibility(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	g.Board.Resources[Patriots] = 5
	sc := NewScriptedController(t, "Patriots")
	sc.AddCommand(&CommandPlan{Type: CmdRally, Faction: Patriots,
		Rally: &RallyPlan{Spaces: []RallySpace{{Space: Pennsylvania, Action: RallyPlace}}}})
	g.SetController(Patriots, sc)

	if err := g.PlayCard(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.Eligible[Patriots] {
		t.Fatal("the executing faction stayed eligible")
	}
	for _, f := range []Faction{British, French, Indians} {
		if !g.Eligible[f] {
			t.Errorf("%s should carry eligibility to the next card", f)
		}
	}
	if g.Board.Resources[Patriots] != 4 {
		t.Fatalf("rally cost not charged: %d", g.Board.Resources[Patriots])
	}
	if g.Board.Pieces[Pennsylvania][MilitiaUnderground] != 1 {
		t.Fatal("rally placed nothing")
	}
}

// Two executions close the card; later factions never see a slot.
func TestTwoExecutionsEndTheCard(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.Resources[Patriots] = 2
	b.Resources[British] = 2

	pat := NewScriptedController(t, "Patriots")
	pat.AddCommand(&CommandPlan{Type: CmdRally, Faction: Patriots,
		Rally: &RallyPlan{Spaces: []RallySpace{{Space: Virginia, Action: RallyPlace}}}})
	g.SetController(Patriots, pat)

	brit := NewScriptedController(t, "British")
	brit.AddCommand(&CommandPlan{Type: CmdMuster, Faction: British,
		Muster: &MusterPlan{Spaces: []MusterSpace{{Space: Boston, Regulars: 1}}}})
	g.SetController(British, brit)

	if err := g.PlayCard(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.Eligible[Patriots] || g.Eligible[British] {
		t.Fatal("both executors should be ineligible")
	}
	if !g.Eligible[French] || !g.Eligible[Indians] {
		t.Fatal("skipped factions must keep eligibility")
	}
	// French and Indians never got a slot, so no pass award either.
	if b.Resources[French] != 0 || b.Resources[Indians] != 0 {
		t.Fatalf("skipped factions were paid: %d/%d",
			b.Resources[French], b.Resources[Indians])
	}
}

// An illegal action degrades to a pass, but without the award.
func TestIllegalActionPaysNothing(t *testing.T) {
	logger := log.NewMemoryLogger()
	g := bareGame(logger)
	sc := NewScriptedController(t, "Patriots")
	sc.AddCommand(&CommandPlan{Type: CmdBattle, Faction: Patriots,
		Battle: &BattlePlan{Spaces: []BattleSpace{{Space: NewYork}}}})
	g.SetController(Patriots, sc)

	if err := g.PlayCard(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.Board.Resources[Patriots] != 0 {
		t.Fatalf("illegal action still paid: %d", g.Board.Resources[Patriots])
	}
	if !g.Eligible[Patriots] {
		t.Fatal("a degraded pass must not cost eligibility")
	}
	if len(logger.EventsOfType(log.EventIllegalAction)) != 1 {
		t.Fatal("illegal action not logged")
	}
}

// Winter Quarters surfacing as the upcoming card jumps the queue.
func TestWinterQuartersJumpsQueue(t *testing.T) {
	logger := log.NewMemoryLogger()
	g := bareGame(logger)
	g.deck = []int{1, 97, 2}

	if err := g.PlayCard(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.Board.Year != 1776 {
		t.Fatalf("year = %d, want 1776 after Winter Quarters", g.Board.Year)
	}
	if got := g.CurrentCardID(); got != 1 {
		t.Fatalf("current card = %d, want the displaced event back on top", got)
	}
	// Income: the British base 4 with no controlled Cities, the French 1
	// before the Treaty.
	if g.Board.Resources[British] != 4 || g.Board.Resources[French] != 1 {
		t.Fatalf("winter income = %d/%d, want 4/1",
			g.Board.Resources[British], g.Board.Resources[French])
	}
	if len(logger.EventsOfType(log.EventYearEnd)) != 1 {
		t.Fatal("year end not logged")
	}
}

func TestDeckHidesWinterQuartersInBottomHalf(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGame(seed, nil)
		for year := 0; year < 8; year++ {
			pile := g.deck[year*13 : (year+1)*13]
			at := -1
			for i, id := range pile {
				if LookupCard(id).WinterQuarters {
					at = i
					break
				}
			}
			if at < 6 {
				t.Fatalf("seed %d year %d: Winter Quarters at index %d", seed, year, at)
			}
		}
	}
}
