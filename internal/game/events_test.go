package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// The final British bullet gambles on a die only at five controlled
// Cities; at four the evaluation is deterministic.
func TestBritishCityGamble(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	cities := []SpaceID{QuebecCity, Boston, NewYorkCity, Philadelphia, Norfolk}
	for _, c := range cities {
		mustPlace(t, b, BritishRegular, c, 2)
		b.Support[c] = ActiveSupport
	}

	got := g.WillPlayEvent(British, 5)
	if len(g.Roller.Log) == 0 {
		t.Fatal("five controlled Cities should trigger the die roll")
	}
	roll := g.Roller.Log[len(g.Roller.Log)-1]
	if want := roll.Result >= 5; got != want {
		t.Fatalf("gamble result %v does not match the rolled %d", got, roll.Result)
	}
}

func TestBritishFourCitiesNoGamble(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	for _, c := range []SpaceID{QuebecCity, Boston, NewYorkCity, Philadelphia} {
		mustPlace(t, b, BritishRegular, c, 2)
		b.Support[c] = ActiveSupport
	}

	if g.WillPlayEvent(British, 5) {
		t.Fatal("four controlled Cities should not reach the gamble")
	}
	if len(g.Roller.Log) != 0 {
		t.Fatal("no die should be rolled below five Cities")
	}
}

// A musket icon forces the event, but never an ineffective one.
func TestInstructionForceRespectsEffectiveness(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	if !g.WillPlayEvent(Indians, 18) {
		t.Fatal("forced event with Villages available should play")
	}
	// Drain the Village and War Party boxes; the same card goes dead.
	b := g.Board
	b.Available[Village] = 0
	b.Unavailable[Village] += pieceCaps[Village]
	moved := b.Available[WarPartyActive]
	b.Available[WarPartyActive] = 0
	b.Unavailable[WarPartyActive] += moved
	if g.WillPlayEvent(Indians, 18) {
		t.Fatal("an ineffective event must never be played, even forced")
	}
}

func TestInstructionIgnoreWithMassedMilitia(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, Continental, Massachusetts, 1)
	if !g.WillPlayEvent(British, 29) {
		t.Fatal("card 29 should play while the Militia are scattered")
	}
	mustPlace(t, b, MilitiaActive, Virginia, 4)
	if g.WillPlayEvent(British, 29) {
		t.Fatal("card 29 is ignored at four or more Militia")
	}
}

func TestPatriotCasualtyBulletFires(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	mustPlace(t, g.Board, BritishRegular, Boston, 2)
	// Card 2 shaded inflicts British casualties; the Patriot list plays
	// any such card on its first bullet.
	if !g.WillPlayEvent(Patriots, 2) {
		t.Fatal("casualty-dealing shaded text should be played")
	}
}

func TestExecuteEventSignsTreaty(t *testing.T) {
	logger := log.NewMemoryLogger()
	g := bareGame(logger)
	if err := g.ExecuteEvent(Patriots, 89, true); err != nil {
		t.Fatal(err)
	}
	if !g.Board.TreatyOfAlliance {
		t.Fatal("treaty not signed")
	}
	if len(logger.EventsOfType(log.EventTreaty)) != 1 {
		t.Fatal("treaty event not logged")
	}
	// Signing twice is a no-op.
	if err := g.ExecuteEvent(Patriots, 89, true); err != nil {
		t.Fatal(err)
	}
	if len(logger.EventsOfType(log.EventTreaty)) != 1 {
		t.Fatal("second signing logged a second treaty")
	}
}

func TestExecuteEventConservation(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	for _, id := range []int{1, 18, 44, 73, 88} {
		if err := g.ExecuteEvent(British, id, false); err != nil {
			t.Fatalf("card %d unshaded: %v", id, err)
		}
		if err := g.ExecuteEvent(Patriots, id, true); err != nil {
			t.Fatalf("card %d shaded: %v", id, err)
		}
		assertConserved(t, g.Board)
	}
}

func TestEveryEventHasAProfile(t *testing.T) {
	for id := 1; id <= 96; id++ {
		fx, ok := cardEffects[id]
		if !ok {
			t.Fatalf("card %d has no effect profile", id)
		}
		if fx.Unshaded == 0 || fx.Shaded == 0 {
			t.Fatalf("card %d has an empty side", id)
		}
	}
}
