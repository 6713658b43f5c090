package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

var botOpts = []SlotOption{OptPass, OptCommandSA, OptCommandOnly}

// The battle gate counts Active rebels only: Continentals, Active
// Militia and French Regulars, never the Underground.
func TestBritishBattleGateCountsActiveRebels(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board

	mustPlace(t, b, MilitiaActive, NewYork, 2)
	mustPlace(t, b, BritishRegular, NewYork, 3)
	if !britishBattleTarget(g, NewYork) {
		t.Error("3 Regulars over 2 Active Militia should open a battle")
	}

	mustPlace(t, b, MilitiaUnderground, Virginia, 3)
	mustPlace(t, b, BritishRegular, Virginia, 5)
	if britishBattleTarget(g, Virginia) {
		t.Error("Underground Militia must not draw a battle")
	}

	mustPlace(t, b, MilitiaActive, Pennsylvania, 2)
	mustPlace(t, b, BritishRegular, Pennsylvania, 2)
	if britishBattleTarget(g, Pennsylvania) {
		t.Error("2 against 2 is no battle without a commander")
	}
	b.PlaceLeader(Howe, Pennsylvania)
	if !britishBattleTarget(g, Pennsylvania) {
		t.Error("the commander's +1 should open the battle")
	}
}

// With a big army on the map and a rebel-held City, the bot garrisons
// and displaces the rebels next door.
func TestBritishBotGarrisons(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Massachusetts, 10)
	mustPlace(t, b, MilitiaActive, Boston, 3)
	b.Resources[British] = 2

	act, err := (BritishBot{}).ChooseAction(context.Background(), g, British, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdGarrison {
		t.Fatalf("action = %+v, want a garrison", act)
	}
	plan := act.Command.Garrison
	if !plan.Displace || plan.DisplaceFrom != Boston {
		t.Fatalf("garrison should displace the Boston rebels, got %+v", plan)
	}
	if len(plan.Moves) != 1 || plan.Moves[0].From != Massachusetts {
		t.Fatalf("garrison should draw on Massachusetts, got %+v", plan.Moves)
	}
}

// Mustering lands the Regulars in a single City while the pool holds.
func TestBritishBotMustersIntoOneCity(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	g.Board.Resources[British] = 3

	act, err := (BritishBot{}).ChooseAction(context.Background(), g, British, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdMuster {
		t.Fatalf("action = %+v, want a muster", act)
	}
	plan := act.Command.Muster
	if len(plan.Spaces) != 2 {
		t.Fatalf("muster spaces = %d, want 2", len(plan.Spaces))
	}
	if plan.Spaces[0].Regulars == 0 || plan.Spaces[1].Regulars != 0 {
		t.Fatalf("Regulars must land in the first City only, got %+v", plan.Spaces)
	}
}

// With no garrison, muster or battle on offer the bot marches its best
// column, the commander going along.
func TestBritishBotMarchFallback(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Massachusetts, 2)
	b.PlaceLeader(Gage, Massachusetts)
	b.Available[BritishRegular] = 0 // reinforcement pool spent
	b.Resources[British] = 2

	act, err := (BritishBot{}).ChooseAction(context.Background(), g, British, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdMarch {
		t.Fatalf("action = %+v, want a march", act)
	}
	move := act.Command.March.Moves[0]
	if move.From != Massachusetts || move.Pieces[BritishRegular] != 2 {
		t.Fatalf("march should move both Regulars out of Massachusetts, got %+v", move)
	}
	if len(move.Leaders) != 1 || move.Leaders[0] != Gage {
		t.Fatalf("Gage should march with his column, got %v", move.Leaders)
	}
}

// A battle over a space with War Parties borrows them via Common Cause.
func TestBritishBotBattleBorrowsWarParties(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, NewYork, 3)
	mustPlace(t, b, MilitiaActive, NewYork, 2)
	mustPlace(t, b, WarPartyUnderground, NewYork, 3)
	b.Available[BritishRegular] = 3 // too thin to muster
	b.Resources[British] = 5

	act, err := (BritishBot{}).ChooseAction(context.Background(), g, British, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdBattle {
		t.Fatalf("action = %+v, want a battle", act)
	}
	if act.SA == nil || act.SA.Type != SACommonCause {
		t.Fatalf("SA = %+v, want Common Cause", act.SA)
	}
	uses := act.SA.CommonCause.Uses
	if len(uses) != 1 || uses[0].Space != NewYork || uses[0].Use != 2 {
		t.Fatalf("uses = %+v, want 2 War Parties borrowed in New York", uses)
	}
}

// Without raid targets the Indians scout the War Parties and the nearest
// Regulars toward hidden Militia.
func TestIndiansBotScouts(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, WarPartyUnderground, Pennsylvania, 1)
	mustPlace(t, b, BritishRegular, Pennsylvania, 1)
	mustPlace(t, b, MilitiaUnderground, Virginia, 1)
	b.Resources[Indians] = 1
	b.Resources[British] = 1

	act, err := (IndiansBot{}).ChooseAction(context.Background(), g, Indians, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdScout {
		t.Fatalf("action = %+v, want a scout", act)
	}
	plan := act.Command.Scout
	if plan.From != Pennsylvania || plan.To != Virginia {
		t.Fatalf("scout runs %s to %s, want Pennsylvania to Virginia", plan.From, plan.To)
	}
	if plan.WarParties != 1 || plan.Regulars != 1 {
		t.Fatalf("the whole column should move, got %+v", plan)
	}
}

// A gathering turn walks the War Path where hidden War Parties have
// rebels to strike.
func TestIndiansBotGatherWalksWarPath(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, WarPartyUnderground, Virginia, 2)
	mustPlace(t, b, MilitiaActive, Virginia, 2)
	b.Resources[Indians] = 2

	act, err := (IndiansBot{}).ChooseAction(context.Background(), g, Indians, botOpts)
	if err != nil {
		t.Fatal(err)
	}
	if act.Type != ActCommand || act.Command.Type != CmdGather {
		t.Fatalf("action = %+v, want a gather", act)
	}
	if act.SA == nil || act.SA.Type != SAWarPath {
		t.Fatalf("SA = %+v, want a War Path", act.SA)
	}
	wp := act.SA.WarPath
	if wp.Space != Virginia || wp.Option != WarPathOverrun {
		t.Fatalf("war path = %+v, want an overrun in Virginia", wp)
	}
}
