package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

func TestBritishMargins(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	for _, s := range []SpaceID{Boston, NewYorkCity, QuebecCity, Philadelphia, Norfolk, CharlesTown} {
		b.Support[s] = ActiveSupport
	}
	b.CumRebelCasualties = 3
	b.CumBritishCasualties = 1

	m := g.Margins(British)
	if m.First != 2 || m.Second != 2 {
		t.Fatalf("margins = %+d/%+d, want +2/+2", m.First, m.Second)
	}
	if !m.Won() {
		t.Fatal("both margins positive should win")
	}
}

func TestFrenchMarginClampedBeforeTreaty(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	for _, s := range []SpaceID{Massachusetts, Virginia, Pennsylvania, NorthCarolina, SouthCarolina, Georgia} {
		b.Support[s] = ActiveOpposition
	}

	if m := g.Margins(French); m.First != -10 {
		t.Fatalf("pre-Treaty first margin = %+d, want -10", m.First)
	}
	b.TreatyOfAlliance = true
	if m := g.Margins(French); m.First != 2 {
		t.Fatalf("post-Treaty first margin = %+d, want +2", m.First)
	}
}

func TestVictoryCheckUsesFactionOrder(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	// Opposition everywhere: both Patriots and French clear their first
	// margin; the Patriots stand earlier in the order.
	for _, s := range AllSpaces() {
		if SpacePopulation(s) > 0 {
			b.Support[s] = ActiveOpposition
		}
	}
	b.TreatyOfAlliance = true
	b.CumBritishCasualties = 5
	mustPlace(t, b, PatriotFort, Virginia, 1)

	if !g.Margins(Patriots).Won() || !g.Margins(French).Won() {
		t.Fatal("test setup should satisfy both rebel factions")
	}
	if !g.checkVictory() {
		t.Fatal("no victory declared")
	}
	if g.Winner != Patriots {
		t.Fatalf("winner = %s, want Patriots by order", g.Winner)
	}
}

func TestFinalScoringPrefersEarlierFactionOnTie(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	// Empty board: Patriots total -7 (second margin +3 from zero
	// Villages). Matching the British total exactly must not unseat them.
	g.Board.CumRebelCasualties = 3
	if g.Margins(Patriots).Total() != g.Margins(British).Total() {
		t.Fatal("setup should tie Patriots and British")
	}
	g.finalScoring()
	if !g.Over {
		t.Fatal("final scoring must end the game")
	}
	if g.Winner != Patriots {
		t.Fatalf("winner = %s, want Patriots on the tie", g.Winner)
	}
}

func TestWinterIncomeCashesMarkers(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, MilitiaUnderground, Virginia, 2)
	b.PlacePropaganda(Virginia)
	b.PlaceRaidMarker(NorthCarolina)
	mustPlace(t, b, Village, Northwest, 1)

	g.winterIncome()
	if b.Resources[Patriots] != 1 {
		t.Fatalf("Patriot income = %d, want 1 from the Propaganda marker", b.Resources[Patriots])
	}
	if b.Resources[Indians] != 2 {
		t.Fatalf("Indian income = %d, want 1 raid + 1 Village", b.Resources[Indians])
	}
	if b.Propaganda[Virginia] || b.RaidMarker[NorthCarolina] {
		t.Fatal("markers must return to the pool after paying out")
	}
}

func TestWinterReturnsCasualties(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	mustPlace(t, b, BritishRegular, Boston, 2)
	if err := b.RemovePiece(BritishRegular, Boston, ZoneCasualties); err != nil {
		t.Fatal(err)
	}

	g.returnCasualties()
	if b.Casualties[BritishRegular] != 0 {
		t.Fatal("casualties not returned")
	}
	if b.CumBritishCasualties != 1 {
		t.Fatal("cumulative toll must survive the winter")
	}
	assertConserved(t, b)
}

func TestWinterAdvancesBritishCommand(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.PlaceLeader(Gage, Boston)

	g.advanceLeaders()
	if b.Leaders[Gage] != LeaderOffMap {
		t.Fatal("Gage should be recalled")
	}
	if b.Leaders[Howe] != Boston {
		t.Fatalf("Howe at %s, want Boston", b.Leaders[Howe])
	}
	// The next winter brings Clinton, and the succession stops there.
	g.advanceLeaders()
	if b.Leaders[Clinton] != Boston || b.Leaders[Howe] != LeaderOffMap {
		t.Fatal("Clinton should relieve Howe")
	}
	g.advanceLeaders()
	if b.Leaders[Clinton] != Boston {
		t.Fatal("Clinton has no successor")
	}
}

func TestTreatyLandsFrenchLeaders(t *testing.T) {
	g := bareGame(log.NewMemoryLogger())
	b := g.Board
	b.TreatyOfAlliance = true
	mustPlace(t, b, Continental, Virginia, 2)

	g.advanceLeaders()
	if b.Leaders[Rochambeau] == LeaderOffMap || b.Leaders[Lauzun] == LeaderOffMap {
		t.Fatal("French commanders should land after the Treaty")
	}
}
