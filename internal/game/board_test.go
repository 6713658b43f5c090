package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

func TestNewBoardConservation(t *testing.T) {
	b := NewBoard()
	assertConserved(t, b)
}

func TestSetupConservation(t *testing.T) {
	g := NewGame(42, log.NewMemoryLogger())
	assertConserved(t, g.Board)
}

func TestBaseStackingCap(t *testing.T) {
	b := NewBoard()
	mustPlace(t, b, PatriotFort, Virginia, 1)
	mustPlace(t, b, Village, Virginia, 1)
	if err := b.PlacePiece(BritishFort, Virginia); err == nil {
		t.Fatal("third base in one space should be rejected")
	}
	assertConserved(t, b)
}

func TestRemoveToCasualtiesCountsCumulative(t *testing.T) {
	b := NewBoard()
	mustPlace(t, b, BritishRegular, Boston, 2)
	mustPlace(t, b, Continental, Massachusetts, 1)

	if err := b.RemovePiece(BritishRegular, Boston, ZoneCasualties); err != nil {
		t.Fatal(err)
	}
	if err := b.RemovePiece(Continental, Massachusetts, ZoneCasualties); err != nil {
		t.Fatal(err)
	}
	if b.CumBritishCasualties != 1 || b.CumRebelCasualties != 1 {
		t.Fatalf("cumulative counters = %d/%d, want 1/1",
			b.CumBritishCasualties, b.CumRebelCasualties)
	}
	// Returning casualties does not roll the counters back.
	if err := b.ReturnCasualty(BritishRegular); err != nil {
		t.Fatal(err)
	}
	if b.CumBritishCasualties != 1 {
		t.Fatalf("cumulative counter rolled back to %d", b.CumBritishCasualties)
	}
	assertConserved(t, b)
}

func TestEnsureAvailableConvertsDualState(t *testing.T) {
	b := NewBoard()
	// The Underground box starts empty; placement converts from Active.
	if b.Available[MilitiaUnderground] != 0 {
		t.Fatalf("underground box starts at %d", b.Available[MilitiaUnderground])
	}
	if !b.EnsureAvailable(MilitiaUnderground) {
		t.Fatal("conversion from the Active box failed")
	}
	if b.Available[MilitiaUnderground] != 1 || b.Available[MilitiaActive] != pieceCaps[MilitiaActive]-1 {
		t.Fatalf("conversion moved wrong counts: %d/%d",
			b.Available[MilitiaUnderground], b.Available[MilitiaActive])
	}
	assertConserved(t, b)
}

func TestControlDerivation(t *testing.T) {
	b := NewBoard()
	mustPlace(t, b, MilitiaUnderground, Virginia, 2)
	if got := b.ControlOf(Virginia); got != Rebellion {
		t.Fatalf("control = %v, want Rebellion", got)
	}
	mustPlace(t, b, WarPartyUnderground, Virginia, 3)
	// Royalists outnumber but have no British cube.
	if got := b.ControlOf(Virginia); got != NoSide {
		t.Fatalf("control = %v, want none without a British cube", got)
	}
	mustPlace(t, b, Tory, Virginia, 1)
	if got := b.ControlOf(Virginia); got != Royalist {
		t.Fatalf("control = %v, want Royalist", got)
	}
}

func TestPayRefusesOverdraft(t *testing.T) {
	b := NewBoard()
	b.Resources[Indians] = 1
	if b.Pay(Indians, 2) {
		t.Fatal("overdraft accepted")
	}
	if b.Resources[Indians] != 1 {
		t.Fatalf("failed payment still debited: %d", b.Resources[Indians])
	}
	if !b.Pay(Indians, 1) {
		t.Fatal("affordable payment refused")
	}
}

func TestBlockadeMarkerPool(t *testing.T) {
	b := NewBoard()
	// All three markers start unavailable; ready one.
	b.BlockadeUnavailable--
	b.BlockadePool++
	if err := b.PlaceBlockade(Boston); err != nil {
		t.Fatal(err)
	}
	if err := b.PlaceBlockade(Boston); err == nil {
		t.Fatal("double blockade accepted")
	}
	if err := b.PlaceBlockade(Virginia); err == nil {
		t.Fatal("blockade on a Colony accepted")
	}
	if err := b.LiftBlockade(Boston); err != nil {
		t.Fatal(err)
	}
	if b.BlockadePool != 1 {
		t.Fatalf("pool = %d after lift, want 1", b.BlockadePool)
	}
}
