package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/log"
)

func TestCaptureRestoreRoundTrip(t *testing.T) {
	g := game.NewGame(11, log.NewMemoryLogger())
	b := g.Board
	b.TreatyOfAlliance = true
	b.CumBritishCasualties = 2
	b.PlacePropaganda(game.Virginia)
	if err := b.RemovePiece(game.BritishRegular, game.Boston, game.ZoneCasualties); err != nil {
		t.Fatal(err)
	}

	snap := Capture(g)

	g2 := game.NewGame(99, log.NewMemoryLogger())
	if err := Restore(g2, snap); err != nil {
		t.Fatal(err)
	}
	b2 := g2.Board

	if b2.Pieces[game.Boston][game.BritishRegular] != 3 {
		t.Fatalf("Boston regulars = %d, want 3", b2.Pieces[game.Boston][game.BritishRegular])
	}
	if b2.Casualties[game.BritishRegular] != 1 || b2.CumBritishCasualties != 3 {
		t.Fatalf("casualty boxes = %d cum %d, want 1 and 3",
			b2.Casualties[game.BritishRegular], b2.CumBritishCasualties)
	}
	if !b2.TreatyOfAlliance {
		t.Fatal("treaty flag lost")
	}
	if !b2.Propaganda[game.Virginia] {
		t.Fatal("propaganda marker lost")
	}
	if b2.Support[game.Massachusetts] != game.ActiveOpposition {
		t.Fatal("support level lost")
	}
	if b2.Leaders[game.Washington] != game.Massachusetts {
		t.Fatal("leader position lost")
	}
	if b2.Unavailable[game.FrenchRegular] != b.Unavailable[game.FrenchRegular] {
		t.Fatal("unavailable box lost")
	}
	for f := game.Faction(0); f < game.NumFactions; f++ {
		if b2.Resources[f] != b.Resources[f] {
			t.Fatalf("%s resources = %d, want %d", f, b2.Resources[f], b.Resources[f])
		}
	}
	if err := b2.CheckConservation(); err != nil {
		t.Fatalf("restored board breaks conservation: %v", err)
	}
}

func TestSaveLoadFile(t *testing.T) {
	g := game.NewGame(5, log.NewMemoryLogger())
	snap := Capture(g)

	path := filepath.Join(t.TempDir(), "save.yaml")
	if err := Save(path, snap); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != snap.ID || loaded.Year != snap.Year {
		t.Fatalf("loaded %s/%d, want %s/%d", loaded.ID, loaded.Year, snap.ID, snap.Year)
	}
	if len(loaded.Spaces) != len(snap.Spaces) {
		t.Fatalf("spaces = %d, want %d", len(loaded.Spaces), len(snap.Spaces))
	}
}

func TestRestoreRejectsUnknownNames(t *testing.T) {
	g := game.NewGame(5, log.NewMemoryLogger())
	snap := &Snapshot{
		Resources: map[string]int{"Hessians": 4},
	}
	if err := Restore(g, snap); err == nil {
		t.Fatal("unknown faction accepted")
	}
	snap = &Snapshot{
		Spaces: []SpaceState{{Name: "Ohio"}},
	}
	if err := Restore(g, snap); err == nil {
		t.Fatal("unknown space accepted")
	}
}
