package game

import "testing"

func TestCardRegistryComplete(t *testing.T) {
	if len(CardRegistry) != 109 {
		t.Fatalf("registry holds %d cards, want 109", len(CardRegistry))
	}
	for id := 1; id <= 96; id++ {
		c := LookupCard(id)
		if !c.IsEvent() || !c.Dual {
			t.Fatalf("card %d should be a dual event", id)
		}
	}
	for id := 97; id <= 104; id++ {
		if !LookupCard(id).WinterQuarters {
			t.Fatalf("card %d should be Winter Quarters", id)
		}
	}
	for id := 105; id <= 109; id++ {
		c := LookupCard(id)
		if !c.BrilliantStroke || c.IsEvent() {
			t.Fatalf("card %d should be a Brilliant Stroke", id)
		}
	}
}

func TestCardOrderCoversAllFactions(t *testing.T) {
	for id := 1; id <= 109; id++ {
		c := LookupCard(id)
		var seen [NumFactions]bool
		for _, f := range FactionOrder(c) {
			seen[f] = true
		}
		for f := Faction(0); f < NumFactions; f++ {
			if !seen[f] {
				t.Fatalf("card %d order omits %s", id, f)
			}
		}
	}
}

func TestCardOrderCycles(t *testing.T) {
	want := []Faction{Patriots, British, French, Indians}
	got := FactionOrder(LookupCard(1))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("card 1 order = %v, want %v", got, want)
		}
	}
	// The cycle repeats every eight cards.
	a, b := FactionOrder(LookupCard(3)), FactionOrder(LookupCard(11))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cards 3 and 11 should share an order: %v vs %v", a, b)
		}
	}
}
