package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

const scenarioYAML = `
scenarios:
  - name: "Opening Moves"
    seed: 7
    deck: [3, 1, 8, 97]
    year: 1775
  - name: "Full War"
    seed: 42
`

func writeScenarios(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScenarioByNumber(t *testing.T) {
	path := writeScenarios(t)
	sc, err := ScenarioByNumber(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "Opening Moves" || sc.Seed != 7 || len(sc.Deck) != 4 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	if _, err := ScenarioByNumber(path, 3); err == nil {
		t.Fatal("out-of-range scenario accepted")
	}
}

func TestScenarioRejectsUnknownCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "scenarios:\n  - name: bad\n    seed: 1\n    deck: [1, 999]\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ScenarioByNumber(path, 1); err == nil {
		t.Fatal("unknown card id accepted")
	}
}

func TestNewGameFromScenarioPinsDeck(t *testing.T) {
	path := writeScenarios(t)
	sc, err := ScenarioByNumber(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGameFromScenario(sc, log.NewMemoryLogger())
	if got := g.CurrentCardID(); got != 3 {
		t.Fatalf("first card = %d, want the pinned 3", got)
	}
	if got := g.UpcomingCardID(); got != 1 {
		t.Fatalf("upcoming card = %d, want the pinned 1", got)
	}
	if g.Board.Year != 1775 {
		t.Fatalf("year = %d, want 1775", g.Board.Year)
	}
}
