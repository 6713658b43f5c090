package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/lodx/internal/log"
)

// ScenarioFile represents the top-level YAML structure.
type ScenarioFile struct {
	Scenarios []ScenarioEntry `yaml:"scenarios"`
}

// ScenarioEntry represents a single scenario in the YAML file. A fixed
// deck pins the card order for replays; without one the seed shuffles a
// fresh deck.
type ScenarioEntry struct {
	Name string   `yaml:"name"`
	Seed int64    `yaml:"seed"`
	Deck []int    `yaml:"deck,omitempty"`
	Year int      `yaml:"year,omitempty"`
	Bots []string `yaml:"bots,omitempty"`
}

// ParseScenarioFile parses a YAML scenario file into a map by name.
func ParseScenarioFile(path string) (map[string]ScenarioEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	scenarios := make(map[string]ScenarioEntry)
	for _, sc := range sf.Scenarios {
		if err := validateScenario(sc); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		scenarios[sc.Name] = sc
	}
	return scenarios, nil
}

// ScenarioByNumber returns the Nth scenario (1-indexed) from the file.
func ScenarioByNumber(path string, n int) (ScenarioEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioEntry{}, err
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return ScenarioEntry{}, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if n < 1 || n > len(sf.Scenarios) {
		return ScenarioEntry{}, fmt.Errorf("scenario %d not found (have %d scenarios)",
			n, len(sf.Scenarios))
	}
	sc := sf.Scenarios[n-1]
	if err := validateScenario(sc); err != nil {
		return ScenarioEntry{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return sc, nil
}

func validateScenario(sc ScenarioEntry) error {
	for _, id := range sc.Deck {
		if _, ok := CardRegistry[id]; !ok {
			return fmt.Errorf("unknown card id %d", id)
		}
	}
	return nil
}

// NewGameFromScenario builds a game from a scenario entry, pinning the
// deck when the entry fixes one.
func NewGameFromScenario(sc ScenarioEntry, logger log.EventLogger) *Game {
	g := NewGame(sc.Seed, logger)
	if len(sc.Deck) > 0 {
		g.deck = append([]int(nil), sc.Deck...)
	}
	if sc.Year != 0 {
		g.Board.Year = sc.Year
	}
	return g
}
