package snapshot

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/lodx/internal/game"
)

// Snapshot is a YAML-serializable capture of the full public board
// state. The deck order is not part of it: a resumed game reshuffles
// the remaining cards, which is also how a physical table handles a
// spilled deck.
type Snapshot struct {
	ID   string `yaml:"id"`
	Year int    `yaml:"year"`

	Resources map[string]int `yaml:"resources"`
	Eligible  []string       `yaml:"eligible"`

	Treaty   bool `yaml:"treaty_of_alliance,omitempty"`
	Naval    int  `yaml:"naval_intervention,omitempty"`
	Squadron bool `yaml:"squadron,omitempty"`

	BritishCasualties int `yaml:"cum_british_casualties,omitempty"`
	RebelCasualties   int `yaml:"cum_rebel_casualties,omitempty"`

	Casualties  map[string]int `yaml:"casualties,omitempty"`
	Unavailable map[string]int `yaml:"unavailable,omitempty"`

	Leaders map[string]string `yaml:"leaders,omitempty"`
	Spaces  []SpaceState      `yaml:"spaces"`
}

// SpaceState is one space's posture and contents.
type SpaceState struct {
	Name       string         `yaml:"name"`
	Support    int            `yaml:"support,omitempty"`
	Pieces     map[string]int `yaml:"pieces,omitempty"`
	Blockade   bool           `yaml:"blockade,omitempty"`
	Propaganda bool           `yaml:"propaganda,omitempty"`
	Raid       bool           `yaml:"raid,omitempty"`
}

// Capture snapshots a game's board state.
func Capture(g *game.Game) *Snapshot {
	b := g.Board
	s := &Snapshot{
		ID:                uuid.NewString(),
		Year:              b.Year,
		Resources:         make(map[string]int, game.NumFactions),
		Treaty:            b.TreatyOfAlliance,
		Naval:             b.NavalIntervention,
		Squadron:          b.Squadron,
		BritishCasualties: b.CumBritishCasualties,
		RebelCasualties:   b.CumRebelCasualties,
	}
	for f := game.Faction(0); f < game.NumFactions; f++ {
		s.Resources[f.String()] = b.Resources[f]
		if g.Eligible[f] {
			s.Eligible = append(s.Eligible, f.String())
		}
	}
	for p := game.PieceType(0); p < game.NumPieceTypes; p++ {
		if n := b.Casualties[p]; n > 0 {
			if s.Casualties == nil {
				s.Casualties = make(map[string]int)
			}
			s.Casualties[p.String()] = n
		}
		if n := b.Unavailable[p]; n > 0 {
			if s.Unavailable == nil {
				s.Unavailable = make(map[string]int)
			}
			s.Unavailable[p.String()] = n
		}
	}
	for l := game.LeaderName(0); l < game.NumLeaders; l++ {
		if at := b.Leaders[l]; at != game.LeaderOffMap {
			if s.Leaders == nil {
				s.Leaders = make(map[string]string)
			}
			s.Leaders[l.String()] = at.String()
		}
	}
	for _, sp := range game.AllSpaces() {
		ss := SpaceState{
			Name:       sp.String(),
			Support:    int(b.Support[sp]),
			Blockade:   b.Blockade[sp],
			Propaganda: b.Propaganda[sp],
			Raid:       b.RaidMarker[sp],
		}
		for p := game.PieceType(0); p < game.NumPieceTypes; p++ {
			if n := b.Pieces[sp][p]; n > 0 {
				if ss.Pieces == nil {
					ss.Pieces = make(map[string]int)
				}
				ss.Pieces[p.String()] = n
			}
		}
		if ss.Support != 0 || ss.Pieces != nil || ss.Blockade || ss.Propaganda || ss.Raid {
			s.Spaces = append(s.Spaces, ss)
		}
	}
	return s
}

// Restore rebuilds a game's board from a snapshot. The game should be
// freshly constructed; the snapshot replaces its setup.
func Restore(g *game.Game, s *Snapshot) error {
	b := game.NewBoard()
	b.Year = s.Year
	b.TreatyOfAlliance = s.Treaty
	b.NavalIntervention = s.Naval
	b.Squadron = s.Squadron

	for name, n := range s.Resources {
		f, ok := game.FactionByName(name)
		if !ok {
			return fmt.Errorf("unknown faction %q", name)
		}
		b.Resources[f] = n
	}
	for f := game.Faction(0); f < game.NumFactions; f++ {
		g.Eligible[f] = false
	}
	for _, name := range s.Eligible {
		f, ok := game.FactionByName(name)
		if !ok {
			return fmt.Errorf("unknown faction %q", name)
		}
		g.Eligible[f] = true
	}

	for name, n := range s.Unavailable {
		p, ok := pieceByName(name)
		if !ok {
			return fmt.Errorf("unknown piece %q", name)
		}
		for i := 0; i < n; i++ {
			if !b.EnsureAvailable(p) {
				return fmt.Errorf("not enough %s for the unavailable box", name)
			}
			b.Available[p]--
			b.Unavailable[p]++
		}
	}

	for _, ss := range s.Spaces {
		sp, ok := game.LookupSpace(ss.Name)
		if !ok {
			return fmt.Errorf("unknown space %q", ss.Name)
		}
		b.Support[sp] = game.SupportLevel(ss.Support)
		for name, n := range ss.Pieces {
			p, ok := pieceByName(name)
			if !ok {
				return fmt.Errorf("unknown piece %q", name)
			}
			for i := 0; i < n; i++ {
				if !b.EnsureAvailable(p) {
					return fmt.Errorf("not enough %s to place in %s", name, ss.Name)
				}
				if err := b.PlacePiece(p, sp); err != nil {
					return fmt.Errorf("place %s in %s: %w", name, ss.Name, err)
				}
			}
		}
		if ss.Blockade {
			b.BlockadeUnavailable--
			b.BlockadePool++
			if err := b.PlaceBlockade(sp); err != nil {
				return fmt.Errorf("blockade %s: %w", ss.Name, err)
			}
		}
		if ss.Propaganda {
			b.PlacePropaganda(sp)
		}
		if ss.Raid {
			b.PlaceRaidMarker(sp)
		}
	}

	for name, n := range s.Casualties {
		p, ok := pieceByName(name)
		if !ok {
			return fmt.Errorf("unknown piece %q", name)
		}
		for i := 0; i < n; i++ {
			if !b.EnsureAvailable(p) {
				return fmt.Errorf("not enough %s for the casualties box", name)
			}
			b.Available[p]--
			b.Casualties[p]++
		}
	}
	b.CumBritishCasualties = s.BritishCasualties
	b.CumRebelCasualties = s.RebelCasualties

	for name, at := range s.Leaders {
		l, ok := leaderByName(name)
		if !ok {
			return fmt.Errorf("unknown leader %q", name)
		}
		sp, ok := game.LookupSpace(at)
		if !ok {
			return fmt.Errorf("unknown space %q for leader %s", at, name)
		}
		b.PlaceLeader(l, sp)
	}

	if err := b.CheckConservation(); err != nil {
		return fmt.Errorf("snapshot breaks piece conservation: %w", err)
	}
	g.Board = b
	return nil
}

// Save writes a snapshot to a YAML file.
func Save(path string, s *Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a snapshot from a YAML file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot YAML: %w", err)
	}
	return &s, nil
}

func pieceByName(name string) (game.PieceType, bool) {
	for p := game.PieceType(0); p < game.NumPieceTypes; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

func leaderByName(name string) (game.LeaderName, bool) {
	for l := game.LeaderName(0); l < game.NumLeaders; l++ {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}
