package game

import "math/rand"

// Roll records one die roll for the audit trail.
type Roll struct {
	Sides  int
	Result int
	Reason string
}

// Roller is the single source of randomness for a game. It is owned by the
// session and passed explicitly; identical seeds replay identical games.
type Roller struct {
	rng *rand.Rand
	Log []Roll
}

// NewRoller creates a seeded Roller.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

func (r *Roller) roll(sides int, reason string) int {
	v := r.rng.Intn(sides) + 1
	r.Log = append(r.Log, Roll{Sides: sides, Result: v, Reason: reason})
	return v
}

// D3 rolls a three-sided die.
func (r *Roller) D3(reason string) int { return r.roll(3, reason) }

// D6 rolls a six-sided die.
func (r *Roller) D6(reason string) int { return r.roll(6, reason) }

// Shuffle randomizes a card order in place.
func (r *Roller) Shuffle(cards []int) {
	r.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
