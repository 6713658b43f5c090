package game

import (
	"fmt"

	"github.com/peterkuimelis/lodx/internal/log"
)

// VictoryMargins is one faction's two victory conditions. The faction
// wins a Winter Quarters check only when both exceed zero.
type VictoryMargins struct {
	First  int
	Second int
}

// Won reports whether both margins clear zero.
func (m VictoryMargins) Won() bool { return m.First > 0 && m.Second > 0 }

// Total is the faction's final-scoring sum.
func (m VictoryMargins) Total() int { return m.First + m.Second }

// Margins computes a faction's current victory margins.
//
// British:  support minus opposition minus 10, and cumulative Rebellion
// casualties minus cumulative British casualties.
// Patriots: opposition minus support minus 10, and Forts plus 3 minus
// Villages.
// French:   opposition minus support minus 10 (only after the Treaty),
// and cumulative British casualties minus Rebellion's.
// Indians:  support minus opposition minus 10, and Villages minus 3
// minus Forts.
func (g *Game) Margins(f Faction) VictoryMargins {
	b := g.Board
	sup, opp := g.supportTotals()
	forts := g.totalOnMap(PatriotFort)
	villages := g.totalOnMap(Village)
	switch f {
	case British:
		return VictoryMargins{
			First:  sup - opp - 10,
			Second: b.CumRebelCasualties - b.CumBritishCasualties,
		}
	case Patriots:
		return VictoryMargins{
			First:  opp - sup - 10,
			Second: forts + 3 - villages,
		}
	case French:
		first := opp - sup - 10
		if !b.TreatyOfAlliance {
			first = -10
		}
		return VictoryMargins{
			First:  first,
			Second: b.CumBritishCasualties - b.CumRebelCasualties,
		}
	case Indians:
		return VictoryMargins{
			First:  sup - opp - 10,
			Second: villages - 3 - forts,
		}
	}
	return VictoryMargins{}
}

// victoryOrder breaks ties at final scoring and simultaneous wins at a
// Winter Quarters check.
var victoryOrder = []Faction{Patriots, British, French, Indians}

// checkVictory declares a winner if any faction clears both margins.
func (g *Game) checkVictory() bool {
	for _, f := range victoryOrder {
		if g.Margins(f).Won() {
			m := g.Margins(f)
			g.Over = true
			g.Winner = f
			g.logEvent(log.NewVictoryEvent(g.CurrentCardID(), f.String(),
				fmt.Sprintf("margins %+d and %+d", m.First, m.Second)))
			return true
		}
	}
	return false
}

// finalScoring ends a game that ran out of cards: highest margin total
// wins, ties resolved by the standing faction order.
func (g *Game) finalScoring() {
	g.Over = true
	best := victoryOrder[0]
	for _, f := range victoryOrder[1:] {
		if g.Margins(f).Total() > g.Margins(best).Total() {
			best = f
		}
	}
	g.Winner = best
	m := g.Margins(best)
	g.logEvent(log.NewVictoryEvent(g.CurrentCardID(), best.String(),
		fmt.Sprintf("final scoring, total %+d", m.Total())))
}

// resolveWinterQuarters runs the year end: the victory check, income,
// the return of casualties, the change of command, and a fresh slate of
// eligibility.
func (g *Game) resolveWinterQuarters(c *Card) {
	b := g.Board
	g.logEvent(log.NewWinterQuartersEvent(c.ID, c.Title))

	if g.checkVictory() {
		return
	}

	g.winterIncome()
	g.returnCasualties()
	g.advanceLeaders()

	for f := Faction(0); f < NumFactions; f++ {
		g.Eligible[f] = true
		g.remainEligible[f] = false
	}
	b.Year++
	g.logEvent(log.NewYearEndEvent(c.ID, b.Year-1, "income paid, casualties returned"))
}

// winterIncome pays each faction its seasonal revenue. Propaganda and
// Raid markers are cashed in and returned to their pools.
func (g *Game) winterIncome() {
	b := g.Board
	income := [NumFactions]int{}

	income[British] = 4 + g.britishControlledCities()

	for _, s := range AllSpaces() {
		if b.Propaganda[s] {
			if b.ControlOf(s) == Rebellion {
				income[Patriots]++
			}
			b.RemovePropaganda(s)
		}
		if b.RaidMarker[s] {
			income[Indians]++
			b.RemoveRaidMarker(s)
		}
	}
	income[Indians] += g.totalOnMap(Village)

	if b.TreatyOfAlliance {
		income[French] = 3
	} else {
		income[French] = 1
	}

	for f := Faction(0); f < NumFactions; f++ {
		if income[f] > 0 {
			b.AddResources(f, income[f])
			g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), f.String(),
				income[f], b.Resources[f]))
		}
	}
}

// returnCasualties sends everything in Casualties back to Available. The
// cumulative counters keep the year's toll for the victory margins.
func (g *Game) returnCasualties() {
	b := g.Board
	for p := PieceType(0); p < NumPieceTypes; p++ {
		for b.Casualties[p] > 0 {
			if err := b.ReturnCasualty(p); err != nil {
				return
			}
		}
	}
}

// advanceLeaders runs the change of command: the British succession
// advances one step each winter, and the French commanders land once the
// Treaty of Alliance is signed.
func (g *Game) advanceLeaders() {
	b := g.Board
	for i := 0; i < len(britishCommanders)-1; i++ {
		cur := britishCommanders[i]
		next := britishCommanders[i+1]
		if b.Leaders[cur] != LeaderOffMap && b.Leaders[next] == LeaderOffMap {
			at := b.Leaders[cur]
			b.PlaceLeader(cur, LeaderOffMap)
			b.PlaceLeader(next, at)
			g.logEvent(log.NewLeaderEvent(g.CurrentCardID(), next.String(), at.String()))
			break
		}
	}

	if b.TreatyOfAlliance {
		landing := NoSpace
		for _, s := range AllSpaces() {
			if b.ControlOf(s) == Rebellion {
				landing = s
				break
			}
		}
		if landing != NoSpace {
			for _, l := range []LeaderName{Rochambeau, Lauzun} {
				if b.Leaders[l] == LeaderOffMap {
					b.PlaceLeader(l, landing)
					g.logEvent(log.NewLeaderEvent(g.CurrentCardID(), l.String(),
						landing.String()))
				}
			}
		}
	}
}
