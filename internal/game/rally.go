package game

import (
	"sort"

	"github.com/peterkuimelis/lodx/internal/log"
)

// RallyAction selects what one Rally space does.
type RallyAction int

const (
	RallyPlace   RallyAction = iota // place 1 Underground Militia
	RallyFort                       // swap 2 Patriot units for a Fort
	RallyBulk                       // with a Fort, place up to Fort+pop Militia
	RallyMove                       // move adjacent Militia in, all flip Underground
	RallyPromote                    // exchange Militia and Continentals at a Fort
)

// RallyMoveIn is a group of Militia marching to the rally point.
type RallyMoveIn struct {
	From  SpaceID
	Count int // either state; they arrive Underground
}

// RallySpace is one selected Rally space and its action.
type RallySpace struct {
	Space     SpaceID
	Action    RallyAction
	Count     int // RallyBulk placement or RallyPromote exchange size
	MoveIn    []RallyMoveIn
	ToMilitia bool // RallyPromote direction: Continentals back into Militia
}

// RallyPlan lists the selected Rally spaces.
type RallyPlan struct {
	Spaces []RallySpace
}

// ExecuteRally raises Patriot forces. Spaces at Active Support are off
// limits and Militia never enter Indian Reserves. A Patriot treasury at
// zero converts the Command into a free round of Persuasion flips.
func (g *Game) ExecuteRally(f Faction, plan *RallyPlan, ctx *TurnContext) error {
	if f != Patriots {
		return illegalf("only the Patriots rally")
	}
	b := g.Board
	if b.Resources[Patriots] == 0 && !ctx.FreeCommand {
		return g.rallyDesperation()
	}
	if plan == nil || len(plan.Spaces) == 0 {
		return illegalf("rally needs at least one space")
	}

	for _, rs := range plan.Spaces {
		if b.Support[rs.Space] == ActiveSupport {
			return illegalf("no rallying at Active Support in %s", rs.Space)
		}
		if IsReserve(rs.Space) && rs.Action != RallyFort {
			return illegalf("Militia never muster in %s", rs.Space)
		}
	}
	if err := g.validateRally(plan); err != nil {
		return err
	}

	cost := len(plan.Spaces)
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[Patriots] < cost {
		return illegalf("Patriots cannot afford rally cost %d", cost)
	}
	b.Resources[Patriots] -= cost

	spaces := make([]SpaceID, 0, len(plan.Spaces))
	for _, rs := range plan.Spaces {
		spaces = append(spaces, rs.Space)
		if err := g.rallyOne(rs); err != nil {
			return err
		}
	}

	g.logCommand(f, CmdRally, spaces, cost)
	return nil
}

// validateRally checks every per-space legality condition before a single
// Resource or piece moves. Pool draws are tallied across the plan without
// crediting mid-Command returns, so a plan that passes here cannot fail
// mid-execution.
func (g *Game) validateRally(plan *RallyPlan) error {
	b := g.Board
	militiaPool := b.Available[MilitiaUnderground] + b.Available[MilitiaActive]
	fortPool := b.Available[PatriotFort]
	contPool := b.Available[Continental]
	seen := map[SpaceID]bool{}
	movedOut := map[SpaceID]int{}
	for _, rs := range plan.Spaces {
		if seen[rs.Space] {
			return illegalf("a rally selects %s once", rs.Space)
		}
		seen[rs.Space] = true
	}

	for _, rs := range plan.Spaces {
		s := rs.Space

		switch rs.Action {
		case RallyPlace:
			if militiaPool < 1 {
				return illegalf("no Militia available")
			}
			militiaPool--

		case RallyFort:
			if b.BaseCount(s) >= 2 {
				return illegalf("base stacking limit in %s", s)
			}
			if fortPool < 1 {
				return illegalf("no Patriot Forts available")
			}
			fortPool--
			units := b.Pieces[s][MilitiaUnderground] + b.Pieces[s][MilitiaActive] +
				b.Pieces[s][Continental]
			if units < 2 {
				return illegalf("a Fort replaces 2 Patriot units in %s", s)
			}

		case RallyBulk:
			if b.Pieces[s][PatriotFort] == 0 {
				return illegalf("bulk rally needs a Fort in %s", s)
			}
			if limit := b.Pieces[s][PatriotFort] + SpacePopulation(s); rs.Count > limit {
				return illegalf("bulk rally in %s caps at %d", s, limit)
			}

		case RallyMove:
			if b.Pieces[s][PatriotFort] == 0 {
				return illegalf("militia regroup only at a Fort, none in %s", s)
			}
			for _, mi := range rs.MoveIn {
				if !IsAdjacent(mi.From, s) {
					return illegalf("%s is not adjacent to %s", mi.From, s)
				}
				if seen[mi.From] {
					return illegalf("%s is itself a rally space", mi.From)
				}
				movedOut[mi.From] += mi.Count
				have := b.Pieces[mi.From][MilitiaUnderground] + b.Pieces[mi.From][MilitiaActive]
				if movedOut[mi.From] > have {
					return illegalf("%s holds fewer than %d Militia", mi.From, movedOut[mi.From])
				}
			}

		case RallyPromote:
			if b.Pieces[s][PatriotFort] == 0 {
				return illegalf("promotion happens only at a Fort, none in %s", s)
			}
			if rs.ToMilitia {
				if b.Pieces[s][Continental] < rs.Count {
					return illegalf("%s holds fewer than %d Continentals", s, rs.Count)
				}
				if b.Available[MilitiaUnderground] < rs.Count {
					return illegalf("no Militia available to demote into")
				}
			} else {
				if contPool < rs.Count {
					return illegalf("only %d Continentals available", contPool)
				}
				contPool -= rs.Count
				if b.Pieces[s][MilitiaUnderground]+b.Pieces[s][MilitiaActive] < rs.Count {
					return illegalf("%s holds fewer than %d Militia", s, rs.Count)
				}
			}
		}
	}
	return nil
}

func (g *Game) rallyOne(rs RallySpace) error {
	b := g.Board
	s := rs.Space
	switch rs.Action {
	case RallyPlace:
		if b.Available[MilitiaUnderground] <= 0 && b.Available[MilitiaActive] <= 0 {
			return illegalf("no Militia available")
		}
		if b.Available[MilitiaUnderground] <= 0 {
			b.Available[MilitiaActive]--
			b.Available[MilitiaUnderground]++
		}
		if err := b.PlacePiece(MilitiaUnderground, s); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Patriots",
			MilitiaUnderground.String(), s.String(), 1))

	case RallyFort:
		if b.BaseCount(s) >= 2 {
			return illegalf("base stacking limit in %s", s)
		}
		if b.Available[PatriotFort] <= 0 {
			return illegalf("no Patriot Forts available")
		}
		removed := 0
		for _, p := range []PieceType{MilitiaUnderground, MilitiaActive, Continental} {
			for removed < 2 && b.Pieces[s][p] > 0 {
				if err := b.RemovePiece(p, s, ZoneAvailable); err != nil {
					return err
				}
				removed++
			}
		}
		if removed < 2 {
			return illegalf("a Fort replaces 2 Patriot units in %s", s)
		}
		if err := b.PlacePiece(PatriotFort, s); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Patriots",
			PatriotFort.String(), s.String(), 1))

	case RallyBulk:
		if b.Pieces[s][PatriotFort] == 0 {
			return illegalf("bulk rally needs a Fort in %s", s)
		}
		limit := b.Pieces[s][PatriotFort] + SpacePopulation(s)
		n := rs.Count
		if n > limit {
			return illegalf("bulk rally in %s caps at %d", s, limit)
		}
		for i := 0; i < n; i++ {
			if b.Available[MilitiaUnderground] <= 0 {
				if b.Available[MilitiaActive] <= 0 {
					break
				}
				b.Available[MilitiaActive]--
				b.Available[MilitiaUnderground]++
			}
			if err := b.PlacePiece(MilitiaUnderground, s); err != nil {
				return err
			}
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Patriots",
			MilitiaUnderground.String(), s.String(), n))

	case RallyMove:
		if b.Pieces[s][PatriotFort] == 0 {
			return illegalf("militia regroup only at a Fort, none in %s", s)
		}
		for _, mi := range rs.MoveIn {
			if !IsAdjacent(mi.From, s) {
				return illegalf("%s is not adjacent to %s", mi.From, s)
			}
			moved := 0
			for _, p := range []PieceType{MilitiaUnderground, MilitiaActive} {
				for moved < mi.Count && b.Pieces[mi.From][p] > 0 {
					if err := b.MovePiece(p, mi.From, s); err != nil {
						return err
					}
					moved++
				}
			}
			if moved < mi.Count {
				return illegalf("%s holds fewer than %d Militia", mi.From, mi.Count)
			}
			g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "Patriots",
				"Militia", mi.From.String(), s.String(), moved))
		}
		// Everyone regrouping at the Fort goes Underground.
		if n := b.Pieces[s][MilitiaActive]; n > 0 {
			if err := b.FlipPiece(MilitiaActive, MilitiaUnderground, s, n); err != nil {
				return err
			}
		}

	case RallyPromote:
		if b.Pieces[s][PatriotFort] == 0 {
			return illegalf("promotion happens only at a Fort, none in %s", s)
		}
		n := rs.Count
		if rs.ToMilitia {
			if b.Pieces[s][Continental] < n {
				return illegalf("%s holds fewer than %d Continentals", s, n)
			}
			for i := 0; i < n; i++ {
				if err := b.RemovePiece(Continental, s, ZoneAvailable); err != nil {
					return err
				}
				if err := b.PlacePiece(MilitiaUnderground, s); err != nil {
					return err
				}
			}
		} else {
			if b.Available[Continental] < n {
				return illegalf("only %d Continentals available", b.Available[Continental])
			}
			promoted := 0
			for _, p := range []PieceType{MilitiaUnderground, MilitiaActive} {
				for promoted < n && b.Pieces[s][p] > 0 {
					if err := b.RemovePiece(p, s, ZoneAvailable); err != nil {
						return err
					}
					if err := b.PlacePiece(Continental, s); err != nil {
						return err
					}
					promoted++
				}
			}
			if promoted < n {
				return illegalf("%s holds fewer than %d Militia", s, n)
			}
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Patriots",
			"promoted troops", s.String(), n))
	}
	return nil
}

// rallyDesperation is the free Persuasion round a broke Patriot faction
// falls back to: up to 3 eligible spaces, Fort spaces first, then by
// descending population.
func (g *Game) rallyDesperation() error {
	b := g.Board
	var cands []SpaceID
	for _, s := range AllSpaces() {
		if b.Pieces[s][MilitiaUnderground] > 0 && b.ControlOf(s) == Rebellion {
			cands = append(cands, s)
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		fi := b.Pieces[cands[i]][PatriotFort] > 0
		fj := b.Pieces[cands[j]][PatriotFort] > 0
		if fi != fj {
			return fi
		}
		return SpacePopulation(cands[i]) > SpacePopulation(cands[j])
	})
	if len(cands) > 3 {
		cands = cands[:3]
	}
	if len(cands) == 0 {
		return illegalf("no space can sustain a desperate rally")
	}
	for _, s := range cands {
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, s, 1); err != nil {
			return err
		}
		b.AddResources(Patriots, 1)
		b.PlacePropaganda(s)
		g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "Patriots", 1,
			b.Resources[Patriots]))
	}
	g.logCommand(Patriots, CmdRally, cands, 0)
	return nil
}
