package game

import (
	"github.com/peterkuimelis/lodx/internal/log"
)

// MarchMove is one marching group: pieces leaving From for the adjacent To.
type MarchMove struct {
	From   SpaceID
	To     SpaceID
	Pieces map[PieceType]int

	// Leaders accompanying the group.
	Leaders []LeaderName
}

// MarchPlan lists the marching groups of one March Command.
type MarchPlan struct {
	Moves []MarchMove
}

func (p *MarchPlan) destinations() []SpaceID {
	seen := map[SpaceID]bool{}
	var out []SpaceID
	for _, m := range p.Moves {
		if !seen[m.To] {
			seen[m.To] = true
			out = append(out, m.To)
		}
	}
	return out
}

// ExecuteMarch validates and runs a March. The actor pays 1 Resource per
// destination; allied escorts pay their own cross-faction fee per
// destination their pieces enter.
func (g *Game) ExecuteMarch(f Faction, plan *MarchPlan, ctx *TurnContext) error {
	if plan == nil || len(plan.Moves) == 0 {
		return illegalf("march needs at least one moving group")
	}
	b := g.Board

	allyFees := map[Faction]int{}
	allReserveOrigin := true
	for _, m := range plan.Moves {
		if !IsAdjacent(m.From, m.To) {
			return illegalf("%s and %s are not adjacent", m.From, m.To)
		}
		if !IsReserve(m.From) {
			allReserveOrigin = false
		}
		regulars := 0
		escorts := 0
		for p, n := range m.Pieces {
			if n <= 0 {
				return illegalf("non-positive piece count in march group")
			}
			if p.IsBase() {
				return illegalf("bases never march")
			}
			if b.Pieces[m.From][p] < n {
				return illegalf("%s lacks %dx %s", m.From, n, p)
			}
			owner := p.Owner()
			switch f {
			case British:
				switch owner {
				case British:
					if p == BritishRegular {
						regulars += n
					} else {
						escorts += n
					}
				case Indians:
					// Common Cause loans only.
					if ctx.CommonCause[m.From] < n {
						return illegalf("war parties march only under Common Cause")
					}
					if IsCity(m.To) {
						return illegalf("war parties may not enter Cities")
					}
					escorts += n
				default:
					return illegalf("%s pieces cannot join a British march", owner)
				}
			case Patriots, French:
				if owner != Patriots && owner != French {
					return illegalf("%s pieces cannot join a %s march", owner, f)
				}
				if owner != f {
					allyFees[owner] = 0 // counted per destination below
				}
			case Indians:
				if owner != Indians {
					return illegalf("%s pieces cannot join an Indian march", owner)
				}
				if IsCity(m.To) {
					return illegalf("Indians may not enter Cities")
				}
			}
		}
		if f == British && escorts > regulars {
			return illegalf("escorts exceed marching Regulars in %s", m.From)
		}
		for _, l := range m.Leaders {
			if b.Leaders[l] != m.From {
				return illegalf("%s is not in %s", l, m.From)
			}
		}
	}

	// Cross-faction escort fee: 1 per destination the ally's pieces enter.
	if f == Patriots || f == French {
		ally := Ally(f)
		feeDests := map[SpaceID]bool{}
		for _, m := range plan.Moves {
			for p, n := range m.Pieces {
				if n > 0 && p.Owner() == ally {
					feeDests[m.To] = true
				}
			}
		}
		if len(feeDests) > 0 {
			allyFees[ally] = len(feeDests)
		}
	}

	dests := plan.destinations()
	cost := len(dests)
	if f == Indians && allReserveOrigin {
		for _, d := range dests {
			if IsReserve(d) {
				cost-- // first Reserve destination is free
				break
			}
		}
	}
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[f] < cost {
		return illegalf("%s cannot afford march cost %d", f, cost)
	}
	for ally, fee := range allyFees {
		if b.Resources[ally] < fee {
			return illegalf("%s cannot afford escort fee %d", ally, fee)
		}
	}

	// Record pre-move control for the activation checks.
	preControl := map[SpaceID]Side{}
	for _, d := range dests {
		preControl[d] = b.ControlOf(d)
	}

	b.Resources[f] -= cost
	for ally, fee := range allyFees {
		b.Resources[ally] -= fee
	}

	movedUGMilitia := map[SpaceID]int{}
	movedUGWP := map[SpaceID]int{}
	groupSize := map[SpaceID]int{}
	movedContinentals := map[SpaceID]int{}
	for _, m := range plan.Moves {
		for p, n := range m.Pieces {
			place := p
			if p == WarPartyUnderground && f == British {
				// Lent War Parties arrive Active.
				place = WarPartyActive
			}
			for i := 0; i < n; i++ {
				if err := b.MovePiece(p, m.From, m.To); err != nil {
					return err
				}
			}
			if place != p {
				if err := b.FlipPiece(p, place, m.To, n); err != nil {
					return err
				}
			}
			switch p {
			case MilitiaUnderground:
				movedUGMilitia[m.To] += n
			case WarPartyUnderground:
				if f == Indians {
					movedUGWP[m.To] += n
				}
			case Continental:
				movedContinentals[m.To] += n
			}
			groupSize[m.To] += n
			g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), f.String(),
				p.String(), m.From.String(), m.To.String(), n))
		}
		for _, l := range m.Leaders {
			b.PlaceLeader(l, m.To)
			g.logEvent(log.NewLeaderEvent(g.CurrentCardID(), l.String(), m.To.String()))
		}
	}

	// Post-move activation.
	for _, d := range dests {
		switch f {
		case British:
			n := b.BritishCubes(d) / 3
			g.flipUpTo(MilitiaUnderground, MilitiaActive, d, n)
		case Patriots, French:
			// Arriving Continentals flush out War Parties.
			g.flipUpTo(WarPartyUnderground, WarPartyActive, d, movedContinentals[d]/2)
			if IsCity(d) && preControl[d] == Royalist &&
				groupSize[d]+b.BritishCubes(d) > 3 {
				g.flipUpTo(MilitiaUnderground, MilitiaActive, d, movedUGMilitia[d])
			}
		case Indians:
			if SpaceTerrain(d) == Colony && preControl[d] == Rebellion &&
				groupSize[d]+b.Pieces[d][MilitiaActive]+b.Pieces[d][MilitiaUnderground] > 3 {
				g.flipUpTo(WarPartyUnderground, WarPartyActive, d, movedUGWP[d])
			}
		}
	}

	g.logCommand(f, CmdMarch, dests, cost)
	return nil
}

// flipUpTo flips up to n pieces from one state to the other, bounded by
// what the space holds.
func (g *Game) flipUpTo(from, to PieceType, s SpaceID, n int) {
	have := g.Board.Pieces[s][from]
	if n > have {
		n = have
	}
	if n <= 0 {
		return
	}
	if err := g.Board.FlipPiece(from, to, s, n); err == nil {
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), from.Owner().String(),
			to.String(), s.String(), n))
	}
}
