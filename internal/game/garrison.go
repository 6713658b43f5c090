package game

import "github.com/peterkuimelis/lodx/internal/log"

// GarrisonMove shifts Regulars from one space into a City.
type GarrisonMove struct {
	From     SpaceID
	To       SpaceID
	Regulars int
}

// GarrisonPlan redeploys Regulars into the Cities, optionally expelling
// the Rebellion from one of them.
type GarrisonPlan struct {
	Moves []GarrisonMove

	// Displace pushes every Rebellion piece out of DisplaceFrom, a
	// British-controlled fortless City, into the adjacent DisplaceTo.
	Displace     bool
	DisplaceFrom SpaceID
	DisplaceTo   SpaceID
}

// ExecuteGarrison redeploys at a flat cost of 2. It is blocked entirely
// while French naval intervention is at its peak, and blockaded ports
// neither send nor receive troops. Every unblockaded City then activates
// one Militia per 3 British cubes; under the Limited restriction only the
// destination City does.
func (g *Game) ExecuteGarrison(f Faction, plan *GarrisonPlan, ctx *TurnContext) error {
	if f != British {
		return illegalf("only the British garrison")
	}
	if plan == nil || len(plan.Moves) == 0 {
		return illegalf("garrison needs at least one move")
	}
	b := g.Board
	if b.NavalIntervention >= MaxNavalIntervention {
		return illegalf("the French fleet controls the coast")
	}

	sent := map[SpaceID]int{}
	for _, m := range plan.Moves {
		if !IsCity(m.To) {
			return illegalf("garrisons move into Cities, not %s", m.To)
		}
		if b.Blockade[m.To] {
			return illegalf("%s is blockaded", m.To)
		}
		if IsCity(m.From) && b.Blockade[m.From] {
			return illegalf("%s is blockaded", m.From)
		}
		if m.Regulars < 1 {
			return illegalf("%s lacks %d Regulars", m.From, m.Regulars)
		}
		sent[m.From] += m.Regulars
		if b.Pieces[m.From][BritishRegular] < sent[m.From] {
			return illegalf("%s lacks %d Regulars", m.From, sent[m.From])
		}
	}

	if plan.Displace {
		if !IsCity(plan.DisplaceFrom) || b.Blockade[plan.DisplaceFrom] {
			return illegalf("displacement clears an unblockaded City")
		}
		if b.Pieces[plan.DisplaceFrom][PatriotFort] > 0 {
			return illegalf("a Patriot Fort anchors the Rebellion in %s", plan.DisplaceFrom)
		}
		if !IsAdjacent(plan.DisplaceFrom, plan.DisplaceTo) {
			return illegalf("%s is not adjacent to %s", plan.DisplaceFrom, plan.DisplaceTo)
		}
		// Control is judged on the post-redeployment City.
		delta := 0
		for _, m := range plan.Moves {
			if m.To == plan.DisplaceFrom {
				delta += m.Regulars
			}
			if m.From == plan.DisplaceFrom {
				delta -= m.Regulars
			}
		}
		royal := b.SidePieces(Royalist, plan.DisplaceFrom) + delta
		cubes := b.BritishCubes(plan.DisplaceFrom) + delta
		if royal <= b.SidePieces(Rebellion, plan.DisplaceFrom) || cubes <= 0 {
			return illegalf("displacement needs British control of %s", plan.DisplaceFrom)
		}
	}

	cost := 2
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[British] < cost {
		return illegalf("British cannot afford garrison cost %d", cost)
	}
	b.Resources[British] -= cost

	dests := map[SpaceID]bool{}
	for _, m := range plan.Moves {
		for i := 0; i < m.Regulars; i++ {
			if err := b.MovePiece(BritishRegular, m.From, m.To); err != nil {
				return err
			}
		}
		dests[m.To] = true
		g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "British",
			BritishRegular.String(), m.From.String(), m.To.String(), m.Regulars))
	}

	// Sweep the Cities for rebel Militia.
	for _, s := range AllSpaces() {
		if !IsCity(s) || b.Blockade[s] {
			continue
		}
		if ctx.Limited && !dests[s] {
			continue
		}
		g.flipUpTo(MilitiaUnderground, MilitiaActive, s, b.BritishCubes(s)/3)
	}

	if plan.Displace {
		if err := g.garrisonDisplace(plan.DisplaceFrom, plan.DisplaceTo); err != nil {
			return err
		}
	}

	spaces := make([]SpaceID, 0, len(dests))
	for _, s := range AllSpaces() {
		if dests[s] {
			spaces = append(spaces, s)
		}
	}
	g.logCommand(f, CmdGarrison, spaces, cost)
	return nil
}

func (g *Game) garrisonDisplace(from, to SpaceID) error {
	b := g.Board
	moved := 0
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if SideOf(p.Owner()) != Rebellion || p.IsBase() {
			continue
		}
		for b.Pieces[from][p] > 0 {
			if err := b.MovePiece(p, from, to); err != nil {
				return err
			}
			moved++
		}
	}
	if moved > 0 {
		g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "British",
			"displaced rebels", from.String(), to.String(), moved))
	}
	return nil
}
