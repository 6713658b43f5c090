package game

import "github.com/peterkuimelis/lodx/internal/log"

// GatherAction selects what one Gather space does.
type GatherAction int

const (
	GatherPlace   GatherAction = iota // place 1 Underground War Party
	GatherVillage                     // swap War Parties for a Village
	GatherBulk                        // at a Village, place up to Villages+1 War Parties
	GatherMove                        // move adjacent War Parties in, all flip Underground
)

// GatherMoveIn is a group of War Parties converging on the gather space.
type GatherMoveIn struct {
	From  SpaceID
	Count int
}

// GatherSpace is one selected Gather space and its action.
type GatherSpace struct {
	Space  SpaceID
	Action GatherAction
	Count  int // GatherBulk placement size
	MoveIn []GatherMoveIn
}

// GatherPlan lists the selected Gather spaces.
type GatherPlan struct {
	Spaces []GatherSpace
}

// ExecuteGather grows the War Party presence. Spaces at either Active
// support level are off limits; the first Indian Reserve selected is free.
// Cornplanter cheapens Village building to a single War Party.
func (g *Game) ExecuteGather(f Faction, plan *GatherPlan, ctx *TurnContext) error {
	if f != Indians {
		return illegalf("only the Indians gather")
	}
	if plan == nil || len(plan.Spaces) == 0 {
		return illegalf("gather needs at least one space")
	}
	b := g.Board

	for _, gs := range plan.Spaces {
		if !IsProvince(gs.Space) {
			return illegalf("gathering happens in Provinces, not %s", gs.Space)
		}
		if lvl := b.Support[gs.Space]; lvl == ActiveSupport || lvl == ActiveOpposition {
			return illegalf("no gathering at %s in %s", lvl, gs.Space)
		}
	}
	if err := g.validateGather(plan); err != nil {
		return err
	}

	cost := len(plan.Spaces)
	for _, gs := range plan.Spaces {
		if IsReserve(gs.Space) {
			cost-- // first Reserve selected is free
			break
		}
	}
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[Indians] < cost {
		return illegalf("Indians cannot afford gather cost %d", cost)
	}
	b.Resources[Indians] -= cost

	spaces := make([]SpaceID, 0, len(plan.Spaces))
	for _, gs := range plan.Spaces {
		spaces = append(spaces, gs.Space)
		if err := g.gatherOne(gs); err != nil {
			return err
		}
	}

	g.logCommand(f, CmdGather, spaces, cost)
	return nil
}

// validateGather checks every per-space legality condition before the
// cost is paid. Pool draws are tallied across the plan so that a plan
// passing here cannot fail mid-execution.
func (g *Game) validateGather(plan *GatherPlan) error {
	b := g.Board
	wpPool := b.Available[WarPartyUnderground] + b.Available[WarPartyActive]
	villagePool := b.Available[Village]
	seen := map[SpaceID]bool{}
	movedOut := map[SpaceID]int{}
	for _, gs := range plan.Spaces {
		if seen[gs.Space] {
			return illegalf("a gather selects %s once", gs.Space)
		}
		seen[gs.Space] = true
	}

	for _, gs := range plan.Spaces {
		s := gs.Space
		switch gs.Action {
		case GatherPlace:
			if wpPool < 1 {
				return illegalf("no War Parties available")
			}
			wpPool--

		case GatherVillage:
			if b.BaseCount(s) >= 2 {
				return illegalf("base stacking limit in %s", s)
			}
			if villagePool < 1 {
				return illegalf("no Villages available")
			}
			villagePool--
			need := 2
			if b.LeaderIn(Cornplanter, s) {
				need = 1
			}
			if b.Pieces[s][WarPartyActive]+b.Pieces[s][WarPartyUnderground] < need {
				return illegalf("a Village costs %d War Parties in %s", need, s)
			}

		case GatherBulk:
			villages := b.Pieces[s][Village]
			if villages == 0 {
				return illegalf("bulk gathering needs a Village in %s", s)
			}
			if gs.Count > villages+1 {
				return illegalf("bulk gathering in %s caps at %d", s, villages+1)
			}

		case GatherMove:
			if b.Pieces[s][Village] == 0 {
				return illegalf("War Parties regroup only at a Village, none in %s", s)
			}
			for _, mi := range gs.MoveIn {
				if !IsAdjacent(mi.From, s) {
					return illegalf("%s is not adjacent to %s", mi.From, s)
				}
				if seen[mi.From] {
					return illegalf("%s is itself a gather space", mi.From)
				}
				movedOut[mi.From] += mi.Count
				have := b.Pieces[mi.From][WarPartyUnderground] + b.Pieces[mi.From][WarPartyActive]
				if movedOut[mi.From] > have {
					return illegalf("%s holds fewer than %d War Parties", mi.From, movedOut[mi.From])
				}
			}
		}
	}
	return nil
}

func (g *Game) gatherOne(gs GatherSpace) error {
	b := g.Board
	s := gs.Space
	switch gs.Action {
	case GatherPlace:
		if b.Available[WarPartyUnderground] <= 0 {
			if b.Available[WarPartyActive] <= 0 {
				return illegalf("no War Parties available")
			}
			b.Available[WarPartyActive]--
			b.Available[WarPartyUnderground]++
		}
		if err := b.PlacePiece(WarPartyUnderground, s); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Indians",
			WarPartyUnderground.String(), s.String(), 1))

	case GatherVillage:
		if b.BaseCount(s) >= 2 {
			return illegalf("base stacking limit in %s", s)
		}
		if b.Available[Village] <= 0 {
			return illegalf("no Villages available")
		}
		need := 2
		if b.LeaderIn(Cornplanter, s) {
			need = 1
		}
		removed := 0
		for _, p := range []PieceType{WarPartyActive, WarPartyUnderground} {
			for removed < need && b.Pieces[s][p] > 0 {
				if err := b.RemovePiece(p, s, ZoneAvailable); err != nil {
					return err
				}
				removed++
			}
		}
		if removed < need {
			return illegalf("a Village costs %d War Parties in %s", need, s)
		}
		if err := b.PlacePiece(Village, s); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Indians",
			Village.String(), s.String(), 1))

	case GatherBulk:
		villages := b.Pieces[s][Village]
		if villages == 0 {
			return illegalf("bulk gathering needs a Village in %s", s)
		}
		limit := villages + 1
		if gs.Count > limit {
			return illegalf("bulk gathering in %s caps at %d", s, limit)
		}
		for i := 0; i < gs.Count; i++ {
			if b.Available[WarPartyUnderground] <= 0 {
				if b.Available[WarPartyActive] <= 0 {
					break
				}
				b.Available[WarPartyActive]--
				b.Available[WarPartyUnderground]++
			}
			if err := b.PlacePiece(WarPartyUnderground, s); err != nil {
				return err
			}
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Indians",
			WarPartyUnderground.String(), s.String(), gs.Count))

	case GatherMove:
		if b.Pieces[s][Village] == 0 {
			return illegalf("War Parties regroup only at a Village, none in %s", s)
		}
		for _, mi := range gs.MoveIn {
			if !IsAdjacent(mi.From, s) {
				return illegalf("%s is not adjacent to %s", mi.From, s)
			}
			moved := 0
			for _, p := range []PieceType{WarPartyUnderground, WarPartyActive} {
				for moved < mi.Count && b.Pieces[mi.From][p] > 0 {
					if err := b.MovePiece(p, mi.From, s); err != nil {
						return err
					}
					moved++
				}
			}
			if moved < mi.Count {
				return illegalf("%s holds fewer than %d War Parties", mi.From, mi.Count)
			}
			g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "Indians",
				"War Party", mi.From.String(), s.String(), moved))
		}
		if n := b.Pieces[s][WarPartyActive]; n > 0 {
			if err := b.FlipPiece(WarPartyActive, WarPartyUnderground, s, n); err != nil {
				return err
			}
		}
	}
	return nil
}
