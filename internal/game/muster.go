package game

import "github.com/peterkuimelis/lodx/internal/log"

// MusterSpace describes what one selected space receives during a Muster.
type MusterSpace struct {
	Space    SpaceID
	Regulars int // placed from Available; British cap 6 in one space, French 4
	Tories   int

	// British only: exactly one space may build a Fort or Reward Loyalty.
	BuildFort     bool
	RewardLoyalty int // support shifts toward Active Support, max 2

	// French only: swap 2 French Regulars for a Patriot Fort, Patriots
	// paying 1.
	SwapForPatriotFort bool
}

// MusterPlan lists the selected Muster spaces.
type MusterPlan struct {
	Spaces []MusterSpace
}

// ExecuteMuster raises and fortifies. The British pay 1 per space; the
// French pay a flat 2 and muster in a single space.
func (g *Game) ExecuteMuster(f Faction, plan *MusterPlan, ctx *TurnContext) error {
	if plan == nil || len(plan.Spaces) == 0 {
		return illegalf("muster needs at least one space")
	}
	if f == French {
		return g.executeFrenchMuster(plan, ctx)
	}
	b := g.Board

	seen := map[SpaceID]bool{}
	regularSpaces, specialSpaces, extraCost, totalTories := 0, 0, 0, 0
	for _, ms := range plan.Spaces {
		if seen[ms.Space] {
			return illegalf("a muster selects %s once", ms.Space)
		}
		seen[ms.Space] = true
		if ms.Regulars > 0 {
			regularSpaces++
			if ms.Regulars > 6 {
				return illegalf("at most 6 Regulars muster in one space")
			}
			if b.Available[BritishRegular] < ms.Regulars {
				return illegalf("only %d Regulars available", b.Available[BritishRegular])
			}
		}
		if ms.Tories > 0 {
			max := 2
			switch b.Support[ms.Space] {
			case PassiveOpposition:
				max = 1
			case ActiveOpposition:
				max = 0
			}
			if ms.Tories > max {
				return illegalf("at most %d Tories at %s in %s", max,
					b.Support[ms.Space], ms.Space)
			}
			if !g.nearBritishPost(ms.Space) {
				return illegalf("Tories need British Regulars or a Fort in or adjacent to %s", ms.Space)
			}
			totalTories += ms.Tories
			if b.Available[Tory] < totalTories {
				return illegalf("only %d Tories available", b.Available[Tory])
			}
		}
		if ms.BuildFort && ms.RewardLoyalty > 0 {
			return illegalf("a space may build a Fort or Reward Loyalty, not both")
		}
		if ms.BuildFort || ms.RewardLoyalty > 0 {
			specialSpaces++
		}
		if ms.BuildFort {
			if b.BritishCubes(ms.Space)+ms.Regulars+ms.Tories < 3 {
				return illegalf("a Fort swaps 3 British cubes in %s", ms.Space)
			}
			if b.BaseCount(ms.Space) >= 2 {
				return illegalf("base stacking limit in %s", ms.Space)
			}
			if b.Available[BritishFort] <= 0 {
				return illegalf("no Forts available")
			}
		}
		if ms.RewardLoyalty > 0 {
			if ms.RewardLoyalty > 2 {
				return illegalf("Reward Loyalty shifts at most 2 levels")
			}
			extraCost += ms.RewardLoyalty
			if b.Propaganda[ms.Space] {
				extraCost++
			}
			if b.RaidMarker[ms.Space] {
				extraCost++
			}
		}
	}
	if regularSpaces > 1 {
		return illegalf("Regulars muster in a single space")
	}
	if specialSpaces > 1 {
		return illegalf("only one space may build a Fort or Reward Loyalty")
	}

	cost := len(plan.Spaces) + extraCost
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[British] < cost {
		return illegalf("British cannot afford muster cost %d", cost)
	}

	// Reward Loyalty prerequisites check against the pre-placement board,
	// plus whatever this Muster puts there.
	for _, ms := range plan.Spaces {
		if ms.RewardLoyalty > 0 {
			regs := b.Pieces[ms.Space][BritishRegular] + ms.Regulars
			tories := b.Pieces[ms.Space][Tory] + ms.Tories
			if regs == 0 || tories == 0 {
				return illegalf("Reward Loyalty needs a Regular and a Tory in %s", ms.Space)
			}
			royal := b.SidePieces(Royalist, ms.Space) + ms.Regulars + ms.Tories
			if royal <= b.SidePieces(Rebellion, ms.Space) {
				return illegalf("Reward Loyalty needs British control of %s", ms.Space)
			}
		}
	}

	b.Resources[British] -= cost
	spaces := make([]SpaceID, 0, len(plan.Spaces))
	for _, ms := range plan.Spaces {
		spaces = append(spaces, ms.Space)
		for i := 0; i < ms.Regulars; i++ {
			if err := b.PlacePiece(BritishRegular, ms.Space); err != nil {
				return err
			}
		}
		for i := 0; i < ms.Tories; i++ {
			if err := b.PlacePiece(Tory, ms.Space); err != nil {
				return err
			}
		}
		if ms.Regulars+ms.Tories > 0 {
			g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "British",
				"British cube", ms.Space.String(), ms.Regulars+ms.Tories))
		}
		if ms.BuildFort {
			removed := 0
			for _, cube := range []PieceType{Tory, BritishRegular} {
				for removed < 3 && b.Pieces[ms.Space][cube] > 0 {
					if err := b.RemovePiece(cube, ms.Space, ZoneAvailable); err != nil {
						return err
					}
					removed++
				}
			}
			if err := b.PlacePiece(BritishFort, ms.Space); err != nil {
				return err
			}
			g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "British",
				BritishFort.String(), ms.Space.String(), 1))
		}
		if ms.RewardLoyalty > 0 {
			before := b.Support[ms.Space]
			b.ShiftSupport(ms.Space, ms.RewardLoyalty)
			b.RemovePropaganda(ms.Space)
			b.RemoveRaidMarker(ms.Space)
			g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), ms.Space.String(),
				before.String(), b.Support[ms.Space].String()))
		}
	}

	g.logCommand(f, CmdMuster, spaces, cost)
	return nil
}

func (g *Game) executeFrenchMuster(plan *MusterPlan, ctx *TurnContext) error {
	b := g.Board
	if len(plan.Spaces) != 1 {
		return illegalf("a French muster selects exactly one space")
	}
	ms := plan.Spaces[0]
	if ms.Regulars > 4 {
		return illegalf("at most 4 French Regulars muster")
	}
	if b.Available[FrenchRegular] < ms.Regulars {
		return illegalf("only %d French Regulars available", b.Available[FrenchRegular])
	}
	cost := 2
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[French] < cost {
		return illegalf("French cannot afford muster cost %d", cost)
	}
	if ms.SwapForPatriotFort {
		if b.Pieces[ms.Space][FrenchRegular]+ms.Regulars < 2 {
			return illegalf("the Fort swap needs 2 French Regulars in %s", ms.Space)
		}
		if b.BaseCount(ms.Space) >= 2 {
			return illegalf("base stacking limit in %s", ms.Space)
		}
		if b.Available[PatriotFort] <= 0 {
			return illegalf("no Patriot Forts available")
		}
		if b.Resources[Patriots] < 1 {
			return illegalf("Patriots cannot pay for the Fort")
		}
	}

	b.Resources[French] -= cost
	for i := 0; i < ms.Regulars; i++ {
		if err := b.PlacePiece(FrenchRegular, ms.Space); err != nil {
			return err
		}
	}
	if ms.Regulars > 0 {
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "French",
			FrenchRegular.String(), ms.Space.String(), ms.Regulars))
	}
	if ms.SwapForPatriotFort {
		b.Resources[Patriots]--
		for i := 0; i < 2; i++ {
			if err := b.RemovePiece(FrenchRegular, ms.Space, ZoneAvailable); err != nil {
				return err
			}
		}
		if err := b.PlacePiece(PatriotFort, ms.Space); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "Patriots",
			PatriotFort.String(), ms.Space.String(), 1))
	}

	g.logCommand(French, CmdMuster, []SpaceID{ms.Space}, cost)
	return nil
}

// nearBritishPost reports whether the space holds, or neighbours, British
// Regulars or a British Fort.
func (g *Game) nearBritishPost(s SpaceID) bool {
	b := g.Board
	has := func(x SpaceID) bool {
		return b.Pieces[x][BritishRegular] > 0 || b.Pieces[x][BritishFort] > 0
	}
	if has(s) {
		return true
	}
	for _, n := range Adjacent(s) {
		if has(n) {
			return true
		}
	}
	return false
}
