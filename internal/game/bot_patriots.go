package game

import "context"

// PatriotsBot plays the Congress: fight the battles it can win,
// otherwise raise Militia and Forts, and agitate when the treasury or
// the map allows nothing better.
type PatriotsBot struct{}

func (PatriotsBot) Name() string { return "Patriots bot" }

func (PatriotsBot) ChooseAction(_ context.Context, g *Game, f Faction, opts []SlotOption) (*Action, error) {
	return botAction(g, f, opts, func(limited bool) *Action {
		if act := patriotsBattle(g, limited); act != nil {
			return act
		}
		return patriotsRally(g, limited)
	}, func(limited bool) *Action {
		return patriotsRabble(g, limited)
	}), nil
}

// patriotsBattle attacks only where the arithmetic already favors the
// Rebellion, with Partisans striking alongside.
func patriotsBattle(g *Game, limited bool) *Action {
	tc := NewTurnContext()
	targets := g.spacesByPop(func(s SpaceID) bool {
		return g.Board.SidePieces(Royalist, s) > 0 && g.viableBattle(Patriots, s, tc)
	})
	if len(targets) == 0 {
		return nil
	}
	max := 2
	if limited {
		max = 1
	}
	if len(targets) > max {
		targets = targets[:max]
	}
	plan := &BattlePlan{}
	for _, s := range targets {
		plan.Spaces = append(plan.Spaces, BattleSpace{Space: s})
	}
	act := &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdBattle, Faction: Patriots, Battle: plan},
	}
	if sa := patriotsPartisans(g); sa != nil {
		act.SA = sa
	}
	return act
}

func patriotsPartisans(g *Game) *SAPlan {
	b := g.Board
	for _, s := range g.spacesByPop(func(s SpaceID) bool {
		return b.Pieces[s][MilitiaUnderground] > 0 && b.SidePieces(Royalist, s) > 0
	}) {
		opt := PartisansAmbush
		if b.Pieces[s][MilitiaUnderground] >= 2 && b.SidePieces(Royalist, s) >= 2 {
			opt = PartisansUprising
		}
		return &SAPlan{Type: SAPartisans, Faction: Patriots,
			Partisans: &PartisansPlan{Space: s, Option: opt}}
	}
	return nil
}

// patriotsRally builds a Fort where two Patriot units can man one,
// otherwise spreads Underground Militia, Persuasion raising funds
// alongside.
func patriotsRally(g *Game, limited bool) *Action {
	b := g.Board
	candidates := g.spacesByPop(func(s SpaceID) bool {
		return !IsReserve(s) && b.Support[s] != ActiveSupport
	})
	if len(candidates) == 0 || b.Resources[Patriots] == 0 {
		return nil
	}
	max := b.Resources[Patriots]
	if max > 3 {
		max = 3
	}
	if limited {
		max = 1
	}
	plan := &RallyPlan{}
	for _, s := range candidates {
		if len(plan.Spaces) == max {
			break
		}
		patriots := b.FactionPieces(Patriots, s)
		switch {
		case patriots >= 2 && b.Pieces[s][PatriotFort] == 0 &&
			b.BaseCount(s) < 2 && b.Available[PatriotFort] > 0:
			plan.Spaces = append(plan.Spaces, RallySpace{Space: s, Action: RallyFort})
		case b.Pieces[s][PatriotFort] > 0:
			plan.Spaces = append(plan.Spaces, RallySpace{Space: s, Action: RallyBulk,
				Count: b.Pieces[s][PatriotFort] + SpacePopulation(s)})
		default:
			plan.Spaces = append(plan.Spaces, RallySpace{Space: s, Action: RallyPlace})
		}
	}
	if len(plan.Spaces) == 0 {
		return nil
	}
	act := &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdRally, Faction: Patriots, Rally: plan},
	}
	if sa := patriotsPersuasion(g); sa != nil {
		act.SA = sa
	}
	return act
}

func patriotsPersuasion(g *Game) *SAPlan {
	b := g.Board
	spaces := g.spacesByPop(func(s SpaceID) bool {
		return !IsReserve(s) && b.ControlOf(s) == Rebellion &&
			b.Pieces[s][MilitiaUnderground] > 0
	})
	if len(spaces) == 0 {
		return nil
	}
	if len(spaces) > 3 {
		spaces = spaces[:3]
	}
	return &SAPlan{Type: SAPersuasion, Faction: Patriots,
		Persuasion: &PersuasionPlan{Spaces: spaces}}
}

// patriotsRabble agitates the most populous spaces the Rebellion can
// still sour on the Crown.
func patriotsRabble(g *Game, limited bool) *Action {
	b := g.Board
	spaces := g.spacesByPop(func(s SpaceID) bool {
		if IsReserve(s) || b.Support[s] == ActiveOpposition {
			return false
		}
		if b.ControlOf(s) == Rebellion && b.FactionPieces(Patriots, s) > 0 {
			return true
		}
		return b.Pieces[s][MilitiaUnderground] > 0
	})
	if len(spaces) == 0 || b.Resources[Patriots] == 0 {
		return nil
	}
	max := b.Resources[Patriots]
	if max > 2 {
		max = 2
	}
	if limited {
		max = 1
	}
	if len(spaces) > max {
		spaces = spaces[:max]
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdRabbleRousing, Faction: Patriots, Rabble: &RabblePlan{Spaces: spaces}},
	}
}
