package game

import "context"

// IndiansBot plays the tribes: raid the Opposition frontier for
// Resources and markers, scout alongside the Regulars toward hidden
// Militia, and gather Villages and War Parties otherwise, walking the
// War Path where rebels stand exposed.
type IndiansBot struct{}

func (IndiansBot) Name() string { return "Indians bot" }

func (IndiansBot) ChooseAction(_ context.Context, g *Game, f Faction, opts []SlotOption) (*Action, error) {
	return botAction(g, f, opts, func(limited bool) *Action {
		if act := indiansRaid(g, limited); act != nil {
			return act
		}
		return indiansScout(g, limited)
	}, func(limited bool) *Action {
		return indiansGather(g, limited)
	}), nil
}

// indiansRaid strikes the Opposition Provinces in War Party reach,
// Plundering the richest of them when the numbers allow.
func indiansRaid(g *Game, limited bool) *Action {
	b := g.Board
	targets := g.spacesByPop(func(s SpaceID) bool {
		return IsProvince(s) && b.Support[s] < Neutral && !b.RaidMarker[s] &&
			b.Pieces[s][WarPartyUnderground] > 0
	})
	if len(targets) == 0 {
		return nil
	}
	max := 3
	if limited {
		max = 1
	}
	if len(targets) > max {
		targets = targets[:max]
	}
	plan := &RaidPlan{}
	for _, s := range targets {
		plan.Spaces = append(plan.Spaces, RaidSpace{Space: s, MoveFrom: NoRaidMove})
	}
	act := &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdRaid, Faction: Indians, Raid: plan},
	}
	for _, s := range targets {
		wps := b.Pieces[s][WarPartyActive] + b.Pieces[s][WarPartyUnderground]
		if wps > b.SidePieces(Rebellion, s) && b.Resources[Patriots] > 0 {
			act.SA = &SAPlan{Type: SAPlunder, Faction: Indians,
				Plunder: &PlunderPlan{Space: s}}
			break
		}
	}
	return act
}

// indiansScout marches the War Parties with the nearest Regulars into
// the most populous neighbouring Province hiding Militia.
func indiansScout(g *Game, limited bool) *Action {
	b := g.Board
	if b.Resources[Indians] == 0 || b.Resources[British] == 0 {
		return nil
	}
	from, to, pop := NoSpace, NoSpace, -1
	for _, s := range AllSpaces() {
		if !IsProvince(s) || b.Pieces[s][BritishRegular] == 0 {
			continue
		}
		wps := b.Pieces[s][WarPartyUnderground] + b.Pieces[s][WarPartyActive]
		if wps == 0 {
			continue
		}
		for _, d := range Adjacent(s) {
			if !IsProvince(d) || b.Pieces[d][MilitiaUnderground] == 0 {
				continue
			}
			if SpacePopulation(d) > pop {
				from, to, pop = s, d, SpacePopulation(d)
			}
		}
	}
	if to == NoSpace {
		return nil
	}
	plan := &ScoutPlan{
		From:       from,
		To:         to,
		WarParties: b.Pieces[from][WarPartyUnderground] + b.Pieces[from][WarPartyActive],
		Regulars:   b.Pieces[from][BritishRegular],
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdScout, Faction: Indians, Scout: plan},
	}
}

// indiansGather builds a Village where two War Parties can raise one,
// otherwise repopulates the Reserves, walking the War Path or trading
// through a Village on the side.
func indiansGather(g *Game, limited bool) *Action {
	b := g.Board
	candidates := g.spacesByPop(func(s SpaceID) bool {
		return IsProvince(s) && b.Support[s] != ActiveSupport &&
			b.Support[s] != ActiveOpposition
	})
	if len(candidates) == 0 {
		return nil
	}
	// The Reserves come first: the first Reserve in the plan is free.
	ordered := make([]SpaceID, 0, len(candidates))
	for _, s := range candidates {
		if IsReserve(s) {
			ordered = append(ordered, s)
		}
	}
	for _, s := range candidates {
		if !IsReserve(s) {
			ordered = append(ordered, s)
		}
	}
	max := b.Resources[Indians] + 1
	if max > 3 {
		max = 3
	}
	if limited {
		max = 1
	}
	plan := &GatherPlan{}
	for _, s := range ordered {
		if len(plan.Spaces) == max {
			break
		}
		wps := b.Pieces[s][WarPartyActive] + b.Pieces[s][WarPartyUnderground]
		villageCost := 2
		if b.LeaderIn(Cornplanter, s) {
			villageCost = 1
		}
		switch {
		case wps >= villageCost && b.Pieces[s][Village] == 0 &&
			b.BaseCount(s) < 2 && b.Available[Village] > 0:
			plan.Spaces = append(plan.Spaces, GatherSpace{Space: s, Action: GatherVillage})
		case b.Pieces[s][Village] > 0:
			plan.Spaces = append(plan.Spaces, GatherSpace{Space: s, Action: GatherBulk,
				Count: b.Pieces[s][Village] + 1})
		default:
			plan.Spaces = append(plan.Spaces, GatherSpace{Space: s, Action: GatherPlace})
		}
	}
	if len(plan.Spaces) == 0 {
		return nil
	}
	act := &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdGather, Faction: Indians, Gather: plan},
	}
	if sa := indiansWarPath(g); sa != nil {
		act.SA = sa
	} else if sa := indiansTrade(g); sa != nil {
		act.SA = sa
	}
	return act
}

// indiansWarPath throws the hidden War Parties at the most populous
// exposed rebel stack, overrunning pairs, burning undefended Forts.
func indiansWarPath(g *Game) *SAPlan {
	b := g.Board
	for _, s := range g.spacesByPop(func(s SpaceID) bool {
		if b.Pieces[s][WarPartyUnderground] == 0 {
			return false
		}
		rebels := 0
		for _, p := range rebellionUnitOrder {
			rebels += b.Pieces[s][p]
		}
		if rebels > 0 {
			return true
		}
		return b.Pieces[s][PatriotFort] > 0 && b.Pieces[s][WarPartyUnderground] >= 2
	}) {
		rebels := 0
		for _, p := range rebellionUnitOrder {
			rebels += b.Pieces[s][p]
		}
		opt := WarPathStrike
		switch {
		case rebels == 0:
			opt = WarPathBurnFort
		case rebels >= 2 && b.Pieces[s][WarPartyUnderground] >= 2:
			opt = WarPathOverrun
		}
		return &SAPlan{Type: SAWarPath, Faction: Indians,
			WarPath: &WarPathPlan{Space: s, Option: opt}}
	}
	return nil
}

func indiansTrade(g *Game) *SAPlan {
	b := g.Board
	for _, s := range g.spacesByPop(func(s SpaceID) bool {
		return IsProvince(s) && b.Pieces[s][WarPartyUnderground] > 0 &&
			b.Pieces[s][Village] > 0
	}) {
		transfer := 0
		if b.Resources[British] >= 2 {
			transfer = 2
		}
		return &SAPlan{Type: SATrade, Faction: Indians,
			Trade: &TradePlan{Space: s, Transfer: transfer}}
	}
	return nil
}
