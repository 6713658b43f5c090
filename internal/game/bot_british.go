package game

import "context"

// britishCommanders are the Crown's army leaders, in succession order.
var britishCommanders = []LeaderName{Gage, Howe, Clinton}

// BritishBot plays the Crown: garrison the Cities the Rebellion has
// taken, muster while the reinforcement pool runs deep, battle where the
// Regulars corner an exposed rebel stack, and march otherwise.
type BritishBot struct{}

func (BritishBot) Name() string { return "British bot" }

func (BritishBot) ChooseAction(_ context.Context, g *Game, f Faction, opts []SlotOption) (*Action, error) {
	return botAction(g, f, opts, func(limited bool) *Action {
		if act := britishGarrison(g, limited); act != nil {
			return act
		}
		if act := britishMuster(g, limited); act != nil {
			return act
		}
		return britishBattle(g, limited)
	}, func(limited bool) *Action {
		return britishMarch(g, limited)
	}), nil
}

// britishGarrison masses Regulars against a fortless Rebellion-held City
// once the army on the map can spare them, expelling the rebels when the
// column suffices to take control.
func britishGarrison(g *Game, limited bool) *Action {
	b := g.Board
	if b.NavalIntervention >= MaxNavalIntervention || b.Resources[British] < 2 {
		return nil
	}
	if g.totalOnMap(BritishRegular) < 10 {
		return nil
	}
	targets := g.spacesByPop(func(s SpaceID) bool {
		return IsCity(s) && !b.Blockade[s] && b.ControlOf(s) == Rebellion &&
			b.Pieces[s][PatriotFort] == 0
	})
	if len(targets) == 0 {
		return nil
	}
	to := targets[0]

	// The biggest stack that can leave one Regular behind sends the rest.
	from, movers := NoSpace, 0
	for _, s := range AllSpaces() {
		if s == to || (IsCity(s) && b.Blockade[s]) {
			continue
		}
		if n := b.Pieces[s][BritishRegular] - 1; n > movers {
			from, movers = s, n
		}
	}
	need := b.SidePieces(Rebellion, to) - b.SidePieces(Royalist, to) + 1
	if from == NoSpace || movers < need {
		return nil
	}

	plan := &GarrisonPlan{Moves: []GarrisonMove{{From: from, To: to, Regulars: movers}}}
	if b.SidePieces(Rebellion, to) > 0 {
		if exit := mostPopulousAdjacent(to); exit != NoSpace {
			plan.Displace = true
			plan.DisplaceFrom = to
			plan.DisplaceTo = exit
		}
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdGarrison, Faction: British, Garrison: plan},
	}
}

func mostPopulousAdjacent(s SpaceID) SpaceID {
	best, pop := NoSpace, -1
	for _, n := range Adjacent(s) {
		if SpacePopulation(n) > pop {
			best, pop = n, SpacePopulation(n)
		}
	}
	return best
}

// britishBattle attacks where two or more Active rebels are outnumbered
// by the local Regulars and their commander, the biggest such stack
// first, borrowing War Parties or Skirmishing alongside.
func britishBattle(g *Game, limited bool) *Action {
	targets := g.spacesByPop(func(s SpaceID) bool {
		return britishBattleTarget(g, s)
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
		Command: &CommandPlan{Type: CmdBattle, Faction: British, Battle: plan},
	}
	if cc := britishCommonCause(g, targets); cc != nil {
		act.SA = cc
	} else if sk := britishSkirmish(g, targets); sk != nil {
		act.SA = sk
	}
	return act
}

// britishBattleTarget wants 2+ Active rebels outnumbered by the British
// Regulars present, the commander counting as one.
func britishBattleTarget(g *Game, s SpaceID) bool {
	b := g.Board
	active := b.Pieces[s][Continental] + b.Pieces[s][MilitiaActive] + b.Pieces[s][FrenchRegular]
	if active < 2 {
		return false
	}
	force := b.Pieces[s][BritishRegular]
	for _, l := range britishCommanders {
		if b.Leaders[l] == s {
			force++
			break
		}
	}
	return force > active
}

// britishCommonCause borrows the battle spaces' War Parties where the
// Regulars outnumber the Tories, on preserving terms.
func britishCommonCause(g *Game, battled []SpaceID) *SAPlan {
	b := g.Board
	plan := &CommonCausePlan{ForBattle: true, Preserve: true}
	for _, s := range battled {
		if b.Pieces[s][BritishRegular] <= b.Pieces[s][Tory] {
			continue
		}
		if use := g.CommonCauseUsable(s, true, true); use > 0 {
			plan.Uses = append(plan.Uses, CommonCauseUse{Space: s, Use: use})
		}
	}
	if len(plan.Uses) == 0 {
		return nil
	}
	return &SAPlan{Type: SACommonCause, Faction: British, CommonCause: plan}
}

// britishSkirmish picks up to two battle spaces where Regulars stand.
func britishSkirmish(g *Game, battled []SpaceID) *SAPlan {
	plan := &SkirmishPlan{}
	for _, s := range g.spacesByPop(func(s SpaceID) bool {
		return g.Board.Pieces[s][BritishRegular] > 0 &&
			g.Board.SidePieces(Rebellion, s) > 0
	}) {
		if len(plan.Spaces) == 2 {
			break
		}
		plan.Spaces = append(plan.Spaces, SkirmishSpace{Space: s, Option: SkirmishHarass})
	}
	if len(plan.Spaces) == 0 {
		return nil
	}
	return &SAPlan{Type: SASkirmish, Faction: British, Skirmish: plan}
}

// britishMuster reinforces the most populous friendly City and rewards
// loyalty there, while the reinforcement pool still runs deep.
func britishMuster(g *Game, limited bool) *Action {
	b := g.Board
	if b.Available[BritishRegular] < 4 {
		return nil
	}
	cities := g.spacesByPop(func(s SpaceID) bool {
		return IsCity(s) && b.ControlOf(s) != Rebellion && !b.Blockade[s]
	})
	if len(cities) == 0 || b.Resources[British] == 0 {
		return nil
	}
	max := b.Resources[British]
	if limited || max > 2 {
		max = 2
	}
	if limited {
		max = 1
	}
	if len(cities) > max {
		cities = cities[:max]
	}
	plan := &MusterPlan{}
	budget := b.Resources[British] - len(cities)
	for i, s := range cities {
		ms := MusterSpace{Space: s}
		if i == 0 {
			// Regulars land in a single space.
			ms.Regulars = b.Available[BritishRegular]
			if ms.Regulars > 6 {
				ms.Regulars = 6
			}
			extra := 1
			if b.Propaganda[s] {
				extra++
			}
			if b.RaidMarker[s] {
				extra++
			}
			regs := b.Pieces[s][BritishRegular] + ms.Regulars
			royal := b.SidePieces(Royalist, s) + ms.Regulars
			if budget >= extra && b.Support[s] < ActiveSupport &&
				regs > 0 && b.Pieces[s][Tory] > 0 &&
				royal > b.SidePieces(Rebellion, s) {
				ms.RewardLoyalty = 1
			}
		}
		plan.Spaces = append(plan.Spaces, ms)
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdMuster, Faction: British, Muster: plan},
	}
}

// britishMarch pushes the biggest Regular column next door to swing a
// space to the Crown, the commander marching along.
func britishMarch(g *Game, limited bool) *Action {
	b := g.Board
	if b.Resources[British] == 0 {
		return nil
	}
	from, to, pop := NoSpace, NoSpace, -1
	for _, s := range AllSpaces() {
		movers := b.Pieces[s][BritishRegular]
		if movers < 2 {
			continue
		}
		for _, d := range Adjacent(s) {
			if b.ControlOf(d) == Royalist {
				continue
			}
			if b.SidePieces(Royalist, d)+movers <= b.SidePieces(Rebellion, d) {
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
	move := MarchMove{
		From:   from,
		To:     to,
		Pieces: map[PieceType]int{BritishRegular: b.Pieces[from][BritishRegular]},
	}
	for _, l := range britishCommanders {
		if b.Leaders[l] == from {
			move.Leaders = append(move.Leaders, l)
		}
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdMarch, Faction: British, March: &MarchPlan{Moves: []MarchMove{move}}},
	}
}
