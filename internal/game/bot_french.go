package game

import "context"

// FrenchBot plays Versailles: before the Treaty of Alliance it bankrolls
// the Patriots and seeds agents; after it, it lands Regulars and fights.
type FrenchBot struct{}

func (FrenchBot) Name() string { return "French bot" }

func (FrenchBot) ChooseAction(_ context.Context, g *Game, f Faction, opts []SlotOption) (*Action, error) {
	if g.Board.TreatyOfAlliance {
		return botAction(g, f, opts, func(limited bool) *Action {
			if act := frenchBattle(g, limited); act != nil {
				return act
			}
			return frenchMuster(g)
		}, func(limited bool) *Action {
			return frenchHortalez(g)
		}), nil
	}
	return botAction(g, f, opts, func(limited bool) *Action {
		return frenchHortalez(g)
	}, func(limited bool) *Action {
		return frenchAgents(g)
	}), nil
}

// frenchHortalez funnels about half the treasury to the Congress.
func frenchHortalez(g *Game) *Action {
	res := g.Board.Resources[French]
	if res < 2 {
		return nil
	}
	return &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdHortalez, Faction: French, Hortalez: &HortalezPlan{Pay: res / 2}},
	}
}

// frenchAgents seeds Militia in the northern Provinces.
func frenchAgents(g *Game) *Action {
	b := g.Board
	if b.Resources[French] == 0 {
		return nil
	}
	for _, s := range AgentMobProvinces {
		if b.Support[s] != ActiveSupport &&
			b.Available[MilitiaUnderground]+b.Available[MilitiaActive] >= 2 {
			return &Action{
				Type: ActCommand,
				Command: &CommandPlan{Type: CmdAgentMobilization, Faction: French,
					AgentMob: &AgentMobPlan{Space: s}},
			}
		}
	}
	return nil
}

// frenchBattle commits the expeditionary force only where it wins, the
// fleet pressing the blockade alongside.
func frenchBattle(g *Game, limited bool) *Action {
	b := g.Board
	tc := NewTurnContext()
	targets := g.spacesByPop(func(s SpaceID) bool {
		return b.Pieces[s][FrenchRegular] > 0 &&
			b.SidePieces(Royalist, s) > 0 && g.viableBattle(French, s, tc)
	})
	if len(targets) == 0 {
		return nil
	}
	plan := &BattlePlan{Spaces: []BattleSpace{{Space: targets[0]}}}
	act := &Action{
		Type:    ActCommand,
		Command: &CommandPlan{Type: CmdBattle, Faction: French, Battle: plan},
	}
	if sa := frenchNaval(g); sa != nil {
		act.SA = sa
	}
	return act
}

// frenchMuster lands Regulars in a Rebellion-held City, or readies the
// fleet through Preparer la Guerre when nothing can land.
func frenchMuster(g *Game) *Action {
	b := g.Board
	if b.Available[FrenchRegular] > 0 && b.Resources[French] >= 2 {
		for _, s := range g.spacesByPop(func(s SpaceID) bool {
			return IsCity(s) && b.ControlOf(s) == Rebellion
		}) {
			n := b.Available[FrenchRegular]
			if n > 4 {
				n = 4
			}
			return &Action{
				Type: ActCommand,
				Command: &CommandPlan{Type: CmdMuster, Faction: French,
					Muster: &MusterPlan{Spaces: []MusterSpace{{Space: s, Regulars: n}}}},
				SA: frenchPreparer(g),
			}
		}
	}
	return nil
}

func frenchPreparer(g *Game) *SAPlan {
	b := g.Board
	choice := PreparerResources
	switch {
	case b.BlockadeUnavailable > 0:
		choice = PreparerBlockade
	case b.Unavailable[FrenchRegular] > 0:
		choice = PreparerRegulars
	}
	return &SAPlan{Type: SAPreparer, Faction: French, Preparer: &PreparerPlan{Choice: choice}}
}

// frenchNaval blockades the most populous open City while markers and
// the intervention track allow.
func frenchNaval(g *Game) *SAPlan {
	b := g.Board
	if b.BlockadePool > 0 {
		for _, s := range g.spacesByPop(func(s SpaceID) bool {
			return IsCity(s) && !b.Blockade[s]
		}) {
			return &SAPlan{Type: SANavalPressure, Faction: French,
				Naval: &NavalPressurePlan{City: s, From: NoSpace}}
		}
	}
	return nil
}
