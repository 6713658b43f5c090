package game

import "github.com/peterkuimelis/lodx/internal/log"

// HortalezPlan is a covert funding transfer: the French pay Pay and the
// Patriots receive Pay+1.
type HortalezPlan struct {
	Pay int
}

// ExecuteHortalez runs the trading-house conduit. It counts as affecting
// one space for the Limited Command restriction.
func (g *Game) ExecuteHortalez(f Faction, plan *HortalezPlan, ctx *TurnContext) error {
	if f != French {
		return illegalf("only the French fund through Hortalez et Cie")
	}
	if plan == nil || plan.Pay < 1 {
		return illegalf("the conduit needs at least 1 Resource")
	}
	b := g.Board
	if b.Resources[French] < plan.Pay {
		return illegalf("French cannot pay %d", plan.Pay)
	}
	b.Resources[French] -= plan.Pay
	b.AddResources(Patriots, plan.Pay+1)
	g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "Patriots",
		plan.Pay+1, b.Resources[Patriots]))
	g.logCommand(f, CmdHortalez, nil, plan.Pay)
	return nil
}

// AgentMobProvinces are the northern Provinces open to French agents.
var AgentMobProvinces = []SpaceID{Quebec, NewYork, NewHampshire, Massachusetts}

// AgentMobPlan places sympathizers in one northern Province before the
// Treaty of Alliance.
type AgentMobPlan struct {
	Space       SpaceID
	Continental bool // 1 Continental instead of 2 Underground Militia
}

// ExecuteAgentMobilization is the pre-Treaty French ground game: for 1
// Resource, place 2 Underground Militia or 1 Continental in a northern
// Province not at Active Support.
func (g *Game) ExecuteAgentMobilization(f Faction, plan *AgentMobPlan, ctx *TurnContext) error {
	if f != French {
		return illegalf("only the French mobilize agents")
	}
	if plan == nil {
		return illegalf("agent mobilization needs a plan")
	}
	b := g.Board
	ok := false
	for _, s := range AgentMobProvinces {
		if s == plan.Space {
			ok = true
		}
	}
	if !ok {
		return illegalf("%s is beyond the agents' reach", plan.Space)
	}
	if b.Support[plan.Space] == ActiveSupport {
		return illegalf("%s is at Active Support", plan.Space)
	}
	cost := 1
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[French] < cost {
		return illegalf("French cannot afford cost %d", cost)
	}

	if plan.Continental {
		if b.Available[Continental] <= 0 {
			return illegalf("no Continentals available")
		}
		b.Resources[French] -= cost
		if err := b.PlacePiece(Continental, plan.Space); err != nil {
			return err
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "French",
			Continental.String(), plan.Space.String(), 1))
	} else {
		b.Resources[French] -= cost
		placed := 0
		for i := 0; i < 2; i++ {
			if b.Available[MilitiaUnderground] <= 0 {
				if b.Available[MilitiaActive] <= 0 {
					break
				}
				b.Available[MilitiaActive]--
				b.Available[MilitiaUnderground]++
			}
			if err := b.PlacePiece(MilitiaUnderground, plan.Space); err != nil {
				return err
			}
			placed++
		}
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), "French",
			MilitiaUnderground.String(), plan.Space.String(), placed))
	}

	g.logCommand(f, CmdAgentMobilization, []SpaceID{plan.Space}, cost)
	return nil
}
