package game

import "github.com/peterkuimelis/lodx/internal/log"

// RabblePlan lists the spaces a Rabble-Rousing Command agitates.
type RabblePlan struct {
	Spaces []SpaceID
}

// ExecuteRabbleRousing stirs up Opposition, 1 Resource per space. A space
// qualifies under Rebellion control with a Patriot piece, or with an
// Underground Militia to do the agitating; in the latter case the
// agitator is exposed and flips Active.
func (g *Game) ExecuteRabbleRousing(f Faction, plan *RabblePlan, ctx *TurnContext) error {
	if f != Patriots {
		return illegalf("only the Patriots rabble-rouse")
	}
	if plan == nil || len(plan.Spaces) == 0 {
		return illegalf("rabble-rousing needs at least one space")
	}
	b := g.Board

	for _, s := range plan.Spaces {
		if !g.rabbleEligible(s) {
			return illegalf("no footing for agitation in %s", s)
		}
	}
	cost := len(plan.Spaces)
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[Patriots] < cost {
		return illegalf("Patriots cannot afford cost %d", cost)
	}
	b.Resources[Patriots] -= cost

	for _, s := range plan.Spaces {
		if b.PlacePropaganda(s) {
			g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Propaganda", s.String(), "placed"))
		}
		before := b.Support[s]
		b.ShiftSupport(s, -1)
		g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), s.String(),
			before.String(), b.Support[s].String()))
		if !(b.ControlOf(s) == Rebellion && b.FactionPieces(Patriots, s) > 0) {
			g.flipUpTo(MilitiaUnderground, MilitiaActive, s, 1)
		}
	}

	g.logCommand(f, CmdRabbleRousing, plan.Spaces, cost)
	return nil
}

func (g *Game) rabbleEligible(s SpaceID) bool {
	b := g.Board
	if b.ControlOf(s) == Rebellion && b.FactionPieces(Patriots, s) > 0 {
		return true
	}
	return b.Pieces[s][MilitiaUnderground] > 0
}
