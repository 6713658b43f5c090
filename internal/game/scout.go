package game

import "github.com/peterkuimelis/lodx/internal/log"

// ScoutPlan moves a joint Indian-British column between two Provinces.
type ScoutPlan struct {
	From       SpaceID
	To         SpaceID
	WarParties int
	Regulars   int
	Tories     int

	// Skirmish lets the British fight immediately in the destination.
	Skirmish *SkirmishPlan
}

// ExecuteScout marches War Parties alongside British Regulars. Both
// factions pay 1; the column arrives loudly, flipping every Militia in
// the destination Active, and the British may Skirmish on arrival.
func (g *Game) ExecuteScout(f Faction, plan *ScoutPlan, ctx *TurnContext) error {
	if f != Indians {
		return illegalf("only the Indians scout")
	}
	if plan == nil {
		return illegalf("scout needs a plan")
	}
	b := g.Board
	if !IsProvince(plan.From) || !IsProvince(plan.To) {
		return illegalf("scouting runs between Provinces")
	}
	if !IsAdjacent(plan.From, plan.To) {
		return illegalf("%s and %s are not adjacent", plan.From, plan.To)
	}
	if plan.WarParties < 1 || plan.Regulars < 1 {
		return illegalf("a scout column needs a War Party and a British Regular")
	}
	if plan.Tories > plan.Regulars {
		return illegalf("at most one Tory per Regular joins the column")
	}
	wps := b.Pieces[plan.From][WarPartyUnderground] + b.Pieces[plan.From][WarPartyActive]
	if wps < plan.WarParties {
		return illegalf("%s holds fewer than %d War Parties", plan.From, plan.WarParties)
	}
	if b.Pieces[plan.From][BritishRegular] < plan.Regulars {
		return illegalf("%s holds fewer than %d Regulars", plan.From, plan.Regulars)
	}
	if b.Pieces[plan.From][Tory] < plan.Tories {
		return illegalf("%s holds fewer than %d Tories", plan.From, plan.Tories)
	}
	cost := 1
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[Indians] < cost || b.Resources[British] < cost {
		return illegalf("both factions pay %d to scout", cost)
	}
	b.Resources[Indians] -= cost
	b.Resources[British] -= cost

	moved := 0
	for _, p := range []PieceType{WarPartyActive, WarPartyUnderground} {
		for moved < plan.WarParties && b.Pieces[plan.From][p] > 0 {
			if err := b.MovePiece(p, plan.From, plan.To); err != nil {
				return err
			}
			if p == WarPartyUnderground {
				if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, plan.To, 1); err != nil {
					return err
				}
			}
			moved++
		}
	}
	for i := 0; i < plan.Regulars; i++ {
		if err := b.MovePiece(BritishRegular, plan.From, plan.To); err != nil {
			return err
		}
	}
	for i := 0; i < plan.Tories; i++ {
		if err := b.MovePiece(Tory, plan.From, plan.To); err != nil {
			return err
		}
	}
	g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "Indians",
		"scout column", plan.From.String(), plan.To.String(),
		plan.WarParties+plan.Regulars+plan.Tories))

	// The column's arrival flushes out the local Militia.
	if n := b.Pieces[plan.To][MilitiaUnderground]; n > 0 {
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, plan.To, n); err != nil {
			return err
		}
	}

	g.logCommand(f, CmdScout, []SpaceID{plan.To}, cost)

	if plan.Skirmish != nil {
		applied, err := g.ExecuteSkirmish(British, plan.Skirmish, ctx)
		if err != nil {
			return err
		}
		_ = applied
	}
	return nil
}
