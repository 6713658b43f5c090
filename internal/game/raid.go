package game

import "github.com/peterkuimelis/lodx/internal/log"

// RaidSpace is one raided Province, optionally fed by an adjacent
// Underground War Party moving in first.
type RaidSpace struct {
	Space    SpaceID
	MoveFrom SpaceID // NoRaidMove when no War Party moves in
}

// NoRaidMove marks a RaidSpace without an inbound move.
const NoRaidMove SpaceID = -3

// RaidPlan lists 1 to 3 raided Provinces.
type RaidPlan struct {
	Spaces []RaidSpace
}

// ExecuteRaid terrorizes 1-3 Provinces at Opposition. Each needs an
// Underground War Party present or within reach (adjacent, or range 2
// from Dragging Canoe's space); each raided Province activates one War
// Party, takes a Raid marker, and shifts one level toward Neutral.
func (g *Game) ExecuteRaid(f Faction, plan *RaidPlan, ctx *TurnContext) error {
	if f != Indians {
		return illegalf("only the Indians raid")
	}
	if plan == nil || len(plan.Spaces) == 0 || len(plan.Spaces) > 3 {
		return illegalf("a raid strikes 1 to 3 Provinces")
	}
	b := g.Board

	for _, rs := range plan.Spaces {
		if !IsProvince(rs.Space) {
			return illegalf("raids strike Provinces, not %s", rs.Space)
		}
		if b.Support[rs.Space] >= Neutral {
			return illegalf("%s is not at Opposition", rs.Space)
		}
		if rs.MoveFrom != NoRaidMove {
			if b.Pieces[rs.MoveFrom][WarPartyUnderground] <= 0 {
				return illegalf("no Underground War Party in %s", rs.MoveFrom)
			}
			if !g.withinRaidRange(rs.MoveFrom, rs.Space) {
				return illegalf("%s is out of raiding range of %s", rs.MoveFrom, rs.Space)
			}
		} else if b.Pieces[rs.Space][WarPartyUnderground] <= 0 {
			return illegalf("no Underground War Party in %s", rs.Space)
		}
	}

	cost := len(plan.Spaces)
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[Indians] < cost {
		return illegalf("Indians cannot afford raid cost %d", cost)
	}
	b.Resources[Indians] -= cost
	ctx.RaidActive = true

	spaces := make([]SpaceID, 0, len(plan.Spaces))
	for _, rs := range plan.Spaces {
		spaces = append(spaces, rs.Space)
		if rs.MoveFrom != NoRaidMove {
			if err := b.MovePiece(WarPartyUnderground, rs.MoveFrom, rs.Space); err != nil {
				return err
			}
			g.logEvent(log.NewPiecesMovedEvent(g.CurrentCardID(), "Indians",
				WarPartyUnderground.String(), rs.MoveFrom.String(), rs.Space.String(), 1))
		}
		if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, rs.Space, 1); err != nil {
			return err
		}
		if b.PlaceRaidMarker(rs.Space) {
			g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Raid", rs.Space.String(), "placed"))
		}
		before := b.Support[rs.Space]
		b.ShiftSupport(rs.Space, 1) // toward Neutral from Opposition
		g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), rs.Space.String(),
			before.String(), b.Support[rs.Space].String()))
	}

	g.logCommand(f, CmdRaid, spaces, cost)
	return nil
}

// withinRaidRange allows adjacency, stretched to range 2 from Dragging
// Canoe's own space.
func (g *Game) withinRaidRange(from, to SpaceID) bool {
	if IsAdjacent(from, to) {
		return true
	}
	if g.Board.Leaders[DraggingCanoe] != from {
		return false
	}
	for _, mid := range Adjacent(from) {
		if IsAdjacent(mid, to) {
			return true
		}
	}
	return false
}
