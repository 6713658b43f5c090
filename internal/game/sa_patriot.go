package game

import "github.com/peterkuimelis/lodx/internal/log"

// PartisansOption selects how hard a Partisans ambush strikes.
type PartisansOption int

const (
	// PartisansAmbush activates 1 Militia to remove 1 Royalist unit.
	PartisansAmbush PartisansOption = iota
	// PartisansUprising activates 2, loses 1 of them, removes 2.
	PartisansUprising
	// PartisansBurnVillage razes a Village once no War Parties remain.
	PartisansBurnVillage
)

// PartisansPlan is a single-space Partisans ambush.
type PartisansPlan struct {
	Space  SpaceID
	Option PartisansOption
}

// royalistUnitOrder is the removal priority for Partisans targets.
var royalistUnitOrder = []PieceType{
	Tory, WarPartyActive, BritishRegular, Village, BritishFort, WarPartyUnderground,
}

// ExecutePartisans throws Underground Militia at the Royalists. Cubes go
// to Casualties, everything else to Available.
func (g *Game) ExecutePartisans(f Faction, plan *PartisansPlan, ctx *TurnContext) (bool, error) {
	if f != Patriots || plan == nil {
		return false, nil
	}
	b := g.Board
	s := plan.Space
	if b.Pieces[s][MilitiaUnderground] <= 0 {
		return false, nil
	}
	royalists := b.SidePieces(Royalist, s)
	warParties := b.Pieces[s][WarPartyActive] + b.Pieces[s][WarPartyUnderground]

	removeRoyalist := func() error {
		for _, p := range royalistUnitOrder {
			if b.Pieces[s][p] > 0 {
				dest := ZoneAvailable
				if p.IsCube() {
					dest = ZoneCasualties
				}
				if err := b.RemovePiece(p, s, dest); err != nil {
					return err
				}
				g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(),
					p.String(), s.String(), dest.String(), 1))
				return nil
			}
		}
		return nil
	}

	switch plan.Option {
	case PartisansAmbush:
		if royalists == 0 {
			return false, nil
		}
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, s, 1); err != nil {
			return false, err
		}
		if err := removeRoyalist(); err != nil {
			return false, err
		}
	case PartisansUprising:
		if royalists < 1 || b.Pieces[s][MilitiaUnderground] < 2 {
			return false, nil
		}
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, s, 2); err != nil {
			return false, err
		}
		if err := b.RemovePiece(MilitiaActive, s, ZoneAvailable); err != nil {
			return false, err
		}
		for i := 0; i < 2; i++ {
			if err := removeRoyalist(); err != nil {
				return false, err
			}
		}
	case PartisansBurnVillage:
		if warParties > 0 || b.Pieces[s][Village] == 0 ||
			b.Pieces[s][MilitiaUnderground] < 2 {
			return false, nil
		}
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, s, 2); err != nil {
			return false, err
		}
		if err := b.RemovePiece(MilitiaActive, s, ZoneAvailable); err != nil {
			return false, err
		}
		if err := b.RemovePiece(Village, s, ZoneAvailable); err != nil {
			return false, err
		}
	}

	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SAPartisans.String(), "in "+s.String()))
	return true, nil
}

// PersuasionPlan canvases 1-3 Rebellion-controlled spaces.
type PersuasionPlan struct {
	Spaces []SpaceID
}

// ExecutePersuasion raises funds in Rebellion-controlled Colonies and
// Cities: one Underground Militia steps into the open per space, earning
// 1 Resource and leaving a Propaganda marker.
func (g *Game) ExecutePersuasion(f Faction, plan *PersuasionPlan, ctx *TurnContext) (bool, error) {
	if f != Patriots || plan == nil || len(plan.Spaces) == 0 || len(plan.Spaces) > 3 {
		return false, nil
	}
	b := g.Board
	for _, s := range plan.Spaces {
		if IsReserve(s) || b.ControlOf(s) != Rebellion ||
			b.Pieces[s][MilitiaUnderground] <= 0 {
			return false, nil
		}
	}
	for _, s := range plan.Spaces {
		if err := b.FlipPiece(MilitiaUnderground, MilitiaActive, s, 1); err != nil {
			return false, err
		}
		b.AddResources(Patriots, 1)
		if b.PlacePropaganda(s) {
			g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Propaganda",
				s.String(), "placed"))
		}
		g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "Patriots", 1,
			b.Resources[Patriots]))
	}
	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SAPersuasion.String(), "in the contested colonies"))
	return true, nil
}
