package game

import "github.com/peterkuimelis/lodx/internal/log"

// SkirmishOption selects how hard one Skirmish space hits.
type SkirmishOption int

const (
	// SkirmishHarass removes 1 enemy cube or Active guerrilla.
	SkirmishHarass SkirmishOption = iota
	// SkirmishPress removes 2 at the price of 1 own Regular.
	SkirmishPress
	// SkirmishStorm razes an enemy Fort for 1 own Regular, only once no
	// enemy cubes remain.
	SkirmishStorm
)

// SkirmishSpace is one Skirmish space with its chosen option.
type SkirmishSpace struct {
	Space  SpaceID
	Option SkirmishOption
}

// SkirmishPlan hits up to two spaces.
type SkirmishPlan struct {
	Spaces []SkirmishSpace
}

// ExecuteSkirmish resolves sharp local actions wherever the faction has
// Regulars. Guerrilla losses return to Available, cube losses go to
// Casualties. Clinton leads British skirmishers to one extra Militia.
func (g *Game) ExecuteSkirmish(f Faction, plan *SkirmishPlan, ctx *TurnContext) (bool, error) {
	if plan == nil || len(plan.Spaces) == 0 || len(plan.Spaces) > 2 {
		return false, nil
	}
	b := g.Board
	ownRegular := BritishRegular
	if f == Patriots {
		ownRegular = Continental
	} else if f == French {
		ownRegular = FrenchRegular
	}

	for _, ss := range plan.Spaces {
		if b.Pieces[ss.Space][ownRegular] <= 0 {
			return false, nil
		}
		if !g.skirmishApplies(f, ss) {
			return false, nil
		}
	}

	for _, ss := range plan.Spaces {
		if err := g.skirmishOne(f, ownRegular, ss, ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}

// skirmishTargets returns the enemy guerrilla and cube types f can hit.
func skirmishTargets(f Faction) (guerrilla PieceType, cubes []PieceType, fort PieceType) {
	if SideOf(f) == Royalist {
		return MilitiaActive, []PieceType{Continental, FrenchRegular}, PatriotFort
	}
	return WarPartyActive, []PieceType{Tory, BritishRegular}, BritishFort
}

func (g *Game) skirmishApplies(f Faction, ss SkirmishSpace) bool {
	b := g.Board
	guerrilla, cubes, fort := skirmishTargets(f)
	enemyCubes := 0
	for _, c := range cubes {
		enemyCubes += b.Pieces[ss.Space][c]
	}
	switch ss.Option {
	case SkirmishHarass, SkirmishPress:
		return enemyCubes+b.Pieces[ss.Space][guerrilla] > 0
	case SkirmishStorm:
		return enemyCubes == 0 && b.Pieces[ss.Space][fort] > 0
	}
	return false
}

func (g *Game) skirmishOne(f Faction, ownRegular PieceType, ss SkirmishSpace, ctx *TurnContext) error {
	b := g.Board
	s := ss.Space
	guerrilla, cubes, fort := skirmishTargets(f)

	removeOne := func() error {
		// Guerrillas first; they return to Available.
		if b.Pieces[s][guerrilla] > 0 {
			if err := b.RemovePiece(guerrilla, s, ZoneAvailable); err != nil {
				return err
			}
			g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(),
				guerrilla.String(), s.String(), "available", 1))
			return nil
		}
		for _, c := range cubes {
			if b.Pieces[s][c] > 0 {
				if err := b.RemovePiece(c, s, ZoneCasualties); err != nil {
					return err
				}
				g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(),
					c.String(), s.String(), "casualties", 1))
				return nil
			}
		}
		return nil
	}

	switch ss.Option {
	case SkirmishHarass:
		if err := removeOne(); err != nil {
			return err
		}
	case SkirmishPress:
		for i := 0; i < 2; i++ {
			if err := removeOne(); err != nil {
				return err
			}
		}
		if err := b.RemovePiece(ownRegular, s, ZoneCasualties); err != nil {
			return err
		}
	case SkirmishStorm:
		if err := b.RemovePiece(fort, s, ZoneAvailable); err != nil {
			return err
		}
		if err := b.RemovePiece(ownRegular, s, ZoneCasualties); err != nil {
			return err
		}
	}

	// Clinton's pursuit: exactly one extra enemy Militia, no more.
	if f == British {
		extra := ctx.SkirmishExtraMilitia
		if b.LeaderIn(Clinton, s) {
			extra++
		}
		for i := 0; i < extra && b.Pieces[s][MilitiaActive] > 0; i++ {
			if err := b.RemovePiece(MilitiaActive, s, ZoneAvailable); err != nil {
				return err
			}
			g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(),
				MilitiaActive.String(), s.String(), "available", 1))
		}
	}

	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SASkirmish.String(), "in "+s.String()))
	return nil
}
