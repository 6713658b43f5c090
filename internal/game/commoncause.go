package game

import "github.com/peterkuimelis/lodx/internal/log"

// CommonCauseUse lends Use War Parties to the British in one space.
type CommonCauseUse struct {
	Space SpaceID
	Use   int
}

// CommonCausePlan borrows War Parties to stiffen a British March or
// Battle.
type CommonCausePlan struct {
	Uses      []CommonCauseUse
	ForBattle bool

	// Preserve keeps the War Parties from being spent to the last piece:
	// a March may use at most all but one of a space's War Parties (none
	// from a space with only one), and a Battle must leave at least one
	// Underground War Party untouched.
	Preserve bool
}

// ExecuteCommonCause flips the lent War Parties Active and records the
// loan in the turn context; the accompanying Command treats them as
// Tories. Lent War Parties may never enter Cities.
func (g *Game) ExecuteCommonCause(f Faction, plan *CommonCausePlan, ctx *TurnContext) (bool, error) {
	if f != British || plan == nil || len(plan.Uses) == 0 {
		return false, nil
	}
	b := g.Board

	for _, u := range plan.Uses {
		if u.Use <= 0 {
			return false, nil
		}
		if b.Pieces[u.Space][BritishRegular] <= 0 {
			return false, nil
		}
		if u.Use > g.CommonCauseUsable(u.Space, plan.ForBattle, plan.Preserve) {
			return false, nil
		}
	}

	for _, u := range plan.Uses {
		active := b.Pieces[u.Space][WarPartyActive]
		flip := u.Use - active
		if flip > 0 {
			if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, u.Space, flip); err != nil {
				return false, err
			}
		}
		ctx.CommonCause[u.Space] += u.Use
		g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
			SACommonCause.String(),
			"borrows War Parties in "+u.Space.String()))
	}
	ctx.PreserveWP = plan.Preserve
	return true, nil
}

// CommonCauseUsable returns how many of a space's War Parties the British
// may borrow under the given restrictions.
func (g *Game) CommonCauseUsable(s SpaceID, forBattle, preserve bool) int {
	b := g.Board
	active := b.Pieces[s][WarPartyActive]
	under := b.Pieces[s][WarPartyUnderground]
	total := active + under
	if total == 0 {
		return 0
	}
	if !preserve {
		return total
	}
	if !forBattle {
		// A lone War Party stays home.
		if total == 1 {
			return 0
		}
		return total - 1
	}
	// Battle: one Underground War Party stays untouched.
	usableUnder := under - 1
	if usableUnder < 0 {
		usableUnder = 0
	}
	return active + usableUnder
}
