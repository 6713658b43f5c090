package game

import "github.com/peterkuimelis/lodx/internal/log"

// WarPathOption selects how hard a War Path strikes.
type WarPathOption int

const (
	// WarPathStrike activates 1 War Party to remove 1 Rebellion unit.
	WarPathStrike WarPathOption = iota
	// WarPathOverrun activates 2, loses 1 of them, removes 2.
	WarPathOverrun
	// WarPathBurnFort razes a Patriot Fort once no Rebellion units remain.
	WarPathBurnFort
)

// WarPathPlan is a single-space War Path.
type WarPathPlan struct {
	Space  SpaceID
	Option WarPathOption
}

// rebellionUnitOrder is the removal priority for War Path targets.
var rebellionUnitOrder = []PieceType{MilitiaActive, Continental, FrenchRegular, MilitiaUnderground}

// ExecuteWarPath throws Underground War Parties at the Rebellion.
// Regulars and Continentals fall to Casualties, Militia to Available.
// Brant leading adds one extra Militia to the toll.
func (g *Game) ExecuteWarPath(f Faction, plan *WarPathPlan, ctx *TurnContext) (bool, error) {
	if f != Indians || plan == nil {
		return false, nil
	}
	b := g.Board
	s := plan.Space
	if b.Pieces[s][WarPartyUnderground] <= 0 {
		return false, nil
	}
	rebels := 0
	for _, p := range rebellionUnitOrder {
		rebels += b.Pieces[s][p]
	}

	removeRebel := func() error {
		for _, p := range rebellionUnitOrder {
			if b.Pieces[s][p] > 0 {
				dest := ZoneAvailable
				if p == Continental || p == FrenchRegular {
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
	case WarPathStrike:
		if rebels == 0 {
			return false, nil
		}
		if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, s, 1); err != nil {
			return false, err
		}
		if err := removeRebel(); err != nil {
			return false, err
		}
	case WarPathOverrun:
		if rebels < 1 || b.Pieces[s][WarPartyUnderground] < 2 {
			return false, nil
		}
		if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, s, 2); err != nil {
			return false, err
		}
		if err := b.RemovePiece(WarPartyActive, s, ZoneAvailable); err != nil {
			return false, err
		}
		for i := 0; i < 2; i++ {
			if err := removeRebel(); err != nil {
				return false, err
			}
		}
	case WarPathBurnFort:
		if rebels > 0 || b.Pieces[s][PatriotFort] == 0 ||
			b.Pieces[s][WarPartyUnderground] < 2 {
			return false, nil
		}
		if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, s, 2); err != nil {
			return false, err
		}
		if err := b.RemovePiece(WarPartyActive, s, ZoneAvailable); err != nil {
			return false, err
		}
		if err := b.RemovePiece(PatriotFort, s, ZoneCasualties); err != nil {
			return false, err
		}
	}

	extra := ctx.WarPathExtraMilitia
	if b.LeaderIn(Brant, s) {
		extra++
	}
	for i := 0; i < extra; i++ {
		if b.Pieces[s][MilitiaActive] > 0 {
			if err := b.RemovePiece(MilitiaActive, s, ZoneAvailable); err != nil {
				return false, err
			}
		} else if b.Pieces[s][MilitiaUnderground] > 0 {
			if err := b.RemovePiece(MilitiaUnderground, s, ZoneAvailable); err != nil {
				return false, err
			}
		}
	}

	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SAWarPath.String(), "in "+s.String()))
	return true, nil
}

// TradePlan moves goods through a Village.
type TradePlan struct {
	Space    SpaceID
	Transfer int // British Resources demanded; 0 trades on the open market
}

// ExecuteTrade needs an Underground War Party and a Village in a
// Province. A positive transfer taxes the British; an open-market trade
// earns a D3. Exactly one War Party is exposed doing the trading.
func (g *Game) ExecuteTrade(f Faction, plan *TradePlan, ctx *TurnContext) (bool, error) {
	if f != Indians || plan == nil {
		return false, nil
	}
	b := g.Board
	s := plan.Space
	if !IsProvince(s) || b.Pieces[s][WarPartyUnderground] <= 0 || b.Pieces[s][Village] <= 0 {
		return false, nil
	}
	if plan.Transfer > 0 {
		n := plan.Transfer
		if n > b.Resources[British] {
			n = b.Resources[British]
		}
		b.Resources[British] -= n
		b.AddResources(Indians, n)
		g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "Indians", n,
			b.Resources[Indians]))
	} else {
		v := g.Roller.D3("Trade D3")
		g.logEvent(log.NewDieRollEvent(g.CurrentCardID(), f.String(), "Trade D3", v))
		b.AddResources(Indians, v)
	}
	if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, s, 1); err != nil {
		return false, err
	}
	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SATrade.String(), "in "+s.String()))
	return true, nil
}

// PlunderPlan sacks one raided Province.
type PlunderPlan struct {
	Space SpaceID
}

// ExecutePlunder accompanies a Raid: where War Parties outnumber the
// Rebellion, steal the population's worth of Patriot Resources, losing
// one War Party (Underground preferred) to the spoils.
func (g *Game) ExecutePlunder(f Faction, plan *PlunderPlan, ctx *TurnContext) (bool, error) {
	if f != Indians || plan == nil || !ctx.RaidActive {
		return false, nil
	}
	b := g.Board
	s := plan.Space
	wps := b.Pieces[s][WarPartyActive] + b.Pieces[s][WarPartyUnderground]
	if !IsProvince(s) || wps <= b.SidePieces(Rebellion, s) {
		return false, nil
	}
	loot := SpacePopulation(s)
	if loot > b.Resources[Patriots] {
		loot = b.Resources[Patriots]
	}
	b.Resources[Patriots] -= loot
	b.AddResources(Indians, loot)
	g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "Indians", loot,
		b.Resources[Indians]))

	removed := WarPartyUnderground
	if b.Pieces[s][WarPartyUnderground] == 0 {
		removed = WarPartyActive
	}
	if err := b.RemovePiece(removed, s, ZoneAvailable); err != nil {
		return false, err
	}
	g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
		SAPlunder.String(), "in "+s.String()))
	return true, nil
}
