package game

import (
	"sort"

	"github.com/peterkuimelis/lodx/internal/log"
)

// BattleSpace is one contested space in a Battle plan, with the winner's
// options pre-declared.
type BattleSpace struct {
	Space SpaceID

	// FreeRally is the free Rally a Rebellion winner may take.
	FreeRally *RallySpace

	// MoveBlockade relocates the Blockade off a won battle City.
	MoveBlockade   bool
	MoveBlockadeTo SpaceID
}

// BattlePlan lists the spaces one Battle Command fights in.
type BattlePlan struct {
	Spaces []BattleSpace
}

// battleState carries the per-space arithmetic through resolution.
type battleState struct {
	space    SpaceID
	attacker Side
	defender Side

	attForce int
	defForce int

	attRemoved     int
	defRemoved     int
	attLostKeyUnit bool // cube or fort among the attacker's losses
	defLostKeyUnit bool
}

// ExecuteBattle fights in each selected space: 1 Resource per space, plus
// a fee to the ally for each space its Regulars fight in.
func (g *Game) ExecuteBattle(f Faction, plan *BattlePlan, ctx *TurnContext) error {
	if plan == nil || len(plan.Spaces) == 0 {
		return illegalf("battle needs at least one space")
	}
	b := g.Board
	ally := Ally(f)

	allyFee := 0
	for _, bs := range plan.Spaces {
		if bs.Space == WestIndies {
			return illegalf("no battles in the West Indies box")
		}
		if !g.viableBattle(f, bs.Space, ctx) {
			return illegalf("no viable battle in %s", bs.Space)
		}
		if (f == Patriots || f == French) && b.Pieces[bs.Space][g.allyRegularType(f)] > 0 {
			allyFee++
		}
	}
	cost := len(plan.Spaces)
	if ctx.FreeCommand {
		cost = 0
	}
	if b.Resources[f] < cost+allyFee {
		return illegalf("%s cannot afford battle cost %d", f, cost+allyFee)
	}
	b.Resources[f] -= cost + allyFee
	if allyFee > 0 {
		b.AddResources(ally, allyFee)
	}

	spaces := make([]SpaceID, 0, len(plan.Spaces))
	for _, bs := range plan.Spaces {
		spaces = append(spaces, bs.Space)
		if err := g.fightBattle(f, bs, ctx); err != nil {
			return err
		}
	}

	g.logCommand(f, CmdBattle, spaces, cost+allyFee)
	return nil
}

func (g *Game) allyRegularType(f Faction) PieceType {
	if f == Patriots {
		return FrenchRegular
	}
	return Continental
}

// viableBattle reports whether the attacker's force strictly exceeds the
// defenders' in the space.
func (g *Game) viableBattle(f Faction, s SpaceID, ctx *TurnContext) bool {
	att := SideOf(f)
	def := Rebellion
	if att == Rebellion {
		def = Royalist
	}
	attForce := g.attackForce(f, s, ctx)
	defForce := g.defenseForce(def, s, ctx)
	return attForce > defForce
}

// attackForce computes the acting faction's side's attacking force level.
// Regulars count in full, supporting troops cap at the actor's own
// Regulars, Active guerrillas count at half value, and leaders add one
// apiece.
func (g *Game) attackForce(f Faction, s SpaceID, ctx *TurnContext) int {
	b := g.Board
	force := 0
	switch SideOf(f) {
	case Royalist:
		regs := b.Pieces[s][BritishRegular]
		lent := ctx.CommonCause[s]
		tories := b.Pieces[s][Tory] + lent
		if tories > regs {
			tories = regs
		}
		activeWP := b.Pieces[s][WarPartyActive] - lent
		if activeWP < 0 {
			activeWP = 0
		}
		force = regs + tories + activeWP/2
	case Rebellion:
		own := b.Pieces[s][Continental]
		allied := b.Pieces[s][FrenchRegular]
		if f == French {
			own, allied = allied, own
		}
		if allied > own {
			allied = own
		}
		force = own + allied + b.Pieces[s][MilitiaActive]/2
	}
	for l := LeaderName(0); l < NumLeaders; l++ {
		if b.Leaders[l] == s && l.Side() == SideOf(f) {
			force++
		}
	}
	return force
}

// defenseForce computes a defending side's force level: all troops count,
// Active guerrillas at half value, plus Forts and leaders.
func (g *Game) defenseForce(side Side, s SpaceID, ctx *TurnContext) int {
	b := g.Board
	force := 0
	switch side {
	case Royalist:
		lent := ctx.CommonCause[s]
		activeWP := b.Pieces[s][WarPartyActive] - lent
		if activeWP < 0 {
			activeWP = 0
		}
		force = b.Pieces[s][BritishRegular] + b.Pieces[s][Tory] + lent +
			activeWP + b.Pieces[s][WarPartyUnderground]/2 +
			b.Pieces[s][BritishFort]
	case Rebellion:
		force = b.Pieces[s][Continental] + b.Pieces[s][FrenchRegular] +
			b.Pieces[s][MilitiaActive] + b.Pieces[s][MilitiaUnderground]/2 +
			b.Pieces[s][PatriotFort]
	}
	for l := LeaderName(0); l < NumLeaders; l++ {
		if b.Leaders[l] == s && l.Side() == side {
			force++
		}
	}
	return force
}

func (g *Game) fightBattle(f Faction, bs BattleSpace, ctx *TurnContext) error {
	b := g.Board
	s := bs.Space
	st := &battleState{space: s, attacker: SideOf(f)}
	st.defender = Rebellion
	if st.attacker == Rebellion {
		st.defender = Royalist
	}

	// A defending Village pulls its War Parties into the open, all but one.
	if st.defender == Royalist && b.Pieces[s][Village] > 0 {
		if n := b.Pieces[s][WarPartyUnderground] - 1; n > 0 {
			if err := b.FlipPiece(WarPartyUnderground, WarPartyActive, s, n); err != nil {
				return err
			}
		}
	}

	st.attForce = g.attackForce(f, s, ctx)
	st.defForce = g.defenseForce(st.defender, s, ctx)
	g.logEvent(log.NewBattleEvent(g.CurrentCardID(), f.String(), s.String(),
		st.attForce, st.defForce))

	attRoll := g.rollForce(f, st.attForce, "attacker battle dice")
	defRoll := g.rollForce(f, st.defForce, "defender battle dice")

	defLoss := attRoll + g.lossModifiers(f, st, true)
	attLoss := defRoll + g.lossModifiers(f, st, false)
	if defLoss < 0 {
		defLoss = 0
	}
	if attLoss < 0 {
		attLoss = 0
	}

	if err := g.applyLosses(st, st.defender, defLoss, true); err != nil {
		return err
	}
	if err := g.applyLosses(st, st.attacker, attLoss, false); err != nil {
		return err
	}

	winner := g.battleWinner(st)
	winnerName := winner.String()
	g.logEvent(log.NewBattleResultEvent(g.CurrentCardID(), s.String(), winnerName,
		st.attRemoved, st.defRemoved))

	if winner != NoSide {
		g.winTheDay(st, winner)
		if winner == Rebellion {
			if bs.FreeRally != nil {
				saved := b.Resources[Patriots]
				if err := g.rallyOne(*bs.FreeRally); err == nil {
					b.Resources[Patriots] = saved
				}
			}
			if bs.MoveBlockade && b.Blockade[s] && IsCity(bs.MoveBlockadeTo) &&
				!b.Blockade[bs.MoveBlockadeTo] {
				b.Blockade[s] = false
				b.Blockade[bs.MoveBlockadeTo] = true
				g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Blockade",
					bs.MoveBlockadeTo.String(), "moved"))
			}
		}
	}
	return nil
}

// rollForce rolls min(3, force/3) three-sided dice; a force of 2 or less
// rolls nothing.
func (g *Game) rollForce(f Faction, force int, reason string) int {
	dice := force / 3
	if dice > 3 {
		dice = 3
	}
	total := 0
	for i := 0; i < dice; i++ {
		v := g.Roller.D3(reason)
		g.logEvent(log.NewDieRollEvent(g.CurrentCardID(), f.String(), reason, v))
		total += v
	}
	return total
}

// lossModifiers computes the adjustment to the loss the named side's roll
// inflicts. forDefenderLoss selects the attacker-roll direction.
func (g *Game) lossModifiers(f Faction, st *battleState, forDefenderLoss bool) int {
	b := g.Board
	s := st.space
	mod := 0

	attSide, defSide := st.attacker, st.defender
	if !forDefenderLoss {
		// Symmetric computation: the defender "attacks back".
		attSide, defSide = st.defender, st.attacker
	}

	var regs, cubes int
	var underground PieceType
	switch attSide {
	case Royalist:
		regs = b.Pieces[s][BritishRegular]
		cubes = b.BritishCubes(s)
		underground = WarPartyUnderground
	case Rebellion:
		regs = b.Pieces[s][Continental] + b.Pieces[s][FrenchRegular]
		cubes = b.RebelCubes(s)
		underground = MilitiaUnderground
	}
	if cubes > 0 && regs*2 >= cubes {
		mod++
	}
	if b.Pieces[s][underground] > 0 {
		mod++
	}
	if b.LeaderAt(attSide, s) && forDefenderLoss {
		mod++
	}
	if attSide == Rebellion && b.LeaderIn(Lauzun, s) && b.Pieces[s][FrenchRegular] > 0 {
		mod++
	}
	if attSide == Royalist && IsCity(s) && b.Blockade[s] {
		mod--
	}
	switch defSide {
	case Royalist:
		mod -= b.Pieces[s][BritishFort]
		if forDefenderLoss {
			if b.Pieces[s][WarPartyActive]+b.Pieces[s][WarPartyUnderground] > 0 && IsReserve(s) {
				mod--
			}
		}
	case Rebellion:
		mod -= b.Pieces[s][PatriotFort]
		if forDefenderLoss && b.LeaderIn(Washington, s) {
			mod--
		}
	}
	if !forDefenderLoss {
		// Defending Forts sharpen the counterattack.
		switch st.defender {
		case Royalist:
			mod += b.Pieces[s][BritishFort]
		case Rebellion:
			mod += b.Pieces[s][PatriotFort]
		}
	}
	return mod
}

// applyLosses removes loss points' worth of pieces from a side. Cubes go
// to Casualties, guerrillas and bases to Available; Underground pieces
// are untouchable. Bases fall only on defense, after the troops.
func (g *Game) applyLosses(st *battleState, side Side, loss int, defending bool) error {
	b := g.Board
	s := st.space
	removed := 0
	keyUnit := false

	take := func(p PieceType) error {
		dest := ZoneAvailable
		if p.IsCube() {
			dest = ZoneCasualties
		}
		if err := b.RemovePiece(p, s, dest); err != nil {
			return err
		}
		loss -= p.LossValue()
		removed++
		if p.IsCube() || p.IsBase() {
			keyUnit = true
		}
		g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(), p.String(),
			s.String(), dest.String(), 1))
		return nil
	}

	var phase1 []PieceType
	switch side {
	case Royalist:
		phase1 = []PieceType{BritishRegular, Tory}
	case Rebellion:
		phase1 = []PieceType{FrenchRegular, Continental, MilitiaActive}
	}

	// Phase 1: alternate through the fighting troops.
	for loss > 0 {
		took := false
		for _, p := range phase1 {
			if loss <= 0 {
				break
			}
			if b.Pieces[s][p] > 0 {
				if err := take(p); err != nil {
					return err
				}
				took = true
			}
		}
		if !took {
			break
		}
	}
	// Phase 2: Active guerrillas (Royalists), then bases when defending.
	if side == Royalist {
		for loss > 0 && b.Pieces[s][WarPartyActive] > 0 {
			if err := take(WarPartyActive); err != nil {
				return err
			}
		}
		if defending {
			for loss > 0 && b.Pieces[s][Village] > 0 {
				if err := take(Village); err != nil {
					return err
				}
			}
			for loss > 0 && b.Pieces[s][BritishFort] > 0 {
				if err := take(BritishFort); err != nil {
					return err
				}
			}
		}
	} else if defending {
		for loss > 0 && b.Pieces[s][PatriotFort] > 0 {
			if err := take(PatriotFort); err != nil {
				return err
			}
		}
	}

	if defending {
		st.defRemoved = removed
		st.defLostKeyUnit = keyUnit
	} else {
		st.attRemoved = removed
		st.attLostKeyUnit = keyUnit
	}
	return nil
}

// battleWinner applies the elimination rule, then fewest-losses, with the
// defender winning ties.
func (g *Game) battleWinner(st *battleState) Side {
	b := g.Board
	attLeft := b.SidePieces(st.attacker, st.space)
	defLeft := b.SidePieces(st.defender, st.space)
	switch {
	case attLeft == 0 && defLeft == 0:
		return NoSide
	case attLeft == 0:
		return st.defender
	case defLeft == 0:
		return st.attacker
	case st.attRemoved < st.defRemoved:
		return st.attacker
	case st.defRemoved < st.attRemoved:
		return st.defender
	default:
		return st.defender
	}
}

// winTheDay shifts support toward the winner when the loser was bled
// badly enough: at least 2 pieces including a cube or Fort. Washington
// doubles a Rebellion victory's shifts. Shifts past the end of the track
// spill into adjacent spaces by descending population.
func (g *Game) winTheDay(st *battleState, winner Side) {
	b := g.Board
	loserRemoved := st.defRemoved
	loserKey := st.defLostKeyUnit
	if winner == st.defender {
		loserRemoved = st.attRemoved
		loserKey = st.attLostKeyUnit
	}
	if loserRemoved < 2 || !loserKey {
		return
	}
	shifts := loserRemoved / 2
	if shifts > 3 {
		shifts = 3
	}
	if winner == Rebellion && b.LeaderIn(Washington, st.space) {
		shifts *= 2
		if shifts > 6 {
			shifts = 6
		}
	}
	dir := 1 // Royalist winners push toward Active Support
	if winner == Rebellion {
		dir = -1
	}

	apply := func(s SpaceID, n int) int {
		for n > 0 {
			before := b.Support[s]
			b.ShiftSupport(s, dir)
			if b.Support[s] == before {
				break
			}
			g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), s.String(),
				before.String(), b.Support[s].String()))
			n--
		}
		return n
	}

	rest := apply(st.space, shifts)
	if rest > 0 {
		adj := Adjacent(st.space)
		sort.SliceStable(adj, func(i, j int) bool {
			return SpacePopulation(adj[i]) > SpacePopulation(adj[j])
		})
		for _, s := range adj {
			if rest == 0 {
				break
			}
			rest = apply(s, rest)
		}
	}
}
