package game

import (
	"sort"

	"github.com/peterkuimelis/lodx/internal/log"
)

// EffectFlags describes what one side of an Event card does to the board.
type EffectFlags uint32

const (
	FxShiftRoyalist EffectFlags = 1 << iota
	FxShiftRebel
	FxPlaceBritish
	FxFromUnavailable
	FxPlaceMilitia
	FxPlacePatriotFort
	FxPlaceFrench
	FxPlaceVillage
	FxRemovePatriotFort
	FxRemoveVillage
	FxBritishResources
	FxPatriotResources
	FxIndianResources
	FxFrenchResources
	FxBritishCasualties
	FxRebelCasualties
	FxFreeGather
	FxNavalUp
	FxNavalDown
	FxTreaty
)

// Has reports whether every flag in q is set.
func (f EffectFlags) Has(q EffectFlags) bool { return f&q == q }

// cardEffect pairs the two texts of a dual Event.
type cardEffect struct {
	Unshaded EffectFlags
	Shaded   EffectFlags
}

// cardEffects profiles every Event card. Unshaded favors the Royalists,
// shaded the Rebellion.
var cardEffects = map[int]cardEffect{
	1:  {FxBritishCasualties | FxShiftRebel, FxPlaceMilitia | FxShiftRebel},
	2:  {FxRebelCasualties | FxShiftRoyalist, FxBritishCasualties},
	3:  {FxPlaceBritish, FxPlaceMilitia | FxPatriotResources},
	4:  {FxPlaceVillage | FxIndianResources, FxRemoveVillage},
	5:  {FxShiftRoyalist, FxShiftRebel},
	6:  {FxShiftRoyalist, FxShiftRebel | FxPatriotResources},
	7:  {FxPlaceBritish | FxFromUnavailable, FxBritishCasualties},
	8:  {FxRebelCasualties, FxPlaceMilitia},
	9:  {FxBritishResources, FxPatriotResources},
	10: {FxShiftRoyalist, FxShiftRebel | FxPlaceMilitia},
	11: {FxNavalDown | FxBritishResources, FxPatriotResources},
	12: {FxShiftRoyalist | FxPlaceVillage, FxShiftRebel},
	13: {FxRebelCasualties, FxShiftRebel | FxPlaceMilitia},
	14: {FxPlaceBritish, FxBritishCasualties},
	15: {FxShiftRoyalist, FxShiftRebel | FxPatriotResources},
	16: {FxRebelCasualties, FxPlaceMilitia | FxPlacePatriotFort},
	17: {FxRebelCasualties, FxBritishCasualties},
	18: {FxPlaceVillage | FxFreeGather, FxRemoveVillage},
	19: {FxBritishResources, FxPlaceMilitia},
	20: {FxShiftRoyalist | FxBritishResources, FxShiftRebel},
	21: {FxPlaceVillage | FxIndianResources, FxRemoveVillage | FxShiftRebel},
	22: {FxFreeGather, FxRemoveVillage},
	23: {FxRebelCasualties | FxBritishResources, FxPlaceMilitia},
	24: {FxBritishCasualties, FxShiftRebel | FxPlacePatriotFort},
	25: {FxShiftRoyalist, FxShiftRebel | FxPatriotResources},
	26: {FxRebelCasualties, FxBritishCasualties | FxShiftRebel},
	27: {FxRebelCasualties, FxPlaceMilitia | FxShiftRebel},
	28: {FxShiftRoyalist, FxShiftRebel},
	29: {FxRebelCasualties, FxBritishCasualties},
	30: {FxBritishResources, FxPatriotResources | FxBritishCasualties},
	31: {FxBritishResources, FxPatriotResources},
	32: {FxPlaceBritish | FxPlaceVillage, FxPlacePatriotFort},
	33: {FxRebelCasualties, FxBritishCasualties | FxShiftRebel | FxTreaty},
	34: {FxRebelCasualties, FxPlaceFrench | FxShiftRebel},
	35: {FxRebelCasualties, FxPlaceMilitia | FxShiftRebel},
	36: {FxShiftRoyalist, FxPatriotResources},
	37: {FxShiftRoyalist, FxShiftRebel | FxPatriotResources},
	38: {FxPlaceBritish | FxFromUnavailable, FxBritishCasualties},
	39: {FxRebelCasualties | FxShiftRoyalist, FxBritishCasualties},
	40: {FxRebelCasualties, FxBritishCasualties},
	41: {FxRebelCasualties, FxPlaceMilitia},
	42: {FxRebelCasualties, FxPlacePatriotFort},
	43: {FxBritishResources, FxPlacePatriotFort | FxPatriotResources},
	44: {FxPlaceVillage | FxRebelCasualties, FxRemoveVillage | FxBritishCasualties},
	45: {FxRebelCasualties, FxBritishCasualties | FxPatriotResources},
	46: {FxPlaceBritish, FxShiftRebel},
	47: {FxShiftRoyalist | FxPlaceBritish, FxShiftRebel},
	48: {FxRebelCasualties, FxPlaceMilitia | FxShiftRebel},
	49: {FxRebelCasualties, FxBritishCasualties},
	50: {FxShiftRoyalist, FxShiftRebel | FxPlaceMilitia},
	51: {FxPlaceVillage | FxRebelCasualties, FxRemoveVillage},
	52: {FxShiftRoyalist, FxShiftRebel | FxFrenchResources},
	53: {FxShiftRoyalist | FxPlaceBritish, FxShiftRebel},
	54: {FxRebelCasualties, FxBritishCasualties},
	55: {FxRebelCasualties | FxRemoveVillage, FxPlaceVillage},
	56: {FxRemoveVillage | FxShiftRoyalist, FxPlaceVillage | FxIndianResources},
	57: {FxBritishResources, FxNavalUp | FxFrenchResources},
	58: {FxBritishResources, FxFrenchResources | FxNavalUp},
	59: {FxRebelCasualties, FxBritishCasualties | FxPlaceFrench},
	60: {FxPlaceBritish, FxBritishCasualties},
	61: {FxRebelCasualties | FxShiftRoyalist, FxShiftRebel},
	62: {FxRebelCasualties, FxShiftRebel},
	63: {FxRebelCasualties | FxShiftRoyalist, FxBritishCasualties},
	64: {FxRebelCasualties, FxPlaceMilitia},
	65: {FxShiftRoyalist, FxBritishCasualties | FxShiftRebel},
	66: {FxRebelCasualties, FxPlaceMilitia | FxBritishCasualties},
	67: {FxRebelCasualties, FxPlaceMilitia | FxShiftRebel},
	68: {FxShiftRoyalist, FxBritishCasualties},
	69: {FxRebelCasualties, FxBritishCasualties},
	70: {FxShiftRoyalist, FxShiftRebel},
	71: {FxRebelCasualties | FxBritishResources, FxPatriotResources},
	72: {FxRebelCasualties | FxShiftRoyalist, FxPatriotResources},
	73: {FxBritishResources, FxPlaceFrench | FxFromUnavailable},
	74: {FxBritishResources, FxNavalUp},
	75: {FxNavalDown, FxNavalUp | FxBritishCasualties},
	76: {FxPlaceBritish, FxBritishCasualties | FxPlaceFrench},
	77: {FxRebelCasualties, FxBritishCasualties},
	78: {FxShiftRoyalist | FxBritishResources, FxShiftRebel},
	79: {FxRebelCasualties, FxShiftRebel | FxRemoveVillage},
	80: {FxPlaceVillage | FxFreeGather, FxRemoveVillage},
	81: {FxRebelCasualties | FxRemoveVillage, FxPlaceVillage},
	82: {FxPlaceVillage | FxIndianResources, FxRemoveVillage},
	83: {FxRebelCasualties, FxPlaceFrench | FxShiftRebel},
	84: {FxRebelCasualties, FxPlaceFrench},
	85: {FxNavalDown | FxBritishResources, FxFrenchResources},
	86: {FxBritishResources, FxPatriotResources},
	87: {FxBritishResources, FxPatriotResources | FxPlaceMilitia},
	88: {FxShiftRoyalist, FxShiftRebel | FxTreaty},
	89: {FxShiftRoyalist | FxBritishResources, FxShiftRebel | FxTreaty},
	90: {FxRebelCasualties, FxPatriotResources},
	91: {FxPlaceBritish | FxFromUnavailable, FxShiftRebel},
	92: {FxShiftRoyalist, FxShiftRebel},
	93: {FxPlaceVillage, FxRemoveVillage | FxShiftRebel},
	94: {FxPlaceVillage | FxFreeGather, FxRemoveVillage},
	95: {FxShiftRoyalist, FxShiftRebel | FxFrenchResources},
	96: {FxShiftRoyalist | FxBritishResources, FxShiftRebel | FxPatriotResources},
}

// Instruction is a musket-icon override of the normal event evaluation.
type Instruction int

const (
	InstrNone Instruction = iota
	InstrForce
	InstrIgnore
	InstrIgnoreIfMilitia // ignore when 4+ Militia stand anywhere
	InstrForceIf         // conditional force; see forceCondition
)

// instructionTable carries each faction's musket-icon overrides.
var instructionTable = map[Faction]map[int]Instruction{
	British: {
		18: InstrForce, 23: InstrForce, 29: InstrIgnoreIfMilitia, 30: InstrForce,
		44: InstrForce, 51: InstrForce, 52: InstrForce, 62: InstrForce,
		70: InstrForce, 80: InstrForce, 88: InstrForce, 95: InstrForce,
	},
	Patriots: {
		8: InstrForce, 18: InstrForce, 29: InstrForce, 44: InstrForce,
		51: InstrForce, 52: InstrForce, 70: InstrForce, 71: InstrForce,
		80: InstrForce, 83: InstrForce, 86: InstrForce, 88: InstrForce,
		90: InstrForce,
	},
	Indians: {
		4: InstrForce, 18: InstrForce, 21: InstrForce, 22: InstrForce,
		29: InstrForce, 32: InstrForce, 38: InstrForce, 44: InstrForce,
		70: InstrForce, 72: InstrForce, 80: InstrForce, 83: InstrForce,
		88: InstrForce, 89: InstrForce, 90: InstrForce,
	},
	French: {
		52: InstrForceIf, 62: InstrForceIf, 70: InstrForceIf, 73: InstrForceIf,
		83: InstrForceIf, 88: InstrForce, 89: InstrForce, 95: InstrForceIf,
	},
}

// forceCondition resolves the bespoke InstrForceIf checks.
func (g *Game) forceCondition(f Faction, id int) bool {
	b := g.Board
	switch id {
	case 52: // Carlisle Commission: worth blocking only while support leads
		sup, opp := g.supportTotals()
		return sup > opp
	case 62: // Tarleton runs loose in an undefended South Carolina
		return b.Support[SouthCarolina] == ActiveOpposition &&
			b.Pieces[SouthCarolina][Tory] == 0
	case 70: // War Weariness bites when the treasury runs dry
		return b.Resources[French] < 5
	case 73: // the expeditionary force is worth landing while it exists
		return b.Unavailable[FrenchRegular] > 0
	case 83: // the march needs Rochambeau ashore
		return b.Leaders[Rochambeau] != LeaderOffMap
	case 95: // Paris listens only once the alliance is signed
		return b.TreatyOfAlliance
	}
	return false
}

// EventShaded returns the side of a dual card a faction plays by default.
func EventShaded(f Faction, c *Card) bool {
	if !c.Dual {
		return false
	}
	return f == Patriots || f == French
}

// WillPlayEvent is the event-or-command decision: the musket override
// first, then the faction's bullet list top to bottom. Events that would
// leave the board unchanged are never played.
func (g *Game) WillPlayEvent(f Faction, id int) bool {
	c := LookupCard(id)
	if !c.IsEvent() {
		return false
	}
	shaded := EventShaded(f, c)
	switch instructionTable[f][id] {
	case InstrForce:
		return g.EventEffective(f, id, shaded)
	case InstrIgnore:
		return false
	case InstrIgnoreIfMilitia:
		if g.totalOnMap(MilitiaActive)+g.totalOnMap(MilitiaUnderground) >= 4 {
			return false
		}
		return g.EventEffective(f, id, shaded)
	case InstrForceIf:
		return g.forceCondition(f, id) && g.EventEffective(f, id, shaded)
	}
	if !g.EventEffective(f, id, shaded) {
		return false
	}
	return g.eventBullets(f, id, shaded)
}

// eventBullets walks the faction's decision list; the first true wins.
func (g *Game) eventBullets(f Faction, id int, shaded bool) bool {
	b := g.Board
	fx := cardEffects[id].Unshaded
	if shaded {
		fx = cardEffects[id].Shaded
	}
	switch f {
	case British:
		if fx.Has(FxRebelCasualties) && g.biggestRebelConcentration() >= 3 {
			return true
		}
		sup, opp := g.supportTotals()
		if fx.Has(FxShiftRoyalist) && opp > sup {
			return true
		}
		if fx.Has(FxPlaceBritish|FxFromUnavailable) && b.Unavailable[BritishRegular] > 0 {
			return true
		}
		if g.britishControlledCities() >= 5 {
			v := g.Roller.D6("British event gamble")
			g.logEvent(log.NewDieRollEvent(g.CurrentCardID(), f.String(),
				"British event gamble", v))
			return v >= 5
		}
	case Patriots:
		if fx.Has(FxBritishCasualties) {
			return true
		}
		if fx.Has(FxPatriotResources) && b.Resources[Patriots] < 5 {
			return true
		}
		if fx&(FxPlaceMilitia|FxPlacePatriotFort) != 0 &&
			b.Available[MilitiaUnderground]+b.Available[MilitiaActive] > 0 {
			return true
		}
	case Indians:
		if fx.Has(FxPlaceVillage) && b.Available[Village] > 0 {
			return true
		}
		if fx.Has(FxIndianResources) && b.Resources[Indians] < 3 {
			return true
		}
		if fx.Has(FxRemovePatriotFort) {
			return true
		}
		if fx.Has(FxFreeGather) {
			return true
		}
	case French:
		if b.TreatyOfAlliance {
			v := g.Roller.D6("French event gamble")
			g.logEvent(log.NewDieRollEvent(g.CurrentCardID(), f.String(),
				"French event gamble", v))
			return v >= 5
		}
	}
	return false
}

// EventEffective reports whether playing the event would change the board.
func (g *Game) EventEffective(f Faction, id int, shaded bool) bool {
	b := g.Board
	fx := cardEffects[id].Unshaded
	if shaded {
		fx = cardEffects[id].Shaded
	}
	switch {
	case fx.Has(FxShiftRoyalist) && g.shiftTargets(1) != nil:
		return true
	case fx.Has(FxShiftRebel) && g.shiftTargets(-1) != nil:
		return true
	case fx.Has(FxPlaceBritish) && (b.Available[BritishRegular] > 0 ||
		(fx.Has(FxFromUnavailable) && b.Unavailable[BritishRegular] > 0)):
		return true
	case fx.Has(FxPlaceMilitia) && b.Available[MilitiaUnderground]+b.Available[MilitiaActive] > 0:
		return true
	case fx.Has(FxPlacePatriotFort) && b.Available[PatriotFort] > 0:
		return true
	case fx.Has(FxPlaceFrench) && (b.Available[FrenchRegular] > 0 ||
		(fx.Has(FxFromUnavailable) && b.Unavailable[FrenchRegular] > 0)):
		return true
	case fx.Has(FxPlaceVillage) && b.Available[Village] > 0:
		return true
	case fx.Has(FxRemovePatriotFort) && g.totalOnMap(PatriotFort) > 0:
		return true
	case fx.Has(FxRemoveVillage) && g.totalOnMap(Village) > 0:
		return true
	case fx.Has(FxBritishResources) && b.Resources[British] < MaxResources:
		return true
	case fx.Has(FxPatriotResources) && b.Resources[Patriots] < MaxResources:
		return true
	case fx.Has(FxIndianResources) && b.Resources[Indians] < MaxResources:
		return true
	case fx.Has(FxFrenchResources) && b.Resources[French] < MaxResources:
		return true
	case fx.Has(FxBritishCasualties) && g.biggestBritishConcentration() > 0:
		return true
	case fx.Has(FxRebelCasualties) && g.biggestRebelConcentration() > 0:
		return true
	case fx.Has(FxFreeGather) && b.Available[WarPartyUnderground]+b.Available[WarPartyActive] > 0:
		return true
	case fx.Has(FxNavalUp) && b.NavalIntervention < MaxNavalIntervention:
		return true
	case fx.Has(FxNavalDown) && b.NavalIntervention > 0:
		return true
	case fx.Has(FxTreaty) && !b.TreatyOfAlliance:
		return true
	}
	return false
}

// ExecuteEvent applies a card's text generically from its effect profile.
func (g *Game) ExecuteEvent(f Faction, id int, shaded bool) error {
	c := LookupCard(id)
	if !c.IsEvent() {
		return illegalf("card #%d has no event text", id)
	}
	b := g.Board
	fx := cardEffects[id].Unshaded
	if shaded {
		fx = cardEffects[id].Shaded
	}
	g.logEvent(log.NewEventPlayedEvent(g.CurrentCardID(), f.String(), c.Title, shaded))

	if fx.Has(FxShiftRoyalist) {
		for _, s := range g.shiftTargets(1) {
			before := b.Support[s]
			b.ShiftSupport(s, 1)
			g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), s.String(),
				before.String(), b.Support[s].String()))
		}
	}
	if fx.Has(FxShiftRebel) {
		for _, s := range g.shiftTargets(-1) {
			before := b.Support[s]
			b.ShiftSupport(s, -1)
			g.logEvent(log.NewSupportShiftEvent(g.CurrentCardID(), s.String(),
				before.String(), b.Support[s].String()))
		}
	}
	if fx.Has(FxPlaceBritish) {
		if fx.Has(FxFromUnavailable) {
			n := b.Unavailable[BritishRegular]
			if n > 3 {
				n = 3
			}
			if n > 0 {
				if err := b.Mobilize(BritishRegular, n); err != nil {
					return err
				}
			}
		}
		g.placeUpTo(BritishRegular, g.bestSpaceFor(British), 3)
	}
	if fx.Has(FxPlaceMilitia) {
		g.placeUpTo(MilitiaUnderground, g.bestSpaceFor(Patriots), 2)
	}
	if fx.Has(FxPlacePatriotFort) {
		if s := g.bestSpaceFor(Patriots); s != NoSpace && b.BaseCount(s) < 2 {
			g.placeUpTo(PatriotFort, s, 1)
		}
	}
	if fx.Has(FxPlaceFrench) {
		if fx.Has(FxFromUnavailable) {
			n := b.Unavailable[FrenchRegular]
			if n > 3 {
				n = 3
			}
			if n > 0 {
				if err := b.Mobilize(FrenchRegular, n); err != nil {
					return err
				}
			}
		}
		g.placeUpTo(FrenchRegular, g.bestSpaceFor(Patriots), 2)
	}
	if fx.Has(FxPlaceVillage) {
		for _, s := range AllSpaces() {
			if IsReserve(s) && b.BaseCount(s) < 2 && b.Available[Village] > 0 {
				g.placeUpTo(Village, s, 1)
				break
			}
		}
	}
	if fx.Has(FxRemovePatriotFort) {
		g.removeFirstOnMap(PatriotFort, ZoneAvailable)
	}
	if fx.Has(FxRemoveVillage) {
		g.removeFirstOnMap(Village, ZoneAvailable)
	}
	if fx.Has(FxBritishResources) {
		b.AddResources(British, 3)
	}
	if fx.Has(FxPatriotResources) {
		b.AddResources(Patriots, 3)
	}
	if fx.Has(FxIndianResources) {
		b.AddResources(Indians, 3)
	}
	if fx.Has(FxFrenchResources) {
		b.AddResources(French, 3)
	}
	if fx.Has(FxBritishCasualties) {
		g.inflictCasualty(Royalist)
	}
	if fx.Has(FxRebelCasualties) {
		g.inflictCasualty(Rebellion)
	}
	if fx.Has(FxFreeGather) {
		for _, s := range AllSpaces() {
			if IsReserve(s) {
				g.placeUpTo(WarPartyUnderground, s, 1)
			}
		}
	}
	if fx.Has(FxNavalUp) && b.NavalIntervention < MaxNavalIntervention {
		b.NavalIntervention++
		g.logEvent(log.NewNavalInterventionEvent(g.CurrentCardID(), b.NavalIntervention))
	}
	if fx.Has(FxNavalDown) && b.NavalIntervention > 0 {
		b.NavalIntervention--
		g.logEvent(log.NewNavalInterventionEvent(g.CurrentCardID(), b.NavalIntervention))
	}
	if fx.Has(FxTreaty) && !b.TreatyOfAlliance {
		b.TreatyOfAlliance = true
		g.logEvent(log.NewTreatyEvent(g.CurrentCardID()))
	}
	return nil
}

// --- helpers ---

func (g *Game) supportTotals() (support, opposition int) {
	for _, s := range AllSpaces() {
		lvl := int(g.Board.Support[s])
		if lvl > 0 {
			support += lvl
		} else {
			opposition -= lvl
		}
	}
	return
}

func (g *Game) totalOnMap(p PieceType) int {
	n := 0
	for _, s := range AllSpaces() {
		n += g.Board.Pieces[s][p]
	}
	return n
}

func (g *Game) britishControlledCities() int {
	n := 0
	for _, s := range AllSpaces() {
		if IsCity(s) && g.Board.ControlOf(s) == Royalist {
			n++
		}
	}
	return n
}

// shiftTargets picks up to 2 populous spaces still shiftable in dir.
func (g *Game) shiftTargets(dir int) []SpaceID {
	var cands []SpaceID
	for _, s := range AllSpaces() {
		lvl := g.Board.Support[s]
		if (dir > 0 && lvl < ActiveSupport) || (dir < 0 && lvl > ActiveOpposition) {
			if SpacePopulation(s) > 0 {
				cands = append(cands, s)
			}
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return SpacePopulation(cands[i]) > SpacePopulation(cands[j])
	})
	if len(cands) > 2 {
		cands = cands[:2]
	}
	return cands
}

// bestSpaceFor picks the populous space friendliest to the faction.
func (g *Game) bestSpaceFor(f Faction) SpaceID {
	b := g.Board
	best := NoSpace
	bestScore := -1
	for _, s := range AllSpaces() {
		if f == Indians && IsCity(s) {
			continue
		}
		score := SpacePopulation(s)
		if b.ControlOf(s) == SideOf(f) {
			score += 10
		}
		if b.FactionPieces(f, s) > 0 {
			score += 5
		}
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

func (g *Game) placeUpTo(p PieceType, s SpaceID, n int) {
	if s == NoSpace {
		return
	}
	placed := 0
	for i := 0; i < n && g.Board.EnsureAvailable(p); i++ {
		if err := g.Board.PlacePiece(p, s); err != nil {
			break
		}
		placed++
	}
	if placed > 0 {
		g.logEvent(log.NewPiecesPlacedEvent(g.CurrentCardID(), p.Owner().String(),
			p.String(), s.String(), placed))
	}
}

func (g *Game) removeFirstOnMap(p PieceType, to Zone) {
	for _, s := range AllSpaces() {
		if g.Board.Pieces[s][p] > 0 {
			if err := g.Board.RemovePiece(p, s, to); err == nil {
				g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(), p.String(),
					s.String(), to.String(), 1))
			}
			return
		}
	}
}

// biggestRebelConcentration returns the largest rebel troop count in one
// space; inflictCasualty strikes there.
func (g *Game) biggestRebelConcentration() int {
	best := 0
	for _, s := range AllSpaces() {
		if n := g.Board.SidePieces(Rebellion, s); n > best {
			best = n
		}
	}
	return best
}

func (g *Game) biggestBritishConcentration() int {
	best := 0
	for _, s := range AllSpaces() {
		if n := g.Board.SidePieces(Royalist, s); n > best {
			best = n
		}
	}
	return best
}

// inflictCasualty removes one cube from the side's biggest concentration.
func (g *Game) inflictCasualty(side Side) {
	b := g.Board
	target := NoSpace
	best := 0
	for _, s := range AllSpaces() {
		if n := b.SidePieces(side, s); n > best {
			best = n
			target = s
		}
	}
	if target == NoSpace {
		return
	}
	order := []PieceType{BritishRegular, Tory, WarPartyActive}
	if side == Rebellion {
		order = []PieceType{Continental, FrenchRegular, MilitiaActive}
	}
	for _, p := range order {
		if b.Pieces[target][p] > 0 {
			dest := ZoneCasualties
			if !p.IsCube() {
				dest = ZoneAvailable
			}
			if err := b.RemovePiece(p, target, dest); err == nil {
				g.logEvent(log.NewPiecesRemovedEvent(g.CurrentCardID(), p.String(),
					target.String(), dest.String(), 1))
			}
			return
		}
	}
}
