package game

import "fmt"

// Card is the static description of one deck card.
type Card struct {
	ID              int
	Title           string
	Years           string
	Order           [NumFactions]Faction // faction order printed on the card
	WinterQuarters  bool
	BrilliantStroke bool
	Dual            bool // has both an unshaded and a shaded text
}

func (c *Card) String() string {
	return fmt.Sprintf("#%d %s", c.ID, c.Title)
}

// IsEvent reports whether the card carries a playable Event.
func (c *Card) IsEvent() bool {
	return !c.WinterQuarters && !c.BrilliantStroke
}

func ord(a, b, c, d Faction) [NumFactions]Faction {
	return [NumFactions]Faction{a, b, c, d}
}

// The faction orderings the deck cycles through.
var (
	ordPBFI = ord(Patriots, British, French, Indians)
	ordBPIF = ord(British, Patriots, Indians, French)
	ordIFBP = ord(Indians, French, British, Patriots)
	ordFIPB = ord(French, Indians, Patriots, British)
	ordPIBF = ord(Patriots, Indians, British, French)
	ordBFPI = ord(British, French, Patriots, Indians)
	ordIBFP = ord(Indians, British, French, Patriots)
	ordFPIB = ord(French, Patriots, Indians, British)
)

var orderCycle = [8][NumFactions]Faction{
	ordPBFI, ordBPIF, ordIFBP, ordFIPB, ordPIBF, ordBFPI, ordIBFP, ordFPIB,
}

func event(id int, title, years string) *Card {
	return &Card{
		ID:    id,
		Title: title,
		Years: years,
		Order: orderCycle[(id-1)%len(orderCycle)],
		Dual:  true,
	}
}

func winterCard(id int, year string) *Card {
	return &Card{
		ID:             id,
		Title:          "Winter Quarters " + year,
		Years:          year,
		Order:          ordBPIF,
		WinterQuarters: true,
	}
}

func strokeCard(id int, title string, f Faction) *Card {
	c := &Card{
		ID:              id,
		Title:           title,
		Years:           "1775-1783",
		BrilliantStroke: true,
	}
	c.Order[0] = f
	i := 1
	for _, g := range [NumFactions]Faction{British, Patriots, Indians, French} {
		if g != f {
			c.Order[i] = g
			i++
		}
	}
	return c
}

var eventTitles = map[int]string{
	1: "Lexington and Concord", 2: "Bunker Hill", 3: "Fort Ticonderoga",
	4: "Cherokee War", 5: "Olive Branch Petition", 6: "Common Sense",
	7: "Hessians", 8: "Minutemen", 9: "Gaspee Affair",
	10: "Committees of Correspondence", 11: "Royal Navy", 12: "Quebec Act",
	13: "Sons of Liberty", 14: "Loyalist Regiments", 15: "Continental Congress",
	16: "Green Mountain Boys", 17: "Smallpox", 18: "Joseph Brant",
	19: "Powder Alarm", 20: "Falmouth Burned", 21: "Iroquois Confederacy",
	22: "Mohawk Valley", 23: "Benedict Arnold", 24: "Dorchester Heights",
	25: "Declaration of Independence", 26: "Trenton", 27: "Crossing the Delaware",
	28: "Hearts and Minds", 29: "Rangers", 30: "Privateers",
	31: "Camp Followers", 32: "Fort Stanwix", 33: "Saratoga",
	34: "Marquis de Lafayette", 35: "Baron von Steuben", 36: "Conway Cabal",
	37: "Articles of Confederation", 38: "Burgoyne's Campaign", 39: "Brandywine",
	40: "Germantown", 41: "Paoli Massacre", 42: "Kosciuszko",
	43: "Fort Mifflin", 44: "Oriskany", 45: "Bennington",
	46: "Howe's Strategy", 47: "Philadelphia Occupied", 48: "Valley Forge",
	49: "Monmouth", 50: "Molly Pitcher", 51: "Wyoming Valley",
	52: "Carlisle Commission", 53: "Savannah Falls", 54: "Stony Point",
	55: "Sullivan Expedition", 56: "Newtown", 57: "Bonhomme Richard",
	58: "Spanish Entry", 59: "Siege of Savannah", 60: "Charleston Expedition",
	61: "Waxhaws", 62: "Banastre Tarleton", 63: "Camden",
	64: "Gates Routed", 65: "Kings Mountain", 66: "Swamp Fox",
	67: "Nathanael Greene", 68: "Cowpens", 69: "Guilford Courthouse",
	70: "War Weariness", 71: "Mutiny of the Line", 72: "Arnold's Treason",
	73: "French Expeditionary Force", 74: "De Grasse", 75: "Chesapeake Capes",
	76: "Yorktown Approaches", 77: "Siege Artillery", 78: "Loyalist Exodus",
	79: "Gnadenhutten", 80: "Frontier Raids", 81: "Crawford Expedition",
	82: "Blue Licks", 83: "Rochambeau's March", 84: "Hussars of Lauzun",
	85: "Admiral Rodney", 86: "Robert Morris", 87: "Bank of North America",
	88: "Peace Commissioners", 89: "Treaty Negotiations", 90: "Newburgh Conspiracy",
	91: "Evacuation of Charleston", 92: "Carleton in Command", 93: "Florida Ceded",
	94: "Ohio Country", 95: "Paris Talks", 96: "The World Turned Upside Down",
}

func yearsFor(id int) string {
	switch {
	case id <= 32:
		return "1775-1776"
	case id <= 64:
		return "1777-1779"
	default:
		return "1780-1783"
	}
}

// CardRegistry holds every card in the game, keyed by id. Ids 1-96 are
// Events, 97-104 Winter Quarters, 105-109 Brilliant Strokes.
var CardRegistry = func() map[int]*Card {
	reg := make(map[int]*Card, 109)
	for id := 1; id <= 96; id++ {
		reg[id] = event(id, eventTitles[id], yearsFor(id))
	}
	wqYears := []string{"1775", "1776", "1777", "1778", "1779", "1780", "1781", "1782"}
	for i, y := range wqYears {
		reg[97+i] = winterCard(97+i, y)
	}
	reg[105] = strokeCard(105, "Brilliant Stroke: Washington", Patriots)
	reg[106] = strokeCard(106, "Brilliant Stroke: Clinton", British)
	reg[107] = strokeCard(107, "Brilliant Stroke: Rochambeau", French)
	reg[108] = strokeCard(108, "Brilliant Stroke: Brant", Indians)
	reg[109] = strokeCard(109, "Brilliant Stroke: Cornwallis", British)
	// Card 1's printed order is fixed by the rules reference.
	reg[1].Order = ordPBFI
	return reg
}()

// LookupCard fetches a card by id, panicking on unknown ids. Scenario data
// is validated upstream, so a miss here is a programming error.
func LookupCard(id int) *Card {
	c, ok := CardRegistry[id]
	if !ok {
		panic(fmt.Sprintf("unknown card id %d", id))
	}
	return c
}

// FactionOrder returns the eligibility order for the current card: the
// card's printed order completed by the base order for any factions the
// card does not name.
func FactionOrder(c *Card) []Faction {
	base := []Faction{British, Patriots, Indians, French}
	seen := make(map[Faction]bool, NumFactions)
	out := make([]Faction, 0, NumFactions)
	for _, f := range c.Order {
		if f >= 0 && f < NumFactions && !seen[f] {
			out = append(out, f)
			seen[f] = true
		}
	}
	for _, f := range base {
		if !seen[f] {
			out = append(out, f)
		}
	}
	return out
}
