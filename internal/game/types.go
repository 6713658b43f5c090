package game

import "strings"

// Faction identifies one of the four playable factions.
type Faction int

const (
	British Faction = iota
	Patriots
	Indians
	French
	NumFactions
	NoFaction Faction = -1
)

func (f Faction) String() string {
	switch f {
	case British:
		return "British"
	case Patriots:
		return "Patriots"
	case Indians:
		return "Indians"
	case French:
		return "French"
	default:
		return "None"
	}
}

// FactionByName parses a faction name, case-insensitively.
func FactionByName(name string) (Faction, bool) {
	for f := Faction(0); f < NumFactions; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return NoFaction, false
}

// Side groups the factions into the two warring coalitions.
type Side int

const (
	NoSide Side = iota
	Royalist
	Rebellion
)

func (s Side) String() string {
	switch s {
	case Royalist:
		return "Royalist"
	case Rebellion:
		return "Rebellion"
	default:
		return "None"
	}
}

// SideOf returns the coalition a faction fights for.
func SideOf(f Faction) Side {
	switch f {
	case British, Indians:
		return Royalist
	case Patriots, French:
		return Rebellion
	default:
		return NoSide
	}
}

// Ally returns the coalition partner of f.
func Ally(f Faction) Faction {
	switch f {
	case British:
		return Indians
	case Indians:
		return British
	case Patriots:
		return French
	case French:
		return Patriots
	default:
		return NoFaction
	}
}

// SupportLevel is the political posture of a space, from Active Opposition
// (-2) through Neutral (0) to Active Support (+2).
type SupportLevel int

const (
	ActiveOpposition  SupportLevel = -2
	PassiveOpposition SupportLevel = -1
	Neutral           SupportLevel = 0
	PassiveSupport    SupportLevel = 1
	ActiveSupport     SupportLevel = 2
)

func (s SupportLevel) String() string {
	switch s {
	case ActiveOpposition:
		return "Active Opposition"
	case PassiveOpposition:
		return "Passive Opposition"
	case Neutral:
		return "Neutral"
	case PassiveSupport:
		return "Passive Support"
	case ActiveSupport:
		return "Active Support"
	default:
		return "Unknown"
	}
}

// Clamp bounds s to the legal -2..+2 range.
func (s SupportLevel) Clamp() SupportLevel {
	if s < ActiveOpposition {
		return ActiveOpposition
	}
	if s > ActiveSupport {
		return ActiveSupport
	}
	return s
}

// PieceType enumerates every kind of force piece on the board.
type PieceType int

const (
	BritishRegular PieceType = iota
	Tory
	BritishFort
	Continental
	MilitiaActive
	MilitiaUnderground
	PatriotFort
	FrenchRegular
	WarPartyActive
	WarPartyUnderground
	Village
	NumPieceTypes
)

func (p PieceType) String() string {
	switch p {
	case BritishRegular:
		return "British Regular"
	case Tory:
		return "Tory"
	case BritishFort:
		return "British Fort"
	case Continental:
		return "Continental"
	case MilitiaActive:
		return "Militia (Active)"
	case MilitiaUnderground:
		return "Militia (Underground)"
	case PatriotFort:
		return "Patriot Fort"
	case FrenchRegular:
		return "French Regular"
	case WarPartyActive:
		return "War Party (Active)"
	case WarPartyUnderground:
		return "War Party (Underground)"
	case Village:
		return "Village"
	default:
		return "Unknown"
	}
}

// Owner returns the faction that owns pieces of this type.
func (p PieceType) Owner() Faction {
	switch p {
	case BritishRegular, Tory, BritishFort:
		return British
	case Continental, MilitiaActive, MilitiaUnderground, PatriotFort:
		return Patriots
	case FrenchRegular:
		return French
	case WarPartyActive, WarPartyUnderground, Village:
		return Indians
	default:
		return NoFaction
	}
}

// IsCube reports whether the piece counts as a cube for control and
// battle arithmetic.
func (p PieceType) IsCube() bool {
	switch p {
	case BritishRegular, Tory, Continental, FrenchRegular:
		return true
	}
	return false
}

// IsBase reports whether the piece counts against the two-base stacking cap.
func (p PieceType) IsBase() bool {
	switch p {
	case BritishFort, PatriotFort, Village:
		return true
	}
	return false
}

// LossValue is the number of battle loss points the piece absorbs.
func (p PieceType) LossValue() int {
	switch p {
	case BritishRegular, FrenchRegular, Continental, BritishFort, PatriotFort:
		return 2
	}
	return 1
}

// pieceCaps is the total number of each piece type in the game box.
// Dual-state pieces (Militia, War Parties) share one pool; see poolKey.
var pieceCaps = [NumPieceTypes]int{
	BritishRegular:      25,
	Tory:                25,
	BritishFort:         6,
	Continental:         20,
	MilitiaActive:       15,
	MilitiaUnderground:  15,
	PatriotFort:         6,
	FrenchRegular:       15,
	WarPartyActive:      15,
	WarPartyUnderground: 15,
	Village:             12,
}

// poolKey collapses the Active/Underground states of a dual-state piece
// into a single conservation pool.
func poolKey(p PieceType) PieceType {
	switch p {
	case MilitiaUnderground:
		return MilitiaActive
	case WarPartyUnderground:
		return WarPartyActive
	}
	return p
}

// CommandType enumerates the Commands a faction may execute.
type CommandType int

const (
	CmdMarch CommandType = iota
	CmdBattle
	CmdMuster
	CmdGarrison
	CmdRally
	CmdRabbleRousing
	CmdGather
	CmdScout
	CmdRaid
	CmdHortalez
	CmdAgentMobilization
	NumCommands
	NoCommand CommandType = -1
)

func (c CommandType) String() string {
	switch c {
	case CmdMarch:
		return "March"
	case CmdBattle:
		return "Battle"
	case CmdMuster:
		return "Muster"
	case CmdGarrison:
		return "Garrison"
	case CmdRally:
		return "Rally"
	case CmdRabbleRousing:
		return "Rabble-Rousing"
	case CmdGather:
		return "Gather"
	case CmdScout:
		return "Scout"
	case CmdRaid:
		return "Raid"
	case CmdHortalez:
		return "Hortalez et Cie"
	case CmdAgentMobilization:
		return "Agent Mobilization"
	default:
		return "None"
	}
}

// SAType enumerates the Special Activities.
type SAType int

const (
	SASkirmish SAType = iota
	SACommonCause
	SANavalPressure
	SAPartisans
	SAPersuasion
	SAWarPath
	SATrade
	SAPlunder
	SAPreparer
	NumSpecialActivities
	NoSA SAType = -1
)

func (s SAType) String() string {
	switch s {
	case SASkirmish:
		return "Skirmish"
	case SACommonCause:
		return "Common Cause"
	case SANavalPressure:
		return "Naval Pressure"
	case SAPartisans:
		return "Partisans"
	case SAPersuasion:
		return "Persuasion"
	case SAWarPath:
		return "War Path"
	case SATrade:
		return "Trade"
	case SAPlunder:
		return "Plunder"
	case SAPreparer:
		return "Preparer la Guerre"
	default:
		return "None"
	}
}

// LeaderName identifies one of the nine named leaders.
type LeaderName int

const (
	Washington LeaderName = iota
	Rochambeau
	Lauzun
	Gage
	Howe
	Clinton
	Brant
	Cornplanter
	DraggingCanoe
	NumLeaders
)

func (l LeaderName) String() string {
	switch l {
	case Washington:
		return "Washington"
	case Rochambeau:
		return "Rochambeau"
	case Lauzun:
		return "Lauzun"
	case Gage:
		return "Gage"
	case Howe:
		return "Howe"
	case Clinton:
		return "Clinton"
	case Brant:
		return "Brant"
	case Cornplanter:
		return "Cornplanter"
	case DraggingCanoe:
		return "Dragging Canoe"
	default:
		return "Unknown"
	}
}

// Side returns the coalition the leader serves.
func (l LeaderName) Side() Side {
	switch l {
	case Washington, Rochambeau, Lauzun:
		return Rebellion
	default:
		return Royalist
	}
}

// TerrainType classifies a map space.
type TerrainType int

const (
	City TerrainType = iota
	Colony
	Reserve
)

func (t TerrainType) String() string {
	switch t {
	case City:
		return "City"
	case Colony:
		return "Colony"
	case Reserve:
		return "Indian Reserve"
	default:
		return "Unknown"
	}
}

// MaxResources caps every faction's resource track.
const MaxResources = 50

// MaxNavalIntervention caps the French naval intervention level.
const MaxNavalIntervention = 3

// Marker pool sizes.
const (
	BlockadeMarkers   = 3
	PropagandaMarkers = 12
	RaidMarkers       = 12
)
