package game

// SpaceID indexes the canonical map spaces. The declaration order is the
// canonical space ordering used for deterministic tie-breaking everywhere.
type SpaceID int

const (
	QuebecCity SpaceID = iota
	Boston
	NewYorkCity
	Philadelphia
	Norfolk
	CharlesTown
	Savannah
	Quebec
	Northwest
	Southwest
	Florida
	NewHampshire
	Massachusetts
	ConnecticutRhodeIsland
	NewYork
	NewJersey
	Pennsylvania
	MarylandDelaware
	Virginia
	NorthCarolina
	SouthCarolina
	Georgia
	NumSpaces

	// WestIndies is the off-map holding box for Blockade markers and the
	// British Squadron. It is not one of the 22 land spaces.
	WestIndies SpaceID = 99

	// NoSpace marks an absent optional space choice.
	NoSpace SpaceID = -1
)

func (s SpaceID) String() string {
	if s == WestIndies {
		return "West Indies"
	}
	if s < 0 || s >= NumSpaces {
		return "Unknown"
	}
	return spaceTable[s].Name
}

// SpaceInfo is the static description of one map space.
type SpaceInfo struct {
	Name       string
	Terrain    TerrainType
	Population int
	Adjacent   []SpaceID
}

var spaceTable = [NumSpaces]SpaceInfo{
	QuebecCity: {"Quebec City", City, 1, []SpaceID{Quebec}},
	Boston:     {"Boston", City, 2, []SpaceID{Massachusetts}},
	NewYorkCity: {"New York City", City, 2,
		[]SpaceID{NewYork, NewJersey, ConnecticutRhodeIsland}},
	Philadelphia: {"Philadelphia", City, 3,
		[]SpaceID{Pennsylvania, NewJersey, MarylandDelaware}},
	Norfolk:     {"Norfolk", City, 1, []SpaceID{Virginia, NorthCarolina}},
	CharlesTown: {"Charles Town", City, 2, []SpaceID{SouthCarolina}},
	Savannah:    {"Savannah", City, 1, []SpaceID{Georgia}},

	Quebec: {"Quebec", Colony, 1,
		[]SpaceID{QuebecCity, Northwest, NewHampshire, NewYork}},
	Northwest: {"Northwest", Reserve, 0,
		[]SpaceID{Quebec, NewYork, Pennsylvania, Virginia, Southwest}},
	Southwest: {"Southwest", Reserve, 0,
		[]SpaceID{Northwest, Virginia, NorthCarolina, SouthCarolina, Georgia, Florida}},
	Florida:      {"Florida", Colony, 0, []SpaceID{Georgia, Southwest}},
	NewHampshire: {"New Hampshire", Colony, 1, []SpaceID{Quebec, Massachusetts}},
	Massachusetts: {"Massachusetts", Colony, 2,
		[]SpaceID{NewHampshire, Boston, ConnecticutRhodeIsland, NewYork}},
	ConnecticutRhodeIsland: {"Connecticut-Rhode Island", Colony, 2,
		[]SpaceID{Massachusetts, NewYork, NewYorkCity}},
	NewYork: {"New York", Colony, 2,
		[]SpaceID{Quebec, Northwest, Massachusetts, ConnecticutRhodeIsland, NewJersey, Pennsylvania, NewYorkCity}},
	NewJersey: {"New Jersey", Colony, 1,
		[]SpaceID{NewYork, NewYorkCity, Pennsylvania, Philadelphia, MarylandDelaware}},
	Pennsylvania: {"Pennsylvania", Colony, 2,
		[]SpaceID{NewYork, NewJersey, Northwest, MarylandDelaware, Virginia, Philadelphia}},
	MarylandDelaware: {"Maryland-Delaware", Colony, 2,
		[]SpaceID{Pennsylvania, NewJersey, Philadelphia, Virginia}},
	Virginia: {"Virginia", Colony, 3,
		[]SpaceID{MarylandDelaware, Pennsylvania, Northwest, Southwest, NorthCarolina, Norfolk}},
	NorthCarolina: {"North Carolina", Colony, 2,
		[]SpaceID{Virginia, Norfolk, Southwest, SouthCarolina}},
	SouthCarolina: {"South Carolina", Colony, 1,
		[]SpaceID{NorthCarolina, Southwest, Georgia, CharlesTown}},
	Georgia: {"Georgia", Colony, 1,
		[]SpaceID{SouthCarolina, Southwest, Florida, Savannah}},
}

// SpaceName returns the display name of a space.
func SpaceName(s SpaceID) string { return s.String() }

// SpaceTerrain returns the terrain class of a space.
func SpaceTerrain(s SpaceID) TerrainType { return spaceTable[s].Terrain }

// SpacePopulation returns the population value of a space.
func SpacePopulation(s SpaceID) int {
	if s == WestIndies {
		return 0
	}
	return spaceTable[s].Population
}

// Adjacent returns the neighbours of a space in canonical order.
func Adjacent(s SpaceID) []SpaceID {
	adj := spaceTable[s].Adjacent
	out := make([]SpaceID, len(adj))
	copy(out, adj)
	return out
}

// IsAdjacent reports whether a and b share a map border.
func IsAdjacent(a, b SpaceID) bool {
	for _, n := range spaceTable[a].Adjacent {
		if n == b {
			return true
		}
	}
	return false
}

// IsCity reports whether the space is a City.
func IsCity(s SpaceID) bool {
	return s != WestIndies && spaceTable[s].Terrain == City
}

// IsProvince reports whether the space is a Colony or Indian Reserve.
func IsProvince(s SpaceID) bool {
	return s != WestIndies && spaceTable[s].Terrain != City
}

// IsReserve reports whether the space is an Indian Reserve.
func IsReserve(s SpaceID) bool {
	return s != WestIndies && spaceTable[s].Terrain == Reserve
}

// AllSpaces returns every land space in canonical order.
func AllSpaces() []SpaceID {
	out := make([]SpaceID, NumSpaces)
	for i := range out {
		out[i] = SpaceID(i)
	}
	return out
}

// spaceByName resolves display names back to ids, for the snapshot boundary.
var spaceByName = func() map[string]SpaceID {
	m := make(map[string]SpaceID, NumSpaces+1)
	for i := SpaceID(0); i < NumSpaces; i++ {
		m[spaceTable[i].Name] = i
	}
	m["West Indies"] = WestIndies
	return m
}()

// LookupSpace resolves a display name to a SpaceID.
func LookupSpace(name string) (SpaceID, bool) {
	s, ok := spaceByName[name]
	return s, ok
}
