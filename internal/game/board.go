package game

import "fmt"

// Zone names the exclusive location classes a piece can occupy.
type Zone int

const (
	ZoneMap Zone = iota
	ZoneAvailable
	ZoneCasualties
	ZoneUnavailable
)

func (z Zone) String() string {
	switch z {
	case ZoneMap:
		return "map"
	case ZoneAvailable:
		return "available"
	case ZoneCasualties:
		return "casualties"
	case ZoneUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// LeaderOffMap marks a leader who is not currently on the board.
const LeaderOffMap SpaceID = -2

// InvariantError is a fatal piece-ledger violation. It is raised before any
// partial mutation, so the board is still coherent when it surfaces.
type InvariantError struct {
	Op    string
	Piece PieceType
	Space SpaceID
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation in %s: %s at %s: %s",
		e.Op, e.Piece, e.Space, e.Msg)
}

// Board is the complete physical game state: the piece ledger, the political
// tracks, markers, leaders, and the naval situation. Turn sequencing and the
// deck live in Game.
type Board struct {
	// Piece ledger. Every piece of a type is in exactly one of these.
	Pieces      [NumSpaces][NumPieceTypes]int
	Available   [NumPieceTypes]int
	Casualties  [NumPieceTypes]int
	Unavailable [NumPieceTypes]int

	// Cumulative battle casualty counters feeding the victory margins.
	CumBritishCasualties int
	CumRebelCasualties   int

	Support   [NumSpaces]SupportLevel
	Resources [NumFactions]int

	// Markers. Blockades sit on Cities or in the West Indies pool;
	// Propaganda and Raid markers sit on spaces or in their pools.
	Blockade            [NumSpaces]bool
	BlockadePool        int // in the West Indies box
	BlockadeUnavailable int
	Propaganda          [NumSpaces]bool
	PropagandaPool      int
	RaidMarker          [NumSpaces]bool
	RaidPool            int

	// Squadron marks the British fleet holding the West Indies.
	Squadron bool

	// Leader locations; LeaderOffMap when not in play.
	Leaders [NumLeaders]SpaceID

	// French Naval Intervention level (0..3) and the Treaty of Alliance.
	NavalIntervention int
	TreatyOfAlliance  bool

	Year int
}

// NewBoard returns an empty board with every piece Available, all markers
// pooled, neutral support, and no leaders placed.
func NewBoard() *Board {
	b := &Board{
		PropagandaPool: PropagandaMarkers,
		RaidPool:       RaidMarkers,
		BlockadePool:   0,
	}
	b.BlockadeUnavailable = BlockadeMarkers
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if p == MilitiaUnderground || p == WarPartyUnderground {
			continue
		}
		b.Available[p] = pieceCaps[p]
	}
	for l := range b.Leaders {
		b.Leaders[l] = LeaderOffMap
	}
	return b
}

// Clone returns a deep copy for bot sandboxing.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// --- Ledger mutations ---

// PlacePiece moves one piece from Available onto the map.
func (b *Board) PlacePiece(p PieceType, s SpaceID) error {
	if b.Available[p] <= 0 {
		return &InvariantError{"PlacePiece", p, s, "none available"}
	}
	if p.IsBase() && b.BaseCount(s) >= 2 {
		return &InvariantError{"PlacePiece", p, s, "base stacking limit reached"}
	}
	b.Available[p]--
	b.Pieces[s][p]++
	return nil
}

// RemovePiece moves one piece from the map into the given zone, crediting
// the cumulative casualty counters when it lands in Casualties.
func (b *Board) RemovePiece(p PieceType, s SpaceID, to Zone) error {
	if b.Pieces[s][p] <= 0 {
		return &InvariantError{"RemovePiece", p, s, "no such piece in space"}
	}
	b.Pieces[s][p]--
	switch to {
	case ZoneAvailable:
		b.Available[p]++
	case ZoneCasualties:
		b.Casualties[p]++
		switch SideOf(p.Owner()) {
		case Royalist:
			b.CumBritishCasualties++
		case Rebellion:
			b.CumRebelCasualties++
		}
	case ZoneUnavailable:
		b.Unavailable[p]++
	default:
		b.Pieces[s][p]++
		return &InvariantError{"RemovePiece", p, s, "bad destination zone"}
	}
	return nil
}

// MovePiece relocates one piece between map spaces.
func (b *Board) MovePiece(p PieceType, from, to SpaceID) error {
	if b.Pieces[from][p] <= 0 {
		return &InvariantError{"MovePiece", p, from, "no such piece in space"}
	}
	if p.IsBase() {
		return &InvariantError{"MovePiece", p, from, "bases never move"}
	}
	b.Pieces[from][p]--
	b.Pieces[to][p]++
	return nil
}

// FlipPiece converts between the two states of a dual-state piece.
func (b *Board) FlipPiece(from, to PieceType, s SpaceID, n int) error {
	if poolKey(from) != poolKey(to) || from == to {
		return &InvariantError{"FlipPiece", from, s, "not a flip pair"}
	}
	if b.Pieces[s][from] < n {
		return &InvariantError{"FlipPiece", from, s,
			fmt.Sprintf("want %d, have %d", n, b.Pieces[s][from])}
	}
	b.Pieces[s][from] -= n
	b.Pieces[s][to] += n
	return nil
}

// partnerState returns the other state of a dual-state piece, or p
// itself for single-state pieces.
func partnerState(p PieceType) PieceType {
	switch p {
	case MilitiaActive:
		return MilitiaUnderground
	case MilitiaUnderground:
		return MilitiaActive
	case WarPartyActive:
		return WarPartyUnderground
	case WarPartyUnderground:
		return WarPartyActive
	}
	return p
}

// EnsureAvailable readies one piece of type p in Available, converting
// from the partner state's box when p's own is empty. It reports whether
// a piece is ready to place.
func (b *Board) EnsureAvailable(p PieceType) bool {
	if b.Available[p] > 0 {
		return true
	}
	q := partnerState(p)
	if q == p || b.Available[q] == 0 {
		return false
	}
	b.Available[q]--
	b.Available[p]++
	return true
}

// ReturnCasualty moves one piece from Casualties back to Available.
func (b *Board) ReturnCasualty(p PieceType) error {
	if b.Casualties[p] <= 0 {
		return &InvariantError{"ReturnCasualty", p, WestIndies, "none in casualties"}
	}
	b.Casualties[p]--
	b.Available[p]++
	return nil
}

// Mobilize moves pieces from Unavailable to Available.
func (b *Board) Mobilize(p PieceType, n int) error {
	if b.Unavailable[p] < n {
		return &InvariantError{"Mobilize", p, WestIndies, "not enough unavailable"}
	}
	b.Unavailable[p] -= n
	b.Available[p] += n
	return nil
}

// CheckConservation verifies every piece pool sums to its box total.
func (b *Board) CheckConservation() error {
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if poolKey(p) != p {
			continue // counted with its pool partner
		}
		total := b.Available[p] + b.Casualties[p] + b.Unavailable[p]
		for s := SpaceID(0); s < NumSpaces; s++ {
			total += b.Pieces[s][p]
		}
		// Fold in the partner state of a dual-state pool.
		for q := PieceType(0); q < NumPieceTypes; q++ {
			if q != p && poolKey(q) == p {
				total += b.Available[q] + b.Casualties[q] + b.Unavailable[q]
				for s := SpaceID(0); s < NumSpaces; s++ {
					total += b.Pieces[s][q]
				}
			}
		}
		if total != pieceCaps[p] {
			return &InvariantError{"CheckConservation", p, WestIndies,
				fmt.Sprintf("pool sums to %d, box holds %d", total, pieceCaps[p])}
		}
	}
	return nil
}

// --- Resources and support ---

// AddResources credits a faction, clamping to the 0..MaxResources track.
func (b *Board) AddResources(f Faction, n int) {
	b.Resources[f] += n
	if b.Resources[f] > MaxResources {
		b.Resources[f] = MaxResources
	}
	if b.Resources[f] < 0 {
		b.Resources[f] = 0
	}
}

// Pay debits a faction; it reports false and leaves the track untouched
// when the faction cannot afford the cost.
func (b *Board) Pay(f Faction, cost int) bool {
	if b.Resources[f] < cost {
		return false
	}
	b.Resources[f] -= cost
	return true
}

// ShiftSupport moves a space's support by delta, clamped to the track.
func (b *Board) ShiftSupport(s SpaceID, delta int) {
	b.Support[s] = (b.Support[s] + SupportLevel(delta)).Clamp()
}

// --- Derived queries ---

// BaseCount counts Forts and Villages in a space.
func (b *Board) BaseCount(s SpaceID) int {
	n := 0
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if p.IsBase() {
			n += b.Pieces[s][p]
		}
	}
	return n
}

// SidePieces counts all pieces of a coalition in a space.
func (b *Board) SidePieces(side Side, s SpaceID) int {
	n := 0
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if SideOf(p.Owner()) == side {
			n += b.Pieces[s][p]
		}
	}
	return n
}

// FactionPieces counts all pieces a faction owns in a space.
func (b *Board) FactionPieces(f Faction, s SpaceID) int {
	n := 0
	for p := PieceType(0); p < NumPieceTypes; p++ {
		if p.Owner() == f {
			n += b.Pieces[s][p]
		}
	}
	return n
}

// BritishCubes counts British Regulars and Tories in a space.
func (b *Board) BritishCubes(s SpaceID) int {
	return b.Pieces[s][BritishRegular] + b.Pieces[s][Tory]
}

// RebelCubes counts Continentals and French Regulars in a space.
func (b *Board) RebelCubes(s SpaceID) int {
	return b.Pieces[s][Continental] + b.Pieces[s][FrenchRegular]
}

// ControlOf derives the controller of a space. Rebellion controls when its
// pieces outnumber the Royalists'; the British control when Royalist pieces
// outnumber the Rebellion's and at least one British cube is present.
func (b *Board) ControlOf(s SpaceID) Side {
	reb := b.SidePieces(Rebellion, s)
	roy := b.SidePieces(Royalist, s)
	switch {
	case reb > roy:
		return Rebellion
	case roy > reb && b.BritishCubes(s) > 0:
		return Royalist
	default:
		return NoSide
	}
}

// LeaderAt reports whether any leader of the given coalition is in a space.
func (b *Board) LeaderAt(side Side, s SpaceID) bool {
	for l := LeaderName(0); l < NumLeaders; l++ {
		if b.Leaders[l] == s && l.Side() == side {
			return true
		}
	}
	return false
}

// LeaderIn reports whether the named leader occupies the space.
func (b *Board) LeaderIn(l LeaderName, s SpaceID) bool {
	return b.Leaders[l] == s
}

// PlaceLeader puts a leader on a space (or removes it via LeaderOffMap).
func (b *Board) PlaceLeader(l LeaderName, s SpaceID) {
	b.Leaders[l] = s
}

// --- Marker handling ---

// PlaceBlockade moves a Blockade marker from the West Indies pool to a City.
func (b *Board) PlaceBlockade(city SpaceID) error {
	if !IsCity(city) {
		return &InvariantError{"PlaceBlockade", BritishRegular, city, "not a City"}
	}
	if b.BlockadePool <= 0 {
		return &InvariantError{"PlaceBlockade", BritishRegular, city, "pool empty"}
	}
	if b.Blockade[city] {
		return &InvariantError{"PlaceBlockade", BritishRegular, city, "already blockaded"}
	}
	b.BlockadePool--
	b.Blockade[city] = true
	return nil
}

// LiftBlockade returns a City's Blockade marker to the West Indies pool.
func (b *Board) LiftBlockade(city SpaceID) error {
	if !b.Blockade[city] {
		return &InvariantError{"LiftBlockade", BritishRegular, city, "no blockade"}
	}
	b.Blockade[city] = false
	b.BlockadePool++
	return nil
}

// BlockadedCities lists Cities under Blockade in canonical order.
func (b *Board) BlockadedCities() []SpaceID {
	var out []SpaceID
	for s := SpaceID(0); s < NumSpaces; s++ {
		if b.Blockade[s] {
			out = append(out, s)
		}
	}
	return out
}

// PlacePropaganda puts a Propaganda marker on a space if the pool allows.
func (b *Board) PlacePropaganda(s SpaceID) bool {
	if b.PropagandaPool <= 0 || b.Propaganda[s] {
		return false
	}
	b.PropagandaPool--
	b.Propaganda[s] = true
	return true
}

// RemovePropaganda returns a space's Propaganda marker to the pool.
func (b *Board) RemovePropaganda(s SpaceID) bool {
	if !b.Propaganda[s] {
		return false
	}
	b.Propaganda[s] = false
	b.PropagandaPool++
	return true
}

// PlaceRaidMarker puts a Raid marker on a space if the pool allows.
func (b *Board) PlaceRaidMarker(s SpaceID) bool {
	if b.RaidPool <= 0 || b.RaidMarker[s] {
		return false
	}
	b.RaidPool--
	b.RaidMarker[s] = true
	return true
}

// RemoveRaidMarker returns a space's Raid marker to the pool.
func (b *Board) RemoveRaidMarker(s SpaceID) bool {
	if !b.RaidMarker[s] {
		return false
	}
	b.RaidMarker[s] = false
	b.RaidPool++
	return true
}
