package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventCardDrawn EventType = iota
	EventEligibility
	EventPass
	EventCommand
	EventSpecialActivity
	EventEventPlayed
	EventBattle
	EventBattleResult
	EventDieRoll
	EventSupportShift
	EventPiecesPlaced
	EventPiecesRemoved
	EventPiecesMoved
	EventResourceChange
	EventMarker
	EventNavalIntervention
	EventTreaty
	EventLeader
	EventIllegalAction
	EventWinterQuarters
	EventYearEnd
	EventVictory
)

func (e EventType) String() string {
	switch e {
	case EventCardDrawn:
		return "CardDrawn"
	case EventEligibility:
		return "Eligibility"
	case EventPass:
		return "Pass"
	case EventCommand:
		return "Command"
	case EventSpecialActivity:
		return "SpecialActivity"
	case EventEventPlayed:
		return "EventPlayed"
	case EventBattle:
		return "Battle"
	case EventBattleResult:
		return "BattleResult"
	case EventDieRoll:
		return "DieRoll"
	case EventSupportShift:
		return "SupportShift"
	case EventPiecesPlaced:
		return "PiecesPlaced"
	case EventPiecesRemoved:
		return "PiecesRemoved"
	case EventPiecesMoved:
		return "PiecesMoved"
	case EventResourceChange:
		return "ResourceChange"
	case EventMarker:
		return "Marker"
	case EventNavalIntervention:
		return "NavalIntervention"
	case EventTreaty:
		return "Treaty"
	case EventLeader:
		return "Leader"
	case EventIllegalAction:
		return "IllegalAction"
	case EventWinterQuarters:
		return "WinterQuarters"
	case EventYearEnd:
		return "YearEnd"
	case EventVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Card    int       // current card id (0 before the first draw)
	Faction string    // acting faction ("" for neutral events)
	Type    EventType // event type
	Space   string    // affected space (if applicable)
	Details string    // human-readable detail string
}
