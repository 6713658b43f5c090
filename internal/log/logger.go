package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	who := e.Faction
	if who == "" {
		who = "-"
	}
	// Pad faction to 8 chars for alignment
	for len(who) < 8 {
		who += " "
	}
	return fmt.Sprintf("C%-3d %s| %s", e.Card, who, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCardDrawnEvent(card int, title string, upcoming string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventCardDrawn,
		Details: fmt.Sprintf("=== Card #%d %s (next: %s) ===", card, title, upcoming),
	}
}

func NewEligibilityEvent(card int, order string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventEligibility,
		Details: fmt.Sprintf("eligible: %s", order),
	}
}

func NewPassEvent(card int, faction string, gain int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventPass,
		Details: fmt.Sprintf("%s passes (+%d resources)", faction, gain),
	}
}

func NewCommandEvent(card int, faction, command string, spaces []string, cost int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventCommand,
		Details: fmt.Sprintf("%s executes %s in [%s] for %d", faction, command, strings.Join(spaces, ", "), cost),
	}
}

func NewSpecialActivityEvent(card int, faction, activity, details string) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventSpecialActivity,
		Details: fmt.Sprintf("%s uses %s: %s", faction, activity, details),
	}
}

func NewEventPlayedEvent(card int, faction, title string, shaded bool) GameEvent {
	text := "unshaded"
	if shaded {
		text = "shaded"
	}
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventEventPlayed,
		Details: fmt.Sprintf("%s plays the %s event of %s", faction, text, title),
	}
}

func NewBattleEvent(card int, attacker, space string, attForce, defForce int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: attacker,
		Type:    EventBattle,
		Space:   space,
		Details: fmt.Sprintf("%s attacks in %s (force %d vs %d)", attacker, space, attForce, defForce),
	}
}

func NewBattleResultEvent(card int, space, winner string, attLost, defLost int) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventBattleResult,
		Space:   space,
		Details: fmt.Sprintf("battle in %s: %s wins (attacker lost %d, defender lost %d)", space, winner, attLost, defLost),
	}
}

func NewDieRollEvent(card int, faction, reason string, result int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventDieRoll,
		Details: fmt.Sprintf("%s rolls %d (%s)", faction, result, reason),
	}
}

func NewSupportShiftEvent(card int, space, from, to string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventSupportShift,
		Space:   space,
		Details: fmt.Sprintf("%s: %s -> %s", space, from, to),
	}
}

func NewPiecesPlacedEvent(card int, faction, piece, space string, n int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventPiecesPlaced,
		Space:   space,
		Details: fmt.Sprintf("%s places %dx %s in %s", faction, n, piece, space),
	}
}

func NewPiecesRemovedEvent(card int, piece, space, dest string, n int) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventPiecesRemoved,
		Space:   space,
		Details: fmt.Sprintf("%dx %s removed from %s to %s", n, piece, space, dest),
	}
}

func NewPiecesMovedEvent(card int, faction, piece, from, to string, n int) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventPiecesMoved,
		Space:   to,
		Details: fmt.Sprintf("%s moves %dx %s from %s to %s", faction, n, piece, from, to),
	}
}

func NewResourceChangeEvent(card int, faction string, delta, total int) GameEvent {
	sign := "+"
	if delta < 0 {
		sign = ""
	}
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventResourceChange,
		Details: fmt.Sprintf("%s resources %s%d (now %d)", faction, sign, delta, total),
	}
}

func NewMarkerEvent(card int, marker, space, action string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventMarker,
		Space:   space,
		Details: fmt.Sprintf("%s marker %s in %s", marker, action, space),
	}
}

func NewNavalInterventionEvent(card int, level int) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventNavalIntervention,
		Details: fmt.Sprintf("naval intervention level now %d", level),
	}
}

func NewTreatyEvent(card int) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventTreaty,
		Details: "the Treaty of Alliance is signed",
	}
}

func NewLeaderEvent(card int, leader, space string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventLeader,
		Space:   space,
		Details: fmt.Sprintf("%s is now in %s", leader, space),
	}
}

func NewIllegalActionEvent(card int, faction, attempted string) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: faction,
		Type:    EventIllegalAction,
		Details: fmt.Sprintf("%s attempted illegal %s; treated as pass", faction, attempted),
	}
}

func NewWinterQuartersEvent(card int, title string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventWinterQuarters,
		Details: fmt.Sprintf("%s surfaces; resolving the year end", title),
	}
}

func NewYearEndEvent(card int, year int, details string) GameEvent {
	return GameEvent{
		Card:    card,
		Type:    EventYearEnd,
		Details: fmt.Sprintf("year %d ends: %s", year, details),
	}
}

func NewVictoryEvent(card int, winner, reason string) GameEvent {
	return GameEvent{
		Card:    card,
		Faction: winner,
		Type:    EventVictory,
		Details: fmt.Sprintf("%s wins (%s)", winner, reason),
	}
}
