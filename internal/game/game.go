package game

import (
	"context"
	"errors"
	"strings"

	"github.com/peterkuimelis/lodx/internal/log"
)

// SlotOption enumerates what a faction may do with the current card slot.
type SlotOption int

const (
	OptPass SlotOption = iota
	OptEvent
	OptCommandSA
	OptCommandOnly
	OptLimitedCommand
)

func (o SlotOption) String() string {
	switch o {
	case OptPass:
		return "Pass"
	case OptEvent:
		return "Event"
	case OptCommandSA:
		return "Command + Special Activity"
	case OptCommandOnly:
		return "Command"
	case OptLimitedCommand:
		return "Limited Command"
	default:
		return "Unknown"
	}
}

// ActionType classifies a faction's choice for its slot.
type ActionType int

const (
	ActPass ActionType = iota
	ActEvent
	ActCommand
)

// Action is a faction's fully specified choice for one card slot.
type Action struct {
	Type ActionType

	// Event fields.
	Shaded bool

	// Command fields. SA is NoSA when the Command stands alone.
	Command *CommandPlan
	SA      *SAPlan
}

// PlayerController supplies decisions for one faction. Bot controllers
// decide from the board; interactive ones block on a human or a wire
// protocol, hence the context.
type PlayerController interface {
	Name() string
	ChooseAction(ctx context.Context, g *Game, f Faction, opts []SlotOption) (*Action, error)
}

// passAward is each faction's resource income for passing.
var passAward = [NumFactions]int{British: 2, Patriots: 1, Indians: 1, French: 2}

// Game owns the deck, the turn sequencer, and the board. All mutation
// funnels through it so the event log stays complete.
type Game struct {
	Board  *Board
	Roller *Roller
	Logger log.EventLogger

	deck []int
	pos  int // deck[pos] is the current card

	Eligible       [NumFactions]bool
	remainEligible [NumFactions]bool

	controllers [NumFactions]PlayerController

	Over   bool
	Winner Faction
}

// NewGame builds a seeded game. The deck is assembled per year: that
// year's events shuffled with its Winter Quarters card slipped into the
// bottom half, so the year's end is never seen coming.
func NewGame(seed int64, logger log.EventLogger) *Game {
	g := &Game{
		Board:  NewBoard(),
		Roller: NewRoller(seed),
		Logger: logger,
		Winner: NoFaction,
	}
	for f := Faction(0); f < NumFactions; f++ {
		g.Eligible[f] = true
	}
	g.deck = g.buildDeck()
	g.Board.Year = 1775
	setupBoard(g.Board)
	return g
}

// SetController assigns a faction's decision maker.
func (g *Game) SetController(f Faction, c PlayerController) {
	g.controllers[f] = c
}

// Controller returns the faction's decision maker.
func (g *Game) Controller(f Faction) PlayerController {
	return g.controllers[f]
}

func (g *Game) buildDeck() []int {
	var deck []int
	for year := 0; year < 8; year++ {
		pile := make([]int, 0, 13)
		for id := year*12 + 1; id <= year*12+12; id++ {
			pile = append(pile, id)
		}
		g.Roller.Shuffle(pile)
		// The Winter Quarters card hides somewhere in the bottom half.
		wq := 97 + year
		at := 6 + g.Roller.roll(6, "winter quarters placement") - 1
		pile = append(pile[:at], append([]int{wq}, pile[at:]...)...)
		deck = append(deck, pile...)
	}
	return deck
}

// setupBoard lays out the 1775 start: the British hold the coastal
// cities, the Patriots ring Boston, and the tribes hold their Reserves.
func setupBoard(b *Board) {
	place := func(p PieceType, s SpaceID, n int) {
		for i := 0; i < n; i++ {
			b.EnsureAvailable(p)
			if err := b.PlacePiece(p, s); err != nil {
				panic(err)
			}
		}
	}
	place(BritishRegular, Boston, 4)
	place(BritishRegular, NewYorkCity, 2)
	place(BritishRegular, QuebecCity, 2)
	place(Tory, NewYorkCity, 2)
	place(Tory, CharlesTown, 1)
	place(Tory, Savannah, 1)
	place(BritishFort, NewYorkCity, 1)

	place(Continental, Massachusetts, 3)
	place(MilitiaUnderground, Massachusetts, 2)
	place(MilitiaUnderground, ConnecticutRhodeIsland, 2)
	place(MilitiaUnderground, Virginia, 2)
	place(MilitiaUnderground, Pennsylvania, 1)
	place(PatriotFort, Massachusetts, 1)

	place(WarPartyUnderground, Northwest, 3)
	place(WarPartyUnderground, Southwest, 3)
	place(Village, Northwest, 1)
	place(Village, Southwest, 1)

	// The expeditionary force waits on events in Europe.
	for i := 0; i < pieceCaps[FrenchRegular]; i++ {
		b.Available[FrenchRegular]--
		b.Unavailable[FrenchRegular]++
	}

	b.Support[Massachusetts] = ActiveOpposition
	b.Support[ConnecticutRhodeIsland] = PassiveOpposition
	b.Support[Virginia] = PassiveOpposition
	b.Support[Boston] = PassiveSupport
	b.Support[NewYorkCity] = PassiveSupport
	b.Support[QuebecCity] = ActiveSupport
	b.Support[CharlesTown] = PassiveSupport

	b.Resources[British] = 10
	b.Resources[Patriots] = 5
	b.Resources[Indians] = 4
	b.Resources[French] = 4

	b.Squadron = true
	b.PlaceLeader(Gage, Boston)
	b.PlaceLeader(Washington, Massachusetts)
	b.PlaceLeader(Brant, Northwest)
	b.PlaceLeader(DraggingCanoe, Southwest)
}

// CurrentCardID returns the id of the card in play, or 0 before the
// first draw and after the deck runs out.
func (g *Game) CurrentCardID() int {
	if g.pos >= len(g.deck) {
		return 0
	}
	return g.deck[g.pos]
}

// UpcomingCardID returns the face-up next card, or 0 when none remains.
func (g *Game) UpcomingCardID() int {
	if g.pos+1 >= len(g.deck) {
		return 0
	}
	return g.deck[g.pos+1]
}

func (g *Game) logEvent(e log.GameEvent) {
	if g.Logger != nil {
		g.Logger.Log(e)
	}
}

// logCommand records a Command execution against the current card.
func (g *Game) logCommand(f Faction, c CommandType, spaces []SpaceID, cost int) {
	names := make([]string, len(spaces))
	for i, s := range spaces {
		names[i] = s.String()
	}
	g.logEvent(log.NewCommandEvent(g.CurrentCardID(), f.String(), c.String(), names, cost))
}

// Run plays cards until the deck runs out or a faction wins. The context
// cancels long-running interactive games.
func (g *Game) Run(ctx context.Context) error {
	for !g.Over && g.pos < len(g.deck) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.PlayCard(ctx); err != nil {
			return err
		}
	}
	if !g.Over {
		g.finalScoring()
	}
	return nil
}

// PlayCard resolves one card: the Winter Quarters swap, the eligibility
// walk, and the eligibility reset for the next card.
func (g *Game) PlayCard(ctx context.Context) error {
	// A Winter Quarters card surfacing as the upcoming card jumps the
	// queue: winter arrives before the plans laid for the current card.
	if up := g.UpcomingCardID(); up != 0 && LookupCard(up).WinterQuarters {
		g.deck[g.pos], g.deck[g.pos+1] = g.deck[g.pos+1], g.deck[g.pos]
	}
	c := LookupCard(g.CurrentCardID())
	upTitle := "none"
	if up := g.UpcomingCardID(); up != 0 {
		upTitle = LookupCard(up).Title
	}
	g.logEvent(log.NewCardDrawnEvent(c.ID, c.Title, upTitle))

	if c.WinterQuarters {
		g.resolveWinterQuarters(c)
		g.pos++
		return nil
	}

	order := FactionOrder(c)
	var names []string
	for _, f := range order {
		if g.Eligible[f] {
			names = append(names, f.String())
		}
	}
	g.logEvent(log.NewEligibilityEvent(c.ID, strings.Join(names, " > ")))

	executed := make([]Faction, 0, 2)
	var firstAction *Action
	for _, f := range order {
		if g.Over || len(executed) == 2 {
			break
		}
		if !g.Eligible[f] {
			continue
		}
		opts := g.slotOptions(len(executed), firstAction)
		act, err := g.chooseAction(ctx, f, opts)
		if err != nil {
			return err
		}
		applied, err := g.applyAction(f, act, opts)
		if err != nil {
			return err
		}
		if applied {
			executed = append(executed, f)
			if firstAction == nil {
				firstAction = act
			}
		}
	}

	for f := Faction(0); f < NumFactions; f++ {
		g.Eligible[f] = true
	}
	for _, f := range executed {
		if !g.remainEligible[f] {
			g.Eligible[f] = false
		}
		g.remainEligible[f] = false
	}
	g.pos++
	return nil
}

// slotOptions is the option menu for the slot: the first executor has
// the full menu; the second's depends on what the first did.
func (g *Game) slotOptions(execCount int, first *Action) []SlotOption {
	if execCount == 0 {
		return []SlotOption{OptPass, OptEvent, OptCommandSA, OptCommandOnly}
	}
	if first.Type == ActEvent {
		return []SlotOption{OptPass, OptCommandSA, OptCommandOnly}
	}
	if first.SA != nil {
		return []SlotOption{OptPass, OptLimitedCommand, OptEvent}
	}
	return []SlotOption{OptPass, OptLimitedCommand}
}

func (g *Game) chooseAction(ctx context.Context, f Faction, opts []SlotOption) (*Action, error) {
	ctrl := g.controllers[f]
	if ctrl == nil {
		return &Action{Type: ActPass}, nil
	}
	act, err := ctrl.ChooseAction(ctx, g, f, opts)
	if err != nil {
		return nil, err
	}
	if act == nil {
		act = &Action{Type: ActPass}
	}
	return act, nil
}

// applyAction resolves one faction's choice. It reports whether the slot
// was consumed: a pass leaves the slot open for the next eligible
// faction, and an illegal action degrades to a pass without the award.
func (g *Game) applyAction(f Faction, act *Action, opts []SlotOption) (bool, error) {
	switch act.Type {
	case ActPass:
		g.Board.AddResources(f, passAward[f])
		g.logEvent(log.NewPassEvent(g.CurrentCardID(), f.String(), passAward[f]))
		return false, nil

	case ActEvent:
		if !hasOption(opts, OptEvent) {
			g.logEvent(log.NewIllegalActionEvent(g.CurrentCardID(), f.String(), "event"))
			return false, nil
		}
		err := g.ExecuteEvent(f, g.CurrentCardID(), act.Shaded)
		if errors.Is(err, ErrIllegalAction) {
			g.logEvent(log.NewIllegalActionEvent(g.CurrentCardID(), f.String(), "event"))
			return false, nil
		}
		return err == nil, err

	case ActCommand:
		if act.Command == nil {
			g.logEvent(log.NewIllegalActionEvent(g.CurrentCardID(), f.String(), "command"))
			return false, nil
		}
		tc := NewTurnContext()
		tc.Limited = hasOption(opts, OptLimitedCommand)
		withSA := act.SA != nil
		if withSA && (tc.Limited || !hasOption(opts, OptCommandSA)) {
			g.logEvent(log.NewIllegalActionEvent(g.CurrentCardID(), f.String(),
				"special activity"))
			return false, nil
		}
		// An activity that prepares the Command runs first; the rest
		// follow the Command.
		if withSA && saLeads(act.SA.Type) {
			if _, err := g.ExecuteSA(act.SA, tc); err != nil {
				return false, err
			}
			withSA = false
		}
		err := g.Execute(act.Command, tc)
		if errors.Is(err, ErrIllegalAction) {
			g.logEvent(log.NewIllegalActionEvent(g.CurrentCardID(), f.String(),
				act.Command.Type.String()))
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if withSA {
			if _, err := g.ExecuteSA(act.SA, tc); err != nil {
				return false, err
			}
		}
		return true, nil
	}
	return false, nil
}

// saLeads reports whether the activity resolves before its Command.
// Common Cause lends War Parties that the Command then spends.
func saLeads(t SAType) bool {
	return t == SACommonCause
}

func hasOption(opts []SlotOption, o SlotOption) bool {
	for _, x := range opts {
		if x == o {
			return true
		}
	}
	return false
}

// RemainEligible marks a faction to stay eligible despite executing this
// card (granted by some events).
func (g *Game) RemainEligible(f Faction) {
	g.remainEligible[f] = true
}
