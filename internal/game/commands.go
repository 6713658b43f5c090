package game

import (
	"errors"
	"fmt"
)

// ErrIllegalAction marks a plan that fails its legality precheck. The board
// is untouched when it is returned; the sequencer converts it to a pass.
var ErrIllegalAction = errors.New("illegal action")

func illegalf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIllegalAction}, args...)...)
}

// TurnContext threads Special Activity linkage and turn-scoped flags
// through a Command execution.
type TurnContext struct {
	// Limited restricts the Command to exactly one affected space and
	// forbids the accompanying Special Activity.
	Limited bool

	// CommonCause maps spaces to the number of War Parties lent to a
	// British March or Battle there.
	CommonCause map[SpaceID]int

	// PreserveWP restricts Common Cause so that War Parties are not spent
	// to the last piece; see the Common Cause activity.
	PreserveWP bool

	// RaidActive marks that a Raid Command is underway, unlocking Plunder.
	RaidActive bool

	// SkirmishExtraMilitia is the bonus Militia removal granted to a
	// British Skirmish by Clinton.
	SkirmishExtraMilitia int

	// WarPathExtraMilitia is the bonus Militia removal granted by Brant.
	WarPathExtraMilitia int

	// FreeCommand suppresses resource costs (granted by some battle and
	// event outcomes).
	FreeCommand bool
}

// NewTurnContext returns an empty context.
func NewTurnContext() *TurnContext {
	return &TurnContext{CommonCause: make(map[SpaceID]int)}
}

// CommandPlan is a fully specified Command: the variant payloads are
// populated according to Type. Bots and controllers construct plans; the
// engine validates and executes them.
type CommandPlan struct {
	Type    CommandType
	Faction Faction

	March    *MarchPlan
	Battle   *BattlePlan
	Muster   *MusterPlan
	Garrison *GarrisonPlan
	Rally    *RallyPlan
	Rabble   *RabblePlan
	Gather   *GatherPlan
	Scout    *ScoutPlan
	Raid     *RaidPlan
	Hortalez *HortalezPlan
	AgentMob *AgentMobPlan
}

// AffectedSpaces reports how many distinct spaces the plan touches, for
// the Limited Command restriction. Hortalez counts as one space.
func (p *CommandPlan) AffectedSpaces() int {
	switch p.Type {
	case CmdMarch:
		seen := map[SpaceID]bool{}
		for _, m := range p.March.Moves {
			seen[m.To] = true
		}
		return len(seen)
	case CmdBattle:
		return len(p.Battle.Spaces)
	case CmdMuster:
		return len(p.Muster.Spaces)
	case CmdGarrison:
		seen := map[SpaceID]bool{}
		for _, m := range p.Garrison.Moves {
			seen[m.To] = true
		}
		return len(seen)
	case CmdRally:
		return len(p.Rally.Spaces)
	case CmdRabbleRousing:
		return len(p.Rabble.Spaces)
	case CmdGather:
		return len(p.Gather.Spaces)
	case CmdScout:
		return 1
	case CmdRaid:
		return len(p.Raid.Spaces)
	case CmdHortalez:
		if p.Hortalez != nil && p.Hortalez.Pay >= 1 {
			return 1
		}
		return 0
	case CmdAgentMobilization:
		return 1
	}
	return 0
}

// Execute validates and runs the Command against the game state. On an
// ErrIllegalAction the board is unchanged; any other error is fatal.
func (g *Game) Execute(plan *CommandPlan, ctx *TurnContext) error {
	if ctx == nil {
		ctx = NewTurnContext()
	}
	if ctx.Limited && plan.AffectedSpaces() != 1 {
		return illegalf("limited command must affect exactly one space, got %d",
			plan.AffectedSpaces())
	}
	if err := g.requireCommandAllowed(plan.Faction, plan.Type); err != nil {
		return err
	}
	switch plan.Type {
	case CmdMarch:
		return g.ExecuteMarch(plan.Faction, plan.March, ctx)
	case CmdBattle:
		return g.ExecuteBattle(plan.Faction, plan.Battle, ctx)
	case CmdMuster:
		return g.ExecuteMuster(plan.Faction, plan.Muster, ctx)
	case CmdGarrison:
		return g.ExecuteGarrison(plan.Faction, plan.Garrison, ctx)
	case CmdRally:
		return g.ExecuteRally(plan.Faction, plan.Rally, ctx)
	case CmdRabbleRousing:
		return g.ExecuteRabbleRousing(plan.Faction, plan.Rabble, ctx)
	case CmdGather:
		return g.ExecuteGather(plan.Faction, plan.Gather, ctx)
	case CmdScout:
		return g.ExecuteScout(plan.Faction, plan.Scout, ctx)
	case CmdRaid:
		return g.ExecuteRaid(plan.Faction, plan.Raid, ctx)
	case CmdHortalez:
		return g.ExecuteHortalez(plan.Faction, plan.Hortalez, ctx)
	case CmdAgentMobilization:
		return g.ExecuteAgentMobilization(plan.Faction, plan.AgentMob, ctx)
	}
	return illegalf("unknown command %v", plan.Type)
}

// requireCommandAllowed enforces the per-faction Command menu and the
// French treaty gates.
func (g *Game) requireCommandAllowed(f Faction, c CommandType) error {
	spec, ok := commandTable[c]
	if !ok {
		return illegalf("unknown command %v", c)
	}
	if !spec.Factions[f] {
		return illegalf("%s may not execute %s", f, c)
	}
	if spec.NeedsTreaty && f == French && !g.Board.TreatyOfAlliance {
		return illegalf("%s requires the Treaty of Alliance", c)
	}
	if c == CmdAgentMobilization && g.Board.TreatyOfAlliance {
		return illegalf("Agent Mobilization is unavailable after the Treaty")
	}
	return nil
}

// commandSpec is a static row of the Command menu.
type commandSpec struct {
	Factions    [NumFactions]bool
	NeedsTreaty bool // French only act after the Treaty of Alliance
}

func factions(fs ...Faction) [NumFactions]bool {
	var out [NumFactions]bool
	for _, f := range fs {
		out[f] = true
	}
	return out
}

var commandTable = map[CommandType]commandSpec{
	CmdMarch:             {Factions: factions(British, Patriots, Indians, French), NeedsTreaty: true},
	CmdBattle:            {Factions: factions(British, Patriots, French), NeedsTreaty: true},
	CmdMuster:            {Factions: factions(British, French), NeedsTreaty: true},
	CmdGarrison:          {Factions: factions(British)},
	CmdRally:             {Factions: factions(Patriots)},
	CmdRabbleRousing:     {Factions: factions(Patriots)},
	CmdGather:            {Factions: factions(Indians)},
	CmdScout:             {Factions: factions(Indians)},
	CmdRaid:              {Factions: factions(Indians)},
	CmdHortalez:          {Factions: factions(French)},
	CmdAgentMobilization: {Factions: factions(French)},
}

// CommandsFor lists the Commands a faction may currently choose.
func (g *Game) CommandsFor(f Faction) []CommandType {
	var out []CommandType
	for c := CommandType(0); c < NumCommands; c++ {
		if g.requireCommandAllowed(f, c) == nil {
			out = append(out, c)
		}
	}
	return out
}
