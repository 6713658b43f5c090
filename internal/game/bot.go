package game

import "sort"

// sandbox returns a throwaway copy of the game for trial execution. The
// copy rolls its own dice so the real audit trail is untouched.
func (g *Game) sandbox() *Game {
	sb := *g
	sb.Board = g.Board.Clone()
	sb.Roller = NewRoller(1)
	sb.Logger = nil
	return &sb
}

// planLegal trial-runs a Command plan against a sandboxed board.
func (g *Game) planLegal(plan *CommandPlan, limited bool) bool {
	sb := g.sandbox()
	tc := NewTurnContext()
	tc.Limited = limited
	return sb.Execute(plan, tc) == nil
}

// saUseful trial-runs a Special Activity and reports whether it applies.
func (g *Game) saUseful(plan *SAPlan) bool {
	sb := g.sandbox()
	applied, err := sb.ExecuteSA(plan, NewTurnContext())
	return err == nil && applied
}

// spacesByPop lists all spaces matching keep, most populous first, the
// canonical order breaking ties.
func (g *Game) spacesByPop(keep func(SpaceID) bool) []SpaceID {
	var out []SpaceID
	for _, s := range AllSpaces() {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return SpacePopulation(out[i]) > SpacePopulation(out[j])
	})
	return out
}

// BotFor returns the faction's non-player controller.
func BotFor(f Faction) PlayerController {
	switch f {
	case British:
		return BritishBot{}
	case Patriots:
		return PatriotsBot{}
	case Indians:
		return IndiansBot{}
	case French:
		return FrenchBot{}
	}
	return nil
}

// botAction is the shared choose-event-then-command skeleton: play the
// event when the faction's rules say so, otherwise try the primary plan,
// then the single fallback, then pass.
func botAction(g *Game, f Faction, opts []SlotOption,
	primary, fallback func(limited bool) *Action) *Action {

	if hasOption(opts, OptEvent) && g.WillPlayEvent(f, g.CurrentCardID()) {
		return &Action{Type: ActEvent, Shaded: EventShaded(f, LookupCard(g.CurrentCardID()))}
	}
	limited := hasOption(opts, OptLimitedCommand)
	for _, build := range []func(bool) *Action{primary, fallback} {
		act := build(limited)
		if act == nil || act.Command == nil {
			continue
		}
		if !g.planLegal(act.Command, limited) {
			continue
		}
		if act.SA != nil && (limited || !hasOption(opts, OptCommandSA) || !g.saUseful(act.SA)) {
			act.SA = nil
		}
		return act
	}
	return &Action{Type: ActPass}
}
