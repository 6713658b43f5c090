package game

// SAPlan is a fully specified Special Activity; the variant payload is
// populated according to Type.
type SAPlan struct {
	Type    SAType
	Faction Faction

	Skirmish    *SkirmishPlan
	CommonCause *CommonCausePlan
	Naval       *NavalPressurePlan
	Partisans   *PartisansPlan
	Persuasion  *PersuasionPlan
	WarPath     *WarPathPlan
	Trade       *TradePlan
	Plunder     *PlunderPlan
	Preparer    *PreparerPlan
}

// saSpec is a static row of the Special Activity menu.
type saSpec struct {
	Factions    [NumFactions]bool
	NeedsTreaty bool
}

var saTable = map[SAType]saSpec{
	SASkirmish:      {Factions: factions(British, Patriots, French), NeedsTreaty: true},
	SACommonCause:   {Factions: factions(British)},
	SANavalPressure: {Factions: factions(British, French), NeedsTreaty: true},
	SAPartisans:     {Factions: factions(Patriots)},
	SAPersuasion:    {Factions: factions(Patriots)},
	SAWarPath:       {Factions: factions(Indians)},
	SATrade:         {Factions: factions(Indians)},
	SAPlunder:       {Factions: factions(Indians)},
	SAPreparer:      {Factions: factions(French), NeedsTreaty: true},
}

// saAllowed checks the menu and the French treaty gate. Naval Pressure is
// the one French activity usable before the Treaty only by the British.
func (g *Game) saAllowed(f Faction, t SAType) bool {
	spec, ok := saTable[t]
	if !ok || !spec.Factions[f] {
		return false
	}
	if spec.NeedsTreaty && f == French && !g.Board.TreatyOfAlliance {
		return false
	}
	return true
}

// ExecuteSA validates and runs a Special Activity. An inapplicable
// activity reports applied=false with the board untouched; a non-nil
// error is always fatal.
func (g *Game) ExecuteSA(plan *SAPlan, ctx *TurnContext) (bool, error) {
	if ctx == nil {
		ctx = NewTurnContext()
	}
	if !g.saAllowed(plan.Faction, plan.Type) {
		return false, nil
	}
	switch plan.Type {
	case SASkirmish:
		return g.ExecuteSkirmish(plan.Faction, plan.Skirmish, ctx)
	case SACommonCause:
		return g.ExecuteCommonCause(plan.Faction, plan.CommonCause, ctx)
	case SANavalPressure:
		return g.ExecuteNavalPressure(plan.Faction, plan.Naval, ctx)
	case SAPartisans:
		return g.ExecutePartisans(plan.Faction, plan.Partisans, ctx)
	case SAPersuasion:
		return g.ExecutePersuasion(plan.Faction, plan.Persuasion, ctx)
	case SAWarPath:
		return g.ExecuteWarPath(plan.Faction, plan.WarPath, ctx)
	case SATrade:
		return g.ExecuteTrade(plan.Faction, plan.Trade, ctx)
	case SAPlunder:
		return g.ExecutePlunder(plan.Faction, plan.Plunder, ctx)
	case SAPreparer:
		return g.ExecutePreparer(plan.Faction, plan.Preparer, ctx)
	}
	return false, nil
}

// SpecialActivitiesFor lists the activities a faction may currently use.
func (g *Game) SpecialActivitiesFor(f Faction) []SAType {
	var out []SAType
	for t := SAType(0); t < NumSpecialActivities; t++ {
		if g.saAllowed(f, t) {
			out = append(out, t)
		}
	}
	return out
}
