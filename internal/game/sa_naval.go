package game

import "github.com/peterkuimelis/lodx/internal/log"

// NavalPressurePlan works the blockade. The British lift pressure; the
// French apply it.
type NavalPressurePlan struct {
	// City receives a Blockade (French) or names the one to lift
	// (British); NoSpace lets the engine pick the first candidate.
	City SpaceID

	// From names the City a rearranged Blockade leaves (French with an
	// empty West Indies pool).
	From SpaceID
}

// ExecuteNavalPressure contests the sea lanes. Before the Treaty, or at
// naval intervention zero, the Royal Navy simply earns the British a D3.
// Afterwards the British spend the activity lowering intervention and
// lifting a Blockade; the French raise intervention and spread Blockades
// over the ports.
func (g *Game) ExecuteNavalPressure(f Faction, plan *NavalPressurePlan, ctx *TurnContext) (bool, error) {
	if plan == nil {
		plan = &NavalPressurePlan{City: NoSpace, From: NoSpace}
	}
	b := g.Board
	switch f {
	case British:
		if !b.TreatyOfAlliance || b.NavalIntervention == 0 {
			v := g.Roller.D3("Naval Pressure prize money")
			g.logEvent(log.NewDieRollEvent(g.CurrentCardID(), f.String(),
				"Naval Pressure prize money", v))
			b.AddResources(British, v)
			return true, nil
		}
		city := plan.City
		if city == NoSpace {
			cities := b.BlockadedCities()
			if len(cities) == 0 {
				return false, nil
			}
			city = cities[0]
		}
		if !b.Blockade[city] {
			return false, nil
		}
		b.NavalIntervention--
		if err := b.LiftBlockade(city); err != nil {
			return false, err
		}
		g.logEvent(log.NewNavalInterventionEvent(g.CurrentCardID(), b.NavalIntervention))
		g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Blockade", city.String(), "lifted"))
		return true, nil

	case French:
		if !b.TreatyOfAlliance {
			return false, nil
		}
		inPlay := b.BlockadePool + len(b.BlockadedCities())
		if b.BlockadePool > 0 {
			if plan.City == NoSpace || !IsCity(plan.City) || b.Blockade[plan.City] {
				return false, nil
			}
			if b.NavalIntervention < MaxNavalIntervention && b.NavalIntervention < inPlay {
				b.NavalIntervention++
			}
			if err := b.PlaceBlockade(plan.City); err != nil {
				return false, err
			}
			g.logEvent(log.NewNavalInterventionEvent(g.CurrentCardID(), b.NavalIntervention))
			g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Blockade", plan.City.String(), "placed"))
			return true, nil
		}
		// Empty pool: rearrange the fleet between ports.
		if plan.From == NoSpace || plan.City == NoSpace ||
			!b.Blockade[plan.From] || b.Blockade[plan.City] || !IsCity(plan.City) {
			return false, nil
		}
		b.Blockade[plan.From] = false
		b.Blockade[plan.City] = true
		if b.NavalIntervention < MaxNavalIntervention && b.NavalIntervention < inPlay {
			b.NavalIntervention++
		}
		g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Blockade", plan.City.String(), "moved"))
		return true, nil
	}
	return false, nil
}

// PreparerChoice selects the single preparation taken.
type PreparerChoice int

const (
	// PreparerBlockade readies a Blockade marker into the West Indies.
	PreparerBlockade PreparerChoice = iota
	// PreparerRegulars moves 3 French Regulars from Unavailable to Available.
	PreparerRegulars
	// PreparerResources banks 2 Resources.
	PreparerResources
)

// PreparerPlan is the French war preparation.
type PreparerPlan struct {
	Choice PreparerChoice
}

// ExecutePreparer readies the French war machine, exactly one way per use.
func (g *Game) ExecutePreparer(f Faction, plan *PreparerPlan, ctx *TurnContext) (bool, error) {
	if f != French || plan == nil {
		return false, nil
	}
	b := g.Board
	switch plan.Choice {
	case PreparerBlockade:
		if b.BlockadeUnavailable <= 0 {
			return false, nil
		}
		b.BlockadeUnavailable--
		b.BlockadePool++
		g.logEvent(log.NewMarkerEvent(g.CurrentCardID(), "Blockade", "West Indies", "readied"))
	case PreparerRegulars:
		n := 3
		if b.Unavailable[FrenchRegular] < n {
			n = b.Unavailable[FrenchRegular]
		}
		if n == 0 {
			return false, nil
		}
		if err := b.Mobilize(FrenchRegular, n); err != nil {
			return false, err
		}
		g.logEvent(log.NewSpecialActivityEvent(g.CurrentCardID(), f.String(),
			SAPreparer.String(), "musters the expeditionary force"))
	case PreparerResources:
		b.AddResources(French, 2)
		g.logEvent(log.NewResourceChangeEvent(g.CurrentCardID(), "French", 2,
			b.Resources[French]))
	default:
		return false, nil
	}
	return true, nil
}
