package game

import (
	"testing"

	"github.com/peterkuimelis/lodx/internal/log"
)

// Every Command moves pieces between the map and the boxes without ever
// minting or losing one.
func TestCommandsPreserveConservation(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, g *Game)
		plan  *CommandPlan
	}{
		{
			name: "march",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, BritishRegular, Massachusetts, 2)
				g.Board.Resources[British] = 1
			},
			plan: &CommandPlan{Type: CmdMarch, Faction: British,
				March: &MarchPlan{Moves: []MarchMove{{From: Massachusetts, To: Boston,
					Pieces: map[PieceType]int{BritishRegular: 2}}}}},
		},
		{
			name: "garrison",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, BritishRegular, Massachusetts, 3)
				g.Board.Resources[British] = 2
			},
			plan: &CommandPlan{Type: CmdGarrison, Faction: British,
				Garrison: &GarrisonPlan{Moves: []GarrisonMove{
					{From: Massachusetts, To: Boston, Regulars: 2}}}},
		},
		{
			name: "muster",
			setup: func(t *testing.T, g *Game) {
				g.Board.Resources[British] = 1
			},
			plan: &CommandPlan{Type: CmdMuster, Faction: British,
				Muster: &MusterPlan{Spaces: []MusterSpace{{Space: Boston, Regulars: 2}}}},
		},
		{
			name: "rally",
			setup: func(t *testing.T, g *Game) {
				g.Board.Resources[Patriots] = 1
			},
			plan: &CommandPlan{Type: CmdRally, Faction: Patriots,
				Rally: &RallyPlan{Spaces: []RallySpace{{Space: Virginia, Action: RallyPlace}}}},
		},
		{
			name: "rabble-rousing",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, MilitiaUnderground, Virginia, 1)
				g.Board.Resources[Patriots] = 1
			},
			plan: &CommandPlan{Type: CmdRabbleRousing, Faction: Patriots,
				Rabble: &RabblePlan{Spaces: []SpaceID{Virginia}}},
		},
		{
			name: "gather",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, WarPartyUnderground, Pennsylvania, 2)
				g.Board.Resources[Indians] = 1
			},
			plan: &CommandPlan{Type: CmdGather, Faction: Indians,
				Gather: &GatherPlan{Spaces: []GatherSpace{
					{Space: Pennsylvania, Action: GatherVillage}}}},
		},
		{
			name: "scout",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, WarPartyUnderground, Pennsylvania, 1)
				mustPlace(t, g.Board, BritishRegular, Pennsylvania, 1)
				g.Board.Resources[Indians] = 1
				g.Board.Resources[British] = 1
			},
			plan: &CommandPlan{Type: CmdScout, Faction: Indians,
				Scout: &ScoutPlan{From: Pennsylvania, To: Virginia,
					WarParties: 1, Regulars: 1}},
		},
		{
			name: "raid",
			setup: func(t *testing.T, g *Game) {
				g.Board.Support[Virginia] = PassiveOpposition
				mustPlace(t, g.Board, WarPartyUnderground, Virginia, 1)
				g.Board.Resources[Indians] = 1
			},
			plan: &CommandPlan{Type: CmdRaid, Faction: Indians,
				Raid: &RaidPlan{Spaces: []RaidSpace{{Space: Virginia, MoveFrom: NoRaidMove}}}},
		},
		{
			name: "hortalez",
			setup: func(t *testing.T, g *Game) {
				g.Board.Resources[French] = 4
			},
			plan: &CommandPlan{Type: CmdHortalez, Faction: French,
				Hortalez: &HortalezPlan{Pay: 2}},
		},
		{
			name: "agent mobilization",
			setup: func(t *testing.T, g *Game) {
				g.Board.Resources[French] = 1
			},
			plan: &CommandPlan{Type: CmdAgentMobilization, Faction: French,
				AgentMob: &AgentMobPlan{Space: NewYork}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := bareGame(log.NewMemoryLogger())
			tc.setup(t, g)
			if err := g.Execute(tc.plan, NewTurnContext()); err != nil {
				t.Fatalf("%s failed: %v", tc.name, err)
			}
			assertConserved(t, g.Board)
		})
	}
}

// Special Activities answer for their pieces the same way.
func TestSpecialActivitiesPreserveConservation(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, g *Game)
		ctx   func(*TurnContext)
		plan  *SAPlan
	}{
		{
			name: "naval pressure",
			setup: func(t *testing.T, g *Game) {
				g.Board.TreatyOfAlliance = true
				g.Board.BlockadeUnavailable--
				g.Board.BlockadePool++
			},
			plan: &SAPlan{Type: SANavalPressure, Faction: French,
				Naval: &NavalPressurePlan{City: Boston, From: NoSpace}},
		},
		{
			name: "preparer",
			setup: func(t *testing.T, g *Game) {
				g.Board.TreatyOfAlliance = true
				g.Board.Available[FrenchRegular] -= 3
				g.Board.Unavailable[FrenchRegular] += 3
			},
			plan: &SAPlan{Type: SAPreparer, Faction: French,
				Preparer: &PreparerPlan{Choice: PreparerRegulars}},
		},
		{
			name: "partisans",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, MilitiaUnderground, Virginia, 1)
				mustPlace(t, g.Board, Tory, Virginia, 1)
			},
			plan: &SAPlan{Type: SAPartisans, Faction: Patriots,
				Partisans: &PartisansPlan{Space: Virginia, Option: PartisansAmbush}},
		},
		{
			name: "persuasion",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, MilitiaUnderground, Virginia, 2)
			},
			plan: &SAPlan{Type: SAPersuasion, Faction: Patriots,
				Persuasion: &PersuasionPlan{Spaces: []SpaceID{Virginia}}},
		},
		{
			name: "war path",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, WarPartyUnderground, Virginia, 1)
				mustPlace(t, g.Board, MilitiaActive, Virginia, 1)
			},
			plan: &SAPlan{Type: SAWarPath, Faction: Indians,
				WarPath: &WarPathPlan{Space: Virginia, Option: WarPathStrike}},
		},
		{
			name: "trade",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, Village, Pennsylvania, 1)
				mustPlace(t, g.Board, WarPartyUnderground, Pennsylvania, 1)
				g.Board.Resources[British] = 5
			},
			plan: &SAPlan{Type: SATrade, Faction: Indians,
				Trade: &TradePlan{Space: Pennsylvania, Transfer: 2}},
		},
		{
			name: "plunder",
			setup: func(t *testing.T, g *Game) {
				mustPlace(t, g.Board, WarPartyUnderground, Virginia, 2)
				mustPlace(t, g.Board, MilitiaActive, Virginia, 1)
				g.Board.Resources[Patriots] = 3
			},
			ctx: func(tc *TurnContext) { tc.RaidActive = true },
			plan: &SAPlan{Type: SAPlunder, Faction: Indians,
				Plunder: &PlunderPlan{Space: Virginia}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := bareGame(log.NewMemoryLogger())
			tc.setup(t, g)
			ctx := NewTurnContext()
			if tc.ctx != nil {
				tc.ctx(ctx)
			}
			applied, err := g.ExecuteSA(tc.plan, ctx)
			if err != nil {
				t.Fatalf("%s failed: %v", tc.name, err)
			}
			if !applied {
				t.Fatalf("%s did not apply", tc.name)
			}
			assertConserved(t, g.Board)
		})
	}
}
