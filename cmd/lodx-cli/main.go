package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/lodx/internal/game"
	"github.com/peterkuimelis/lodx/internal/log"
	lodxnet "github.com/peterkuimelis/lodx/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	case "solo":
		runSolo(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  lodx host [--faction NAME] [--port P] [--seed N]")
	fmt.Println("  lodx join [--faction NAME] [--addr ADDR]")
	fmt.Println("  lodx solo [--seed N] [--scenarios FILE --scenario N]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a game server and play one faction; bots fill open seats")
	fmt.Println("  join    Connect to a game server and play a faction")
	fmt.Println("  solo    Run a full four-bot game to completion")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	faction := fs.String("faction", "British", "faction to play")
	port := fs.String("port", "9000", "TCP port to listen on")
	seed := fs.Int64("seed", 1, "deck shuffle seed")
	fs.Parse(args)

	f, ok := game.FactionByName(*faction)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown faction %q\n", *faction)
		os.Exit(1)
	}

	srv := &lodxnet.Server{
		Port:        *port,
		Seed:        *seed,
		HostFaction: f,
	}
	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	faction := fs.String("faction", "Patriots", "faction to play")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := lodxnet.Connect(context.Background(), *addr, *faction); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSolo(args []string) {
	fs := flag.NewFlagSet("solo", flag.ExitOnError)
	seed := fs.Int64("seed", 1, "deck shuffle seed")
	scenarios := fs.String("scenarios", "", "path to scenarios YAML file")
	scenario := fs.Int("scenario", 1, "scenario number (with --scenarios)")
	fs.Parse(args)

	logger := log.NewTextLogger(os.Stdout)
	var g *game.Game
	if *scenarios != "" {
		sc, err := game.ScenarioByNumber(*scenarios, *scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		g = game.NewGameFromScenario(sc, logger)
	} else {
		g = game.NewGame(*seed, logger)
	}

	for f := game.Faction(0); f < game.NumFactions; f++ {
		g.SetController(f, game.BotFor(f))
	}
	if err := g.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nWinner: %s\n", g.Winner)
}
