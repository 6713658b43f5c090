package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn net.Conn
}

// Connect connects to a server, sends the faction choice, and runs the
// REPL.
func Connect(ctx context.Context, addr, faction string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", Faction: faction}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for the game to start...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			idx := c.readChoice(reader, len(msg.Actions))
			if err := enc.Encode(ClientMessage{Type: "action", Index: idx}); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "game_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("          GAME OVER")
			fmt.Println("═══════════════════════════════════")
			fmt.Printf("Winner: %s — %s\n", msg.Winner, msg.Result)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	who := ev.Faction
	if who == "" {
		who = "-"
	}
	for len(who) < 8 {
		who += " "
	}
	fmt.Printf("C%-3d %s| %s\n", ev.Card, who, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Println()
	fmt.Printf("═══ %d ═══ Card: %s", sv.Year, sv.CardName)
	if sv.Upcoming != "" {
		fmt.Printf("  (next: %s)", sv.Upcoming)
	}
	fmt.Println()

	var factions []string
	for f := range sv.Resources {
		factions = append(factions, f)
	}
	sort.Strings(factions)
	for _, f := range factions {
		m := sv.Margins[f]
		fmt.Printf("  %-9s res %2d  margins %+d/%+d\n", f, sv.Resources[f], m.First, m.Second)
	}
	fmt.Printf("  Eligible: %s\n", strings.Join(sv.Eligible, ", "))
	if sv.Treaty {
		fmt.Printf("  Treaty of Alliance signed, Naval Intervention %d\n", sv.Naval)
	}

	for _, sp := range sv.Spaces {
		if len(sp.Pieces) == 0 && sp.Support == "Neutral" && !sp.Blockade &&
			!sp.Propaganda && !sp.Raid {
			continue
		}
		line := fmt.Sprintf("  %-24s %-18s %-10s", sp.Name, sp.Support, sp.Control)
		var bits []string
		var names []string
		for p := range sp.Pieces {
			names = append(names, p)
		}
		sort.Strings(names)
		for _, p := range names {
			bits = append(bits, fmt.Sprintf("%dx %s", sp.Pieces[p], p))
		}
		bits = append(bits, sp.Leaders...)
		if sp.Blockade {
			bits = append(bits, "Blockade")
		}
		if sp.Propaganda {
			bits = append(bits, "Propaganda")
		}
		if sp.Raid {
			bits = append(bits, "Raid")
		}
		fmt.Println(line + strings.Join(bits, ", "))
	}
}

func (c *Client) renderActions(actions []ActionView) {
	fmt.Println("\nActions:")
	for _, a := range actions {
		fmt.Printf("  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > count {
			fmt.Printf("Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1 // convert to 0-indexed
	}
}
