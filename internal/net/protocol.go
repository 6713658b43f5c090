package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_action"
	Actions []ActionView `json:"actions,omitempty"`
	State   *StateView   `json:"state,omitempty"`

	// For "game_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Card    int    `json:"card"`
	Faction string `json:"faction,omitempty"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice for the current card slot.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// StateView is the full public board state. Nothing in the game is
// hidden information except the deck order, so every faction sees the
// same view.
type StateView struct {
	Year     int    `json:"year"`
	Card     int    `json:"card"`
	CardName string `json:"card_name"`
	Upcoming string `json:"upcoming,omitempty"`

	Resources map[string]int `json:"resources"`
	Eligible  []string       `json:"eligible"`

	Treaty   bool `json:"treaty_of_alliance"`
	Naval    int  `json:"naval_intervention"`
	Squadron bool `json:"squadron"`

	Margins map[string]MarginView `json:"margins"`
	Spaces  []SpaceView           `json:"spaces"`
}

// MarginView is one faction's pair of victory margins.
type MarginView struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// SpaceView is one map space: its posture, control, and contents.
type SpaceView struct {
	Name       string         `json:"name"`
	Support    string         `json:"support"`
	Control    string         `json:"control"`
	Pieces     map[string]int `json:"pieces,omitempty"`
	Leaders    []string       `json:"leaders,omitempty"`
	Blockade   bool           `json:"blockade,omitempty"`
	Propaganda bool           `json:"propaganda,omitempty"`
	Raid       bool           `json:"raid,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "action"
	Index int `json:"index,omitempty"`

	// For "join" (initial handshake)
	Faction string `json:"faction,omitempty"`
}
