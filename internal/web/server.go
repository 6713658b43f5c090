package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"sort"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/peterkuimelis/lodx/internal/game"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for /api/cards.
type CardInfo struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Years  string   `json:"years"`
	Kind   string   `json:"kind"`
	Order  []string `json:"order"`
	Shaded bool     `json:"dual"`
}

// ScenarioInfo is the JSON representation of a scenario for
// /api/scenarios.
type ScenarioInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Seed   int64  `json:"seed"`
	Cards  int    `json:"cards"`
}

/// Server is the lodx web UI server: static assets, the card and
// scenario APIs, and a WebSocket bridge to a running game server.
type Server struct {
	scenarioFile string
	mux          *http.ServeMux
}

// NewServer creates a new web server.
func NewServer(scenarioFile string) (*Server, error) {
	s := &Server{
		scenarioFile: scenarioFile,
		mux:          http.NewServeMux(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/scenarios", s.handleScenarios)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for id, c := range game.CardRegistry {
		ci := CardInfo{
			ID:     id,
			Title:  c.Title,
			Years:  c.Years,
			Shaded: c.Dual,
		}
		switch {
		case c.WinterQuarters:
			ci.Kind = "Winter Quarters"
		case c.BrilliantStroke:
			ci.Kind = "Brilliant Stroke"
		default:
			ci.Kind = "Event"
		}
		for _, f := range game.FactionOrder(c) {
			ci.Order = append(ci.Order, f.String())
		}
		cards = append(cards, ci)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.scenarioFile)
	if err != nil {
		http.Error(w, "could not read scenario file", http.StatusInternalServerError)
		return
	}

	sf, err := parseScenarioYAML(data)
	if err != nil {
		http.Error(w, "could not parse scenario file", http.StatusInternalServerError)
		return
	}

	var out []ScenarioInfo
	for i, sc := range sf.Scenarios {
		out = append(out, ScenarioInfo{
			Number: i + 1,
			Name:   sc.Name,
			Year:   sc.Year,
			Seed:   sc.Seed,
			Cards:  len(sc.Deck),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handleWebSocket bridges a browser to a TCP game server: JSON frames
// pass through unchanged in both directions.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	session := uuid.NewString()
	ctx := r.Context()

	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("[%s] WebSocket read connect: %v", session, err)
		return
	}

	var connectMsg struct {
		Type    string `json:"type"`
		Addr    string `json:"addr"`
		Faction string `json:"faction"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type":   "error",
			"result": fmt.Sprintf("Could not connect to game server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	log.Printf("[%s] bridging %s as %s", session, connectMsg.Addr, connectMsg.Faction)

	joinMsg, _ := json.Marshal(map[string]any{
		"type":    "join",
		"faction": connectMsg.Faction,
	})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("[%s] TCP write join: %v", session, err)
		return
	}

	done := make(chan struct{})

	// TCP → WebSocket (server messages to browser)
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("[%s] TCP read error: %v", session, err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("[%s] WebSocket write error: %v", session, err)
				return
			}
		}
	}()

	// WebSocket → TCP (browser responses to server)
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("[%s] TCP write error: %v", session, err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
