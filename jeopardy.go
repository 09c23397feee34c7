// Triviabox Jeopardy Game
//
// A 5x5 trivia board: five categories, five point values each. Players take
// turns picking cells; the answer is shown first and players must supply the
// question. A correct response scores the cell's value and wins the next
// pick. Once all 25 cells are resolved, every player places a final wager
// and a last answer is played for their wagered amounts.
//
// Features:
// - WebSockets per game ID: /jeopardy/:gameid and /jeopardy/:gameid/ws
// - First connection to a game becomes the host and drives the game
// - Host builds the roster, picks cells, and resolves answers
// - Spectator connections receive the same state and render read-only
// - Built-in question set, plus a question editor for custom sets
// - Custom sets saved to a library (Redis-backed when configured)
// - Library sets can be re-edited, played, downloaded, and uploaded
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Action is any message coming from a client; Type selects which other
// fields are meaningful.
type Action struct {
	Type        string      `json:"type"`
	Players     []string    `json:"players,omitempty"`  // create_session
	SetID       *int        `json:"set_id,omitempty"`   // create_session / start_editor
	Category    int         `json:"category,omitempty"` // select_question
	Value       int         `json:"value,omitempty"`    // select_question
	Player      int         `json:"player"`             // player_correct / final_correct
	Amount      int         `json:"amount"`             // submit_wager
	Names       []string    `json:"names,omitempty"`    // set_categories
	Answer      string      `json:"answer,omitempty"`   // save_slot / previous_slot
	Question    string      `json:"question,omitempty"` // save_slot / previous_slot
	Title       string      `json:"title,omitempty"`    // finish_editor
	Description string      `json:"description,omitempty"`
	Final       *FinalRound `json:"final,omitempty"` // finish_editor
}

// SessionInfoMessage is sent immediately on connect so the client knows
// its role within this game.
type SessionInfoMessage struct {
	Type   string `json:"type"` // "session_info"
	GameID string `json:"game_id"`
	IsHost bool   `json:"is_host"`
}

// ErrorMessage reports rejected input back to the client that sent it.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// SavedMessage confirms a library write.
type SavedMessage struct {
	Type  string `json:"type"` // "saved"
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// CellState is one board cell as rendered: its value and whether it has
// already been played. Cell contents never leave the server early.
type CellState struct {
	Value int  `json:"value"`
	Used  bool `json:"used"`
}

// ColumnState is one rendered category column.
type ColumnState struct {
	Category string      `json:"category"`
	Cells    []CellState `json:"cells"`
}

// WagerEntry shows a placed wager on the wagering screen.
type WagerEntry struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Amount int    `json:"amount"`
}

// EditorState is the editor portion of the render model.
type EditorState struct {
	Step       int      `json:"step"`
	Category   string   `json:"category"`
	Value      int      `json:"value"`
	Answer     string   `json:"answer"`
	Question   string   `json:"question"`
	Categories []string `json:"categories"`
	Progress   []int    `json:"progress"`
	Done       bool     `json:"done"`
	Complete   bool     `json:"complete"`
	Editing    bool     `json:"editing"`
}

// SetSummary is one library entry in the load-game screen.
type SetSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DateCreated string `json:"dateCreated"`
	Slots       int    `json:"slots"`
	Complete    bool   `json:"complete"`
}

// StateMessage is the full render model, broadcast after every action.
// Clients are dumb displays: they draw whatever screen this names.
type StateMessage struct {
	Type   string `json:"type"` // "state"
	Screen string `json:"screen"`
	Title  string `json:"title,omitempty"`
	Custom bool   `json:"custom,omitempty"`

	Players      []*GamePlayer `json:"players,omitempty"`
	Columns      []ColumnState `json:"columns,omitempty"`
	Selector     int           `json:"selector"`
	SelectorName string        `json:"selector_name,omitempty"`
	Remaining    int           `json:"questions_remaining"`

	Category    string `json:"category,omitempty"`
	Value       int    `json:"value,omitempty"`
	AnswerText  string `json:"answer_text,omitempty"`
	PromptShown bool   `json:"prompt_shown,omitempty"`
	PromptText  string `json:"prompt_text,omitempty"`

	WagerName     string       `json:"wager_name,omitempty"`
	WagerScore    int          `json:"wager_score,omitempty"`
	WagerMax      int          `json:"wager_max,omitempty"`
	Wagers        []WagerEntry `json:"wagers,omitempty"`
	FinalCategory string       `json:"final_category,omitempty"`
	FinalRevealed bool         `json:"final_revealed,omitempty"`

	Rankings []*GamePlayer `json:"rankings,omitempty"`

	Editor *EditorState `json:"editor,omitempty"`
	Sets   []SetSummary `json:"sets,omitempty"`
}

type gameClient struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type actionRequest struct {
	client *gameClient
	msg    Action
}

// gameHub owns one game ID: its clients, and exactly one live Session or
// Editor at a time. The run loop serializes every action, so the state
// machines themselves never see concurrent access.
type gameHub struct {
	id      string
	library *Library

	clients map[*gameClient]bool

	register chan *gameClient
	unreg    chan *gameClient
	actions  chan actionRequest
	done     chan struct{}

	mu sync.RWMutex

	createdAt    time.Time
	lastActive   time.Time
	hostPlayerID string

	session   *Session
	editor    *Editor
	editingID int // library id under edit, or -1
}

func newGameHub(gameID string, library *Library) *gameHub {
	now := time.Now()
	return &gameHub{
		id:         gameID,
		library:    library,
		clients:    make(map[*gameClient]bool),
		register:   make(chan *gameClient),
		unreg:      make(chan *gameClient),
		actions:    make(chan actionRequest),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
		editingID:  -1,
	}
}

func (h *gameHub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()

			// First connection becomes the host
			if h.hostPlayerID == "" {
				h.hostPlayerID = c.playerID
			}

			h.clients[c] = true

			c.send <- SessionInfoMessage{
				Type:   "session_info",
				GameID: h.id,
				IsHost: c.playerID == h.hostPlayerID,
			}
			c.send <- h.stateLocked()

			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case ar := <-h.actions:
			h.handleAction(cfg, ar)

		case <-h.done:
			return
		}
	}
}

func (h *gameHub) handleAction(cfg *Config, ar actionRequest) {
	c := ar.client
	msg := ar.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// Only the host drives the game; everyone else just watches.
	if c.playerID != h.hostPlayerID {
		return
	}

	switch msg.Type {
	case "create_session":
		h.createSession(c, msg)

	case "select_question":
		if h.session != nil {
			h.session.selectQuestion(msg.Category, msg.Value)
		}

	case "show_question":
		if h.session != nil {
			h.session.showQuestion()
		}

	case "player_correct":
		if h.session != nil {
			h.session.playerCorrect(msg.Player)
		}

	case "nobody_correct":
		if h.session != nil {
			h.session.nobodyCorrect()
		}

	case "submit_wager":
		if h.session != nil {
			if err := h.session.submitWager(msg.Amount); err != nil {
				h.sendToLocked(c, ErrorMessage{Type: "error", Message: err.Error()})
				return
			}
		}

	case "show_final_question":
		if h.session != nil {
			h.session.showFinalQuestion()
		}

	case "final_correct":
		if h.session != nil {
			h.session.finalCorrect(msg.Player)
		}

	case "finish_game":
		if h.session != nil {
			h.session.finishGame()
		}

	case "reset_game":
		if h.session != nil {
			h.session.resetGame()
			logf(cfg, "GAMES: Reset game %s", h.id)
		}

	case "main_menu":
		h.session = nil
		h.editor = nil
		h.editingID = -1

	case "start_editor":
		h.startEditor(c, msg)

	case "set_categories":
		if h.editor != nil {
			h.editor.setCategories(msg.Names)
		}

	case "save_slot":
		if h.editor != nil {
			if err := h.editor.saveSlot(msg.Answer, msg.Question); err != nil {
				h.sendToLocked(c, ErrorMessage{Type: "error", Message: err.Error()})
				return
			}
		}

	case "previous_slot":
		if h.editor != nil {
			h.editor.previous(msg.Answer, msg.Question)
		}

	case "finish_editor":
		h.finishEditor(cfg, c, msg)

	default:
		// ignore unknown types
	}

	h.broadcastStateLocked()
}

// createSession builds the roster and starts a game on whichever board the
// host picked: a library set by id, or the built-in default.
func (h *gameHub) createSession(c *gameClient, msg Action) {
	board := defaultBoard()
	title := defaultGameTitle
	custom := false

	if msg.SetID != nil {
		saved := h.library.get(*msg.SetID)
		if saved == nil {
			h.sendToLocked(c, ErrorMessage{Type: "error", Message: "That saved game no longer exists."})
			return
		}
		if !saved.complete() {
			h.sendToLocked(c, ErrorMessage{Type: "error", Message: "Please complete at least 20 questions before playing!"})
			return
		}
		board = saved
		title = saved.Title
		custom = true
	}

	session, err := newSession(msg.Players, board, title, custom)
	if err != nil {
		h.sendToLocked(c, ErrorMessage{Type: "error", Message: err.Error()})
		return
	}

	h.session = session
	h.editor = nil
	h.editingID = -1
}

// startEditor opens the editor, either fresh or seeded with a library set.
func (h *gameHub) startEditor(c *gameClient, msg Action) {
	if msg.SetID != nil {
		saved := h.library.get(*msg.SetID)
		if saved == nil {
			h.sendToLocked(c, ErrorMessage{Type: "error", Message: "That saved game no longer exists."})
			return
		}
		h.editor = newEditorFrom(saved)
		h.editingID = *msg.SetID
	} else {
		h.editor = newEditor()
		h.editingID = -1
	}
	h.session = nil
}

// finishEditor exports the authored set and writes it to the library:
// in place when re-editing, appended when new.
func (h *gameHub) finishEditor(cfg *Config, c *gameClient, msg Action) {
	if h.editor == nil {
		return
	}
	if !h.editor.complete() {
		h.sendToLocked(c, ErrorMessage{Type: "error", Message: "Please complete at least 20 questions before saving!"})
		return
	}

	board := h.editor.export(msg.Title, msg.Description, msg.Final)

	id := h.editingID
	if id >= 0 && h.library.update(id, board) {
		logf(cfg, "GAMES: Updated question set %q in %s", board.Title, h.id)
	} else {
		id = h.library.save(board)
		logf(cfg, "GAMES: Saved question set %q from %s", board.Title, h.id)
	}

	h.editor = nil
	h.editingID = -1

	h.sendToLocked(c, SavedMessage{Type: "saved", ID: id, Title: board.Title})
}

// stateLocked builds the render model for the current screen. Assumes h.mu
// is held.
func (h *gameHub) stateLocked() StateMessage {
	if h.editor != nil {
		return h.editorStateLocked()
	}
	if h.session == nil {
		return h.menuStateLocked()
	}
	return h.sessionStateLocked()
}

func (h *gameHub) menuStateLocked() StateMessage {
	boards := h.library.all()
	sets := make([]SetSummary, 0, len(boards))
	for i, b := range boards {
		sets = append(sets, SetSummary{
			ID:          i,
			Title:       b.Title,
			Description: b.Description,
			DateCreated: b.DateCreated,
			Slots:       b.completedCount(),
			Complete:    b.complete(),
		})
	}

	return StateMessage{
		Type:   "state",
		Screen: "menu",
		Title:  defaultGameTitle,
		Sets:   sets,
	}
}

func (h *gameHub) editorStateLocked() StateMessage {
	e := h.editor

	answer, question := e.currentSlot()
	progress := e.categoryProgress()

	category := ""
	value := 0
	if !e.done() {
		category = e.board.Categories[e.category()-1]
		value = e.value()
	}

	return StateMessage{
		Type:   "state",
		Screen: "editor",
		Editor: &EditorState{
			Step:       e.step,
			Category:   category,
			Value:      value,
			Answer:     answer,
			Question:   question,
			Categories: append([]string(nil), e.board.Categories...),
			Progress:   progress[:],
			Done:       e.done(),
			Complete:   e.complete(),
			Editing:    e.editing,
		},
	}
}

func (h *gameHub) sessionStateLocked() StateMessage {
	s := h.session

	state := StateMessage{
		Type:         "state",
		Screen:       string(s.screen),
		Title:        s.title,
		Custom:       s.custom,
		Players:      s.players,
		Selector:     s.selector,
		SelectorName: s.selectorName(),
		Remaining:    s.questionsRemaining(),
	}

	switch s.screen {
	case screenBoard:
		state.Columns = make([]ColumnState, 0, categoryCount)
		for cat := 1; cat <= categoryCount; cat++ {
			col := ColumnState{
				Category: s.board.Categories[cat-1],
				Cells:    make([]CellState, 0, len(values)),
			}
			for _, value := range values {
				col.Cells = append(col.Cells, CellState{
					Value: value,
					Used:  s.board.slotAt(cat, value).Used,
				})
			}
			state.Columns = append(state.Columns, col)
		}

	case screenQuestion:
		state.Category = s.board.Categories[s.currentCategory-1]
		state.Value = s.currentValue
		state.AnswerText = s.current.Answer
		state.PromptShown = s.promptShown
		if s.promptShown {
			state.PromptText = s.current.Question
		}

	case screenFinalWager:
		p := s.players[s.wagerTurn]
		state.WagerName = p.Name
		state.WagerScore = p.Score
		state.WagerMax = s.maxWager()
		state.FinalCategory = s.board.Final.Category
		for _, placed := range s.players {
			if placed.HasWagered {
				state.Wagers = append(state.Wagers, WagerEntry{
					Name:   placed.Name,
					Color:  placed.Color,
					Amount: placed.FinalWager,
				})
			}
		}

	case screenFinalQuestion:
		state.FinalCategory = s.board.Final.Category
		state.AnswerText = s.board.Final.Answer
		state.FinalRevealed = s.finalRevealed
		if s.finalRevealed {
			state.PromptText = s.board.Final.Question
		}
		for _, placed := range s.players {
			state.Wagers = append(state.Wagers, WagerEntry{
				Name:   placed.Name,
				Color:  placed.Color,
				Amount: placed.FinalWager,
			})
		}

	case screenGameOver:
		state.Rankings = s.rankings
	}

	return state
}

func (h *gameHub) broadcastStateLocked() {
	state := h.stateLocked()

	for client := range h.clients {
		select {
		case client.send <- state:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// sendToLocked delivers a message to a single client, dropping them if
// their buffer is full. Assumes h.mu is held.
func (h *gameHub) sendToLocked(c *gameClient, msg any) {
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

// closeAll disconnects all clients of this hub (used by reaper).
func (h *gameHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "triviabox_id"

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each /jeopardy/$gameid
// is its own isolated session.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*gameHub
	library     *Library
	idleTimeout time.Duration
}

func newGameManager(library *Library, idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*gameHub),
		library:     library,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *gameHub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newGameHub(gameID, gm.library)
	gm.hubs[gameID] = hub
	go hub.run(cfg)
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				close(hub.done)
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &gameClient{
			conn:     conn,
			send:     make(chan any, 8),
			playerID: playerID,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *gameClient) readPump(h *gameHub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg Action
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		select {
		case h.actions <- actionRequest{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *gameClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func serveGameClient(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write([]byte(gameClientHTML))
	}
}

// redirectNewGame handles GET /jeopardy by generating a new random game ID
// (with server-side collision detection) and redirecting to /jeopardy/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerJeopardyGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerJeopardyGame(cfg *Config, path string, library *Library, mux *httprouter.Router) {
	gm := newGameManager(library, cfg.sessionTimeout)

	// Root path → redirect to new random game
	mux.GET(cfg.prefix+path, redirectNewGame(cfg, cfg.prefix+path, gm))

	// Per-game client view (HTML)
	mux.GET(cfg.prefix+path+"/:gameid", serveGameClient(cfg))

	// Per-game websocket
	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	// Per-game QR code
	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)
}
