package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// screen enumerates the stages a game session moves through. Transitions
// only ever happen inside Session methods; callers that fire an operation
// in the wrong screen get a silent no-op.
type screen string

const (
	screenBoard         screen = "board"
	screenQuestion      screen = "question"
	screenFinalWager    screen = "final_wager"
	screenFinalQuestion screen = "final_question"
	screenGameOver      screen = "game_over"
)

var playerColors = [...]string{
	"#FF6464", "#64FF64", "#6464FF", "#FFFF64", "#FF64FF",
}

// GamePlayer is one contestant in a session.
type GamePlayer struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Color      string `json:"color"`
	FinalWager int    `json:"finalWager"`
	HasWagered bool   `json:"hasWagered"`

	awarded bool // final-round wager already paid out
}

// Session owns one running game: the roster, the playable board copy,
// whose turn it is to pick, and the final-round sub-state. All methods are
// synchronous; the owning hub serializes access.
type Session struct {
	players []*GamePlayer
	board   *Board
	title   string
	custom  bool

	selector int // index of the player entitled to pick the next cell
	answered int

	currentCategory int
	currentValue    int
	current         *Slot
	promptShown     bool

	wagerTurn     int
	finalRevealed bool

	rankings []*GamePlayer

	screen screen
}

var errEmptyRoster = errors.New("at least one player name is required")

// newSession builds a roster from the given names and starts a game on a
// playable copy of the board. Names are trimmed; empties and duplicates
// are rejected.
func newSession(names []string, board *Board, title string, custom bool) (*Session, error) {
	if len(names) == 0 {
		return nil, errEmptyRoster
	}

	seen := make(map[string]bool, len(names))
	players := make([]*GamePlayer, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errEmptyRoster
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate player name: %q", name)
		}
		seen[name] = true

		players = append(players, &GamePlayer{
			Name:  name,
			Color: playerColors[len(players)%len(playerColors)],
		})
	}

	return &Session{
		players: players,
		board:   board.forPlay(),
		title:   title,
		custom:  custom,
		screen:  screenBoard,
	}, nil
}

func (s *Session) questionsRemaining() int {
	return totalQuestions - s.answered
}

// selectorName returns the name of the player who picks the next cell.
func (s *Session) selectorName() string {
	return s.players[s.selector].Name
}

// selectQuestion opens the cell at (category, value). Used cells, unknown
// coordinates, and calls outside the board screen are ignored.
func (s *Session) selectQuestion(category, value int) {
	if s.screen != screenBoard {
		return
	}

	slot := s.board.slotAt(category, value)
	if slot == nil || slot.Used {
		return
	}

	s.currentCategory = category
	s.currentValue = value
	s.current = slot
	s.promptShown = false
	s.screen = screenQuestion
}

// showQuestion reveals the prompt text for the open cell, enabling the
// per-player correct buttons.
func (s *Session) showQuestion() {
	if s.screen != screenQuestion {
		return
	}
	s.promptShown = true
}

// playerCorrect awards the open cell's value to the given player, who also
// becomes the next selector.
func (s *Session) playerCorrect(player int) {
	if s.screen != screenQuestion || !s.promptShown || s.current == nil {
		return
	}
	if player < 0 || player >= len(s.players) {
		return
	}

	s.players[player].Score += s.currentValue
	s.selector = player

	s.resolveCurrent()
}

// nobodyCorrect retires the open cell without awarding points; the selector
// keeps the next pick.
func (s *Session) nobodyCorrect() {
	if s.screen != screenQuestion || !s.promptShown || s.current == nil {
		return
	}

	s.resolveCurrent()
}

func (s *Session) resolveCurrent() {
	s.current.Used = true
	s.current = nil
	s.answered++

	if s.answered >= totalQuestions {
		s.startFinalWager()
		return
	}

	s.screen = screenBoard
}

func (s *Session) startFinalWager() {
	for _, p := range s.players {
		p.FinalWager = 0
		p.HasWagered = false
		p.awarded = false
	}
	s.wagerTurn = 0
	s.screen = screenFinalWager
}

// maxWager is the ceiling for the player currently wagering: the greater of
// 1000 and their score, so players in the red can still bet up to 1000.
func (s *Session) maxWager() int {
	return max(1000, s.players[s.wagerTurn].Score)
}

// submitWager records the wager for the player whose turn it is. Amounts
// outside [0, maxWager] are rejected and leave the player's state untouched.
func (s *Session) submitWager(amount int) error {
	if s.screen != screenFinalWager {
		return nil
	}

	ceiling := s.maxWager()
	if amount < 0 || amount > ceiling {
		return fmt.Errorf("wager must be between 0 and %d", ceiling)
	}

	p := s.players[s.wagerTurn]
	p.FinalWager = amount
	p.HasWagered = true

	s.wagerTurn++
	if s.wagerTurn >= len(s.players) {
		s.finalRevealed = false
		s.screen = screenFinalQuestion
	}

	return nil
}

func (s *Session) showFinalQuestion() {
	if s.screen != screenFinalQuestion {
		return
	}
	s.finalRevealed = true
}

// finalCorrect pays out the player's recorded wager. Wrong answers cost
// nothing, matching the table rules this game has always used, and repeat
// calls for the same player are ignored.
func (s *Session) finalCorrect(player int) {
	if s.screen != screenFinalQuestion || !s.finalRevealed {
		return
	}
	if player < 0 || player >= len(s.players) {
		return
	}

	p := s.players[player]
	if p.awarded {
		return
	}

	p.Score += p.FinalWager
	p.awarded = true
}

// finishGame ends the session and computes final standings: descending by
// score, ties keeping roster order.
func (s *Session) finishGame() {
	if s.screen != screenFinalQuestion {
		return
	}

	ranked := append([]*GamePlayer(nil), s.players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	s.rankings = ranked
	s.screen = screenGameOver
}

// resetGame restarts the session with the same roster: scores and wagers
// zeroed, every cell unplayed.
func (s *Session) resetGame() {
	for _, p := range s.players {
		p.Score = 0
		p.FinalWager = 0
		p.HasWagered = false
		p.awarded = false
	}

	s.selector = 0
	s.answered = 0
	s.currentCategory = 0
	s.currentValue = 0
	s.current = nil
	s.promptShown = false
	s.wagerTurn = 0
	s.finalRevealed = false
	s.rankings = nil

	s.board.resetUsed()
	s.screen = screenBoard
}
