package main

import (
	"testing"
)

func newTestSession(t *testing.T, names ...string) *Session {
	t.Helper()

	s, err := newSession(names, defaultBoard(), defaultGameTitle, false)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	return s
}

// answerCell plays out one cell: select it, reveal the prompt, and either
// award it to a player or retire it unanswered.
func answerCell(s *Session, category, value, player int) {
	s.selectQuestion(category, value)
	s.showQuestion()
	if player >= 0 {
		s.playerCorrect(player)
	} else {
		s.nobodyCorrect()
	}
}

func TestNewSessionValidation(t *testing.T) {
	board := defaultBoard()

	tests := []struct {
		name   string
		roster []string
	}{
		{"empty roster", nil},
		{"blank name", []string{"Alice", "   "}},
		{"duplicate name", []string{"Alice", "Alice"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := newSession(test.roster, board, defaultGameTitle, false); err == nil {
				t.Fatalf("expected %s to be rejected", test.name)
			}
		})
	}

	s, err := newSession([]string{"  Alice  ", "Bob"}, board, defaultGameTitle, false)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.players[0].Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", s.players[0].Name)
	}
	if s.players[0].Color == s.players[1].Color {
		t.Fatalf("expected players to get distinct colors")
	}
	if s.screen != screenBoard {
		t.Fatalf("expected new session to open on the board, got %q", s.screen)
	}
}

func TestPlayerCorrectAwardsValueAndPick(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob", "Carol")

	answerCell(s, 2, 300, 1)

	if got := s.players[1].Score; got != 300 {
		t.Fatalf("expected Bob to score 300, got %d", got)
	}
	if s.selectorName() != "Bob" {
		t.Fatalf("expected Bob to pick next, got %q", s.selectorName())
	}
	if !s.board.slotAt(2, 300).Used {
		t.Fatalf("expected the cell to be retired")
	}
	if s.screen != screenBoard {
		t.Fatalf("expected return to the board, got %q", s.screen)
	}
	if s.questionsRemaining() != totalQuestions-1 {
		t.Fatalf("expected 24 cells remaining, got %d", s.questionsRemaining())
	}
}

func TestNobodyCorrectKeepsSelector(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")

	answerCell(s, 1, 100, 1)
	answerCell(s, 1, 200, -1)

	if s.selectorName() != "Bob" {
		t.Fatalf("expected the selector to keep the pick, got %q", s.selectorName())
	}
	if s.players[0].Score != 0 || s.players[1].Score != 100 {
		t.Fatalf("expected no points awarded for an unanswered cell")
	}
}

func TestUsedCellCannotBeReopened(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")

	answerCell(s, 1, 100, 0)

	s.selectQuestion(1, 100)
	if s.screen != screenBoard {
		t.Fatalf("expected reopening a used cell to be ignored")
	}

	s.selectQuestion(9, 100)
	if s.screen != screenBoard {
		t.Fatalf("expected unknown coordinates to be ignored")
	}
}

func TestCorrectRequiresRevealedPrompt(t *testing.T) {
	s := newTestSession(t, "Alice")

	s.selectQuestion(1, 100)
	s.playerCorrect(0)

	if s.players[0].Score != 0 {
		t.Fatalf("expected no award before the prompt is revealed")
	}
	if s.screen != screenQuestion {
		t.Fatalf("expected the cell to stay open, got %q", s.screen)
	}
}

func TestFinalWagerStartsWhenBoardExhausted(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")

	played := 0
	for cat := 1; cat <= categoryCount; cat++ {
		for _, value := range values {
			played++
			if played == totalQuestions {
				answerCell(s, cat, value, 0)
				continue
			}

			answerCell(s, cat, value, played%2)
			if s.screen != screenBoard {
				t.Fatalf("expected board screen after cell %d, got %q", played, s.screen)
			}
		}
	}

	if s.screen != screenFinalWager {
		t.Fatalf("expected the final wager after cell 25, got %q", s.screen)
	}
	for _, p := range s.players {
		if p.HasWagered || p.FinalWager != 0 {
			t.Fatalf("expected wagers to start cleared")
		}
	}
}

func TestMaxWagerFloor(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")
	s.screen = screenFinalWager

	s.players[0].Score = 400
	if got := s.maxWager(); got != 1000 {
		t.Fatalf("expected a 1000 floor for low scores, got %d", got)
	}

	s.players[0].Score = 2500
	if got := s.maxWager(); got != 2500 {
		t.Fatalf("expected the ceiling to track the score, got %d", got)
	}
}

func TestSubmitWagerBounds(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")
	s.screen = screenFinalWager
	s.players[0].Score = 2500

	if err := s.submitWager(-1); err == nil {
		t.Fatalf("expected negative wagers to be rejected")
	}
	if err := s.submitWager(2501); err == nil {
		t.Fatalf("expected over-ceiling wagers to be rejected")
	}
	if s.players[0].HasWagered {
		t.Fatalf("expected rejected wagers to leave the player untouched")
	}

	if err := s.submitWager(2500); err != nil {
		t.Fatalf("submit wager: %v", err)
	}
	if s.wagerTurn != 1 {
		t.Fatalf("expected the turn to pass to the next player, got %d", s.wagerTurn)
	}
	if s.screen != screenFinalWager {
		t.Fatalf("expected the wager screen until everyone has bet, got %q", s.screen)
	}

	if err := s.submitWager(0); err != nil {
		t.Fatalf("submit wager: %v", err)
	}
	if s.screen != screenFinalQuestion {
		t.Fatalf("expected the final question once all wagers are in, got %q", s.screen)
	}
}

func TestFinalCorrectPaysWagerOnce(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")
	s.screen = screenFinalWager
	s.players[0].Score = 600
	s.players[1].Score = 200

	if err := s.submitWager(800); err != nil {
		t.Fatalf("submit wager: %v", err)
	}
	if err := s.submitWager(500); err != nil {
		t.Fatalf("submit wager: %v", err)
	}

	// No payouts until the question is revealed.
	s.finalCorrect(0)
	if s.players[0].Score != 600 {
		t.Fatalf("expected no payout before the reveal")
	}

	s.showFinalQuestion()
	s.finalCorrect(0)
	s.finalCorrect(0)

	if got := s.players[0].Score; got != 1400 {
		t.Fatalf("expected the wager paid exactly once, got %d", got)
	}

	// A missed final answer costs nothing.
	if got := s.players[1].Score; got != 200 {
		t.Fatalf("expected no deduction for a wrong final answer, got %d", got)
	}
}

func TestFinishGameRanksStably(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob", "Carol")
	s.screen = screenFinalQuestion
	s.players[0].Score = 500
	s.players[1].Score = 500
	s.players[2].Score = 900

	s.finishGame()

	if s.screen != screenGameOver {
		t.Fatalf("expected game over, got %q", s.screen)
	}

	want := []string{"Carol", "Alice", "Bob"}
	for i, name := range want {
		if s.rankings[i].Name != name {
			t.Fatalf("expected rank %d to be %q, got %q", i+1, name, s.rankings[i].Name)
		}
	}
}

func TestResetGameRestoresBoard(t *testing.T) {
	s := newTestSession(t, "Alice", "Bob")

	answerCell(s, 1, 100, 0)
	answerCell(s, 3, 400, 1)

	s.resetGame()

	if s.screen != screenBoard {
		t.Fatalf("expected reset to return to the board, got %q", s.screen)
	}
	if s.selectorName() != "Alice" {
		t.Fatalf("expected the pick to return to the first player, got %q", s.selectorName())
	}
	for _, p := range s.players {
		if p.Score != 0 || p.FinalWager != 0 || p.HasWagered {
			t.Fatalf("expected player state cleared on reset")
		}
	}
	if s.questionsRemaining() != totalQuestions {
		t.Fatalf("expected every cell back in play, got %d remaining", s.questionsRemaining())
	}
	if s.board.slotAt(1, 100).Used || s.board.slotAt(3, 400).Used {
		t.Fatalf("expected used flags cleared on reset")
	}
}
