package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	categoryCount  = 5
	totalQuestions = 25

	// A board is playable once at least this many of its 25 slots are filled.
	// Missing slots are backfilled with placeholders at play time.
	minPlayableSlots = 20

	boardVersion = "1.0"
	boardType    = "jeopardy-game"
)

// values holds the point values of one category column, in board order.
var values = [5]int{100, 200, 300, 400, 500}

// Slot is one authored (category, value) cell: the answer read aloud first,
// and the question a player must respond with.
type Slot struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
	Used     bool   `json:"used"`
}

// FinalRound is the single wager-then-answer round played after the board
// is exhausted.
type FinalRound struct {
	Category string `json:"category"`
	Answer   string `json:"answer"`
	Question string `json:"question"`
}

// Board is a complete question set, in the same JSON shape used for
// download/upload interchange. Unauthored slots are nil.
type Board struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Categories  []string              `json:"categories"`
	Questions   map[int]map[int]*Slot `json:"questions"`
	Final       FinalRound            `json:"finalJeopardy"`
	DateCreated string                `json:"dateCreated"`
	Version     string                `json:"version"`
	Type        string                `json:"type"`
}

func newBoard() *Board {
	b := &Board{
		Categories: []string{"Category 1", "Category 2", "Category 3", "Category 4", "Category 5"},
		Questions:  make(map[int]map[int]*Slot, categoryCount),
		Final: FinalRound{
			Category: "Final Category",
			Answer:   "Final answer goes here",
			Question: "What is the final question?",
		},
		DateCreated: time.Now().UTC().Format(time.RFC3339),
		Version:     boardVersion,
		Type:        boardType,
	}

	for cat := 1; cat <= categoryCount; cat++ {
		b.Questions[cat] = map[int]*Slot{100: nil, 200: nil, 300: nil, 400: nil, 500: nil}
	}

	return b
}

// slotAt returns the slot for (category 1-5, value 100-500), or nil if the
// coordinates are out of range or the slot is unauthored.
func (b *Board) slotAt(category, value int) *Slot {
	col, ok := b.Questions[category]
	if !ok {
		return nil
	}
	return col[value]
}

func (b *Board) setSlot(category, value int, s *Slot) {
	if category < 1 || category > categoryCount {
		return
	}
	if b.Questions[category] == nil {
		b.Questions[category] = make(map[int]*Slot, len(values))
	}
	b.Questions[category][value] = s
}

// completedCount reports how many of the 25 slots have been authored.
func (b *Board) completedCount() int {
	count := 0
	for cat := 1; cat <= categoryCount; cat++ {
		for _, value := range values {
			if b.slotAt(cat, value) != nil {
				count++
			}
		}
	}
	return count
}

func (b *Board) complete() bool {
	return b.completedCount() >= minPlayableSlots
}

func (b *Board) clone() *Board {
	dup := &Board{
		Title:       b.Title,
		Description: b.Description,
		Categories:  append([]string(nil), b.Categories...),
		Questions:   make(map[int]map[int]*Slot, categoryCount),
		Final:       b.Final,
		DateCreated: b.DateCreated,
		Version:     b.Version,
		Type:        b.Type,
	}

	for cat := 1; cat <= categoryCount; cat++ {
		dup.Questions[cat] = make(map[int]*Slot, len(values))
		for _, value := range values {
			if s := b.slotAt(cat, value); s != nil {
				copied := *s
				dup.Questions[cat][value] = &copied
			} else {
				dup.Questions[cat][value] = nil
			}
		}
	}

	return dup
}

// forPlay returns a playable copy of the board: every unauthored slot is
// replaced with a placeholder, and all used flags are cleared. The session
// never sees nil slots.
func (b *Board) forPlay() *Board {
	dup := b.clone()
	for cat := 1; cat <= categoryCount; cat++ {
		for _, value := range values {
			if dup.Questions[cat][value] == nil {
				dup.Questions[cat][value] = &Slot{
					Answer:   "Question not created",
					Question: "What is a missing question?",
				}
			}
		}
	}
	dup.resetUsed()
	return dup
}

func (b *Board) resetUsed() {
	for cat := 1; cat <= categoryCount; cat++ {
		for _, value := range values {
			if s := b.slotAt(cat, value); s != nil {
				s.Used = false
			}
		}
	}
}

// normalizeCategories forces the category list to exactly five names,
// padding short or missing lists and defaulting blanks to "Category N".
// Imported files are the only source of boards that violate this.
func (b *Board) normalizeCategories() {
	names := b.Categories
	b.Categories = make([]string, categoryCount)

	for i := 0; i < categoryCount; i++ {
		name := ""
		if i < len(names) {
			name = strings.TrimSpace(names[i])
		}
		if name == "" {
			name = fmt.Sprintf("Category %d", i+1)
		}
		b.Categories[i] = name
	}
}

// sameGame reports whether two boards refer to the same saved game, using
// the same identity the upload dedupe check uses: exact title and creation
// date match.
func sameGame(a, b *Board) bool {
	return a.Title == b.Title && a.DateCreated == b.DateCreated
}

var errInvalidBoard = errors.New("invalid game file: missing questions or categories")

// parseBoard decodes an uploaded game file. Files without both a questions
// and a categories key are rejected outright; nothing is partially applied.
func parseBoard(data []byte) (*Board, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["questions"]; !ok {
		return nil, errInvalidBoard
	}
	if _, ok := probe["categories"]; !ok {
		return nil, errInvalidBoard
	}

	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}

	// Loaded boards always start unplayed, with a well-formed category list.
	b.resetUsed()
	b.normalizeCategories()

	return &b, nil
}
