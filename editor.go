package main

import (
	"errors"
	"strings"
	"time"
)

// Editor walks an author through the 25 board slots in a fixed order:
// category 1 through 5, values ascending within each category. The step
// only advances on a successful save, so step 25 means 25 slots were
// saved this pass; partially-filled boards come from re-editing saved
// games, and can be finished once 20 or more slots are filled.
type Editor struct {
	board   *Board
	step    int // 0..25
	editing bool
}

func newEditor() *Editor {
	return &Editor{board: newBoard()}
}

// newEditorFrom opens an existing board for editing, starting back at the
// first slot with all authored content preserved.
func newEditorFrom(b *Board) *Editor {
	return &Editor{board: b.clone(), editing: true}
}

// done reports whether every slot has been visited this pass.
func (e *Editor) done() bool {
	return e.step >= totalQuestions
}

// category returns the 1-based category of the slot under the cursor.
func (e *Editor) category() int {
	return e.step/len(values) + 1
}

// value returns the point value of the slot under the cursor.
func (e *Editor) value() int {
	return values[e.step%len(values)]
}

// setCategories names the five columns. Blank names fall back to
// "Category N". Renaming never touches authored slots, so categories can
// be revisited at any point.
func (e *Editor) setCategories(names []string) {
	e.board.Categories = names
	e.board.normalizeCategories()
}

// currentSlot returns any previously-authored content for the slot under
// the cursor, for pre-filling the editing fields.
func (e *Editor) currentSlot() (answer, question string) {
	if e.done() {
		return "", ""
	}
	if s := e.board.slotAt(e.category(), e.value()); s != nil {
		return s.Answer, s.Question
	}
	return "", ""
}

var (
	errSlotFieldsRequired = errors.New("both the answer and question fields are required")
	errAllSlotsVisited    = errors.New("all 25 questions have been created")
)

// saveSlot writes the slot under the cursor and advances to the next one.
// Saving is the only way forward: empty fields are rejected and the cursor
// stays put.
func (e *Editor) saveSlot(answer, question string) error {
	if e.done() {
		return errAllSlotsVisited
	}

	answer = strings.TrimSpace(answer)
	question = strings.TrimSpace(question)
	if answer == "" || question == "" {
		return errSlotFieldsRequired
	}

	e.board.setSlot(e.category(), e.value(), &Slot{
		Answer:   answer,
		Question: question,
	})
	e.step++

	return nil
}

// previous steps the cursor back one slot, first quietly saving the
// in-progress fields when both are filled in. A no-op on the first slot.
func (e *Editor) previous(answer, question string) {
	if e.step == 0 {
		return
	}

	if !e.done() {
		answer = strings.TrimSpace(answer)
		question = strings.TrimSpace(question)
		if answer != "" && question != "" {
			e.board.setSlot(e.category(), e.value(), &Slot{
				Answer:   answer,
				Question: question,
			})
		}
	}

	e.step--
}

// complete reports whether the board has enough slots filled to play.
func (e *Editor) complete() bool {
	return e.board.complete()
}

// categoryProgress returns filled-slot counts per category, for the
// progress display.
func (e *Editor) categoryProgress() [categoryCount]int {
	var progress [categoryCount]int
	for cat := 1; cat <= categoryCount; cat++ {
		for _, value := range values {
			if e.board.slotAt(cat, value) != nil {
				progress[cat-1]++
			}
		}
	}
	return progress
}

// export assembles the finished question set. Blank metadata gets the
// stock defaults; the creation date is only stamped for new games, so
// edits keep the original identity.
func (e *Editor) export(title, description string, final *FinalRound) *Board {
	b := e.board.clone()

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Custom Jeopardy Game"
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = "Custom game created with the question editor"
	}

	b.Title = title
	b.Description = description

	if final != nil {
		b.Final = *final
	}

	if !e.editing || b.DateCreated == "" {
		b.DateCreated = time.Now().UTC().Format(time.RFC3339)
	}

	b.Version = boardVersion
	b.Type = boardType

	return b
}
