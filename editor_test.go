package main

import (
	"errors"
	"testing"
)

func TestEditorCursorOrder(t *testing.T) {
	e := newEditor()

	if e.category() != 1 || e.value() != 100 {
		t.Fatalf("expected the cursor to start at category 1 for 100, got %d for %d", e.category(), e.value())
	}

	for i := 0; i < len(values); i++ {
		if err := e.saveSlot("An answer", "What is a question?"); err != nil {
			t.Fatalf("save slot %d: %v", i, err)
		}
	}

	if e.category() != 2 || e.value() != 100 {
		t.Fatalf("expected category 2 for 100 after five saves, got %d for %d", e.category(), e.value())
	}

	e.previous("", "")
	if e.category() != 1 || e.value() != 500 {
		t.Fatalf("expected category 1 for 500 after stepping back, got %d for %d", e.category(), e.value())
	}
}

func TestSaveSlotRejectsEmptyFields(t *testing.T) {
	e := newEditor()

	tests := []struct {
		name     string
		answer   string
		question string
	}{
		{"both empty", "", ""},
		{"empty question", "An answer", ""},
		{"empty answer", "", "What is a question?"},
		{"whitespace only", "   ", "  "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := e.saveSlot(test.answer, test.question); !errors.Is(err, errSlotFieldsRequired) {
				t.Fatalf("expected errSlotFieldsRequired, got %v", err)
			}
			if e.step != 0 {
				t.Fatalf("expected the cursor to stay put on a rejected save")
			}
		})
	}

	if err := e.saveSlot("  An answer  ", "  What is a question?  "); err != nil {
		t.Fatalf("save slot: %v", err)
	}
	if got := e.board.slotAt(1, 100).Answer; got != "An answer" {
		t.Fatalf("expected fields trimmed on save, got %q", got)
	}
}

func TestPreviousSavesFilledFields(t *testing.T) {
	e := newEditor()

	// A no-op on the very first slot.
	e.previous("An answer", "What is a question?")
	if e.step != 0 {
		t.Fatalf("expected previous on the first slot to do nothing")
	}

	if err := e.saveSlot("First answer", "What is first?"); err != nil {
		t.Fatalf("save slot: %v", err)
	}

	// Stepping back with both fields filled saves them quietly.
	e.previous("Second answer", "What is second?")
	if e.step != 0 {
		t.Fatalf("expected the cursor back on the first slot, got step %d", e.step)
	}
	if s := e.board.slotAt(1, 200); s == nil || s.Answer != "Second answer" {
		t.Fatalf("expected the in-progress slot saved on the way back")
	}

	// Stepping back with a half-filled slot discards it.
	if err := e.saveSlot("First answer", "What is first?"); err != nil {
		t.Fatalf("save slot: %v", err)
	}
	e.previous("Replacement", "")
	if s := e.board.slotAt(1, 200); s.Answer != "Second answer" {
		t.Fatalf("expected half-filled fields discarded, got %q", s.Answer)
	}
}

func TestSaveSlotStopsAfterLast(t *testing.T) {
	e := newEditor()

	for i := 0; i < totalQuestions; i++ {
		if err := e.saveSlot("An answer", "What is a question?"); err != nil {
			t.Fatalf("save slot %d: %v", i, err)
		}
	}

	if !e.done() {
		t.Fatalf("expected the editor to be done after 25 saves")
	}
	if err := e.saveSlot("An answer", "What is a question?"); !errors.Is(err, errAllSlotsVisited) {
		t.Fatalf("expected errAllSlotsVisited, got %v", err)
	}
}

func TestSetCategoriesKeepsSlots(t *testing.T) {
	e := newEditor()

	if err := e.saveSlot("An answer", "What is a question?"); err != nil {
		t.Fatalf("save slot: %v", err)
	}

	e.setCategories([]string{"  History  ", "", "Science"})

	want := []string{"History", "Category 2", "Science", "Category 4", "Category 5"}
	for i, name := range want {
		if e.board.Categories[i] != name {
			t.Fatalf("expected category %d to be %q, got %q", i+1, name, e.board.Categories[i])
		}
	}

	if e.board.slotAt(1, 100) == nil {
		t.Fatalf("expected renaming categories to preserve authored slots")
	}
}

func TestCategoryProgress(t *testing.T) {
	e := newEditor()

	for i := 0; i < 7; i++ {
		if err := e.saveSlot("An answer", "What is a question?"); err != nil {
			t.Fatalf("save slot %d: %v", i, err)
		}
	}

	progress := e.categoryProgress()
	want := [categoryCount]int{5, 2, 0, 0, 0}
	if progress != want {
		t.Fatalf("expected progress %v, got %v", want, progress)
	}

	if e.complete() {
		t.Fatalf("expected 7 slots to fall short of playable")
	}

	for i := 7; i < minPlayableSlots; i++ {
		if err := e.saveSlot("An answer", "What is a question?"); err != nil {
			t.Fatalf("save slot %d: %v", i, err)
		}
	}

	if !e.complete() {
		t.Fatalf("expected %d slots to be playable", minPlayableSlots)
	}
}

func TestExportDefaultsMetadata(t *testing.T) {
	e := newEditor()

	b := e.export("   ", "", nil)

	if b.Title != "Custom Jeopardy Game" {
		t.Fatalf("expected the stock title for a blank one, got %q", b.Title)
	}
	if b.Description == "" {
		t.Fatalf("expected a stock description for a blank one")
	}
	if b.DateCreated == "" {
		t.Fatalf("expected a creation date to be stamped")
	}
	if b.Version != boardVersion || b.Type != boardType {
		t.Fatalf("expected interchange metadata to be stamped")
	}

	final := &FinalRound{Category: "GEOGRAPHY", Answer: "The largest ocean", Question: "What is the Pacific?"}
	b = e.export("Quiz Night", "Pub quiz", final)
	if b.Title != "Quiz Night" || b.Final.Category != "GEOGRAPHY" {
		t.Fatalf("expected provided metadata to be kept")
	}
}

func TestExportKeepsIdentityWhenEditing(t *testing.T) {
	source := defaultBoard()
	source.DateCreated = "2024-01-01T00:00:00Z"

	e := newEditorFrom(source)
	b := e.export(source.Title, source.Description, nil)

	if b.DateCreated != "2024-01-01T00:00:00Z" {
		t.Fatalf("expected edits to keep the original creation date, got %q", b.DateCreated)
	}
	if !sameGame(source, b) {
		t.Fatalf("expected an edited board to keep its identity")
	}

	// The source board is never mutated through the editor.
	if err := e.saveSlot("New answer", "What is new?"); err != nil {
		t.Fatalf("save slot: %v", err)
	}
	if source.slotAt(1, 100).Answer == "New answer" {
		t.Fatalf("expected the editor to work on a copy")
	}
}
