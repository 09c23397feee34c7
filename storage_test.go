package main

import (
	"encoding/json"
	"errors"
	"testing"
)

// newTestLibrary returns an in-memory library with no Redis backing.
func newTestLibrary() *Library {
	return newLibrary(&Config{})
}

func TestLibrarySaveAndGet(t *testing.T) {
	lib := newTestLibrary()

	first := defaultBoard()
	second := defaultBoard()
	second.Title = "Second Game"
	second.DateCreated = "2026-02-02T00:00:00Z"

	if id := lib.save(first); id != 0 {
		t.Fatalf("expected the first save to get id 0, got %d", id)
	}
	if id := lib.save(second); id != 1 {
		t.Fatalf("expected the second save to get id 1, got %d", id)
	}

	boards := lib.all()
	if len(boards) != 2 {
		t.Fatalf("expected 2 saved games, got %d", len(boards))
	}
	if boards[0].Title != first.Title || boards[1].Title != "Second Game" {
		t.Fatalf("expected saves returned in insertion order")
	}

	if got := lib.get(1); got == nil || got.Title != "Second Game" {
		t.Fatalf("expected get to return the saved board")
	}
	if lib.get(2) != nil || lib.get(-1) != nil {
		t.Fatalf("expected out-of-range ids to return nil")
	}
}

func TestLibraryUpdate(t *testing.T) {
	lib := newTestLibrary()
	lib.save(defaultBoard())

	replacement := defaultBoard()
	replacement.Title = "Revised Game"

	if !lib.update(0, replacement) {
		t.Fatalf("expected the update to succeed")
	}
	if got := lib.get(0).Title; got != "Revised Game" {
		t.Fatalf("expected the board replaced in place, got %q", got)
	}

	if lib.update(5, replacement) {
		t.Fatalf("expected out-of-range updates to be refused")
	}
}

func TestLibraryDeleteAndClear(t *testing.T) {
	lib := newTestLibrary()

	for i, title := range []string{"One", "Two", "Three"} {
		b := defaultBoard()
		b.Title = title
		b.DateCreated = b.DateCreated + string(rune('a'+i))
		lib.save(b)
	}

	if lib.delete(3) {
		t.Fatalf("expected out-of-range deletes to be refused")
	}
	if !lib.delete(1) {
		t.Fatalf("expected the delete to succeed")
	}

	boards := lib.all()
	if len(boards) != 2 || boards[0].Title != "One" || boards[1].Title != "Three" {
		t.Fatalf("expected the remaining games to close ranks, got %d", len(boards))
	}

	lib.clear()
	if len(lib.all()) != 0 {
		t.Fatalf("expected a cleared library to be empty")
	}
}

func TestImportBoardDedupes(t *testing.T) {
	lib := newTestLibrary()

	data, err := json.Marshal(defaultBoard())
	if err != nil {
		t.Fatalf("marshal board: %v", err)
	}

	if _, err := lib.importBoard(data); err != nil {
		t.Fatalf("import board: %v", err)
	}
	if _, err := lib.importBoard(data); !errors.Is(err, errDuplicateGame) {
		t.Fatalf("expected a duplicate import to be refused, got %v", err)
	}
	if len(lib.all()) != 1 {
		t.Fatalf("expected exactly one saved game after the duplicate import")
	}
}

func TestImportBoardRejectsInvalidFiles(t *testing.T) {
	lib := newTestLibrary()

	if _, err := lib.importBoard([]byte(`{"title":"no board here"}`)); !errors.Is(err, errInvalidBoard) {
		t.Fatalf("expected errInvalidBoard, got %v", err)
	}
	if len(lib.all()) != 0 {
		t.Fatalf("expected nothing saved from a rejected import")
	}
}
