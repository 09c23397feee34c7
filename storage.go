package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const librarySetsKey = "triviabox:saved-games"

var errDuplicateGame = errors.New("a game with this title and creation date already exists")

// Library is the saved question-set store. The in-memory list is
// authoritative; when Redis is configured and reachable it is written
// through on every change and read once at startup, so saved games survive
// restarts. When it isn't, games simply last for the process lifetime —
// callers never see the difference.
type Library struct {
	mu     sync.Mutex
	boards []*Board

	cfg *Config
	rdb *redis.Client
	ctx context.Context
}

func newLibrary(cfg *Config) *Library {
	lib := &Library{
		cfg: cfg,
		ctx: context.Background(),
	}

	if cfg.redisAddr == "" {
		return lib
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})

	pingCtx, cancel := context.WithTimeout(lib.ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logf(cfg, "STORE: Redis unreachable at %s, falling back to in-memory storage: %v", cfg.redisAddr, err)
		return lib
	}

	lib.rdb = rdb
	lib.load()

	return lib
}

// load pulls the saved-game list out of Redis at startup.
func (l *Library) load() {
	data, err := l.rdb.Get(l.ctx, librarySetsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logf(l.cfg, "STORE: Failed to load saved games: %v", err)
		}
		return
	}

	var boards []*Board
	if err := json.Unmarshal(data, &boards); err != nil {
		logf(l.cfg, "STORE: Corrupt saved game list, starting empty: %v", err)
		return
	}

	l.boards = boards
	logf(l.cfg, "STORE: Loaded %d saved games", len(boards))
}

// persist writes the whole list through to Redis, best-effort. Callers
// hold l.mu.
func (l *Library) persist() {
	if l.rdb == nil {
		return
	}

	data, err := json.Marshal(l.boards)
	if err != nil {
		logf(l.cfg, "STORE: Failed to encode saved games: %v", err)
		return
	}

	if err := l.rdb.Set(l.ctx, librarySetsKey, data, 0).Err(); err != nil {
		logf(l.cfg, "STORE: Failed to persist saved games: %v", err)
	}
}

// save appends a board and returns its id.
func (l *Library) save(b *Board) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.boards = append(l.boards, b)
	l.persist()

	return len(l.boards) - 1
}

// update replaces the board at id, keeping its position in the list.
func (l *Library) update(id int, b *Board) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id < 0 || id >= len(l.boards) {
		return false
	}

	l.boards[id] = b
	l.persist()

	return true
}

// all returns the saved boards in insertion order.
func (l *Library) all() []*Board {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]*Board(nil), l.boards...)
}

func (l *Library) get(id int) *Board {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id < 0 || id >= len(l.boards) {
		return nil
	}
	return l.boards[id]
}

func (l *Library) delete(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id < 0 || id >= len(l.boards) {
		return false
	}

	l.boards = append(l.boards[:id], l.boards[id+1:]...)
	l.persist()

	return true
}

func (l *Library) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.boards = nil
	l.persist()
}

// importBoard validates an uploaded game file and saves it, rejecting
// files already in the library.
func (l *Library) importBoard(data []byte) (*Board, error) {
	b, err := parseBoard(data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.boards {
		if sameGame(existing, b) {
			return nil, errDuplicateGame
		}
	}

	l.boards = append(l.boards, b)
	l.persist()

	return b, nil
}
