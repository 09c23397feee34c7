package main

import (
	"testing"
	"time"
)

func TestHubStopEndsRunLoop(t *testing.T) {
	hub := newGameHub("testgame", newTestLibrary())

	ran := make(chan struct{})
	go func() {
		hub.run(&Config{})
		close(ran)
	}()

	client := &gameClient{send: make(chan any, 8), playerID: "host"}
	hub.register <- client

	info, ok := (<-client.send).(SessionInfoMessage)
	if !ok || !info.IsHost {
		t.Fatalf("expected the first connection to become the host, got %#v", info)
	}
	if state, ok := (<-client.send).(StateMessage); !ok || state.Screen != "menu" {
		t.Fatalf("expected the menu state on connect, got %#v", state)
	}

	close(hub.done)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatalf("expected the run loop to exit once the hub is stopped")
	}
}

func TestSpectatorActionsIgnored(t *testing.T) {
	hub := newGameHub("testgame", newTestLibrary())

	go hub.run(&Config{})
	defer close(hub.done)

	host := &gameClient{send: make(chan any, 8), playerID: "host"}
	watcher := &gameClient{send: make(chan any, 8), playerID: "watcher"}
	hub.register <- host
	hub.register <- watcher

	// A spectator trying to start a game must be ignored outright; the
	// host's main_menu afterwards marks when both actions are processed.
	hub.actions <- actionRequest{
		client: watcher,
		msg:    Action{Type: "create_session", Players: []string{"Alice"}},
	}
	hub.actions <- actionRequest{
		client: host,
		msg:    Action{Type: "main_menu"},
	}

	deadline := time.After(time.Second)
	states := 0
	for states < 2 {
		select {
		case msg := <-host.send:
			state, ok := msg.(StateMessage)
			if !ok {
				continue
			}
			states++
			if state.Screen != "menu" {
				t.Fatalf("expected spectator actions to leave the hub on the menu, got %q", state.Screen)
			}
		case <-deadline:
			t.Fatalf("expected the marker action to be processed")
		}
	}
}
