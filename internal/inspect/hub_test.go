package inspect

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// Clients here carry nil websocket conns; the hub never writes to them directly.

func newTestClient(h *Hub, name string, buf int) *Client {
	return &Client{hub: h, send: make(chan []byte, buf), remoteAddr: name}
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func registered(h *Hub, c *Client) func() bool {
	return func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		_, ok := h.clients[c]
		return ok
	}
}

func decode(t *testing.T, raw []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return env
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(nil, 4, 8)
	go h.Run(ctx)

	c1 := newTestClient(h, "c1", 4)
	c2 := newTestClient(h, "c2", 4)
	h.register <- c1
	waitUntil(t, time.Second, registered(h, c1), "c1 not registered")
	h.register <- c2
	waitUntil(t, time.Second, registered(h, c2), "c2 not registered")

	if err := h.Publish(TypeUIState, map[string]any{"activeSection": "features"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	for _, c := range []*Client{c1, c2} {
		select {
		case raw := <-c.send:
			if env := decode(t, raw); env.Type != TypeUIState {
				t.Fatalf("%s got type %q", c.remoteAddr, env.Type)
			}
		case <-time.After(time.Second):
			t.Fatalf("%s did not receive broadcast", c.remoteAddr)
		}
	}
	if h.Clients() != 2 {
		t.Fatalf("Clients() = %d, want 2", h.Clients())
	}
}

func TestHubSendsSnapshotOnConnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(nil, 4, 8)

	// Published before Run so the broadcast only sits in the queue.
	if err := h.Publish(TypeUIState, map[string]any{"headerScrolled": true}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	c := newTestClient(h, "late", 4)
	h.register <- c
	go h.Run(ctx)

	waitUntil(t, time.Second, registered(h, c), "client not registered")
	select {
	case raw := <-c.send:
		env := decode(t, raw)
		if env.Type != TypeStateInit && env.Type != TypeUIState {
			t.Fatalf("first message type = %q", env.Type)
		}
	case <-time.After(time.Second):
		t.Fatalf("no snapshot delivered")
	}
}

func TestHubEvictsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(nil, 1, 8)
	go h.Run(ctx)

	slow := newTestClient(h, "slow", 1)
	h.register <- slow
	waitUntil(t, time.Second, registered(h, slow), "client not registered")

	h.broadcast <- []byte(`{"type":"ui_state"}`)
	h.broadcast <- []byte(`{"type":"ui_state"}`)

	waitUntil(t, time.Second, func() bool { return !registered(h, slow)() }, "slow client not evicted")

	// The buffered message is still readable, then the channel is closed.
	<-slow.send
	if _, ok := <-slow.send; ok {
		t.Fatalf("send channel not closed after eviction")
	}
}

func TestHubUnregisterIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(nil, 2, 8)
	go h.Run(ctx)

	c := newTestClient(h, "c", 2)
	h.register <- c
	waitUntil(t, time.Second, registered(h, c), "client not registered")
	h.unregister <- c
	h.unregister <- c
	waitUntil(t, time.Second, func() bool { return h.Clients() == 0 }, "client not removed")
}

func TestClientLeaveAfterHubStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil, 2, 8)
	go h.Run(ctx)

	c := newTestClient(h, "c", 2)
	h.register <- c
	waitUntil(t, time.Second, registered(h, c), "client not registered")
	cancel()
	<-h.done

	left := make(chan struct{})
	go func() {
		// More than the unregister buffer holds.
		for i := 0; i < 64; i++ {
			c.leave()
		}
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatalf("leave blocked after hub stopped")
	}
}
