// Package inspect serves the coordinator's UI state over a websocket so the
// page's scroll-spy and reveal behaviour can be watched from a browser or CLI.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 20 * time.Second
)

// envelope is the wire format: {type, ts, data}.
type envelope struct {
	Type string     `json:"type"`
	Ts   *time.Time `json:"ts,omitempty"`
	Data any        `json:"data,omitempty"`
}

// Hub fans out state messages to connected clients. Slow clients whose send
// queue is full are disconnected.
type Hub struct {
	logger *slog.Logger

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns

	mu      sync.Mutex
	clients map[*Client]struct{}
	latest  []byte

	sendBuf int
}

// NewHub creates a hub. Call Run to start it.
func NewHub(logger *slog.Logger, sendBuf, broadcastBuf int) *Hub {
	if sendBuf <= 0 {
		sendBuf = 32
	}
	if broadcastBuf <= 0 {
		broadcastBuf = 128
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		logger:     logger,
		broadcast:  make(chan []byte, broadcastBuf),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
		sendBuf:    sendBuf,
	}
}

// Run processes registrations and broadcasts until ctx is canceled. It must
// be called at most once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			latest := h.latest
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("inspect client connected", "remote_addr", c.remoteAddr, "clients", n)
			if latest != nil {
				select {
				case c.send <- latest:
				default:
				}
			}

		case c := <-h.unregister:
			h.remove(c, "unregister")

		case msg := <-h.broadcast:
			var slow []*Client
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.Unlock()
			for _, c := range slow {
				h.remove(c, "slow_client")
			}
		}
	}
}

// Message types sent to clients.
const (
	TypeStateInit = "state_init"
	TypeUIState   = "ui_state"
)

// Publish serializes v as a message of type typ and queues it for broadcast
// without blocking. v is also kept as the snapshot new clients receive as
// their state_init message.
func (h *Hub) Publish(typ string, v any) error {
	now := time.Now().UTC()
	msg, err := json.Marshal(envelope{Type: typ, Ts: &now, Data: v})
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(envelope{Type: TypeStateInit, Ts: &now, Data: v})
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.latest = snapshot
	h.mu.Unlock()

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("inspect broadcast queue full, dropping message", "type", typ)
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c.conn != nil {
			_ = c.conn.Close()
		}
		close(c.send)
		delete(h.clients, c)
	}
}

func (h *Hub) remove(c *Client, reason string) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	close(c.send)
	h.logger.Info("inspect client disconnected", "remote_addr", c.remoteAddr, "reason", reason, "clients", n)
}

// Client is one websocket connection.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					c.hub.logger.Debug("inspect write failed", "remote_addr", c.remoteAddr, "error", err)
				}
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages and unregisters on disconnect.
func (c *Client) readPump() {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.leave()
			return
		}
	}
}

// leave unregisters c unless the hub has stopped, in which case closeAll
// already dropped it.
func (c *Client) leave() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades requests to websocket clients of h.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("inspect upgrade failed", "error", err)
			return
		}
		c := &Client{
			hub:        h,
			conn:       conn,
			send:       make(chan []byte, h.sendBuf),
			remoteAddr: r.RemoteAddr,
		}
		select {
		case h.register <- c:
		case <-h.done:
			_ = conn.Close()
			return
		}
		go c.writePump()
		go c.readPump()
	})
}

// Serve listens on addr and serves the hub at /state until ctx is canceled.
func Serve(ctx context.Context, addr string, h *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/state", h.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("inspect server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
