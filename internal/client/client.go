// Package client maintains the websocket session with the dreamscape
// backend: it connects, reconnects with bounded backoff, decodes the
// message stream onto a channel the render loop drains, and carries user
// input upstream.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/world"
)

// Connection states, readable from any goroutine via State().
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	}
	return "disconnected"
}

// Reconnect policy: 1s, 2s, 4s, 8s, 16s, then give up.
const (
	maxReconnectAttempts = 5
	backoffBase          = time.Second
	backoffCap           = 30 * time.Second
	writeWait            = 10 * time.Second
	eventBufferSize      = 256
)

// Client is the websocket session. Run owns the connection from its own
// goroutine; the render loop consumes Events and calls SendInput.
type Client struct {
	log *zap.Logger
	url string

	events chan world.Message
	state  atomic.Int32

	mu   sync.Mutex
	conn *websocket.Conn
}

// New returns a client for the given server URL and session id. serverURL
// is the scheme and host, e.g. "ws://localhost:8000"; the session path is
// appended.
func New(log *zap.Logger, serverURL, sessionID string) *Client {
	return &Client{
		log:    log,
		url:    fmt.Sprintf("%s/ws/%s", serverURL, sessionID),
		events: make(chan world.Message, eventBufferSize),
	}
}

// Events is the inbound message stream. The channel is buffered; if the
// render loop stalls long enough to fill it, further messages are dropped
// with a warning rather than blocking the read loop.
func (c *Client) Events() <-chan world.Message {
	return c.events
}

// State returns the current connection state.
func (c *Client) State() State {
	return State(c.state.Load())
}

// Backoff returns the wait before reconnect attempt n (1-based): the base
// delay doubled per attempt, capped.
func Backoff(attempt int) time.Duration {
	d := backoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= backoffCap {
			return backoffCap
		}
	}
	if d > backoffCap {
		return backoffCap
	}
	return d
}

// Run connects and reads until ctx is cancelled or the reconnect budget is
// exhausted. Each successful connection resets the attempt counter, so a
// long-lived session can survive any number of separate drops.
func (c *Client) Run(ctx context.Context) error {
	attempt := 0
	for {
		if attempt == 0 {
			c.state.Store(int32(StateConnecting))
		} else {
			c.state.Store(int32(StateReconnecting))
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				c.state.Store(int32(StateDisconnected))
				return ctx.Err()
			}
			attempt++
			if attempt > maxReconnectAttempts {
				c.state.Store(int32(StateFailed))
				c.log.Error("giving up after repeated connection failures",
					zap.Int("attempts", attempt-1), zap.Error(err))
				return fmt.Errorf("connect %s: %w", c.url, err)
			}
			wait := Backoff(attempt)
			c.log.Warn("connection failed, retrying",
				zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(err))
			select {
			case <-ctx.Done():
				c.state.Store(int32(StateDisconnected))
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		c.setConn(conn)
		c.state.Store(int32(StateConnected))
		attempt = 0
		c.log.Info("connected", zap.String("url", c.url))

		err = c.readLoop(ctx, conn)
		c.setConn(nil)
		conn.Close()
		if ctx.Err() != nil {
			c.state.Store(int32(StateDisconnected))
			return ctx.Err()
		}
		c.log.Warn("connection lost", zap.Error(err))
		attempt = 1
		wait := Backoff(attempt)
		select {
		case <-ctx.Done():
			c.state.Store(int32(StateDisconnected))
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// readLoop decodes envelopes until the connection drops. Frames that do not
// parse as an envelope are logged and skipped; they never kill the
// connection.
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var msg world.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.log.Warn("dropping unparseable frame", zap.Error(err), zap.Int("bytes", len(raw)))
			continue
		}
		if msg.Type == "" {
			c.log.Warn("dropping frame without a type")
			continue
		}
		select {
		case c.events <- msg:
		default:
			c.log.Warn("event buffer full, dropping message", zap.String("type", msg.Type))
		}
	}
}

// SendInput sends a user_input message. While disconnected the input is
// dropped with a warning; the stream has no offline queue.
func (c *Client) SendInput(text string) {
	msg, err := world.NewUserInput(text)
	if err != nil {
		c.log.Error("encoding user input", zap.Error(err))
		return
	}
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		c.log.Warn("not connected, input dropped", zap.String("text", text))
		return
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		c.log.Warn("sending user input", zap.Error(err))
	}
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}
