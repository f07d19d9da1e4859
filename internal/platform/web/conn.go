package web

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/session"
)

const maxMessageSize = 1024

// Conn manages a single WebSocket player session.
type Conn struct {
	ID string

	ws           *websocket.Conn
	writeTimeout time.Duration
	logger       *log.Logger

	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn wraps ws with a fresh session ID.
func NewConn(ws *websocket.Conn, writeTimeout time.Duration, logger *log.Logger) *Conn {
	id := uuid.New().String()
	return &Conn{
		ID:           id,
		ws:           ws,
		writeTimeout: writeTimeout,
		logger:       logger.With("session", id),
	}
}

// Send serializes msg to JSON and writes it with a write deadline.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if c.writeTimeout > 0 {
		if err := c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// SendErrorAndClose reports msg to the client, then closes the connection.
func (c *Conn) SendErrorAndClose(msg string) {
	if err := c.Send(ErrorMsg{Type: MsgError, Message: msg}); err != nil {
		c.logger.Debug("error message not delivered", "error", err)
	}
	c.Close()
}

// Close closes the underlying socket. Safe to call multiple times.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop forwards client messages to ctrl until the client disconnects.
func (c *Conn) ReadLoop(ctrl *session.Controller) {
	c.ws.SetReadLimit(maxMessageSize)

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.logger.Debug("bad message", "error", err)
			continue
		}

		switch msg.Type {
		case MsgResize:
			ctrl.Resize(msg.Width, msg.Height)
		case MsgDir, MsgRestart:
			action, err := msg.Action()
			if err != nil {
				c.logger.Debug("bad action", "error", err)
				continue
			}
			ctrl.Send(action)
		default:
			c.logger.Debug("unknown message type", "type", msg.Type)
		}
	}
}

// WriteLoop sends every snapshot from sink as a state message until ctx ends
// or a write fails.
func (c *Conn) WriteLoop(ctx context.Context, sink *session.ChannelSink) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-sink.Snapshots():
			if err := c.Send(StateMsg{Type: MsgState, State: snap}); err != nil {
				return err
			}
		}
	}
}

// ConnManager tracks active connections.
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager.
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

var errServerFull = errors.New("server full")

// Add registers a connection unless limit connections are already active.
// A limit of zero or less means unlimited.
func (m *ConnManager) Add(c *Conn, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > 0 && len(m.conns) >= limit {
		return errServerFull
	}
	m.conns[c.ID] = c
	return nil
}

// Remove unregisters a connection.
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections.
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// CloseAll closes every active connection.
func (m *ConnManager) CloseAll() {
	m.mu.RLock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	m.mu.RUnlock()

	for _, c := range list {
		c.Close()
	}
}
