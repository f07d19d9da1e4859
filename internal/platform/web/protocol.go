package web

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Protocol: one JSON object per WebSocket text message.
//
//	Client → Server:
//	  {"type":"dir","dir":"up"}                      change direction
//	  {"type":"restart"}                             start a new game
//	  {"type":"resize","width":800,"height":600}     viewport in pixels
//	Server → Client:
//	  {"type":"welcome","id":"uuid","tickMs":80,"cellSize":25}
//	  {"type":"state","state":{...snapshot...}}
//	  {"type":"error","message":"..."}
const (
	MsgDir     = "dir"
	MsgRestart = "restart"
	MsgResize  = "resize"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

// ClientMessage is an incoming message from the browser.
type ClientMessage struct {
	Type   string `json:"type"`
	Dir    string `json:"dir,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Action converts a dir or restart message into a game action.
func (m ClientMessage) Action() (core.Action, error) {
	switch m.Type {
	case MsgRestart:
		return core.ActionRestart, nil
	case MsgDir:
		d, err := core.ParseDirection(m.Dir)
		if err != nil {
			return core.ActionNone, err
		}
		return core.ActionFor(d), nil
	default:
		return core.ActionNone, fmt.Errorf("message %q carries no action", m.Type)
	}
}

// WelcomeMsg is sent once, right after the WebSocket upgrade.
type WelcomeMsg struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	TickMS   int64  `json:"tickMs"`
	CellSize int    `json:"cellSize"`
}

// StateMsg carries a full game snapshot.
type StateMsg struct {
	Type  string        `json:"type"`
	State core.Snapshot `json:"state"`
}

// ErrorMsg reports why the server is closing the connection.
type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
