package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// newTestServer starts a server whose ticks never fire during a test, so
// every state message comes from connect, resize or restart.
func newTestServer(t *testing.T, maxSessions int) *httptest.Server {
	t.Helper()

	game := core.DefaultConfig()
	game.TickInterval = time.Hour
	game.Seed = 3

	srv, err := NewServer(Config{
		Variant:     snake.IDRemap,
		Game:        game,
		MaxSessions: maxSessions,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + WebSocketPath
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readJSON[T any](t *testing.T, ws *websocket.Conn) T {
	t.Helper()
	var v T
	if err := ws.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if err := ws.ReadJSON(&v); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	return v
}

func TestWebSocketSession(t *testing.T) {
	ts := newTestServer(t, 0)
	ws := dial(t, ts)

	welcome := readJSON[WelcomeMsg](t, ws)
	if welcome.Type != MsgWelcome || welcome.ID == "" {
		t.Fatalf("Unexpected welcome: %+v", welcome)
	}
	if welcome.TickMS != time.Hour.Milliseconds() || welcome.CellSize != 25 {
		t.Errorf("Welcome tickMs=%d cellSize=%d", welcome.TickMS, welcome.CellSize)
	}

	state := readJSON[StateMsg](t, ws)
	if state.Type != MsgState {
		t.Fatalf("Expected a state message, got %q", state.Type)
	}
	if state.State.Grid.Cols != 32 || state.State.Grid.Rows != 24 {
		t.Errorf("Initial grid = %dx%d, expected 32x24", state.State.Grid.Cols, state.State.Grid.Rows)
	}
	if len(state.State.Snake) != 3 || state.State.GameOver {
		t.Errorf("Unexpected initial snapshot: %+v", state.State)
	}

	// Garbage is ignored and the session keeps working.
	if err := ws.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteJSON(ClientMessage{Type: MsgDir, Dir: "sideways"}); err != nil {
		t.Fatal(err)
	}

	if err := ws.WriteJSON(ClientMessage{Type: MsgResize, Width: 500, Height: 500}); err != nil {
		t.Fatal(err)
	}
	state = readJSON[StateMsg](t, ws)
	if state.State.Grid.Cols != 20 || state.State.Grid.Rows != 20 {
		t.Errorf("Resized grid = %dx%d, expected 20x20", state.State.Grid.Cols, state.State.Grid.Rows)
	}

	if err := ws.WriteJSON(ClientMessage{Type: MsgRestart}); err != nil {
		t.Fatal(err)
	}
	state = readJSON[StateMsg](t, ws)
	if state.State.Tick != 0 || state.State.Score != 0 || state.State.GameOver {
		t.Errorf("Restart should publish a fresh game: %+v", state.State)
	}
	if state.State.Grid.Cols != 20 {
		t.Errorf("Restart should keep the last viewport, got %d cols", state.State.Grid.Cols)
	}
}

func TestSessionLimit(t *testing.T) {
	ts := newTestServer(t, 1)

	first := dial(t, ts)
	readJSON[WelcomeMsg](t, first)

	second := dial(t, ts)
	msg := readJSON[ErrorMsg](t, second)
	if msg.Type != MsgError || msg.Message == "" {
		t.Errorf("Expected an error message, got %+v", msg)
	}

	if err := second.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if _, _, err := second.ReadMessage(); err == nil {
		t.Error("Rejected connection should be closed")
	}
}

func TestStaticClient(t *testing.T) {
	ts := newTestServer(t, 0)

	for path, want := range map[string]string{
		"/":        "<canvas",
		"/main.js": "new WebSocket",
	} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
		if !strings.Contains(string(body), want) {
			t.Errorf("GET %s does not contain %q", path, want)
		}
	}
}

func TestNewServerUnknownVariant(t *testing.T) {
	if _, err := NewServer(Config{Variant: "tetris"}, log.New(io.Discard)); err == nil {
		t.Error("NewServer should reject an unknown variant")
	}
}

func TestClientMessageAction(t *testing.T) {
	tests := []struct {
		msg     ClientMessage
		want    core.Action
		wantErr bool
	}{
		{ClientMessage{Type: MsgDir, Dir: "up"}, core.ActionUp, false},
		{ClientMessage{Type: MsgDir, Dir: "LEFT"}, core.ActionLeft, false},
		{ClientMessage{Type: MsgRestart}, core.ActionRestart, false},
		{ClientMessage{Type: MsgDir, Dir: "sideways"}, core.ActionNone, true},
		{ClientMessage{Type: MsgResize, Width: 10}, core.ActionNone, true},
	}

	for _, tt := range tests {
		got, err := tt.msg.Action()
		if (err != nil) != tt.wantErr {
			t.Errorf("%+v: err = %v, wantErr %v", tt.msg, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("%+v: action = %v, expected %v", tt.msg, got, tt.want)
		}
	}
}
