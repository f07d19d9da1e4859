// Package web serves the browser client and runs one Snake session per
// WebSocket connection.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
)

// WebSocketPath is the endpoint the browser client connects to.
const WebSocketPath = "/ws"

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":8080").
	Addr string

	// Variant is the registry ID of the game each connection plays.
	Variant string

	// Game holds grid bounds, tick interval and seed for each session.
	Game core.RuntimeConfig

	// MaxSessions limits concurrent connections. Zero means unlimited.
	MaxSessions int

	// WriteTimeout bounds every WebSocket write.
	WriteTimeout time.Duration
}

// Server serves the canvas client and the WebSocket endpoint.
type Server struct {
	config   Config
	logger   *log.Logger
	conns    *ConnManager
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer creates a web server. A nil logger logs to stderr.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	if !registry.Exists(cfg.Variant) {
		return nil, fmt.Errorf("web: unknown game variant %q", cfg.Variant)
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "gridsnake-web",
		})
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static files: %w", err)
	}

	s := &Server{
		config: cfg,
		logger: logger,
		conns:  NewConnManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc(WebSocketPath, s.handleWebSocket)
	s.mux.Handle("/", http.FileServer(http.FS(static)))
	return s, nil
}

// Handler returns the HTTP handler serving the client and WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ActiveSessions returns the number of connected players.
func (s *Server) ActiveSessions() int {
	return s.conns.Count()
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Addr, "variant", s.config.Variant)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hijacked WebSocket connections are not tracked by http.Server.
	s.conns.CloseAll()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// handleWebSocket upgrades the request and runs one game for the connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws upgrade error", "error", err)
		return
	}

	conn := NewConn(ws, s.config.WriteTimeout, s.logger)

	// Check limits after upgrade so the client can receive the error message.
	if err := s.conns.Add(conn, s.config.MaxSessions); err != nil {
		s.logger.Warn("session rejected", "remote", r.RemoteAddr, "reason", err)
		conn.SendErrorAndClose("Server full. Please try again later.")
		return
	}
	defer s.conns.Remove(conn.ID)
	defer conn.Close()

	game, err := registry.Create(s.config.Variant)
	if err != nil {
		s.logger.Error("cannot create game", "variant", s.config.Variant, "error", err)
		conn.SendErrorAndClose("Game unavailable.")
		return
	}

	s.logger.Info("player connected", "session", conn.ID, "remote", r.RemoteAddr)
	start := time.Now()

	if err := conn.Send(WelcomeMsg{
		Type:     MsgWelcome,
		ID:       conn.ID,
		TickMS:   s.config.Game.TickInterval.Milliseconds(),
		CellSize: s.config.Game.Bounds.Normalize().CellSize,
	}); err != nil {
		s.logger.Warn("welcome not delivered", "session", conn.ID, "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sink := session.NewChannelSink(8)
	defer sink.Close()

	ctrl := session.New(game, s.config.Game, sink,
		session.WithID(conn.ID),
		session.WithLogger(s.logger),
	)

	go func() {
		if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("session ended with error", "session", conn.ID, "error", err)
		}
	}()
	go func() {
		if err := conn.WriteLoop(ctx, sink); err != nil {
			s.logger.Debug("write failed", "session", conn.ID, "error", err)
			conn.Close()
		}
	}()

	// Blocking read loop, runs until the client disconnects.
	conn.ReadLoop(ctrl)

	cancel()
	<-ctrl.Done()
	s.logger.Info("player disconnected",
		"session", conn.ID,
		"score", game.State().Score,
		"duration", time.Since(start).Round(time.Second),
	)
}
