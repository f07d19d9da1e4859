package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/web"
)

var (
	flagHTTPAddr       string
	flagWebMaxSessions int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the Snake web server",
	Long: `Start an HTTP server with the browser client. Each browser tab gets
its own game over a WebSocket; the board follows the window size.

Controls in the browser:
  Arrows/WASD  - Turn
  Swipe        - Turn (touch or mouse drag)
  R / Restart  - Start a new game

Examples:
  gridsnake web                  # Listen on the configured address (:8080)
  gridsnake web --http :9000
  gridsnake web --variant snake_reset`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (host:port, default from config)")
	webCmd.Flags().IntVar(&flagWebMaxSessions, "max-sessions", 0, "Concurrent session limit (0 = from config)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagHTTPAddr != "" {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if flagWebMaxSessions > 0 {
		cfg.Server.MaxSessions = flagWebMaxSessions
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "gridsnake-web",
		})
	}

	server, err := web.NewServer(web.Config{
		Addr:        cfg.Server.HTTPAddr,
		Variant:     cfg.Game.Variant,
		Game:        cfg.RuntimeConfig(800, 600, flagSeed),
		MaxSessions: cfg.Server.MaxSessions,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Open http://localhost%s in your browser\n", cfg.Server.HTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx); err != nil {
		stop()
		closeLog()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
