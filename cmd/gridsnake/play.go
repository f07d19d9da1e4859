package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Snake in this terminal",
	Long: `Start a game of Snake sized to the current terminal.

Controls:
  Arrows/WASD/hjkl - Turn
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.gridsnake/screenshots
  Q/Ctrl+C         - Quit

Variants:
  snake        - Resizing the terminal rescales the running game
  snake_reset  - Resizing the terminal starts a new game

Examples:
  gridsnake play
  gridsnake play snake_reset
  gridsnake play --tick 120 --seed 42
  gridsnake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		flagVariant = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Bubble Tea sends the real size on start; this is only the first frame.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(cfg.Game.Variant)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg.RuntimeConfig(width, height, flagSeed), logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
