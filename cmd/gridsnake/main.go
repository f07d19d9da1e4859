// gridsnake is a grid Snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	gridsnake list              - List available game variants
//	gridsnake play [variant]    - Play in this terminal
//	gridsnake serve             - Start SSH server for remote play
//	gridsnake web               - Start HTTP server with the browser client
//	gridsnake menu              - Pick a variant from a menu, then play
//	gridsnake config            - Print the default configuration
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.gridsnake/configs, ./configs)
//	--tick <ms>       - Milliseconds between moves (overrides config)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--variant <id>    - Game variant (overrides config)
//	--log-file <path> - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	// Global flags
	flagConfig  string
	flagTickMS  int
	flagSeed    int64
	flagVariant string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake on a grid, in your terminal, over SSH or in the browser",
	Long: `gridsnake is the classic Snake game on a grid that adapts to the
size of your terminal or browser window.

Available commands:
  list     - Show available game variants
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Start HTTP server with the browser client
  menu     - Pick a variant from a menu
  config   - Print the default configuration

Examples:
  gridsnake play
  gridsnake play snake_reset --tick 60
  gridsnake serve --ssh :2222
  gridsnake web --http :8080`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Milliseconds between moves (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", "", "Game variant (see 'gridsnake list')")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagTickMS > 0 {
		cfg.Timing.TickMS = flagTickMS
	}
	if flagVariant != "" {
		cfg.Game.Variant = flagVariant
	}
	cfg.Validate()

	if !registry.Exists(cfg.Game.Variant) {
		return cfg, fmt.Errorf("unknown game variant %q, run 'gridsnake list' to see available variants", cfg.Game.Variant)
	}
	return cfg, nil
}

// openLogFile returns a debug logger writing to --log-file, or nil when the
// flag is unset. The returned close function is never nil.
func openLogFile() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "gridsnake",
	})
	return logger, func() { f.Close() }, nil
}
