// snake is a terminal snake game with a deterministic rules engine.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake history            - Show recorded games
//	snake replay <id>        - Re-run a recorded game from its seed and intents
//	snake sim --script ...   - Run a scripted game without a terminal
//
// Global flags:
//
//	--config <path>     - YAML config file (default: search ~/.snake/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/history.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagWidth    int
	flagHeight   int
	flagInterval int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake runs the classic game on a fixed grid. The snake moves one cell
per tick, grows when it eats and loses on hitting a wall or itself.
Fill the whole board to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Show recorded games
  replay   - Re-run a recorded game
  sim      - Run a scripted game headless

Examples:
  snake play
  snake play --width 20 --height 10 --seed 42
  snake serve --ssh :2222
  snake history --limit 20
  snake sim --seed 7 --script "..U..L"`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagInterval, "interval", 0, "Tick interval in milliseconds (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fatal("loading config", err)
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagWidth != 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight != 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagInterval != 0 {
		cfg.Tick.IntervalMS = flagInterval
	}

	if err := cfg.Validate(); err != nil {
		fatal("invalid settings", err)
	}
	return cfg
}

// newLogger builds the process logger. A nil writer discards output.
func newLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			fatal("invalid log level", err)
		}
		logger.SetLevel(lvl)
	}
	return logger
}

// renderBoard draws a snapshot as plain text.
func renderBoard(snap snake.Snapshot, ticks int, theme tui.Theme) string {
	cols, rows := tui.BoardSize(snap.Width, snap.Height)
	scr := core.NewScreen(cols, rows)
	tui.DrawBoard(scr, snap, theme, ticks)
	return scr.String()
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
