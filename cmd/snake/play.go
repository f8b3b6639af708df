package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagMenu    bool
	flagTheme   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/hjkl  - Change direction
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc/B             - Back to grid menu (with --menu)
  Q/Ctrl+C          - Quit

Finished games are recorded to the history database.

Examples:
  snake play
  snake play --width 20 --height 12
  snake play --theme emoji
  snake play --menu
  snake play --log-file ./snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the board size from a menu first")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Board theme: ascii or emoji (overrides config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := withTheme(loadConfig(), flagTheme)
	if err != nil {
		fatal("invalid settings", err)
	}

	// The game owns the terminal, so logs only go to a file.
	logger := newLogger(nil, cfg.Log.Level)
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			fatal("opening log file", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("opening log file", err)
		}
		defer f.Close()
		logger = newLogger(f, cfg.Log.Level)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
		Seed:     cfg.Seed,
		Interval: cfg.Tick.Interval(),
		Theme:    tui.ThemeByName(cfg.Theme),
		Player:   os.Getenv("USER"),
		Logger:   logger,
		ScreenW:  width,
		ScreenH:  height,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	run := tui.Run
	if flagMenu {
		run = tui.RunSession
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// withTheme applies the --theme override and validates the result again.
func withTheme(cfg config.SnakeConfig, theme string) (config.SnakeConfig, error) {
	if theme == "" {
		return cfg, nil
	}
	cfg.Theme = theme
	return cfg, cfg.Validate()
}
