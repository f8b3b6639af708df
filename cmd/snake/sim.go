package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagScript     string
	flagScriptFile string
	flagEvery      bool
	flagRecord     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal UI",
	Long: `Run a game headless from a move script and print the resulting board.

A script is read one character at a time:
  .        - advance one tick
  U D L R  - submit that direction, then advance one tick
Whitespace is ignored. The game stops early once it is won or lost.

Examples:
  snake sim --seed 7 --script "..U..L"
  snake sim --width 5 --height 5 --script-file moves.txt --every
  snake sim --seed 42 --script "RRRR...." --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Move script")
	simCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the move script from a file")
	simCmd.Flags().BoolVar(&flagEvery, "every", false, "Print every frame")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the result to the history database")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	theme := tui.ThemeByName(cfg.Theme)

	script := flagScript
	if flagScriptFile != "" {
		data, err := os.ReadFile(flagScriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		script = string(data)
	}

	intents, ticks, err := session.ParseScript(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var onFrame func(session.Frame)
	if flagEvery {
		onFrame = func(f session.Frame) {
			fmt.Println(renderBoard(f.State, f.Tick, theme))
			fmt.Println()
		}
	}

	s, err := session.Replay(session.Options{
		Width:  cfg.Grid.Width,
		Height: cfg.Grid.Height,
		Seed:   seed,
		Player: "sim",
		Logger: newLogger(os.Stderr, cfg.Log.Level),
	}, intents, ticks, onFrame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}

	if !flagEvery {
		fmt.Println(renderBoard(s.Snapshot(), s.Ticks(), theme))
		fmt.Println()
	}
	fmt.Printf("status=%s length=%d ticks=%d seed=%d\n", s.Status(), len(s.Snapshot().Snake), s.Ticks(), s.Seed())

	if flagRecord {
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := s.Finish(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording game: %v\n", err)
			os.Exit(1)
		}
		if id > 0 {
			fmt.Printf("Recorded as game %d\n", id)
		}
	}
}
