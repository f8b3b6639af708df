package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagWatch bool
	flagDelay int
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game",
	Long: `Replay a game from the history database using its recorded seed and
intent log, then check the result matches what was recorded.

Examples:
  snake replay 12
  snake replay 12 --watch --delay 100`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Print every frame instead of only the last one")
	replayCmd.Flags().IntVar(&flagDelay, "delay", 0, "Milliseconds to wait between frames with --watch")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid game id %q\n", args[0])
		os.Exit(1)
	}

	cfg := loadConfig()
	theme := tui.ThemeByName(cfg.Theme)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.GameByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving game: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no game with id %d\n", id)
		os.Exit(1)
	}

	var onFrame func(session.Frame)
	if flagWatch {
		onFrame = func(f session.Frame) {
			fmt.Println(renderBoard(f.State, f.Tick, theme))
			fmt.Println()
			if flagDelay > 0 {
				time.Sleep(time.Duration(flagDelay) * time.Millisecond)
			}
		}
	}

	logger := newLogger(os.Stderr, cfg.Log.Level)
	s, replayErr := session.ReplayRecord(*rec, logger, onFrame)
	if s != nil && !flagWatch {
		fmt.Println(renderBoard(s.Snapshot(), s.Ticks(), theme))
		fmt.Println()
	}
	if replayErr != nil {
		fmt.Fprintf(os.Stderr, "Error replaying game %d: %v\n", id, replayErr)
		os.Exit(1)
	}

	fmt.Printf("Game %d replayed: %s with length %d after %d ticks (seed %d)\n",
		id, rec.Outcome, rec.Length, rec.Ticks, rec.Seed)
}
