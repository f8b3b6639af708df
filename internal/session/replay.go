package session

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Replay re-runs a game from its seed and intent log for up to ticks steps,
// stopping early if the game ends. onFrame, when non-nil, sees every frame.
func Replay(opts Options, intents []Intent, ticks int, onFrame func(Frame)) (*Session, error) {
	if opts.Seed == 0 {
		return nil, fmt.Errorf("session: replay needs the recorded seed")
	}

	s, err := New(opts)
	if err != nil {
		return nil, err
	}

	next := 0
	for t := 0; t < ticks && !s.Done(); t++ {
		for next < len(intents) && intents[next].Tick <= t {
			s.ChangeDirection(intents[next].Dir)
			next++
		}
		frame := s.Tick()
		if onFrame != nil {
			onFrame(frame)
		}
	}
	return s, nil
}

// ReplayRecord replays a stored game and checks it reproduces the recorded
// outcome and length.
func ReplayRecord(rec storage.GameRecord, logger *log.Logger, onFrame func(Frame)) (*Session, error) {
	intents, err := DecodeIntents(rec.Intents)
	if err != nil {
		return nil, err
	}

	s, err := Replay(Options{
		Width:  rec.Width,
		Height: rec.Height,
		Seed:   rec.Seed,
		Player: rec.Player,
		Logger: logger,
	}, intents, rec.Ticks, onFrame)
	if err != nil {
		return nil, err
	}

	if s.Outcome() != rec.Outcome || s.Record().Length != rec.Length {
		return s, fmt.Errorf("session: replay diverged: got %s/%d, recorded %s/%d",
			s.Outcome(), s.Record().Length, rec.Outcome, rec.Length)
	}
	return s, nil
}
