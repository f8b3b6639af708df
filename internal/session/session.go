// Package session owns a single snake game for its whole life. A Session is
// what schedulers and input adapters hold: it forwards intents and ticks to
// the rules engine, counts ticks, keeps the accepted-intent log needed for
// replay and records the finished game.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/rng"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Outcome values stored with finished games.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
	OutcomeQuit = "quit"
)

// Options configures a new session.
type Options struct {
	Width  int
	Height int
	Seed   int64 // 0 picks a time-based seed
	Player string
	Logger *log.Logger
}

// Frame is the result of one tick, ready for a renderer.
type Frame struct {
	Tick  int
	Event snake.Event
	State snake.Snapshot
}

// Recorder persists finished games. *storage.Store satisfies it.
type Recorder interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Session is the single owner of a snake.Game. Like the game it wraps, it
// is not safe for concurrent use; Run serializes everything onto one goroutine.
type Session struct {
	game     *snake.Game
	seed     int64
	player   string
	ticks    int
	intents  []Intent
	logger   *log.Logger
	recorded bool
}

// New creates a session with a fresh game.
func New(opts Options) (*Session, error) {
	src := rng.NewSeeded(opts.Seed)

	game, err := snake.New(opts.Width, opts.Height, src)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		game:   game,
		seed:   src.Seed(),
		player: opts.Player,
		logger: logger,
	}
	s.logger.Info("game started",
		"width", opts.Width,
		"height", opts.Height,
		"seed", s.seed,
		"player", s.player,
	)
	return s, nil
}

// ChangeDirection forwards an intent. Accepted intents are logged for replay.
func (s *Session) ChangeDirection(d snake.Direction) bool {
	if !s.game.Accepts(d) {
		return false
	}
	s.game.ChangeDirection(d)
	s.intents = append(s.intents, Intent{Tick: s.ticks, Dir: d})
	return true
}

// Tick advances the game one step and returns the resulting frame.
func (s *Session) Tick() Frame {
	ev := s.game.Tick()
	if ev != snake.EventIgnored {
		s.ticks++
	}

	s.logger.Debug("tick", "n", s.ticks, "event", ev, "head", s.game.Head(), "len", s.game.Len())
	switch ev {
	case snake.EventLost, snake.EventWon:
		s.logger.Info("game over", "outcome", ev, "length", s.game.Len(), "ticks", s.ticks)
	}

	return Frame{Tick: s.ticks, Event: ev, State: s.game.Snapshot()}
}

// Snapshot returns the current state without advancing.
func (s *Session) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}

// Status returns the game's lifecycle state.
func (s *Session) Status() snake.Status {
	return s.game.Status()
}

// Done reports whether the game reached a terminal state.
func (s *Session) Done() bool {
	return s.game.Status().Terminal()
}

// Seed returns the seed driving food placement.
func (s *Session) Seed() int64 { return s.seed }

// Ticks returns the number of ticks that advanced the game.
func (s *Session) Ticks() int { return s.ticks }

// Intents returns a copy of the accepted-intent log.
func (s *Session) Intents() []Intent {
	out := make([]Intent, len(s.intents))
	copy(out, s.intents)
	return out
}

// Outcome classifies the session: won, lost, or quit if still active.
func (s *Session) Outcome() string {
	switch s.game.Status() {
	case snake.StatusWon:
		return OutcomeWon
	case snake.StatusLost:
		return OutcomeLost
	default:
		return OutcomeQuit
	}
}

// Record builds the history row for this session.
func (s *Session) Record() storage.GameRecord {
	return storage.GameRecord{
		Width:   s.game.Width(),
		Height:  s.game.Height(),
		Seed:    s.seed,
		Outcome: s.Outcome(),
		Length:  s.game.Len(),
		Ticks:   s.ticks,
		Intents: EncodeIntents(s.intents),
		Player:  s.player,
	}
}

// Finish saves the session once. Later calls and a nil recorder are no-ops.
// Sessions that never ticked are not recorded.
func (s *Session) Finish(rec Recorder) (int64, error) {
	if rec == nil || s.recorded || s.ticks == 0 {
		return 0, nil
	}
	s.recorded = true

	id, err := rec.SaveGame(s.Record())
	if err != nil {
		s.logger.Warn("could not record game", "error", err)
		return 0, err
	}
	s.logger.Debug("game recorded", "id", id)
	return id, nil
}

// Run drives the session on a fixed cadence until the game ends or ctx is
// cancelled. Intents are applied between ticks in arrival order; a closed
// intents channel is ignored. Each frame is sent on frames when non-nil.
func (s *Session) Run(ctx context.Context, interval time.Duration, intents <-chan snake.Direction, frames chan<- Frame) error {
	if s.Done() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case d, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			s.ChangeDirection(d)

		case <-ticker.C:
			frame := s.Tick()
			if frames != nil {
				select {
				case frames <- frame:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if s.Done() {
				return nil
			}
		}
	}
}
