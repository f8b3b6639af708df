// Package snake implements the rules engine of grid snake: the grid, the
// direction buffer, the per-tick update, collision detection and food
// placement. It holds no timers, does no I/O and never logs; adapters call
// ChangeDirection and Tick and read the observers afterwards.
//
// A Game is not safe for concurrent use. The owner serializes calls.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/rng"
)

var (
	// ErrInvalidDimensions is returned for non-positive or single-cell grids.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("nil random source")
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusActive Status = iota
	StatusLost
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// Event describes what a single Tick did.
type Event int

const (
	EventIgnored Event = iota // game already over
	EventMoved
	EventAte
	EventLost
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventIgnored:
		return "ignored"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game is the snake rules engine.
type Game struct {
	width  int
	height int
	src    rng.Source

	snake    []Position // head at index 0
	occupied map[Position]struct{}

	direction Direction // applied on the current tick
	nextDir   Direction // committed after the next successful move

	food   Position
	status Status
}

// New creates a game on a width x height grid.
// The snake starts as one segment at (width-1, height/2) heading left, with
// food at (min(2, width-1), height/2). On grids narrow enough that this cell
// is the snake's own, the first food is drawn from src instead.
func New(width, height int, src rng.Source) (*Game, error) {
	if width <= 0 || height <= 0 || width*height < 2 {
		return nil, fmt.Errorf("snake: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if src == nil {
		return nil, fmt.Errorf("snake: %w", ErrNilSource)
	}

	g := &Game{
		width:     width,
		height:    height,
		src:       src,
		occupied:  make(map[Position]struct{}, width*height),
		direction: DirLeft,
		nextDir:   DirLeft,
	}

	start := Position{X: width - 1, Y: height / 2}
	g.snake = []Position{start}
	g.occupied[start] = struct{}{}

	g.food = Position{X: min(2, width-1), Y: height / 2}
	if g.Occupied(g.food) {
		g.placeFood()
	}

	return g, nil
}

// ChangeDirection buffers an intent for the next tick. Intents on the axis
// of the applied direction are dropped, as is any input after the game ends.
func (g *Game) ChangeDirection(d Direction) {
	if g.Accepts(d) {
		g.nextDir = d
	}
}

// Accepts reports whether ChangeDirection(d) would change the buffer.
func (g *Game) Accepts(d Direction) bool {
	if g.status != StatusActive || !d.Valid() {
		return false
	}
	return !d.SameAxis(g.direction)
}

// Tick advances the game by one step.
func (g *Game) Tick() Event {
	if g.status != StatusActive || len(g.snake) == 0 {
		return EventIgnored
	}

	newHead := g.snake[0].Step(g.direction)
	if !g.InBounds(newHead) || g.Occupied(newHead) {
		g.status = StatusLost
		return EventLost
	}

	// The buffered intent governs movement from the next tick on.
	g.direction = g.nextDir

	if newHead == g.food {
		g.grow(newHead)
		if len(g.snake) == g.width*g.height {
			g.status = StatusWon
			return EventWon
		}
		g.placeFood()
		return EventAte
	}

	g.shift(newHead)
	return EventMoved
}

// grow pushes a new head without dropping the tail.
func (g *Game) grow(head Position) {
	g.snake = append(g.snake, Position{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head
	g.occupied[head] = struct{}{}
}

// shift drops the tail and pushes a new head, keeping the length.
func (g *Game) shift(head Position) {
	tail := g.snake[len(g.snake)-1]
	delete(g.occupied, tail)
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = head
	g.occupied[head] = struct{}{}
}

// placeFood draws cells until one is free. Callers guarantee at least one
// free cell exists, so the loop terminates.
func (g *Game) placeFood() {
	for {
		p := Position{
			X: g.src.NextInRange(g.width),
			Y: g.src.NextInRange(g.height),
		}
		if !g.Occupied(p) {
			g.food = p
			return
		}
	}
}

// InBounds reports whether p lies on the grid.
func (g *Game) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Occupied reports whether any snake segment is at p.
func (g *Game) Occupied(p Position) bool {
	_, ok := g.occupied[p]
	return ok
}

// Width returns the grid width.
func (g *Game) Width() int { return g.width }

// Height returns the grid height.
func (g *Game) Height() int { return g.height }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Position {
	out := make([]Position, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head position.
func (g *Game) Head() Position {
	return g.snake[0]
}

// Len returns the number of segments.
func (g *Game) Len() int { return len(g.snake) }

// Food returns the food cell. Once the game is won the grid is full and
// this is the last eaten cell; see HasFood.
func (g *Game) Food() Position { return g.food }

// HasFood reports whether a food cell is on the board.
func (g *Game) HasFood() bool { return g.status != StatusWon }

// Direction returns the direction applied on the next tick.
func (g *Game) Direction() Direction { return g.direction }

// NextDirection returns the buffered intent.
func (g *Game) NextDirection() Direction { return g.nextDir }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Lost reports whether the snake hit a wall or itself.
func (g *Game) Lost() bool { return g.status == StatusLost }

// Won reports whether the snake fills the grid.
func (g *Game) Won() bool { return g.status == StatusWon }
