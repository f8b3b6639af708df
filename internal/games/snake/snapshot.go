package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the full observable state for rendering, determinism
// checks and replay comparison.
type Snapshot struct {
	Width         int
	Height        int
	Snake         []Position
	Food          Position
	HasFood       bool
	Direction     Direction
	NextDirection Direction
	Status        Status
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:         g.width,
		Height:        g.height,
		Snake:         g.Snake(),
		Food:          g.food,
		HasFood:       g.HasFood(),
		Direction:     g.direction,
		NextDirection: g.nextDir,
		Status:        g.status,
	}
}

// Head returns the head position, or (-1, -1) for an empty body.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Width != o.Width || s.Height != o.Height || s.Food != o.Food ||
		s.HasFood != o.HasFood || s.Direction != o.Direction ||
		s.NextDirection != o.NextDirection || s.Status != o.Status ||
		len(s.Snake) != len(o.Snake) {
		return false
	}
	for i := range s.Snake {
		if s.Snake[i] != o.Snake[i] {
			return false
		}
	}
	return true
}

// DebugString returns a compact multi-line description.
func (s Snapshot) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid: %dx%d, Status: %s\n", s.Width, s.Height, s.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Next: %s\n", len(s.Snake), s.Direction, s.NextDirection)
	fmt.Fprintf(&b, "Head: %s, Food: %s\n", s.Head(), s.Food)
	return b.String()
}
