package snake

import "fmt"

// Position is a grid cell. Coordinates are signed so that a step off the
// low edge yields -1 and fails the bounds check instead of wrapping.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
