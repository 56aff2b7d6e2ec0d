package grid

import "fmt"

// Point is a 2-dimensional coordinate: X is the column, Y is the row.
// Any type exposing both accessors can address cells in a Grid, so callers
// may conform their own position types instead of converting to Coord.
type Point interface {
	// X returns the column.
	X() int
	// Y returns the row.
	Y() int
}

// Index projects p onto a row-major linear index for a grid of the given
// width: Y*width + X. It is pure arithmetic with no bounds validation;
// an out-of-range result is rejected by the Grid accessor that consumes it.
func Index(p Point, width int) int {
	return p.Y()*width + p.X()
}

// Coord is the ordered-pair Point shape, (x, y).
type Coord struct {
	x, y int
}

// C builds a Coord from a column and a row.
func C(x, y int) Coord {
	return Coord{x: x, y: y}
}

// X returns the column.
func (c Coord) X() int { return c.x }

// Y returns the row.
func (c Coord) Y() int { return c.y }

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}

// Pair is the fixed 2-element Point shape, [x, y]. It addresses the same
// cell as C(p[0], p[1]).
type Pair [2]int

// X returns the column.
func (p Pair) X() int { return p[0] }

// Y returns the row.
func (p Pair) Y() int { return p[1] }
