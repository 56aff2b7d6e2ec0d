package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a dense, fixed-size 2D container of T.
//
// Cells live in a single flat slice in row-major order: index 0 is (0,0),
// index 1 is (1,0), index width is (0,1), and so on. The invariant
// len(data) == width*height holds at all times; the shape is fixed at
// construction and the container never resizes. Every cell always holds a
// valid T — construction fully populates the store.
type Grid[T any] struct {
	data   []T
	width  int
	height int
}

// New creates a width×height grid with every cell set to a copy of fill.
// A zero width or height yields an empty grid with Area() == 0.
//
// Panics if either dimension is negative; negative shapes are programmer
// error, the same class as an out-of-range index.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("grid: New(%d, %d): negative dimension: %w", width, height, ErrInvalidShape))
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}

	return &Grid[T]{data: data, width: width, height: height}
}

// WithWidth wraps data as a grid of the given width, inferring the height
// as len(data)/width. The grid takes ownership of data; callers must not
// retain the slice.
//
// Returns ErrInvalidShape when len(data) is not evenly divisible by width.
// Width 0 with nonempty data is the same invalid shape — guarded before
// the division, so it can never surface as a divide-by-zero. Width 0 with
// empty data yields the empty grid.
func WithWidth[T any](width int, data []T) (*Grid[T], error) {
	if width < 0 {
		return nil, fmt.Errorf("grid: WithWidth(%d): negative width: %w", width, ErrInvalidShape)
	}
	if width == 0 {
		if len(data) != 0 {
			return nil, fmt.Errorf("grid: WithWidth(0) with %d elements: %w", len(data), ErrInvalidShape)
		}

		return &Grid[T]{}, nil
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("grid: WithWidth(%d) with %d elements: %w", width, len(data), ErrInvalidShape)
	}

	return &Grid[T]{data: data, width: width, height: len(data) / width}, nil
}

// FromMatrix flattens rows into a grid. The row count becomes the height
// and the shared row length becomes the width; elements are copied, so the
// caller keeps ownership of rows. An empty outer slice yields the empty
// grid.
//
// Returns ErrInvalidShape if any two rows differ in length.
func FromMatrix[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return &Grid[T]{}, nil
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid: FromMatrix: row %d has %d elements, want %d: %w",
				y, len(row), width, ErrInvalidShape)
		}
	}
	data := make([]T, 0, width*len(rows))
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Grid[T]{data: data, width: width, height: len(rows)}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Area returns the total cell count, Width()*Height().
func (g *Grid[T]) Area() int { return g.width * g.height }

// checkIndex panics unless 0 <= i < Area().
func (g *Grid[T]) checkIndex(i int) {
	if i < 0 || i >= len(g.data) {
		panic(fmt.Errorf("grid: index %d outside [0, %d): %w", i, len(g.data), ErrOutOfBounds))
	}
}

// At returns the element at linear index i.
//
// Panics with an error wrapping ErrOutOfBounds when i falls outside
// [0, Area()) — on an empty grid every index does, including 0.
func (g *Grid[T]) At(i int) T {
	g.checkIndex(i)

	return g.data[i]
}

// Set replaces the element at linear index i with v.
//
// Panics with an error wrapping ErrOutOfBounds when i falls outside
// [0, Area()); the store is left unmodified.
func (g *Grid[T]) Set(i int, v T) {
	g.checkIndex(i)
	g.data[i] = v
}

// AtPoint returns the element at coordinate p, projecting through
// Index(p, Width()). Same panic contract as At.
func (g *Grid[T]) AtPoint(p Point) T {
	return g.At(Index(p, g.width))
}

// SetPoint replaces the element at coordinate p with v, projecting through
// Index(p, Width()). Same panic contract as Set.
func (g *Grid[T]) SetPoint(p Point, v T) {
	g.Set(Index(p, g.width), v)
}

// ToMatrix returns the grid as Height() rows of Width() elements each,
// walking coordinates row by row and copying every cell into fresh slices.
// For well-formed input it is the exact inverse of FromMatrix.
func (g *Grid[T]) ToMatrix() [][]T {
	rows := make([][]T, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]T, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = g.data[y*g.width+x]
		}
		rows[y] = row
	}

	return rows
}

// Slice returns the backing store in row-major order. It is a view, not a
// copy: treat it as read-only. Mutation goes through Set, SetPoint, or
// Refs.
func (g *Grid[T]) Slice() []T { return g.data }

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{data: data, width: g.width, height: g.height}
}

// Values yields every element once in row-major order. Each call starts a
// fresh pass over all Area() cells.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range g.data {
			if !yield(g.data[i]) {
				return
			}
		}
	}
}

// All yields (linear index, element) pairs in row-major order.
func (g *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range g.data {
			if !yield(i, g.data[i]) {
				return
			}
		}
	}
}

// Refs yields a pointer to every element once in row-major order.
// Assigning through the yielded pointer replaces the visited cell in
// place.
func (g *Grid[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// String renders each row as the concatenated default text of its
// elements followed by a newline, producing exactly Height() lines. With
// single-rune cells the effect is a 2D character display:
//
//	g, _ := grid.WithWidth(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
//	fmt.Print(g) // "123\n456\n789\n"
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprintf(&sb, "%v", g.data[y*g.width+x])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// GoString exposes the backing store and both dimensions, for %#v
// diagnostics.
func (g *Grid[T]) GoString() string {
	return fmt.Sprintf("grid.Grid{data: %v, width: %d, height: %d}", g.data, g.width, g.height)
}
