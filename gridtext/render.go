package gridtext

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matanlurey/grud/grid"
)

// Options controls styled rendering.
type Options struct {
	// StyleFunc returns the style for the cell at linear index i whose
	// padded text is s. Nil leaves every cell unstyled.
	StyleFunc func(i int, s string) lipgloss.Style

	// Border surrounds the rendered block with a rounded border.
	Border bool
}

// Render lays g out with every cell padded to the display width of the
// widest cell, one space between columns, one line per row. The final
// cell of each row is left unpadded so lines carry no trailing spaces.
// An empty grid renders as "".
func Render[T any](g *grid.Grid[T]) string {
	return RenderStyled(g, Options{})
}

// RenderStyled is Render with per-cell styling and an optional border.
// Cell widths are measured before styling, so ANSI sequences introduced
// by a style never skew the alignment.
func RenderStyled[T any](g *grid.Grid[T], opts Options) string {
	if g.Area() == 0 {
		return ""
	}

	cells, widest := measure(g)
	w := g.Width()

	lines := make([]string, g.Height())
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			i := y*w + x
			s := cells[i]
			if x < w-1 {
				s = runewidth.FillRight(s, widest)
			}
			if opts.StyleFunc != nil {
				s = opts.StyleFunc(i, s).Render(s)
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s)
		}
		lines[y] = sb.String()
	}
	out := strings.Join(lines, "\n")

	if opts.Border {
		out = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(out)
	}

	return out
}

// measure formats every cell with its default text and returns the texts
// with the widest display width among them.
func measure[T any](g *grid.Grid[T]) (cells []string, widest int) {
	cells = make([]string, 0, g.Area())
	for v := range g.Values() {
		s := fmt.Sprintf("%v", v)
		if w := runewidth.StringWidth(s); w > widest {
			widest = w
		}
		cells = append(cells, s)
	}

	return cells, widest
}
