package gridtext_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/matanlurey/grud/grid"
	"github.com/matanlurey/grud/gridtext"
)

// TestRender_Alignment pads narrow cells up to the widest cell.
func TestRender_Alignment(t *testing.T) {
	g, err := grid.FromMatrix([][]string{
		{"1", "22", "333"},
		{"4444", "5", "66"},
	})
	require.NoError(t, err)

	out := gridtext.Render(g)
	require.Equal(t, "1    22   333\n4444 5    66", out)
}

// TestRender_WideRunes measures display columns, not rune counts.
func TestRender_WideRunes(t *testing.T) {
	g, err := grid.FromMatrix([][]string{
		{"界", "a"},
		{"b", "cd"},
	})
	require.NoError(t, err)

	// "界" occupies two columns, so every non-final cell pads to width 2.
	out := gridtext.Render(g)
	require.Equal(t, "界 a\nb  cd", out)
}

// TestRender_LineCount emits exactly one line per row.
func TestRender_LineCount(t *testing.T) {
	g := grid.New(4, 7, ".")
	out := gridtext.Render(g)
	require.Len(t, strings.Split(out, "\n"), 7)
}

// TestRender_Empty renders the empty grid as the empty string.
func TestRender_Empty(t *testing.T) {
	require.Equal(t, "", gridtext.Render(grid.New(0, 0, "")))
	require.Equal(t, "", gridtext.Render(grid.New(0, 3, "")))
}

// TestRenderStyled_Defaults matches plain Render when no options are set.
func TestRenderStyled_Defaults(t *testing.T) {
	g, err := grid.WithWidth(2, []int{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, gridtext.Render(g), gridtext.RenderStyled(g, gridtext.Options{}))
}

// TestRenderStyled_StyleFunc receives every cell's index and padded text.
func TestRenderStyled_StyleFunc(t *testing.T) {
	g, err := grid.WithWidth(2, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	var indexes []int
	out := gridtext.RenderStyled(g, gridtext.Options{
		StyleFunc: func(i int, s string) lipgloss.Style {
			indexes = append(indexes, i)
			return lipgloss.NewStyle()
		},
	})

	require.Equal(t, []int{0, 1, 2, 3}, indexes)
	for _, cell := range []string{"a", "b", "c", "d"} {
		require.Contains(t, out, cell)
	}
}

// TestRenderStyled_Border wraps the block in a rounded border.
func TestRenderStyled_Border(t *testing.T) {
	g, err := grid.WithWidth(2, []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	out := gridtext.RenderStyled(g, gridtext.Options{Border: true})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, g.Height()+2, "border adds a top and bottom line")
	require.True(t, strings.HasPrefix(lines[0], "╭"))
	require.True(t, strings.HasSuffix(lines[len(lines)-1], "╯"))
}
