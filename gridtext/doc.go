// Package gridtext renders grids for terminals.
//
// Grid.String concatenates cell text with no separators, which only lines
// up when every cell prints as a single column. gridtext measures each
// cell's display width (wide runes count as two columns), pads every cell
// to the widest one, and emits one line per row — so mixed-width cells
// still form readable columns. RenderStyled adds optional per-cell
// lipgloss styling and a border around the block.
//
// Rendering is presentation only: it never mutates the grid and holds no
// reference to it after returning.
package gridtext
