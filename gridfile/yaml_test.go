package gridfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matanlurey/grud/grid"
	"github.com/matanlurey/grud/gridfile"
)

const lettersDoc = `name: letters
rows:
  - [A, B]
  - [C, D]
`

// TestParse builds a grid from a well-formed document.
func TestParse(t *testing.T) {
	doc, err := gridfile.Parse([]byte(lettersDoc))
	require.NoError(t, err)
	require.Equal(t, "letters", doc.Name)

	g, err := doc.Grid()
	require.NoError(t, err)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Slice())
}

// TestParse_Ragged surfaces the container's shape error.
func TestParse_Ragged(t *testing.T) {
	doc, err := gridfile.Parse([]byte("rows:\n  - [A]\n  - [B, C]\n"))
	require.NoError(t, err)

	_, err = doc.Grid()
	require.ErrorIs(t, err, grid.ErrInvalidShape)
}

// TestParse_BadYAML rejects syntactically invalid documents.
func TestParse_BadYAML(t *testing.T) {
	_, err := gridfile.Parse([]byte("rows: [:"))
	require.Error(t, err)
}

// TestParse_NoRows yields the empty grid.
func TestParse_NoRows(t *testing.T) {
	doc, err := gridfile.Parse([]byte("name: empty\n"))
	require.NoError(t, err)

	g, err := doc.Grid()
	require.NoError(t, err)
	require.Equal(t, 0, g.Area())
}

// TestRoundTrip checks Marshal then Parse preserves shape and cells.
func TestRoundTrip(t *testing.T) {
	g, err := grid.WithWidth(3, []string{"a", "b", "c", "d", "e", "f"})
	require.NoError(t, err)

	data, err := gridfile.Marshal(g, "roundtrip")
	require.NoError(t, err)

	doc, err := gridfile.Parse(data)
	require.NoError(t, err)
	require.Equal(t, "roundtrip", doc.Name)

	back, err := doc.Grid()
	require.NoError(t, err)
	require.Equal(t, g.Width(), back.Width())
	require.Equal(t, g.Height(), back.Height())
	require.Equal(t, g.Slice(), back.Slice())
}

// TestLoad reads a document from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lettersDoc), 0o644))

	doc, err := gridfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "letters", doc.Name)

	_, err = gridfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
