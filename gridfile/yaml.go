package gridfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matanlurey/grud/grid"
)

// Document is the on-disk YAML form of a string-cell grid.
type Document struct {
	Name string     `yaml:"name,omitempty"`
	Rows [][]string `yaml:"rows"`
}

// Grid builds the container from the document's rows.
// Returns grid.ErrInvalidShape when the rows are ragged.
func (d *Document) Grid() (*grid.Grid[string], error) {
	g, err := grid.FromMatrix(d.Rows)
	if err != nil {
		return nil, fmt.Errorf("gridfile: document %q: %w", d.Name, err)
	}

	return g, nil
}

// Parse unmarshals a YAML grid document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridfile: unmarshal: %w", err)
	}

	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal renders g as a YAML grid document with the given name.
// Parse(Marshal(g, name)) reproduces the same cells and shape.
func Marshal(g *grid.Grid[string], name string) ([]byte, error) {
	doc := Document{Name: name, Rows: g.ToMatrix()}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("gridfile: marshal: %w", err)
	}

	return out, nil
}
