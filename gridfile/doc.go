// Package gridfile reads and writes string-cell grids as small YAML
// documents. This package depends on grid but grid does not depend on it:
// the container itself stays free of any persistence format.
//
// Document layout:
//
//	name: letters        # optional
//	rows:
//	  - [A, B]
//	  - [C, D]
//
// Rows pass through grid.FromMatrix, so a ragged document surfaces
// grid.ErrInvalidShape.
package gridfile
