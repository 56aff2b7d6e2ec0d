// Package grud stores and accesses data in dense two-dimensional grids.
//
// What's inside:
//
//	grid/      — the core container: a generic, fixed-size, row-major Grid
//	             with coordinate and linear-index addressing, matrix
//	             conversions, and iteration
//	gridtext/  — width-aware terminal rendering (aligned columns, optional
//	             styling and borders)
//	gridfile/  — a small YAML document format for string-cell grids
//	cmd/grud/  — a CLI that loads, builds, and renders grid documents
//
// The container is deliberately strict: construction rejects data that
// cannot form a rectangle, and out-of-range access fails loudly rather
// than returning a sentinel value. See the grid package for the full
// contract.
//
//	go get github.com/matanlurey/grud/grid
package grud
