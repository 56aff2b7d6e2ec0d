package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matanlurey/grud/grid"
	"github.com/matanlurey/grud/gridfile"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a grid document's shape and diagnostics",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	g := loadGrid(args[0])

	fmt.Printf("width:  %d\n", g.Width())
	fmt.Printf("height: %d\n", g.Height())
	fmt.Printf("area:   %d\n", g.Area())
	fmt.Printf("debug:  %#v\n", g)
}

// loadGrid reads a document and builds its grid, exiting on any failure.
func loadGrid(path string) *grid.Grid[string] {
	doc, err := gridfile.Load(path)
	if err != nil {
		log.Fatal("cannot load grid document", "path", path, "err", err)
	}
	g, err := doc.Grid()
	if err != nil {
		log.Fatal("document is not rectangular", "path", path, "err", err)
	}

	return g
}
