// grud is a command-line front-end for building and rendering dense 2D
// grid documents.
//
// Usage:
//
//	grud show <file.yaml>             - Render a grid document
//	grud fill <width> <height> <cell> - Build a filled grid and emit it
//	grud info <file.yaml>             - Show shape and diagnostics
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grud",
	Short: "Build and render dense 2D grid documents",
	Long: `grud drives a dense, fixed-size 2D grid from the command line.

Grids are stored as small YAML documents (a name plus a list of rows of
equal length).

Examples:
  grud show board.yaml
  grud show board.yaml --style bordered
  grud fill 3 3 . --out blank.yaml
  grud info board.yaml`,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(infoCmd)
}
