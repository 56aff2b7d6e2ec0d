package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matanlurey/grud/grid"
	"github.com/matanlurey/grud/gridfile"
	"github.com/matanlurey/grud/gridtext"
)

var (
	flagOut  string
	flagName string
)

var fillCmd = &cobra.Command{
	Use:   "fill <width> <height> <cell>",
	Short: "Build a width×height grid of one repeated cell",
	Long: `Construct a grid of the given dimensions with every cell set to
the same value, then render it or write it as a YAML document.

Examples:
  grud fill 3 3 .
  grud fill 8 8 ~ --out sea.yaml --name sea`,
	Args: cobra.ExactArgs(3),
	Run:  runFill,
}

func init() {
	fillCmd.Flags().StringVar(&flagOut, "out", "", "Write a YAML document to this path instead of rendering")
	fillCmd.Flags().StringVar(&flagName, "name", "", "Document name for --out")
}

func runFill(cmd *cobra.Command, args []string) {
	width := parseDim(args[0], "width")
	height := parseDim(args[1], "height")
	g := grid.New(width, height, args[2])

	if flagOut == "" {
		fmt.Println(gridtext.Render(g))
		return
	}

	data, err := gridfile.Marshal(g, flagName)
	if err != nil {
		log.Fatal("cannot marshal grid", "err", err)
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		log.Fatal("cannot write document", "path", flagOut, "err", err)
	}
	log.Info("wrote grid document", "path", flagOut, "width", width, "height", height)
}

// parseDim rejects non-numeric and negative dimensions before they reach
// the constructor, which treats negatives as programmer error.
func parseDim(s, name string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Fatal("dimension must be a non-negative integer", "flag", name, "value", s)
	}

	return n
}
