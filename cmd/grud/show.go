package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matanlurey/grud/gridtext"
)

var flagStyle string

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render a grid document to the terminal",
	Long: `Load a YAML grid document and render it.

Styles:
  plain    - Each row's cells concatenated, no separators
  aligned  - Cells padded to equal display width
  bordered - Aligned output inside a rounded border

Examples:
  grud show board.yaml
  grud show board.yaml --style bordered`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagStyle, "style", "aligned", "Output style: plain, aligned, bordered")
}

func runShow(cmd *cobra.Command, args []string) {
	g := loadGrid(args[0])

	switch flagStyle {
	case "plain":
		fmt.Print(g.String())
	case "aligned":
		fmt.Println(gridtext.Render(g))
	case "bordered":
		fmt.Println(gridtext.RenderStyled(g, gridtext.Options{Border: true}))
	default:
		log.Fatal("unknown style", "style", flagStyle)
	}
}
