package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/grid"
)

func init() {
	rootCmd.AddCommand(gridCmd)
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Prints the grid for an analysis file",
	Long:  `Prints the grid for an analysis file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}
		measuresPerRow := constants.DefaultMeasuresPerRow
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			measuresPerRow = arg2
		}
		printGrid(args[0], measuresPerRow)
	},
}

func printGrid(path string, measuresPerRow int) {
	res, err := analysis.LoadFile(path)
	if err != nil {
		panic("Could not load analysis because: " + err.Error())
	}

	g := grid.Build(res.Chords, res.BeatTimes(), grid.OptionsFor(res))
	fmt.Printf("shift: %v padding: %v cells: %v\n", g.ShiftCount, g.PaddingCount, len(g.Cells))

	rows := grid.GroupRows(grid.GroupMeasures(g.Cells, g.TimeSignature), measuresPerRow)
	for _, row := range rows {
		line := ""
		for _, m := range row.Measures {
			line += "|"
			for _, c := range m.Cells {
				label := c.Chord
				if label == "" {
					label = "."
				}
				line += fmt.Sprintf(" %-6v", label)
			}
		}
		fmt.Println(line + "|")
	}
}
