package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/export"
	"github.com/jsphweid/chordgrid/grid"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports an analysis file as a MIDI grid",
	Long:  `Exports an analysis file as a MIDI grid`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}
		var outPath string
		if len(args) == 2 {
			outPath = args[1]
		}
		exportGrid(args[0], outPath)
	},
}

func exportGrid(path, outPath string) {
	res, err := analysis.LoadFile(path)
	if err != nil {
		panic("Could not load analysis because: " + err.Error())
	}

	g := grid.Build(res.Chords, res.BeatTimes(), grid.OptionsFor(res))
	if outPath == "" {
		outPath = filepath.Join(constants.GetOutputDir(), uuid.New().String()+".mid")
	}
	if err := export.WriteGrid(g, outPath); err != nil {
		panic("Could not write midi because: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", outPath)
}
