package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects an analysis file",
	Long:  `Inspects an analysis file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	res, err := analysis.LoadFile(path)
	if err != nil {
		panic("Could not load analysis because: " + err.Error())
	}

	g := grid.Build(res.Chords, res.BeatTimes(), grid.OptionsFor(res))
	fmt.Printf("bpm: %v\n", g.BPM)
	fmt.Printf("timeSignature: %v\n", g.TimeSignature)
	fmt.Printf("key: %v\n", res.Key)
	fmt.Printf("beats: %v\n", len(res.Beats))
	fmt.Printf("chords: %v\n", len(res.Chords))
	fmt.Printf("shiftScores: %v\n", grid.ShiftScores(res.Chords, g.TimeSignature))
	fmt.Printf("shift: %v\n", g.ShiftCount)
	fmt.Printf("padding: %v\n", g.PaddingCount)

	counts := make(map[string]int)
	for _, ev := range res.Chords {
		counts[ev.Chord]++
	}
	labels := util.GetKeys(counts)
	sort.Strings(labels)
	occurrences := make([]int, 0, len(labels))
	for _, label := range labels {
		fmt.Printf("label: %v count: %v\n", label, counts[label])
		occurrences = append(occurrences, counts[label])
	}
	fmt.Printf("total labels: %v\n", util.Sum(occurrences))
}
