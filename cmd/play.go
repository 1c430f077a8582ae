package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/grid"
	"github.com/jsphweid/chordgrid/playhead"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Follows the grid against a wall clock",
	Long:  `Follows the grid against a wall clock`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		play(args[0])
	},
}

func play(path string) {
	res, err := analysis.LoadFile(path)
	if err != nil {
		panic("Could not load analysis because: " + err.Error())
	}

	beats := res.BeatTimes()
	g := grid.Build(res.Chords, beats, grid.OptionsFor(res))
	idx := grid.NewTimeIndex(g, beats, grid.BuildAudioMap(g, beats))

	end := idx.End()
	if end < 0 {
		fmt.Println("Nothing to follow")
		return
	}
	fmt.Printf("Following %v cells for %vs\n", idx.Len(), end)

	start := time.Now()
	tracker := playhead.NewTracker(func() float64 {
		return time.Since(start).Seconds()
	}, idx, func(i int) {
		if i == grid.NoneIndex {
			fmt.Println("--")
			return
		}
		if c, ok := idx.Cell(i); ok {
			fmt.Printf("%v: %v\n", i, c.Chord)
		}
	})
	tracker.Start()
	defer tracker.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	select {
	case <-time.After(time.Duration(end*float64(time.Second)) + constants.PollInterval):
	case <-interrupt:
	}
}
