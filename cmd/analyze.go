package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/analysis"
	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/midi"
	"github.com/jsphweid/chordgrid/util"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyzes MIDI files into chord/beat JSON",
	Long:  `Analyzes MIDI files into chord/beat JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}

		info, err := os.Stat(args[0])
		if err != nil {
			panic("Could not stat path because: " + err.Error())
		}

		if info.IsDir() {
			var maxNum int
			if len(args) == 2 {
				arg2, err := strconv.Atoi(args[1])
				if err != nil {
					panic(err)
				}
				maxNum = arg2
			}
			analyzeDir(args[0], maxNum)
			return
		}

		var outPath string
		if len(args) == 2 {
			outPath = args[1]
		}
		if err := analyzeOne(args[0], outPath); err != nil {
			panic("Could not analyze because: " + err.Error())
		}
	},
}

func analyzeOne(path, outPath string) error {
	mf, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	res, err := midi.ExtractAnalysis(mf)
	if err != nil {
		return err
	}
	if outPath == "" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	return analysis.WriteFile(outPath, res)
}

func analyzeDir(dir string, maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(dir, maxNum)
	for i, path := range paths {
		fmt.Printf("Analyzing %v of %v midi files\n", i+1, len(paths))
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath := filepath.Join(constants.GetOutputDir(), base+".json")
		if err := analyzeOne(path, outPath); err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
		}
	}
}
