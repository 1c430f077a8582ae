package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordgrid",
	Short: "Chord grid tools",
	Long:  `Builds beat-aligned chord grids out of analysis results and serves them.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
