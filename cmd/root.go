package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autochart",
	Short: "Generates rhythm game charts",
	Long: `Turns detected onsets and a tempo into a two sided rhythm game chart.
Input is an analysis document (.json) or a MIDI file (.mid, .midi).`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
