package cmd

import (
	"fmt"

	"github.com/jsphweid/autochart/chart"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart>",
	Short: "Inspects a chart",
	Long:  `Prints the strum lines and turns of a chart`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	c, err := chart.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("version: %v, stage: %v, scroll speed: %v\n", c.ChartVersion, c.Stage, c.ScrollSpeed)
	for _, line := range c.StrumLines {
		fmt.Printf("line %v (%v) %v visible: %v notes: %v", line.Type, line.Position, line.Characters, line.Visible, len(line.Notes))
		if len(line.Notes) > 0 {
			fmt.Printf(" from %vms to %vms", line.Notes[0].Time, line.Notes[len(line.Notes)-1].Time)
		}
		fmt.Println()
	}
	for i, t := range chart.Turns(c) {
		fmt.Printf("turn %v: %v %v notes %vms-%vms\n", i+1, t.Side, t.Count, t.Start, t.End)
	}
	return nil
}
