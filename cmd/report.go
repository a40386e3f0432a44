package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report",
	Long:  `Summarizes every chart in a directory (default CHART_OUT_PATH)`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetOutDir()
		if len(args) == 1 {
			dir = args[0]
		}
		r, err := analyzeCharts(dir)
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

type chartsReport struct {
	numFiles    int64
	numSkipped  int64
	totalBytes  int64
	enemyNotes  []int
	playerNotes []int
	turns       []int
}

func analyzeCharts(dir string) (chartsReport, error) {
	var report chartsReport

	paths, err := util.GatherPaths(dir, []string{".json"}, 0)
	if err != nil {
		return report, err
	}

	for _, path := range paths {
		c, err := chart.ReadFile(path)
		if err != nil || len(c.StrumLines) < 2 {
			report.numSkipped += 1
			continue
		}
		report.numFiles += 1
		if stats, err := os.Stat(path); err == nil {
			report.totalBytes += stats.Size()
		}
		report.enemyNotes = append(report.enemyNotes, len(c.StrumLines[0].Notes))
		report.playerNotes = append(report.playerNotes, len(c.StrumLines[1].Notes))
		report.turns = append(report.turns, len(chart.Turns(c)))
	}
	return report, nil
}

func printReport(r chartsReport) {
	enemy := util.Sum(r.enemyNotes)
	player := util.Sum(r.playerNotes)
	fmt.Printf("charts: %v (skipped %v)\n", r.numFiles, r.numSkipped)
	fmt.Printf("total size: %v\n", humanize.Bytes(uint64(r.totalBytes)))
	fmt.Printf("opponent notes: %v\n", humanize.Comma(int64(enemy)))
	fmt.Printf("player notes: %v\n", humanize.Comma(int64(player)))
	fmt.Printf("turns: %v\n", humanize.Comma(int64(util.Sum(r.turns))))
	if r.numFiles > 0 {
		fmt.Printf("notes per chart: %.1f\n", float64(enemy+player)/float64(r.numFiles))
	}
}
