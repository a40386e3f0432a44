package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/onset"
	"github.com/spf13/cobra"
)

var generateFlags chartFlags
var metaPath string

func init() {
	addChartFlags(generateCmd, &generateFlags)
	generateCmd.Flags().StringVar(&metaPath, "meta", "", "also write meta.json to this path")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <input> <output>",
	Short: "Generates a chart",
	Long: `Generates a chart from an analysis document or a MIDI file.

  autochart generate song.json chart.json
  autochart generate song.json chart.json --bpm 140
  autochart generate song.mid chart.json --notes-per-turn 8 --grid 1/16
  autochart generate song.json chart.json --opponent pico --player bf`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := generateFlags.options(cmd)
		if err != nil {
			return err
		}
		_, err = GenerateFile(args[0], args[1], metaPath, opts)
		return err
	},
}

func formatSeconds(sec float64) string {
	d := time.Duration(sec * float64(time.Second))
	return durafmt.Parse(d).LimitFirstN(2).String()
}

// GenerateFile runs the pipeline over one input file and writes the chart,
// and the song meta when metaPath is set.
func GenerateFile(input string, output string, metaPath string, opts chart.Options) (chart.Result, error) {
	divider := strings.Repeat("=", 60)
	fmt.Println(divider)
	fmt.Printf("Loading: %v\n", input)

	a, err := onset.Load(input)
	if err != nil {
		return chart.Result{}, err
	}
	fmt.Printf("   Duration: %v\n", formatSeconds(a.Duration))
	fmt.Printf("   Onsets: %v\n", humanize.Comma(int64(len(a.AllOnsets()))))

	res, err := chart.Generate(a, opts)
	if err != nil {
		return res, err
	}
	fmt.Printf("   BPM: %.1f\n", res.Bpm)
	fmt.Printf("   Grid: %v = %.1f ms\n", opts.Grid, res.GridMs)
	fmt.Printf("   After quantize: %v\n", humanize.Comma(int64(res.NumQuantized)))
	fmt.Printf("   After filter: %v\n", humanize.Comma(int64(res.NumFiltered)))
	fmt.Printf("   Opponent: %v notes\n", len(res.EnemyNotes()))
	fmt.Printf("   Player: %v notes\n", len(res.PlayerNotes()))

	if err := chart.WriteFile(output, res.Chart); err != nil {
		return res, err
	}
	size := int64(0)
	if stat, err := os.Stat(output); err == nil {
		size = stat.Size()
	}
	fmt.Printf("Chart saved: %v (%v)\n", output, humanize.Bytes(uint64(size)))
	fmt.Printf("   Total notes: %v, notes per turn: %v\n", res.NumFiltered, opts.NotesPerTurn)
	fmt.Println(divider)

	meta := chart.NewMeta(res.Bpm, opts)
	if metaPath != "" {
		if err := chart.WriteFile(metaPath, meta); err != nil {
			return res, err
		}
		fmt.Printf("Meta saved: %v\n", metaPath)
	} else {
		data, err := chart.Marshal(meta)
		if err != nil {
			return res, err
		}
		fmt.Printf("meta.json:\n%s\n", data)
	}
	return res, nil
}
