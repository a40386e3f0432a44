package cmd

import (
	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/config"
	"github.com/jsphweid/autochart/grid"
	"github.com/spf13/cobra"
)

type chartFlags struct {
	configPath   string
	bpm          float64
	grid         string
	notesPerTurn int
	opponent     string
	player       string
	gf           string
	stage        string
	scrollSpeed  float64
}

func addChartFlags(cmd *cobra.Command, f *chartFlags) {
	d := chart.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML preset with chart options")
	flags.Float64Var(&f.bpm, "bpm", 0, "override the detected BPM")
	flags.StringVar(&f.grid, "grid", d.Grid.String(), "quantization grid (1/4, 1/8, 1/16)")
	flags.IntVar(&f.notesPerTurn, "notes-per-turn", d.NotesPerTurn, "notes before the turn passes to the other side")
	flags.StringVar(&f.opponent, "opponent", d.Opponent, "opponent character")
	flags.StringVar(&f.player, "player", d.Player, "player character")
	flags.StringVar(&f.gf, "gf", d.Girlfriend, "girlfriend character")
	flags.StringVar(&f.stage, "stage", d.Stage, "stage name")
	flags.Float64Var(&f.scrollSpeed, "scroll-speed", d.ScrollSpeed, "note scroll speed")
}

// options resolves defaults, then the preset, then any flag the user set.
func (f *chartFlags) options(cmd *cobra.Command) (chart.Options, error) {
	o, err := config.Options(f.configPath)
	if err != nil {
		return o, err
	}

	flags := cmd.Flags()
	if flags.Changed("bpm") {
		o.Bpm = f.bpm
	}
	if flags.Changed("grid") {
		spec, err := grid.Parse(f.grid)
		if err != nil {
			return o, err
		}
		o.Grid = spec
	}
	if flags.Changed("notes-per-turn") {
		o.NotesPerTurn = f.notesPerTurn
	}
	if flags.Changed("opponent") {
		o.Opponent = f.opponent
	}
	if flags.Changed("player") {
		o.Player = f.player
	}
	if flags.Changed("gf") {
		o.Girlfriend = f.gf
	}
	if flags.Changed("stage") {
		o.Stage = f.stage
	}
	if flags.Changed("scroll-speed") {
		o.ScrollSpeed = f.scrollSpeed
	}
	return o, o.Validate()
}
