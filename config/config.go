package config

import (
	"os"

	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Preset is a reusable set of chart options, e.g.
//
//	grid: 1/16
//	notes_per_turn: 8
//	opponent: pico
//	stage: philly
type Preset struct {
	Bpm          float64 `yaml:"bpm"`
	Grid         string  `yaml:"grid"`
	NotesPerTurn int     `yaml:"notes_per_turn"`
	Opponent     string  `yaml:"opponent"`
	Player       string  `yaml:"player"`
	Girlfriend   string  `yaml:"gf"`
	Stage        string  `yaml:"stage"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

func (p Preset) ChartOptions() model.ChartOptions {
	return model.ChartOptions{
		Bpm:          p.Bpm,
		Grid:         p.Grid,
		NotesPerTurn: p.NotesPerTurn,
		Opponent:     p.Opponent,
		Player:       p.Player,
		Girlfriend:   p.Girlfriend,
		Stage:        p.Stage,
		ScrollSpeed:  p.ScrollSpeed,
	}
}

func Parse(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrap(err, "could not parse preset")
	}
	return p, nil
}

func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, errors.Wrap(err, "could not read preset")
	}
	return Parse(data)
}

// Options resolves a preset file over the defaults. An empty path means
// defaults only.
func Options(path string) (chart.Options, error) {
	if path == "" {
		return chart.DefaultOptions(), nil
	}
	p, err := LoadPreset(path)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.FromModel(p.ChartOptions())
}
