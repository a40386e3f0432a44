package chart

import (
	"errors"
	"fmt"

	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/grid"
	"github.com/jsphweid/autochart/model"
	"github.com/jsphweid/autochart/turn"
)

var ErrInvalidScrollSpeed = errors.New("scroll speed must be positive")

type Options struct {
	// overrides the analyzer tempo when set
	Bpm          float64
	Grid         grid.Spec
	NotesPerTurn int
	Opponent     string
	Player       string
	Girlfriend   string
	Stage        string
	ScrollSpeed  float64
}

func DefaultOptions() Options {
	return Options{
		Grid:         grid.Eighth,
		NotesPerTurn: constants.DefaultNotesPerTurn,
		Opponent:     "dad",
		Player:       "bf",
		Girlfriend:   "gf",
		Stage:        "stage",
		ScrollSpeed:  constants.DefaultScrollSpeed,
	}
}

func (o Options) Validate() error {
	if !o.Grid.Valid() {
		return fmt.Errorf("%w: got %v", grid.ErrInvalidGrid, o.Grid)
	}
	if o.NotesPerTurn < 1 {
		return fmt.Errorf("%w: got %d", turn.ErrInvalidTurnLength, o.NotesPerTurn)
	}
	if o.ScrollSpeed <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidScrollSpeed, o.ScrollSpeed)
	}
	return nil
}

// FromModel lays the non-zero fields of m over the defaults.
func FromModel(m model.ChartOptions) (Options, error) {
	o := DefaultOptions()
	if m.Grid != "" {
		spec, err := grid.Parse(m.Grid)
		if err != nil {
			return o, err
		}
		o.Grid = spec
	}
	if m.Bpm != 0 {
		o.Bpm = m.Bpm
	}
	if m.NotesPerTurn != 0 {
		o.NotesPerTurn = m.NotesPerTurn
	}
	if m.Opponent != "" {
		o.Opponent = m.Opponent
	}
	if m.Player != "" {
		o.Player = m.Player
	}
	if m.Girlfriend != "" {
		o.Girlfriend = m.Girlfriend
	}
	if m.Stage != "" {
		o.Stage = m.Stage
	}
	if m.ScrollSpeed != 0 {
		o.ScrollSpeed = m.ScrollSpeed
	}
	return o, o.Validate()
}
