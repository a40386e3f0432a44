package chart

import (
	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/grid"
	"github.com/jsphweid/autochart/model"
	"github.com/jsphweid/autochart/pattern"
	"github.com/jsphweid/autochart/quantize"
	"github.com/jsphweid/autochart/turn"
)

type Result struct {
	Chart        model.Chart
	Bpm          float64
	GridMs       float64
	NumQuantized int
	NumFiltered  int
}

func (r Result) EnemyNotes() []model.Note {
	return r.Chart.StrumLines[0].Notes
}

func (r Result) PlayerNotes() []model.Note {
	return r.Chart.StrumLines[1].Notes
}

// Generate runs the whole pipeline over one analysis. Nothing is produced
// unless every stage succeeds.
func Generate(a model.Analysis, opts Options) (Result, error) {
	var res Result
	if err := opts.Validate(); err != nil {
		return res, err
	}

	bpm := a.Bpm
	if opts.Bpm != 0 {
		bpm = opts.Bpm
	}
	gridMs, err := grid.Interval(bpm, opts.Grid)
	if err != nil {
		return res, err
	}
	alloc, err := turn.New(opts.NotesPerTurn)
	if err != nil {
		return res, err
	}

	quantized := quantize.Quantize(a.AllOnsets(), a.Duration, gridMs)
	filtered := quantize.Filter(quantized, gridMs)

	enemy, player := sequence(filtered, alloc)

	res.Chart = Assemble(enemy, player, opts)
	res.Bpm = bpm
	res.GridMs = gridMs
	res.NumQuantized = len(quantized)
	res.NumFiltered = len(filtered)
	return res, nil
}

// sequence must see times in ascending order, both folds depend on position.
func sequence(times []float64, alloc turn.Allocator) ([]model.Note, []model.Note) {
	enemy := make([]model.Note, 0)
	player := make([]model.Note, 0)

	var ps pattern.State
	for _, t := range times {
		var direction int
		var side turn.Side
		direction, ps = pattern.Step(ps)
		side, alloc = alloc.Next()

		note := model.Note{ID: direction, SustainLength: 0, Time: int(quantize.Millis(t)), Type: 0}
		if side == turn.Enemy {
			enemy = append(enemy, note)
		} else {
			player = append(player, note)
		}
	}
	return enemy, player
}

func strumLine(visible bool, notes []model.Note, position string, t model.StrumLineType, character string) model.StrumLine {
	if notes == nil {
		notes = make([]model.Note, 0)
	}
	return model.StrumLine{
		Visible:    visible,
		KeyCount:   constants.KeyCount,
		Notes:      notes,
		Position:   position,
		Type:       t,
		Characters: []string{character},
	}
}

// Assemble wraps the two note lists into a chart document. The background
// line is always hidden and empty.
func Assemble(enemy []model.Note, player []model.Note, opts Options) model.Chart {
	return model.Chart{
		Events: make([]any, 0),
		StrumLines: []model.StrumLine{
			strumLine(true, enemy, "dad", model.EnemyLine, opts.Opponent),
			strumLine(true, player, "boyfriend", model.PlayerLine, opts.Player),
			strumLine(false, nil, "girlfriend", model.BackgroundLine, opts.Girlfriend),
		},
		ScrollSpeed:   model.Float(opts.ScrollSpeed),
		ChartVersion:  constants.ChartVersion,
		Stage:         opts.Stage,
		CodenameChart: true,
		NoteTypes:     make([]string, 0),
	}
}
