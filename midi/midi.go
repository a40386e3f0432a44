package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/autochart/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultBpm applies when a file carries no tempo event.
const DefaultBpm = 120.0

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}
	return res, nil
}

// Analyze treats every sounding note-on as an onset. The tempo is the
// earliest tempo event and the duration runs to the last event of any track.
func Analyze(s *smf.SMF) model.Analysis {
	var a model.Analysis
	a.Bpm = DefaultBpm

	tempoTicks := int64(-1)
	var endMicros int64
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absMicros := s.TimeAt(absTicks)
			if absMicros > endMicros {
				endMicros = absMicros
			}

			var channel, key, velocity uint8
			var bpm float64
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity > 0 {
					a.Onsets = append(a.Onsets, float64(absMicros)/1e6)
				}
			case event.Message.GetMetaTempo(&bpm):
				if tempoTicks < 0 || absTicks < tempoTicks {
					tempoTicks = absTicks
					a.Bpm = bpm
				}
			}
		}
	}
	a.Duration = float64(endMicros) / 1e6
	return a
}

func AnalyzeFile(path string) (model.Analysis, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return model.Analysis{}, err
	}
	return Analyze(s), nil
}
