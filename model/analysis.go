package model

// Analysis is what an onset analyzer hands to the chart pipeline.
// Onsets are seconds from song start, unordered and possibly duplicated.
type Analysis struct {
	Bpm      float64   `json:"bpm"`
	Duration float64   `json:"duration"`
	Onsets   []float64 `json:"onsets"`

	// detected on the percussive part only, unioned with Onsets
	PercussiveOnsets []float64 `json:"percussiveOnsets,omitempty"`
}

func (a Analysis) AllOnsets() []float64 {
	res := make([]float64, 0, len(a.Onsets)+len(a.PercussiveOnsets))
	res = append(res, a.Onsets...)
	return append(res, a.PercussiveOnsets...)
}
