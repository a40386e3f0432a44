package quantize

import (
	"math"

	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/util"
)

// Snap moves timeMs to the nearest multiple of gridMs. Halves round away
// from zero, so 125ms on a 250ms grid lands on 250ms.
func Snap(timeMs float64, gridMs float64) float64 {
	return step(timeMs, gridMs) * gridMs
}

func step(timeMs float64, gridMs float64) float64 {
	return math.Round(timeMs / gridMs)
}

// Millis is the whole millisecond a quantized time is written out as.
func Millis(q float64) int64 {
	return int64(q)
}

// Quantize snaps onsets (seconds) onto the grid and returns the quantized
// times in ascending order, one per whole millisecond. Times at or before
// zero and times within the last EndMarginMs of the song are dropped.
func Quantize(onsets []float64, durationSec float64, gridMs float64) []float64 {
	limit := durationSec*1000 - constants.EndMarginMs

	// keyed by the whole millisecond a note will carry; on grids finer than
	// 1ms several grid lines share one and the earliest wins
	millis := make(map[int64]float64)
	for _, onset := range onsets {
		if math.IsNaN(onset) || math.IsInf(onset, 0) {
			continue
		}
		q := Snap(onset*1000, gridMs)
		if q <= 0 || q >= limit {
			continue
		}
		ms := Millis(q)
		if prev, ok := millis[ms]; !ok || q < prev {
			millis[ms] = q
		}
	}

	res := make([]float64, 0, len(millis))
	for _, ms := range util.GetSortedKeys(millis) {
		res = append(res, millis[ms])
	}
	return res
}
