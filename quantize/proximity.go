package quantize

import "github.com/jsphweid/autochart/constants"

func MinGap(gridMs float64) float64 {
	return gridMs * constants.MinGapRatio
}

// Filter walks ascending times and drops any time closer than MinGap to the
// last time it kept. The first time is always kept.
func Filter(times []float64, gridMs float64) []float64 {
	res := make([]float64, 0, len(times))
	if len(times) == 0 {
		return res
	}

	minGap := MinGap(gridMs)
	res = append(res, times[0])
	for _, t := range times[1:] {
		if t-res[len(res)-1] >= minGap {
			res = append(res, t)
		}
	}
	return res
}
