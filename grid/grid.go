package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidTempo = errors.New("tempo must be a positive number of beats per minute")
	ErrInvalidGrid  = errors.New("grid must be one of 1/4, 1/8, 1/16")
)

// Spec is a quantization denominator. Its value is the number of grid
// lines per beat.
type Spec int

const (
	Quarter   Spec = 1
	Eighth    Spec = 2
	Sixteenth Spec = 4
)

var names = map[Spec]string{
	Quarter:   "1/4",
	Eighth:    "1/8",
	Sixteenth: "1/16",
}

func (s Spec) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Spec(%d)", int(s))
}

func (s Spec) Divisor() int {
	return int(s)
}

func (s Spec) Valid() bool {
	_, ok := names[s]
	return ok
}

func Parse(name string) (Spec, error) {
	for spec, n := range names {
		if n == name {
			return spec, nil
		}
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidGrid, name)
}

// Interval returns the grid interval in milliseconds: (60000 / bpm) / divisor.
func Interval(bpm float64, spec Spec) (float64, error) {
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTempo, bpm)
	}
	if !spec.Valid() {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidGrid, spec)
	}
	beatMs := 60000 / bpm
	return beatMs / float64(spec.Divisor()), nil
}
