package pattern

// Direction ids, in lane order.
const (
	Left  = 0
	Down  = 1
	Up    = 2
	Right = 3
)

// Library holds the direction cycles. Each is a permutation of the four lanes.
var Library = [][4]int{
	{Left, Down, Up, Right},
	{Right, Up, Down, Left},
	{Left, Up, Down, Right},
	{Down, Right, Left, Up},
	{Up, Left, Right, Down},
}

// RotationPeriod is how many notes are sequenced before moving to the next cycle.
const RotationPeriod = 8

// State is threaded through Step, one note at a time, in chart order.
type State struct {
	Pattern int
	Pos     int
	Index   int
}

// Step returns the direction for the note at s.Index and the state for the
// following note.
func Step(s State) (int, State) {
	if s.Index > 0 && s.Index%RotationPeriod == 0 {
		s.Pattern = (s.Pattern + 1) % len(Library)
		s.Pos = 0
	}
	direction := Library[s.Pattern][s.Pos%len(Library[s.Pattern])]
	s.Pos++
	s.Index++
	return direction, s
}

// Directions sequences n notes from a fresh state.
func Directions(n int) []int {
	res := make([]int, 0, n)
	var s State
	for i := 0; i < n; i++ {
		var d int
		d, s = Step(s)
		res = append(res, d)
	}
	return res
}
