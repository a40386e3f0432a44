package turn

import (
	"errors"
	"fmt"
)

var ErrInvalidTurnLength = errors.New("notes per turn must be at least 1")

type Side int

const (
	Enemy  Side = 0
	Player Side = 1
)

func (s Side) String() string {
	if s == Enemy {
		return "enemy"
	}
	return "player"
}

// Allocator hands out sides in blocks of NotesPerTurn, enemy first.
type Allocator struct {
	NotesPerTurn int
	Index        int
}

func New(notesPerTurn int) (Allocator, error) {
	if notesPerTurn < 1 {
		return Allocator{}, fmt.Errorf("%w: got %d", ErrInvalidTurnLength, notesPerTurn)
	}
	return Allocator{NotesPerTurn: notesPerTurn}, nil
}

// Next returns the side owning note a.Index and the allocator for the
// following note.
func (a Allocator) Next() (Side, Allocator) {
	side := Enemy
	if (a.Index/a.NotesPerTurn)%2 == 1 {
		side = Player
	}
	a.Index++
	return side, a
}
