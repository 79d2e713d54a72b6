// Package puzzle holds the riddle board state machine shared by the web and
// terminal front ends.
package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var (
	ErrTileOutOfRange = errors.New("tile index out of range")
	ErrDialogNotOpen  = errors.New("no riddle open for that tile")
	ErrNotComplete    = errors.New("puzzle is not complete")
	ErrRiddleCount    = fmt.Errorf("a board needs exactly %d riddles", TileCount)
)

// Phase is the screen-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDialogOpen
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDialogOpen:
		return "dialog-open"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the tagged screen state. Tile is meaningful only in
// PhaseDialogOpen and is -1 otherwise.
type State struct {
	Phase Phase
	Tile  int
}

// Verdict is the outcome of one answer submission.
type Verdict struct {
	Correct bool
	// Near is set on a wrong answer one edit away from the expected one.
	Near bool
	// Complete is set when this answer solved the last tile.
	Complete bool
}

// Screen owns one mounted puzzle: the solved tiles, the open dialog and the
// completion hand-off. It is not safe for concurrent use.
type Screen struct {
	riddles    []Riddle
	grid       Grid
	solved     []int
	phase      Phase
	dialog     Dialog
	onComplete func()
	confirmed  bool
}

// NewScreen mounts an empty screen over riddles. onComplete is called once,
// when the player confirms the completion overlay; it may be nil.
func NewScreen(riddles []Riddle, onComplete func()) (*Screen, error) {
	grid := DefaultGrid
	if len(riddles) != grid.Cells() {
		return nil, fmt.Errorf("%w: got %d", ErrRiddleCount, len(riddles))
	}
	return &Screen{
		riddles:    slices.Clone(riddles),
		grid:       grid,
		solved:     make([]int, 0, grid.Cells()),
		phase:      PhaseIdle,
		onComplete: onComplete,
	}, nil
}

// State returns the current tagged state.
func (s *Screen) State() State {
	if s.phase == PhaseDialogOpen {
		return State{Phase: PhaseDialogOpen, Tile: s.dialog.Index}
	}
	return State{Phase: s.phase, Tile: -1}
}

// Dialog returns the open dialog, if any.
func (s *Screen) Dialog() (Dialog, bool) {
	if s.phase != PhaseDialogOpen {
		return Dialog{}, false
	}
	return s.dialog, true
}

// Solved returns the solved tile indices in the order they were solved.
func (s *Screen) Solved() []int {
	return slices.Clone(s.solved)
}

// IsSolved reports whether index has been solved.
func (s *Screen) IsSolved(index int) bool {
	return slices.Contains(s.solved, index)
}

// Complete reports whether every tile is solved.
func (s *Screen) Complete() bool {
	return len(s.solved) == len(s.riddles)
}

// Confirmed reports whether the completion callback has fired.
func (s *Screen) Confirmed() bool {
	return s.confirmed
}

// Riddle returns the riddle behind index.
func (s *Screen) Riddle(index int) (Riddle, error) {
	if err := s.checkIndex(index); err != nil {
		return Riddle{}, err
	}
	return s.riddles[index], nil
}

// Progress returns the solved/total counts.
func (s *Screen) Progress() Progress {
	return Progress{Solved: len(s.solved), Total: len(s.riddles)}
}

// Grid returns the board layout.
func (s *Screen) Grid() Grid {
	return s.grid
}

// Tiles returns the board cells in index order.
func (s *Screen) Tiles() []Tile {
	open := s.State()
	lastOne := len(s.solved) == len(s.riddles)-1
	return lo.Times(len(s.riddles), func(i int) Tile {
		row, col := s.grid.Position(i)
		isOpen := open.Phase == PhaseDialogOpen && open.Tile == i
		return Tile{
			Index:  i,
			Row:    row,
			Col:    col,
			Solved: s.IsSolved(i),
			Open:   isOpen,
			Final:  isOpen && lastOne,
		}
	})
}

// SelectTile opens the riddle dialog for index. It reports whether a dialog
// was opened; selecting a solved tile, the already open tile, any tile while
// another dialog is open, or any tile once complete changes nothing.
func (s *Screen) SelectTile(index int) (bool, error) {
	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	if s.phase != PhaseIdle || s.IsSolved(index) {
		return false, nil
	}
	s.phase = PhaseDialogOpen
	s.dialog = Dialog{Index: index, Riddle: s.riddles[index]}
	return true, nil
}

// SubmitAnswer judges text against the riddle of the open tile index. A
// correct answer solves the tile and closes the dialog; a wrong one keeps the
// dialog open with text as its draft.
func (s *Screen) SubmitAnswer(index int, text string) (Verdict, error) {
	if err := s.checkIndex(index); err != nil {
		return Verdict{}, err
	}
	if s.phase != PhaseDialogOpen || s.dialog.Index != index {
		return Verdict{}, ErrDialogNotOpen
	}

	if !s.dialog.Check(text) {
		s.dialog.Attempts++
		s.dialog.Draft = text
		return Verdict{Near: s.dialog.Near(text)}, nil
	}

	s.solved = append(s.solved, index)
	s.dialog = Dialog{}
	if s.Complete() {
		s.phase = PhaseComplete
		return Verdict{Correct: true, Complete: true}, nil
	}
	s.phase = PhaseIdle
	return Verdict{Correct: true}, nil
}

// CloseDialog abandons the open dialog. It reports whether one was open.
func (s *Screen) CloseDialog() bool {
	if s.phase != PhaseDialogOpen {
		return false
	}
	s.phase = PhaseIdle
	s.dialog = Dialog{}
	return true
}

// Confirm is the continue action of the completion overlay. The completion
// callback runs on the first confirm only; Confirm reports whether it ran.
func (s *Screen) Confirm() (bool, error) {
	if s.phase != PhaseComplete {
		return false, ErrNotComplete
	}
	if s.confirmed {
		return false, nil
	}
	s.confirmed = true
	if s.onComplete != nil {
		s.onComplete()
	}
	return true, nil
}

func (s *Screen) checkIndex(index int) error {
	if index < 0 || index >= len(s.riddles) {
		return fmt.Errorf("%w: %d", ErrTileOutOfRange, index)
	}
	return nil
}
