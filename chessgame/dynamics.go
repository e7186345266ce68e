package chessgame

import (
	"github.com/victorgabillon/atomheart/board"
	"github.com/victorgabillon/atomheart/turngame"
)

// Dynamics advances chess states by forking them. The zero value is
// ready to use.
type Dynamics struct{}

var _ turngame.Dynamics[board.Key, *board.Modification, *State] = Dynamics{}

// Step forks the state, plays the move on the fork and classifies the
// outcome. The caller's state is never mutated; the fork keeps its
// history and its own branch copy. The outcome is classified only once
// the successor reports the game over, because Result and Termination
// are not meaningful on live positions for every backend.
func (Dynamics) Step(s *State, k turngame.BranchKey) turngame.Transition[*State] {
	next := s.fork(true, true)
	next.Step(k)
	t := turngame.Transition[*State]{Next: next}
	if next.IsOver() {
		t.IsOver = true
		t.Over = overEventFor(next)
	}
	return t
}

// ActionFromName resolves a UCI move name against the state.
func (Dynamics) ActionFromName(s *State, name string) (turngame.BranchKey, error) {
	return s.BranchFromName(name)
}

// overEventFor classifies a finished game from its result string.
func overEventFor(s *State) *turngame.OverEvent {
	switch s.Board.Result(s.ClaimDraw) {
	case board.ResultWhiteWins:
		return &turngame.OverEvent{How: turngame.HowWin, Winner: turngame.White}
	case board.ResultBlackWins:
		return &turngame.OverEvent{How: turngame.HowWin, Winner: turngame.Black}
	case board.ResultDraw:
		return &turngame.OverEvent{How: turngame.HowDraw}
	default:
		return &turngame.OverEvent{How: turngame.HowUnknown}
	}
}
