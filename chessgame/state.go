// Package chessgame adapts the board package to the turngame contracts,
// so chess positions can drive any generic turn-game consumer.
package chessgame

import (
	"github.com/victorgabillon/atomheart/board"
	"github.com/victorgabillon/atomheart/turngame"
)

// State presents a board as a generic turn-game state. ClaimDraw is
// passed to every game-over and result query; forks inherit it.
type State struct {
	Board     board.Board
	ClaimDraw bool
}

var _ turngame.State[board.Key, *board.Modification] = (*State)(nil)

// NewState wraps a board with draw claims enabled.
func NewState(b board.Board) *State {
	return &State{Board: b, ClaimDraw: true}
}

// Tag returns the board's position key.
func (s *State) Tag() board.Key { return s.Board.Tag() }

// Branches enumerates the legal moves.
func (s *State) Branches() turngame.Branches {
	return branchView{s.Board.LegalMoves()}
}

// BranchName returns the UCI string for a branch key.
func (s *State) BranchName(k turngame.BranchKey) string {
	return string(s.Board.UCIFromMoveKey(board.MoveKey(k)))
}

// BranchFromName resolves a UCI string to a branch key.
func (s *State) BranchFromName(name string) (turngame.BranchKey, error) {
	k, err := s.Board.MoveKeyFromUCI(board.MoveUCI(name))
	if err != nil {
		return 0, err
	}
	return turngame.BranchKey(k), nil
}

// Turn returns the player to act.
func (s *State) Turn() turngame.Color { return GameColor(s.Board.Turn()) }

// IsOver reports whether the game has ended, claiming draws per the
// state's flag.
func (s *State) IsOver() bool { return s.Board.IsGameOver(s.ClaimDraw) }

// Step plays a move in place and returns the board modification.
func (s *State) Step(k turngame.BranchKey) *board.Modification {
	return s.Board.PlayMoveKey(board.MoveKey(k))
}

func (s *State) fork(keepHistory, deepCopyBranches bool) *State {
	return &State{
		Board:     s.Board.Copy(keepHistory, deepCopyBranches),
		ClaimDraw: s.ClaimDraw,
	}
}

// Fork returns an independent state wrapping a board copy.
func (s *State) Fork(keepHistory, deepCopyBranches bool) turngame.State[board.Key, *board.Modification] {
	return s.fork(keepHistory, deepCopyBranches)
}

// branchView presents a move list as generic branches.
type branchView struct {
	moves board.MoveList
}

func (v branchView) Keys() []turngame.BranchKey {
	moveKeys := v.moves.Keys()
	keys := make([]turngame.BranchKey, len(moveKeys))
	for i, k := range moveKeys {
		keys[i] = turngame.BranchKey(k)
	}
	return keys
}

func (v branchView) Count() int { return v.moves.Count() }

func (v branchView) MoreThanOne() bool { return v.moves.MoreThanOne() }

// GameColor converts a board color to the generic color.
func GameColor(c board.Color) turngame.Color {
	if c == board.White {
		return turngame.White
	}
	return turngame.Black
}

// BoardColor converts a generic color to the board color.
func BoardColor(c turngame.Color) board.Color {
	if c == turngame.White {
		return board.White
	}
	return board.Black
}
