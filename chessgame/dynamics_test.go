package chessgame

import (
	"errors"
	"testing"

	"github.com/victorgabillon/atomheart/board"
	"github.com/victorgabillon/atomheart/turngame"
)

const fenMateInOne = "1rb5/4r3/3p1npb/3kp1P1/1P3P1P/5nR1/2Q1BK2/bN4NR w - - 3 61"

func TestStepNonTerminalPosition(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, board.StartingFen, opts...))
		var dyn Dynamics

		k, err := dyn.ActionFromName(s, "e2e4")
		if err != nil {
			t.Fatalf("resolve e2e4: %v", err)
		}
		tr := dyn.Step(s, k)
		if tr.Next == nil {
			t.Fatal("expected a successor state")
		}
		if tr.IsOver {
			t.Fatal("an opening move must not end the game")
		}
		if tr.Over != nil {
			t.Fatalf("expected no over event, got %+v", tr.Over)
		}
		if tr.Next.IsOver() {
			t.Fatal("the successor must still be running")
		}

		// The stepped-from state is untouched and fully usable.
		if s.Board.Ply() != 0 {
			t.Fatalf("original advanced to ply %d", s.Board.Ply())
		}
		if got := s.Branches().Count(); got != 20 {
			t.Fatalf("original branch count changed to %d", got)
		}
	})
}

func TestStepTerminalPosition(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, fenMateInOne, opts...))
		var dyn Dynamics

		k, err := dyn.ActionFromName(s, "c2c4")
		if err != nil {
			t.Fatalf("resolve c2c4: %v", err)
		}
		tr := dyn.Step(s, k)
		if !tr.IsOver {
			t.Fatal("expected the mating move to end the game")
		}
		if !tr.Next.IsOver() {
			t.Fatal("the successor must agree the game is over")
		}
		if tr.Over == nil {
			t.Fatal("expected an over event")
		}
		if tr.Over.How != turngame.HowWin {
			t.Fatalf("expected a win, got %v", tr.Over.How)
		}
		if tr.Over.Winner != turngame.White {
			t.Fatalf("expected White as the winner, got %v", tr.Over.Winner)
		}
		if s.IsOver() {
			t.Fatal("the stepped-from state must stay playable")
		}
	})
}

func TestStepDrawByStalemate(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, "k7/7R/8/8/8/8/8/1R5K w - - 0 1", opts...))
		var dyn Dynamics

		k, err := dyn.ActionFromName(s, "b1b6")
		if err != nil {
			t.Fatal(err)
		}
		tr := dyn.Step(s, k)
		if !tr.IsOver || tr.Over == nil {
			t.Fatal("expected the stalemate to end the game")
		}
		if tr.Over.How != turngame.HowDraw {
			t.Fatalf("expected a draw, got %v", tr.Over.How)
		}
	})
}

func TestStepSequenceKeepsLineage(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, board.StartingFen, opts...))
		var dyn Dynamics

		cur := s
		for i, name := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
			k, err := dyn.ActionFromName(cur, name)
			if err != nil {
				t.Fatalf("resolve %s: %v", name, err)
			}
			tr := dyn.Step(cur, k)
			if tr.IsOver {
				t.Fatalf("game ended after %s", name)
			}
			cur = tr.Next
			if got := cur.Board.Ply(); got != i+1 {
				t.Fatalf("expected ply %d, got %d", i+1, got)
			}
		}
		if got := len(cur.Board.MoveHistory()); got != 4 {
			t.Fatalf("expected 4 recorded moves down the lineage, got %d", got)
		}
		if s.Board.Ply() != 0 {
			t.Fatal("the root state must still be at the start")
		}
	})
}

func TestStepClaimedRepetitionDraw(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, board.StartingFen, opts...))
		var dyn Dynamics

		cur := s
		var last turngame.Transition[*State]
		for i := 0; i < 2; i++ {
			for _, name := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
				k, err := dyn.ActionFromName(cur, name)
				if err != nil {
					t.Fatalf("resolve %s: %v", name, err)
				}
				last = dyn.Step(cur, k)
				cur = last.Next
			}
		}
		if !last.IsOver || last.Over == nil {
			t.Fatal("expected the second repetition cycle to end the game")
		}
		if last.Over.How != turngame.HowDraw {
			t.Fatalf("expected a draw, got %v", last.Over.How)
		}
	})
}

func TestActionFromNameUnknown(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts ...board.Option) {
		s := NewState(newGameBoard(t, board.StartingFen, opts...))
		var dyn Dynamics
		if _, err := dyn.ActionFromName(s, "e2e5"); !errors.Is(err, board.ErrMoveNotFound) {
			t.Fatalf("expected ErrMoveNotFound, got %v", err)
		}
	})
}
