package board

import "testing"

func TestKnightMoveModification(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...Option) {
		b := newTestBoard(t, StartingFen, opts...)
		mod := mustPlay(t, b, "g1f3")
		if len(mod.Removals) != 1 || len(mod.Appearances) != 1 {
			t.Fatalf("quiet move diff has %d removals and %d appearances",
				len(mod.Removals), len(mod.Appearances))
		}
		if !mod.Removals.Contains(PieceInSquare{Square: G1, Piece: Knight, Color: White}) {
			t.Fatalf("expected the knight to leave g1, got %v", mod.Removals)
		}
		if !mod.Appearances.Contains(PieceInSquare{Square: F3, Piece: Knight, Color: White}) {
			t.Fatalf("expected the knight to appear on f3, got %v", mod.Appearances)
		}
	})
}

func TestCaptureModification(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...Option) {
		b := newTestBoard(t, StartingFen, opts...)
		mustPlay(t, b, "e2e4")
		mustPlay(t, b, "d7d5")
		mod := mustPlay(t, b, "e4d5")
		if len(mod.Removals) != 2 || len(mod.Appearances) != 1 {
			t.Fatalf("capture diff has %d removals and %d appearances",
				len(mod.Removals), len(mod.Appearances))
		}
		if !mod.Removals.Contains(PieceInSquare{Square: D5, Piece: Pawn, Color: Black}) {
			t.Fatalf("expected the captured pawn removal, got %v", mod.Removals)
		}
		if !mod.Appearances.Contains(PieceInSquare{Square: D5, Piece: Pawn, Color: White}) {
			t.Fatalf("expected the capturing pawn on d5, got %v", mod.Appearances)
		}
	})
}

func TestCastlingModification(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...Option) {
		b := newTestBoard(t, StartingFen, opts...)
		for _, uci := range []MoveUCI{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"} {
			mustPlay(t, b, uci)
		}
		mod := mustPlay(t, b, "e1g1")
		if len(mod.Removals) != 2 || len(mod.Appearances) != 2 {
			t.Fatalf("castling diff has %d removals and %d appearances",
				len(mod.Removals), len(mod.Appearances))
		}
		for _, want := range []PieceInSquare{
			{Square: E1, Piece: King, Color: White},
			{Square: H1, Piece: Rook, Color: White},
		} {
			if !mod.Removals.Contains(want) {
				t.Fatalf("missing removal %v in %v", want, mod.Removals)
			}
		}
		for _, want := range []PieceInSquare{
			{Square: G1, Piece: King, Color: White},
			{Square: F1, Piece: Rook, Color: White},
		} {
			if !mod.Appearances.Contains(want) {
				t.Fatalf("missing appearance %v in %v", want, mod.Appearances)
			}
		}
	})
}

func TestEnPassantModification(t *testing.T) {
	bothBackends(t, func(t *testing.T, opts ...Option) {
		b := newTestBoard(t, StartingFen, opts...)
		for _, uci := range []MoveUCI{"e2e4", "a7a6", "e4e5", "d7d5"} {
			mustPlay(t, b, uci)
		}
		mod := mustPlay(t, b, "e5d6")
		if len(mod.Removals) != 2 || len(mod.Appearances) != 1 {
			t.Fatalf("en passant diff has %d removals and %d appearances",
				len(mod.Removals), len(mod.Appearances))
		}
		if !mod.Removals.Contains(PieceInSquare{Square: E5, Piece: Pawn, Color: White}) {
			t.Fatalf("expected the capturing pawn to leave e5, got %v", mod.Removals)
		}
		if !mod.Removals.Contains(PieceInSquare{Square: D5, Piece: Pawn, Color: Black}) {
			t.Fatalf("expected the passed pawn removal from d5, got %v", mod.Removals)
		}
		if !mod.Appearances.Contains(PieceInSquare{Square: D6, Piece: Pawn, Color: White}) {
			t.Fatalf("expected the pawn to land on d6, got %v", mod.Appearances)
		}
	})
}

func TestComputeModificationsNoChange(t *testing.T) {
	p := newTestBoard(t, StartingFen).Placement()
	mod := ComputeModifications(p, p)
	if len(mod.Removals) != 0 || len(mod.Appearances) != 0 {
		t.Fatalf("identical placements must diff empty, got %v", mod)
	}
}

func TestPieceSetAddContains(t *testing.T) {
	s := PieceSet{}
	ps := PieceInSquare{Square: E4, Piece: Pawn, Color: White}
	if s.Contains(ps) {
		t.Fatal("empty set must not contain anything")
	}
	s.Add(ps)
	if !s.Contains(ps) {
		t.Fatal("added piece must be found")
	}
	if s.Contains(PieceInSquare{Square: E4, Piece: Pawn, Color: Black}) {
		t.Fatal("color is part of the identity")
	}
}

func TestPieceSetSliceOrdersBySquare(t *testing.T) {
	s := PieceSet{}
	for _, ps := range []PieceInSquare{
		{Square: H1, Piece: Rook, Color: White},
		{Square: A1, Piece: Rook, Color: White},
		{Square: E1, Piece: King, Color: White},
	} {
		s.Add(ps)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 pieces, got %d", s.Len())
	}
	got := s.Slice()
	for i, want := range []Square{A1, E1, H1} {
		if got[i].Square != want {
			t.Fatalf("slice[%d] on %s, want %s", i, got[i].Square, want)
		}
	}
}
