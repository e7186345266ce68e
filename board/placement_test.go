package board

import "testing"

func sqBit(sq Square) uint64 { return uint64(1) << uint(sq) }

// kingsOn builds a placement holding just the two kings, ready for extra
// material to be added on top.
func kingsOn(white, black Square) Placement {
	return Placement{
		Kings: sqBit(white) | sqBit(black),
		White: sqBit(white),
		Black: sqBit(black),
	}
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	p := kingsOn(H1, A8)
	if !p.InsufficientMaterial() {
		t.Fatal("two bare kings cannot mate")
	}
}

func TestInsufficientMaterialLoneKnight(t *testing.T) {
	p := kingsOn(H1, A8)
	p.Knights = sqBit(B1)
	p.White |= sqBit(B1)
	if !p.InsufficientMaterial() {
		t.Fatal("a lone knight cannot mate")
	}

	p.Knights |= sqBit(G8)
	p.Black |= sqBit(G8)
	if p.InsufficientMaterial() {
		t.Fatal("two knights must count as sufficient material")
	}
}

func TestInsufficientMaterialBishops(t *testing.T) {
	p := kingsOn(H1, A8)
	p.Bishops = sqBit(B1) | sqBit(D1)
	p.White |= sqBit(B1) | sqBit(D1)
	if !p.InsufficientMaterial() {
		t.Fatal("bishops confined to light squares cannot mate")
	}

	p = kingsOn(H1, A8)
	p.Bishops = sqBit(B1) | sqBit(C1)
	p.White |= sqBit(B1) | sqBit(C1)
	if p.InsufficientMaterial() {
		t.Fatal("bishops on both square colors can mate")
	}

	p = kingsOn(H1, A8)
	p.Bishops = sqBit(C1) | sqBit(F8)
	p.White |= sqBit(C1)
	p.Black |= sqBit(F8)
	if !p.InsufficientMaterial() {
		t.Fatal("bishops confined to dark squares cannot mate")
	}
}

func TestInsufficientMaterialHeavyPieces(t *testing.T) {
	p := kingsOn(H1, A8)
	p.Pawns = sqBit(A2)
	p.White |= sqBit(A2)
	if p.InsufficientMaterial() {
		t.Fatal("a pawn is always sufficient material")
	}

	p = kingsOn(H1, A8)
	p.Rooks = sqBit(A1)
	p.White |= sqBit(A1)
	if p.InsufficientMaterial() {
		t.Fatal("a rook is always sufficient material")
	}

	p = kingsOn(H1, A8)
	p.Queens = sqBit(D8)
	p.Black |= sqBit(D8)
	if p.InsufficientMaterial() {
		t.Fatal("a queen is always sufficient material")
	}
}

func TestPlacementQueriesOnStartingBoard(t *testing.T) {
	p := newTestBoard(t, StartingFen).Placement()

	if got := p.CountPieces(); got != 32 {
		t.Fatalf("expected 32 pieces, got %d", got)
	}
	if p.Occupied() != p.White|p.Black {
		t.Fatal("occupancy must be the union of both sides")
	}

	ps, ok := p.PieceAt(E1)
	if !ok || ps.Piece != King || ps.Color != White {
		t.Fatalf("expected the white king on e1, got %v ok=%v", ps, ok)
	}
	ps, ok = p.PieceAt(D8)
	if !ok || ps.Piece != Queen || ps.Color != Black {
		t.Fatalf("expected the black queen on d8, got %v ok=%v", ps, ok)
	}
	if _, ok := p.PieceAt(E4); ok {
		t.Fatal("e4 must be empty at the start")
	}
	if _, ok := p.PieceAt(NoSquare); ok {
		t.Fatal("NoSquare can never hold a piece")
	}

	m := p.PieceMap()
	if len(m) != 32 {
		t.Fatalf("expected 32 mapped pieces, got %d", len(m))
	}
	if got := m[G1]; got.Piece != Knight || got.Color != White {
		t.Fatalf("expected a white knight on g1, got %v", got)
	}
}

func TestRotateBitboard(t *testing.T) {
	if got := RotateBitboard(sqBit(A1)); got != sqBit(H8) {
		t.Fatalf("a1 must rotate to h8, got %x", got)
	}
	bb := sqBit(E4) | sqBit(C7)
	if got := RotateBitboard(RotateBitboard(bb)); got != bb {
		t.Fatalf("double rotation must be the identity, got %x", got)
	}
	if got := RotateBitboard(sqBit(E4)); got != sqBit(E4.Rotate()) {
		t.Fatalf("bitboard rotation must match square rotation, got %x", got)
	}
}
