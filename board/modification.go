package board

import (
	"math/bits"

	"golang.org/x/exp/slices"
)

// PieceSet is a set of placed pieces.
type PieceSet map[PieceInSquare]struct{}

// Add inserts a placed piece into the set.
func (s PieceSet) Add(p PieceInSquare) { s[p] = struct{}{} }

// Contains reports whether the set holds the placed piece.
func (s PieceSet) Contains(p PieceInSquare) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of placed pieces in the set.
func (s PieceSet) Len() int { return len(s) }

// Slice returns the pieces ordered by square. Iteration over the set
// itself carries no order; this is the deterministic view for printing.
func (s PieceSet) Slice() []PieceInSquare {
	out := make([]PieceInSquare, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b PieceInSquare) int {
		return int(a.Square) - int(b.Square)
	})
	return out
}

// Modification describes the effect of one move as two sets: the pieces
// that left their square and the pieces that appeared on one. A quiet move
// yields one removal and one appearance; castling yields two of each; an
// en passant capture yields two removals and one appearance. Consumers use
// it for incremental updates and must not mutate it.
type Modification struct {
	Removals    PieceSet
	Appearances PieceSet
}

// NewModification returns an empty modification.
func NewModification() *Modification {
	return &Modification{Removals: PieceSet{}, Appearances: PieceSet{}}
}

// ComputeModifications diffs two placements. For each of the twelve piece
// type and color combinations it computes removal and appearance bitboards
// and scans only their set bits, so the cost is proportional to the number
// of changed squares rather than the board size. Promotions, castling and
// en passant need no special cases: they fall out of the bitboard algebra.
func ComputeModifications(before, after Placement) *Modification {
	m := NewModification()
	for pt := Pawn; pt <= King; pt++ {
		prevPiece := before.bitboard(pt)
		newPiece := after.bitboard(pt)
		for _, c := range [2]Color{White, Black} {
			prevSide := prevPiece & before.OccupiedByColor(c)
			newSide := newPiece & after.OccupiedByColor(c)

			removed := prevSide &^ newSide
			for removed != 0 {
				sq := Square(bits.TrailingZeros64(removed))
				removed &= removed - 1
				m.Removals.Add(PieceInSquare{Square: sq, Piece: pt, Color: c})
			}

			appeared := newSide &^ prevSide
			for appeared != 0 {
				sq := Square(bits.TrailingZeros64(appeared))
				appeared &= appeared - 1
				m.Appearances.Add(PieceInSquare{Square: sq, Piece: pt, Color: c})
			}
		}
	}
	return m
}
