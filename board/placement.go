package board

import "math/bits"

// lightSquares has a bit set for every light square (b1, d1, ...).
const lightSquares uint64 = 0x55AA55AA55AA55AA

// Placement holds the piece bitboards of a position: one board per piece
// type plus the two color occupancies. Bit i corresponds to Square(i).
// Both backends keep a Placement synced after every move so that piece
// queries and key computation never have to call back into the engine.
type Placement struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	White   uint64
	Black   uint64
}

// bitboard returns the combined bitboard for a piece type.
func (p Placement) bitboard(pt PieceType) uint64 {
	switch pt {
	case Pawn:
		return p.Pawns
	case Knight:
		return p.Knights
	case Bishop:
		return p.Bishops
	case Rook:
		return p.Rooks
	case Queen:
		return p.Queens
	case King:
		return p.Kings
	default:
		return 0
	}
}

// OccupiedByColor returns the occupancy bitboard of one side.
func (p Placement) OccupiedByColor(c Color) uint64 {
	if c == White {
		return p.White
	}
	return p.Black
}

// Occupied returns the bitboard of all occupied squares.
func (p Placement) Occupied() uint64 { return p.White | p.Black }

// CountPieces returns the number of pieces on the board.
func (p Placement) CountPieces() int { return bits.OnesCount64(p.Occupied()) }

// PieceAt returns the piece occupying a square, if any.
func (p Placement) PieceAt(sq Square) (PieceInSquare, bool) {
	if sq == NoSquare {
		return PieceInSquare{}, false
	}
	bit := uint64(1) << uint(sq)
	if p.Occupied()&bit == 0 {
		return PieceInSquare{}, false
	}
	c := White
	if p.Black&bit != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.bitboard(pt)&bit != 0 {
			return PieceInSquare{Square: sq, Piece: pt, Color: c}, true
		}
	}
	return PieceInSquare{}, false
}

// PieceMap returns every placed piece keyed by square.
func (p Placement) PieceMap() map[Square]PieceInSquare {
	m := make(map[Square]PieceInSquare, p.CountPieces())
	occ := p.Occupied()
	for occ != 0 {
		sq := Square(bits.TrailingZeros64(occ))
		occ &= occ - 1
		if ps, ok := p.PieceAt(sq); ok {
			m[sq] = ps
		}
	}
	return m
}

// InsufficientMaterial reports whether neither side can possibly deliver
// mate: bare kings, a lone minor piece, or bishops all confined to squares
// of one color.
func (p Placement) InsufficientMaterial() bool {
	if p.Pawns|p.Rooks|p.Queens != 0 {
		return false
	}
	knights := bits.OnesCount64(p.Knights)
	switch {
	case knights == 0 && p.Bishops == 0:
		return true
	case knights == 1 && p.Bishops == 0:
		return true
	case knights == 0 && p.Bishops != 0:
		onLight := p.Bishops & lightSquares
		return onLight == p.Bishops || onLight == 0
	default:
		return false
	}
}

// RotateBitboard returns the bitboard rotated by 180 degrees, mapping each
// square to its Rotate() image.
func RotateBitboard(bb uint64) uint64 { return bits.Reverse64(bb) }
