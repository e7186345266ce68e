package board

import "fmt"

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// promoLetter is the UCI promotion suffix for the piece type, or an empty
// string for non-promotable types.
func (pt PieceType) promoLetter() string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// CanCastle reports whether the given side still has the right to castle on
// the given wing.
func (cr CastlingRights) CanCastle(c Color, kingside bool) bool {
	var flag CastlingRights
	switch {
	case c == White && kingside:
		flag = CastlingWhiteK
	case c == White && !kingside:
		flag = CastlingWhiteQ
	case c == Black && kingside:
		flag = CastlingBlackK
	default:
		flag = CastlingBlackQ
	}
	return cr&flag != 0
}

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	s := ""
	if cr&CastlingWhiteK != 0 {
		s += "K"
	}
	if cr&CastlingWhiteQ != 0 {
		s += "Q"
	}
	if cr&CastlingBlackK != 0 {
		s += "k"
	}
	if cr&CastlingBlackQ != 0 {
		s += "q"
	}
	return s
}

// Square represents a board position (0-63), little-endian rank-file:
// a1 is 0, h1 is 7, a8 is 56 and h8 is 63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the file index of the square (0 for the a-file).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index of the square (0 for the first rank).
func (sq Square) Rank() int { return int(sq) >> 3 }

// Rotate returns the square rotated by 180 degrees.
func (sq Square) Rotate() Square { return sq ^ 0x3F }

// String returns the algebraic name of the square, or "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareFromAlgebraic parses an algebraic square name such as "e4".
func SquareFromAlgebraic(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square(int(s[0]-'a') + 8*int(s[1]-'1')), nil
}

// PieceInSquare is one placed piece: a square together with the piece type
// and side occupying it. It is a plain value so it can serve as a map key.
type PieceInSquare struct {
	Square Square
	Piece  PieceType
	Color  Color
}

func (p PieceInSquare) String() string {
	return fmt.Sprintf("%s %s on %s", p.Color, p.Piece, p.Square)
}
