// Package board represents chess positions behind one interface with two
// interchangeable backends: a pure backend built on the notnil/chess rules
// library, and a native backend built on the dragontoothmg move generator
// with its own repetition and history bookkeeping layered on top. Both
// expose identical external semantics, including representation-identical
// position keys, so consumers can switch backends freely.
package board

import "io"

// Game results as reported by Result.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// Termination is the reason a game ended. Backends that cannot classify a
// finished game report TerminationUnknown; a capability gap is an answer,
// not an error.
type Termination uint8

const (
	// TerminationNone means the game is not over.
	TerminationNone Termination = iota
	// TerminationUnknown means the game is over but the backend cannot say why.
	TerminationUnknown
	TerminationCheckmate
	TerminationStalemate
	TerminationInsufficientMaterial
	TerminationThreefoldRepetition
	TerminationFivefoldRepetition
	TerminationFiftyMoves
	TerminationSeventyFiveMoves
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationCheckmate:
		return "checkmate"
	case TerminationStalemate:
		return "stalemate"
	case TerminationInsufficientMaterial:
		return "insufficient material"
	case TerminationThreefoldRepetition:
		return "threefold repetition"
	case TerminationFivefoldRepetition:
		return "fivefold repetition"
	case TerminationFiftyMoves:
		return "fifty moves"
	case TerminationSeventyFiveMoves:
		return "seventy-five moves"
	default:
		return "unknown"
	}
}

// Board is a mutable chess position. Implementations are not safe for
// concurrent use; Copy is the only sharing boundary.
//
// Moves are addressed by MoveKey, an index into the current legal-move
// list. Keys go stale as soon as a move is played: playing a stale key is
// a programming error and panics. UCI strings are the recoverable entry
// point; an unknown UCI returns ErrMoveNotFound.
//
// The claimDraw flag on IsGameOver and Result folds claimable draws
// (threefold repetition, the fifty-move rule) into the verdict. The native
// backend additionally gates repetition claims behind a minimum of five
// recorded plies, so a Copy(keepHistory=false) fork suppresses the claim
// until the fork has a history of its own, even though the repetition
// counters survive the copy.
type Board interface {
	// PlayMoveKey plays the move the key resolves to in the current
	// legal-move list and returns the resulting diff, or nil when
	// modification tracking is disabled.
	PlayMoveKey(MoveKey) *Modification
	// PlayMoveUCI resolves a UCI string against the legal moves and plays
	// it. Unknown notation returns ErrMoveNotFound.
	PlayMoveUCI(MoveUCI) (*Modification, error)

	// LegalMoves returns the lazy legal-move view of the current position.
	// A shallow Copy rebinds the same view to the new board; the original
	// must then be treated as invalidated.
	LegalMoves() MoveList
	// MoveKeyFromUCI resolves a UCI string to a key into the current list.
	MoveKeyFromUCI(MoveUCI) (MoveKey, error)
	// UCIFromMoveKey returns the UCI string of a current legal move.
	UCIFromMoveKey(MoveKey) MoveUCI
	// IsZeroing reports whether a current legal move is a capture or a
	// pawn move.
	IsZeroing(MoveKey) bool

	IsGameOver(claimDraw bool) bool
	Result(claimDraw bool) string
	Termination() Termination

	// Copy returns an independent board. keepHistory controls whether the
	// move history travels along; repetition bookkeeping always does.
	// With deepCopyLegalMoves false the legal-move view is shared and
	// rebound to the copy instead of duplicated.
	Copy(keepHistory, deepCopyLegalMoves bool) Board

	// Tag returns the cached position key; ReducedTag the cached key
	// without move counters.
	Tag() Key
	ReducedTag() ReducedKey

	Fen() Fen
	Ply() int
	Turn() Color
	MoveHistory() []MoveUCI

	Placement() Placement
	PieceAt(Square) (PieceInSquare, bool)
	PieceMap() map[Square]PieceInSquare
	CountPieces() int
	Promoted() uint64
	EpSquare() Square
	CastlingRights() CastlingRights
	HalfmoveClock() int
	FullmoveNumber() int

	// IntoFenAndHistory captures the current position and move record.
	IntoFenAndHistory() FenPlusMoveHistory
	// Dump writes the snapshot as YAML.
	Dump(io.Writer) error
}
