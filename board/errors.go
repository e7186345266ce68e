package board

import "errors"

// Errors reported for malformed input. Internal invariant violations (stale
// move keys, a legal move rejected by the backend) panic instead: they are
// bugs, not conditions a caller can recover from.
var (
	// ErrEmptyFen is returned when an empty FEN string is supplied.
	ErrEmptyFen = errors.New("board: empty fen")

	// ErrInvalidFen is returned for a structurally malformed FEN string.
	ErrInvalidFen = errors.New("board: invalid fen")

	// ErrInvalidFenTurn is returned when the FEN turn field is neither "w" nor "b".
	ErrInvalidFenTurn = errors.New("board: invalid fen turn field")

	// ErrInvalidSquare is returned for an unparseable algebraic square name.
	ErrInvalidSquare = errors.New("board: invalid square")

	// ErrMoveNotFound is returned when a UCI string does not name a legal
	// move in the current position.
	ErrMoveNotFound = errors.New("board: move not found among legal moves")
)
