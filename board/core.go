package board

// core carries the backend-independent bookkeeping both backends share:
// the synced placement, the non-placement position fields, the cached keys
// and the move history. Backends update it after every applied move, so
// position queries never call back into the underlying engine.
type core struct {
	placement Placement
	turn      Color
	rights    CastlingRights
	ep        Square
	promoted  uint64
	halfmove  int
	fullmove  int

	key     Key
	reduced ReducedKey
	history []MoveUCI

	track  bool // compute per-move modifications
	sorted bool // order move keys by UCI
}

// seed initializes the position fields from parsed FEN metadata. Standard
// FEN carries no promoted-piece information, so the mask starts empty.
func (c *core) seed(f fenFields) {
	c.turn = f.turn
	c.rights = f.rights
	c.ep = f.ep
	c.halfmove = f.halfmove
	c.fullmove = f.fullmove
	c.promoted = 0
}

// refreshKey recomputes and caches both position keys.
func (c *core) refreshKey() {
	c.key = ComputeKey(c.placement, c.turn, c.rights, c.ep, c.promoted, c.fullmove, c.halfmove)
	c.reduced = c.key.WithoutCounters()
}

// Tag returns the cached position key.
func (c *core) Tag() Key { return c.key }

// ReducedTag returns the cached position key without move counters.
func (c *core) ReducedTag() ReducedKey { return c.reduced }

// Turn returns the side to move.
func (c *core) Turn() Color { return c.turn }

// Ply returns the number of half-moves played since the start of the game,
// derived from the fullmove number and the side to move.
func (c *core) Ply() int { return 2*(c.fullmove-1) + int(c.turn) }

// MoveHistory returns the recorded moves of this lineage.
func (c *core) MoveHistory() []MoveUCI { return c.history }

// Placement returns the synced piece bitboards.
func (c *core) Placement() Placement { return c.placement }

// PieceAt returns the piece occupying a square, if any.
func (c *core) PieceAt(sq Square) (PieceInSquare, bool) { return c.placement.PieceAt(sq) }

// PieceMap returns every placed piece keyed by square.
func (c *core) PieceMap() map[Square]PieceInSquare { return c.placement.PieceMap() }

// CountPieces returns the number of pieces on the board.
func (c *core) CountPieces() int { return c.placement.CountPieces() }

// Promoted returns the bitboard of pieces that entered the game by
// promotion.
func (c *core) Promoted() uint64 { return c.promoted }

// EpSquare returns the en passant target square or NoSquare.
func (c *core) EpSquare() Square { return c.ep }

// CastlingRights returns the remaining castling rights.
func (c *core) CastlingRights() CastlingRights { return c.rights }

// HalfmoveClock returns the half-moves since the last capture or pawn move.
func (c *core) HalfmoveClock() int { return c.halfmove }

// FullmoveNumber returns the full move counter, starting at 1.
func (c *core) FullmoveNumber() int { return c.fullmove }

// promotedAfter advances the promoted mask for a move from one square to
// another. A promoted piece keeps its flag when it travels, a captured
// promoted piece loses it, and a fresh promotion sets it.
func promotedAfter(promoted uint64, from, to Square, isPromotion bool) uint64 {
	fromBit := uint64(1) << uint(from)
	toBit := uint64(1) << uint(to)
	travels := promoted&fromBit != 0
	promoted &^= fromBit | toBit
	if isPromotion || travels {
		promoted |= toBit
	}
	return promoted
}

// moveFacts are the backend-independent facts about a move, derived from
// the pre-move placement before the engine applies it.
type moveFacts struct {
	from, to  Square
	isPawn    bool
	isKing    bool
	isCapture bool
	isPromo   bool
}

// factsFor classifies a move against the current position. The en passant
// case counts as a capture even though the target square is empty.
func (c *core) factsFor(from, to Square, isPromo bool) moveFacts {
	fromBit := uint64(1) << uint(from)
	toBit := uint64(1) << uint(to)
	isPawn := c.placement.Pawns&fromBit != 0
	return moveFacts{
		from:      from,
		to:        to,
		isPawn:    isPawn,
		isKing:    c.placement.Kings&fromBit != 0,
		isCapture: c.placement.Occupied()&toBit != 0 || (isPawn && c.ep != NoSquare && to == c.ep),
		isPromo:   isPromo,
	}
}

// advance updates castling rights, the en passant square, the promoted
// mask, the move counters, the side to move and the history for one
// applied move. Placement syncing and key refresh stay with the backend.
func (c *core) advance(f moveFacts, uci MoveUCI) {
	// A king move drops both of its side's rights; touching a rook home
	// square, by moving from it or capturing on it, drops that wing.
	if f.isKing {
		if c.turn == White {
			c.rights &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			c.rights &^= CastlingBlackK | CastlingBlackQ
		}
	}
	if f.from == A1 || f.to == A1 {
		c.rights &^= CastlingWhiteQ
	}
	if f.from == H1 || f.to == H1 {
		c.rights &^= CastlingWhiteK
	}
	if f.from == A8 || f.to == A8 {
		c.rights &^= CastlingBlackQ
	}
	if f.from == H8 || f.to == H8 {
		c.rights &^= CastlingBlackK
	}

	c.ep = NoSquare
	if f.isPawn && abs(int(f.to)-int(f.from)) == 16 {
		c.ep = Square((int(f.from) + int(f.to)) / 2)
	}

	c.promoted = promotedAfter(c.promoted, f.from, f.to, f.isPromo)

	if f.isPawn || f.isCapture {
		c.halfmove = 0
	} else {
		c.halfmove++
	}
	if c.turn == Black {
		c.fullmove++
	}
	c.turn = c.turn.Other()
	c.history = append(c.history, uci)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
