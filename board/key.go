package board

// Key identifies a position exactly: piece placement, side to move,
// castling rights, en passant square, occupancies, the promoted-piece mask
// and the two move counters. It is a plain comparable struct so it can key
// maps directly, and it is cheaper to build than a FEN string. Both
// backends produce representation-identical keys for the same position.
type Key struct {
	Pawns          uint64
	Knights        uint64
	Bishops        uint64
	Rooks          uint64
	Queens         uint64
	Kings          uint64
	Turn           Color
	CastlingRights CastlingRights
	EpSquare       Square
	White          uint64
	Black          uint64
	Promoted       uint64
	FullmoveNumber int
	HalfmoveClock  int
}

// ReducedKey is a Key with the two move counters dropped, so that the same
// position reached at different points of a game compares equal. It is the
// unit the repetition counters are keyed on.
type ReducedKey struct {
	Pawns          uint64
	Knights        uint64
	Bishops        uint64
	Rooks          uint64
	Queens         uint64
	Kings          uint64
	Turn           Color
	CastlingRights CastlingRights
	EpSquare       Square
	White          uint64
	Black          uint64
	Promoted       uint64
}

// WithoutCounters strips the fullmove number and halfmove clock.
func (k Key) WithoutCounters() ReducedKey {
	return ReducedKey{
		Pawns:          k.Pawns,
		Knights:        k.Knights,
		Bishops:        k.Bishops,
		Rooks:          k.Rooks,
		Queens:         k.Queens,
		Kings:          k.Kings,
		Turn:           k.Turn,
		CastlingRights: k.CastlingRights,
		EpSquare:       k.EpSquare,
		White:          k.White,
		Black:          k.Black,
		Promoted:       k.Promoted,
	}
}

// ComputeKey builds the key for a position. It is a pure function of its
// inputs; boards call it once per applied move and cache the result.
func ComputeKey(p Placement, turn Color, rights CastlingRights, ep Square, promoted uint64, fullmove, halfmove int) Key {
	return Key{
		Pawns:          p.Pawns,
		Knights:        p.Knights,
		Bishops:        p.Bishops,
		Rooks:          p.Rooks,
		Queens:         p.Queens,
		Kings:          p.Kings,
		Turn:           turn,
		CastlingRights: rights,
		EpSquare:       ep,
		White:          p.White,
		Black:          p.Black,
		Promoted:       promoted,
		FullmoveNumber: fullmove,
		HalfmoveClock:  halfmove,
	}
}
