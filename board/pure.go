package board

import (
	"fmt"
	"io"

	"github.com/notnil/chess"
)

// pureBoard is the backend built on the notnil/chess rules library. The
// library owns move legality and draw rules; the shared core keeps the
// placement and position fields synced after every move so that keys and
// piece queries behave identically to the native backend.
type pureBoard struct {
	core
	game     *chess.Game
	startFen Fen // position the game object was built from, for replays
	// replayFrom is the history index where the startFen-based replay
	// begins. Restored boards carry recorded moves that predate their
	// base position; those must never be replayed.
	replayFrom int
	moves      *pureMoves
}

func newPureGame(fen Fen) (*chess.Game, error) {
	fenOpt, err := chess.FEN(string(fen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFen, err)
	}
	return chess.NewGame(fenOpt, chess.UseNotation(chess.UCINotation{})), nil
}

func newPureBoard(cfg config) (*pureBoard, error) {
	fields, err := parseFenFields(cfg.fen)
	if err != nil {
		return nil, err
	}
	game, err := newPureGame(cfg.fen)
	if err != nil {
		return nil, err
	}
	b := &pureBoard{game: game, startFen: cfg.fen}
	b.track = cfg.track
	b.sorted = cfg.sorted
	b.seed(fields)
	b.syncPlacement()
	b.refreshKey()
	b.moves = &pureMoves{owner: b}
	if len(cfg.prefilled) > 0 {
		b.history = append([]MoveUCI(nil), cfg.prefilled...)
		b.replayFrom = len(b.history)
	}
	for _, uci := range cfg.history {
		if _, err := b.PlayMoveUCI(uci); err != nil {
			return nil, fmt.Errorf("board: replay %q: %w", uci, err)
		}
	}
	return b, nil
}

// syncPlacement rebuilds the placement from the library's square map.
func (b *pureBoard) syncPlacement() {
	var p Placement
	for sq, piece := range b.game.Position().Board().SquareMap() {
		if piece == chess.NoPiece {
			continue
		}
		bit := uint64(1) << uint(int(sq))
		switch piece.Type() {
		case chess.Pawn:
			p.Pawns |= bit
		case chess.Knight:
			p.Knights |= bit
		case chess.Bishop:
			p.Bishops |= bit
		case chess.Rook:
			p.Rooks |= bit
		case chess.Queen:
			p.Queens |= bit
		case chess.King:
			p.Kings |= bit
		}
		if piece.Color() == chess.White {
			p.White |= bit
		} else {
			p.Black |= bit
		}
	}
	b.placement = p
}

func (b *pureBoard) LegalMoves() MoveList { return b.moves }

func (b *pureBoard) MoveKeyFromUCI(uci MoveUCI) (MoveKey, error) { return b.moves.keyFor(uci) }

func (b *pureBoard) UCIFromMoveKey(k MoveKey) MoveUCI { return b.moves.UCI(k) }

func (b *pureBoard) PlayMoveKey(k MoveKey) *Modification {
	return b.apply(b.moves.move(k))
}

func (b *pureBoard) PlayMoveUCI(uci MoveUCI) (*Modification, error) {
	k, err := b.moves.keyFor(uci)
	if err != nil {
		return nil, err
	}
	return b.apply(b.moves.move(k)), nil
}

// apply plays a move taken from the current legal-move list. The move is
// replayed through the game's notation decoder so that it always resolves
// against the game's own position, which keeps shared move views safe.
func (b *pureBoard) apply(mv *chess.Move) *Modification {
	uci := pureUCI(mv)
	facts := b.factsFor(Square(int(mv.S1())), Square(int(mv.S2())), mv.Promo() != chess.NoPieceType)
	var before Placement
	if b.track {
		before = b.placement
	}
	if err := b.game.MoveStr(string(uci)); err != nil {
		invariant("legal move " + string(uci) + " rejected by rules library: " + err.Error())
	}
	b.advance(facts, uci)
	b.syncPlacement()
	b.refreshKey()
	b.moves.reset()
	if b.track {
		return ComputeModifications(before, b.placement)
	}
	return nil
}

func (b *pureBoard) IsZeroing(k MoveKey) bool {
	mv := b.moves.move(k)
	f := b.factsFor(Square(int(mv.S1())), Square(int(mv.S2())), mv.Promo() != chess.NoPieceType)
	return f.isPawn || f.isCapture
}

// IsGameOver reports whether the game ended under the library's rules,
// folding in claimable draws when claimDraw is set. The library applies
// its own automatic thresholds (fivefold, seventy-five moves); there is no
// extra ply gate on this backend.
func (b *pureBoard) IsGameOver(claimDraw bool) bool {
	if b.game.Outcome() != chess.NoOutcome {
		return true
	}
	return claimDraw && b.drawClaimable()
}

func (b *pureBoard) drawClaimable() bool {
	for _, m := range b.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition || m == chess.FiftyMoveRule {
			return true
		}
	}
	return false
}

func (b *pureBoard) Result(claimDraw bool) string {
	switch b.game.Outcome() {
	case chess.WhiteWon:
		return ResultWhiteWins
	case chess.BlackWon:
		return ResultBlackWins
	case chess.Draw:
		return ResultDraw
	}
	if claimDraw && b.drawClaimable() {
		return ResultDraw
	}
	return ResultOngoing
}

func (b *pureBoard) Termination() Termination {
	if b.game.Outcome() == chess.NoOutcome {
		return TerminationNone
	}
	switch b.game.Method() {
	case chess.Checkmate:
		return TerminationCheckmate
	case chess.Stalemate:
		return TerminationStalemate
	case chess.ThreefoldRepetition:
		return TerminationThreefoldRepetition
	case chess.FivefoldRepetition:
		return TerminationFivefoldRepetition
	case chess.FiftyMoveRule:
		return TerminationFiftyMoves
	case chess.SeventyFiveMoveRule:
		return TerminationSeventyFiveMoves
	default:
		return TerminationUnknown
	}
}

func (b *pureBoard) Fen() Fen { return Fen(b.game.Position().String()) }

func (b *pureBoard) Copy(keepHistory, deepCopyLegalMoves bool) Board {
	nb := &pureBoard{core: b.core, startFen: b.startFen, replayFrom: b.replayFrom}
	if keepHistory {
		nb.history = append([]MoveUCI(nil), b.history...)
		game, err := newPureGame(b.startFen)
		if err != nil {
			invariant("start fen no longer parses: " + err.Error())
		}
		nb.game = game
		for _, uci := range b.history[b.replayFrom:] {
			if err := nb.game.MoveStr(string(uci)); err != nil {
				invariant("replay of recorded move " + string(uci) + " failed: " + err.Error())
			}
		}
	} else {
		cur := b.Fen()
		game, err := newPureGame(cur)
		if err != nil {
			invariant("current fen no longer parses: " + err.Error())
		}
		nb.game = game
		nb.startFen = cur
		nb.history = nil
		nb.replayFrom = 0
	}
	if deepCopyLegalMoves {
		nb.moves = b.moves.cloneFor(nb)
	} else {
		// Shared view: rebind it to the copy. The original board must be
		// treated as invalidated from here on.
		b.moves.owner = nb
		nb.moves = b.moves
	}
	return nb
}

func (b *pureBoard) IntoFenAndHistory() FenPlusMoveHistory {
	return FenPlusMoveHistory{
		CurrentFen:      b.Fen(),
		HistoricalMoves: append([]MoveUCI(nil), b.history...),
	}
}

func (b *pureBoard) Dump(w io.Writer) error { return WriteSnapshot(w, b.IntoFenAndHistory()) }

// pureUCI encodes a library move in UCI notation.
func pureUCI(mv *chess.Move) MoveUCI {
	s := mv.S1().String() + mv.S2().String()
	if p := mv.Promo(); p != chess.NoPieceType {
		s += purePieceType(p).promoLetter()
	}
	return MoveUCI(s)
}

func purePieceType(pt chess.PieceType) PieceType {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoPieceType
	}
}

// pureMoves is the lazy legal-move view of a pureBoard.
type pureMoves struct {
	owner     *pureBoard
	generated bool
	list      []*chess.Move
	ucis      []MoveUCI
	keys      []MoveKey
}

func (m *pureMoves) reset() {
	m.generated = false
	m.list, m.ucis, m.keys = nil, nil, nil
}

func (m *pureMoves) ensure() {
	if m.generated {
		return
	}
	m.list = m.owner.game.ValidMoves()
	m.ucis = make([]MoveUCI, len(m.list))
	for i, mv := range m.list {
		m.ucis[i] = pureUCI(mv)
	}
	if m.owner.sorted {
		m.keys = sortedMoveKeys(m.ucis)
	} else {
		m.keys = identityKeys(len(m.ucis))
	}
	m.generated = true
}

func (m *pureMoves) Keys() []MoveKey { m.ensure(); return m.keys }

func (m *pureMoves) Count() int { m.ensure(); return len(m.list) }

func (m *pureMoves) MoreThanOne() bool { return m.Count() > 1 }

func (m *pureMoves) UCI(k MoveKey) MoveUCI {
	m.ensure()
	m.check(k)
	return m.ucis[k]
}

func (m *pureMoves) move(k MoveKey) *chess.Move {
	m.ensure()
	m.check(k)
	return m.list[k]
}

func (m *pureMoves) check(k MoveKey) {
	if k < 0 || int(k) >= len(m.list) {
		invariant(fmt.Sprintf("move key %d out of range for %d legal moves", k, len(m.list)))
	}
}

func (m *pureMoves) keyFor(uci MoveUCI) (MoveKey, error) {
	m.ensure()
	for i, u := range m.ucis {
		if u == uci {
			return MoveKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMoveNotFound, uci)
}

func (m *pureMoves) cloneFor(nb *pureBoard) *pureMoves {
	c := &pureMoves{owner: nb, generated: m.generated}
	if m.generated {
		c.list = append([]*chess.Move(nil), m.list...)
		c.ucis = append([]MoveUCI(nil), m.ucis...)
		c.keys = append([]MoveKey(nil), m.keys...)
	}
	return c
}
