package board

import (
	"fmt"
	"io"

	"github.com/dylhunn/dragontoothmg"
)

// nativeBoard is the backend built on the dragontoothmg move generator.
// The generator owns legality and move application but keeps no game
// history, so the backend layers its own repetition counts and move stack
// on top, and runs the shared core bookkeeping for the fields the
// generator does not expose.
type nativeBoard struct {
	core
	engine dragontoothmg.Board
	// reps counts every reduced key this lineage has visited, the
	// starting position included.
	reps  map[ReducedKey]int
	moves *nativeMoves
}

func newNativeBoard(cfg config) (*nativeBoard, error) {
	fields, err := parseFenFields(cfg.fen)
	if err != nil {
		return nil, err
	}
	b := &nativeBoard{engine: dragontoothmg.ParseFen(string(cfg.fen))}
	b.track = cfg.track
	b.sorted = cfg.sorted
	b.seed(fields)
	b.syncPlacement()
	b.refreshKey()
	b.reps = map[ReducedKey]int{b.reduced: 1}
	b.moves = &nativeMoves{owner: b}
	if len(cfg.prefilled) > 0 {
		b.history = append([]MoveUCI(nil), cfg.prefilled...)
	}
	for _, uci := range cfg.history {
		if _, err := b.PlayMoveUCI(uci); err != nil {
			return nil, fmt.Errorf("board: replay %q: %w", uci, err)
		}
	}
	return b, nil
}

// syncPlacement rebuilds the placement from the generator's bitboards.
func (b *nativeBoard) syncPlacement() {
	w, bl := &b.engine.White, &b.engine.Black
	b.placement = Placement{
		Pawns:   w.Pawns | bl.Pawns,
		Knights: w.Knights | bl.Knights,
		Bishops: w.Bishops | bl.Bishops,
		Rooks:   w.Rooks | bl.Rooks,
		Queens:  w.Queens | bl.Queens,
		Kings:   w.Kings | bl.Kings,
		White:   w.All,
		Black:   bl.All,
	}
}

func (b *nativeBoard) LegalMoves() MoveList { return b.moves }

func (b *nativeBoard) MoveKeyFromUCI(uci MoveUCI) (MoveKey, error) { return b.moves.keyFor(uci) }

func (b *nativeBoard) UCIFromMoveKey(k MoveKey) MoveUCI { return b.moves.UCI(k) }

func (b *nativeBoard) PlayMoveKey(k MoveKey) *Modification {
	return b.apply(b.moves.move(k))
}

func (b *nativeBoard) PlayMoveUCI(uci MoveUCI) (*Modification, error) {
	k, err := b.moves.keyFor(uci)
	if err != nil {
		return nil, err
	}
	return b.apply(b.moves.move(k)), nil
}

// apply plays a move taken from the current legal-move list. Move facts
// are read before the generator mutates its state; the undo closure the
// generator returns is dropped because boards only move forward.
func (b *nativeBoard) apply(mv dragontoothmg.Move) *Modification {
	uci := MoveUCI(mv.String())
	facts := b.factsFor(Square(int(mv.From())), Square(int(mv.To())), mv.Promote() > 0)
	var before Placement
	if b.track {
		before = b.placement
	}
	b.engine.Apply(mv)
	b.advance(facts, uci)
	b.syncPlacement()
	b.refreshKey()
	b.reps[b.reduced]++
	b.moves.reset()
	if b.track {
		return ComputeModifications(before, b.placement)
	}
	return nil
}

func (b *nativeBoard) IsZeroing(k MoveKey) bool {
	mv := b.moves.move(k)
	f := b.factsFor(Square(int(mv.From())), Square(int(mv.To())), mv.Promote() > 0)
	return f.isPawn || f.isCapture
}

// canClaimThreefold reports whether a repetition draw could be claimed.
// Claims stay suppressed until the lineage has recorded at least five
// plies of its own, so a fresh board or a history-stripped copy cannot
// claim on counts it inherited.
func (b *nativeBoard) canClaimThreefold() bool {
	if len(b.history) < 5 {
		return false
	}
	for _, n := range b.reps {
		if n > 2 {
			return true
		}
	}
	return false
}

func (b *nativeBoard) claimableDraw(claimDraw bool) bool {
	return claimDraw && (b.canClaimThreefold() || b.halfmove >= 100)
}

// IsGameOver reports whether the game ended: a claimed draw when claimDraw
// is set, no legal moves, or insufficient material. Unlike the rules
// library the generator applies no automatic fivefold or seventy-five-move
// thresholds.
func (b *nativeBoard) IsGameOver(claimDraw bool) bool {
	if b.claimableDraw(claimDraw) {
		return true
	}
	return b.moves.Count() == 0 || b.placement.InsufficientMaterial()
}

func (b *nativeBoard) Result(claimDraw bool) string {
	if b.claimableDraw(claimDraw) {
		return ResultDraw
	}
	if b.moves.Count() == 0 {
		if b.engine.OurKingInCheck() {
			if b.turn == White {
				return ResultBlackWins
			}
			return ResultWhiteWins
		}
		return ResultDraw
	}
	if b.placement.InsufficientMaterial() {
		return ResultDraw
	}
	return ResultOngoing
}

// Termination names the reason the game ended. The generator cannot report
// one, so any finished game maps to TerminationUnknown.
func (b *nativeBoard) Termination() Termination {
	if b.IsGameOver(false) {
		return TerminationUnknown
	}
	return TerminationNone
}

func (b *nativeBoard) Fen() Fen { return Fen(b.engine.ToFen()) }

func (b *nativeBoard) Copy(keepHistory, deepCopyLegalMoves bool) Board {
	nb := &nativeBoard{core: b.core, engine: b.engine}
	// Repetition counts always deep-copy, even when the history does not.
	nb.reps = make(map[ReducedKey]int, len(b.reps))
	for k, n := range b.reps {
		nb.reps[k] = n
	}
	if keepHistory {
		nb.history = append([]MoveUCI(nil), b.history...)
	} else {
		nb.history = nil
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

func (b *nativeBoard) IntoFenAndHistory() FenPlusMoveHistory {
	return FenPlusMoveHistory{
		CurrentFen:      b.Fen(),
		HistoricalMoves: append([]MoveUCI(nil), b.history...),
	}
}

func (b *nativeBoard) Dump(w io.Writer) error { return WriteSnapshot(w, b.IntoFenAndHistory()) }

// nativeMoves is the lazy legal-move view of a nativeBoard.
type nativeMoves struct {
	owner     *nativeBoard
	generated bool
	list      []dragontoothmg.Move
	ucis      []MoveUCI
	keys      []MoveKey
}

func (m *nativeMoves) reset() {
	m.generated = false
	m.list, m.ucis, m.keys = nil, nil, nil
}

func (m *nativeMoves) ensure() {
	if m.generated {
		return
	}
	m.list = m.owner.engine.GenerateLegalMoves()
	m.ucis = make([]MoveUCI, len(m.list))
	for i := range m.list {
		m.ucis[i] = MoveUCI(m.list[i].String())
	}
	if m.owner.sorted {
		m.keys = sortedMoveKeys(m.ucis)
	} else {
		m.keys = identityKeys(len(m.ucis))
	}
	m.generated = true
}

func (m *nativeMoves) Keys() []MoveKey { m.ensure(); return m.keys }

func (m *nativeMoves) Count() int { m.ensure(); return len(m.list) }

func (m *nativeMoves) MoreThanOne() bool { return m.Count() > 1 }

func (m *nativeMoves) UCI(k MoveKey) MoveUCI {
	m.ensure()
	m.check(k)
	return m.ucis[k]
}

func (m *nativeMoves) move(k MoveKey) dragontoothmg.Move {
	m.ensure()
	m.check(k)
	return m.list[k]
}

func (m *nativeMoves) check(k MoveKey) {
	if k < 0 || int(k) >= len(m.list) {
		invariant(fmt.Sprintf("move key %d out of range for %d legal moves", k, len(m.list)))
	}
}

func (m *nativeMoves) keyFor(uci MoveUCI) (MoveKey, error) {
	m.ensure()
	for i, u := range m.ucis {
		if u == uci {
			return MoveKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMoveNotFound, uci)
}

func (m *nativeMoves) cloneFor(nb *nativeBoard) *nativeMoves {
	c := &nativeMoves{owner: nb, generated: m.generated}
	if m.generated {
		c.list = append([]dragontoothmg.Move(nil), m.list...)
		c.ucis = append([]MoveUCI(nil), m.ucis...)
		c.keys = append([]MoveKey(nil), m.keys...)
	}
	return c
}
