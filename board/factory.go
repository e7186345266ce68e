package board

var (
	_ Board = (*pureBoard)(nil)
	_ Board = (*nativeBoard)(nil)
)

// config collects the construction choices for New.
type config struct {
	fen     Fen
	history []MoveUCI // replayed from fen during construction
	// prefilled moves are recorded as already played before fen was
	// reached. They are never replayed.
	prefilled []MoveUCI
	native    bool
	track     bool
	sorted    bool
}

// Option configures a board under construction.
type Option func(*config)

// WithFen starts the board from the given position instead of the
// standard starting position.
func WithFen(fen Fen) Option {
	return func(c *config) { c.fen = fen }
}

// WithHistory replays the given moves from the base position during
// construction. Replay failures surface as ErrMoveNotFound.
func WithHistory(moves ...MoveUCI) Option {
	return func(c *config) { c.history = moves }
}

// UseNative selects the native move-generator backend instead of the
// rules library.
func UseNative() Option {
	return func(c *config) { c.native = true }
}

// TrackModifications makes every played move return the modification it
// caused. Untracked boards return nil modifications and skip the
// placement diff.
func TrackModifications() Option {
	return func(c *config) { c.track = true }
}

// SortedMoveKeys orders move keys by their UCI strings, which makes key
// numbering reproducible across backends and runs.
func SortedMoveKeys() Option {
	return func(c *config) { c.sorted = true }
}

// New builds a board. The default is the rules-library backend at the
// standard starting position. The backend is chosen once and never
// switched.
func New(opts ...Option) (Board, error) {
	cfg := config{fen: StartingFen}
	for _, o := range opts {
		o(&cfg)
	}
	return build(cfg)
}

// FromFenAndHistory rebuilds a board from a snapshot. The snapshot's
// moves led to its position, so they are recorded without being replayed;
// the board starts at CurrentFen with fresh repetition counts.
func FromFenAndHistory(snap FenPlusMoveHistory, opts ...Option) (Board, error) {
	cfg := config{fen: snap.CurrentFen, prefilled: snap.HistoricalMoves}
	for _, o := range opts {
		o(&cfg)
	}
	return build(cfg)
}

// FromFenAndMoves rebuilds a board by replaying recorded moves from their
// base position.
func FromFenAndMoves(fm FenPlusMoves, opts ...Option) (Board, error) {
	cfg := config{fen: fm.OriginalFen, history: fm.SubsequentMoves}
	for _, o := range opts {
		o(&cfg)
	}
	return build(cfg)
}

func build(cfg config) (Board, error) {
	if cfg.native {
		return newNativeBoard(cfg)
	}
	return newPureBoard(cfg)
}
