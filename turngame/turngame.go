// Package turngame defines the narrow contracts a two-player turn-taking
// game exposes to a generic driver: an opaque state with enumerable
// branches, a fork operation, and dynamics that advance a state and
// classify terminal outcomes. Search and learning concerns stay outside.
package turngame

// Color identifies a player.
type Color uint8

const (
	White Color = iota
	Black
)

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing player.
func (c Color) Other() Color { return c ^ 1 }

// BranchKey indexes an available action in one state. Keys are dense
// integers, only meaningful for the state they were enumerated from.
type BranchKey int

// Branches enumerates the actions available in one state.
type Branches interface {
	Keys() []BranchKey
	Count() int
	MoreThanOne() bool
}

// State is one position of a turn game. Tag identifies the position for
// transposition purposes; Delta is whatever Step reports about the change
// it made.
type State[Tag comparable, Delta any] interface {
	// Tag returns the transposition identity of this state.
	Tag() Tag
	// Branches enumerates the legal actions.
	Branches() Branches
	// BranchName returns the display name of an action. Stale keys are a
	// bug and panic.
	BranchName(BranchKey) string
	// BranchFromName resolves a display name to an action key.
	BranchFromName(name string) (BranchKey, error)
	// Turn returns the player to act.
	Turn() Color
	// IsOver reports whether the game has ended in this state.
	IsOver() bool
	// Step applies an action in place and returns its delta.
	Step(BranchKey) Delta
	// Fork returns an independent state. With keepHistory the fork keeps
	// the record of how this state was reached; with deepCopyBranches it
	// also duplicates the branch enumeration instead of rebinding it.
	Fork(keepHistory, deepCopyBranches bool) State[Tag, Delta]
}

// HowOver classifies a finished game.
type HowOver uint8

const (
	// HowUnknown marks an outcome the state could not classify.
	HowUnknown HowOver = iota
	HowWin
	HowDraw
)

// String returns the lowercase classification name.
func (h HowOver) String() string {
	switch h {
	case HowWin:
		return "win"
	case HowDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// OverEvent describes how a finished game ended. Winner is meaningful
// only when How is HowWin.
type OverEvent struct {
	How    HowOver
	Winner Color
}

// Transition is the observable outcome of advancing a state: the
// successor, whether the game ended there, and the classified outcome.
// Over is nil exactly when IsOver is false.
type Transition[S any] struct {
	Next   S
	IsOver bool
	Over   *OverEvent
}

// Dynamics advances states without mutating the caller's copy. Step forks
// the given state, applies the action on the fork and classifies the
// outcome; outcome classification must only happen on states that already
// report IsOver.
type Dynamics[Tag comparable, Delta any, S State[Tag, Delta]] interface {
	Step(s S, k BranchKey) Transition[S]
	ActionFromName(s S, name string) (BranchKey, error)
}
