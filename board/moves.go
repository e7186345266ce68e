package board

import (
	"strings"

	"golang.org/x/exp/slices"
)

// MoveKey indexes a move in the current legal-move list. Keys are dense
// integers in [0, Count) and are only meaningful for the position they
// were generated for.
type MoveKey int

// MoveUCI is a move in UCI notation, such as "e2e4" or "e7e8q".
type MoveUCI string

// MoveList enumerates the legal moves of one position. Lists are generated
// lazily and regenerate themselves after the owning board advances, so a
// held reference always reflects the owner's current position.
type MoveList interface {
	// Keys returns every legal move key. With sorted keys enabled the
	// order follows the UCI strings, which makes move lists comparable
	// across backends.
	Keys() []MoveKey
	Count() int
	MoreThanOne() bool
	// UCI returns the UCI string for a key. Stale keys panic.
	UCI(MoveKey) MoveUCI
}

// sortedMoveKeys returns the keys 0..len-1 ordered by the UCI string each
// one resolves to.
func sortedMoveKeys(ucis []MoveUCI) []MoveKey {
	keys := identityKeys(len(ucis))
	slices.SortFunc(keys, func(a, b MoveKey) int {
		return strings.Compare(string(ucis[a]), string(ucis[b]))
	})
	return keys
}

func identityKeys(n int) []MoveKey {
	keys := make([]MoveKey, n)
	for i := range keys {
		keys[i] = MoveKey(i)
	}
	return keys
}

// invariant reports an internal inconsistency, such as a stale move key or
// a legal move the engine refused. These are bugs in the caller or the
// board itself, never recoverable conditions.
func invariant(msg string) {
	panic("board: internal error: " + msg)
}
