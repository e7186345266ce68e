package board

import "testing"

// knightShuffle returns to the previous position every four plies.
var knightShuffle = []MoveUCI{"g1f3", "g8f6", "f3g1", "f6g8"}

func TestNativeRepetitionGateRequiresOwnHistory(t *testing.T) {
	b := newTestBoard(t, StartingFen, UseNative())
	for i := 0; i < 2; i++ {
		for _, uci := range knightShuffle {
			mustPlay(t, b, uci)
		}
	}
	if !b.IsGameOver(true) {
		t.Fatal("expected a claimable repetition on the parent board")
	}

	// The fork inherits counts that are already over the threshold, but it
	// has no recorded plies of its own, so the claim stays suppressed.
	fork := b.Copy(false, true)
	if fork.IsGameOver(true) {
		t.Fatal("history-stripped fork must not claim on inherited counts")
	}
	for _, uci := range knightShuffle {
		mustPlay(t, fork, uci)
		if fork.IsGameOver(true) {
			t.Fatalf("claim fired with only %d recorded plies", len(fork.MoveHistory()))
		}
	}
	mustPlay(t, fork, "g1f3")
	if !fork.IsGameOver(true) {
		t.Fatal("expected the claim once the fork recorded its fifth ply")
	}
	if fork.IsGameOver(false) {
		t.Fatal("the claim must stay opt-in on the fork")
	}
}

func TestNativeRepetitionCountsCopyDeeply(t *testing.T) {
	b := newTestBoard(t, StartingFen, UseNative())
	for _, uci := range []MoveUCI{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6"} {
		mustPlay(t, b, uci)
	}
	if b.IsGameOver(true) {
		t.Fatal("no position has repeated three times yet")
	}

	fork := b.Copy(true, true)
	mustPlay(t, fork, "f3g1")
	mustPlay(t, fork, "f6g8")
	if !fork.IsGameOver(true) {
		t.Fatal("expected the fork to reach a claimable repetition")
	}
	// Shared counters would leak the fork's occurrences back into the
	// parent, whose history is long enough to claim.
	if b.IsGameOver(true) {
		t.Fatal("the fork's moves must not count for the parent")
	}
}

func TestNativeFiftyMoveClaimHasNoPlyGate(t *testing.T) {
	b := newTestBoard(t, "7k/8/8/8/8/8/R7/7K w - - 99 80", UseNative())
	if b.IsGameOver(true) {
		t.Fatal("99 halfmoves is not yet claimable")
	}

	mustPlay(t, b, "a2a3")
	if got := b.HalfmoveClock(); got != 100 {
		t.Fatalf("expected halfmove clock 100, got %d", got)
	}
	// A single recorded ply suffices: the clock arrived with the position.
	if !b.IsGameOver(true) {
		t.Fatal("expected a claimable fifty-move draw")
	}
	if got := b.Result(true); got != ResultDraw {
		t.Fatalf("expected %q, got %q", ResultDraw, got)
	}
	if b.IsGameOver(false) {
		t.Fatal("the claim must stay opt-in")
	}
	if got := b.Result(false); got != ResultOngoing {
		t.Fatalf("expected %q without a claim, got %q", ResultOngoing, got)
	}
}

func TestNativeFiftyMoveClaimImmediateFromFen(t *testing.T) {
	b := newTestBoard(t, "7k/8/8/8/8/8/R7/7K w - - 100 80", UseNative())
	if !b.IsGameOver(true) {
		t.Fatal("a restored clock at 100 must be claimable before any move")
	}
	if got := b.Result(true); got != ResultDraw {
		t.Fatalf("expected %q, got %q", ResultDraw, got)
	}
}

func TestNativeTerminationStaysUnknown(t *testing.T) {
	b := newTestBoard(t, fenMateInOne, UseNative())
	if got := b.Termination(); got != TerminationNone {
		t.Fatalf("expected no termination before the mate, got %v", got)
	}
	mustPlay(t, b, "c2c4")
	// The generator reports no reason, only that the game ended.
	if got := b.Termination(); got != TerminationUnknown {
		t.Fatalf("expected an unknown termination, got %v", got)
	}
}

func TestNativeInsufficientMaterialEndsGame(t *testing.T) {
	b := newTestBoard(t, "8/8/8/8/8/8/8/k6K w - - 0 1", UseNative())
	if !b.IsGameOver(false) {
		t.Fatal("bare kings must end the game")
	}
	if got := b.Result(false); got != ResultDraw {
		t.Fatalf("expected %q, got %q", ResultDraw, got)
	}
}

func TestNativeStalemate(t *testing.T) {
	b := newTestBoard(t, "k7/7R/8/8/8/8/8/1R5K w - - 0 1", UseNative())
	mustPlay(t, b, "b1b6")
	if !b.IsGameOver(false) {
		t.Fatal("expected the stalemate to end the game")
	}
	if got := b.Result(false); got != ResultDraw {
		t.Fatalf("expected %q, got %q", ResultDraw, got)
	}
}
