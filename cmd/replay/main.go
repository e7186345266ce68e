// Command replay rebuilds a recorded game move by move, printing the
// piece-level diff of every move and validating that the replay lands on
// the recorded position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/victorgabillon/atomheart/archive"
	"github.com/victorgabillon/atomheart/board"
)

var (
	minus = color.New(color.FgRed).SprintFunc()
	plus  = color.New(color.FgGreen).SprintFunc()
)

func main() {
	file := flag.String("file", "", "Snapshot file to replay (YAML)")
	archiveDir := flag.String("archive", "", "Archive directory to load from")
	id := flag.String("id", "", "Game id inside the archive")
	list := flag.Bool("list", false, "List the games in the archive and exit")
	baseFen := flag.String("fen", string(board.StartingFen), "Position the recorded moves start from")
	native := flag.Bool("native", false, "Use the native move-generator backend")
	claim := flag.Bool("claim", true, "Claim available draws when reporting the result")
	quiet := flag.Bool("quiet", false, "Suppress per-move output")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("replay: ")

	if *list {
		if *archiveDir == "" {
			fmt.Fprintln(os.Stderr, "-list needs -archive")
			os.Exit(2)
		}
		store, err := archive.Open(*archiveDir)
		if err != nil {
			log.Fatal(err)
		}
		ids, err := store.List()
		store.Close()
		if err != nil {
			log.Fatal(err)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	snap, err := loadSnapshot(*file, *archiveDir, *id)
	if err != nil {
		log.Fatal(err)
	}

	backendOpts := []board.Option{board.TrackModifications(), board.SortedMoveKeys()}
	if *native {
		backendOpts = append(backendOpts, board.UseNative())
	}

	if len(snap.HistoricalMoves) == 0 {
		b, err := board.FromFenAndHistory(snap, backendOpts...)
		if err != nil {
			log.Fatalf("load position: %v", err)
		}
		fmt.Printf("no moves recorded, position %s\n", b.Fen())
		report(b, *claim)
		return
	}

	b, err := board.New(append(backendOpts, board.WithFen(board.Fen(*baseFen)))...)
	if err != nil {
		log.Fatalf("start position: %v", err)
	}

	for i, uci := range snap.HistoricalMoves {
		mod, err := b.PlayMoveUCI(uci)
		if err != nil {
			log.Fatalf("move %d (%s): %v", i+1, uci, err)
		}
		if !*quiet {
			printMove(i, uci, mod)
		}
	}

	if got := b.Fen(); got != snap.CurrentFen {
		log.Fatalf("replay diverged:\n  recorded %s\n  replayed %s", snap.CurrentFen, got)
	}

	fmt.Printf("replayed %d moves to %s\n", len(snap.HistoricalMoves), b.Fen())
	report(b, *claim)
}

func loadSnapshot(file, dir, id string) (board.FenPlusMoveHistory, error) {
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return board.FenPlusMoveHistory{}, err
		}
		defer f.Close()
		return board.LoadSnapshot(f)
	case dir != "" && id != "":
		store, err := archive.Open(dir)
		if err != nil {
			return board.FenPlusMoveHistory{}, err
		}
		defer store.Close()
		return store.Load(id)
	default:
		return board.FenPlusMoveHistory{}, errors.New("need -file, or -archive with -id")
	}
}

func printMove(n int, uci board.MoveUCI, mod *board.Modification) {
	fmt.Printf("%3d. %-6s", n+1, uci)
	if mod != nil {
		for _, p := range mod.Removals.Slice() {
			fmt.Printf("  %s", minus("-"+p.String()))
		}
		for _, p := range mod.Appearances.Slice() {
			fmt.Printf("  %s", plus("+"+p.String()))
		}
	}
	fmt.Println()
}

func report(b board.Board, claim bool) {
	if b.IsGameOver(claim) {
		fmt.Printf("game over: %s (%s)\n", colorResult(b.Result(claim)), b.Termination())
	} else {
		fmt.Printf("game in progress, %s to move, %d legal moves\n", b.Turn(), b.LegalMoves().Count())
	}
}

func colorResult(result string) string {
	switch result {
	case board.ResultWhiteWins, board.ResultBlackWins:
		return color.New(color.FgGreen, color.Bold).Sprint(result)
	case board.ResultDraw:
		return color.New(color.FgYellow).Sprint(result)
	default:
		return color.New(color.FgCyan).Sprint(result)
	}
}
