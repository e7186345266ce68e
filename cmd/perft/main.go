// Command perft counts the move-tree leaves of a position to a fixed
// depth. It exercises legal-move enumeration, key-addressed play and
// board forking on either backend, and doubles as a cross-backend
// consistency check: both backends must report identical counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/victorgabillon/atomheart/board"
)

func main() {
	fen := flag.String("fen", string(board.StartingFen), "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "optional label prefix for one-line output")
	native := flag.Bool("native", false, "use the native move-generator backend")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	opts := []board.Option{board.WithFen(board.Fen(*fen)), board.SortedMoveKeys()}
	if *native {
		opts = append(opts, board.UseNative())
	}
	b, err := board.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse fen: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		moves := b.LegalMoves()
		var sum uint64
		// Sorted keys walk the root moves in UCI order.
		for _, k := range moves.Keys() {
			child := b.Copy(false, true)
			child.PlayMoveKey(k)
			n := perft(child, *depth-1)
			sum += n
			fmt.Printf("%s: %d\n", moves.UCI(k), n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// perft forks a fresh board per child node; boards have no unmake, so the
// walk trades copies for the usual make/unmake pair.
func perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	keys := b.LegalMoves().Keys()
	if depth == 1 {
		return uint64(len(keys))
	}
	var nodes uint64
	for _, k := range keys {
		child := b.Copy(false, true)
		child.PlayMoveKey(k)
		nodes += perft(child, depth-1)
	}
	return nodes
}
