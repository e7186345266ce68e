// Command selfplay runs random playouts through the turn-game dynamics,
// printing a summary line per game and optionally archiving every
// finished game under a generated id.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"github.com/victorgabillon/atomheart/archive"
	"github.com/victorgabillon/atomheart/board"
	"github.com/victorgabillon/atomheart/chessgame"
	"github.com/victorgabillon/atomheart/turngame"
)

func main() {
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	native := flag.Bool("native", false, "Use the native move-generator backend")
	claim := flag.Bool("claim", true, "Claim available draws")
	maxMoves := flag.Int("moves", 300, "Half-move cap per game")
	archiveDir := flag.String("archive", "", "Archive finished games in this directory")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("selfplay: ")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := run(*games, *seed, *native, *claim, *maxMoves, *archiveDir); err != nil {
		log.Fatal(err)
	}
}

func run(games int, seed int64, native, claim bool, maxMoves int, archiveDir string) error {
	rng := rand.New(rand.NewSource(seed))

	var store *archive.Store
	if archiveDir != "" {
		var err error
		store, err = archive.Open(archiveDir)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for g := 0; g < games; g++ {
		if err := playGame(rng, g, native, claim, maxMoves, store); err != nil {
			return err
		}
	}
	return nil
}

func playGame(rng *rand.Rand, n int, native, claim bool, maxMoves int, store *archive.Store) error {
	opts := []board.Option{board.SortedMoveKeys()}
	if native {
		opts = append(opts, board.UseNative())
	}
	b, err := board.New(opts...)
	if err != nil {
		return err
	}

	state := chessgame.NewState(b)
	state.ClaimDraw = claim
	var dyn chessgame.Dynamics

	var over *turngame.OverEvent
	played := 0
	for played < maxMoves && !state.IsOver() {
		keys := state.Branches().Keys()
		tr := dyn.Step(state, keys[rng.Intn(len(keys))])
		state = tr.Next
		played++
		if tr.IsOver {
			over = tr.Over
			break
		}
	}

	result := state.Board.Result(claim)
	line := fmt.Sprintf("game %d: %d moves, %s", n+1, played, colorResult(result))
	if over != nil && over.How == turngame.HowWin {
		line += fmt.Sprintf(" (%s wins)", over.Winner)
	}

	if store != nil {
		id, err := store.Save("", state.Board.IntoFenAndHistory())
		if err != nil {
			return err
		}
		line += ", archived as " + id
	}

	fmt.Println(line)
	return nil
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
