// Command tilesolver is a CLI host around the tilesolver package: it
// parses/generates boards and drives the core solver through a set of
// non-interactive subcommands plus one interactive one.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vxm-ppz/tilesolver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:], logger)
	case "shuffle":
		err = runShuffle(os.Args[2:], logger)
	case "play":
		err = runPlay(os.Args[2:], logger)
	case "batch":
		err = runBatch(os.Args[2:], logger)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "tilesolver:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tilesolver <solve|shuffle|play|batch> [flags]")
}

func runSolve(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	csv := fs.String("csv", "", "board CSV (n,t0,t1,...); reads stdin if empty")
	verbose := fs.Bool("v", false, "log solve progress")
	fs.Parse(args)

	input := *csv
	if input == "" {
		data, err := readAllStdin()
		if err != nil {
			return err
		}
		input = strings.TrimSpace(data)
	}

	opts := []tilesolver.Option{}
	if *verbose {
		opts = append(opts, tilesolver.WithLogger(logger), tilesolver.WithProgressInterval(10000))
	}
	solution, err := tilesolver.SolveBoardCSV(input, opts...)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%d moves\n", solution, len(solution))
	return nil
}

func runShuffle(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("shuffle", flag.ExitOnError)
	n := fs.Int("n", 3, "board size")
	k := fs.Int("k", 20, "number of random legal moves")
	seed := fs.Int64("seed", 0, "RNG seed (0 picks a random seed)")
	verbose := fs.Bool("v", false, "log shuffle lifecycle")
	fs.Parse(args)

	shuffler := newShuffler(*seed, *verbose, logger)
	board := shuffler.NewGameBoard(*n, *k)
	fmt.Println(tilesolver.FormatBoardCSV(board))
	return nil
}

func runBatch(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	n := fs.Int("n", 3, "board size")
	k := fs.Int("k", 20, "number of random legal moves per puzzle")
	count := fs.Int("count", 8, "number of puzzles to generate and solve")
	workers := fs.Int("workers", 0, "concurrent solves (0 = NumCPU)")
	seed := fs.Int64("seed", 0, "RNG seed (0 picks a random seed)")
	fs.Parse(args)

	shuffler := newShuffler(*seed, false, logger)
	puzzles := make([]*tilesolver.Board, *count)
	for i := range puzzles {
		puzzles[i] = shuffler.NewGameBoard(*n, *k)
	}

	results, err := tilesolver.SolveBatch(context.Background(), puzzles, *workers, tilesolver.WithLogger(logger))
	if err != nil {
		return err
	}
	for i, r := range results {
		fmt.Printf("puzzle %d: %d moves, %d nodes expanded, %s\n",
			i, len(r.Moves), r.NodesExpanded, r.Elapsed)
	}
	return nil
}

func runPlay(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	n := fs.Int("n", 3, "board size")
	k := fs.Int("k", 20, "number of random legal moves")
	seed := fs.Int64("seed", 0, "RNG seed (0 picks a random seed)")
	verbose := fs.Bool("v", false, "log shuffle lifecycle")
	fs.Parse(args)

	shuffler := newShuffler(*seed, *verbose, logger)
	board := shuffler.NewGameBoard(*n, *k)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("=== Sliding Tile Puzzle ===")
	fmt.Println("Commands: move <up|down|left|right>, show, solve, quit")
	fmt.Println()

	for {
		printBoard(board)
		if board.IsSolved() {
			fmt.Println("Solved!")
			return nil
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "show":
			continue
		case "solve":
			moves := tilesolver.Solve(board.Copy())
			fmt.Println(tilesolver.FormatSolution(moves))
		case "move":
			if len(fields) != 2 {
				fmt.Println("usage: move <up|down|left|right>")
				continue
			}
			d, ok := parseDirection(fields[1])
			if !ok || !board.CanMove(d) {
				fmt.Println("illegal move")
				continue
			}
			board.ApplyMove(d)
		default:
			fmt.Println("unknown command")
		}
	}
}

func parseDirection(s string) (tilesolver.Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return tilesolver.Up, true
	case "down":
		return tilesolver.Down, true
	case "left":
		return tilesolver.Left, true
	case "right":
		return tilesolver.Right, true
	default:
		return tilesolver.None, false
	}
}

func printBoard(b *tilesolver.Board) {
	n := b.N()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			t := b.At(row, col)
			if t.IsBlank() {
				fmt.Print("  . ")
			} else {
				fmt.Printf("%3d ", t.Symbol())
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func newShuffler(seed int64, verbose bool, logger zerolog.Logger) *tilesolver.Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []tilesolver.ShufflerOption{}
	if verbose {
		opts = append(opts, tilesolver.WithShufflerLogger(logger))
	}
	return tilesolver.NewShuffler(rand.New(rand.NewSource(seed)), opts...)
}

func readAllStdin() (string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var sb strings.Builder
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
	}
	return sb.String(), scanner.Err()
}
