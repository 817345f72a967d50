// Command dlxsolve reads a partially filled grid from standard input and
// prints its completion, solved by exact cover over Dancing Links.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/dlxcover/internal/dlx"
	"github.com/kpitt/dlxcover/internal/grid"
	"github.com/kpitt/dlxcover/internal/latin"
	"github.com/kpitt/dlxcover/internal/sudoku"
)

func main() {
	order := flag.Int("order", 9, "grid order (ignored in -sudoku mode, which is always 9)")
	useSudoku := flag.Bool("sudoku", false, "solve as a 9x9 Sudoku instead of a plain Latin square")
	flag.Parse()

	n := *order
	if *useSudoku {
		n = sudoku.Size
	}

	if isStdinTTY() {
		fmt.Printf("Enter the initial %dx%d board as %d lines of %d whitespace-separated values.\n", n, n, n, n)
		fmt.Println("Use '.' or '0' for empty cells (Ctrl+D to finish):")
	}

	given, err := grid.FromReader(os.Stdin, n)
	if err != nil {
		fatal(err)
	}

	var solved [][]int
	if *useSudoku {
		solved, err = sudoku.Solve(given.Rows())
	} else {
		solved, err = latin.Solve(given.Rows())
	}

	switch {
	case err == nil:
		color.HiWhite("\nSolution:")
		grid.Print(grid.FromRows(solved), given)
	case errors.Is(err, dlx.ErrNoSolution):
		color.HiRed("\nNo solution exists for this board.")
		os.Exit(1)
	default:
		fatal(err)
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.HiRedString("error: %v", err))
	os.Exit(1)
}
