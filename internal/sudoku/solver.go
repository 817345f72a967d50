package sudoku

import (
	"iter"

	"github.com/kpitt/dlxcover/internal/dlx"
)

// Solve returns one completion of given, a 9x9 grid using 0 for blanks and
// 1..9 for fixed clues. It returns dlx.ErrInvalidGrid if given is not 9x9
// or contains a value outside [0, 9], and dlx.ErrNoSolution if the clues
// admit no completion.
func Solve(given [][]int) ([][]int, error) {
	return dlx.Solve(problem{}, given)
}

// Enumerate lazily yields every completion of a 9x9 Sudoku consistent with
// given. given may be nil to enumerate every filled Sudoku grid, though in
// practice callers should stop well short of exhausting that sequence.
func Enumerate(given [][]int) iter.Seq[[][]int] {
	return dlx.Enumerate(problem{}, given)
}
