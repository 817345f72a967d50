package latin

import (
	"iter"

	"github.com/kpitt/dlxcover/internal/dlx"
)

// Solve returns one completion of given, an n x n grid using 0 for blanks
// and 1..n for fixed clues. It returns dlx.ErrInvalidGrid if given is not
// square or contains a value outside [0, n], and dlx.ErrNoSolution if the
// clues admit no completion.
func Solve(given [][]int) ([][]int, error) {
	n := len(given)
	return dlx.Solve(problem{n: n}, given)
}

// Enumerate lazily yields every completion of an order-n Latin square
// consistent with given. given may be nil to enumerate every Latin square
// of order n. See dlx.Enumerate for validation-timing semantics.
func Enumerate(n int, given [][]int) iter.Seq[[][]int] {
	return dlx.Enumerate(problem{n: n}, given)
}
