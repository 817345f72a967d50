package dlx

import (
	"fmt"
	"iter"
)

// Problem describes one constraint-satisfaction family: a Height x Width
// grid whose cells take values in [1, MaxValue], plus an Encode method that
// builds a fresh constraint matrix for it. Latin squares and Sudoku are
// both Problems; the search engine above is parametric only over this
// interface, never over a class hierarchy (spec.md section 9).
type Problem interface {
	Height() int
	Width() int
	MaxValue() int
	Encode() *Matrix
}

// Solve seeds the given clues (given may be nil for no clues) onto a fresh
// matrix built from p, searches for the first completion, and decodes it
// back into a grid. It returns ErrInvalidGrid if given has the wrong shape
// or an out-of-range value, or ErrNoSolution if the search exhausts without
// finding a completion.
func Solve(p Problem, given [][]int) ([][]int, error) {
	if given != nil {
		if err := ValidateGrid(given, p.Height(), p.Width(), p.MaxValue()); err != nil {
			return nil, err
		}
	}

	e := NewEngine(p.Encode())
	seed(e, given)

	sol, ok := e.Solve()
	if !ok {
		return nil, ErrNoSolution
	}
	return decodeGrid(sol, p.Height(), p.Width()), nil
}

// Enumerate lazily yields every completion of p consistent with given
// (given may be nil to enumerate every completion of the unconstrained
// problem). Each top-level call builds its own fresh matrix, so the engine
// never retains state across calls (spec.md 4.4 re-entrancy).
//
// Validation of given happens on the first pull of the sequence, not at
// call time -- matching the usual semantics of a lazy generator, where no
// code runs until the sequence is actually ranged over. An invalid grid
// panics rather than silently producing an empty sequence, since an empty
// enumeration must stay distinguishable from "zero solutions for a valid
// but infeasible input".
func Enumerate(p Problem, given [][]int) iter.Seq[[][]int] {
	return func(yield func([][]int) bool) {
		if given != nil {
			if err := ValidateGrid(given, p.Height(), p.Width(), p.MaxValue()); err != nil {
				panic(err)
			}
		}

		e := NewEngine(p.Encode())
		seed(e, given)

		for sol := range e.Solutions() {
			if !yield(decodeGrid(sol, p.Height(), p.Width())) {
				return
			}
		}
	}
}

func seed(e *Engine, given [][]int) {
	if given == nil {
		return
	}
	for r, row := range given {
		for c, v := range row {
			if v != 0 {
				e.SeedClue(r, c, v)
			}
		}
	}
}

func decodeGrid(sol []Candidate, height, width int) [][]int {
	g := make([][]int, height)
	for r := range g {
		g[r] = make([]int, width)
	}
	for _, cand := range sol {
		g[cand.Row][cand.Col] = cand.Val
	}
	return g
}

// ValidateGrid reports ErrInvalidGrid if g is not height x width or
// contains a value outside [0, maxValue].
func ValidateGrid(g [][]int, height, width, maxValue int) error {
	if len(g) != height {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, height, len(g))
	}
	for r, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, r, len(row), width)
		}
		for c, v := range row {
			if v < 0 || v > maxValue {
				return fmt.Errorf("%w: value %d at (%d,%d) out of range [0,%d]", ErrInvalidGrid, v, r, c, maxValue)
			}
		}
	}
	return nil
}
