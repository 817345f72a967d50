// Package sudoku solves 9x9 Sudoku puzzles via exact cover, reusing the
// shared internal/dlx engine. A Sudoku grid is a Latin square with a
// fourth constraint family layered on top: each of the nine 3x3 boxes
// must also contain every value exactly once.
package sudoku

import (
	"fmt"

	"github.com/kpitt/dlxcover/internal/dlx"
)

const (
	// Size is the only grid order this package solves. Generalizing the
	// box constraint to other orders would require a configurable box
	// shape; SPEC_FULL.md scopes Sudoku to the classical 9x9 grid and
	// leaves arbitrary-order grids to internal/latin.
	Size    = 9
	boxSize = 3
)

func box(r, c int) int {
	return boxSize*(r/boxSize) + c/boxSize
}

// problem is the dlx.Problem implementation for 9x9 Sudoku: the three
// Latin-square families plus a zone (box) family, 4*81 = 324 columns
// total, matching the teacher's column layout.
type problem struct{}

func (problem) Height() int   { return Size }
func (problem) Width() int    { return Size }
func (problem) MaxValue() int { return Size }

func (problem) Encode() *dlx.Matrix {
	const n = Size
	m := dlx.NewMatrix()

	cell := make([]int, n*n)
	row := make([]int, n*n)
	col := make([]int, n*n)
	zone := make([]int, n*n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell[r*n+c] = m.NewHeader(fmt.Sprintf("R%dC%d", r, c))
		}
	}
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			row[r*n+(v-1)] = m.NewHeader(fmt.Sprintf("R%d#%d", r, v))
		}
	}
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			col[c*n+(v-1)] = m.NewHeader(fmt.Sprintf("C%d#%d", c, v))
		}
	}
	for b := 0; b < n; b++ {
		for v := 1; v <= n; v++ {
			zone[b*n+(v-1)] = m.NewHeader(fmt.Sprintf("B%d#%d", b, v))
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			b := box(r, c)
			for v := 1; v <= n; v++ {
				n1 := m.AppendToColumn(cell[r*n+c], r, c, v)
				n2 := m.AppendToColumn(row[r*n+(v-1)], r, c, v)
				n3 := m.AppendToColumn(col[c*n+(v-1)], r, c, v)
				n4 := m.AppendToColumn(zone[b*n+(v-1)], r, c, v)
				m.SpliceIntoRow(n1, n2)
				m.SpliceIntoRow(n2, n3)
				m.SpliceIntoRow(n3, n4)
				m.RegisterCandidate(r, c, v, n1)
			}
		}
	}

	return m
}
