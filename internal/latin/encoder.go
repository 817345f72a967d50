// Package latin solves Latin squares of arbitrary order via exact cover,
// reusing the shared internal/dlx engine. A Latin square of order n is an
// n x n grid where every row and every column is a permutation of 1..n.
package latin

import (
	"fmt"

	"github.com/kpitt/dlxcover/internal/dlx"
)

// problem is the dlx.Problem implementation for an order-n Latin square:
// three constraint families (cell, row, column), generalizing the
// teacher's Sudoku encoder (which adds a fourth, zone, family) down to
// three. See SPEC_FULL.md 4.2.
type problem struct {
	n int
}

func (p problem) Height() int    { return p.n }
func (p problem) Width() int     { return p.n }
func (p problem) MaxValue() int  { return p.n }
func (p problem) Encode() *dlx.Matrix {
	n := p.n
	m := dlx.NewMatrix()

	cell := make([]int, n*n)
	row := make([]int, n*n)
	col := make([]int, n*n)

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

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				n1 := m.AppendToColumn(cell[r*n+c], r, c, v)
				n2 := m.AppendToColumn(row[r*n+(v-1)], r, c, v)
				n3 := m.AppendToColumn(col[c*n+(v-1)], r, c, v)
				m.SpliceIntoRow(n1, n2)
				m.SpliceIntoRow(n2, n3)
				m.RegisterCandidate(r, c, v, n1)
			}
		}
	}

	return m
}
