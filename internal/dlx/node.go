// Package dlx implements Knuth's Dancing Links (Algorithm X) over a toroidal
// doubly-linked sparse matrix: the node arena, cover/uncover primitives, and
// the MRV-branching depth-first search shared by the Latin-square and Sudoku
// solvers. The matrix is addressed by integer handle into a single growable
// arena rather than by pointer, so handles stay valid across encoding and
// reset trivially between solves (see DESIGN.md).
package dlx

// node is either a column header or a data node: a header has a nonzero
// name and its own row/col/val left at zero, and vice versa. The two kinds
// share one arena because cover/uncover walk both indiscriminately.
type node struct {
	left, right, up, down int
	column                int // owning header's index; a header is its own column

	size int    // header only: live data-node count in this column
	name string // header only: debug label, e.g. "R0C0", "R3#7", "B5#2"

	row, col, val int // data only: the (row, col, value) candidate this node represents
}
