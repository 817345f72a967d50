package dlx

// Matrix is the toroidal constraint matrix: a root sentinel, a ring of
// column headers, and the data nodes threaded through them. Matrix owns the
// entire node arena for one solve; handles (plain ints) into it never move
// or get reused for the lifetime of the Matrix.
type Matrix struct {
	nodes []node
	root  int

	candidates map[candidateKey]int // (row,col,val) -> index of one node in that candidate's row
}

type candidateKey struct {
	row, col, val int
}

// NewMatrix allocates an empty matrix containing only the root sentinel.
// Column headers and data rows are added by a Problem's encoder.
func NewMatrix() *Matrix {
	m := &Matrix{
		nodes:      make([]node, 0, 256),
		candidates: make(map[candidateKey]int),
	}
	m.root = len(m.nodes)
	m.nodes = append(m.nodes, node{name: "root"})
	m.nodes[m.root].left = m.root
	m.nodes[m.root].right = m.root
	m.nodes[m.root].up = m.root
	m.nodes[m.root].down = m.root
	m.nodes[m.root].column = m.root
	return m
}

// NewHeader allocates a column header and appends it to the tail of the
// column ring, immediately to the left of root.
func (m *Matrix) NewHeader(name string) int {
	h := len(m.nodes)
	m.nodes = append(m.nodes, node{name: name, up: h, down: h, column: h})

	rootLeft := m.nodes[m.root].left
	m.nodes[h].left = rootLeft
	m.nodes[h].right = m.root
	m.nodes[rootLeft].right = h
	m.nodes[m.root].left = h
	return h
}

// AppendToColumn allocates a data node for candidate (r, c, v), splices it
// as the last node of h's vertical ring (just above h), and increments
// h's size. The new node starts as a one-node row; SpliceIntoRow links it
// horizontally to the rest of its candidate row.
func (m *Matrix) AppendToColumn(h, r, c, v int) int {
	n := len(m.nodes)
	m.nodes = append(m.nodes, node{column: h, row: r, col: c, val: v, left: n, right: n})

	hUp := m.nodes[h].up
	m.nodes[n].up = hUp
	m.nodes[n].down = h
	m.nodes[hUp].down = n
	m.nodes[h].up = n
	m.nodes[h].size++
	return n
}

// SpliceIntoRow inserts n into the horizontal ring immediately to the right
// of prev. If prev is negative, n is left as a one-node row (its own row's
// first cell).
func (m *Matrix) SpliceIntoRow(prev, n int) {
	if prev < 0 {
		return
	}
	prevRight := m.nodes[prev].right
	m.nodes[n].left = prev
	m.nodes[n].right = prevRight
	m.nodes[prev].right = n
	m.nodes[prevRight].left = n
}

// RegisterCandidate records that node is (one of the sibling cells of) the
// data row representing candidate (r, c, v), so the seeder can find it by
// identity alone.
func (m *Matrix) RegisterCandidate(r, c, v, node int) {
	m.candidates[candidateKey{r, c, v}] = node
}

// CandidateNode returns a node belonging to the row for candidate (r, c, v),
// if the encoder produced one.
func (m *Matrix) CandidateNode(r, c, v int) (int, bool) {
	n, ok := m.candidates[candidateKey{r, c, v}]
	return n, ok
}

// Cover removes column h from the live-columns ring and unlinks every row
// that intersects h from all of their other columns. h must not be the root.
func (m *Matrix) Cover(h int) {
	if h == m.root {
		invariantViolation("cover called on root")
	}

	l, r := m.nodes[h].left, m.nodes[h].right
	m.nodes[r].left = l
	m.nodes[l].right = r

	for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			ju, jd := m.nodes[j].up, m.nodes[j].down
			m.nodes[jd].up = ju
			m.nodes[ju].down = jd
			m.nodes[m.nodes[j].column].size--
		}
	}
}

// Uncover is the exact mirror of Cover, relinking in reverse order so that
// Cover followed immediately by Uncover restores the matrix bit-identically.
func (m *Matrix) Uncover(h int) {
	for i := m.nodes[h].up; i != h; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.nodes[m.nodes[j].column].size++
			jd, ju := m.nodes[j].down, m.nodes[j].up
			m.nodes[jd].up = j
			m.nodes[ju].down = j
		}
	}

	l, r := m.nodes[h].left, m.nodes[h].right
	m.nodes[r].left = h
	m.nodes[l].right = h
}

// ColumnSize returns the live node count of header h, for stats/debug use.
func (m *Matrix) ColumnSize(h int) int { return m.nodes[h].size }

// ColumnName returns the debug label of header h.
func (m *Matrix) ColumnName(h int) string { return m.nodes[h].name }

// Columns iterates the live column-header ring, in root.Right order.
func (m *Matrix) Columns(yield func(h int) bool) {
	for c := m.nodes[m.root].right; c != m.root; c = m.nodes[c].right {
		if !yield(c) {
			return
		}
	}
}

// IsSolved reports whether every column has been covered.
func (m *Matrix) IsSolved() bool {
	return m.nodes[m.root].right == m.root
}
