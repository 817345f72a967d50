package dlx

import (
	"fmt"
	"testing"
)

// buildSmallMatrix builds a tiny 2-column, 2-row toy matrix for exercising
// cover/uncover directly, independent of any Problem encoder.
func buildSmallMatrix() *Matrix {
	m := NewMatrix()
	a := m.NewHeader("A")
	b := m.NewHeader("B")

	n1 := m.AppendToColumn(a, 0, 0, 1)
	n2 := m.AppendToColumn(b, 0, 0, 1)
	m.SpliceIntoRow(n1, n2)

	n3 := m.AppendToColumn(a, 1, 0, 2)
	m.RegisterCandidate(0, 0, 1, n1)
	m.RegisterCandidate(1, 0, 2, n3)
	return m
}

func TestNewHeaderLinksIntoRing(t *testing.T) {
	m := NewMatrix()
	a := m.NewHeader("A")
	b := m.NewHeader("B")

	var names []string
	m.Columns(func(h int) bool {
		names = append(names, m.ColumnName(h))
		return true
	})

	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Columns() = %v, want [A B]", names)
	}
	if m.nodes[a].right != b || m.nodes[b].right != m.root {
		t.Error("header ring not linked in insertion order")
	}
}

func TestCoverUncoverRoundTrip(t *testing.T) {
	m := buildSmallMatrix()

	var before []int
	m.Columns(func(h int) bool {
		before = append(before, h)
		return true
	})

	for _, h := range before {
		size := m.ColumnSize(h)
		m.Cover(h)
		m.Uncover(h)
		if m.ColumnSize(h) != size {
			t.Errorf("column %s: size changed across cover/uncover round trip: %d -> %d", m.ColumnName(h), size, m.ColumnSize(h))
		}
	}

	var after []int
	m.Columns(func(h int) bool {
		after = append(after, h)
		return true
	})

	if len(before) != len(after) {
		t.Fatalf("column ring length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("column ring order changed at position %d: %d -> %d", i, before[i], after[i])
		}
	}
}

func TestCoverRemovesIntersectingRows(t *testing.T) {
	m := buildSmallMatrix()
	a := m.nodes[m.root].right // column A

	if m.ColumnSize(a) != 2 {
		t.Fatalf("column A size = %d, want 2", m.ColumnSize(a))
	}

	b := m.nodes[a].right
	if m.ColumnSize(b) != 1 {
		t.Fatalf("column B size = %d, want 1", m.ColumnSize(b))
	}

	m.Cover(a)
	// Covering A also removes row (0,0,1), which intersects B.
	if m.ColumnSize(b) != 0 {
		t.Errorf("column B size after covering A = %d, want 0", m.ColumnSize(b))
	}
	m.Uncover(a)
	if m.ColumnSize(b) != 1 {
		t.Errorf("column B size after uncover = %d, want 1", m.ColumnSize(b))
	}
}

func TestCoverRootPanics(t *testing.T) {
	m := NewMatrix()
	defer func() {
		if recover() == nil {
			t.Error("Cover(root) did not panic")
		}
	}()
	m.Cover(m.root)
}

func TestEngineSeedClueCoversWholeRowInclusive(t *testing.T) {
	m := buildSmallMatrix()
	e := NewEngine(m)
	e.SeedClue(0, 0, 1)

	var remaining []int
	m.Columns(func(h int) bool {
		remaining = append(remaining, h)
		return true
	})
	// Both A and B should be covered: A because it's the seeded row's own
	// column, B because it's a sibling in the same row.
	if len(remaining) != 0 {
		t.Errorf("columns remaining after seeding whole row = %d, want 0", len(remaining))
	}
}

func TestChooseColumnPicksMinSize(t *testing.T) {
	m := buildSmallMatrix()
	e := NewEngine(m)

	a := m.nodes[m.root].right
	b := m.nodes[a].right

	chosen := e.chooseColumn()
	if chosen != b {
		t.Errorf("chooseColumn() = %s, want B (size 1 < A's size 2)", m.ColumnName(chosen))
	}
}

func ExampleEngine_Solutions() {
	// Toy exact-cover problem: item 0 only coverable by row R0, item 1
	// coverable by rows R0 or R1. There is exactly one way to cover both
	// items with disjoint rows: {R0}.
	m := NewMatrix()
	x := m.NewHeader("x")
	y := m.NewHeader("y")

	r0x := m.AppendToColumn(x, 0, 0, 1)
	r0y := m.AppendToColumn(y, 0, 0, 1)
	m.SpliceIntoRow(r0x, r0y)
	m.RegisterCandidate(0, 0, 1, r0x)

	r1y := m.AppendToColumn(y, 1, 0, 2)
	m.RegisterCandidate(1, 0, 2, r1y)

	e := NewEngine(m)
	count := 0
	for range e.Solutions() {
		count++
	}
	fmt.Println(count)
	// Output:
	// 1
}
