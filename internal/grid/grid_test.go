package grid

import (
	"strings"
	"testing"
)

func TestFromReaderParsesOrder4(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"1 . . 4",
		". 2 . .",
		". . 3 .",
		"4 . . 1",
	}, "\n"))

	g, err := FromReader(input, 4)
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if g.Cells[0][0] != 1 || g.Cells[0][3] != 4 {
		t.Errorf("Cells[0] = %v, want [1 0 0 4]", g.Cells[0])
	}
	if g.Cells[1][1] != 2 {
		t.Errorf("Cells[1][1] = %d, want 2", g.Cells[1][1])
	}
}

func TestFromReaderRejectsWrongRowLength(t *testing.T) {
	input := strings.NewReader("1 2 3\n4 5 6\n7 8 9\n")
	if _, err := FromReader(input, 4); err == nil {
		t.Fatal("FromReader() with 3-token rows against order 4: want error, got nil")
	}
}

func TestFromReaderRejectsTooFewLines(t *testing.T) {
	input := strings.NewReader("1 2 3\n. . .\n")
	if _, err := FromReader(input, 3); err == nil {
		t.Fatal("FromReader() with 2 lines against order 3: want error, got nil")
	}
}

func TestFromRowsAndRowsRoundTrip(t *testing.T) {
	rows := [][]int{
		{1, 0},
		{0, 1},
	}
	g := FromRows(rows)
	got := g.Rows()
	for r := range rows {
		for c := range rows[r] {
			if got[r][c] != rows[r][c] {
				t.Errorf("Rows()[%d][%d] = %d, want %d", r, c, got[r][c], rows[r][c])
			}
		}
	}
}
