package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	blankColor  = color.New(color.FgHiBlack)
	ruleColor   = color.New(color.FgHiWhite)
)

// boxSize returns the sub-grid size used for major dividers: 3 for the
// classical 9x9 Sudoku shape, 0 (no major dividers) otherwise.
func boxSize(order int) int {
	if order == 9 {
		return 3
	}
	return 0
}

// cellWidth is wide enough to print the largest value in an order-n grid
// plus one padding space on each side.
func cellWidth(order int) int {
	return len(strconv.Itoa(order)) + 2
}

// rule holds the border-drawing characters for one horizontal line: the
// left/right edges, the join used at a plain column boundary, and the join
// used where a box boundary crosses it.
type rule struct {
	left, right   string
	join, boxJoin string
	fill          string
}

var (
	topRule   = rule{"┌", "┐", "┬", "╥", "─"}
	botRule   = rule{"└", "┘", "┴", "╨", "─"}
	minorRule = rule{"├", "┤", "┼", "╫", "─"}
	majorRule = rule{"╞", "╡", "╪", "╬", "═"}
)

// Print writes g to stdout using the teacher's box-drawing border style,
// coloring given cells distinctly from solved ones. given may be nil; when
// non-nil, cells present in given are rendered as fixed clues.
func Print(g *Grid, given *Grid) {
	w := cellWidth(g.Order)
	box := boxSize(g.Order)

	printRule(g.Order, w, box, topRule)
	for r := 0; r < g.Order; r++ {
		if r != 0 {
			if box != 0 && r%box == 0 {
				printRule(g.Order, w, box, majorRule)
			} else {
				printRule(g.Order, w, box, minorRule)
			}
		}
		printRow(g, given, r, w, box)
	}
	printRule(g.Order, w, box, botRule)
}

func printRule(order, w, box int, rl rule) {
	var b strings.Builder
	b.WriteString(rl.left)
	for c := 0; c < order; c++ {
		b.WriteString(strings.Repeat(rl.fill, w))
		switch {
		case c == order-1:
			b.WriteString(rl.right)
		case box != 0 && (c+1)%box == 0:
			b.WriteString(rl.boxJoin)
		default:
			b.WriteString(rl.join)
		}
	}
	ruleColor.Println(b.String())
}

func printRow(g *Grid, given *Grid, r, w, box int) {
	var b strings.Builder
	b.WriteString("│")
	for c := 0; c < g.Order; c++ {
		v := g.Cells[r][c]
		cellColor := solvedColor
		var text string
		if v != 0 {
			if given != nil && given.Cells[r][c] != 0 {
				cellColor = givenColor
			}
			text = pad(strconv.Itoa(v), w)
		} else {
			cellColor = blankColor
			text = pad(".", w)
		}
		fmt.Fprint(&b, cellColor.Sprint(text))
		if box != 0 && (c+1)%box == 0 && c != g.Order-1 {
			b.WriteString("║")
		} else {
			b.WriteString("│")
		}
	}
	ruleColor.Println(b.String())
}

func pad(s string, w int) string {
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
