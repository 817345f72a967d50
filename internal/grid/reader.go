package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromReader reads an order-n grid from r: n lines, each n whitespace
// separated tokens. A token of "." or "0" is a blank cell; anything else
// must parse as an integer in [1, n]. This generalizes the teacher's
// fixed-width single-character format to grids of arbitrary order.
func FromReader(r io.Reader, order int) (*Grid, error) {
	g := New(order)
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if row >= order {
			return nil, fmt.Errorf("grid: too many input lines, expected %d", order)
		}
		fields := strings.Fields(line)
		if len(fields) != order {
			return nil, fmt.Errorf("grid: row %d has %d values, expected %d", row, len(fields), order)
		}
		for c, tok := range fields {
			if tok == "." || tok == "0" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("grid: row %d col %d: %w", row, c, err)
			}
			if v < 1 || v > order {
				return nil, fmt.Errorf("grid: row %d col %d: value %d out of range [1,%d]", row, c, v, order)
			}
			g.Cells[row][c] = v
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: error reading input: %w", err)
	}
	if row < order {
		return nil, fmt.Errorf("grid: too few input lines, expected %d, got %d", order, row)
	}
	return g, nil
}
