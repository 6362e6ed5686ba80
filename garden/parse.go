package garden

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/regionscan/gridgraph"
)

// ErrNoPlots is returned when the input holds no plot letters at all.
var ErrNoPlots = errors.New("garden: map has no plots")

// MaxLineBytes is the longest input line Parse accepts, noise included.
// Longer lines fail with an error wrapping bufio.ErrTooLong.
const MaxLineBytes = 16 << 20

// Parse reads a garden map, one row per line. Only ASCII uppercase letters
// are kept; anything else on a line (spaces, carriage returns, digits) is
// dropped. Blank rows before the first and after the last row are ignored.
//
// Returns ErrNoPlots for an empty map and an error wrapping
// gridgraph.ErrNonRectangular, with the offending line number, when rows
// differ in length.
func Parse(r io.Reader) (*gridgraph.Grid[byte], error) {
	type line struct {
		n     int
		plots []byte
	}
	var rows []line

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64<<10), MaxLineBytes)
	for n := 1; s.Scan(); n++ {
		var plots []byte
		for _, c := range s.Bytes() {
			if c >= 'A' && c <= 'Z' {
				plots = append(plots, c)
			}
		}
		if len(plots) == 0 && len(rows) == 0 {
			continue // leading blank
		}
		rows = append(rows, line{n: n, plots: plots})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("garden: read map: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1].plots) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrNoPlots
	}

	width := len(rows[0].plots)
	cells := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row.plots) != width {
			return nil, fmt.Errorf("garden: line %d: %d plots, want %d: %w",
				row.n, len(row.plots), width, gridgraph.ErrNonRectangular)
		}
		cells[i] = row.plots
	}

	return gridgraph.New(cells)
}
