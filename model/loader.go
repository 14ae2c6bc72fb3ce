package model

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrLoadIncomplete is returned when the input does not hold a full board
var ErrLoadIncomplete = errors.New("incomplete input")

// Load fills g in row-major order from whitespace separated integers read
// from r. Any nonzero value is a live cell. Input after the last cell is
// ignored.
func Load(r io.Reader, g *Grid) error {
	var (
		scanner = bufio.NewScanner(r)
		total   = len(g.cells)
		filled  = 0
	)
	scanner.Split(bufio.ScanWords)

	for filled < total && scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return errors.Wrapf(ErrLoadIncomplete, "[Load] bad token %q at cell %d", scanner.Text(), filled)
		}
		g.cells[filled] = v != 0
		filled++
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(ErrLoadIncomplete, "[Load] read failed at cell %d: %v", filled, err)
	}
	if filled < total {
		return errors.Wrapf(ErrLoadIncomplete, "[Load] got %d of %d cells", filled, total)
	}

	return nil
}
