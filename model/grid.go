package model

import (
	"crypto/md5"
	"fmt"
)

const (
	// Height is the number of rows on the board
	Height = 25
	// Width is the number of columns on the board
	Width = 80
)

// Grid represents the game board as a single row-major buffer.
// Its dimensions never change after construction.
type Grid struct {
	height int
	width  int
	cells  []bool
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(height, width int) *Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]bool, height*width),
	}
}

// NewBoard creates an empty grid of the fixed board size
func NewBoard() *Grid {
	return NewGrid(Height, Width)
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d grid", row, col, g.height, g.width))
	}
	return row*g.width + col
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.height, g.width)
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
