package model

import "github.com/sheikhrachel/go-life-term/rules"

// CountLiveNeighbors counts the living cells around (row, col), wrapping
// across the edges of the board
func CountLiveNeighbors(g *Grid, row, col int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			ny := (row + dy + g.height) % g.height
			nx := (col + dx + g.width) % g.width
			if g.cells[ny*g.width+nx] {
				count++
			}
		}
	}
	return count
}

// Advance computes the next generation into a fresh grid taken from pool
// (or newly allocated when pool is nil). g is only read. The caller owns
// both grids afterwards and should hand the old one back with GridToPool.
func Advance(g *Grid, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.height, g.width)
	} else {
		next = NewGrid(g.height, g.width)
	}

	for row := range g.height {
		for col := range g.width {
			idx := row*g.width + col
			next.cells[idx] = rules.ApplyConwayRules(CountLiveNeighbors(g, row, col), g.cells[idx])
		}
	}

	return next
}
