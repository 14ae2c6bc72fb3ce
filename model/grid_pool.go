package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles successor grids between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{}
}

// Get retrieves a cleared grid of the requested size, allocating when the
// pooled one does not match
func (p *GridPool) Get(height, width int) *Grid {
	if g, ok := p.pool.Get().(*Grid); ok && g.height == height && g.width == width {
		g.Clear()
		return g
	}
	return NewGrid(height, width)
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
