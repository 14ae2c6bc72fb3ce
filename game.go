package main

import (
	"context"
	"time"

	"github.com/sheikhrachel/go-life-term/model"
	"github.com/sheikhrachel/go-life-term/utils"
)

// screenPort is the part of the terminal the game loop talks to
type screenPort interface {
	Display(g *model.Grid, delay, generation int)
	PollKey(timeout time.Duration) model.Key
}

// Game owns the board and everything that changes between frames
type Game struct {
	config utils.Config
	grid   *model.Grid
	pool   *model.GridPool
	stats  *utils.Stats

	delay      int
	generation int
}

// NewGame takes ownership of grid
func NewGame(config utils.Config, grid *model.Grid) *Game {
	return &Game{
		config: config,
		grid:   grid,
		pool:   model.NewGridPool(),
		stats:  utils.NewStats(),
		delay:  config.InitialDelay,
	}
}

// Run polls for a key, draws the board and advances it once per iteration
// until the quit key is pressed or ctx is cancelled
func (gm *Game) Run(ctx context.Context, port screenPort) {
	lastFrameTime := time.Now()

	for ctx.Err() == nil {
		key := port.PollKey(utils.DelayDuration(gm.delay))
		if !gm.handleKey(key) {
			return
		}

		gm.generation = nextGeneration(gm.generation)
		port.Display(gm.grid, gm.delay, gm.generation)

		population := gm.grid.CountLivingCells()
		gm.stats.Observe(gm.generation, gm.grid.Hash())
		gm.step()

		frameStart := time.Now()
		gm.stats.Update(gm.generation, population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart
	}
}

// step replaces the board with its successor and recycles the old one
func (gm *Game) step() {
	next := model.Advance(gm.grid, gm.pool)
	model.GridToPool(gm.grid, gm.pool)
	gm.grid = next
}
