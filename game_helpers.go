package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sheikhrachel/go-life-term/model"
)

// maxGeneration is where the generation counter stops counting
const maxGeneration = math.MaxInt32

// nextGeneration increments the counter without running past maxGeneration
func nextGeneration(generation int) int {
	if generation >= maxGeneration {
		return maxGeneration
	}
	return generation + 1
}

// handleKey applies a key to the delay and reports whether the loop should go on
func (gm *Game) handleKey(key model.Key) bool {
	switch key {
	case model.KeyFaster:
		gm.delay = gm.config.Faster(gm.delay)
	case model.KeySlower:
		gm.delay = gm.config.Slower(gm.delay)
	case model.KeyQuit:
		return false
	}
	return true
}

// displayFinalStats prints the run summary once the terminal is restored
func displayFinalStats(w io.Writer, gm *Game) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		gm.generation, gm.stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		gm.stats.GenerationsPerSecond, gm.stats.AveragePopulation)
	if gm.stats.SettledAt > 0 {
		fmt.Fprintf(w, "Board settled at generation %d\n", gm.stats.SettledAt)
	}
}
