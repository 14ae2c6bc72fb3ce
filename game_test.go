package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life-term/model"
	"github.com/sheikhrachel/go-life-term/utils"
)

type frame struct {
	delay      int
	generation int
	population int
}

// fakePort replays scripted keys and records every frame; once the script
// runs out it keeps answering KeyNone
type fakePort struct {
	keys     []model.Key
	timeouts []time.Duration
	frames   []frame
	onPoll   func()
}

func (p *fakePort) Display(g *model.Grid, delay, generation int) {
	p.frames = append(p.frames, frame{delay, generation, g.CountLivingCells()})
}

func (p *fakePort) PollKey(timeout time.Duration) model.Key {
	p.timeouts = append(p.timeouts, timeout)
	if p.onPoll != nil {
		p.onPoll()
	}
	if len(p.keys) == 0 {
		return model.KeyNone
	}
	key := p.keys[0]
	p.keys = p.keys[1:]
	return key
}

func blinkerBoard() *model.Grid {
	g := model.NewBoard()
	g.Set(12, 39, true)
	g.Set(12, 40, true)
	g.Set(12, 41, true)
	return g
}

func TestRunQuitsImmediately(t *testing.T) {
	port := &fakePort{keys: []model.Key{model.KeyQuit}}
	game := NewGame(utils.DefaultConfig(), blinkerBoard())

	game.Run(context.Background(), port)

	if len(port.frames) != 0 || game.generation != 0 {
		t.Fatalf("no frame should be drawn, got %d", len(port.frames))
	}
}

func TestRunAdvancesOncePerFrame(t *testing.T) {
	port := &fakePort{keys: []model.Key{model.KeyNone, model.KeyOther, model.KeyNone, model.KeyQuit}}
	board := blinkerBoard()
	game := NewGame(utils.DefaultConfig(), board.Clone())

	game.Run(context.Background(), port)

	if len(port.frames) != 3 {
		t.Fatalf("drew %d frames, expected 3", len(port.frames))
	}
	for i, f := range port.frames {
		if f.generation != i+1 || f.population != 3 {
			t.Fatalf("frame %d = %+v", i, f)
		}
	}

	// three advances of a blinker leave it vertical
	want := model.Advance(board, nil)
	if !game.grid.Equal(want) {
		t.Fatal("board is not the blinker's vertical phase")
	}
	if game.stats.SettledAt != 3 {
		t.Fatalf("SettledAt = %d, expected 3", game.stats.SettledAt)
	}
}

func TestRunAdjustsDelay(t *testing.T) {
	keys := []model.Key{model.KeySlower, model.KeyFaster, model.KeyFaster}
	for range 20 {
		keys = append(keys, model.KeyFaster)
	}
	keys = append(keys, model.KeySlower, model.KeyQuit)

	port := &fakePort{keys: keys}
	game := NewGame(utils.DefaultConfig(), model.NewBoard())
	game.Run(context.Background(), port)

	delays := make([]int, len(port.frames))
	for i, f := range port.frames {
		delays[i] = f.delay
	}
	if delays[0] != 110 || delays[1] != 100 || delays[2] != 90 {
		t.Fatalf("unexpected first delays %v", delays[:3])
	}
	if last := delays[len(delays)-2]; last != 10 {
		t.Fatalf("delay fell to %d, expected floor of 10", last)
	}
	if last := delays[len(delays)-1]; last != 20 {
		t.Fatalf("delay after slowdown = %d, expected 20", last)
	}

	if port.timeouts[0] != 100*time.Millisecond || port.timeouts[1] != 110*time.Millisecond {
		t.Fatalf("poll timeouts do not follow the delay: %v", port.timeouts[:2])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	port := &fakePort{}
	port.onPoll = func() {
		if len(port.timeouts) == 5 {
			cancel()
		}
	}

	game := NewGame(utils.DefaultConfig(), blinkerBoard())
	game.Run(ctx, port)

	if len(port.frames) != 5 {
		t.Fatalf("drew %d frames before cancel, expected 5", len(port.frames))
	}
}

func TestNextGenerationSaturates(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1},
		{maxGeneration - 1, maxGeneration},
		{maxGeneration, maxGeneration},
	}
	for _, tt := range tests {
		if got := nextGeneration(tt.in); got != tt.want {
			t.Fatalf("nextGeneration(%d) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestRunRejectsIncompleteInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader("0 1 0"), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, expected 1", code)
	}
	if !strings.Contains(stderr.String(), "incomplete input") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should reach stdout, got %q", stdout.String())
	}
}

func TestRunWithoutTerminal(t *testing.T) {
	t.Setenv("TERM", "no-such-term")
	var stdout, stderr bytes.Buffer

	code := run(strings.NewReader(strings.Repeat("0 ", model.Height*model.Width)), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, expected 1", code)
	}
	if !strings.Contains(stderr.String(), "Can not open terminal") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be rendered, got %q", stdout.String())
	}
}

func TestDisplayFinalStats(t *testing.T) {
	game := NewGame(utils.DefaultConfig(), model.NewBoard())
	game.generation = 42
	game.stats.SettledAt = 2

	var out bytes.Buffer
	displayFinalStats(&out, game)

	if !strings.Contains(out.String(), "Final stats: 42 generations") ||
		!strings.Contains(out.String(), "Board settled at generation 2") {
		t.Fatalf("unexpected summary %q", out.String())
	}
}
