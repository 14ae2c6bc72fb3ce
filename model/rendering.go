package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life-term/utils"
)

const (
	statusFormat     = "Speed: %dms (A/a - faster, Z/z - slower, SPACE - exit)"
	generationFormat = "Generation: %d"

	gridPosEmpty = ' '
)

var (
	// ErrTerminalUnavailable is returned when the controlling terminal cannot be opened
	ErrTerminalUnavailable = errors.New("terminal unavailable")
	// ErrTerminalTooSmall is returned when the board does not fit on screen
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// TerminalRenderer draws frames to the controlling terminal and reads
// gameplay keys from it. It owns the screen until Close is called.
type TerminalRenderer struct {
	screen tcell.Screen
	glyph  rune
	offset int

	// board size recorded by CheckSize, re-checked on every resize
	boardHeight, boardWidth int
	sizeErr                 error

	events chan tcell.Event
	quit   chan struct{}
	eg     errgroup.Group

	closeOnce sync.Once
	closeErr  error
}

// NewTerminalRenderer opens the controlling terminal. Keys are read from the
// terminal device itself, so stdin may already be consumed by the loader.
func NewTerminalRenderer(config utils.Config) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(ErrTerminalUnavailable, "[NewTerminalRenderer] %v", err)
	}
	return NewTerminalRendererWithScreen(screen, config)
}

// NewTerminalRendererWithScreen initializes the given screen and starts
// pumping its events
func NewTerminalRendererWithScreen(screen tcell.Screen, config utils.Config) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrapf(ErrTerminalUnavailable, "[NewTerminalRendererWithScreen] %v", err)
	}
	screen.HideCursor()
	screen.Clear()

	r := &TerminalRenderer{
		screen: screen,
		glyph:  config.Glyph(),
		offset: max(config.GridOffset, utils.StatusLines),
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
	r.eg.Go(r.pump)

	return r, nil
}

// pump forwards screen events until the screen is finalized
func (r *TerminalRenderer) pump() error {
	defer close(r.events)
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case r.events <- ev:
		case <-r.quit:
			return nil
		}
	}
}

// CheckSize reports ErrTerminalTooSmall when a height x width board plus the
// status lines does not fit. The size is checked again whenever the
// terminal is resized.
func (r *TerminalRenderer) CheckSize(height, width int) error {
	r.boardHeight, r.boardWidth = height, width
	return r.fits()
}

func (r *TerminalRenderer) fits() error {
	cols, rows := r.screen.Size()
	if cols < r.boardWidth || rows < r.boardHeight+r.offset {
		return errors.Wrapf(ErrTerminalTooSmall, "Your terminal too small %dx%d", r.boardWidth, r.boardHeight)
	}
	return nil
}

// Err returns why the renderer asked the game to stop, if it did
func (r *TerminalRenderer) Err() error {
	return r.sizeErr
}

// Display renders the status lines and the grid
func (r *TerminalRenderer) Display(g *Grid, delay, generation int) {
	r.screen.Clear()

	r.drawText(0, fmt.Sprintf(statusFormat, delay))
	r.drawText(1, fmt.Sprintf(generationFormat, generation))

	for row := range g.height {
		for col := range g.width {
			ch := gridPosEmpty
			if g.cells[row*g.width+col] {
				ch = r.glyph
			}
			r.screen.SetContent(col, row+r.offset, ch, nil, tcell.StyleDefault)
		}
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(row int, text string) {
	col := 0
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, tcell.StyleDefault)
		col++
	}
}

// PollKey waits at most timeout for a key press. KeyNone means nothing was
// pressed in time. Once the screen is gone, or it was resized below the
// board size, every poll reports KeyQuit.
func (r *TerminalRenderer) PollKey(timeout time.Duration) Key {
	if r.sizeErr != nil {
		return KeyQuit
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return KeyQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return KeyFromEvent(ev)
			case *tcell.EventResize:
				r.screen.Sync()
				if err := r.fits(); err != nil {
					r.sizeErr = err
					return KeyQuit
				}
				return KeyOther
			}
		case <-timer.C:
			return KeyNone
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (r *TerminalRenderer) Close() error {
	r.closeOnce.Do(func() {
		close(r.quit)
		r.screen.Fini()
		r.closeErr = r.eg.Wait()
	})
	return r.closeErr
}
