package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-term/model"
	"github.com/sheikhrachel/go-life-term/utils"
)

const configFile = "config.json"

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run loads the board from stdin, then plays it on the controlling terminal.
// It returns the process exit status.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Using default configuration: %v\n", err)
		}
		config = utils.DefaultConfig()
	}

	grid := model.NewBoard()
	if err = model.Load(stdin, grid); err != nil {
		fmt.Fprintf(stderr, "Error. %v\n", err)
		return 1
	}

	renderer, err := model.NewTerminalRenderer(config)
	if err != nil {
		fmt.Fprintf(stderr, "Error. Can not open terminal: %v\n", err)
		return 1
	}
	defer renderer.Close()

	if err = renderer.CheckSize(model.Height, model.Width); err != nil {
		renderer.Close()
		fmt.Fprintln(stderr, err)
		return 1
	}

	// Handle SIGTERM and friends gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := NewGame(config, grid)
	game.Run(ctx, renderer)

	if err = renderer.Close(); err != nil {
		fmt.Fprintf(stderr, "Error closing terminal: %v\n", err)
	}
	displayFinalStats(stdout, game)

	if err = renderer.Err(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
