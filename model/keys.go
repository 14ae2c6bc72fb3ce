package model

import "github.com/gdamore/tcell/v2"

// Key is a gameplay command decoded from the terminal
type Key int

const (
	KeyNone Key = iota
	KeyFaster
	KeySlower
	KeyQuit
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyFaster:
		return "faster"
	case KeySlower:
		return "slower"
	case KeyQuit:
		return "quit"
	default:
		return "other"
	}
}

// KeyFromEvent maps a terminal key press to a gameplay command.
// Esc and Ctrl+C quit too since the terminal runs in raw mode.
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	}
	if ev.Key() != tcell.KeyRune {
		return KeyOther
	}

	switch ev.Rune() {
	case 'a', 'A':
		return KeyFaster
	case 'z', 'Z':
		return KeySlower
	case ' ':
		return KeyQuit
	}
	return KeyOther
}
