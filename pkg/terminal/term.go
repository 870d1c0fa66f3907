// Package terminal runs the game in a raw-mode text terminal.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Screen control sequences
const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
	ClearHome  = "\033[H\033[2J"
)

// Terminal is a tty switched into raw mode
type Terminal struct {
	in    *os.File
	fd    int
	state *term.State
}

// OpenTTY opens the controlling terminal, falling back to stdin. Reads from
// /dev/tty can be interrupted with a deadline, stdin reads cannot.
func OpenTTY() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err == nil {
		return f, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, nil
	}
	return nil, fmt.Errorf("no terminal available: %w", err)
}

// MakeRaw puts in into raw mode
func MakeRaw(in *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Terminal{in: in, fd: fd, state: state}, nil
}

// Size returns the terminal's columns and rows
func (t *Terminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return cols, rows, nil
}

// Restore returns the terminal to its previous mode and shows the cursor on out
func (t *Terminal) Restore(out io.Writer) error {
	_, _ = io.WriteString(out, ShowCursor)
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// FitGrid shrinks the wanted grid so the framed arena, with its score line
// and borders, fits in a cols x rows terminal.
func FitGrid(wantCols, wantRows, cols, rows int) (int, int) {
	return max(1, min(wantCols, cols-2)), max(1, min(wantRows, rows-3))
}
