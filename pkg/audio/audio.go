// Package audio plays the game's two sound effects.
//
// Sinks are fire and forget: a failing or missing device never reaches the
// simulation.
package audio

import (
	"io"
	"sync"
)

// Sink plays short effects
type Sink interface {
	PlayPing()
	PlayBallOut()
}

// Null discards every effect
type Null struct{}

func (Null) PlayPing()    {}
func (Null) PlayBallOut() {}

// Bell rings the terminal bell for every effect
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell that writes BEL to w
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayPing rings once
func (b *Bell) PlayPing() { b.ring() }

// PlayBallOut rings once
func (b *Bell) PlayBallOut() { b.ring() }

func (b *Bell) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}
