// Package oto plays synthesized PCM through the system audio device.
package oto

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/oto"

	"github.com/opd-ai/go-pong/pkg/audio"
)

var (
	// ErrBusy is returned when effects arrive faster than the device drains them.
	ErrBusy = errors.New("audio queue full")
	// ErrClosed is returned by Play after Close.
	ErrClosed = errors.New("audio backend closed")
)

const queueDepth = 8

// Backend writes PCM to an oto player on its own goroutine so Play never
// blocks the frame loop.
type Backend struct {
	player  io.WriteCloser
	closeFn func() error
	queue   chan []byte
	done    chan struct{}

	mu      sync.Mutex
	closed  bool
	lastErr error
}

// New opens the default audio device at sampleRate, in the format produced
// by audio.Synth.
func New(sampleRate, bufferBytes int) (*Backend, error) {
	ctx, err := oto.NewContext(sampleRate, audio.Channels, audio.BytesPerSample, bufferBytes)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return newBackend(ctx.NewPlayer(), ctx.Close), nil
}

func newBackend(player io.WriteCloser, closeFn func() error) *Backend {
	b := &Backend{
		player:  player,
		closeFn: closeFn,
		queue:   make(chan []byte, queueDepth),
		done:    make(chan struct{}),
	}
	go b.drain()
	return b
}

// Play queues pcm. A write failure from an earlier effect is reported here.
func (b *Backend) Play(pcm []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if err := b.lastErr; err != nil {
		b.lastErr = nil
		return err
	}
	select {
	case b.queue <- pcm:
		return nil
	default:
		return ErrBusy
	}
}

// Close stops playback and releases the device
func (b *Backend) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
	err := b.player.Close()
	if b.closeFn != nil {
		err = errors.Join(err, b.closeFn())
	}
	return err
}

func (b *Backend) drain() {
	defer close(b.done)
	for pcm := range b.queue {
		if _, err := b.player.Write(pcm); err != nil {
			b.mu.Lock()
			b.lastErr = fmt.Errorf("write pcm: %w", err)
			b.mu.Unlock()
		}
	}
}
