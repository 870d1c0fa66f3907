package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/logging"
)

// Options configures a Runner
type Options struct {
	In         io.Reader
	FPS        int
	HoldWindow time.Duration
	Logger     *logging.Logger
}

// Runner feeds terminal key presses to a dispatcher and pumps the game's
// frames from a ticker. Game code only ever runs on the Run goroutine.
type Runner struct {
	game      *engine.Game
	scheduler *engine.PumpScheduler
	decoder   input.Decoder
	hold      *input.HoldTracker
	in        io.Reader
	frame     time.Duration
	logger    *logging.Logger
	now       func() time.Time
}

// NewRunner creates a runner for game, which must use a loop on scheduler
func NewRunner(game *engine.Game, scheduler *engine.PumpScheduler, dispatcher *input.Dispatcher, opts Options) *Runner {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 150 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &Runner{
		game:      game,
		scheduler: scheduler,
		hold:      input.NewHoldTracker(dispatcher, opts.HoldWindow),
		in:        opts.In,
		frame:     time.Second / time.Duration(opts.FPS),
		logger:    opts.Logger,
		now:       time.Now,
	}
}

// Run resets the game and plays until ctx is done, the input closes, or
// the player presses q, Escape or ctrl-c.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.game.Reset()

	keys := make(chan []byte, 16)
	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.read(gctx, keys)
	})
	g.Go(func() error {
		defer cancel()
		return r.loop(gctx, keys, ticker.C)
	})
	return g.Wait()
}

type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// read forwards raw input chunks until the reader fails or ctx is done
func (r *Runner) read(ctx context.Context, keys chan<- []byte) error {
	defer close(keys)
	if d, ok := r.in.(deadliner); ok {
		stop := context.AfterFunc(ctx, func() { _ = d.SetReadDeadline(time.Now()) })
		defer stop()
	}

	buf := make([]byte, 64)
	for {
		n, err := r.in.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case keys <- chunk:
			case <-ctx.Done():
				return nil
			}
		}
		switch {
		case err == nil:
		case ctx.Err() != nil, errors.Is(err, io.EOF), errors.Is(err, os.ErrDeadlineExceeded):
			return nil
		default:
			return logging.WrapError(err, "read terminal input")
		}
	}
}

func (r *Runner) loop(ctx context.Context, keys <-chan []byte, ticks <-chan time.Time) error {
	defer r.hold.ReleaseAll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case chunk, ok := <-keys:
			if !ok {
				return nil
			}
			if r.press(ctx, r.decoder.Feed(chunk)) {
				return nil
			}
		case now := <-ticks:
			if r.tick(ctx, now) {
				return nil
			}
		}
	}
}

// tick releases expired keys and runs the pending frame. Escape sequences
// arrive in one read, so an ESC still buffered at a tick is the key itself.
func (r *Runner) tick(ctx context.Context, now time.Time) bool {
	if r.press(ctx, r.decoder.Flush()) {
		return true
	}
	r.hold.Expire(now)
	r.scheduler.Pump()
	return false
}

// press forwards codes and reports whether one of them quits
func (r *Runner) press(ctx context.Context, codes []input.KeyCode) bool {
	for _, code := range codes {
		if isQuit(code) {
			r.logger.Info(ctx, "quit requested", "key", int(code))
			return true
		}
		r.hold.Press(code, r.now())
	}
	return false
}

func isQuit(code input.KeyCode) bool {
	switch code {
	case input.KeyQ, input.KeyEscape, input.KeyInterrupt:
		return true
	}
	return false
}
