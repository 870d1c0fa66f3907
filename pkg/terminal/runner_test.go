package terminal

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/input"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

type fixture struct {
	runner *Runner
	game   *engine.Game
	sched  *engine.PumpScheduler
	clock  *manualClock
}

func newFixture(in io.Reader) *fixture {
	clock := &manualClock{now: time.Unix(1000, 0)}
	sched := engine.NewPumpScheduler()
	dispatcher := input.NewDispatcher()
	game := engine.NewGame(config.DefaultConfig(),
		engine.WithLoop(engine.NewLoop(sched, clock)),
		engine.WithDispatcher(dispatcher),
		engine.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	r := NewRunner(game, sched, dispatcher, Options{In: in, HoldWindow: 100 * time.Millisecond})
	r.now = clock.Now
	return &fixture{runner: r, game: game, sched: sched, clock: clock}
}

func TestRunner_LoopServesAndQuits(t *testing.T) {
	f := newFixture(nil)
	f.game.Reset()

	keys := make(chan []byte, 4)
	keys <- []byte(" ")
	keys <- []byte("q")

	err := f.runner.loop(context.Background(), keys, nil)

	require.NoError(t, err)
	require.Equal(t, engine.StatePlaying, f.game.State())
	require.True(t, f.sched.Pending(), "serve should schedule the first frame")
}

func TestRunner_TickReleasesExpiredKeys(t *testing.T) {
	f := newFixture(nil)
	f.game.Reset()
	f.game.KeyDown(input.KeySpace)
	ctx := context.Background()

	require.False(t, f.runner.press(ctx, f.runner.decoder.Feed([]byte("\x1b[A"))))
	require.Equal(t, entity.MovingUp, f.game.Player().State())

	// inside the hold window the key stays down and the frame runs
	f.clock.now = f.clock.now.Add(50 * time.Millisecond)
	require.False(t, f.runner.tick(ctx, f.clock.now))
	require.Equal(t, entity.MovingUp, f.game.Player().State())
	require.True(t, f.sched.Pending(), "the frame should reschedule itself")

	f.clock.now = f.clock.now.Add(100 * time.Millisecond)
	require.False(t, f.runner.tick(ctx, f.clock.now))
	require.Equal(t, entity.Stationary, f.game.Player().State())
	require.False(t, f.runner.hold.Held(input.KeyArrowUp))
}

func TestRunner_LoopPressRoutesToPaddle(t *testing.T) {
	f := newFixture(nil)
	f.game.Reset()
	f.game.KeyDown(input.KeySpace)

	codes := f.runner.decoder.Feed([]byte("\x1b[B"))
	require.False(t, f.runner.press(context.Background(), codes))
	require.Equal(t, entity.MovingDown, f.game.Player().State())
	require.True(t, f.runner.hold.Held(input.KeyArrowDown))
}

func TestRunner_QuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		chunk []byte
	}{
		{"q", []byte("q")},
		{"upper_q", []byte("Q")},
		{"ctrl_c", []byte{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			keys := make(chan []byte, 1)
			keys <- tt.chunk
			require.NoError(t, f.runner.loop(context.Background(), keys, nil))
		})
	}
}

func TestRunner_LoneEscapeQuitsOnTick(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	require.False(t, f.runner.press(ctx, f.runner.decoder.Feed([]byte{0x1b})), "ESC may start a sequence")
	require.True(t, f.runner.tick(ctx, f.clock.now))
}

func TestRunner_RunEndsWhenInputCloses(t *testing.T) {
	pr, pw := io.Pipe()
	f := newFixture(pr)

	done := make(chan error, 1)
	go func() { done <- f.runner.Run(context.Background()) }()

	_, err := pw.Write([]byte("q"))
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunner_RunStopsOnContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	f := newFixture(pr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.runner.Run(ctx) }()
	cancel()
	// unblock the pending read, as a deadline would on a tty
	_ = pw.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFitGrid(t *testing.T) {
	tests := []struct {
		name                   string
		wantCols, wantRows     int
		termCols, termRows     int
		expectCols, expectRows int
	}{
		{"fits", 80, 24, 120, 40, 80, 24},
		{"shrinks_to_terminal", 80, 24, 60, 20, 58, 17},
		{"tiny_terminal", 80, 24, 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := FitGrid(tt.wantCols, tt.wantRows, tt.termCols, tt.termRows)
			if cols != tt.expectCols || rows != tt.expectRows {
				t.Errorf("FitGrid() = %dx%d, want %dx%d", cols, rows, tt.expectCols, tt.expectRows)
			}
		})
	}
}
