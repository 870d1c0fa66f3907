package audio

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-pong/pkg/logging"
)

// Backend plays raw PCM in the Synth format
type Backend interface {
	Play(pcm []byte) error
}

// BreakerConfig tunes when a failing backend is switched off
type BreakerConfig struct {
	Name string
	// MaxConsecutiveFailures trips the breaker.
	MaxConsecutiveFailures uint32
	// Timeout is how long the breaker stays open before a trial play.
	Timeout time.Duration
	// MaxRequests is the number of trial plays allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns the settings used by cmd/pong
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                   "pong-audio",
		MaxConsecutiveFailures: 3,
		Timeout:                10 * time.Second,
		MaxRequests:            1,
	}
}

// Guarded is a Sink that synthesizes effects and plays them on a Backend
// through a circuit breaker. Backend errors are logged, never returned.
type Guarded struct {
	breaker *gobreaker.CircuitBreaker
	backend Backend
	synth   *Synth
	logger  *logging.Logger
	ctx     context.Context
}

// NewGuarded wraps backend. Log records carry the session ID found in ctx.
func NewGuarded(ctx context.Context, backend Backend, synth *Synth, logger *logging.Logger, cfg BreakerConfig) *Guarded {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(ctx, "audio breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Guarded{
		breaker: gobreaker.NewCircuitBreaker(settings),
		backend: backend,
		synth:   synth,
		logger:  logger,
		ctx:     ctx,
	}
}

// PlayPing plays the paddle and wall bounce effect
func (g *Guarded) PlayPing() {
	g.play("ping", g.synth.Ping)
}

// PlayBallOut plays the point scored effect
func (g *Guarded) PlayBallOut() {
	g.play("ball_out", g.synth.BallOut)
}

// State returns the breaker state
func (g *Guarded) State() gobreaker.State {
	return g.breaker.State()
}

// Counts returns the breaker's failure and success counts
func (g *Guarded) Counts() gobreaker.Counts {
	return g.breaker.Counts()
}

func (g *Guarded) play(effect string, render func() []byte) {
	if g.breaker.State() == gobreaker.StateOpen {
		return
	}

	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, g.backend.Play(render())
	})
	switch {
	case err == nil:
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		g.logger.Debug(g.ctx, "audio effect dropped", "effect", effect, "state", g.breaker.State().String())
	default:
		g.logger.Warn(g.ctx, "audio backend failed",
			"effect", effect,
			"error", err,
			"state", g.breaker.State().String(),
		)
	}
}
