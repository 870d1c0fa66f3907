// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/audio"
	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/logging"
)

// GameState is the phase of play
type GameState int

const (
	StateReset GameState = iota
	StateReady
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	default:
		return "reset"
	}
}

// Score holds the points of both sides for the lifetime of a Game
type Score struct {
	Player int
	CPU    int
}

// Scorer names used in score events and win checks
const (
	ScorerPlayer = "player"
	ScorerCPU    = "cpu"
)

// WinCondition decides whether the score ends a match.
// Returns the scorer name and true once a side has won.
type WinCondition interface {
	CheckWinner(score Score) (string, bool)
}

// ScoreLimit is won by the first side to reach the limit
type ScoreLimit int

// CheckWinner implements WinCondition
func (l ScoreLimit) CheckWinner(score Score) (string, bool) {
	if l <= 0 {
		return "", false
	}
	switch {
	case score.Player >= int(l):
		return ScorerPlayer, true
	case score.CPU >= int(l):
		return ScorerCPU, true
	}
	return "", false
}

// Game is the pong state machine. It owns the paddles and the ball, reacts
// to key events and is stepped by its Loop while a rally is in play.
// A Game is not safe for concurrent use.
type Game struct {
	Config   *config.GameConfig
	EventBus *event.Bus

	state  GameState
	score  Score
	player *entity.Paddle
	cpu    *entity.Paddle
	ball   *entity.Ball

	renderer     entity.Renderer
	sound        audio.Sink
	loop         *Loop
	logger       *logging.Logger
	ctx          context.Context
	rng          *rand.Rand
	winCondition WinCondition
	winner       string
}

// Option configures a Game
type Option func(*Game)

// WithRenderer sets the renderer drawn to after every change
func WithRenderer(r entity.Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithAudio sets the sound effect sink
func WithAudio(s audio.Sink) Option {
	return func(g *Game) { g.sound = s }
}

// WithLoop sets the frame loop started on serve
func WithLoop(l *Loop) Option {
	return func(g *Game) { g.loop = l }
}

// WithEventBus publishes game events on bus
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithLogger sets the logger. ctx supplies the session ID for its records.
func WithLogger(ctx context.Context, l *logging.Logger) Option {
	return func(g *Game) {
		g.ctx = ctx
		g.logger = l
	}
}

// WithRand sets the random source used for launches and rebounds
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithDispatcher registers the game for key events
func WithDispatcher(d *input.Dispatcher) Option {
	return func(g *Game) { d.AddListener(g) }
}

// WithWinCondition replaces the score limit taken from the rules
func WithWinCondition(w WinCondition) Option {
	return func(g *Game) { g.winCondition = w }
}

// NewGame creates a game in StateReset. Call Reset to place the entities
// and wait for a serve.
func NewGame(cfg *config.GameConfig, opts ...Option) *Game {
	g := &Game{
		Config:       cfg,
		EventBus:     event.NewEventBus(),
		renderer:     nopRenderer{},
		sound:        audio.Null{},
		logger:       logging.NewNopLogger(),
		ctx:          context.Background(),
		winCondition: ScoreLimit(cfg.Rules.WinScore),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.loop == nil {
		g.loop = NewLoop(NewPumpScheduler(), nil)
	}

	arena := entity.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	g.player = entity.NewPaddle(entity.Left, arena, cfg.Paddle)
	g.cpu = entity.NewPaddle(entity.Right, arena, cfg.Paddle)
	g.cpu.Follow()
	g.ball = entity.NewBall(arena, cfg.Ball, g.rng, g.player, g.cpu)

	return g
}

// State returns the current phase
func (g *Game) State() GameState { return g.state }

// Score returns both sides' points
func (g *Game) Score() Score { return g.score }

// Player returns the human paddle
func (g *Game) Player() *entity.Paddle { return g.player }

// CPU returns the ball-following paddle
func (g *Game) CPU() *entity.Paddle { return g.cpu }

// Ball returns the ball
func (g *Game) Ball() *entity.Ball { return g.ball }

// Loop returns the frame loop
func (g *Game) Loop() *Loop { return g.loop }

// Winner returns the side that met the win condition, or "" while undecided
func (g *Game) Winner() string { return g.winner }

// Reset halts the loop, re-centers everything and waits for a serve
func (g *Game) Reset() {
	g.loop.Stop()
	g.ball.Reset()
	g.player.Reset()
	g.cpu.Reset()

	g.guard("renderer", func() { g.renderer.ShowPrompt(true) })
	g.render()
	g.setState(StateReady)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameReset, Source: g})
}

// KeyDown implements input.KeyListener
func (g *Game) KeyDown(code input.KeyCode) {
	controls := g.Config.Controls
	switch g.state {
	case StateReady:
		if int(code) == controls.Serve {
			g.serve()
		}
	case StatePlaying:
		switch int(code) {
		case controls.Up:
			g.player.GoUp()
		case controls.Down:
			g.player.GoDown()
		}
	}
}

// KeyUp implements input.KeyListener
func (g *Game) KeyUp(code input.KeyCode) {
	if g.state != StatePlaying {
		return
	}
	switch int(code) {
	case g.Config.Controls.Up:
		g.player.ReleaseUp()
	case g.Config.Controls.Down:
		g.player.ReleaseDown()
	}
}

func (g *Game) serve() {
	g.guard("renderer", func() { g.renderer.ShowPrompt(false) })
	g.setState(StatePlaying)
	g.ball.Launch()
	g.logger.Debug(g.ctx, "ball served",
		"vx", g.ball.Velocity.X,
		"vy", g.ball.Velocity.Y,
	)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.BallServed, Source: g})
	g.loop.Start(g.Step)
}

// Step advances the simulation by dt seconds
func (g *Game) Step(dt float64) {
	view := g.ball.View()
	g.player.Update(dt, view)
	g.cpu.Update(dt, view)
	result := g.ball.Update(dt)

	g.render()

	for i := 0; i < result.Collisions; i++ {
		g.guard("audio", g.sound.PlayPing)
	}
	if result.Collided() {
		g.EventBus.Publish(event.NewCollisionEvent(g, result.Collisions))
	}

	if result.Exit != entity.ExitNone && g.state == StatePlaying {
		g.ballOut(result.Exit)
	}
}

// ballOut scores the rally. Leaving on the left is the CPU's point.
func (g *Game) ballOut(exit entity.Exit) {
	g.guard("audio", g.sound.PlayBallOut)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.BallOut, Source: g})

	scorer := ScorerPlayer
	if exit == entity.ExitLeft {
		scorer = ScorerCPU
		g.score.CPU++
	} else {
		g.score.Player++
	}
	g.logger.Info(g.ctx, "point scored",
		"scorer", scorer,
		"player", g.score.Player,
		"cpu", g.score.CPU,
	)
	g.EventBus.Publish(event.NewScoreEvent(event.PointScored, g, scorer, g.score.Player, g.score.CPU))
	g.checkWinner()

	g.Reset()
}

// checkWinner announces the first side to meet the win condition. Play
// continues afterwards.
func (g *Game) checkWinner() {
	if g.winner != "" || g.winCondition == nil {
		return
	}
	winner, ok := g.winCondition.CheckWinner(g.score)
	if !ok {
		return
	}
	g.winner = winner
	g.logger.Info(g.ctx, "match won", "winner", winner)
	g.EventBus.Publish(event.NewScoreEvent(event.MatchWon, g, winner, g.score.Player, g.score.CPU))
}

func (g *Game) setState(to GameState) {
	from := g.state
	if from == to {
		return
	}
	g.state = to
	g.logger.Debug(g.ctx, "state changed", "from", from.String(), "to", to.String())
	g.EventBus.Publish(event.NewStateEvent(g, from.String(), to.String()))
}

func (g *Game) render() {
	g.guard("renderer", func() {
		g.renderer.Clear()
		g.player.Render(g.renderer)
		g.cpu.Render(g.renderer)
		g.ball.Render(g.renderer)
		g.renderer.RenderScore(g.score.Player, g.score.CPU)
		g.renderer.Present()
	})
}

// guard runs a collaborator call, logging instead of propagating a panic
func (g *Game) guard(component string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn(g.ctx, "collaborator failed",
				"component", component,
				"panic", fmt.Sprint(r),
			)
		}
	}()
	fn()
}

type nopRenderer struct{}

func (nopRenderer) RenderPaddle(*entity.Paddle) {}
func (nopRenderer) RenderBall(*entity.Ball)     {}
func (nopRenderer) RenderScore(int, int)        {}
func (nopRenderer) ShowPrompt(bool)             {}
func (nopRenderer) Clear()                      {}
func (nopRenderer) Present()                    {}
