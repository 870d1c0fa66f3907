package entity

import (
	"math"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Side is the arena wall a paddle defends
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// PaddleState is the paddle's current vertical intent
type PaddleState int

const (
	Stationary PaddleState = iota
	MovingUp
	MovingDown
)

func (s PaddleState) String() string {
	switch s {
	case MovingUp:
		return "moving_up"
	case MovingDown:
		return "moving_down"
	default:
		return "stationary"
	}
}

// BallView is the read-only part of the ball a paddle may observe
type BallView struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// Paddle is a vertically moving rectangle pinned to one side of the arena.
// Its center y is kept within [Height/2, arena.Height-Height/2].
type Paddle struct {
	BaseEntity
	Side      Side
	state     PaddleState
	following bool
	speed     float64
	offset    float64
	arena     Arena
}

// NewPaddle creates a paddle on side, centered vertically
func NewPaddle(side Side, arena Arena, cfg config.PaddleConfig) *Paddle {
	p := &Paddle{
		BaseEntity: BaseEntity{
			ID:     GenerateID(),
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		Side:   side,
		speed:  cfg.Speed,
		offset: cfg.Offset,
		arena:  arena,
	}
	p.Reset()
	return p
}

// State returns the current movement state
func (p *Paddle) State() PaddleState {
	return p.state
}

// Following reports whether the paddle is AI-driven
func (p *Paddle) Following() bool {
	return p.following
}

// GoUp starts moving up
func (p *Paddle) GoUp() { p.state = MovingUp }

// GoDown starts moving down
func (p *Paddle) GoDown() { p.state = MovingDown }

// ReleaseUp stops the paddle only if it is moving up, so a late key-up does
// not cancel a newer key-down.
func (p *Paddle) ReleaseUp() {
	if p.state == MovingUp {
		p.state = Stationary
	}
}

// ReleaseDown stops the paddle only if it is moving down
func (p *Paddle) ReleaseDown() {
	if p.state == MovingDown {
		p.state = Stationary
	}
}

// Stop halts the paddle
func (p *Paddle) Stop() { p.state = Stationary }

// Follow hands control of the paddle to the ball-tracking AI
func (p *Paddle) Follow() { p.following = true }

// Reset recenters the paddle at its side and clears its movement
func (p *Paddle) Reset() {
	x := p.offset
	if p.Side == Right {
		x = p.arena.Width - p.offset
	}
	p.setPosition(physics.Vector2D{X: x, Y: p.arena.Height / 2})
	p.state = Stationary
}

// MoveTo places the paddle at y, clamped into the arena
func (p *Paddle) MoveTo(y float64) {
	p.setPosition(physics.Vector2D{X: p.Position.X, Y: y})
}

// Update advances the paddle by dt seconds. When following, the AI first
// reacts to target, the ball as it was at the end of the previous tick.
func (p *Paddle) Update(dt float64, target BallView) {
	if p.following {
		p.track(target)
	}

	var dy float64
	switch p.state {
	case MovingUp:
		dy = -p.speed
	case MovingDown:
		dy = p.speed
	}
	p.setPosition(physics.Vector2D{X: p.Position.X, Y: p.Position.Y + dy*dt})
}

// track only starts moving from rest and stops inside a dead-zone of a
// quarter paddle height, so the CPU lags and overshoots.
func (p *Paddle) track(target BallView) {
	approaching := (target.Position.X < p.Position.X && target.Velocity.X > 0) ||
		(target.Position.X > p.Position.X && target.Velocity.X < 0)
	if !approaching {
		p.Stop()
		return
	}

	if math.Abs(target.Position.Y-p.Position.Y) < p.Height/4 {
		p.Stop()
		return
	}

	if p.state == Stationary {
		if p.Position.Y > target.Position.Y {
			p.GoUp()
		} else {
			p.GoDown()
		}
	}
}

func (p *Paddle) setPosition(pos physics.Vector2D) {
	half := p.Height / 2
	pos.Y = math.Max(half, math.Min(pos.Y, p.arena.Height-half))
	p.Position = pos
}
