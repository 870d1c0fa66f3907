// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-pong/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var lastID atomic.Uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(lastID.Add(1))
}

// Arena is the fixed-size play field. The origin is the top-left corner and
// y grows downward.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena
func (a Arena) Center() physics.Vector2D {
	return physics.Vector2D{X: a.Width / 2, Y: a.Height / 2}
}

// Entity is the base interface for all game objects
type Entity interface {
	physics.Body
	GetID() ID
	GetPosition() physics.Vector2D
	Render(r Renderer)
}

// BaseEntity contains the identity and box shared by paddles and the ball
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Width    float64
	Height   float64
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's center
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Bounds returns the entity's bounding box
func (e *BaseEntity) Bounds() physics.Rect {
	return physics.Rect{
		Center: e.Position,
		Width:  e.Width,
		Height: e.Height,
	}
}

// Render draws the paddle
func (p *Paddle) Render(r Renderer) {
	r.RenderPaddle(p)
}

// Render draws the ball
func (b *Ball) Render(r Renderer) {
	r.RenderBall(b)
}
