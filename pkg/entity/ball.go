package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Exit tells which wall, if any, the ball left through
type Exit int

const (
	ExitNone Exit = iota
	ExitLeft
	ExitRight
)

func (e Exit) String() string {
	switch e {
	case ExitLeft:
		return "left"
	case ExitRight:
		return "right"
	default:
		return "none"
	}
}

// UpdateResult is what happened to the ball during one tick
type UpdateResult struct {
	// Collisions counts wall and paddle bounces; several may occur in one tick.
	Collisions int
	Exit       Exit
}

// Collided reports whether the ball bounced at least once
func (r UpdateResult) Collided() bool {
	return r.Collisions > 0
}

// Ball is the moving rectangle. Velocity is in arena units per second and is
// zero only while waiting to be served.
type Ball struct {
	BaseEntity
	Velocity     physics.Vector2D
	obstructions []physics.Body
	arena        Arena
	launchSpeed  float64
	speedUp      float64
	maxAngle     float64
	rng          *rand.Rand
}

// NewBall creates a ball at rest in the arena center. Obstructions are
// checked in the order given.
func NewBall(arena Arena, cfg config.BallConfig, rng *rand.Rand, obstructions ...physics.Body) *Ball {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Ball{
		BaseEntity: BaseEntity{
			ID:     GenerateID(),
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		obstructions: obstructions,
		arena:        arena,
		launchSpeed:  cfg.LaunchSpeed,
		speedUp:      cfg.SpeedUp,
		maxAngle:     cfg.MaxAngle * math.Pi / 180,
		rng:          rng,
	}
	b.Reset()
	return b
}

// View returns a read-only snapshot for AI paddles
func (b *Ball) View() BallView {
	return BallView{Position: b.Position, Velocity: b.Velocity}
}

// Reset puts the ball at rest in the arena center
func (b *Ball) Reset() {
	b.Position = b.arena.Center()
	b.Velocity = physics.Vector2D{}
}

// Launch serves the ball toward a random side at the launch speed, within
// the configured cone around the horizontal.
func (b *Ball) Launch() {
	angle := b.randomAngle()
	dir := 1.0
	if b.rng.Float64() <= 0.5 {
		dir = -1
	}
	b.Velocity = physics.Vector2D{
		X: dir * math.Cos(angle) * b.launchSpeed,
		Y: math.Sin(angle) * b.launchSpeed,
	}
}

// Update moves the ball by dt seconds, bouncing off the top and bottom walls
// and the obstructions, and reports bounces and exits.
func (b *Ball) Update(dt float64) UpdateResult {
	var result UpdateResult
	next := b.Position.Add(b.Velocity.Scale(dt))

	if b.Velocity.Y < 0 && next.Y-b.Height/2 < 0 {
		next = physics.ReflectAcrossY(next, 0)
		b.Velocity.Y = -b.Velocity.Y
		result.Collisions++
	}
	if b.Velocity.Y > 0 && next.Y+b.Height/2 >= b.arena.Height {
		next = physics.ReflectAcrossY(next, b.arena.Height)
		b.Velocity.Y = -b.Velocity.Y
		result.Collisions++
	}

	for _, obstruction := range b.obstructions {
		box := obstruction.Bounds()
		candidate := physics.Rect{Center: next, Width: b.Width, Height: b.Height}
		if !box.Overlaps(candidate) {
			continue
		}
		switch {
		case b.Velocity.X < 0 && box.Center.X < b.Position.X:
			// struck the obstruction's right face, rebound rightward
			next = physics.ReflectAcrossX(next, box.Right())
			b.Velocity = physics.FromAngle(b.randomAngle(), b.Velocity.Length()+b.speedUp)
			result.Collisions++
		case b.Velocity.X > 0 && box.Center.X > b.Position.X:
			next = physics.ReflectAcrossX(next, box.Left())
			b.Velocity = physics.FromAngle(math.Pi+b.randomAngle(), b.Velocity.Length()+b.speedUp)
			result.Collisions++
		}
	}

	b.Position = next

	switch {
	case b.Position.X < 0:
		result.Exit = ExitLeft
	case b.Position.X >= b.arena.Width:
		result.Exit = ExitRight
	}
	return result
}

func (b *Ball) randomAngle() float64 {
	return b.rng.Float64()*2*b.maxAngle - b.maxAngle
}
