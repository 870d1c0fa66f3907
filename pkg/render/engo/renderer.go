// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

var (
	paddleColor = color.RGBA{255, 255, 255, 255}
	ballColor   = color.RGBA{255, 255, 255, 255}
	netColor    = color.RGBA{128, 128, 128, 255}
)

// sprite is a solid rectangle drawn by the render system
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine.
// Sprites created before Attach are handed to the render system on attach.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	sprites      map[entity.ID]*sprite
	net          []*sprite

	hud      *HUD
	title    string
	setTitle func(string)
}

// NewEngoRenderer creates a renderer whose score and prompt appear in the
// window title after title.
func NewEngoRenderer(title string) *EngoRenderer {
	return &EngoRenderer{
		sprites:  make(map[entity.ID]*sprite),
		hud:      NewHUD(title),
		setTitle: engo.SetTitle,
	}
}

// Attach hands every sprite to rs
func (r *EngoRenderer) Attach(rs *common.RenderSystem) {
	r.renderSystem = rs
	for _, s := range r.net {
		r.add(s)
	}
	for _, s := range r.sprites {
		r.add(s)
	}
}

// AddNet draws the dashed center line
func (r *EngoRenderer) AddNet(arena entity.Arena) {
	const dash = 16
	for y := 0.0; y < arena.Height; y += 2 * dash {
		box := physics.Rect{
			Center: physics.Vector2D{X: arena.Width / 2, Y: y + dash/2},
			Width:  2,
			Height: dash,
		}
		s := newSprite(box, netColor)
		r.net = append(r.net, s)
		r.add(s)
	}
}

// RenderPaddle implements entity.Renderer
func (r *EngoRenderer) RenderPaddle(paddle *entity.Paddle) {
	r.place(paddle.GetID(), paddle.Bounds(), paddleColor)
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball *entity.Ball) {
	r.place(ball.GetID(), ball.Bounds(), ballColor)
}

// RenderScore implements entity.Renderer
func (r *EngoRenderer) RenderScore(player, cpu int) {
	r.hud.SetScore(player, cpu)
}

// ShowPrompt implements entity.Renderer
func (r *EngoRenderer) ShowPrompt(visible bool) {
	r.hud.SetPrompt(visible)
}

// Clear implements entity.Renderer. Sprites persist between frames, so
// there is nothing to clear.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer. The render system draws sprites on its
// own; only the window title needs pushing.
func (r *EngoRenderer) Present() {
	if text := r.hud.Text(); text != r.title {
		r.title = text
		r.setTitle(text)
	}
}

func (r *EngoRenderer) place(id entity.ID, box physics.Rect, c color.Color) {
	s, ok := r.sprites[id]
	if !ok {
		s = newSprite(box, c)
		r.sprites[id] = s
		r.add(s)
		return
	}
	s.SpaceComponent.Position = topLeft(box)
	s.SpaceComponent.Width = float32(box.Width)
	s.SpaceComponent.Height = float32(box.Height)
}

func (r *EngoRenderer) add(s *sprite) {
	if r.renderSystem != nil {
		r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	}
}

func newSprite(box physics.Rect, c color.Color) *sprite {
	return &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    c,
		},
		SpaceComponent: common.SpaceComponent{
			Position: topLeft(box),
			Width:    float32(box.Width),
			Height:   float32(box.Height),
		},
	}
}

// topLeft converts a centered box to engo's top-left anchored position
func topLeft(box physics.Rect) engo.Point {
	return engo.Point{
		X: float32(box.Left()),
		Y: float32(box.Top()),
	}
}
