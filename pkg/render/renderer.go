// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/logging"
)

// NullRenderer is an entity.Renderer that only logs at debug level.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
}

// NewNullRenderer creates a NullRenderer. A nil logger discards everything.
func NewNullRenderer(ctx context.Context, logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    ctx,
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(d.ctx, "Present called")
}

// RenderPaddle implements entity.Renderer.
func (d *NullRenderer) RenderPaddle(paddle *entity.Paddle) {
	if paddle == nil {
		d.logger.Debug(d.ctx, "RenderPaddle called with nil paddle")
		return
	}
	d.logger.Debug(d.ctx, "RenderPaddle called",
		"paddle_id", paddle.ID,
		"side", paddle.Side.String(),
		"y", paddle.Position.Y,
		"state", paddle.State().String(),
	)
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball *entity.Ball) {
	if ball == nil {
		d.logger.Debug(d.ctx, "RenderBall called with nil ball")
		return
	}
	d.logger.Debug(d.ctx, "RenderBall called",
		"ball_id", ball.ID,
		"x", ball.Position.X,
		"y", ball.Position.Y,
	)
}

// RenderScore implements entity.Renderer.
func (d *NullRenderer) RenderScore(player, cpu int) {
	d.logger.Debug(d.ctx, "RenderScore called", "player", player, "cpu", cpu)
}

// ShowPrompt implements entity.Renderer.
func (d *NullRenderer) ShowPrompt(visible bool) {
	d.logger.Debug(d.ctx, "ShowPrompt called", "visible", visible)
}
