package entity

// Renderer handles rendering game entities. Implementations must not panic
// into the simulation; the engine recovers and logs if they do.
type Renderer interface {
	RenderPaddle(paddle *Paddle)
	RenderBall(ball *Ball)
	RenderScore(player, cpu int)
	ShowPrompt(visible bool)
	Clear()
	Present()
}
