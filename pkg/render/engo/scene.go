// pkg/render/engo/scene.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/input"
)

// SceneType names the pong scene for engo
const SceneType = "PongScene"

// FrameSystem runs the game loop's pending frame once per engo update
type FrameSystem struct {
	scheduler *engine.PumpScheduler
}

// NewFrameSystem creates a frame system pumping scheduler
func NewFrameSystem(scheduler *engine.PumpScheduler) *FrameSystem {
	return &FrameSystem{scheduler: scheduler}
}

// Priority runs the pump after input and before rendering
func (fs *FrameSystem) Priority() int { return 10 }

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update pumps one frame. The loop measures its own elapsed time.
func (fs *FrameSystem) Update(dt float32) {
	fs.scheduler.Pump()
}

// GameScene represents the main game scene in Engo
type GameScene struct {
	game      *engine.Game
	scheduler *engine.PumpScheduler
	renderer  *EngoRenderer
	listener  input.KeyListener
	arena     entity.Arena
}

// NewGameScene creates a scene for game. The game must have been built with
// renderer and a loop on scheduler; listener receives key events.
func NewGameScene(game *engine.Game, scheduler *engine.PumpScheduler, renderer *EngoRenderer, listener input.KeyListener) *GameScene {
	return &GameScene{
		game:      game,
		scheduler: scheduler,
		renderer:  renderer,
		listener:  listener,
		arena: entity.Arena{
			Width:  game.Config.Arena.Width,
			Height: game.Config.Arena.Height,
		},
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("pong scene requires an *ecs.World updater")
	}
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)
	scene.renderer.Attach(renderSystem)
	scene.renderer.AddNet(scene.arena)

	SetupInputBindings()
	world.AddSystem(NewInputSystem(scene.listener, nil, engo.Exit))
	world.AddSystem(NewFrameSystem(scene.scheduler))

	scene.game.Reset()
}

// Exit is called when the scene is exiting
func (scene *GameScene) Exit() {}

// RunOptions configures the window
type RunOptions struct {
	Title string
	FPS   int
}

// Run opens a window sized to the arena and blocks until it is closed
func Run(opts RunOptions, scene *GameScene) {
	engo.Run(engo.RunOptions{
		Title:        opts.Title,
		Width:        int(scene.arena.Width),
		Height:       int(scene.arena.Height),
		FPSLimit:     opts.FPS,
		NotResizable: true,
	}, scene)
}
