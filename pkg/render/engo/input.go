// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-pong/pkg/input"
)

// Buttons reports edge transitions of named buttons
type Buttons interface {
	JustPressed(name string) bool
	JustReleased(name string) bool
}

type engoButtons struct{}

func (engoButtons) JustPressed(name string) bool  { return engo.Input.Button(name).JustPressed() }
func (engoButtons) JustReleased(name string) bool { return engo.Input.Button(name).JustReleased() }

type binding struct {
	name string
	key  engo.Key
	code input.KeyCode
	quit bool
}

// bindings forward physical keys; the game decides which ones are controls
var bindings = []binding{
	{name: "arrowUp", key: engo.KeyArrowUp, code: input.KeyArrowUp},
	{name: "arrowDown", key: engo.KeyArrowDown, code: input.KeyArrowDown},
	{name: "w", key: engo.KeyW, code: input.KeyW},
	{name: "s", key: engo.KeyS, code: input.KeyS},
	{name: "space", key: engo.KeySpace, code: input.KeySpace},
	{name: "escape", key: engo.KeyEscape, code: input.KeyEscape, quit: true},
	{name: "q", key: engo.KeyQ, code: input.KeyQ, quit: true},
}

// SetupInputBindings registers a button for every forwarded key
func SetupInputBindings() {
	for _, b := range bindings {
		engo.Input.RegisterButton(b.name, b.key)
	}
}

// InputSystem turns button edges into key events
type InputSystem struct {
	listener input.KeyListener
	buttons  Buttons
	quit     func()
}

// NewInputSystem creates an input system. quit is called for Escape and Q.
func NewInputSystem(listener input.KeyListener, buttons Buttons, quit func()) *InputSystem {
	if buttons == nil {
		buttons = engoButtons{}
	}
	return &InputSystem{
		listener: listener,
		buttons:  buttons,
		quit:     quit,
	}
}

// Priority runs input before the frame pump
func (is *InputSystem) Priority() int { return 20 }

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update forwards this frame's presses and releases
func (is *InputSystem) Update(dt float32) {
	for _, b := range bindings {
		if is.buttons.JustPressed(b.name) {
			is.listener.KeyDown(b.code)
			if b.quit && is.quit != nil {
				is.quit()
			}
		}
		if is.buttons.JustReleased(b.name) {
			is.listener.KeyUp(b.code)
		}
	}
}
