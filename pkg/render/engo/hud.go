// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/opd-ai/go-pong/pkg/render"
)

// HUD composes the score line shown in the window title
type HUD struct {
	title  string
	player int
	cpu    int
	prompt bool
}

// NewHUD creates a HUD prefixed with title
func NewHUD(title string) *HUD {
	return &HUD{title: title}
}

// SetScore updates both sides' points
func (h *HUD) SetScore(player, cpu int) {
	h.player, h.cpu = player, cpu
}

// SetPrompt shows or hides the serve prompt
func (h *HUD) SetPrompt(visible bool) {
	h.prompt = visible
}

// Text returns the current title text
func (h *HUD) Text() string {
	text := fmt.Sprintf("%s  %d : %d", h.title, h.player, h.cpu)
	if h.prompt {
		text += "  " + render.Prompt
	}
	return text
}
