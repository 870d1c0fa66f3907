package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/physics"
)

// Prompt is shown while waiting for a serve
const Prompt = "Press Spacebar"

const (
	paddleRune = '#'
	ballRune   = 'o'
	netRune    = ':'
)

// TerminalRenderer draws the arena as an ASCII grid of cols x rows cells.
// Lines end in CRLF so output stays aligned in raw mode.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	buffer [][]rune
	cellW  float64
	cellH  float64
	score  string
	prompt bool
	frame  bytes.Buffer
}

// NewTerminalRenderer creates a renderer scaling arena onto a cols x rows grid
func NewTerminalRenderer(out io.Writer, cols, rows int, arena entity.Arena) *TerminalRenderer {
	cols = max(cols, 1)
	rows = max(rows, 1)
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, cols)
	}

	return &TerminalRenderer{
		out:    out,
		width:  cols,
		height: rows,
		buffer: buffer,
		cellW:  arena.Width / float64(cols),
		cellH:  arena.Height / float64(rows),
	}
}

// worldToScreen converts arena coordinates to a cell. ok is false outside the grid.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (x, y int, ok bool) {
	x = int(math.Floor(pos.X / r.cellW))
	y = int(math.Floor(pos.Y / r.cellH))
	return x, y, x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	mid := r.width / 2
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
		if y%2 == 0 {
			r.buffer[y][mid] = netRune
		}
	}
}

// RenderPaddle implements entity.Renderer
func (r *TerminalRenderer) RenderPaddle(paddle *entity.Paddle) {
	box := paddle.Bounds()
	x, _, ok := r.worldToScreen(box.Center)
	if !ok {
		return
	}
	top := int(math.Floor(box.Top() / r.cellH))
	bottom := int(math.Ceil(box.Bottom()/r.cellH)) - 1
	for y := max(top, 0); y <= min(bottom, r.height-1); y++ {
		r.buffer[y][x] = paddleRune
	}
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball *entity.Ball) {
	if x, y, ok := r.worldToScreen(ball.Position); ok {
		r.buffer[y][x] = ballRune
	}
}

// RenderScore implements entity.Renderer
func (r *TerminalRenderer) RenderScore(player, cpu int) {
	r.score = fmt.Sprintf("PLAYER %d   CPU %d", player, cpu)
}

// ShowPrompt implements entity.Renderer
func (r *TerminalRenderer) ShowPrompt(visible bool) {
	r.prompt = visible
}

// Present implements entity.Renderer. The whole frame is written in one call.
func (r *TerminalRenderer) Present() {
	r.frame.Reset()
	r.frame.WriteString("\033[H\033[2J")

	fmt.Fprintf(&r.frame, " %s\r\n", center(r.score, r.width))
	border := "+" + strings.Repeat("-", r.width) + "+\r\n"
	r.frame.WriteString(border)

	promptRow := r.height / 2
	for y := range r.buffer {
		r.frame.WriteByte('|')
		if r.prompt && y == promptRow {
			r.frame.WriteString(overlay(string(r.buffer[y]), Prompt))
		} else {
			r.frame.WriteString(string(r.buffer[y]))
		}
		r.frame.WriteString("|\r\n")
	}

	r.frame.WriteString(border)
	_, _ = r.out.Write(r.frame.Bytes())
}

// center pads s with spaces to width, or truncates it
func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// overlay writes text centered over row
func overlay(row, text string) string {
	cells := []rune(row)
	if len(text) > len(cells) {
		text = text[:len(cells)]
	}
	start := (len(cells) - len(text)) / 2
	copy(cells[start:], []rune(text))
	return string(cells)
}
