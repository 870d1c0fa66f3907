// pkg/entity/entity_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/go-pong/pkg/physics"
)

func TestBaseEntity_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		entity   BaseEntity
		expected physics.Rect
	}{
		{
			name:     "paddle_sized",
			entity:   BaseEntity{Position: physics.Vector2D{X: 16, Y: 240}, Width: 8, Height: 64},
			expected: physics.Rect{Center: physics.Vector2D{X: 16, Y: 240}, Width: 8, Height: 64},
		},
		{
			name:     "ball_sized_at_origin",
			entity:   BaseEntity{Width: 4, Height: 4},
			expected: physics.Rect{Width: 4, Height: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Bounds(); got != tt.expected {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.entity.GetPosition(); got != tt.expected.Center {
				t.Errorf("GetPosition() = %+v, want %+v", got, tt.expected.Center)
			}
		})
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if seen[id] {
			t.Fatalf("GenerateID() returned duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestArena_Center(t *testing.T) {
	arena := Arena{Width: 640, Height: 480}
	if got := arena.Center(); got != (physics.Vector2D{X: 320, Y: 240}) {
		t.Errorf("Center() = %+v, want (320, 240)", got)
	}
}

func TestEntities_SatisfyInterfaces(t *testing.T) {
	arena := Arena{Width: 640, Height: 480}
	paddle := NewPaddle(Left, arena, testPaddleConfig())
	ball := NewBall(arena, testBallConfig(), seededRand())

	for name, e := range map[string]Entity{"paddle": paddle, "ball": ball} {
		if e.GetID() == 0 {
			t.Errorf("%s has zero ID", name)
		}
		if e.Bounds().Center != e.GetPosition() {
			t.Errorf("%s bounds not centered on position", name)
		}
	}
	if paddle.GetID() == ball.GetID() {
		t.Error("paddle and ball share an ID")
	}
}
