// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "mixed_signs",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{X: -2, Y: 7},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_result",
			v1:       Vector2D{X: 5, Y: 7},
			v2:       Vector2D{X: 2, Y: 3},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "negative_result",
			v1:       Vector2D{X: 2, Y: 3},
			v2:       Vector2D{X: 5, Y: 7},
			expected: Vector2D{X: -3, Y: -4},
		},
		{
			name:     "same_vectors",
			v1:       Vector2D{X: 4, Y: 6},
			v2:       Vector2D{X: 4, Y: 6},
			expected: Vector2D{X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Sub(tt.v2)
			if result != tt.expected {
				t.Errorf("Sub() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		factor   float64
		expected Vector2D
	}{
		{"positive_scale", Vector2D{X: 3, Y: 4}, 2, Vector2D{X: 6, Y: 8}},
		{"negative_scale", Vector2D{X: 3, Y: 4}, -2, Vector2D{X: -6, Y: -8}},
		{"zero_scale", Vector2D{X: 3, Y: 4}, 0, Vector2D{X: 0, Y: 0}},
		{"fractional_scale", Vector2D{X: 4, Y: 8}, 0.5, Vector2D{X: 2, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Scale(tt.factor)
			if result != tt.expected {
				t.Errorf("Scale() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"unit_vector_x", Vector2D{X: 1, Y: 0}, 1},
		{"zero_vector", Vector2D{X: 0, Y: 0}, 0},
		{"pythagorean_triple", Vector2D{X: 3, Y: 4}, 5},
		{"negative_components", Vector2D{X: -3, Y: -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Length()
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Length() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/4, 250)
	if math.Abs(v.Length()-250) > 1e-9 {
		t.Errorf("FromAngle() length = %v, expected 250", v.Length())
	}
	if math.Abs(v.Angle()-math.Pi/4) > 1e-9 {
		t.Errorf("FromAngle() angle = %v, expected %v", v.Angle(), math.Pi/4)
	}
}

func TestReflectAcrossX(t *testing.T) {
	tests := []struct {
		name     string
		point    Vector2D
		x        float64
		expected Vector2D
	}{
		{"left_of_line", Vector2D{X: -16, Y: 240}, 20, Vector2D{X: 56, Y: 240}},
		{"right_of_line", Vector2D{X: 30, Y: 5}, 10, Vector2D{X: -10, Y: 5}},
		{"on_line", Vector2D{X: 10, Y: 5}, 10, Vector2D{X: 10, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReflectAcrossX(tt.point, tt.x)
			if result != tt.expected {
				t.Errorf("ReflectAcrossX() = %v, expected %v", result, tt.expected)
			}
			if back := ReflectAcrossX(result, tt.x); back != tt.point {
				t.Errorf("ReflectAcrossX() twice = %v, expected %v", back, tt.point)
			}
		})
	}
}

func TestReflectAcrossY(t *testing.T) {
	tests := []struct {
		name     string
		point    Vector2D
		y        float64
		expected Vector2D
	}{
		{"above_top", Vector2D{X: 100, Y: -3}, 0, Vector2D{X: 100, Y: 3}},
		{"below_bottom", Vector2D{X: 100, Y: 484}, 480, Vector2D{X: 100, Y: 476}},
		{"on_line", Vector2D{X: 1, Y: 7}, 7, Vector2D{X: 1, Y: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReflectAcrossY(tt.point, tt.y)
			if result != tt.expected {
				t.Errorf("ReflectAcrossY() = %v, expected %v", result, tt.expected)
			}
			if back := ReflectAcrossY(result, tt.y); back != tt.point {
				t.Errorf("ReflectAcrossY() twice = %v, expected %v", back, tt.point)
			}
		})
	}
}

func TestVector2D_Immutability(t *testing.T) {
	v := Vector2D{X: 1, Y: 2}
	_ = v.Add(Vector2D{X: 5, Y: 5})
	_ = v.Scale(3)
	_ = ReflectAcrossX(v, 10)
	if v != (Vector2D{X: 1, Y: 2}) {
		t.Errorf("operations mutated receiver: %v", v)
	}
}
