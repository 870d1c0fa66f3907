// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a setting cannot produce a playable game.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains configuration for a game of pong
type GameConfig struct {
	Arena    ArenaConfig    `json:"arena" yaml:"arena"`
	Paddle   PaddleConfig   `json:"paddle" yaml:"paddle"`
	Ball     BallConfig     `json:"ball" yaml:"ball"`
	Controls ControlsConfig `json:"controls" yaml:"controls"`
	Rules    GameRules      `json:"rules" yaml:"rules"`
	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`
}

// ArenaConfig sizes the play field
type ArenaConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// PaddleConfig contains paddle geometry and speed
type PaddleConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	// Offset is the distance of the paddle center from its side wall.
	Offset float64 `json:"offset" yaml:"offset"`
	Speed  float64 `json:"speed" yaml:"speed"`
}

// BallConfig contains ball geometry and launch behaviour
type BallConfig struct {
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	LaunchSpeed float64 `json:"launchSpeed" yaml:"launchSpeed"`
	// SpeedUp is added to the ball's speed on every paddle hit.
	SpeedUp float64 `json:"speedUp" yaml:"speedUp"`
	// MaxAngle is the half-width of the launch and rebound cone, in degrees.
	MaxAngle float64 `json:"maxAngle" yaml:"maxAngle"`
}

// ControlsConfig maps actions to key codes
type ControlsConfig struct {
	Up    int `json:"up" yaml:"up"`
	Down  int `json:"down" yaml:"down"`
	Serve int `json:"serve" yaml:"serve"`
}

// GameRules contains game rules configuration
type GameRules struct {
	// WinScore announces a match winner once reached. Zero means endless play.
	WinScore int `json:"winScore" yaml:"winScore"`
}

// FrontendConfig selects and tunes the presentation layer
type FrontendConfig struct {
	Renderer   string `json:"renderer" yaml:"renderer"`
	Audio      string `json:"audio" yaml:"audio"`
	FPS        int    `json:"fps" yaml:"fps"`
	TermCols   int    `json:"termCols" yaml:"termCols"`
	TermRows   int    `json:"termRows" yaml:"termRows"`
	HoldMillis int    `json:"holdMillis" yaml:"holdMillis"`
}

// LoadConfig loads a configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration describes a playable arena
func (c *GameConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddle.Height > c.Arena.Height:
		return fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalidConfig, c.Paddle.Height, c.Arena.Height)
	case c.Paddle.Offset <= 0 || c.Paddle.Offset >= c.Arena.Width/2:
		return fmt.Errorf("%w: paddle offset %v outside (0, %v)", ErrInvalidConfig, c.Paddle.Offset, c.Arena.Width/2)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalidConfig)
	case c.Ball.Width <= 0 || c.Ball.Height <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Ball.LaunchSpeed <= 0:
		return fmt.Errorf("%w: launch speed must be positive", ErrInvalidConfig)
	case c.Ball.MaxAngle <= 0 || c.Ball.MaxAngle >= 90:
		return fmt.Errorf("%w: max angle %v outside (0, 90)", ErrInvalidConfig, c.Ball.MaxAngle)
	case c.Rules.WinScore < 0:
		return fmt.Errorf("%w: win score must not be negative", ErrInvalidConfig)
	case c.Frontend.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
		},
		Paddle: PaddleConfig{
			Width:  8,
			Height: 64,
			Offset: 16,
			Speed:  240,
		},
		Ball: BallConfig{
			Width:       4,
			Height:      4,
			LaunchSpeed: 250,
			SpeedUp:     25,
			MaxAngle:    45,
		},
		Controls: ControlsConfig{
			Up:    38,
			Down:  40,
			Serve: 32,
		},
		Rules: GameRules{
			WinScore: 0,
		},
		Frontend: FrontendConfig{
			Renderer:   "terminal",
			Audio:      "bell",
			FPS:        60,
			TermCols:   80,
			TermRows:   24,
			HoldMillis: 150,
		},
	}
}
