// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvArenaWidth  = "PONG_ARENA_WIDTH"
	EnvArenaHeight = "PONG_ARENA_HEIGHT"
	EnvPaddleSpeed = "PONG_PADDLE_SPEED"
	EnvLaunchSpeed = "PONG_LAUNCH_SPEED"
	EnvWinScore    = "PONG_WIN_SCORE"
	EnvRenderer    = "PONG_RENDERER"
	EnvAudio       = "PONG_AUDIO"
	EnvFPS         = "PONG_FPS"
)

// ApplyEnv overrides configuration values from PONG_* environment variables.
// Unset variables leave the current value alone; malformed ones are an error.
func (c *GameConfig) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvArenaWidth, &c.Arena.Width},
		{EnvArenaHeight, &c.Arena.Height},
		{EnvPaddleSpeed, &c.Paddle.Speed},
		{EnvLaunchSpeed, &c.Ball.LaunchSpeed},
	}
	for _, f := range floats {
		if err := getEnvFloat(f.key, f.dst); err != nil {
			return err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWinScore, &c.Rules.WinScore},
		{EnvFPS, &c.Frontend.FPS},
	}
	for _, i := range ints {
		if err := getEnvInt(i.key, i.dst); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvRenderer); v != "" {
		c.Frontend.Renderer = v
	}
	if v := os.Getenv(EnvAudio); v != "" {
		c.Frontend.Audio = v
	}

	return nil
}

func getEnvFloat(key string, dst *float64) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func getEnvInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
