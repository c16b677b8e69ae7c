// Package config provides YAML-based game configuration loading for the
// flappy platform.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunables for the Flappy game.
// Units are world units (the playfield is World.Width x World.Height) and
// per-frame quantities assume 60 steps per second.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Actor     FlappyActor     `yaml:"actor"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Collision FlappyCollision `yaml:"collision"`
	Audio     FlappyAudio     `yaml:"audio"`
}

// FlappyWorld defines the playfield and the scrolling ground band.
type FlappyWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundHeight    float64 `yaml:"ground_height"`
	GroundSpeed     float64 `yaml:"ground_speed"`      // Ground scroll per frame (presentation only)
	GroundTileWidth float64 `yaml:"ground_tile_width"` // Ground offset wraps at this width
}

// FlappyActor defines the player-controlled actor.
type FlappyActor struct {
	X              float64 `yaml:"x"`
	StartY         float64 `yaml:"start_y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"` // Negative = up
	AnimationSpeed int     `yaml:"animation_speed"`
}

// FlappyObstacles defines obstacle generation and movement.
type FlappyObstacles struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`
	Speed           float64 `yaml:"speed"`
	SpawnInterval   int     `yaml:"spawn_interval"` // Frames between spawns
	MinTop          float64 `yaml:"min_top"`
	MinBottomMargin float64 `yaml:"min_bottom_margin"`
}

// FlappyCollision defines the collision tolerance.
type FlappyCollision struct {
	Inset float64 `yaml:"inset"` // Shrinks the actor box on all four sides
}

// FlappyAudio defines cue playback settings.
type FlappyAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// FloorY returns the y-coordinate of the floor line.
func (c FlappyConfig) FloorY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// MaxTop returns the upper bound of the randomized gap top.
func (c FlappyConfig) MaxTop() float64 {
	return c.FloorY() - c.Obstacles.Gap - c.Obstacles.MinBottomMargin
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v must be within [0, %v)", c.World.GroundHeight, c.World.Height))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height))
	}
	if c.Actor.StartY < 0 || c.Actor.StartY+c.Actor.Height > c.FloorY() {
		errs = append(errs, fmt.Errorf("actor start_y %v must keep the actor above the floor", c.Actor.StartY))
	}
	if c.Actor.AnimationSpeed <= 0 {
		errs = append(errs, fmt.Errorf("animation_speed must be positive, got %d", c.Actor.AnimationSpeed))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Gap <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width and gap must be positive, got %v and %v", c.Obstacles.Width, c.Obstacles.Gap))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval))
	}
	if c.MaxTop() < c.Obstacles.MinTop {
		errs = append(errs, fmt.Errorf("empty gap band: min_top %v > max top %v", c.Obstacles.MinTop, c.MaxTop()))
	}
	if c.Collision.Inset < 0 {
		errs = append(errs, fmt.Errorf("collision inset must not be negative, got %v", c.Collision.Inset))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v must be within [0, 1]", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
