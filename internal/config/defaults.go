package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:           400,
			Height:          600,
			GroundHeight:    112,
			GroundSpeed:     2,
			GroundTileWidth: 336,
		},
		Actor: FlappyActor{
			X:              80,
			StartY:         250,
			Width:          34,
			Height:         24,
			Gravity:        0.5,
			JumpImpulse:    -9,
			AnimationSpeed: 5,
		},
		Obstacles: FlappyObstacles{
			Width:           52,
			Gap:             130,
			Speed:           2,
			SpawnInterval:   150,
			MinTop:          80,
			MinBottomMargin: 80,
		},
		Collision: FlappyCollision{
			Inset: 5,
		},
		Audio: FlappyAudio{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
