package config

import (
	_ "embed"
)

//go:embed defaults/bricksmash.yaml
var defaultYAML []byte

// Default returns the default gameplay configuration: the classic tuning
// the embedded YAML mirrors.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			LeftWall:      -450.0,
			RightWall:     450.0,
			TopWall:       300.0,
			BottomEdge:    -300.0,
			WallThickness: 10.0,
			HazardY:       -340.5,
			HazardWidth:   1296.8,
			HazardHeight:  40.2,
		},
		Paddle: PaddleConfig{
			Width:    120.0,
			Height:   20.0,
			Speed:    500.0,
			Padding:  10.0,
			FloorGap: 60.0,
		},
		Ball: BallConfig{
			Size:   30.0,
			Speed:  400.0,
			StartX: 0.0,
			StartY: -150.0,
			DirX:   0.5,
			DirY:   -0.5,
		},
		Enemies: EnemyConfig{
			Rows:    8,
			Cols:    9,
			Width:   60.0,
			Height:  20.0,
			OriginX: -350.0,
			OriginY: 250.0,
			StepX:   90.0,
			StepY:   40.0,
		},
		Particles: ParticleConfig{
			Size:       10.0,
			LifetimeMS: 100,
			Growth:     0.9,
			MinCount:   2,
			MaxCount:   6,
			SpreadX:    30.0,
			SpreadY:    20.0,
		},
		Scoring: ScoringConfig{
			EnemyPoints: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
