// Package config provides YAML-based gameplay configuration loading for
// the game. All world-unit constants live here so the simulation carries
// no magic numbers; the embedded defaults reproduce the classic tuning.
package config

// Config contains all gameplay parameters, in world units unless noted.
type Config struct {
	Arena     ArenaConfig    `yaml:"arena"`
	Paddle    PaddleConfig   `yaml:"paddle"`
	Ball      BallConfig     `yaml:"ball"`
	Enemies   EnemyConfig    `yaml:"enemies"`
	Particles ParticleConfig `yaml:"particles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// ArenaConfig defines the static playfield: three walls and the hazard
// strip below the paddle. The bottom edge has no wall; the hazard sits
// beneath it.
type ArenaConfig struct {
	LeftWall      float64 `yaml:"left_wall"`      // x of the left wall center
	RightWall     float64 `yaml:"right_wall"`     // x of the right wall center
	TopWall       float64 `yaml:"top_wall"`       // y of the top wall center
	BottomEdge    float64 `yaml:"bottom_edge"`    // y of the open bottom edge
	WallThickness float64 `yaml:"wall_thickness"` //
	HazardY       float64 `yaml:"hazard_y"`       // y of the hazard strip center
	HazardWidth   float64 `yaml:"hazard_width"`
	HazardHeight  float64 `yaml:"hazard_height"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // World units per second
	Padding  float64 `yaml:"padding"`   // Extra gap kept from the walls
	FloorGap float64 `yaml:"floor_gap"` // Height of the paddle above the bottom edge
}

// BallConfig defines the ball and its serve.
type BallConfig struct {
	Size   float64 `yaml:"size"`  // Full extent of the bounding box
	Speed  float64 `yaml:"speed"` // World units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	DirX   float64 `yaml:"dir_x"` // Initial direction, normalized at spawn
	DirY   float64 `yaml:"dir_y"`
}

// EnemyConfig defines the block grid.
type EnemyConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OriginX float64 `yaml:"origin_x"` // Center of the top-left block
	OriginY float64 `yaml:"origin_y"`
	StepX   float64 `yaml:"step_x"` // Column pitch (positive rightward)
	StepY   float64 `yaml:"step_y"` // Row pitch (positive downward)
}

// ParticleConfig defines the destruction burst.
type ParticleConfig struct {
	Size       float64 `yaml:"size"`        // Initial full extent
	LifetimeMS int     `yaml:"lifetime_ms"` // One-shot timer duration
	Growth     float64 `yaml:"growth"`      // Per-tick size increment per axis
	MinCount   int     `yaml:"min_count"`   // Inclusive spawn count bounds
	MaxCount   int     `yaml:"max_count"`
	SpreadX    float64 `yaml:"spread_x"` // Uniform offset half-range
	SpreadY    float64 `yaml:"spread_y"`
}

// ScoringConfig defines score bookkeeping.
type ScoringConfig struct {
	EnemyPoints int `yaml:"enemy_points"`
}
