// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids game.
package config

// AsteroidsConfig contains all tunable parameters for the simulation.
// All distances are in terminal-cell units, all times in seconds.
type AsteroidsConfig struct {
	Ship       ShipConfig      `yaml:"ship"`
	Asteroids  AsteroidConfig  `yaml:"asteroids"`
	Shots      ShotConfig      `yaml:"shots"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Explosions ExplosionConfig `yaml:"explosions"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Radius           float64 `yaml:"radius"`
	TurnSpeed        float64 `yaml:"turn_speed"`       // Degrees per second
	ThrustAccel      float64 `yaml:"thrust_accel"`     // Cells per second squared
	Drag             float64 `yaml:"drag"`             // Velocity multiplier per update
	Lives            int     `yaml:"lives"`
	RespawnTime      float64 `yaml:"respawn_time"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`
	ShootCooldown    float64 `yaml:"shoot_cooldown"`
}

// AsteroidConfig defines asteroid spawning and splitting parameters.
type AsteroidConfig struct {
	MinRadius       float64 `yaml:"min_radius"`
	Kinds           int     `yaml:"kinds"`          // Size kinds: radius = min_radius * 1..kinds
	SpawnRate       float64 `yaml:"spawn_rate"`     // Seconds between border spawns
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	SplitAngleMin   float64 `yaml:"split_angle_min"` // Degrees
	SplitAngleMax   float64 `yaml:"split_angle_max"` // Degrees
	SplitSpeedScale float64 `yaml:"split_speed_scale"`
}

// MaxRadius returns the radius of the largest asteroid kind.
func (a AsteroidConfig) MaxRadius() float64 {
	return a.MinRadius * float64(a.Kinds)
}

// ShotConfig defines projectile parameters.
type ShotConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
}

// ScoringConfig defines point values and wave bonuses.
type ScoringConfig struct {
	LargeAsteroid    int     `yaml:"large_asteroid"`
	MediumAsteroid   int     `yaml:"medium_asteroid"`
	SmallAsteroid    int     `yaml:"small_asteroid"`
	WaveBonusPerLevel int    `yaml:"wave_bonus_per_level"`
	WaveDelay        float64 `yaml:"wave_delay"` // Seconds between waves
}

// ExplosionConfig defines explosion particle parameters.
type ExplosionConfig struct {
	Duration         float64 `yaml:"duration"`
	ParticleMinSpeed float64 `yaml:"particle_min_speed"`
	ParticleMaxSpeed float64 `yaml:"particle_max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Asteroids.SpawnRate = 4.0
		cfg.Asteroids.MaxSpeed = cfg.Asteroids.MaxSpeed * 0.8
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Asteroids.SpawnRate = 2.0
		cfg.Asteroids.MaxSpeed = cfg.Asteroids.MaxSpeed * 1.3
	}
}
