package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			Radius:           1.5,
			TurnSpeed:        180.0,
			ThrustAccel:      20.0,
			Drag:             0.99,
			Lives:            3,
			RespawnTime:      2.0,
			InvulnerableTime: 2.0,
			ShootCooldown:    0.15,
		},
		Asteroids: AsteroidConfig{
			MinRadius:       2.0,
			Kinds:           3,
			SpawnRate:       3.0,
			MinSpeed:        3.0,
			MaxSpeed:        8.0,
			SplitAngleMin:   20.0,
			SplitAngleMax:   50.0,
			SplitSpeedScale: 1.2,
		},
		Shots: ShotConfig{
			Radius:   0.5,
			Speed:    30.0,
			Lifetime: 3.0,
		},
		Scoring: ScoringConfig{
			LargeAsteroid:     20,
			MediumAsteroid:    50,
			SmallAsteroid:     100,
			WaveBonusPerLevel: 100,
			WaveDelay:         3.0,
		},
		Explosions: ExplosionConfig{
			Duration:         0.8,
			ParticleMinSpeed: 4.0,
			ParticleMaxSpeed: 10.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML configuration.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
