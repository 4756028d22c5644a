// Package asteroids implements the space-combat simulation: a controllable
// ship, border-spawned asteroids that split when destroyed, shots, and
// explosion effects, advanced on a fixed tick with screen-wrap boundaries.
// The package is pure and deterministic; rendering, input resolution, and
// score persistence live in the platform layer.
package asteroids

import (
	"math/rand"

	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// Category tags an entity kind for collision grouping and rendering.
type Category int

const (
	CategoryShip Category = iota
	CategoryAsteroid
	CategoryShot
)

// Size classifies an asteroid by radius. One threshold rule is used
// everywhere: radius >= maxRadius is Large, radius >= 2*minRadius is
// Medium, anything smaller is Small.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// String returns a human-readable name for the size.
func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	default:
		return "small"
	}
}

// Body is the shared entity header: every simulated object has a position,
// a velocity, a collision radius, and an age.
type Body struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	Age      float64

	alive bool
}

// Center implements the collider contract.
func (b *Body) Center() core.Vec2 {
	return b.Position
}

// CollisionRadius implements the collider contract.
func (b *Body) CollisionRadius() float64 {
	return b.Radius
}

// Alive reports whether the entity is still live. Dead entities are swept
// from the registry at the end-of-frame commit.
func (b *Body) Alive() bool {
	return b.alive
}

// Kill marks the entity dead. Removal is deferred to the registry commit.
func (b *Body) Kill() {
	b.alive = false
}

// Ship is the player-controlled entity.
type Ship struct {
	Body
	Rotation          float64 // Degrees, wrapped to [0, 360)
	Lives             int
	ShootCooldown     float64
	RespawnTimer      float64
	Respawning        bool
	InvulnerableTimer float64
}

// NewShip creates a ship at the given position.
func NewShip(pos core.Vec2, cfg config.ShipConfig) *Ship {
	return &Ship{
		Body:  Body{Position: pos, Radius: cfg.Radius, alive: true},
		Lives: cfg.Lives,
	}
}

// Rotate turns the ship by the given number of degrees.
func (s *Ship) Rotate(deg float64) {
	s.Rotation = core.NormalizeAngle(s.Rotation + deg)
}

// Thrust accelerates the ship along its heading. Negative accel reverses.
// Ignored while respawning.
func (s *Ship) Thrust(accel, dt float64) {
	if s.Respawning {
		return
	}
	s.Velocity = s.Velocity.Add(core.Forward(s.Rotation).Scale(accel * dt))
}

// CanShoot reports whether the ship may fire this frame.
func (s *Ship) CanShoot() bool {
	return s.ShootCooldown <= 0 && !s.Respawning
}

// Shoot fires a shot from the ship's nose along its heading.
// Returns nil while the cooldown is active or the ship is respawning.
func (s *Ship) Shoot(cfg config.AsteroidsConfig) *Shot {
	if !s.CanShoot() {
		return nil
	}
	forward := core.Forward(s.Rotation)
	spawn := s.Position.Add(forward.Scale(s.Radius))
	shot := NewShot(spawn, forward.Scale(cfg.Shots.Speed), cfg.Shots)
	s.ShootCooldown = cfg.Ship.ShootCooldown
	return shot
}

// Vulnerable reports whether a collision can cost the ship a life.
func (s *Ship) Vulnerable() bool {
	return !s.Respawning && s.InvulnerableTimer <= 0
}

// TakeDamage removes a life and begins the respawn countdown at the field
// center. Returns false if the ship was invulnerable or respawning.
func (s *Ship) TakeDamage(fieldW, fieldH float64, cfg config.ShipConfig) bool {
	if !s.Vulnerable() {
		return false
	}
	s.Lives--
	if s.Lives > 0 {
		s.startRespawn(fieldW, fieldH, cfg)
	}
	return true
}

func (s *Ship) startRespawn(fieldW, fieldH float64, cfg config.ShipConfig) {
	s.Respawning = true
	s.RespawnTimer = cfg.RespawnTime
	s.Position = core.Vec2{X: fieldW / 2, Y: fieldH / 2}
	s.Velocity = core.Vec2{}
}

func (s *Ship) finishRespawn(cfg config.ShipConfig) {
	s.Respawning = false
	s.InvulnerableTimer = cfg.InvulnerableTime
	s.Rotation = 0
}

// Asteroid is a drifting rock. Asteroids are created at the field border by
// the spawner or at a destroyed parent's position by Split.
type Asteroid struct {
	Body
}

// NewAsteroid creates an asteroid with the given position, velocity, and radius.
func NewAsteroid(pos, vel core.Vec2, radius float64) *Asteroid {
	return &Asteroid{
		Body: Body{Position: pos, Velocity: vel, Radius: radius, alive: true},
	}
}

// SizeCategory classifies the asteroid by the canonical threshold rule.
func (a *Asteroid) SizeCategory(cfg config.AsteroidConfig) Size {
	switch {
	case a.Radius >= cfg.MaxRadius():
		return SizeLarge
	case a.Radius >= cfg.MinRadius*2:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// ScoreValue returns the points awarded for destroying this asteroid.
// Smaller asteroids are worth more.
func (a *Asteroid) ScoreValue(cfg config.AsteroidsConfig) int {
	switch a.SizeCategory(cfg.Asteroids) {
	case SizeLarge:
		return cfg.Scoring.LargeAsteroid
	case SizeMedium:
		return cfg.Scoring.MediumAsteroid
	default:
		return cfg.Scoring.SmallAsteroid
	}
}

// Split destroys the asteroid and, if it is above the minimum radius,
// returns two children at the parent's position. Child velocities are the
// parent's rotated by a random deflection angle in each direction and scaled
// up; child radius is the parent's minus the minimum radius, so the sequence
// strictly decreases and split recursion always terminates.
func (a *Asteroid) Split(rng *rand.Rand, cfg config.AsteroidConfig) []*Asteroid {
	a.Kill()
	if a.Radius <= cfg.MinRadius {
		return nil
	}

	angle := cfg.SplitAngleMin + rng.Float64()*(cfg.SplitAngleMax-cfg.SplitAngleMin)
	newRadius := a.Radius - cfg.MinRadius

	left := NewAsteroid(a.Position, a.Velocity.Rotate(angle).Scale(cfg.SplitSpeedScale), newRadius)
	right := NewAsteroid(a.Position, a.Velocity.Rotate(-angle).Scale(cfg.SplitSpeedScale), newRadius)
	return []*Asteroid{left, right}
}

// Shot is a projectile fired by the ship. Velocity is set once at creation
// and never re-accelerated; the shot dies when its lifetime runs out.
type Shot struct {
	Body
	Lifetime float64
}

// NewShot creates a shot with the given position and velocity.
func NewShot(pos, vel core.Vec2, cfg config.ShotConfig) *Shot {
	return &Shot{
		Body:     Body{Position: pos, Velocity: vel, Radius: cfg.Radius, alive: true},
		Lifetime: cfg.Lifetime,
	}
}
