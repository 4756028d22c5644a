package asteroids

import (
	"math"
	"math/rand"

	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// Particle counts by explosion size.
const (
	smallParticles  = 8
	mediumParticles = 12
	largeParticles  = 20
)

// Per-update particle shrink factor and the size below which a particle is
// pruned.
const (
	particleShrink  = 0.98
	particleMinSize = 0.5
)

var particleColors = []core.Color{
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorBrightWhite,
}

// Particle is one fragment of an explosion. Purely cosmetic, but its
// lifecycle is deterministic given a seeded RNG.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Size     float64
	Color    core.Color
	Lifetime float64
}

// Explosion is a transient particle group. It is finished once its own
// timer has expired and every particle has been pruned.
type Explosion struct {
	Position  core.Vec2
	Lifetime  float64
	Particles []Particle
}

// NewExplosion creates a particle group at the given position. Particle
// count follows the destroyed entity's size category.
func NewExplosion(pos core.Vec2, size Size, rng *rand.Rand, cfg config.ExplosionConfig) *Explosion {
	count := mediumParticles
	switch size {
	case SizeSmall:
		count = smallParticles
	case SizeLarge:
		count = largeParticles
	}

	e := &Explosion{
		Position:  pos,
		Lifetime:  cfg.Duration,
		Particles: make([]Particle, 0, count),
	}

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.ParticleMinSpeed + rng.Float64()*(cfg.ParticleMaxSpeed-cfg.ParticleMinSpeed)
		e.Particles = append(e.Particles, Particle{
			Position: pos,
			Velocity: core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     2 + rng.Float64()*2,
			Color:    particleColors[rng.Intn(len(particleColors))],
			Lifetime: 0.3 + rng.Float64()*0.5,
		})
	}
	return e
}

// Update advances the group by one tick: particles drift, shrink, and are
// pruned once expired or too small.
func (e *Explosion) Update(dt float64) {
	e.Lifetime -= dt

	live := e.Particles[:0]
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Lifetime -= dt
		p.Size *= particleShrink
		if p.Lifetime <= 0 || p.Size < particleMinSize {
			continue
		}
		live = append(live, *p)
	}
	e.Particles = live
}

// Finished reports whether the group can be removed.
func (e *Explosion) Finished() bool {
	return e.Lifetime <= 0 && len(e.Particles) == 0
}
