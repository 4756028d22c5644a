package asteroids

import (
	"math/rand"

	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// spawnEdge describes one field border: a base inward direction and a
// function placing a spawn point just outside the visible bounds.
type spawnEdge struct {
	direction core.Vec2
	position  func(t, radius, fieldW, fieldH float64) core.Vec2
}

var spawnEdges = []spawnEdge{
	{ // Left edge, drifting right
		direction: core.Vec2{X: 1, Y: 0},
		position: func(t, r, w, h float64) core.Vec2 {
			return core.Vec2{X: -r, Y: t * h}
		},
	},
	{ // Right edge, drifting left
		direction: core.Vec2{X: -1, Y: 0},
		position: func(t, r, w, h float64) core.Vec2 {
			return core.Vec2{X: w + r, Y: t * h}
		},
	},
	{ // Top edge, drifting down
		direction: core.Vec2{X: 0, Y: 1},
		position: func(t, r, w, h float64) core.Vec2 {
			return core.Vec2{X: t * w, Y: -r}
		},
	},
	{ // Bottom edge, drifting up
		direction: core.Vec2{X: 0, Y: -1},
		position: func(t, r, w, h float64) core.Vec2 {
			return core.Vec2{X: t * w, Y: h + r}
		},
	},
}

// Spawner periodically introduces new asteroids at the field border.
// Randomness comes from an injected source so runs are reproducible.
type Spawner struct {
	timer float64
	rng   *rand.Rand
	cfg   config.AsteroidConfig
}

// NewSpawner creates a spawner with the given random source.
func NewSpawner(rng *rand.Rand, cfg config.AsteroidConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Reset clears the spawn timer.
func (sp *Spawner) Reset() {
	sp.timer = 0
}

// Update accumulates dt and, once the configured spawn rate elapses, returns
// exactly one new asteroid placed on a random border edge with an
// inward-biased velocity. Returns nil on frames with no spawn.
func (sp *Spawner) Update(dt, fieldW, fieldH float64) *Asteroid {
	sp.timer += dt
	if sp.timer < sp.cfg.SpawnRate {
		return nil
	}
	sp.timer = 0

	edge := spawnEdges[sp.rng.Intn(len(spawnEdges))]
	speed := sp.cfg.MinSpeed + sp.rng.Float64()*(sp.cfg.MaxSpeed-sp.cfg.MinSpeed)
	kind := 1 + sp.rng.Intn(sp.cfg.Kinds)
	radius := sp.cfg.MinRadius * float64(kind)

	// Deflect up to 30 degrees off the straight inward direction so
	// asteroids cross the field at varied angles.
	velocity := edge.direction.Scale(speed).Rotate(sp.rng.Float64()*60 - 30)
	position := edge.position(sp.rng.Float64(), radius, fieldW, fieldH)

	return NewAsteroid(position, velocity, radius)
}
