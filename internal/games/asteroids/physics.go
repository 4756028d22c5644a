package asteroids

import (
	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// moveBody advances a body by its velocity and wraps it at the field edges.
func moveBody(b *Body, dt, fieldW, fieldH float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Position = core.Wrap(b.Position, fieldW, fieldH, b.Radius)
	b.Age += dt
}

// StepShip advances the ship by one tick: respawn countdown, timers, motion,
// drag, and wrap. While respawning the ship skips all motion except the
// countdown itself.
func StepShip(s *Ship, dt, fieldW, fieldH float64, cfg config.ShipConfig) {
	if s.Respawning {
		s.RespawnTimer -= dt
		if s.RespawnTimer <= 0 {
			s.finishRespawn(cfg)
		}
		return
	}

	if s.InvulnerableTimer > 0 {
		s.InvulnerableTimer -= dt
	}
	if s.ShootCooldown > 0 {
		s.ShootCooldown -= dt
	}

	moveBody(&s.Body, dt, fieldW, fieldH)
	s.Velocity = s.Velocity.Scale(cfg.Drag)
}

// StepAsteroids advances every live asteroid by one tick.
func StepAsteroids(reg *Registry, dt, fieldW, fieldH float64) {
	for _, a := range reg.Asteroids() {
		if !a.Alive() {
			continue
		}
		moveBody(&a.Body, dt, fieldW, fieldH)
	}
}

// StepShots advances every live shot by one tick and expires shots whose
// lifetime has run out.
func StepShots(reg *Registry, dt, fieldW, fieldH float64) {
	for _, s := range reg.Shots() {
		if !s.Alive() {
			continue
		}
		moveBody(&s.Body, dt, fieldW, fieldH)
		s.Lifetime -= dt
		if s.Lifetime <= 0 {
			s.Kill()
		}
	}
}
