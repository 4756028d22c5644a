package asteroids

import (
	"testing"

	"github.com/termarcade/asteroids/internal/core"
)

func TestRegistryDefersAdditions(t *testing.T) {
	reg := NewRegistry()

	reg.AddAsteroid(NewAsteroid(core.Vec2{X: 1}, core.Vec2{}, 5))
	reg.AddShot(NewShot(core.Vec2{X: 2}, core.Vec2{}, testConfig().Shots))

	if len(reg.Asteroids()) != 0 || len(reg.Shots()) != 0 {
		t.Fatal("Staged entities should not be visible before Commit")
	}

	reg.Commit()
	if len(reg.Asteroids()) != 1 || len(reg.Shots()) != 1 {
		t.Error("Commit should apply staged insertions")
	}
}

func TestCommitSweepsDead(t *testing.T) {
	reg := NewRegistry()
	a1 := NewAsteroid(core.Vec2{X: 1}, core.Vec2{}, 5)
	a2 := NewAsteroid(core.Vec2{X: 2}, core.Vec2{}, 5)
	reg.AddAsteroid(a1)
	reg.AddAsteroid(a2)
	reg.Commit()

	a1.Kill()

	// Dead entities stay iterable until the commit.
	if len(reg.Asteroids()) != 2 {
		t.Fatal("Kill should not remove entities mid-frame")
	}
	if reg.AsteroidCount() != 1 {
		t.Errorf("AsteroidCount should skip dead entities, got %d", reg.AsteroidCount())
	}

	reg.Commit()
	if len(reg.Asteroids()) != 1 || reg.Asteroids()[0] != a2 {
		t.Error("Commit should sweep dead entities")
	}
}

func TestCommitSameFrameKillAndSpawn(t *testing.T) {
	reg := NewRegistry()
	parent := NewAsteroid(core.Vec2{X: 5}, core.Vec2{}, 40)
	reg.AddAsteroid(parent)
	reg.Commit()

	// A destroyed parent and its staged children coexist for the frame.
	parent.Kill()
	reg.AddAsteroid(NewAsteroid(core.Vec2{X: 5}, core.Vec2{}, 20))
	reg.AddAsteroid(NewAsteroid(core.Vec2{X: 5}, core.Vec2{}, 20))

	reg.Commit()
	if len(reg.Asteroids()) != 2 {
		t.Errorf("Expected 2 children after commit, got %d", len(reg.Asteroids()))
	}
	for _, a := range reg.Asteroids() {
		if a == parent {
			t.Error("Dead parent should be swept")
		}
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry()
	reg.SetShip(NewShip(core.Vec2{}, testConfig().Ship))
	reg.AddAsteroid(NewAsteroid(core.Vec2{}, core.Vec2{}, 5))
	reg.Commit()
	reg.AddShot(NewShot(core.Vec2{}, core.Vec2{}, testConfig().Shots))

	reg.Reset()
	if reg.Ship() != nil || len(reg.Asteroids()) != 0 || len(reg.Shots()) != 0 {
		t.Error("Reset should drop all entities")
	}

	reg.Commit()
	if len(reg.Shots()) != 0 {
		t.Error("Reset should also drop staged entities")
	}
}
