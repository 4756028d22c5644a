package asteroids

// Snapshot captures the observable game state for determinism testing and
// replay comparison.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Paused     bool
	Score      int
	Level      int
	Lives      int
	ShipX      float64
	ShipY      float64
	ShipRot    float64
	Asteroids  int
	Shots      int
	Explosions int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      g.state.Phase(),
		Paused:     g.state.Paused(),
		Score:      g.state.Score(),
		Level:      g.state.Level(),
		Asteroids:  g.reg.AsteroidCount(),
		Shots:      len(g.reg.Shots()),
		Explosions: len(g.state.Explosions()),
	}
	if ship := g.reg.Ship(); ship != nil {
		snap.Lives = ship.Lives
		snap.ShipX = ship.Position.X
		snap.ShipY = ship.Position.Y
		snap.ShipRot = ship.Rotation
	}
	return snap
}
