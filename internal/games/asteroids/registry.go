package asteroids

// Registry owns all live simulation entities. Other components only hold
// transient references during a frame's processing; additions and removals
// requested mid-frame are staged and applied by Commit at the end of the
// frame, so collection iteration is never invalidated.
type Registry struct {
	ship      *Ship
	asteroids []*Asteroid
	shots     []*Shot

	stagedAsteroids []*Asteroid
	stagedShots     []*Shot
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		asteroids: make([]*Asteroid, 0, 32),
		shots:     make([]*Shot, 0, 32),
	}
}

// Reset drops all entities, staged and live.
func (r *Registry) Reset() {
	r.ship = nil
	r.asteroids = r.asteroids[:0]
	r.shots = r.shots[:0]
	r.stagedAsteroids = r.stagedAsteroids[:0]
	r.stagedShots = r.stagedShots[:0]
}

// SetShip installs the player ship. The ship persists across waves; it is
// never swept by Commit.
func (r *Registry) SetShip(s *Ship) {
	r.ship = s
}

// Ship returns the player ship, or nil before the session starts.
func (r *Registry) Ship() *Ship {
	return r.ship
}

// AddAsteroid stages an asteroid for insertion at the next Commit.
func (r *Registry) AddAsteroid(a *Asteroid) {
	r.stagedAsteroids = append(r.stagedAsteroids, a)
}

// AddShot stages a shot for insertion at the next Commit.
func (r *Registry) AddShot(s *Shot) {
	r.stagedShots = append(r.stagedShots, s)
}

// Asteroids returns the live asteroid collection. Callers must not append
// or remove; use AddAsteroid and Kill plus Commit.
func (r *Registry) Asteroids() []*Asteroid {
	return r.asteroids
}

// Shots returns the live shot collection.
func (r *Registry) Shots() []*Shot {
	return r.shots
}

// AsteroidCount returns the number of asteroids that are still alive,
// ignoring entities killed earlier in the current frame.
func (r *Registry) AsteroidCount() int {
	n := 0
	for _, a := range r.asteroids {
		if a.Alive() {
			n++
		}
	}
	return n
}

// Commit applies staged insertions and sweeps dead entities. Called exactly
// once per frame, after all detection and resolution passes.
func (r *Registry) Commit() {
	live := r.asteroids[:0]
	for _, a := range r.asteroids {
		if a.Alive() {
			live = append(live, a)
		}
	}
	r.asteroids = append(live, r.stagedAsteroids...)
	r.stagedAsteroids = r.stagedAsteroids[:0]

	liveShots := r.shots[:0]
	for _, s := range r.shots {
		if s.Alive() {
			liveShots = append(liveShots, s)
		}
	}
	r.shots = append(liveShots, r.stagedShots...)
	r.stagedShots = r.stagedShots[:0]
}
