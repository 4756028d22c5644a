package asteroids

import (
	"math/rand"

	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// HUD rows reserved at the top of the screen; the playfield sits below.
const hudHeight = 2

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the asteroids simulation behind the core.Game contract.
type Game struct {
	cfg  config.AsteroidsConfig
	rng  *rand.Rand
	tick uint64

	reg     *Registry
	spawner *Spawner
	state   *State

	fieldW float64
	fieldH float64

	screenW int
	screenH int
	tickDT  float64

	// Set once asteroids have been on the field, so an empty field means a
	// cleared wave rather than a fresh start.
	waveHadAsteroids bool
}

// New creates a new asteroids game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	if rc.TickRate > 0 {
		g.tickDT = 1.0 / float64(rc.TickRate)
	} else {
		g.tickDT = 1.0 / 60.0
	}

	g.fieldW = float64(rc.ScreenW)
	g.fieldH = float64(rc.ScreenH - hudHeight)
	if g.fieldH < 1 {
		g.fieldH = 1
	}

	prevScores := []int(nil)
	if g.state != nil {
		prevScores = g.state.HighScores()
	}

	g.reg = NewRegistry()
	g.spawner = NewSpawner(g.rng, g.cfg.Asteroids)
	g.state = NewState(g.rng, g.cfg)
	if len(prevScores) > 0 {
		g.state.SetHighScores(prevScores)
	}
	g.waveHadAsteroids = false

	ship := NewShip(core.Vec2{X: g.fieldW / 2, Y: g.fieldH / 2}, g.cfg.Ship)
	g.reg.SetShip(ship)
}

// SetHighScores loads the historical score table, used for end-of-game
// qualification. Called by the platform layer after storage is opened.
func (g *Game) SetHighScores(scores []int) {
	if g.state != nil {
		g.state.SetHighScores(scores)
	}
}

// HighScores returns the retained score table.
func (g *Game) HighScores() []int {
	return g.state.HighScores()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	dt := g.tickDT

	if input.Has(core.ActionRestart) && g.state.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1.0/g.tickDT + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.state.TogglePause()
	}

	// Timers and explosion effects keep running on the game-over screen.
	g.state.Update(dt)

	if g.state.GameOver() || g.state.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(input, dt)

	ship := g.reg.Ship()
	StepShip(ship, dt, g.fieldW, g.fieldH, g.cfg.Ship)
	StepAsteroids(g.reg, dt, g.fieldW, g.fieldH)
	StepShots(g.reg, dt, g.fieldW, g.fieldH)

	if a := g.spawner.Update(dt, g.fieldW, g.fieldH); a != nil {
		g.reg.AddAsteroid(a)
	}

	g.resolveShotHits()
	g.resolveShipHits(ship)

	g.reg.Commit()
	g.checkWave()

	return core.StepResult{State: g.State()}
}

// applyInput translates held actions into ship intents for this tick.
func (g *Game) applyInput(input core.InputFrame, dt float64) {
	ship := g.reg.Ship()

	if input.Has(core.ActionTurnLeft) {
		ship.Rotate(-g.cfg.Ship.TurnSpeed * dt)
	}
	if input.Has(core.ActionTurnRight) {
		ship.Rotate(g.cfg.Ship.TurnSpeed * dt)
	}
	if input.Has(core.ActionThrust) {
		ship.Thrust(g.cfg.Ship.ThrustAccel, dt)
	}
	if input.Has(core.ActionReverse) {
		ship.Thrust(-g.cfg.Ship.ThrustAccel, dt)
	}
	if input.Has(core.ActionShoot) {
		if shot := ship.Shoot(g.cfg); shot != nil {
			g.reg.AddShot(shot)
			g.state.RecordShot()
		}
	}
}

// resolveShotHits destroys asteroids hit by shots, awards points, and stages
// split children. Entities killed earlier in the frame are skipped so a dead
// asteroid cannot be hit twice.
func (g *Game) resolveShotHits() {
	for _, pair := range FindCollisions(g.reg.Shots(), g.reg.Asteroids()) {
		shot, asteroid := pair.A, pair.B
		if !shot.Alive() || !asteroid.Alive() {
			continue
		}
		shot.Kill()

		g.state.AddScore(asteroid.ScoreValue(g.cfg))
		g.state.RecordAsteroidDestroyed()
		g.state.AddExplosion(asteroid.Position, asteroid.SizeCategory(g.cfg.Asteroids))

		for _, child := range asteroid.Split(g.rng, g.cfg.Asteroids) {
			g.reg.AddAsteroid(child)
		}
	}
}

// resolveShipHits handles ship-asteroid contact. The asteroid is always
// destroyed without points; the ship loses a life unless invulnerable.
func (g *Game) resolveShipHits(ship *Ship) {
	if !ship.Vulnerable() {
		return
	}
	for _, pair := range FindCollisions([]*Ship{ship}, g.reg.Asteroids()) {
		asteroid := pair.B
		if !asteroid.Alive() {
			continue
		}
		asteroid.Kill()
		g.state.AddExplosion(asteroid.Position, asteroid.SizeCategory(g.cfg.Asteroids))

		if !ship.TakeDamage(g.fieldW, g.fieldH, g.cfg.Ship) {
			continue
		}
		g.state.AddExplosion(ship.Position, SizeMedium)
		if ship.Lives <= 0 {
			ship.Kill()
			g.endGame()
			return
		}
		// Respawn teleports the ship away; remaining pairs are stale.
		return
	}
}

// endGame finishes the session and records the score if it qualifies.
func (g *Game) endGame() {
	g.state.SetGameOver()
	if g.state.Phase() == PhaseHighScore {
		g.state.RecordHighScore(g.state.Score())
	}
}

// checkWave signals wave completion once the field empties after having held
// asteroids. The spawner keeps running, so the next wave builds up on its own.
func (g *Game) checkWave() {
	count := g.reg.AsteroidCount()
	if count > 0 {
		g.waveHadAsteroids = true
		return
	}
	if g.waveHadAsteroids && !g.state.WaveComplete() {
		g.state.CompleteWave()
		g.waveHadAsteroids = false
	}
}

// Summary describes a finished run for persistence and display.
type Summary struct {
	Score     int
	Level     int
	Destroyed int
	Shots     int
	Accuracy  float64
	Duration  float64
}

// Summary returns the current session's result summary.
func (g *Game) Summary() Summary {
	st := g.state.Stats()
	return Summary{
		Score:     g.state.Score(),
		Level:     g.state.Level(),
		Destroyed: st.AsteroidsDestroyed,
		Shots:     st.ShotsFired,
		Accuracy:  st.Accuracy,
		Duration:  st.TimePlayed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
		Paused:   g.state.Paused(),
	}
}
