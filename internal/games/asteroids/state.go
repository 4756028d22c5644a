package asteroids

import (
	"math/rand"
	"sort"

	"github.com/termarcade/asteroids/internal/config"
	"github.com/termarcade/asteroids/internal/core"
)

// Phase identifies the gameplay state machine phase. Paused is a modifier
// on PhasePlaying rather than a phase of its own.
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseGameOver  Phase = "game_over"
	PhaseHighScore Phase = "high_score"
)

// How many historical scores are retained for qualification.
const highScoreSlots = 10

// Stats aggregates session statistics shown on the game-over screen.
type Stats struct {
	ShotsFired         int
	AsteroidsDestroyed int
	Accuracy           float64 // Percent, derived from the two counters
	TimePlayed         float64
}

// State owns score, lives-independent session progress, wave and bonus
// timers, the phase machine, and explosion-effect bookkeeping. It reacts to
// collision outcomes and wave-completion signals delivered by the game loop;
// it never inspects entities itself.
type State struct {
	rng *rand.Rand
	cfg config.AsteroidsConfig

	score           int
	level           int
	phase           Phase
	paused          bool
	waveComplete    bool
	waveTimer       float64
	bonusMultiplier float64
	bonusTimer      float64

	stats      Stats
	explosions []*Explosion
	highScores []int
}

// NewState creates a session state with the given random source (used for
// explosion particles).
func NewState(rng *rand.Rand, cfg config.AsteroidsConfig) *State {
	s := &State{rng: rng, cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the state for a new game. Loaded high scores survive the
// reset; they belong to the installation, not the session.
func (s *State) Reset() {
	s.score = 0
	s.level = 1
	s.phase = PhasePlaying
	s.paused = false
	s.waveComplete = false
	s.waveTimer = 0
	s.bonusMultiplier = 1.0
	s.bonusTimer = 0
	s.stats = Stats{}
	s.explosions = s.explosions[:0]
}

// Update advances the state machine clock. Gameplay timers (bonus, wave,
// time played) only run while playing and not paused; explosion bookkeeping
// always runs so effects finish even on the game-over screen.
func (s *State) Update(dt float64) {
	if s.phase == PhasePlaying && !s.paused {
		s.stats.TimePlayed += dt

		if s.bonusTimer > 0 {
			s.bonusTimer -= dt
			if s.bonusTimer <= 0 {
				s.bonusMultiplier = 1.0
			}
		}

		if s.waveComplete {
			s.waveTimer += dt
			if s.waveTimer >= s.cfg.Scoring.WaveDelay {
				s.startNextWave()
			}
		}
	}

	s.updateExplosions(dt)

	if s.stats.ShotsFired > 0 {
		s.stats.Accuracy = float64(s.stats.AsteroidsDestroyed) / float64(s.stats.ShotsFired) * 100
	}
}

// AddScore applies the bonus multiplier to points, adds the result to the
// score, and returns the awarded amount.
func (s *State) AddScore(points int) int {
	awarded := int(float64(points) * s.bonusMultiplier)
	s.score += awarded
	return awarded
}

// SetBonusMultiplier sets a temporary score multiplier that reverts to 1.0
// once the duration elapses.
func (s *State) SetBonusMultiplier(multiplier, duration float64) {
	s.bonusMultiplier = multiplier
	s.bonusTimer = duration
}

// CompleteWave marks the current wave as cleared and starts the intermission
// countdown. Signaled by the game loop when the live asteroid count reaches
// zero after having been nonzero.
func (s *State) CompleteWave() {
	s.waveComplete = true
	s.waveTimer = 0
}

// startNextWave advances the level and grants the wave-completion bonus
// through the regular scoring path so an active multiplier applies.
func (s *State) startNextWave() {
	s.level++
	s.waveComplete = false
	s.waveTimer = 0
	s.AddScore(s.level * s.cfg.Scoring.WaveBonusPerLevel)
}

// TogglePause flips the pause modifier. Only meaningful while playing.
func (s *State) TogglePause() {
	if s.phase == PhasePlaying {
		s.paused = !s.paused
	}
}

// SetGameOver ends the session. If the final score qualifies against the
// retained table the phase moves to high-score entry instead.
func (s *State) SetGameOver() {
	if s.IsHighScore(s.score) {
		s.phase = PhaseHighScore
	} else {
		s.phase = PhaseGameOver
	}
}

// IsHighScore reports whether a score qualifies for the retained table:
// it beats the lowest retained score. An empty table qualifies any score.
func (s *State) IsHighScore(score int) bool {
	if len(s.highScores) == 0 {
		return true
	}
	return score > minInt(s.highScores)
}

// RecordHighScore inserts a score into the retained table, keeping it
// sorted descending and capped.
func (s *State) RecordHighScore(score int) {
	s.highScores = append(s.highScores, score)
	sort.Sort(sort.Reverse(sort.IntSlice(s.highScores)))
	if len(s.highScores) > highScoreSlots {
		s.highScores = s.highScores[:highScoreSlots]
	}
}

// SetHighScores loads the historical score table from the persistence
// collaborator. The state never touches storage itself.
func (s *State) SetHighScores(scores []int) {
	s.highScores = append(s.highScores[:0], scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(s.highScores)))
	if len(s.highScores) > highScoreSlots {
		s.highScores = s.highScores[:highScoreSlots]
	}
}

// HighScores returns the retained table, sorted descending.
func (s *State) HighScores() []int {
	return s.highScores
}

// RecordShot counts a fired shot for the accuracy statistic.
func (s *State) RecordShot() {
	s.stats.ShotsFired++
}

// RecordAsteroidDestroyed counts a destroyed asteroid.
func (s *State) RecordAsteroidDestroyed() {
	s.stats.AsteroidsDestroyed++
}

// AddExplosion creates an explosion effect at the given position sized by
// the destroyed entity's category.
func (s *State) AddExplosion(pos core.Vec2, size Size) {
	s.explosions = append(s.explosions, NewExplosion(pos, size, s.rng, s.cfg.Explosions))
}

// updateExplosions advances all effects and removes finished groups.
func (s *State) updateExplosions(dt float64) {
	live := s.explosions[:0]
	for _, e := range s.explosions {
		e.Update(dt)
		if !e.Finished() {
			live = append(live, e)
		}
	}
	s.explosions = live
}

// Explosions returns the live explosion effects for rendering.
func (s *State) Explosions() []*Explosion {
	return s.explosions
}

// Accessors for the render/UI surface.

func (s *State) Score() int               { return s.score }
func (s *State) Level() int               { return s.level }
func (s *State) Phase() Phase             { return s.phase }
func (s *State) Paused() bool             { return s.paused }
func (s *State) GameOver() bool           { return s.phase != PhasePlaying }
func (s *State) WaveComplete() bool       { return s.waveComplete }
func (s *State) WaveTimer() float64       { return s.waveTimer }
func (s *State) BonusMultiplier() float64 { return s.bonusMultiplier }
func (s *State) Stats() Stats             { return s.stats }

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
