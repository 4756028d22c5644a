package asteroids

import (
	"math/rand"
	"testing"

	"github.com/termarcade/asteroids/internal/core"
)

func newTestState() *State {
	return NewState(rand.New(rand.NewSource(1)), testConfig())
}

func TestAddScoreAppliesMultiplier(t *testing.T) {
	s := newTestState()

	if got := s.AddScore(100); got != 100 {
		t.Errorf("Base multiplier should award 100, got %d", got)
	}

	s.SetBonusMultiplier(2.0, 10.0)
	if got := s.AddScore(100); got != 200 {
		t.Errorf("2x multiplier should award 200, got %d", got)
	}
	if s.Score() != 300 {
		t.Errorf("Expected total 300, got %d", s.Score())
	}
}

func TestAddScoreFloorsFractions(t *testing.T) {
	s := newTestState()

	s.SetBonusMultiplier(1.5, 10.0)
	if got := s.AddScore(25); got != 37 {
		t.Errorf("1.5 x 25 should floor to 37, got %d", got)
	}
}

func TestBonusMultiplierExpires(t *testing.T) {
	s := newTestState()

	s.SetBonusMultiplier(3.0, 1.0)
	s.Update(0.5)
	if s.BonusMultiplier() != 3.0 {
		t.Errorf("Multiplier should still be active, got %.1f", s.BonusMultiplier())
	}

	s.Update(0.6)
	if s.BonusMultiplier() != 1.0 {
		t.Errorf("Multiplier should revert to 1.0 after expiry, got %.1f", s.BonusMultiplier())
	}
}

func TestWaveCompletionAwardsLevelBonus(t *testing.T) {
	s := newTestState()
	cfg := testConfig()

	s.CompleteWave()
	if !s.WaveComplete() {
		t.Fatal("Wave should be marked complete")
	}

	// Intermission runs for the configured delay, then the level advances.
	s.Update(cfg.Scoring.WaveDelay - 0.1)
	if s.Level() != 1 {
		t.Errorf("Level should not advance before the delay, got %d", s.Level())
	}

	s.Update(0.2)
	if s.Level() != 2 {
		t.Errorf("Level should advance to 2, got %d", s.Level())
	}
	if s.WaveComplete() {
		t.Error("Wave flag should clear when the next wave starts")
	}

	wantBonus := 2 * cfg.Scoring.WaveBonusPerLevel
	if s.Score() != wantBonus {
		t.Errorf("Wave bonus should be %d, got %d", wantBonus, s.Score())
	}
}

func TestWaveBonusRespectsMultiplier(t *testing.T) {
	s := newTestState()
	cfg := testConfig()

	s.SetBonusMultiplier(2.0, 60.0)
	s.CompleteWave()
	s.Update(cfg.Scoring.WaveDelay + 0.1)

	wantBonus := 2 * 2 * cfg.Scoring.WaveBonusPerLevel
	if s.Score() != wantBonus {
		t.Errorf("Doubled wave bonus should be %d, got %d", wantBonus, s.Score())
	}
}

func TestPauseFreezesGameplayTimers(t *testing.T) {
	s := newTestState()
	cfg := testConfig()

	s.CompleteWave()
	s.TogglePause()
	s.Update(cfg.Scoring.WaveDelay * 2)

	if s.Level() != 1 {
		t.Errorf("Wave timer should not run while paused, level %d", s.Level())
	}
	if s.Stats().TimePlayed != 0 {
		t.Error("Time played should not accumulate while paused")
	}

	s.TogglePause()
	s.Update(cfg.Scoring.WaveDelay + 0.1)
	if s.Level() != 2 {
		t.Errorf("Wave timer should resume after unpause, level %d", s.Level())
	}
}

func TestHighScoreQualification(t *testing.T) {
	s := newTestState()

	if !s.IsHighScore(0) {
		t.Error("Any score should qualify against an empty table")
	}

	s.SetHighScores([]int{1000, 800, 600, 400, 200})
	if !s.IsHighScore(2000) {
		t.Error("2000 should qualify")
	}
	if !s.IsHighScore(300) {
		t.Error("300 should beat the table minimum of 200")
	}
	if s.IsHighScore(100) {
		t.Error("100 should not qualify")
	}
	if s.IsHighScore(200) {
		t.Error("Equal to the minimum should not qualify")
	}
}

func TestRecordHighScoreKeepsTopTen(t *testing.T) {
	s := newTestState()

	for i := 1; i <= 12; i++ {
		s.RecordHighScore(i * 100)
	}

	scores := s.HighScores()
	if len(scores) != 10 {
		t.Fatalf("Table should cap at 10 entries, got %d", len(scores))
	}
	if scores[0] != 1200 {
		t.Errorf("Top score should be 1200, got %d", scores[0])
	}
	if scores[9] != 300 {
		t.Errorf("Lowest retained score should be 300, got %d", scores[9])
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[i-1] {
			t.Fatal("Table should be sorted descending")
		}
	}
}

func TestSetGameOverPhase(t *testing.T) {
	s := newTestState()
	s.SetHighScores([]int{1000, 800, 600, 400, 200})

	s.AddScore(100)
	s.SetGameOver()
	if s.Phase() != PhaseGameOver {
		t.Errorf("Non-qualifying score should end in game_over, got %s", s.Phase())
	}

	s2 := newTestState()
	s2.SetHighScores([]int{1000, 800, 600, 400, 200})
	s2.AddScore(5000)
	s2.SetGameOver()
	if s2.Phase() != PhaseHighScore {
		t.Errorf("Qualifying score should end in high_score, got %s", s2.Phase())
	}
}

func TestHighScoresSurviveReset(t *testing.T) {
	s := newTestState()
	s.SetHighScores([]int{500, 300})
	s.AddScore(999)

	s.Reset()
	if s.Score() != 0 {
		t.Error("Reset should zero the score")
	}
	if len(s.HighScores()) != 2 {
		t.Error("High score table should survive a reset")
	}
}

func TestExplosionLifecycle(t *testing.T) {
	s := newTestState()

	s.AddExplosion(core.Vec2{X: 10, Y: 10}, SizeLarge)
	if len(s.Explosions()) != 1 {
		t.Fatal("Explosion should be registered")
	}
	if got := len(s.Explosions()[0].Particles); got != largeParticles {
		t.Errorf("Large explosion should emit %d particles, got %d", largeParticles, got)
	}

	// Run well past the maximum particle lifetime and group duration.
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60.0)
	}
	if len(s.Explosions()) != 0 {
		t.Error("Finished explosions should be pruned")
	}
}

func TestExplosionParticleCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := testConfig()

	cases := []struct {
		size Size
		want int
	}{
		{SizeSmall, smallParticles},
		{SizeMedium, mediumParticles},
		{SizeLarge, largeParticles},
	}
	for _, c := range cases {
		e := NewExplosion(core.Vec2{}, c.size, rng, cfg.Explosions)
		if len(e.Particles) != c.want {
			t.Errorf("%s explosion should emit %d particles, got %d",
				c.size, c.want, len(e.Particles))
		}
	}
}

func TestExplosionParticlesShrinkAndDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := testConfig()

	e := NewExplosion(core.Vec2{X: 50, Y: 50}, SizeMedium, rng, cfg.Explosions)
	before := make([]float64, len(e.Particles))
	for i, p := range e.Particles {
		before[i] = p.Size
	}

	e.Update(0.05)
	for i, p := range e.Particles {
		if p.Size >= before[i] {
			t.Fatal("Particles should shrink every update")
		}
		if p.Position == (core.Vec2{X: 50, Y: 50}) {
			t.Fatal("Particles should drift away from the origin")
		}
	}
}

func TestAccuracyStat(t *testing.T) {
	s := newTestState()

	for i := 0; i < 4; i++ {
		s.RecordShot()
	}
	s.RecordAsteroidDestroyed()
	s.Update(1.0 / 60.0)

	if got := s.Stats().Accuracy; got != 25.0 {
		t.Errorf("Accuracy should be 25%%, got %.1f", got)
	}
}
