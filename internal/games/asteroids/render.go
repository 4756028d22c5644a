package asteroids

import (
	"fmt"
	"math"

	"github.com/termarcade/asteroids/internal/core"
)

// Terminal cells are roughly twice as tall as wide; stretching the x axis
// keeps drawn circles visually round.
const xAspect = 2.0

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderAsteroids(dst)
	g.renderShots(dst)
	g.renderExplosions(dst)
	g.renderShip(dst)

	switch {
	case g.state.Phase() == PhaseHighScore:
		g.renderGameOver(dst, "NEW HIGH SCORE!")
	case g.state.Phase() == PhaseGameOver:
		g.renderGameOver(dst, "GAME OVER")
	case g.state.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.state.WaveComplete():
		bonus := (g.state.Level() + 1) * g.cfg.Scoring.WaveBonusPerLevel
		g.renderOverlay(dst,
			fmt.Sprintf("Wave %d cleared!", g.state.Level()),
			fmt.Sprintf("Bonus: %d", bonus))
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Asteroids — Score: %d  Level: %d  Lives: %d",
		g.state.Score(), g.state.Level(), g.livesLeft())
	if m := g.state.BonusMultiplier(); m > 1.0 {
		hud += fmt.Sprintf("  Bonus: x%.1f", m)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) livesLeft() int {
	if ship := g.reg.Ship(); ship != nil {
		if ship.Lives < 0 {
			return 0
		}
		return ship.Lives
	}
	return 0
}

// renderShip draws the player ship as a heading glyph. Hidden while
// respawning; flashes while invulnerable.
func (g *Game) renderShip(dst *core.Screen) {
	ship := g.reg.Ship()
	if ship == nil || !ship.Alive() || ship.Respawning {
		return
	}
	if ship.InvulnerableTimer > 0 && int(ship.InvulnerableTimer*10)%2 == 0 {
		return
	}

	x, y := g.toScreen(ship.Position)
	dst.SetCell(x, y, shipGlyph(ship.Rotation), core.ColorBrightCyan)
}

// shipGlyph picks an arrow for the nearest cardinal heading.
func shipGlyph(rotation float64) rune {
	switch {
	case rotation >= 315 || rotation < 45:
		return '▲'
	case rotation < 135:
		return '▶'
	case rotation < 225:
		return '▼'
	default:
		return '◀'
	}
}

// renderAsteroids draws each asteroid as a sampled ellipse outline.
func (g *Game) renderAsteroids(dst *core.Screen) {
	for _, a := range g.reg.Asteroids() {
		if !a.Alive() {
			continue
		}

		glyph := 'o'
		if a.SizeCategory(g.cfg.Asteroids) == SizeLarge {
			glyph = 'O'
		}

		cx, cy := a.Position.X, a.Position.Y
		steps := int(math.Max(8, a.Radius*8))
		for i := 0; i < steps; i++ {
			angle := float64(i) / float64(steps) * 2 * math.Pi
			px := cx + math.Cos(angle)*a.Radius*xAspect
			py := cy + math.Sin(angle)*a.Radius
			x, y := g.toScreen(core.Vec2{X: px, Y: py})
			dst.SetCell(x, y, glyph, core.ColorWhite)
		}
	}
}

// renderShots draws projectiles.
func (g *Game) renderShots(dst *core.Screen) {
	for _, s := range g.reg.Shots() {
		if !s.Alive() {
			continue
		}
		x, y := g.toScreen(s.Position)
		dst.SetCell(x, y, '•', core.ColorBrightYellow)
	}
}

// renderExplosions draws particle effects, rune shrinking with the particle.
func (g *Game) renderExplosions(dst *core.Screen) {
	for _, e := range g.state.Explosions() {
		for i := range e.Particles {
			p := &e.Particles[i]
			x, y := g.toScreen(p.Position)
			dst.SetCell(x, y, particleGlyph(p.Size), p.Color)
		}
	}
}

func particleGlyph(size float64) rune {
	switch {
	case size >= 3:
		return '*'
	case size >= 1.5:
		return '+'
	default:
		return '·'
	}
}

// toScreen maps a field position to screen coordinates below the HUD.
func (g *Game) toScreen(p core.Vec2) (int, int) {
	return int(p.X + 0.5), int(p.Y+0.5) + hudHeight
}

// renderGameOver draws the end-of-game stats panel.
func (g *Game) renderGameOver(dst *core.Screen, title string) {
	st := g.state.Stats()
	lines := []string{
		title,
		"",
		fmt.Sprintf("Final Score: %d", g.state.Score()),
		fmt.Sprintf("Level Reached: %d", g.state.Level()),
		fmt.Sprintf("Asteroids Destroyed: %d", st.AsteroidsDestroyed),
		fmt.Sprintf("Shots Fired: %d", st.ShotsFired),
		fmt.Sprintf("Accuracy: %.1f%%", st.Accuracy),
		fmt.Sprintf("Time Played: %.0fs", st.TimePlayed),
		"",
		"Press R to restart, Q to quit",
	}
	g.renderPanel(dst, lines)
}

// renderOverlay draws a small centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	g.renderPanel(dst, []string{line1, "", line2})
}

// renderPanel draws a centered bordered box holding the given lines.
func (g *Game) renderPanel(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		x := boxX + (boxW-len(l))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
