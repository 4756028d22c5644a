package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termarcade/asteroids/internal/core"
	"github.com/termarcade/asteroids/internal/games/asteroids"
	"github.com/termarcade/asteroids/internal/storage"
)

// Historical scores handed to the game for end-of-run qualification.
const highScoreSeedCount = 10

// HighScoreAware is implemented by games that compare the final score
// against a historical table.
type HighScoreAware interface {
	SetHighScores(scores []int)
}

// SummaryProvider is implemented by games that can report a full session
// result for persistence.
type SummaryProvider interface {
	Summary() asteroids.Summary
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	scoreSaved bool // Whether the result was saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedHighScores()
	return tickCmd(m.config.TickRate)
}

// seedHighScores loads the historical score table into the game. With no
// recorded results the classic starter table is used, so early scores still
// have a bar to clear.
func (m Model) seedHighScores() {
	aware, ok := m.game.(HighScoreAware)
	if !ok {
		return
	}

	var scores []int
	if m.store != nil {
		if loaded, err := m.store.TopScores(highScoreSeedCount); err == nil {
			scores = loaded
		}
	}
	if len(scores) == 0 {
		scores = []int{1000, 800, 600, 400, 200}
	}

	aware.SetHighScores(scores)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new field dimensions; an ended game keeps its
	// final screen.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.seedHighScores()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	// A restart flipped GameOver back off: arm the next save.
	if m.gameState.GameOver && !result.State.GameOver {
		m.scoreSaved = false
	}
	m.gameState = result.State

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished session. Best-effort: a storage failure
// never interrupts play.
func (m Model) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	if provider, ok := m.game.(SummaryProvider); ok {
		sum := provider.Summary()
		//nolint:errcheck // Best-effort save
		m.store.SaveResult(storage.Result{
			Score:     sum.Score,
			Level:     sum.Level,
			Destroyed: sum.Destroyed,
			Shots:     sum.Shots,
			Accuracy:  sum.Accuracy,
			Duration:  sum.Duration,
		})
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{Score: m.gameState.Score})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
