package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-chomper/internal/chase"
	"github.com/vovakirdan/tui-chomper/internal/chase/layout"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/match"
	"github.com/vovakirdan/tui-chomper/internal/registry"
	"github.com/vovakirdan/tui-chomper/internal/storage"
)

// matchInfo is implemented by games that can describe their current round
// for the match log. Games without it still get plain score rows.
type matchInfo interface {
	Board() layout.Layout
	Mode() match.Mode
	Ticks() uint64
}

// Model is the Bubble Tea model for running a game round. The same model
// serves local play and SSH sessions; the SSH flow wraps it in SessionModel
// to add the menu loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	pacer      *chase.Pacer
	lastFrame  time.Time
	player     string
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	recorded   bool // round already written to storage
}

// NewModel creates a model for the given game. An empty sessionID gets a
// fresh UUID; rounds sharing a sessionID group together in the match log.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player, sessionID string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		pacer:      chase.NewPacer(cfg.TickRate),
		player:     player,
		sessionID:  sessionID,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the render loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	}

	// B/Esc leaves the round once it is over or paused. SessionModel
	// intercepts backToMenu and swallows the quit; local runs exit the
	// program and let the caller reopen the selector.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.recordAbandoned()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize so the board re-centers. This restarts a live round;
	// preserving play across a resize is not worth the state surgery.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation. The pacer converts elapsed wall-clock
// time into a whole number of fixed steps, so a slow terminal drops render
// frames instead of slowing the game down.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.pacer.Step() // first frame runs exactly one step
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	steps := m.pacer.Advance(elapsed)
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if m.gameState.GameOver {
			break
		}
	}

	// Record the round on game over (once)
	if m.gameState.GameOver && !m.recorded {
		m.recordFinished()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordFinished writes the score and match rows for a completed round.
func (m *Model) recordFinished() {
	m.recorded = true
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	info, ok := m.game.(matchInfo)
	if !ok {
		return
	}
	outcome := match.OutcomeCaught
	if m.gameState.Won {
		outcome = match.OutcomeCleared
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(match.Record{
		SessionID: m.sessionID,
		Player:    m.player,
		GameID:    m.game.ID(),
		BoardID:   info.Board().ID,
		Mode:      info.Mode(),
		Outcome:   outcome,
		Score:     m.gameState.Score,
		Ticks:     info.Ticks(),
	})
}

// recordAbandoned logs a round the player walked away from. Completed
// rounds are recorded by handleTick; this covers quit and back-to-menu.
func (m *Model) recordAbandoned() {
	if m.recorded || m.store == nil || m.gameState.GameOver {
		return
	}
	info, ok := m.game.(matchInfo)
	if !ok || info.Ticks() == 0 {
		return
	}
	m.recorded = true
	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(match.Record{
		SessionID: m.sessionID,
		Player:    m.player,
		GameID:    m.game.ID(),
		BoardID:   info.Board().ID,
		Mode:      info.Mode(),
		Outcome:   match.OutcomeQuit,
		Score:     m.gameState.Score,
		Ticks:     info.Ticks(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".chomper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model and blocks until
// the round ends. Returns true when the player backed out to the menu
// rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player, sessionID string) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, player, sessionID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
