package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"wordflood/internal/auth"
	"wordflood/internal/core"
	"wordflood/internal/dict"
	"wordflood/internal/games/flood"
	"wordflood/internal/registry"
	"wordflood/internal/storage"
)

// submitter is the optional game capability for asynchronous word checks.
// The game hands out pending submissions; the platform consults the
// dictionary off the simulation loop and feeds the verdict back.
type submitter interface {
	TakePendingSubmission() (flood.Submission, bool)
	ResolveSubmission(sub flood.Submission, valid bool) []core.Event
}

// wordCheckedMsg carries a dictionary verdict back into the update loop.
type wordCheckedMsg struct {
	sub   flood.Submission
	valid bool
}

// checkWordCmd runs a dictionary lookup as a Bubble Tea command.
// Lookup failures count as invalid; an unreachable dictionary must not
// let arbitrary strings score.
func checkWordCmd(checker dict.Checker, sub flood.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		valid, err := checker.Check(ctx, sub.Word)
		if err != nil {
			log.Debug("Word check failed", "word", sub.Word, "error", err)
			valid = false
		}
		return wordCheckedMsg{sub: sub, valid: valid}
	}
}

// GameModel is the Bubble Tea model for one play session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	checker    dict.Checker
	identity   *auth.Identity
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
	saveNotice string
}

// NewGameModel creates a model for the given game variant.
// identity may be nil; scores are then shown but not persisted.
func NewGameModel(game registry.Game, store *storage.Store, checker dict.Checker, identity *auth.Identity, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	km := NewKeyMapper()
	if strings.HasSuffix(game.ID(), "_typed") {
		km = NewTypedKeyMapper()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		checker:    checker,
		identity:   identity,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  km,
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	case wordCheckedMsg:
		return m.handleWordChecked(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.GameOver) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from the game-over or pause screen
	if key := msg.String(); (key == "b" || key == "esc") && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over gets a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.saveNotice = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	// The game queues one word at a time; look it up off the loop
	if s, ok := m.game.(submitter); ok && m.checker != nil {
		if sub, pending := s.TakePendingSubmission(); pending {
			cmds = append(cmds, checkWordCmd(m.checker, sub))
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// handleWordChecked feeds a dictionary verdict back into the game.
func (m GameModel) handleWordChecked(msg wordCheckedMsg) (tea.Model, tea.Cmd) {
	if s, ok := m.game.(submitter); ok {
		s.ResolveSubmission(msg.sub, msg.valid)
		m.gameState = m.game.State()
	}
	return m, nil
}

// saveScore persists the final score once per game over.
// Only signed-in players get on the board.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	if m.gameState.Score <= 0 {
		return
	}
	if m.identity == nil {
		m.saveNotice = "Sign in (wordflood login) to save your score"
		return
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.identity.UserID, m.game.ID(), m.gameState.Score); err != nil {
		log.Warn("Could not save score", "error", err)
		m.saveNotice = "Score could not be saved"
		return
	}
	m.saveNotice = "Score saved as " + m.identity.Username
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.gameState.GameOver && m.saveNotice != "" {
		out += "\n" + centerText(m.saveNotice, m.config.ScreenW)
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, checker dict.Checker, identity *auth.Identity, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, checker, identity, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
