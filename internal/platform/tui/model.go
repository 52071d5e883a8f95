package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/catnip-games/omas-adventure/internal/core"
	"github.com/catnip-games/omas-adventure/internal/session"
	"github.com/catnip-games/omas-adventure/internal/storage"
)

// view selects what the terminal shows: the session's screens, or the
// high-score table reached with Tab from the title.
type view int

const (
	viewSession view = iota
	viewScores
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	sess   *session.Session
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	config core.RuntimeConfig
	input  core.InputFrame

	view   view
	scores ScoreboardModel

	quitting bool
}

// NewModel creates a model around an already-wired session.
func NewModel(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		sess:   sess,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   NewKeyMapper(),
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.view == viewScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		if m.scores.quitting {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scores.goingBack {
			m.view = viewSession
		}
		return m, cmd
	}

	// Tab opens the score table from the title; everywhere else it
	// belongs to the character switch.
	if m.sess.CurrentScreen() == session.ScreenTitle && msg.String() == "tab" {
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, nil
	}

	if m.sess.CurrentScreen() == session.ScreenNameEntry {
		m.keys.MapTextKey(msg, &m.input)
	} else {
		m.keys.MapKeyToFrame(msg, &m.input)
	}

	return m, nil
}

// handleResize processes window resize events. The world projection
// rescales per frame, so no game reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.view == viewScores {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleTick advances the session one frame and keeps the loop going.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.view == viewSession {
		m.sess.Step(m.input)
		m.input.Clear()

		if m.sess.Done() {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot dumps the current screen to ~/.oma/screenshots.
func (m *Model) saveScreenshot() {
	m.sess.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".oma", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("oma_%s.txt", timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.view == viewScores {
		return m.scores.View()
	}

	m.sess.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program over the given session.
func Run(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(sess, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
