// Package tui implements the interactive terminal front-end.
package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/tui/components"
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current screen of the TUI.
type State int

const (
	StateForm State = iota
	StateResults
)

// Model is the top-level application model. It composes the navbar, the
// upload form and, once an analysis has arrived, the results view.
type Model struct {
	theme      themes.Theme
	help       help.Model
	navbar     components.NavbarModel
	upload     components.UploadModel
	results    components.ResultsModel
	keymap     KeyMap
	config     Config
	width      int
	height     int
	state      State
	hasResults bool
	showHelp   bool
	quitting   bool
}

// New creates the application model.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Analyzer == nil {
		return Model{}, fmt.Errorf("analyzer is required")
	}

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		config:   cfg,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		help:     h,
		navbar:   components.NewNavbarModel(cfg.Theme),
		showHelp: cfg.ShowHelp,
		state:    StateForm,
		upload: components.NewUploadModel(ctx, cfg.Analyzer, cfg.Theme, components.UploadOptions{
			Accept:   cfg.Accept,
			StartDir: cfg.StartDir,
		}),
	}
	m.resize(cfg.Width, cfg.Height)

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.upload.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
		return m.delegateKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case components.ResultsReadyMsg:
		m.showResults(msg.Result)
		return m, nil

	case components.BackToFormMsg:
		m.state = StateForm
		return m, nil

	case components.ExportedMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return m, cmd
}

// handleGlobalKeys handles keys that work on every screen.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keymap.Help) && !m.typing():
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resize(m.width, m.height)
		return true, nil

	case key.Matches(msg, m.keymap.ShowResults) && m.state == StateForm && m.hasResults:
		m.state = StateResults
		return true, nil
	}
	return false, nil
}

func (m Model) delegateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateResults:
		m.results, cmd = m.results.Update(msg)
	default:
		m.upload, cmd = m.upload.Update(msg)
	}
	return m, cmd
}

// showResults replaces any previous results with result.
func (m *Model) showResults(result *model.AnalysisResult) {
	width, height := m.contentSize()
	m.results = components.NewResultsModel(result, m.theme, m.config.ExportDir, width, height)
	m.hasResults = true
	m.state = StateResults
}

func (m Model) typing() bool {
	return m.state == StateForm && m.upload.Typing()
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.navbar.Resize(width)
	m.help.Width = width

	contentWidth, contentHeight := m.contentSize()
	m.upload.Resize(contentWidth, contentHeight)
	if m.hasResults {
		m.results.Resize(contentWidth, contentHeight)
	}
}

// State returns the current screen.
func (m Model) State() State {
	return m.state
}

// Results returns the analysis currently held by the results view.
func (m Model) Results() *model.AnalysisResult {
	if !m.hasResults {
		return nil
	}
	return m.results.Result()
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}
