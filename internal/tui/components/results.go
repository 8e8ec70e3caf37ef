package components

import (
	"log/slog"

	"github.com/Veraticus/careersync/internal/export"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/report"
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultsKeyMap holds the keys the results view reacts to.
type ResultsKeyMap struct {
	Download key.Binding
	Back     key.Binding
}

// DefaultResultsKeyMap returns the default results bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download JSON"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("Esc/n", "new analysis"),
		),
	}
}

// ResultsModel displays a read-only analysis in a scrollable viewport.
type ResultsModel struct {
	result    *model.AnalysisResult
	renderer  *report.Renderer
	theme     themes.Theme
	exportErr error
	keys      ResultsKeyMap
	exportDir string
	savedPath string
	viewport  viewport.Model
	width     int
	height    int
}

// NewResultsModel creates a results view for result. Exports are written to
// exportDir.
func NewResultsModel(result *model.AnalysisResult, theme themes.Theme, exportDir string, width, height int) ResultsModel {
	m := ResultsModel{
		result:    result,
		renderer:  report.NewRenderer(),
		theme:     theme,
		keys:      DefaultResultsKeyMap(),
		exportDir: exportDir,
		viewport:  viewport.New(width, height),
	}
	m.Resize(width, height)
	return m
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ExportedMsg:
		m.exportErr = msg.Err
		m.savedPath = msg.Path
		return m, nil

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Download):
			return m, m.download()
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackToFormMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ResultsModel) download() tea.Cmd {
	result := m.result
	dir := m.exportDir
	return func() tea.Msg {
		path, err := export.Save(dir, result)
		if err != nil {
			slog.Error("Failed to save analysis", "error", err)
		} else {
			slog.Info("Analysis saved", "path", path)
		}
		return ExportedMsg{Path: path, Err: err}
	}
}

// Resize sets the available space and re-renders the report.
func (m *ResultsModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// One line for the status bar.
	viewHeight := height - 1
	if viewHeight < 1 {
		viewHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewHeight
	m.viewport.SetContent(m.renderer.WithWidth(width).Render(m.result))
}

// Result returns the displayed analysis.
func (m ResultsModel) Result() *model.AnalysisResult {
	return m.result
}

// View renders the results.
func (m ResultsModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderStatus())
}

func (m ResultsModel) renderStatus() string {
	switch {
	case m.exportErr != nil:
		return m.theme.StatusError.Render("Download failed: " + m.exportErr.Error())
	case m.savedPath != "":
		return m.theme.StatusSuccess.Render("Saved " + m.savedPath)
	default:
		return m.theme.Muted.Render("d: download JSON  esc: new analysis  ↑/↓: scroll")
	}
}
