package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const minContentHeight = 10

// render lays out navbar, active screen and help.
func (m Model) render() string {
	var content string
	switch m.state {
	case StateResults:
		content = m.results.View()
	default:
		content = m.upload.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.navbar.View(),
		m.panel().Render(content),
		m.renderHelp(),
	)
}

func (m Model) panel() lipgloss.Style {
	width := m.width - m.theme.Panel.GetHorizontalBorderSize()
	if width < 0 {
		width = 0
	}
	return m.theme.Panel.Width(width)
}

func (m Model) renderHelp() string {
	return m.help.View(m.helpKeys())
}

func (m Model) helpKeys() help.KeyMap {
	if m.state == StateResults {
		return resultsKeys{KeyMap: m.keymap}
	}
	return formKeys{KeyMap: m.keymap, hasResults: m.hasResults}
}

// contentSize returns the space left for the active screen once the navbar,
// panel border and help are accounted for.
func (m Model) contentSize() (int, int) {
	navbarHeight := lipgloss.Height(m.navbar.View())
	helpHeight := lipgloss.Height(m.renderHelp())

	width := m.width - m.theme.Panel.GetHorizontalFrameSize()
	height := m.height - navbarHeight - helpHeight - m.theme.Panel.GetVerticalFrameSize()
	if height < minContentHeight {
		height = minContentHeight
	}
	if width < 0 {
		width = 0
	}
	return width, height
}
