package components

import (
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Navbar text.
const (
	BrandName = "CareerSync AI"
	Tagline   = "Resume Skill Matcher"
)

// NavbarModel renders the static application header.
type NavbarModel struct {
	theme themes.Theme
	width int
}

// NewNavbarModel creates a navbar.
func NewNavbarModel(theme themes.Theme) NavbarModel {
	return NavbarModel{theme: theme}
}

// Resize sets the available width.
func (m *NavbarModel) Resize(width int) {
	m.width = width
}

// View renders the navbar.
func (m NavbarModel) View() string {
	brand := m.theme.Brand.Render(BrandName)
	tagline := m.theme.Tagline.Render(Tagline)

	inner := m.width - m.theme.Navbar.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(tagline)
	if gap < 1 {
		gap = 1
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, brand, lipgloss.NewStyle().Width(gap).Render(""), tagline)
	return m.theme.Navbar.Render(row)
}
