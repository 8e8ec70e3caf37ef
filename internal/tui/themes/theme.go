// Package themes defines the color schemes available to the terminal UI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	Normal        lipgloss.Style
	Muted         lipgloss.Style
	Brand         lipgloss.Style
	Tagline       lipgloss.Style
	Focused       lipgloss.Style
	Button        lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonBusy    lipgloss.Style
	ErrorBanner   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	Navbar        lipgloss.Style
	Panel         lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Subtle        lipgloss.Color
}

func build(primary, secondary, success, errColor, border, foreground, subtle, buttonText string) Theme {
	return Theme{
		Primary:    lipgloss.Color(primary),
		Secondary:  lipgloss.Color(secondary),
		Success:    lipgloss.Color(success),
		Error:      lipgloss.Color(errColor),
		Border:     lipgloss.Color(border),
		Foreground: lipgloss.Color(foreground),
		Subtle:     lipgloss.Color(subtle),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(foreground)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(foreground)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)),
		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)),
		Tagline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondary)),
		Focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(primary)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(foreground)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(buttonText)).
			Background(lipgloss.Color(primary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primary)).
			Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().
			Faint(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 2),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errColor)).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(errColor)).
			PaddingLeft(1),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errColor)).
			Bold(true),
		Navbar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = build("#2563eb", "#60a5fa", "#16a34a", "#dc2626", "#404040", "#fafafa", "#9ca3af", "#ffffff")

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build("#89b4fa", "#cba6f7", "#a6e3a1", "#f38ba8", "#45475a", "#cdd6f4", "#a6adc8", "#1e1e2e")

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
