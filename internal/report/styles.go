package report

import (
	"github.com/Veraticus/careersync/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styling used for analysis reports.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	ScoreLabel     lipgloss.Style
	ScoreHigh      lipgloss.Style
	ScoreMedium    lipgloss.Style
	ScoreLow       lipgloss.Style
	Matching       lipgloss.Style
	Missing        lipgloss.Style
	Empty          lipgloss.Style
	Recommendation lipgloss.Style
	CategoryName   lipgloss.Style
	SkillChip      lipgloss.Style
	Box            lipgloss.Style
}

// NewStyles creates a Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.ScoreLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.SubtleColor)

	s.ScoreHigh = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.SuccessColor)

	s.ScoreMedium = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.ScoreLow = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.WarningColor)

	s.Matching = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	s.Missing = lipgloss.NewStyle().
		Foreground(cli.WarningColor)

	s.Empty = lipgloss.NewStyle().
		Italic(true)

	s.Recommendation = lipgloss.NewStyle().
		Foreground(cli.InfoColor)

	s.CategoryName = lipgloss.NewStyle().
		Bold(true)

	s.SkillChip = lipgloss.NewStyle().
		Foreground(cli.SubtleColor)

	s.Box = cli.BoxStyle

	return s
}

// WithWidth returns a copy whose boxed content fits the given terminal width,
// border included.
func (s *Styles) WithWidth(width int) *Styles {
	newStyles := *s
	if width > 4 {
		newStyles.Box = s.Box.Width(width - 4)
	}
	return &newStyles
}

// Score levels.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// ScoreLevel classifies a percentage as high (70 and above), medium (50 and
// above) or low.
func ScoreLevel(score float64) string {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 50:
		return LevelMedium
	default:
		return LevelLow
	}
}

// ForScore picks the score style for a percentage.
func (s *Styles) ForScore(score float64) lipgloss.Style {
	switch ScoreLevel(score) {
	case LevelHigh:
		return s.ScoreHigh
	case LevelMedium:
		return s.ScoreMedium
	default:
		return s.ScoreLow
	}
}
