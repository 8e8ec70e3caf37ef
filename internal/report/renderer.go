// Package report renders analysis results as styled terminal text.
package report

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Veraticus/careersync/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Bullet prefixes each item of a skills list.
const Bullet = "\u2022"

// Section titles.
const (
	TitleResults        = "Analysis Results"
	TitleOverallMatch   = "Overall Match"
	TitleSkillMatch     = "Skill Match"
	TitleRecommendation = "Recommendation"
	TitleMatchingSkills = "Matching Skills"
	TitleMissingSkills  = "Missing Skills"
	TitleDetailedSkills = "Detailed Skill Analysis"
	DescOverallMatch    = "Match based on skills and content"
	DescSkillMatch      = "Direct skill requirement match"
)

const (
	skillSeparator       = "  "
	sectionSeparator     = "\n\n"
	defaultRenderWidth   = 80
	scoreCardColumnWidth = 38
)

type listKind int

const (
	listKindMatching listKind = iota
	listKindMissing
)

// Renderer turns an AnalysisResult into terminal text. Every method is a pure
// function of its arguments.
type Renderer struct {
	styles *Styles
	width  int
}

// NewRenderer creates a renderer with default styles.
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		width:  defaultRenderWidth,
	}
}

// WithWidth returns a renderer sized for the given terminal width.
func (r *Renderer) WithWidth(width int) *Renderer {
	if width <= 0 {
		return r
	}
	return &Renderer{
		styles: r.styles.WithWidth(width),
		width:  width,
	}
}

// FormatScore renders a percentage using the shortest exact decimal form.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "%"
}

// EmptyMessage is shown in place of an empty skills list.
func EmptyMessage(title string) string {
	return "No " + strings.ToLower(title) + " found"
}

// CategoryLabel converts a category key such as "soft_skills" into "Soft Skills".
func CategoryLabel(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

// ScoreCard renders a labeled percentage with an optional description line.
func (r *Renderer) ScoreCard(title string, score float64, description string) string {
	lines := []string{
		r.styles.ScoreLabel.Render(title),
		r.styles.ForScore(score).Render(FormatScore(score)),
	}
	if description != "" {
		lines = append(lines, r.styles.Subtle.Render(description))
	}
	return strings.Join(lines, "\n")
}

// SkillsList renders a titled list, or a single empty-state line when skills
// is empty.
func (r *Renderer) SkillsList(title string, skills []string) string {
	return r.skillsList(title, skills, listKindMatching)
}

func (r *Renderer) skillsList(title string, skills []string, kind listKind) string {
	itemStyle := r.styles.Matching
	if kind == listKindMissing {
		itemStyle = r.styles.Missing
	}

	lines := []string{r.styles.Subtitle.Render(title)}
	if len(skills) == 0 {
		lines = append(lines, itemStyle.Inherit(r.styles.Empty).Render(EmptyMessage(title)))
		return strings.Join(lines, "\n")
	}

	for _, skill := range skills {
		lines = append(lines, itemStyle.Render(Bullet+" "+skill))
	}
	return strings.Join(lines, "\n")
}

// Recommendation renders the service's recommendation text in a box that
// wraps to the renderer's width.
func (r *Renderer) Recommendation(text string) string {
	return r.styles.Subtitle.Render(TitleRecommendation) + "\n" +
		r.styles.Box.Inherit(r.styles.Recommendation).Render(text)
}

// Categories renders one block per non-empty category, in the order the
// service sent them. It returns "" when there is nothing to show.
func (r *Renderer) Categories(groups model.SkillGroups) string {
	var blocks []string
	for _, group := range groups.NonEmpty() {
		chips := make([]string, len(group.Skills))
		for i, skill := range group.Skills {
			chips[i] = r.styles.SkillChip.Render("[" + skill + "]")
		}
		blocks = append(blocks,
			r.styles.CategoryName.Render(CategoryLabel(group.Name))+"\n"+
				strings.Join(chips, skillSeparator))
	}
	return strings.Join(blocks, sectionSeparator)
}

// Render renders the complete results view.
func (r *Renderer) Render(result *model.AnalysisResult) string {
	if result == nil {
		return r.styles.Subtle.Render("No analysis available")
	}

	sections := []string{
		r.styles.Title.Render(TitleResults),
		r.scoreCards(result),
		r.Recommendation(result.Recommendation),
		r.skillsList(TitleMatchingSkills, result.MatchingSkills, listKindMatching),
		r.skillsList(TitleMissingSkills, result.MissingSkills, listKindMissing),
	}

	if categories := r.Categories(result.ResumeGroups()); categories != "" {
		sections = append(sections,
			r.styles.Title.Render(TitleDetailedSkills)+"\n"+categories)
	}

	return strings.Join(sections, sectionSeparator)
}

func (r *Renderer) scoreCards(result *model.AnalysisResult) string {
	overall := r.ScoreCard(TitleOverallMatch, result.OverallMatch, DescOverallMatch)
	skill := r.ScoreCard(TitleSkillMatch, result.SkillMatch, DescSkillMatch)

	if r.width < 2*scoreCardColumnWidth {
		return overall + sectionSeparator + skill
	}

	column := r.styles.Normal.Width(scoreCardColumnWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, column.Render(overall), column.Render(skill))
}
