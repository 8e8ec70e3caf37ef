package web

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/Veraticus/careersync/internal/export"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	tmpl *template.Template
}

func loadPages() (*pages, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"score":    report.FormatScore,
		"level":    report.ScoreLevel,
		"category": report.CategoryLabel,
		"empty":    report.EmptyMessage,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &pages{tmpl: tmpl}, nil
}

func (p *pages) execute(w io.Writer, name string, data any) error {
	return p.tmpl.ExecuteTemplate(w, name, data)
}

// chrome is shared by every page.
type chrome struct{}

func (chrome) Brand() string   { return "CareerSync AI" }
func (chrome) Tagline() string { return "Resume Skill Matcher" }

type formPage struct {
	chrome
	Accept         string
	JobDescription string
	ErrorMessage   string
	PreviousFile   string
}

func (formPage) Title() string { return "Resume Analysis" }
func (formPage) ResumeLabel() string { return "Upload Resume (PDF)" }
func (formPage) JobLabel() string { return "Job Description" }
func (formPage) Placeholder() string { return "Paste the job description here..." }
func (formPage) SubmitLabel() string { return "Analyze Resume" }
func (formPage) SubmittingLabel() string { return "Analyzing..." }

type section struct {
	Title  string
	Kind   string
	Skills []string
}

type resultsPage struct {
	chrome
	Result       *model.AnalysisResult
	Sections     []section
	Categories   model.SkillGroups
	DownloadHref template.URL
	DownloadName string
}

func (resultsPage) Title() string { return report.TitleResults }

func (resultsPage) Labels() map[string]string {
	return map[string]string{
		"overall":        report.TitleOverallMatch,
		"overallDesc":    report.DescOverallMatch,
		"skill":          report.TitleSkillMatch,
		"skillDesc":      report.DescSkillMatch,
		"recommendation": report.TitleRecommendation,
		"detailed":       report.TitleDetailedSkills,
	}
}

// newResultsPage prepares the report along with a data URL holding the same
// bytes the terminal front-end writes to disk.
func newResultsPage(result *model.AnalysisResult) (resultsPage, error) {
	data, err := export.Marshal(result)
	if err != nil {
		return resultsPage{}, err
	}

	return resultsPage{
		Result: result,
		Sections: []section{
			{Title: report.TitleMatchingSkills, Kind: "matching", Skills: result.MatchingSkills},
			{Title: report.TitleMissingSkills, Kind: "missing", Skills: result.MissingSkills},
		},
		Categories: result.ResumeGroups().NonEmpty(),
		// #nosec G203 -- base64 payload built from our own JSON encoding
		DownloadHref: template.URL("data:application/json;base64," + base64.StdEncoding.EncodeToString(data)),
		DownloadName: export.FileName,
	}, nil
}

// acceptAttr formats extensions for an <input type="file" accept> attribute.
func acceptAttr(exts []string) string {
	return strings.Join(exts, ",")
}
