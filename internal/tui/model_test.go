package tui

import (
	"context"
	"testing"

	"github.com/Veraticus/careersync/internal/analyzer"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/tui/components"
	tuitesting "github.com/Veraticus/careersync/internal/tui/testing"
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	err     error
	results []*model.AnalysisResult
	calls   int
}

func (s *stubAnalyzer) Analyze(context.Context, model.Submission) (*model.AnalysisResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := s.results[s.calls%len(s.results)]
	s.calls++
	return result, nil
}

func skipTicks(msg tea.Msg) bool {
	_, ok := msg.(spinner.TickMsg)
	return ok
}

func newTestModel(t *testing.T, a *stubAnalyzer) Model {
	t.Helper()
	m, err := New(context.Background(),
		WithAnalyzer(a),
		WithTheme(themes.CatppuccinMocha),
		WithExportDir(t.TempDir()),
		WithStartDir(t.TempDir()),
		WithSize(100, 40),
		WithAltScreen(false),
	)
	require.NoError(t, err)
	return m
}

func fillForm(m Model, jobDescription string) Model {
	m.upload.SelectFile(model.ResumeFromBytes("resume.pdf", []byte("%PDF-1.4")))
	m.upload.SetJobDescription(jobDescription)
	return m
}

func submit(r *tuitesting.TestRenderer, m Model) Model {
	next := r.Send(m, tuitesting.KeyCtrl('s'), skipTicks)
	return next.(Model)
}

func TestNew_RequiresAnalyzer(t *testing.T) {
	_, err := New(context.Background())
	require.Error(t, err)
}

func TestModel_SubmissionShowsResults(t *testing.T) {
	first := &model.AnalysisResult{
		OverallMatch:   80,
		SkillMatch:     75.5,
		Recommendation: "Strong Match - Highly recommended for interview",
		MatchingSkills: []string{"Python", "SQL"},
		MissingSkills:  []string{},
	}
	second := &model.AnalysisResult{
		OverallMatch:   30,
		SkillMatch:     20,
		Recommendation: "Weak Match - May not be suitable",
		MatchingSkills: []string{},
		MissingSkills:  []string{"Kubernetes"},
	}
	stub := &stubAnalyzer{results: []*model.AnalysisResult{first, second}}
	r := tuitesting.NewTestRenderer()

	m := fillForm(newTestModel(t, stub), "Data engineer")
	m = submit(r, m)

	require.Equal(t, StateResults, m.State())
	assert.Same(t, first, m.Results())
	assert.True(t, tuitesting.ContainsInOrder(r.StripANSI(),
		components.BrandName, "Analysis Results", "75.5%", "Strong Match"))

	// Back to the form; the previous results stay available.
	m = r.Send(m, tuitesting.KeyEsc(), skipTicks).(Model)
	assert.Equal(t, StateForm, m.State())
	assert.Same(t, first, m.Results())
	assert.False(t, m.upload.State().HasFile())

	next, _ := r.Update(m, tuitesting.KeyCtrl('r'))
	m = next.(Model)
	assert.Equal(t, StateResults, m.State())

	// A new successful submission replaces them.
	m.state = StateForm
	m = fillForm(m, "Platform engineer")
	m = submit(r, m)
	assert.Equal(t, StateResults, m.State())
	assert.Same(t, second, m.Results())
	assert.Contains(t, r.StripANSI(), "Weak Match")
}

func TestModel_FailureKeepsForm(t *testing.T) {
	stub := &stubAnalyzer{err: &analyzer.ServiceError{Status: "error", Message: "No text could be extracted"}}
	r := tuitesting.NewTestRenderer()

	m := fillForm(newTestModel(t, stub), "Data engineer")
	m = submit(r, m)

	assert.Equal(t, StateForm, m.State())
	assert.Nil(t, m.Results())
	assert.Contains(t, r.StripANSI(), "No text could be extracted")
	assert.Equal(t, "Data engineer", m.upload.State().JobDescription)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, &stubAnalyzer{})
	r := tuitesting.NewTestRenderer()

	next, _ := r.Update(m, tuitesting.KeyPress("?"))
	m = next.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, r.StripANSI(), "next field")

	// While typing in the job description "?" is text, not a command.
	next, _ = r.Update(m, tuitesting.KeyTab())
	m = next.(Model)
	next, _ = r.Update(m, tuitesting.KeyPress("?"))
	m = next.(Model)
	assert.True(t, m.showHelp)
	assert.Equal(t, "?", m.upload.State().JobDescription)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, &stubAnalyzer{})

	next, cmd := m.Update(tuitesting.KeyCtrl('c'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, next.View())
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t, &stubAnalyzer{})
	r := tuitesting.NewTestRenderer()

	next, _ := r.Update(m, tuitesting.WindowSize(60, 30))
	m = next.(Model)

	assert.Equal(t, 60, m.width)
	for _, line := range r.Lines() {
		assert.LessOrEqual(t, len([]rune(line)), 60, line)
	}
}
