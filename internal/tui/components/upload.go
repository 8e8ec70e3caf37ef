package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/Veraticus/careersync/internal/upload"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form labels.
const (
	UploadTitle      = "Resume Analysis"
	ResumeLabel      = "Upload Resume (PDF)"
	JobLabel         = "Job Description"
	JobPlaceholder   = "Paste the job description here..."
	SubmitLabel      = "Analyze Resume"
	SubmittingLabel  = "Analyzing..."
	selectedFileText = "Selected file: %s"
	acceptHintText   = "Suggested: %s (any file can be selected)"
)

// UploadField identifies the focused part of the form.
type UploadField int

const (
	FieldResume UploadField = iota
	FieldJobDescription
	FieldSubmit
	fieldCount
)

// UploadKeyMap holds the keys the upload form reacts to.
type UploadKeyMap struct {
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Press     key.Binding
}

// DefaultUploadKeyMap returns the default form bindings.
func DefaultUploadKeyMap() UploadKeyMap {
	return UploadKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "analyze"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "press button"),
		),
	}
}

// UploadOptions configures an UploadModel.
type UploadOptions struct {
	// Accept lists the suggested extensions. Other files remain selectable.
	Accept []string
	// StartDir is where the file picker opens.
	StartDir string
}

// UploadModel is the terminal rendition of the submission form. It owns an
// upload.Form and publishes ResultsReadyMsg when an analysis succeeds.
type UploadModel struct {
	ctx      context.Context
	analyzer upload.Analyzer
	form     *upload.Form
	theme    themes.Theme
	pickErr  error
	accept   []string
	keys     UploadKeyMap
	picker   filepicker.Model
	jobInput textarea.Model
	spinner  spinner.Model
	focus    UploadField
	width    int
	height   int
}

// NewUploadModel creates the form component.
func NewUploadModel(ctx context.Context, analyzer upload.Analyzer, theme themes.Theme, opts UploadOptions) UploadModel {
	// Accept is shown as a hint; AllowedTypes stays empty so any file can be picked.
	picker := filepicker.New()
	picker.CurrentDirectory = opts.StartDir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}
	picker.Styles.Selected = picker.Styles.Selected.Foreground(theme.Primary)
	picker.Styles.Cursor = picker.Styles.Cursor.Foreground(theme.Primary)

	jobInput := textarea.New()
	jobInput.Placeholder = JobPlaceholder
	jobInput.CharLimit = 0
	jobInput.MaxHeight = 0
	jobInput.ShowLineNumbers = false
	jobInput.SetHeight(6)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return UploadModel{
		ctx:      ctx,
		analyzer: analyzer,
		form:     upload.NewForm(),
		theme:    theme,
		accept:   opts.Accept,
		keys:     DefaultUploadKeyMap(),
		picker:   picker,
		jobInput: jobInput,
		spinner:  s,
		focus:    FieldResume,
	}
}

// Init starts reading the picker's directory.
func (m UploadModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages.
func (m UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case AnalysisCompleteMsg:
		return m.handleComplete(msg)

	case spinner.TickMsg:
		if !m.form.Snapshot().Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Directory listings and cursor blinks.
	var pickerCmd, inputCmd tea.Cmd
	m.picker, pickerCmd = m.picker.Update(msg)
	m.jobInput, inputCmd = m.jobInput.Update(msg)
	return m, tea.Batch(pickerCmd, inputCmd)
}

func (m UploadModel) handleKey(msg tea.KeyMsg) (UploadModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	switch m.focus {
	case FieldResume:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			m.selectPath(path)
		}
		return m, cmd

	case FieldJobDescription:
		var cmd tea.Cmd
		m.jobInput, cmd = m.jobInput.Update(msg)
		m.form.EditJobDescription(m.jobInput.Value())
		return m, cmd

	case FieldSubmit:
		if key.Matches(msg, m.keys.Press) {
			return m, m.submit()
		}
	}

	return m, nil
}

func (m *UploadModel) selectPath(path string) {
	resume, err := model.ResumeFromPath(path)
	if err != nil {
		slog.Warn("Failed to select resume", "path", path, "error", err)
		m.pickErr = err
		return
	}
	m.pickErr = nil
	m.form.SelectFile(resume)
	slog.Debug("Resume selected", "name", resume.Name, "size", resume.Size)
}

// SelectFile selects a resume directly, bypassing the picker.
func (m *UploadModel) SelectFile(resume *model.Resume) {
	m.pickErr = nil
	m.form.SelectFile(resume)
}

// SetJobDescription replaces the job description text.
func (m *UploadModel) SetJobDescription(text string) {
	m.jobInput.SetValue(text)
	m.form.EditJobDescription(m.jobInput.Value())
}

func (m *UploadModel) setFocus(field UploadField) tea.Cmd {
	m.focus = field
	if field == FieldJobDescription {
		return m.jobInput.Focus()
	}
	m.jobInput.Blur()
	return nil
}

// submit starts a request unless one is already in flight.
func (m *UploadModel) submit() tea.Cmd {
	if m.form.Snapshot().Submitting {
		return nil
	}

	sub, err := m.form.Begin()
	if err != nil {
		return nil
	}

	slog.Info("Submitting resume", "resume", sub.Resume.Name)
	return tea.Batch(m.spinner.Tick, m.analyze(sub))
}

func (m UploadModel) analyze(sub model.Submission) tea.Cmd {
	ctx := m.ctx
	analyzer := m.analyzer
	return func() tea.Msg {
		result, err := analyzer.Analyze(ctx, sub)
		return AnalysisCompleteMsg{Result: result, Err: err}
	}
}

func (m UploadModel) handleComplete(msg AnalysisCompleteMsg) (UploadModel, tea.Cmd) {
	result, err := m.form.Complete(msg.Result, msg.Err)
	if err != nil {
		slog.Warn("Analysis failed", "error", err)
		return m, nil
	}

	m.jobInput.Reset()
	m.pickErr = nil
	return m, func() tea.Msg {
		return ResultsReadyMsg{Result: result}
	}
}

// Resize sets the available space.
func (m *UploadModel) Resize(width, height int) {
	m.width = width
	m.height = height

	inputWidth := width - 2
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.jobInput.SetWidth(inputWidth)

	// The picker sizes itself from a window message; leave room for the
	// rest of the form.
	pickerHeight := height - 13
	if pickerHeight < 8 {
		pickerHeight = 8
	}
	m.picker, _ = m.picker.Update(tea.WindowSizeMsg{Width: width, Height: pickerHeight})
}

// State returns the form state.
func (m UploadModel) State() upload.State {
	return m.form.Snapshot()
}

// Focus returns the focused field.
func (m UploadModel) Focus() UploadField {
	return m.focus
}

// Typing reports whether keystrokes are going into the text area.
func (m UploadModel) Typing() bool {
	return m.focus == FieldJobDescription
}

// View renders the form.
func (m UploadModel) View() string {
	state := m.form.Snapshot()

	sections := []string{
		m.theme.Title.Render(UploadTitle),
		"",
		m.label(ResumeLabel, FieldResume),
	}

	if len(m.accept) > 0 {
		sections = append(sections, m.theme.Muted.Render(fmt.Sprintf(acceptHintText, strings.Join(m.accept, ", "))))
	}

	if m.focus == FieldResume || !state.HasFile() {
		sections = append(sections, m.picker.View())
	}
	if state.HasFile() {
		sections = append(sections, m.theme.Muted.Render(fmt.Sprintf(selectedFileText, state.SelectedFile.Name)))
	}
	if m.pickErr != nil {
		sections = append(sections, m.theme.StatusError.Render(m.pickErr.Error()))
	}

	sections = append(sections,
		"",
		m.label(JobLabel, FieldJobDescription),
		m.jobInput.View(),
	)

	if state.ErrorMessage != "" {
		sections = append(sections, "", m.theme.ErrorBanner.Render(state.ErrorMessage))
	}

	sections = append(sections, "", m.renderButton(state))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m UploadModel) label(text string, field UploadField) string {
	if m.focus == field {
		return m.theme.Focused.Render("> " + text)
	}
	return m.theme.Label.Render("  " + text)
}

func (m UploadModel) renderButton(state upload.State) string {
	if state.Submitting {
		return m.theme.ButtonBusy.Render(m.spinner.View() + " " + SubmittingLabel)
	}
	if m.focus == FieldSubmit {
		return m.theme.ButtonActive.Render(SubmitLabel)
	}
	return m.theme.Button.Render(SubmitLabel)
}
