// Package upload holds the state of the resume submission form,
// independent of any particular front-end.
package upload

import (
	"context"
	"errors"

	"github.com/Veraticus/careersync/internal/analyzer"
	"github.com/Veraticus/careersync/internal/model"
)

// Messages shown to the user.
const (
	MsgNoFile          = "Please select a resume file"
	MsgTransportFailed = "Failed to analyze resume. Please try again."
	MsgAnalysisFailed  = "Analysis failed. Please try again."
)

// ErrNoFile is returned when a submission is attempted without a resume.
var ErrNoFile = errors.New("no resume file selected")

// Analyzer performs one analysis request.
type Analyzer interface {
	Analyze(ctx context.Context, sub model.Submission) (*model.AnalysisResult, error)
}

// State is a read-only view of the form.
type State struct {
	SelectedFile   *model.Resume
	JobDescription string
	ErrorMessage   string
	Submitting     bool
}

// HasFile reports whether a resume has been selected.
func (s State) HasFile() bool {
	return s.SelectedFile != nil
}

// Form tracks the user's inputs and the submission lifecycle:
// idle, submitting, then success or error, then idle again.
type Form struct {
	state State
}

// NewForm returns an empty, idle form.
func NewForm() *Form {
	return &Form{}
}

// SelectFile replaces the selected resume. No type or size checks are made.
func (f *Form) SelectFile(file *model.Resume) {
	f.state.SelectedFile = file
}

// EditJobDescription replaces the job description text.
func (f *Form) EditJobDescription(text string) {
	f.state.JobDescription = text
}

// Snapshot returns the current state.
func (f *Form) Snapshot() State {
	return f.state
}

// Begin starts a submission. Without a file it records MsgNoFile and returns
// ErrNoFile. Otherwise it marks the form as submitting, clears any previous
// error, and returns the inputs to send.
func (f *Form) Begin() (model.Submission, error) {
	if f.state.SelectedFile == nil {
		f.state.ErrorMessage = MsgNoFile
		return model.Submission{}, ErrNoFile
	}

	f.state.Submitting = true
	f.state.ErrorMessage = ""

	return model.Submission{
		Resume:         f.state.SelectedFile,
		JobDescription: f.state.JobDescription,
	}, nil
}

// Complete records the outcome of a request started by Begin. On success the
// inputs are cleared and result is returned unchanged. On failure the inputs
// are kept and a user-facing message is recorded.
func (f *Form) Complete(result *model.AnalysisResult, err error) (*model.AnalysisResult, error) {
	f.state.Submitting = false

	if err != nil {
		f.state.ErrorMessage = MessageFor(err)
		return nil, err
	}

	f.state.SelectedFile = nil
	f.state.JobDescription = ""
	f.state.ErrorMessage = ""

	return result, nil
}

// Submit runs a full submission against a.
func (f *Form) Submit(ctx context.Context, a Analyzer) (*model.AnalysisResult, error) {
	sub, err := f.Begin()
	if err != nil {
		return nil, err
	}

	result, err := a.Analyze(ctx, sub)
	return f.Complete(result, err)
}

// MessageFor maps a submission error to the message shown to the user.
func MessageFor(err error) string {
	if errors.Is(err, ErrNoFile) {
		return MsgNoFile
	}

	var serviceErr *analyzer.ServiceError
	if errors.As(err, &serviceErr) {
		if serviceErr.Message != "" {
			return serviceErr.Message
		}
		return MsgAnalysisFailed
	}

	return MsgTransportFailed
}
