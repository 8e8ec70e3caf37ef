package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/careersync/internal/analyzer"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	result *model.AnalysisResult
	err    error
	calls  []model.Submission
}

func (f *fakeAnalyzer) Analyze(_ context.Context, sub model.Submission) (*model.AnalysisResult, error) {
	f.calls = append(f.calls, sub)
	return f.result, f.err
}

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		OverallMatch:   80,
		SkillMatch:     75,
		Recommendation: "Strong Match - Highly recommended for interview",
		MatchingSkills: []string{"Python", "SQL"},
		MissingSkills:  []string{},
	}
}

func filledForm() *Form {
	form := NewForm()
	form.SelectFile(model.ResumeFromBytes("resume.pdf", []byte("%PDF-1.4")))
	form.EditJobDescription("Data engineer")
	return form
}

func TestSubmit_NoFile(t *testing.T) {
	fake := &fakeAnalyzer{result: sampleResult()}
	form := NewForm()
	form.EditJobDescription("Data engineer")

	result, err := form.Submit(context.Background(), fake)

	require.ErrorIs(t, err, ErrNoFile)
	assert.Nil(t, result)
	assert.Empty(t, fake.calls)

	state := form.Snapshot()
	assert.Equal(t, MsgNoFile, state.ErrorMessage)
	assert.False(t, state.Submitting)
	assert.Equal(t, "Data engineer", state.JobDescription)
}

func TestSubmit_Success(t *testing.T) {
	expected := sampleResult()
	fake := &fakeAnalyzer{result: expected}
	form := filledForm()

	result, err := form.Submit(context.Background(), fake)

	require.NoError(t, err)
	assert.Same(t, expected, result)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, "resume.pdf", fake.calls[0].Resume.Name)
	assert.Equal(t, "Data engineer", fake.calls[0].JobDescription)

	state := form.Snapshot()
	assert.False(t, state.HasFile())
	assert.Empty(t, state.JobDescription)
	assert.Empty(t, state.ErrorMessage)
	assert.False(t, state.Submitting)
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		message string
	}{
		{
			name:    "service error with message",
			err:     &analyzer.ServiceError{Status: "error", Message: "Unsupported file type"},
			message: "Unsupported file type",
		},
		{
			name:    "service error without message",
			err:     &analyzer.ServiceError{Status: "error"},
			message: MsgAnalysisFailed,
		},
		{
			name:    "network failure",
			err:     &analyzer.TransportError{Err: errors.New("connection refused")},
			message: MsgTransportFailed,
		},
		{
			name:    "non-2xx",
			err:     &analyzer.TransportError{Err: errors.New("bad gateway"), StatusCode: 502},
			message: MsgTransportFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := filledForm()
			before := form.Snapshot()

			result, err := form.Submit(context.Background(), &fakeAnalyzer{err: tt.err})

			require.Error(t, err)
			assert.Nil(t, result)

			state := form.Snapshot()
			assert.Equal(t, tt.message, state.ErrorMessage)
			assert.False(t, state.Submitting)
			assert.Same(t, before.SelectedFile, state.SelectedFile)
			assert.Equal(t, before.JobDescription, state.JobDescription)
		})
	}
}

func TestBeginComplete_Lifecycle(t *testing.T) {
	form := filledForm()
	form.state.ErrorMessage = MsgTransportFailed

	sub, err := form.Begin()
	require.NoError(t, err)
	assert.Equal(t, "Data engineer", sub.JobDescription)

	state := form.Snapshot()
	assert.True(t, state.Submitting)
	assert.Empty(t, state.ErrorMessage)

	// Edits made while submitting do not affect the snapshot already taken.
	form.EditJobDescription("changed")
	assert.Equal(t, "Data engineer", sub.JobDescription)

	_, err = form.Complete(nil, &analyzer.ServiceError{Status: "error"})
	require.Error(t, err)
	assert.False(t, form.Snapshot().Submitting)
	assert.Equal(t, MsgAnalysisFailed, form.Snapshot().ErrorMessage)
}

func TestSelectFile_Replaces(t *testing.T) {
	form := NewForm()
	first := model.ResumeFromBytes("a.pdf", nil)
	second := model.ResumeFromBytes("b.docx", []byte("not a pdf"))

	form.SelectFile(first)
	form.SelectFile(second)

	assert.Same(t, second, form.Snapshot().SelectedFile)
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, MsgNoFile, MessageFor(ErrNoFile))
	assert.Equal(t, MsgTransportFailed, MessageFor(errors.New("unexpected")))
	assert.Equal(t, "Quota exceeded", MessageFor(&analyzer.ServiceError{Message: "Quota exceeded"}))
}
