package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/careersync/internal/common"
	"github.com/Veraticus/careersync/internal/export"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/upload"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{
	"status": "success",
	"analysis": {
		"overall_match": 82.5,
		"skill_match": 60,
		"recommendation": "Strong Match - Highly recommended for interview",
		"matching_skills": ["Go", "Docker"],
		"missing_skills": ["Kubernetes"],
		"categorized_skills": {"resume": {"languages": ["Go"], "tools": ["Docker"]}}
	}
}`

// fakeService records the job description of each request and answers
// with body and status.
func fakeService(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var jobs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		jobs = append(jobs, r.FormValue("job_description"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &jobs
}

// executeCmd runs the CLI with a clean configuration.
func executeCmd(t *testing.T, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	return executeCmdContext(context.Background(), t, apiURL, args...)
}

func executeCmdContext(ctx context.Context, t *testing.T, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	t.Cleanup(viper.Reset)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAREERSYNC_API_URL", apiURL)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 resume"), 0600))
	return path
}

func TestAnalyzeCmd_Summary(t *testing.T) {
	srv, jobs := fakeService(t, http.StatusOK, successBody)

	stdout, _, err := executeCmd(t, srv.URL,
		"analyze", "--resume", writeResume(t), "--job-description", "Go developer")
	require.NoError(t, err)

	assert.Equal(t, []string{"Go developer"}, *jobs)
	assert.Contains(t, stdout, "Analysis Results")
	assert.Contains(t, stdout, "82.5%")
	assert.Contains(t, stdout, "Strong Match")
	assert.Contains(t, stdout, "Kubernetes")
	assert.Contains(t, stdout, "Languages")
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	srv, _ := fakeService(t, http.StatusOK, successBody)

	stdout, _, err := executeCmd(t, srv.URL,
		"analyze", "--resume", writeResume(t), "--output", "json")
	require.NoError(t, err)

	var result model.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.InDelta(t, 82.5, result.OverallMatch, 0.001)
	assert.Equal(t, []string{"Go", "Docker"}, result.MatchingSkills)

	groups := result.ResumeGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "languages", groups[0].Name)
	assert.Equal(t, "tools", groups[1].Name)
}

func TestAnalyzeCmd_JobFileAndSave(t *testing.T) {
	srv, jobs := fakeService(t, http.StatusOK, successBody)

	jobFile := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Platform engineer\nKubernetes"), 0600))
	exportDir := t.TempDir()

	_, stderr, err := executeCmd(t, srv.URL,
		"analyze", "--resume", writeResume(t), "--job-file", jobFile,
		"--save", "--export-dir", exportDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Platform engineer\nKubernetes"}, *jobs)

	path := filepath.Join(exportDir, export.FileName)
	assert.Contains(t, stderr, "Saved "+path)

	data, err := os.ReadFile(path) // #nosec G304 -- test file
	require.NoError(t, err)
	var saved model.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "Strong Match - Highly recommended for interview", saved.Recommendation)
}

func TestAnalyzeCmd_Failures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		status  int
	}{
		{
			name:    "service error message",
			status:  http.StatusOK,
			body:    `{"status":"error","error":"No text could be extracted from the PDF"}`,
			message: "No text could be extracted from the PDF",
		},
		{
			name:    "service error without message",
			status:  http.StatusOK,
			body:    `{"status":"error"}`,
			message: upload.MsgAnalysisFailed,
		},
		{
			name:    "non-2xx with valid envelope",
			status:  http.StatusInternalServerError,
			body:    successBody,
			message: upload.MsgTransportFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := fakeService(t, tt.status, tt.body)

			stdout, _, err := executeCmd(t, srv.URL, "analyze", "--resume", writeResume(t))
			require.Error(t, err)
			assert.Equal(t, tt.message, common.UserMessage(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestAnalyzeCmd_Validation(t *testing.T) {
	srv, jobs := fakeService(t, http.StatusOK, successBody)

	tests := []struct {
		name   string
		apiURL string
		errMsg string
		args   []string
	}{
		{
			name:   "missing resume flag",
			apiURL: srv.URL,
			args:   []string{"analyze"},
			errMsg: "resume",
		},
		{
			name:   "resume does not exist",
			apiURL: srv.URL,
			args:   []string{"analyze", "--resume", filepath.Join(t.TempDir(), "missing.pdf")},
			errMsg: "Cannot read resume",
		},
		{
			name:   "bad output",
			apiURL: srv.URL,
			args:   []string{"analyze", "--resume", "cv.pdf", "--output", "xml"},
			errMsg: "invalid output format",
		},
		{
			name:   "both job sources",
			apiURL: srv.URL,
			args:   []string{"analyze", "--resume", "cv.pdf", "--job-description", "a", "--job-file", "b"},
			errMsg: "none of the others can be",
		},
		{
			name:   "missing api url",
			apiURL: "",
			args:   []string{"analyze", "--resume", "cv.pdf"},
			errMsg: "api.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.apiURL, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Empty(t, *jobs)
}

func TestAnalyzeCmd_CanceledRootContext(t *testing.T) {
	srv, jobs := fakeService(t, http.StatusOK, successBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout, stderr, err := executeCmdContext(ctx, t, srv.URL, "analyze", "--resume", writeResume(t))
	require.ErrorIs(t, err, context.Canceled)

	var userErr *common.UserError
	assert.False(t, errors.As(err, &userErr))
	assert.NotContains(t, stderr, upload.MsgTransportFailed)
	assert.Empty(t, stdout)
	assert.Empty(t, *jobs)
}
