// Package analyzer talks to the remote resume analysis service.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/Veraticus/careersync/internal/model"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	analyzePath = "/analyze"

	// Form field names expected by the service.
	fieldResume         = "resume"
	fieldJobDescription = "job_description"

	// RequestIDHeader carries the per-submission identifier.
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 4 << 20
)

// Config configures a Client.
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	// Timeout bounds each request when positive.
	Timeout time.Duration
}

// Client submits resumes to the analysis service.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// New creates a client for the service rooted at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("analysis service URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   base + analyzePath,
		timeout:    cfg.Timeout,
	}, nil
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Analyze sends one submission and returns the service's analysis.
// Failures are either *TransportError or *ServiceError.
func (c *Client) Analyze(ctx context.Context, sub model.Submission) (*model.AnalysisResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, contentType, err := encodeSubmission(sub)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	logger := slog.With("request_id", requestID, "resume", sub.Resume.Name)
	logger.Debug("submitting resume for analysis", "endpoint", c.endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("analysis request failed", "error", err)
		return nil, &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err), StatusCode: statusIfFailed(resp)}
	}

	logger.Debug("analysis response received",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(raw))),
			StatusCode: resp.StatusCode,
		}
	}

	var envelope model.AnalysisResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	if !envelope.Succeeded() {
		logger.Info("analysis rejected by service", "status", envelope.Status, "message", envelope.Error)
		return nil, &ServiceError{Status: envelope.Status, Message: envelope.Error}
	}

	if err := envelope.Analysis.Validate(); err != nil {
		logger.Warn("analysis response incomplete", "error", err)
		return nil, &ServiceError{Status: envelope.Status}
	}

	return envelope.Analysis, nil
}

func statusIfFailed(resp *http.Response) int {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode
	}
	return 0
}

// encodeSubmission builds the multipart body. The resume part's Content-Type
// is detected from its bytes rather than trusted from the file name.
func encodeSubmission(sub model.Submission) (io.Reader, string, error) {
	if sub.Resume == nil {
		return nil, "", errors.New("submission has no resume")
	}

	rc, err := sub.Resume.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open resume: %w", err)
	}
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read resume: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldResume, sub.Resume.Name))
	header.Set("Content-Type", mimetype.Detect(content).String())

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create resume part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write resume part: %w", err)
	}

	if err := writer.WriteField(fieldJobDescription, sub.JobDescription); err != nil {
		return nil, "", fmt.Errorf("failed to write job description: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
