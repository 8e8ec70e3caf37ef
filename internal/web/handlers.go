package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/careersync/internal/common"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/upload"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Multipart field names accepted by POST /analyze.
const (
	fieldResume         = "resume"
	fieldJobDescription = "job_description"
)

func (s *Server) handleForm(c *fiber.Ctx) error {
	return s.renderForm(c, fiber.StatusOK, formPage{Accept: s.accept})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleAnalyze runs one submission through a fresh Form. Each request owns
// its Form, so no state is shared between browsers.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	form := upload.NewForm()
	form.EditJobDescription(c.FormValue(fieldJobDescription))

	resume, err := readResume(c)
	if err != nil {
		return err
	}
	if resume != nil {
		form.SelectFile(resume)
	}

	result, err := form.Submit(c.UserContext(), s.analyzer)
	if err != nil {
		state := form.Snapshot()
		slog.Warn("Analysis failed", "error", err, "path", c.Path())
		page := formPage{
			Accept:         s.accept,
			JobDescription: state.JobDescription,
			ErrorMessage:   state.ErrorMessage,
		}
		// Browsers never pre-fill a file input, so name the kept file instead.
		if state.HasFile() {
			page.PreviousFile = state.SelectedFile.Name
		}
		return s.renderForm(c, statusFor(err), page)
	}

	common.LogDebug("Rendering analysis", common.Fields{
		"overall_match": result.OverallMatch,
		"categories":    len(result.ResumeGroups()),
	})

	page, err := newResultsPage(result)
	if err != nil {
		return fmt.Errorf("failed to prepare results: %w", err)
	}
	return s.render(c, fiber.StatusOK, "results.html", page)
}

// readResume returns the uploaded resume, or nil when none was sent.
func readResume(c *fiber.Ctx) (*model.Resume, error) {
	header, err := c.FormFile(fieldResume)
	if errors.Is(err, fasthttp.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to parse multipart form")
	}
	if header.Filename == "" && header.Size == 0 {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded resume: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded resume: %w", err)
	}
	return model.ResumeFromBytes(header.Filename, data), nil
}

func statusFor(err error) int {
	if errors.Is(err, upload.ErrNoFile) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusBadGateway
}

func (s *Server) renderForm(c *fiber.Ctx, status int, page formPage) error {
	return s.render(c, status, "form.html", page)
}

func (s *Server) render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := s.pages.execute(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// handleError renders framework errors, such as an oversized body, as the
// form with a banner rather than a bare status page.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := upload.MsgTransportFailed
	switch code {
	case fiber.StatusRequestEntityTooLarge:
		message = "The uploaded file is too large."
	case fiber.StatusNotFound:
		return c.Status(code).SendString(strings.ToLower(fiber.ErrNotFound.Message))
	}

	slog.Error("Request failed", "error", err, "path", c.Path(), "status", code)
	return s.renderForm(c, code, formPage{Accept: s.accept, ErrorMessage: message})
}
