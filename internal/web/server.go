// Package web serves the resume form and analysis report as server-rendered
// HTML.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/Veraticus/careersync/internal/config"
	"github.com/Veraticus/careersync/internal/upload"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"
)

const (
	appName         = "CareerSync AI"
	readTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	Analyzer upload.Analyzer
	// Accept lists the extensions offered by the browser's file input.
	Accept []string
	// MaxUploadBytes caps the request body. Zero uses the default.
	MaxUploadBytes int
	// WriteTimeout bounds a whole response, analysis included. Zero disables it.
	WriteTimeout time.Duration
	// AccessLog disables the request logger when false.
	AccessLog bool
}

// Server is the browser front-end.
type Server struct {
	app      *fiber.App
	analyzer upload.Analyzer
	pages    *pages
	accept   string
}

// New builds the fiber app and registers routes.
func New(cfg Config) (*Server, error) {
	if cfg.Analyzer == nil {
		return nil, errors.New("web server requires an analyzer")
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = config.DefaultMaxUploadBytes
	}

	p, err := loadPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		analyzer: cfg.Analyzer,
		pages:    p,
		accept:   acceptAttr(cfg.Accept),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           readTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.MaxUploadBytes,
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	if cfg.AccessLog {
		s.app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	s.app.Get("/", s.handleForm)
	s.app.Post("/analyze", s.handleAnalyze)
	s.app.Get("/healthz", s.handleHealth)

	return s, nil
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// ListenAndServe listens on addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Web server listening", "addr", ln.Addr().String())
		if err := s.app.Listener(ln); err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down web server")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down web server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
