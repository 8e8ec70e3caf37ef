package tui

import (
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/Veraticus/careersync/internal/upload"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Analyzer  upload.Analyzer
	StartDir  string
	ExportDir string
	Accept    []string
	Width     int
	Height    int
	AltScreen bool
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Accept:    []string{".pdf"},
		ExportDir: ".",
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithAnalyzer sets the analysis service client.
func WithAnalyzer(analyzer upload.Analyzer) Option {
	return func(c *Config) {
		c.Analyzer = analyzer
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithAccept sets the extensions the file picker suggests.
func WithAccept(extensions []string) Option {
	return func(c *Config) {
		c.Accept = extensions
	}
}

// WithStartDir sets the directory the file picker opens in.
func WithStartDir(dir string) Option {
	return func(c *Config) {
		c.StartDir = dir
	}
}

// WithExportDir sets where downloaded analyses are saved.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithAltScreen controls whether the program takes over the full terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithHelp controls whether the full key help is shown at start.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}
