package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/careersync/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is canceled. It returns the last analysis shown, if any.
func Run(ctx context.Context, opts ...Option) (*model.AnalysisResult, error) {
	m, err := New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	slog.Debug("Starting TUI", "alt_screen", m.config.AltScreen, "export_dir", m.config.ExportDir)

	final, err := tea.NewProgram(m, programOpts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return fm.Results(), nil
}
