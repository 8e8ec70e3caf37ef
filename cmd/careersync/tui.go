package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/careersync/internal/cli"
	"github.com/Veraticus/careersync/internal/config"
	"github.com/Veraticus/careersync/internal/tui"
	"github.com/Veraticus/careersync/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive resume form",
		Long: `Open the interactive form: pick a resume, paste a job description and
submit it for analysis. Results stay on screen until the next successful
submission, and can be saved as resume-analysis.json.

Examples:
  # Open the form in the current directory
  careersync tui

  # Start browsing from your documents and use a darker theme
  careersync tui --start-dir ~/Documents --theme catppuccin-mocha`,
		RunE: runTUI,
	}

	addTUIFlags(cmd)
	return cmd
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	cmd.Flags().String("start-dir", "", "directory the file picker opens in")
	cmd.Flags().String("export-dir", "", "directory resume-analysis.json is saved to")
	cmd.Flags().Bool("no-alt-screen", false, "render inline instead of taking over the terminal")
	cmd.Flags().Bool("help-keys", false, "show the full key help on start")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Flags are bound here so the root command and the tui subcommand do
	// not overwrite each other's bindings.
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("export.dir", cmd.Flags().Lookup("export-dir"))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	logWriter, closeLog, err := openTUILog(cfg.TUI.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := setupLogging(logWriter); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	client, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	startDir, _ := cmd.Flags().GetString("start-dir")
	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")
	showHelp, _ := cmd.Flags().GetBool("help-keys")

	result, err := tui.Run(cmd.Context(),
		tui.WithAnalyzer(client),
		tui.WithTheme(themes.GetTheme(cfg.TUI.Theme)),
		tui.WithAccept(cfg.Upload.Accept),
		tui.WithStartDir(config.ExpandPath(startDir)),
		tui.WithExportDir(cfg.Export.Dir),
		tui.WithAltScreen(!noAltScreen),
		tui.WithHelp(showHelp),
	)
	if err != nil {
		return err
	}

	if result != nil {
		slog.Info("Session ended with results", "overall_match", result.OverallMatch)
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Last analysis: "+result.Recommendation))
	}
	return nil
}

func openTUILog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304 -- path from user config
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open TUI log file: %w", err)
	}
	return f, func() {
		_ = f.Close()
	}, nil
}
