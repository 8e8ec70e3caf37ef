package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/careersync/internal/cli"
	"github.com/Veraticus/careersync/internal/common"
	"github.com/Veraticus/careersync/internal/config"
	"github.com/Veraticus/careersync/internal/export"
	"github.com/Veraticus/careersync/internal/model"
	"github.com/Veraticus/careersync/internal/report"
	"github.com/Veraticus/careersync/internal/upload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Output formats for the analyze command.
const (
	outputSummary = "summary"
	outputJSON    = "json"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a resume without the interactive form",
		Long: `Send one resume and job description to the analysis service and print
the result.

Examples:
  # Print a styled summary
  careersync analyze --resume cv.pdf --job-description "Senior Go engineer"

  # Read the job description from a file and keep the JSON
  careersync analyze --resume cv.pdf --job-file job.txt --save

  # Pipe the raw analysis to another tool
  careersync analyze --resume cv.pdf --job-file job.txt --output json | jq .overall_match`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("resume", "", "path to the resume file")
	cmd.Flags().String("job-description", "", "job description text")
	cmd.Flags().String("job-file", "", "read the job description from a file")
	cmd.Flags().String("output", outputSummary, "output format (summary, json)")
	cmd.Flags().Bool("save", false, "also write resume-analysis.json")
	cmd.Flags().String("export-dir", "", "directory resume-analysis.json is saved to")
	cmd.Flags().Bool("no-progress", false, "do not show the progress spinner")

	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	_ = viper.BindPFlag("export.dir", cmd.Flags().Lookup("export-dir"))

	output, _ := cmd.Flags().GetString("output")
	if output != outputSummary && output != outputJSON {
		return fmt.Errorf("invalid output format %q (use %s or %s)", output, outputSummary, outputJSON)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	resume, err := model.ResumeFromPath(config.ExpandPath(resumePath))
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Cannot read resume %s", resumePath), err)
	}

	jobDescription, err := readJobDescription(cmd)
	if err != nil {
		return err
	}

	client, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	// Set up interrupt handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	interruptHandler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx = interruptHandler.HandleInterrupts(ctx)

	form := upload.NewForm()
	form.SelectFile(resume)
	form.EditJobDescription(jobDescription)

	var spinner *cli.Spinner
	if showProgress(cmd) {
		spinner = cli.StartSpinner(cmd.ErrOrStderr(), "Analyzing "+resume.Name)
	}
	result, err := form.Submit(ctx, client)
	if spinner != nil {
		spinner.Stop()
	}

	if err != nil {
		// Either signal handler may observe ctrl+c first.
		if interruptHandler.WasInterrupted() || errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		common.LogError(err, "Analysis failed", common.Fields{"resume": resume.Name})
		return common.NewUserError(form.Snapshot().ErrorMessage, err)
	}

	common.LogInfo("Analysis complete", common.Fields{
		"overall_match": result.OverallMatch,
		"skill_match":   result.SkillMatch,
	})

	if err := printResult(cmd, output, result); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := export.Save(cfg.Export.Dir, result)
		if err != nil {
			return common.NewUserError("Failed to save the analysis", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Saved "+path))
	}

	return nil
}

func readJobDescription(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("job-file"); path != "" {
		data, err := os.ReadFile(config.ExpandPath(path)) // #nosec G304 -- path chosen by the user
		if err != nil {
			return "", common.NewUserError(fmt.Sprintf("Cannot read job description %s", path), err)
		}
		return string(data), nil
	}

	text, _ := cmd.Flags().GetString("job-description")
	return text, nil
}

func printResult(cmd *cobra.Command, output string, result *model.AnalysisResult) error {
	out := cmd.OutOrStdout()

	if output == outputJSON {
		data, err := export.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	renderer := report.NewRenderer()
	if width := terminalWidth(out); width > 0 {
		renderer = renderer.WithWidth(width)
	}
	_, err := fmt.Fprintln(out, strings.TrimRight(renderer.Render(result), "\n"))
	return err
}

// showProgress reports whether stderr is a terminal worth drawing on.
func showProgress(cmd *cobra.Command) bool {
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); noProgress {
		return false
	}
	f, ok := cmd.ErrOrStderr().(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func terminalWidth(w any) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
	if err != nil {
		slog.Debug("Failed to read terminal size", "error", err)
		return 0
	}
	return width
}
