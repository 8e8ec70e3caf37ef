package main

import (
	"github.com/Veraticus/careersync/internal/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resume form in a browser",
		Long: `Serve the resume form and analysis report as web pages. Submissions are
forwarded to the analysis service; nothing is stored.

Examples:
  # Listen on the default address (:3000)
  careersync serve

  # Listen on localhost only
  careersync serve --addr 127.0.0.1:8080`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :3000)")
	cmd.Flags().Int("max-upload-bytes", 0, "largest accepted request body")
	cmd.Flags().Bool("quiet", false, "disable the request log")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = viper.BindPFlag("web.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("web.max_upload_bytes", cmd.Flags().Lookup("max-upload-bytes"))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	srv, err := web.New(web.Config{
		Analyzer:       client,
		Accept:         cfg.Upload.Accept,
		MaxUploadBytes: cfg.Web.MaxUploadBytes,
		AccessLog:      !quiet,
	})
	if err != nil {
		return err
	}

	return srv.ListenAndServe(cmd.Context(), cfg.Web.Addr)
}
