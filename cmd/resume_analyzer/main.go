// Package main provides the resume_analyzer command: keyword-based skill
// analysis of a résumé from the terminal or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// appConfig and logger are resolved before any subcommand runs
	appConfig = config.Default()
	logger    = logrus.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume skill analyzer",
	Long: "Resume Analyzer counts technical skill keywords in a resume, scores its coverage " +
		"and suggests improvements. Reads PDF, DOCX, HTML and plain text from disk or S3.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (default $RESUME_ANALYZER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// setup resolves configuration from file, environment and defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = os.Getenv("RESUME_ANALYZER_CONFIG")
	}

	cfg, err := config.Resolve(path)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	appConfig = cfg
	logger = observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	return nil
}

// documentOptions maps the resolved config onto document loading options.
func documentOptions(cfg config.Config) *ingestion.Options {
	opts := ingestion.DefaultOptions()
	opts.MaxBytes = cfg.MaxUploadBytes
	opts.S3 = ingestion.S3Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	}
	return opts
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
