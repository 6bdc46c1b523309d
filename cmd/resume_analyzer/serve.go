package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP upload server",
	Long:  "Serve an upload form at / and a JSON API at POST /analyze, GET /taxonomy and GET /health.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config or $PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := serverConfig(appConfig, servePort)
	if err != nil {
		return err
	}

	tax, err := taxonomy.LoadOrDefault(appConfig.Taxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	logger.WithField("port", cfg.Port).Info("starting resume analyzer server")
	srv := server.New(cfg, analysis.New(tax), logger)
	return srv.Start()
}

// serverConfig builds the server settings from the resolved config. A
// non-zero port overrides the configured one.
func serverConfig(cfg config.Config, port int) (server.Config, error) {
	if port != 0 {
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return server.Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	formats := make([]ingestion.Format, 0, len(cfg.AllowedFormats))
	for _, name := range cfg.AllowedFormats {
		f, ok := ingestion.ParseFormat(name)
		if !ok {
			return server.Config{}, fmt.Errorf("unknown document format %q", name)
		}
		formats = append(formats, f)
	}

	return server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedFormats: formats,
	}, nil
}
