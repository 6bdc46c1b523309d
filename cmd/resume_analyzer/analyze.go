package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|s3://bucket/key>",
	Short: "Analyze a resume and print its skill report",
	Long: "Extract text from a resume (PDF, DOCX, HTML or plain text), count skill keyword mentions " +
		"per category, compute the coverage score and print improvement suggestions.",
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeFormat   string
	analyzeTaxonomy string
	analyzeOut      string
	analyzeVerbose  bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Output format: text or json (default from config, else text)")
	analyzeCmd.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t", "", "Path to a taxonomy JSON file replacing the built-in one")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the report to this file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print document details and top skills")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOptions are the resolved settings for one analysis run
type analyzeOptions struct {
	Format   string
	Taxonomy string
	Out      string
	Verbose  bool
	Document *ingestion.Options
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := resolveAnalyzeOptions(appConfig)
	return analyzeDocument(cmd.Context(), args[0], opts, cmd.OutOrStdout(), logger)
}

// resolveAnalyzeOptions merges command flags over the config file values.
func resolveAnalyzeOptions(cfg config.Config) analyzeOptions {
	fromFlags := config.Config{Format: analyzeFormat, Taxonomy: analyzeTaxonomy}
	merged := fromFlags.MergeWithDefaults(cfg)

	return analyzeOptions{
		Format:   merged.Format,
		Taxonomy: merged.Taxonomy,
		Out:      analyzeOut,
		Verbose:  analyzeVerbose || cfg.Verbose,
		Document: documentOptions(cfg),
	}
}

// analyzeDocument loads, extracts and analyzes the document at location and
// writes the report to opts.Out or stdout.
func analyzeDocument(ctx context.Context, location string, opts analyzeOptions, stdout io.Writer, log *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Format == "" {
		opts.Format = config.DefaultOutputFormat
	}
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("invalid --format %q: must be text or json", opts.Format)
	}

	tax, err := taxonomy.LoadOrDefault(opts.Taxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	doc, err := ingestion.LoadDocument(ctx, location, opts.Document)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", location, err)
	}

	extracted, err := ingestion.ExtractText(doc.Name, doc.MIME, doc.Data)
	if err != nil {
		return err
	}

	meta := ingestion.NewMetadata(doc, extracted)
	meta.Source = location
	log.WithFields(logrus.Fields{
		"source": location,
		"format": extracted.Format,
		"pages":  extracted.Pages,
		"chars":  meta.Chars,
	}).Debug("extracted document text")

	report, err := analysis.New(tax).Run(extracted.Text, meta)
	if err != nil {
		return err
	}

	if opts.Out == "" {
		return writeReport(stdout, report, opts)
	}

	if err := writeReportFile(opts.Out, report, opts); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Report written to %s\n", opts.Out)
	return nil
}

// createOutput opens the --out destination.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeReportFile writes the report to path, returning any close error.
func writeReportFile(path string, report *types.Report, opts analyzeOptions) error {
	f, err := createOutput(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck // backstop for the error paths below

	if err := writeReport(f, report, opts); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// writeReport renders report as JSON or as the console text report.
func writeReport(out io.Writer, report *types.Report, opts analyzeOptions) error {
	if opts.Format == "json" {
		return writeJSONReport(out, report)
	}

	p := observability.NewPrinter(out)
	if opts.Verbose {
		p.PrintMetadata(report.Document)
		p.PrintTopSkills(report)
	}
	p.PrintReport(report)
	return nil
}

// writeJSONReport encodes report and checks it against the report schema.
func writeJSONReport(out io.Writer, report *types.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := schemas.ValidateReport(data); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	data = append(data, '\n')
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
