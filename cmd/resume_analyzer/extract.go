package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file|s3://bucket/key>",
	Short: "Print the cleaned text extracted from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return extractDocument(cmd.Context(), args[0], documentOptions(appConfig), extractOut, cmd.OutOrStdout())
	},
}

var extractOut string

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write the text to this file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}

// extractDocument writes the normalized text of the document at location.
func extractDocument(ctx context.Context, location string, opts *ingestion.Options, outPath string, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := ingestion.LoadDocument(ctx, location, opts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", location, err)
	}
	extracted, err := ingestion.ExtractText(doc.Name, doc.MIME, doc.Data)
	if err != nil {
		return err
	}

	text := extracted.Text + "\n"
	if outPath == "" {
		_, err = io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(stdout, "Extracted %d characters from %s (%s) to %s\n", len([]rune(extracted.Text)), doc.Name, extracted.Format, outPath)
	return nil
}
