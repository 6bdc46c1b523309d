package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the skill taxonomy and keyword lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := taxonomyPath
		if path == "" {
			path = appConfig.Taxonomy
		}
		return printTaxonomy(path, taxonomyFormat, cmd.OutOrStdout())
	},
}

var (
	taxonomyPath   string
	taxonomyFormat string
)

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "Path to a taxonomy JSON file replacing the built-in one")
	taxonomyCmd.Flags().StringVarP(&taxonomyFormat, "format", "f", "text", "Output format: text or json")
	rootCmd.AddCommand(taxonomyCmd)
}

func printTaxonomy(path, format string, out io.Writer) error {
	tax, err := taxonomy.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	switch format {
	case "", "text":
		observability.NewPrinter(out).PrintTaxonomy(tax)
		return nil
	case "json":
		data, err := json.MarshalIndent(tax.Listing(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal taxonomy: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	default:
		return fmt.Errorf("invalid --format %q: must be text or json", format)
	}
}
