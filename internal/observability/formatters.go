// Package observability provides console output for the CLI: the skill
// report, taxonomy listings and the boxed summaries printed in verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintMetadata outputs a summary of the document that was analyzed.
func (p *Printer) PrintMetadata(meta *types.DocumentMetadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("Format:   %s\n", meta.Format))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", meta.Bytes))
	if meta.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", meta.Pages))
	}
	sb.WriteString(fmt.Sprintf("Text:     %d chars\n", meta.Chars))
	if meta.Hash != "" {
		sb.WriteString(fmt.Sprintf("SHA256:   %s", meta.Hash[:min(len(meta.Hash), 16)]))
	}

	p.printBox("DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopSkills outputs the most mentioned keywords across all categories.
func (p *Printer) PrintTopSkills(report *types.Report) {
	if report == nil || len(report.Categories) == 0 {
		return
	}

	type entry struct {
		category string
		types.KeywordCount
	}
	var all []entry
	for _, c := range report.Categories {
		for _, k := range c.Keywords {
			all = append(all, entry{category: c.Category, KeywordCount: k})
		}
	}
	// stable insertion keeps category order among equal counts
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].Count > all[j-1].Count; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Distinct skills matched: %d\n\n", len(all)))
	count := min(len(all), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %s (%d)\n", i+1, Title(all[i].Keyword), all[i].Count))
		sb.WriteString(fmt.Sprintf("    %s\n", all[i].category))
	}
	if len(all) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(all)-maxItemsToShow))
	}

	p.printBox("TOP SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTaxonomy lists every category with its keywords, followed by the
// critical, soft and industry keyword lists.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTaxonomy(tax *taxonomy.Taxonomy) {
	if tax == nil {
		return
	}

	fmt.Fprintf(p.out, "=== Skill Taxonomy (%d categories, %d keywords) ===\n", tax.Len(), tax.KeywordCount())
	tax.Each(func(category string, keywords []string) {
		fmt.Fprintf(p.out, "[%s]\n", category)
		fmt.Fprintf(p.out, "  %s\n", strings.Join(keywords, ", "))
	})

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Critical Skills: %s\n", strings.Join(taxonomy.CriticalSkills(), ", "))
	fmt.Fprintf(p.out, "Soft Skills: %s\n", strings.Join(taxonomy.SoftSkills(), ", "))

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "=== Industry Keywords ===")
	for _, c := range taxonomy.IndustryKeywords() {
		fmt.Fprintf(p.out, "[%s]\n", c.Name)
		fmt.Fprintf(p.out, "  %s\n", strings.Join(c.Keywords, ", "))
	}
}
