package observability

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback lines for reports with nothing to list.
const (
	NoSkillsMessage      = "No technical skills found in the resume."
	NoSuggestionsMessage = "Excellent! No major improvements needed."
)

// PrintReport writes the plain-text skill report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "=== Skill Analysis Report ===")
	fmt.Fprintf(p.out, "Total Skill Mentions: %d\n", report.TotalMentions)
	fmt.Fprintf(p.out, "Skill Categories Found: %d\n", report.CategoriesFound)
	fmt.Fprintf(p.out, "Skill Coverage Score: %s\n\n", FormatScore(report.CoverageScore))

	if len(report.Categories) > 0 {
		for _, c := range report.Categories {
			fmt.Fprintf(p.out, "[%s]\n", c.Category)
			for _, k := range c.Keywords {
				fmt.Fprintf(p.out, "  - %s: %s\n", Title(k.Keyword), Mentions(k.Count))
			}
			fmt.Fprintln(p.out)
		}
	} else {
		fmt.Fprintf(p.out, "%s\n\n", NoSkillsMessage)
	}

	fmt.Fprintln(p.out, "=== Improvement Suggestions ===")
	if len(report.Suggestions) == 0 {
		fmt.Fprintln(p.out, NoSuggestionsMessage)
		return
	}
	for i, s := range report.Suggestions {
		fmt.Fprintf(p.out, "%d. %s: %s\n", i+1, s.Kind, s.Description)
	}
}

// FormatScore renders a coverage score with one decimal place.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score)
}

// Mentions renders a count as "N mention" or "N mentions".
func Mentions(count int) string {
	if count == 1 {
		return "1 mention"
	}
	return fmt.Sprintf("%d mentions", count)
}

// Title capitalizes the first letter of every run of letters and lowercases
// the rest, so "node.js" becomes "Node.Js" and "ci/cd" becomes "Ci/Cd".
func Title(s string) string {
	caser := cases.Title(language.English)

	var sb strings.Builder
	runStart := -1
	flush := func(end int) {
		if runStart >= 0 {
			sb.WriteString(caser.String(s[runStart:end]))
			runStart = -1
		}
	}
	for i, r := range s {
		if unicode.IsLetter(r) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
		sb.WriteRune(r)
	}
	flush(len(s))
	return sb.String()
}
