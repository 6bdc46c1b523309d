package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Match counts every taxonomy keyword in text. The text is lowercased here, so
// matching is case-insensitive regardless of what the caller passes. Keywords are
// counted independently: "javascript" never contributes to "java" because the
// boundary rule rejects it, not because another keyword claimed the span.
func Match(text string, tax *taxonomy.Taxonomy) types.SkillMatchResult {
	lower := strings.ToLower(text)
	result := types.SkillMatchResult{Categories: []types.CategoryMatch{}}

	tax.Each(func(category string, keywords []string) {
		var found []types.KeywordCount
		for _, kw := range keywords {
			if n := CountOccurrences(lower, kw); n > 0 {
				found = append(found, types.KeywordCount{Keyword: kw, Count: n})
			}
		}
		if len(found) > 0 {
			result.Categories = append(result.Categories, types.CategoryMatch{
				Category: category,
				Keywords: found,
			})
		}
	})

	return result
}
