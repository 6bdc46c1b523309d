// Package analysis ties the matcher, scorer and suggestion engine together into a
// single-pass report over one document's text.
package analysis

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer runs analyses against a fixed taxonomy. It holds no per-run state and
// is safe for concurrent use.
type Analyzer struct {
	taxonomy *taxonomy.Taxonomy
}

// New returns an Analyzer for tax, or for the default taxonomy when tax is nil.
func New(tax *taxonomy.Taxonomy) *Analyzer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Analyzer{taxonomy: tax}
}

// Taxonomy returns the taxonomy this analyzer matches against.
func (a *Analyzer) Taxonomy() *taxonomy.Taxonomy {
	return a.taxonomy
}

// Analyze matches text and returns the result with its total mention count.
func (a *Analyzer) Analyze(text string) (types.SkillMatchResult, int) {
	result := matching.Match(text, a.taxonomy)
	return result, result.TotalMentions()
}

// Run produces a full report. Blank text is an extraction failure and yields no report.
func (a *Analyzer) Run(text string, doc *types.DocumentMetadata) (*types.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ingestion.ExtractionError{Message: "document yielded no text"}
	}

	lower := strings.ToLower(text)
	result, total := a.Analyze(lower)

	return &types.Report{
		ID:              uuid.NewString(),
		TotalMentions:   total,
		CategoriesFound: result.CategoryCount(),
		CoverageScore:   scoring.Score(result),
		Categories:      SortForDisplay(result),
		Suggestions:     suggestions.Suggest(result, lower),
		Document:        doc,
	}, nil
}

// Analyze matches text against the default taxonomy.
func Analyze(text string) (types.SkillMatchResult, int) {
	return New(nil).Analyze(text)
}

// GenerateSuggestions runs the suggestion pipeline.
func GenerateSuggestions(result types.SkillMatchResult, text string) []types.Suggestion {
	return suggestions.Suggest(result, text)
}

// Score returns the coverage score of result.
func Score(result types.SkillMatchResult) float64 {
	return scoring.Score(result)
}

// SortForDisplay returns a copy of result's categories with keywords ordered by
// descending count. Equal counts keep taxonomy order.
func SortForDisplay(result types.SkillMatchResult) []types.CategoryMatch {
	out := make([]types.CategoryMatch, len(result.Categories))
	for i, c := range result.Categories {
		keywords := append([]types.KeywordCount(nil), c.Keywords...)
		sort.SliceStable(keywords, func(a, b int) bool {
			return keywords[a].Count > keywords[b].Count
		})
		out[i] = types.CategoryMatch{Category: c.Category, Keywords: keywords}
	}
	return out
}
