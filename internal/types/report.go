// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SuggestionKind identifies which improvement rule produced a suggestion
type SuggestionKind string

// Suggestion kinds, in the order the rules are evaluated
const (
	SuggestionMissingCriticalSkills SuggestionKind = "Missing Critical Skills"
	SuggestionSkillDiversity        SuggestionKind = "Skill Diversity"
	SuggestionCloudSkills           SuggestionKind = "Cloud Skills"
	SuggestionTestingSkills         SuggestionKind = "Testing Skills"
	SuggestionSoftSkills            SuggestionKind = "Soft Skills"
)

// Suggestion is a single heuristic improvement hint
type Suggestion struct {
	Kind        SuggestionKind `json:"type"`
	Description string         `json:"description"`
}

// Report is the rendered outcome of analyzing one document.
// Categories are in taxonomy order; keywords inside each category are sorted by
// descending count with taxonomy order breaking ties.
type Report struct {
	ID              string            `json:"id"`
	TotalMentions   int               `json:"total_mentions"`
	CategoriesFound int               `json:"categories_found"`
	CoverageScore   float64           `json:"coverage_score"`
	Categories      []CategoryMatch   `json:"categories"`
	Suggestions     []Suggestion      `json:"suggestions"`
	Document        *DocumentMetadata `json:"document,omitempty"`
}

// DocumentMetadata describes the document a report was produced from
type DocumentMetadata struct {
	Source    string `json:"source,omitempty"` // File path, upload name or s3:// URI
	Format    string `json:"format,omitempty"` // pdf, docx, html, text
	Bytes     int    `json:"bytes"`            // Size of the raw document
	Pages     int    `json:"pages,omitempty"`  // Page count when the format has pages
	Chars     int    `json:"chars"`            // Length of extracted text in runes
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of the raw document
}
