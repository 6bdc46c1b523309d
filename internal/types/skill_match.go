// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillMatchResult holds per-category keyword counts for one analyzed document.
// Only categories with at least one matched keyword are present, and only keywords
// with a positive count. Categories and keywords keep taxonomy order.
type SkillMatchResult struct {
	Categories []CategoryMatch `json:"categories"`
}

// CategoryMatch is the set of matched keywords for a single taxonomy category
type CategoryMatch struct {
	Category string         `json:"category"`
	Keywords []KeywordCount `json:"keywords"`
}

// KeywordCount is the number of whole-word occurrences of a keyword
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TotalMentions sums every keyword count across all categories.
func (r SkillMatchResult) TotalMentions() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Mentions()
	}
	return total
}

// UniqueKeywords counts distinct (category, keyword) pairs.
func (r SkillMatchResult) UniqueKeywords() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Keywords)
	}
	return n
}

// CategoryCount returns the number of categories with at least one match.
func (r SkillMatchResult) CategoryCount() int {
	return len(r.Categories)
}

// IsEmpty reports whether nothing matched.
func (r SkillMatchResult) IsEmpty() bool {
	return len(r.Categories) == 0
}

// Category looks up a category by name.
func (r SkillMatchResult) Category(name string) (CategoryMatch, bool) {
	for _, c := range r.Categories {
		if c.Category == name {
			return c, true
		}
	}
	return CategoryMatch{}, false
}

// Count returns the match count for keyword within category, or 0 when absent.
func (r SkillMatchResult) Count(category, keyword string) int {
	c, ok := r.Category(category)
	if !ok {
		return 0
	}
	for _, k := range c.Keywords {
		if k.Keyword == keyword {
			return k.Count
		}
	}
	return 0
}

// Counts flattens the result into nested maps keyed by category then keyword.
func (r SkillMatchResult) Counts() map[string]map[string]int {
	out := make(map[string]map[string]int, len(r.Categories))
	for _, c := range r.Categories {
		inner := make(map[string]int, len(c.Keywords))
		for _, k := range c.Keywords {
			inner[k.Keyword] = k.Count
		}
		out[c.Category] = inner
	}
	return out
}

// Mentions sums the keyword counts of this category.
func (c CategoryMatch) Mentions() int {
	total := 0
	for _, k := range c.Keywords {
		total += k.Count
	}
	return total
}
