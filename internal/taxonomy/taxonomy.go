// Package taxonomy holds the skill keyword taxonomy used to classify résumé text.
//
// A Taxonomy is immutable once built: accessors hand out copies, so a single
// instance can be shared across goroutines without locking.
package taxonomy

import (
	"fmt"
	"strings"
)

// Category is a named, ordered group of skill keywords
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Taxonomy is an ordered, read-only set of categories
type Taxonomy struct {
	categories []Category
}

// ValidationError reports a structural problem in taxonomy data
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid taxonomy: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid taxonomy: %s", e.Message)
}

// New builds a Taxonomy from categories. Names and keywords are trimmed and
// keywords lowercased. Category names must be unique and non-empty; keywords must
// be non-empty and unique within their category.
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, &ValidationError{Message: "at least one category is required"}
	}

	seenCategories := make(map[string]bool, len(categories))
	built := make([]Category, 0, len(categories))

	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, &ValidationError{Field: fmt.Sprintf("categories[%d].name", i), Message: "must not be empty"}
		}
		if seenCategories[name] {
			return nil, &ValidationError{Field: fmt.Sprintf("categories[%d].name", i), Message: fmt.Sprintf("duplicate category %q", name)}
		}
		seenCategories[name] = true

		if len(c.Keywords) == 0 {
			return nil, &ValidationError{Field: name, Message: "category has no keywords"}
		}

		seenKeywords := make(map[string]bool, len(c.Keywords))
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, &ValidationError{Field: name, Message: "empty keyword"}
			}
			if seenKeywords[kw] {
				return nil, &ValidationError{Field: name, Message: fmt.Sprintf("duplicate keyword %q", kw)}
			}
			seenKeywords[kw] = true
			keywords = append(keywords, kw)
		}

		built = append(built, Category{Name: name, Keywords: keywords})
	}

	return &Taxonomy{categories: built}, nil
}

// MustNew is like New but panics on invalid input. Intended for package-level data.
func MustNew(categories []Category) *Taxonomy {
	t, err := New(categories)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories returns a copy of the categories in order.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// KeywordCount returns the number of (category, keyword) pairs.
func (t *Taxonomy) KeywordCount() int {
	n := 0
	for _, c := range t.categories {
		n += len(c.Keywords)
	}
	return n
}

// Each calls fn for every category in order. The keywords slice must not be modified.
func (t *Taxonomy) Each(fn func(category string, keywords []string)) {
	for _, c := range t.categories {
		fn(c.Name, c.Keywords)
	}
}

// Position returns the index of keyword within category, or -1.
func (t *Taxonomy) Position(category, keyword string) int {
	for _, c := range t.categories {
		if c.Name != category {
			continue
		}
		for i, kw := range c.Keywords {
			if kw == keyword {
				return i
			}
		}
	}
	return -1
}
