// Package suggestions produces heuristic improvement hints for an analyzed résumé.
//
// The engine is an ordered pipeline of independent rules. Every rule runs on
// every call and appends at most one suggestion; no rule suppresses another.
// The order of the pipeline is the display order.
package suggestions

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// maxListedCritical is how many missing critical skills are named in the suggestion
	maxListedCritical = 5

	// minCategories is the category count below which diversity is flagged
	minCategories = 3

	// minSoftSkills is the soft-skill count below which soft skills are flagged
	minSoftSkills = 2
)

// Rule is one step of the pipeline. Evaluate returns the suggestion description
// and whether the rule fired. text is already lowercased.
type Rule struct {
	Kind     types.SuggestionKind
	Evaluate func(result types.SkillMatchResult, text string) (string, bool)
}

// Rules returns the pipeline in evaluation order.
func Rules() []Rule {
	return []Rule{
		{Kind: types.SuggestionMissingCriticalSkills, Evaluate: missingCriticalSkills},
		{Kind: types.SuggestionSkillDiversity, Evaluate: skillDiversity},
		{Kind: types.SuggestionCloudSkills, Evaluate: cloudSkills},
		{Kind: types.SuggestionTestingSkills, Evaluate: testingSkills},
		{Kind: types.SuggestionSoftSkills, Evaluate: softSkills},
	}
}

// Suggest runs every rule against result and text and returns the triggered
// suggestions in rule order. The returned slice is never nil.
func Suggest(result types.SkillMatchResult, text string) []types.Suggestion {
	lower := strings.ToLower(text)
	out := make([]types.Suggestion, 0, 5)
	for _, rule := range Rules() {
		if desc, ok := rule.Evaluate(result, lower); ok {
			out = append(out, types.Suggestion{Kind: rule.Kind, Description: desc})
		}
	}
	return out
}

// MissingCriticalSkills lists critical skills absent from text as whole words, in list order.
func MissingCriticalSkills(text string) []string {
	var missing []string
	for _, skill := range taxonomy.CriticalSkills() {
		if !matching.ContainsWord(text, skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// FoundSoftSkills lists soft skills present in text as plain substrings.
func FoundSoftSkills(text string) []string {
	var found []string
	for _, skill := range taxonomy.SoftSkills() {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

func missingCriticalSkills(_ types.SkillMatchResult, text string) (string, bool) {
	missing := MissingCriticalSkills(text)
	if len(missing) == 0 {
		return "", false
	}
	if len(missing) > maxListedCritical {
		missing = missing[:maxListedCritical]
	}
	return "Consider adding these high-demand skills: " + strings.Join(missing, ", "), true
}

func skillDiversity(result types.SkillMatchResult, _ string) (string, bool) {
	if result.CategoryCount() >= minCategories {
		return "", false
	}
	return "Expand skill categories. Include more diverse technical skills.", true
}

// cloudSkills uses substring containment, so "cloudy" or "laws" satisfy it.
func cloudSkills(_ types.SkillMatchResult, text string) (string, bool) {
	for _, needle := range []string{"cloud", "aws", "azure"} {
		if strings.Contains(text, needle) {
			return "", false
		}
	}
	return "Add cloud platform experience (AWS, Azure, GCP)", true
}

func testingSkills(_ types.SkillMatchResult, text string) (string, bool) {
	if strings.Contains(text, "test") {
		return "", false
	}
	return "Mention testing experience (unit testing, integration testing)", true
}

func softSkills(_ types.SkillMatchResult, text string) (string, bool) {
	if len(FoundSoftSkills(text)) >= minSoftSkills {
		return "", false
	}
	return "Include more soft skills (leadership, communication, teamwork)", true
}
