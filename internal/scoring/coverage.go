// Package scoring converts skill match results into a coverage percentage.
package scoring

import "github.com/jonathan/resume-analyzer/internal/types"

const (
	// Baseline is the number of distinct matched keywords treated as full coverage.
	Baseline = 30

	// MaxScore caps the coverage percentage.
	MaxScore = 100.0
)

// Score returns min(100, distinct/30*100), where distinct counts (category, keyword)
// pairs, not mentions. A keyword listed in two categories counts twice.
func Score(result types.SkillMatchResult) float64 {
	unique := result.UniqueKeywords()
	score := float64(unique) / Baseline * 100
	return min(MaxScore, score)
}
