package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.Report{
		TotalMentions:   5,
		CategoriesFound: 2,
		CoverageScore:   10.0,
		Categories: []types.CategoryMatch{
			{Category: "Programming Languages", Keywords: []types.KeywordCount{
				{Keyword: "python", Count: 3},
				{Keyword: "c++", Count: 1},
			}},
			{Category: "Web Technologies", Keywords: []types.KeywordCount{
				{Keyword: "node.js", Count: 1},
			}},
		},
		Suggestions: []types.Suggestion{
			{Kind: types.SuggestionCloudSkills, Description: "Add cloud platform experience (AWS, Azure, GCP)"},
			{Kind: types.SuggestionSoftSkills, Description: "Include more soft skills (leadership, communication, teamwork)"},
		},
	})

	expected := `
=== Skill Analysis Report ===
Total Skill Mentions: 5
Skill Categories Found: 2
Skill Coverage Score: 10.0%

[Programming Languages]
  - Python: 3 mentions
  - C++: 1 mention

[Web Technologies]
  - Node.Js: 1 mention

=== Improvement Suggestions ===
1. Cloud Skills: Add cloud platform experience (AWS, Azure, GCP)
2. Soft Skills: Include more soft skills (leadership, communication, teamwork)
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.Report{Categories: []types.CategoryMatch{}, Suggestions: []types.Suggestion{}})

	expected := `
=== Skill Analysis Report ===
Total Skill Mentions: 0
Skill Categories Found: 0
Skill Coverage Score: 0.0%

No technical skills found in the resume.

=== Improvement Suggestions ===
Excellent! No major improvements needed.
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.0%", FormatScore(0))
	assert.Equal(t, "3.3%", FormatScore(100.0/30.0))
	assert.Equal(t, "66.7%", FormatScore(20.0/30.0*100))
	assert.Equal(t, "100.0%", FormatScore(100))
}

func TestMentions(t *testing.T) {
	assert.Equal(t, "1 mention", Mentions(1))
	assert.Equal(t, "2 mentions", Mentions(2))
	assert.Equal(t, "12 mentions", Mentions(12))
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"python":           "Python",
		"machine learning": "Machine Learning",
		"c++":              "C++",
		"c#":               "C#",
		"node.js":          "Node.Js",
		"ci/cd":            "Ci/Cd",
		"scikit-learn":     "Scikit-Learn",
		"neo4j":            "Neo4J",
		"rest api":         "Rest Api",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Title(in), in)
	}
}
