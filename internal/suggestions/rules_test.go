package suggestions

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(suggestions []types.Suggestion) []types.SuggestionKind {
	out := make([]types.SuggestionKind, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Kind)
	}
	return out
}

func suggestFor(text string) []types.Suggestion {
	return Suggest(matching.Match(text, taxonomy.Default()), text)
}

func TestSuggest_EmptyText(t *testing.T) {
	got := Suggest(types.SkillMatchResult{}, "")

	assert.Equal(t, []types.Suggestion{
		{Kind: types.SuggestionMissingCriticalSkills, Description: "Consider adding these high-demand skills: python, sql, git, javascript, react"},
		{Kind: types.SuggestionSkillDiversity, Description: "Expand skill categories. Include more diverse technical skills."},
		{Kind: types.SuggestionCloudSkills, Description: "Add cloud platform experience (AWS, Azure, GCP)"},
		{Kind: types.SuggestionTestingSkills, Description: "Mention testing experience (unit testing, integration testing)"},
		{Kind: types.SuggestionSoftSkills, Description: "Include more soft skills (leadership, communication, teamwork)"},
	}, got)
}

func TestSuggest_NoCriticalSkillsNoCategories(t *testing.T) {
	got := suggestFor("hello world, i write novels")

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, types.SuggestionMissingCriticalSkills, got[0].Kind)
	assert.Equal(t, "Consider adding these high-demand skills: python, sql, git, javascript, react", got[0].Description)
	assert.Equal(t, types.SuggestionSkillDiversity, got[1].Kind)
}

func TestSuggest_TwoCategoriesWithAWS(t *testing.T) {
	text := "aws and python"
	result := matching.Match(text, taxonomy.Default())
	require.Equal(t, 2, result.CategoryCount())

	got := kinds(Suggest(result, text))

	assert.NotContains(t, got, types.SuggestionCloudSkills)
	assert.Contains(t, got, types.SuggestionSkillDiversity)
}

func TestSuggest_NothingToImprove(t *testing.T) {
	text := "python sql git javascript react aws docker machine learning data analysis agile " +
		"unit testing leadership communication"

	assert.Empty(t, suggestFor(text))
}

func TestSuggest_OrderIsFixed(t *testing.T) {
	// Only diversity and soft skills fire here; their relative order must hold.
	text := "python sql git javascript react aws docker machine learning data analysis agile testing"
	result := types.SkillMatchResult{}

	assert.Equal(t, []types.SuggestionKind{
		types.SuggestionSkillDiversity,
		types.SuggestionSoftSkills,
	}, kinds(Suggest(result, text)))
}

func TestSuggest_Deterministic(t *testing.T) {
	text := "go developer with some kubernetes"
	result := matching.Match(text, taxonomy.Default())

	first := Suggest(result, text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Suggest(result, text))
	}
}

func TestSuggest_LowercasesText(t *testing.T) {
	assert.Equal(t, Suggest(types.SkillMatchResult{}, "AWS TESTING LEADERSHIP TEAMWORK"),
		Suggest(types.SkillMatchResult{}, "aws testing leadership teamwork"))
}

func TestMissingCriticalSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "all missing",
			text: "",
			want: taxonomy.CriticalSkills(),
		},
		{
			name: "word boundary applies",
			text: "github pythonic javascripts",
			want: []string{"python", "sql", "git", "javascript", "react", "aws", "docker", "machine learning", "data analysis", "agile"},
		},
		{
			name: "some present",
			text: "python, git and docker; agile team",
			want: []string{"sql", "javascript", "react", "aws", "machine learning", "data analysis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingCriticalSkills(tt.text))
		})
	}
}

func TestMissingCriticalRule_ListsFirstFive(t *testing.T) {
	desc, ok := missingCriticalSkills(types.SkillMatchResult{}, "python sql")
	require.True(t, ok)
	assert.Equal(t, "Consider adding these high-demand skills: git, javascript, react, aws, docker", desc)

	desc, ok = missingCriticalSkills(types.SkillMatchResult{}, "python sql git javascript react aws docker machine learning")
	require.True(t, ok)
	assert.Equal(t, "Consider adding these high-demand skills: data analysis, agile", desc)
}

func TestSkillDiversityRule(t *testing.T) {
	three := types.SkillMatchResult{Categories: []types.CategoryMatch{
		{Category: "A", Keywords: []types.KeywordCount{{Keyword: "a", Count: 1}}},
		{Category: "B", Keywords: []types.KeywordCount{{Keyword: "b", Count: 1}}},
		{Category: "C", Keywords: []types.KeywordCount{{Keyword: "c", Count: 1}}},
	}}
	_, ok := skillDiversity(three, "")
	assert.False(t, ok)

	two := types.SkillMatchResult{Categories: three.Categories[:2]}
	_, ok = skillDiversity(two, "")
	assert.True(t, ok)
}

func TestCloudRule_SubstringContainment(t *testing.T) {
	for _, text := range []string{"cloudy skies", "laws", "azure", "soundcloud"} {
		_, ok := cloudSkills(types.SkillMatchResult{}, text)
		assert.False(t, ok, text)
	}
	_, ok := cloudSkills(types.SkillMatchResult{}, "on-prem servers")
	assert.True(t, ok)
}

func TestTestingRule_SubstringContainment(t *testing.T) {
	_, ok := testingSkills(types.SkillMatchResult{}, "attestation")
	assert.False(t, ok)

	_, ok = testingSkills(types.SkillMatchResult{}, "qa engineer")
	assert.True(t, ok)
}

func TestSoftSkillsRule(t *testing.T) {
	tests := []struct {
		text    string
		trigger bool
	}{
		{text: "", trigger: true},
		{text: "teamwork", trigger: true},
		{text: "leadership and communication", trigger: false},
		{text: "problem solving, teamwork", trigger: false},
		{text: "miscommunications with teamworkers", trigger: false},
	}

	for _, tt := range tests {
		_, ok := softSkills(types.SkillMatchResult{}, tt.text)
		assert.Equal(t, tt.trigger, ok, tt.text)
	}
}

func TestFoundSoftSkills(t *testing.T) {
	assert.Equal(t, []string{"leadership", "problem solving"}, FoundSoftSkills("leadership; problem solving"))
	assert.Empty(t, FoundSoftSkills("none here"))
}

func TestRules_Order(t *testing.T) {
	var got []types.SuggestionKind
	for _, r := range Rules() {
		got = append(got, r.Kind)
	}
	assert.Equal(t, []types.SuggestionKind{
		types.SuggestionMissingCriticalSkills,
		types.SuggestionSkillDiversity,
		types.SuggestionCloudSkills,
		types.SuggestionTestingSkills,
		types.SuggestionSoftSkills,
	}, got)
}
