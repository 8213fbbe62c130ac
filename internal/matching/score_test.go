package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/keywords"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

func keywordSet(c taxonomy.Category, terms ...string) keywords.Keywords {
	kw := keywords.New()
	for _, term := range terms {
		kw[c][term] = true
	}
	return kw
}

func numberedTerms(prefix string, n int) []string {
	terms := make([]string, n)
	for i := range terms {
		terms[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return terms
}

func TestScoreEmptyJobDescription(t *testing.T) {
	result := Score(keywords.New(), keywords.New())

	// The action-verb category has a synthetic total and always contributes,
	// so an all-empty job floors at the zero-verb score, not 0.
	assert.Equal(t, 10.0, result.OverallScore)
	assert.Equal(t, 0.0, result.SimpleMatchRatio)
	assert.Equal(t, 0, result.TotalJobKeywords)
	assert.Equal(t, 0, result.TotalMatched)
	assert.Equal(t, 0, result.TotalMissing)

	verbs := result.CategoryScores["action_verbs"]
	assert.Equal(t, 10.0, verbs.Score)
	assert.Equal(t, 8, verbs.Total)
}

func TestScorePerfectMatch(t *testing.T) {
	job := keywords.New()
	resume := keywords.New()
	for _, c := range taxonomy.Categories {
		if c == taxonomy.ActionVerbs {
			continue
		}
		job[c]["alpha"] = true
		job[c]["beta"] = true
		resume[c]["alpha"] = true
		resume[c]["beta"] = true
	}
	// Eight distinct verbs hit the top of the action-verb scale.
	for _, verb := range taxonomy.Terms(taxonomy.ActionVerbs)[:8] {
		resume[taxonomy.ActionVerbs][verb] = true
	}

	result := Score(resume, job)
	assert.Equal(t, 100.0, result.OverallScore)
	for _, c := range taxonomy.Categories {
		assert.Equal(t, 100.0, result.CategoryScores[c.String()].Score, c.String())
	}
}

func TestScoreTechnicalCurve(t *testing.T) {
	// 20 job skills, 10 matched: curve gives (0.5^0.7)*100 = 61.6, not 50.
	terms := numberedTerms("skill", 20)
	job := keywordSet(taxonomy.TechnicalSkills, terms...)
	resume := keywordSet(taxonomy.TechnicalSkills, terms[:10]...)

	result := Score(resume, job)
	assert.Equal(t, 61.6, result.CategoryScores["technical_skills"].Score)
	assert.Equal(t, 50.0, result.SimpleMatchRatio)
}

func TestScoreTechnicalLinearBelowThreshold(t *testing.T) {
	// Job total of 3 stays on the linear ratio: 2/3 = 66.7.
	job := keywordSet(taxonomy.TechnicalSkills, "aws", "python", "docker")
	resume := keywordSet(taxonomy.TechnicalSkills, "aws", "python")

	result := Score(resume, job)
	assert.Equal(t, 66.7, result.CategoryScores["technical_skills"].Score)
	assert.Equal(t, 2, result.CategoryScores["technical_skills"].Matched)
	assert.Equal(t, 3, result.CategoryScores["technical_skills"].Total)
}

func TestScoreOnlyContributingCategoriesWeighted(t *testing.T) {
	// Technical skills is the only category the job populates: the overall
	// score equals its category score after weight renormalization, except
	// for the action-verb contribution from the resume itself.
	job := keywordSet(taxonomy.TechnicalSkills, "aws", "python", "docker")
	resume := keywordSet(taxonomy.TechnicalSkills, "aws", "python")

	result := Score(resume, job)

	// Action verbs always contribute (synthetic total), with zero verbs the
	// resume scores 10 there: (66.7*0.40 + 10*0.15) / 0.55 = 51.2.
	assert.Equal(t, 51.2, result.OverallScore)

	// Empty categories report a vacuous 100 with zero totals and no keyword
	// lists.
	softSkills := result.CategoryScores["soft_skills"]
	assert.Equal(t, 100.0, softSkills.Score)
	assert.Equal(t, 0, softSkills.Total)
	assert.NotContains(t, result.MatchedKeywords, "soft_skills")
	assert.NotContains(t, result.MissingKeywords, "soft_skills")
}

func TestScoreActionVerbScale(t *testing.T) {
	verbs := taxonomy.Terms(taxonomy.ActionVerbs)
	tests := []struct {
		count int
		want  float64
	}{
		{0, 10},
		{1, 40},
		{2, 40},
		{3, 60},
		{4, 60},
		{5, 80},
		{7, 80},
		{8, 100},
		{12, 100},
	}
	for _, tt := range tests {
		resume := keywordSet(taxonomy.ActionVerbs, verbs[:tt.count]...)
		result := Score(resume, keywords.New())

		cs := result.CategoryScores["action_verbs"]
		assert.Equalf(t, tt.want, cs.Score, "%d verbs", tt.count)
		assert.Equal(t, tt.count, cs.Matched)

		// Total displays the target until the resume exceeds it.
		wantTotal := tt.count
		if wantTotal < 8 {
			wantTotal = 8
		}
		assert.Equal(t, wantTotal, cs.Total)

		// Missing and extra are never reported for action verbs.
		assert.Empty(t, result.MissingKeywords["action_verbs"])
		assert.Empty(t, result.ExtraKeywords["action_verbs"])
	}
}

func TestScoreSetAlgebra(t *testing.T) {
	job := keywordSet(taxonomy.TechnicalSkills, "aws", "python", "docker", "kafka")
	resume := keywordSet(taxonomy.TechnicalSkills, "aws", "python", "terraform")

	result := Score(resume, job)

	matched := result.MatchedKeywords["technical_skills"]
	missing := result.MissingKeywords["technical_skills"]
	extra := result.ExtraKeywords["technical_skills"]

	assert.Equal(t, []string{"aws", "python"}, matched)
	assert.Equal(t, []string{"docker", "kafka"}, missing)
	assert.Equal(t, []string{"terraform"}, extra)

	// matched ∪ missing = job, matched ∪ extra = resume.
	assert.ElementsMatch(t, append(append([]string{}, matched...), missing...), []string{"aws", "docker", "kafka", "python"})
	assert.ElementsMatch(t, append(append([]string{}, matched...), extra...), []string{"aws", "python", "terraform"})
}

func TestScoreSimpleRatioExcludesActionVerbs(t *testing.T) {
	verbs := taxonomy.Terms(taxonomy.ActionVerbs)
	job := keywordSet(taxonomy.TechnicalSkills, "aws", "python")
	resume := keywordSet(taxonomy.TechnicalSkills, "aws")
	for _, verb := range verbs[:8] {
		resume[taxonomy.ActionVerbs][verb] = true
	}

	result := Score(resume, job)
	assert.Equal(t, 50.0, result.SimpleMatchRatio)
	assert.Equal(t, 2, result.TotalJobKeywords)
	assert.Equal(t, 1, result.TotalMatched)
	assert.Equal(t, 1, result.TotalMissing)
}

func TestScoreEndToEndExtraction(t *testing.T) {
	jobKeywords := keywords.Extract("We need aws, python and docker experience.")
	resumeKeywords := keywords.Extract("Cloud engineer using aws and python daily.")

	require.Equal(t, 3, jobKeywords.Count(taxonomy.TechnicalSkills))

	result := Score(resumeKeywords, jobKeywords)
	assert.Equal(t, 66.7, result.CategoryScores["technical_skills"].Score)
	assert.Equal(t, []string{"docker"}, result.MissingKeywords["technical_skills"])
}
