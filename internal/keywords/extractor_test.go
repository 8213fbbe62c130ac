package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

func TestExtractReturnsOnlyTaxonomyTerms(t *testing.T) {
	text := "Senior engineer with python, aws, kubernetes, strong communication " +
		"and a bachelor degree. Led and built microservices with docker."

	found := Extract(text)
	for _, c := range taxonomy.Categories {
		vocab := make(map[string]bool)
		for _, term := range taxonomy.Terms(c) {
			vocab[term] = true
		}
		for term := range found[c] {
			assert.Truef(t, vocab[term], "extractor returned %q, not in %s taxonomy", term, c)
		}
	}
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	found := Extract("Expert in PYTHON and Machine Learning")
	assert.True(t, found[taxonomy.TechnicalSkills]["python"])
	assert.True(t, found[taxonomy.TechnicalSkills]["machine learning"])
}

func TestExtractWordBoundaries(t *testing.T) {
	// "azure" inside a larger phrase still matches as a whole word.
	found := Extract("experience with microsoft azure deployments")
	assert.True(t, found[taxonomy.TechnicalSkills]["azure"])

	// "javascript" must not trigger the shorter term "java".
	found = Extract("wrote javascript for the frontend")
	assert.True(t, found[taxonomy.TechnicalSkills]["javascript"])
	assert.False(t, found[taxonomy.TechnicalSkills]["java"])
}

func TestExtractMultiWordPhrases(t *testing.T) {
	found := Extract("built a cloud computing platform")
	assert.True(t, found[taxonomy.TechnicalSkills]["cloud computing"])

	found = Extract("cloud provider experience")
	assert.False(t, found[taxonomy.TechnicalSkills]["cloud computing"])
}

func TestExtractStemFallback(t *testing.T) {
	// "collaborated" in text should surface the taxonomy noun "collaboration".
	found := Extract("collaborated with designers and product managers")
	assert.True(t, found[taxonomy.SoftSkills]["collaboration"])

	// "mentoring" should surface via the stem of "mentoring" itself and the
	// verb "mentored" via the stem of "mentored".
	found = Extract("mentoring junior engineers")
	assert.True(t, found[taxonomy.SoftSkills]["mentoring"])
	assert.True(t, found[taxonomy.ActionVerbs]["mentored"])
}

func TestStemOf(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"collaboration", "collabor"}, // esiond strips "ion", at strips "at"
		{"mentoring", "mentor"},
		{"communication", "communic"},
		{"led", "l"},   // too short for the fallback
		{"java", "jav"}, // too short for the fallback
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stemOf(tt.term), "stem of %q", tt.term)
	}
}

func TestExtractEmptyText(t *testing.T) {
	found := Extract("")
	require.Len(t, found, len(taxonomy.Categories))
	for _, c := range taxonomy.Categories {
		assert.Empty(t, found[c])
	}
}

func TestSortedAndCount(t *testing.T) {
	found := Extract("docker and aws and kubernetes")
	assert.Equal(t, 3, found.Count(taxonomy.TechnicalSkills))
	assert.Equal(t, []string{"aws", "docker", "kubernetes"}, found.Sorted(taxonomy.TechnicalSkills))
}

func TestFromLists(t *testing.T) {
	kw := FromLists(map[string][]string{
		"technical_skills": {"AWS", "python"},
		"action_verbs":     {"led"},
		"unknown_category": {"ignored"},
	})
	assert.True(t, kw[taxonomy.TechnicalSkills]["aws"])
	assert.True(t, kw[taxonomy.TechnicalSkills]["python"])
	assert.True(t, kw[taxonomy.ActionVerbs]["led"])
	assert.Empty(t, kw[taxonomy.SoftSkills])
}
