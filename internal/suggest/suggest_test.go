package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/matching"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func matchResult(score float64, missingTech ...string) *matching.Result {
	return &matching.Result{
		OverallScore: score,
		MissingKeywords: map[string][]string{
			"technical_skills": missingTech,
		},
	}
}

func TestGenerateNilClientFallsBack(t *testing.T) {
	suggestions := Generate(context.Background(), nil, "resume", "job", matchResult(72.5, "aws", "docker"))

	assert.False(t, suggestions.AIPowered)
	assert.Contains(t, suggestions.Summary, "72.5%")
	assert.Len(t, suggestions.KeywordSuggestions, 2)
	assert.NotEmpty(t, suggestions.QuickWins)
}

func TestGenerateParsesValidResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"summary": "Solid technical match with gaps in certifications.",
		"strengths": ["Strong cloud background"],
		"critical_improvements": [
			{"section": "Skills", "issue": "Missing docker", "suggestion": "Add container experience", "priority": "high"}
		],
		"keyword_suggestions": [
			{"keyword": "docker", "where_to_add": "Skills", "how_to_add": "List docker under tools"}
		],
		"quick_wins": ["Add docker"]
	}`}

	suggestions := Generate(context.Background(), client, "resume", "job", matchResult(70))
	require.True(t, suggestions.AIPowered)
	assert.Equal(t, "Solid technical match with gaps in certifications.", suggestions.Summary)
	require.Len(t, suggestions.CriticalImprovements, 1)
	assert.Equal(t, "high", suggestions.CriticalImprovements[0].Priority)
	assert.Empty(t, suggestions.ParseNote)
}

func TestGenerateAPIErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}

	suggestions := Generate(context.Background(), client, "resume", "job", matchResult(55, "kafka"))
	assert.False(t, suggestions.AIPowered)
	assert.NotEmpty(t, suggestions.APIError)
	assert.Contains(t, suggestions.Summary, "55.0%")
}

func TestGenerateSalvagesUnparseableResponse(t *testing.T) {
	client := &fakeClient{response: "The resume looks decent overall. Needs work on keywords."}

	suggestions := Generate(context.Background(), client, "resume", "job", matchResult(60))
	assert.True(t, suggestions.AIPowered)
	assert.NotEmpty(t, suggestions.ParseNote)
	assert.Contains(t, suggestions.Summary, "resume looks decent")
}

func TestFallbackSummaryBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{85, "strong match"},
		{65, "decent match"},
		{45, "meaningful work"},
		{20, "keyword alignment"},
	}
	for _, tt := range tests {
		suggestions := Fallback(matchResult(tt.score))
		assert.Containsf(t, suggestions.Summary, tt.want, "score %.0f", tt.score)
	}
}

func TestFallbackCapsKeywordSuggestions(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f", "g"}
	suggestions := Fallback(matchResult(50, missing...))
	assert.Len(t, suggestions.KeywordSuggestions, 5)
}

func TestCleanJSONBlock(t *testing.T) {
	wrapped := "```json\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, CleanJSONBlock(wrapped))

	bare := `{"summary": "ok"}`
	assert.Equal(t, bare, CleanJSONBlock(bare))

	generic := "```\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, CleanJSONBlock(generic))
}

func TestExtractText(t *testing.T) {
	_, err := extractText(nil)
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	// A safety-blocked response has a candidate with nil Content.
	blocked := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	_, err = extractText(blocked)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")

	empty := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}
	_, err = extractText(empty)
	assert.Error(t, err)

	ok := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{
			Parts: []genai.Part{genai.Text(`{"summary"`), genai.Text(`: "ok"}`)},
		}}},
	}
	text, err := extractText(ok)
	require.NoError(t, err)
	assert.Equal(t, `{"summary": "ok"}`, text)
}

func TestValidateResponse(t *testing.T) {
	assert.NoError(t, validateResponse(`{"summary": "fine"}`))
	assert.Error(t, validateResponse(`{"strengths": ["no summary"]}`))
	assert.Error(t, validateResponse(`{"summary": 42}`))
	assert.Error(t, validateResponse("not json"))
}

func TestBuildPromptCapsInputs(t *testing.T) {
	longResume := strings.Repeat("r", maxResumeChars+500)
	longJob := strings.Repeat("j", maxJobChars+500)

	prompt := buildPrompt(longResume, longJob, matchResult(50, "aws"))
	assert.Less(t, len(prompt), maxResumeChars+maxJobChars+2500)
	assert.Contains(t, prompt, "Missing Technical Skills: aws")
	assert.Contains(t, prompt, "Missing Soft Skills: None")
}
