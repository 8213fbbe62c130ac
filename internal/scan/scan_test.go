package scan

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john@example.com | 555-123-4567

Experience
Led a platform team building services in Go and Python on AWS.
Implemented CI/CD pipelines with Docker and Kubernetes.
Collaborated with product managers on the roadmap.

Education
B.S. in Computer Science

Skills
Go, Python, AWS, Docker, Kubernetes, PostgreSQL, communication`

const sampleJob = `We are hiring a backend engineer.
Requirements: Go, Python, AWS, Docker, Kubernetes, Terraform.
Strong communication and leadership skills expected.`

func TestRunProducesFullReport(t *testing.T) {
	report := Run(context.Background(), sampleResume, sampleJob, Options{})

	require.NotNil(t, report.Match)
	require.NotNil(t, report.Formatting)
	assert.Nil(t, report.Suggestions)

	assert.Greater(t, report.Match.OverallScore, 0.0)
	assert.Contains(t, report.Match.MissingKeywords["technical_skills"], "terraform")
	assert.Greater(t, report.ResumeWordCount, 30)
}

func TestRunWithRuleBasedSuggestions(t *testing.T) {
	report := Run(context.Background(), sampleResume, sampleJob, Options{WithSuggestions: true})

	require.NotNil(t, report.Suggestions)
	assert.False(t, report.Suggestions.AIPowered)
	assert.NotEmpty(t, report.Suggestions.Summary)
}

func TestRunWithSuggestClient(t *testing.T) {
	client := &fakeClient{response: `{"summary": "Solid match for this role."}`}
	report := Run(context.Background(), sampleResume, sampleJob, Options{
		Suggester:       client,
		WithSuggestions: true,
	})

	require.NotNil(t, report.Suggestions)
	assert.True(t, report.Suggestions.AIPowered)
	assert.Equal(t, "Solid match for this role.", report.Suggestions.Summary)
}

func TestRunEmptyInputs(t *testing.T) {
	report := Run(context.Background(), "", "", Options{})

	require.NotNil(t, report.Match)
	// The zero-verb action-verb score floors the overall at 10.
	assert.Equal(t, 10.0, report.Match.OverallScore)
	assert.Equal(t, 0, report.Match.TotalJobKeywords)
	assert.Equal(t, 0, report.ResumeWordCount)
	assert.NotEmpty(t, report.Formatting.Issues)
}

func TestRunMatchAgreesWithSequentialScoring(t *testing.T) {
	report := Run(context.Background(), sampleResume, sampleJob, Options{})

	// Extraction order must not affect the result.
	again := Run(context.Background(), sampleResume, sampleJob, Options{})
	assert.Equal(t, report.Match.OverallScore, again.Match.OverallScore)
	assert.Equal(t, report.Match.MatchedKeywords, again.Match.MatchedKeywords)
}

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if !strings.Contains(prompt, "resume") && !strings.Contains(prompt, "Resume") {
		return "", nil
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }
