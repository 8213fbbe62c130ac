package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-scanner/internal/matching"
)

// Prompt input caps keep requests small; the analysis context matters more
// than the full documents.
const (
	maxResumeChars = 3000
	maxJobChars    = 2000
)

// Improvement is a prioritized fix for one resume section.
type Improvement struct {
	Section    string `json:"section"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// KeywordSuggestion tells the candidate where and how to add a missing keyword.
type KeywordSuggestion struct {
	Keyword    string `json:"keyword"`
	WhereToAdd string `json:"where_to_add"`
	HowToAdd   string `json:"how_to_add"`
}

// RewriteSuggestion proposes a rewrite approach for one section.
type RewriteSuggestion struct {
	Section           string `json:"section"`
	CurrentIssue      string `json:"current_issue"`
	SuggestedApproach string `json:"suggested_approach"`
}

// Suggestions is the suggestion payload returned to callers. AIPowered
// distinguishes LLM output from the rule-based fallback.
type Suggestions struct {
	Summary              string              `json:"summary"`
	Strengths            []string            `json:"strengths"`
	CriticalImprovements []Improvement       `json:"critical_improvements"`
	KeywordSuggestions   []KeywordSuggestion `json:"keyword_suggestions"`
	RewriteSuggestions   []RewriteSuggestion `json:"rewrite_suggestions"`
	QuickWins            []string            `json:"quick_wins"`
	AIPowered            bool                `json:"ai_powered"`
	ParseNote            string              `json:"parse_note,omitempty"`
	APIError             string              `json:"api_error,omitempty"`
}

// Generate produces suggestions for a scored scan. It never fails: with a nil
// client, or when the provider errors, it falls back to rule-based
// suggestions derived from the match result.
func Generate(ctx context.Context, client Client, resumeText, jobText string, result *matching.Result) *Suggestions {
	if client == nil {
		return Fallback(result)
	}

	prompt := buildPrompt(resumeText, jobText, result)
	response, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("suggestion generation failed: %v", err)
		fallback := Fallback(result)
		fallback.APIError = "AI analysis temporarily unavailable. Showing rule-based suggestions."
		return fallback
	}

	suggestions, err := parseResponse(response)
	if err != nil {
		log.Printf("suggestion parse failed: %v", err)
		return salvage(response)
	}
	suggestions.AIPowered = true
	return suggestions
}

// buildPrompt composes the analysis prompt from the documents and the
// keyword-match breakdown.
func buildPrompt(resumeText, jobText string, result *matching.Result) string {
	missingTech := capList(result.MissingKeywords["technical_skills"], 15)
	missingSoft := capList(result.MissingKeywords["soft_skills"], 10)
	missingCerts := capList(result.MissingKeywords["certifications"], 5)

	return fmt.Sprintf(`You are an expert career coach and ATS (Applicant Tracking System) optimization specialist.
Today's date is %s. Any earlier dates are in the PAST, not the future. Do NOT flag past dates as fake or future-dated.

Analyze this resume against the job description and provide specific, actionable suggestions.

RESUME:
%s

JOB DESCRIPTION:
%s

KEYWORD ANALYSIS RESULTS:
- Overall Match Score: %.1f%%
- Missing Technical Skills: %s
- Missing Soft Skills: %s
- Missing Certifications: %s

IMPORTANT: Keep your response concise. Each string value should be 1-2 sentences max. Respond with ONLY valid JSON, no other text:
{
    "summary": "2-3 sentence overall assessment",
    "strengths": ["Strength 1", "Strength 2", "Strength 3"],
    "critical_improvements": [
        {"section": "Section name", "issue": "Brief issue", "suggestion": "Brief fix", "priority": "high"}
    ],
    "keyword_suggestions": [
        {"keyword": "Missing keyword", "where_to_add": "Section name", "how_to_add": "Brief example"}
    ],
    "rewrite_suggestions": [
        {"section": "Section name", "current_issue": "Brief issue", "suggested_approach": "Brief suggestion"}
    ],
    "quick_wins": ["Quick win 1", "Quick win 2", "Quick win 3"]
}

Limit: max 3 strengths, max 3 critical_improvements, max 4 keyword_suggestions, max 2 rewrite_suggestions, max 4 quick_wins. Keep each value SHORT.`,
		time.Now().Format("January 2006"),
		truncate(resumeText, maxResumeChars),
		truncate(jobText, maxJobChars),
		result.OverallScore,
		orNone(missingTech),
		orNone(missingSoft),
		orNone(missingCerts),
	)
}

// parseResponse validates the provider's JSON against the response schema and
// unmarshals it.
func parseResponse(response string) (*Suggestions, error) {
	if err := validateResponse(response); err != nil {
		return nil, err
	}
	var suggestions Suggestions
	if err := json.Unmarshal([]byte(response), &suggestions); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return &suggestions, nil
}

// salvage recovers a plain-text summary from an unparseable response so the
// user still sees the assessment.
func salvage(response string) *Suggestions {
	summary := response
	for _, artifact := range []string{"```json", "```", "{", `"summary":`, `"summary" :`} {
		summary = strings.ReplaceAll(summary, artifact, "")
	}
	summary = strings.Trim(strings.TrimSpace(summary), `"`)
	summary = strings.TrimSpace(summary)

	if len(summary) > 300 {
		if cut := strings.Index(summary[150:], "."); cut != -1 && 150+cut < 400 {
			summary = summary[:150+cut+1]
		} else {
			summary = summary[:300] + "..."
		}
	}

	return &Suggestions{
		Summary:              summary,
		Strengths:            []string{},
		CriticalImprovements: []Improvement{},
		KeywordSuggestions:   []KeywordSuggestion{},
		RewriteSuggestions:   []RewriteSuggestion{},
		QuickWins:            []string{},
		AIPowered:            true,
		ParseNote:            "AI analysis completed but structured parsing had issues.",
	}
}

// Fallback builds rule-based suggestions from the match result alone. Less
// personalized than the LLM path, still useful.
func Fallback(result *matching.Result) *Suggestions {
	suggestions := &Suggestions{
		Strengths:            []string{},
		CriticalImprovements: []Improvement{},
		KeywordSuggestions:   []KeywordSuggestion{},
		RewriteSuggestions:   []RewriteSuggestion{},
		QuickWins:            []string{},
	}

	score := result.OverallScore
	missingTech := result.MissingKeywords["technical_skills"]
	missingSoft := result.MissingKeywords["soft_skills"]
	missingCerts := result.MissingKeywords["certifications"]

	switch {
	case score >= 80:
		suggestions.Summary = fmt.Sprintf("Your resume is a strong match at %.1f%%. With a few targeted additions, you can push it even higher.", score)
	case score >= 60:
		suggestions.Summary = fmt.Sprintf("Your resume is a decent match at %.1f%%, but there are notable gaps. Focus on adding missing technical keywords and you'll see a significant improvement.", score)
	case score >= 40:
		suggestions.Summary = fmt.Sprintf("Your resume matches at %.1f%%. There's meaningful work needed to align it with this role. Focus on the missing technical skills and consider rewriting your summary section.", score)
	default:
		suggestions.Summary = fmt.Sprintf("Your resume currently matches at %.1f%%. This suggests either a significant skills gap or your resume isn't using the right terminology. Let's focus on keyword alignment first.", score)
	}

	for _, keyword := range capSlice(missingTech, 5) {
		suggestions.KeywordSuggestions = append(suggestions.KeywordSuggestions, KeywordSuggestion{
			Keyword:    keyword,
			WhereToAdd: "Skills section or relevant experience bullets",
			HowToAdd:   fmt.Sprintf("Add '%s' to your skills section. If you have experience with it, add a bullet point describing a project or task where you used %s.", keyword, keyword),
		})
	}

	if len(missingTech) > 0 {
		suggestions.QuickWins = append(suggestions.QuickWins,
			"Add these missing technical skills to your Skills section: "+capList(missingTech, 5))
	}
	if len(missingSoft) > 0 {
		suggestions.QuickWins = append(suggestions.QuickWins,
			"Incorporate these soft skills into your experience bullets: "+capList(missingSoft, 3))
	}
	if len(missingCerts) > 0 {
		suggestions.QuickWins = append(suggestions.QuickWins,
			"If you hold any of these certifications, add them prominently: "+capList(missingCerts, 3))
	}
	suggestions.QuickWins = append(suggestions.QuickWins,
		"Ensure your resume summary/objective mirrors the language of the job description.",
		"Start each experience bullet point with a strong action verb (Led, Built, Improved, Designed).",
	)

	return suggestions
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func capSlice(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}

func capList(items []string, max int) string {
	return strings.Join(capSlice(items, max), ", ")
}

func orNone(list string) string {
	if list == "" {
		return "None"
	}
	return list
}
