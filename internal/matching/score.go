// Package matching computes the weighted ATS match score between a resume's
// and a job description's extracted keyword sets.
package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-scanner/internal/keywords"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

// Action-verb scale: resumes are scored on their own use of strong verbs, not
// against the job description, since job postings rarely contain them.
const (
	verbTargetCount = 8
	verbScoreFull   = 100
	verbScoreGood   = 80
	verbScoreFair   = 60
	verbScoreWeak   = 40
	verbScoreNone   = 10
)

// Technical-skill lists longer than curveThreshold get a concave score curve
// (ratio^curveExponent) instead of the linear ratio.
const (
	curveThreshold = 8
	curveExponent  = 0.7
)

// CategoryScore is the per-category scoring result.
type CategoryScore struct {
	Score   float64 `json:"score"`
	Matched int     `json:"matched"`
	Total   int     `json:"total"`
	Weight  float64 `json:"weight"`
}

// Result is the full match breakdown between a resume and a job description.
// OverallScore is the weight-normalized mean over categories the job
// description actually populates; SimpleMatchRatio is the plain unweighted
// keyword ratio. The two are computed independently.
type Result struct {
	OverallScore     float64                  `json:"overall_score"`
	SimpleMatchRatio float64                  `json:"simple_match_ratio"`
	TotalJobKeywords int                      `json:"total_job_keywords"`
	TotalMatched     int                      `json:"total_matched"`
	TotalMissing     int                      `json:"total_missing"`
	CategoryScores   map[string]CategoryScore `json:"category_scores"`
	MatchedKeywords  map[string][]string      `json:"matched_keywords"`
	MissingKeywords  map[string][]string      `json:"missing_keywords"`
	ExtraKeywords    map[string][]string      `json:"extra_keywords"`
}

// Score computes the match between resume and job keyword sets. It is total
// over its inputs: a job description with no keywords anywhere is never an
// error; the action-verb category still contributes, so the overall score
// floors at the zero-verb score rather than 0.
func Score(resume, job keywords.Keywords) *Result {
	result := &Result{
		CategoryScores:  make(map[string]CategoryScore, len(taxonomy.Categories)),
		MatchedKeywords: make(map[string][]string),
		MissingKeywords: make(map[string][]string),
		ExtraKeywords:   make(map[string][]string),
	}

	totalJobKeywords := 0
	totalMatched := 0

	for _, c := range taxonomy.Categories {
		jobSet := job[c]
		resumeSet := resume[c]
		key := c.String()

		if c == taxonomy.ActionVerbs {
			result.CategoryScores[key] = scoreActionVerbs(resumeSet)
			result.MatchedKeywords[key] = sortedTerms(resumeSet)
			result.MissingKeywords[key] = []string{}
			result.ExtraKeywords[key] = []string{}
			continue
		}

		if len(jobSet) == 0 {
			// An absent requirement cannot be failed. The category is
			// excluded from the overall mean via Total == 0.
			result.CategoryScores[key] = CategoryScore{
				Score:   100,
				Matched: 0,
				Total:   0,
				Weight:  c.Weight(),
			}
			continue
		}

		matched := intersect(jobSet, resumeSet)
		missing := subtract(jobSet, resumeSet)
		extra := subtract(resumeSet, jobSet)

		score := linearScore(len(matched), len(jobSet))
		if c == taxonomy.TechnicalSkills && len(jobSet) > curveThreshold {
			score = curvedScore(len(matched), len(jobSet))
		}

		result.CategoryScores[key] = CategoryScore{
			Score:   round1(score),
			Matched: len(matched),
			Total:   len(jobSet),
			Weight:  c.Weight(),
		}
		result.MatchedKeywords[key] = matched
		result.MissingKeywords[key] = missing
		result.ExtraKeywords[key] = extra

		totalJobKeywords += len(jobSet)
		totalMatched += len(matched)
	}

	// Weighted overall score over contributing categories only, normalized
	// by the sum of their weights. Action verbs always contribute since
	// their total is synthetic and never zero.
	weightedScore := 0.0
	totalWeight := 0.0
	for _, data := range result.CategoryScores {
		if data.Total > 0 {
			weightedScore += data.Score * data.Weight
			totalWeight += data.Weight
		}
	}
	if totalWeight > 0 {
		result.OverallScore = round1(weightedScore / totalWeight)
	}

	if totalJobKeywords > 0 {
		result.SimpleMatchRatio = round1(float64(totalMatched) / float64(totalJobKeywords) * 100)
	}
	result.TotalJobKeywords = totalJobKeywords
	result.TotalMatched = totalMatched
	result.TotalMissing = totalJobKeywords - totalMatched

	return result
}

// scoreActionVerbs rates the resume's own count of distinct action verbs
// against a fixed scale. Total is reported as the target count for display;
// above the target, the actual count is shown instead.
func scoreActionVerbs(resumeSet map[string]bool) CategoryScore {
	count := len(resumeSet)
	var score float64
	switch {
	case count >= 8:
		score = verbScoreFull
	case count >= 5:
		score = verbScoreGood
	case count >= 3:
		score = verbScoreFair
	case count >= 1:
		score = verbScoreWeak
	default:
		score = verbScoreNone
	}

	total := count
	if total < verbTargetCount {
		total = verbTargetCount
	}

	return CategoryScore{
		Score:   round1(score),
		Matched: count,
		Total:   total,
		Weight:  taxonomy.ActionVerbs.Weight(),
	}
}

func linearScore(matched, total int) float64 {
	return float64(matched) / float64(total) * 100
}

func curvedScore(matched, total int) float64 {
	ratio := float64(matched) / float64(total)
	return math.Min(100, math.Pow(ratio, curveExponent)*100)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sortedTerms(set map[string]bool) []string {
	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// intersect returns a sorted slice of terms present in both sets.
func intersect(a, b map[string]bool) []string {
	out := []string{}
	for term := range a {
		if b[term] {
			out = append(out, term)
		}
	}
	sort.Strings(out)
	return out
}

// subtract returns a sorted slice of terms in a but not in b.
func subtract(a, b map[string]bool) []string {
	out := []string{}
	for term := range a {
		if !b[term] {
			out = append(out, term)
		}
	}
	sort.Strings(out)
	return out
}
