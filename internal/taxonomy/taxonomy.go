// Package taxonomy defines the categorized keyword vocabularies used as the
// matching dictionary for resume and job description scanning.
package taxonomy

// Category identifies one of the tracked keyword categories.
type Category int

const (
	// TechnicalSkills covers languages, tools, platforms, and methodologies.
	TechnicalSkills Category = iota
	// SoftSkills covers interpersonal and organizational skills.
	SoftSkills
	// Certifications covers professional certification names.
	Certifications
	// Education covers degrees and fields of study.
	Education
	// ActionVerbs covers strong accomplishment verbs expected in resume bullets.
	ActionVerbs
)

// Categories lists every category in scoring order. Iterate this instead of
// hard-coding category lists so a new category cannot be silently skipped.
var Categories = []Category{
	TechnicalSkills,
	SoftSkills,
	Certifications,
	Education,
	ActionVerbs,
}

// categoryKeys maps categories to their JSON/wire names.
var categoryKeys = map[Category]string{
	TechnicalSkills: "technical_skills",
	SoftSkills:      "soft_skills",
	Certifications:  "certifications",
	Education:       "education",
	ActionVerbs:     "action_verbs",
}

// categoryWeights is the fixed contribution of each category to the overall
// weighted match score. Technical skills matter most for ATS filtering.
var categoryWeights = map[Category]float64{
	TechnicalSkills: 0.40,
	SoftSkills:      0.15,
	Certifications:  0.20,
	Education:       0.10,
	ActionVerbs:     0.15,
}

// String returns the wire name for the category.
func (c Category) String() string {
	return categoryKeys[c]
}

// Weight returns the category's contribution factor to the overall score.
// Weights across all categories sum to 1.0.
func (c Category) Weight() float64 {
	return categoryWeights[c]
}

// ParseCategory resolves a wire name back to its Category.
// The second return value is false for unknown names.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if categoryKeys[c] == name {
			return c, true
		}
	}
	return 0, false
}

// Terms returns the vocabulary for a category. The returned slice is shared,
// read-only data; callers must not modify it.
func Terms(c Category) []string {
	return vocabularies[c]
}
