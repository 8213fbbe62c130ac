// Package formatting checks resume text for common ATS compatibility problems
// using deterministic, rule-based pattern matching.
package formatting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/keywords"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

// Word-count bounds for resume length advice.
const (
	minWordCount = 150
	maxWordCount = 1200
)

// minActionVerbs is the smallest distinct action-verb count that avoids a
// weak-language warning.
const minActionVerbs = 3

var (
	nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]`)
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`[+]?[\d\s\-()]{10,}`)
)

// commonSections are section headers recorded for display when present.
var commonSections = []string{
	"experience", "education", "skills", "summary", "objective", "projects", "certifications",
}

// requiredSections must be present, or a warning is raised.
var requiredSections = []string{"experience", "education", "skills"}

// IssueType classifies the severity of a formatting issue.
type IssueType string

const (
	IssueCritical IssueType = "critical"
	IssueWarning  IssueType = "warning"
	IssueInfo     IssueType = "info"
)

// Issue is a single formatting problem found in the resume.
type Issue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
	Detail  string    `json:"detail"`
}

// ContactInfo records which contact fields were detected.
type ContactInfo struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	LinkedIn bool `json:"linkedin"`
}

// Report aggregates the formatting check results for one resume.
type Report struct {
	Issues        []Issue     `json:"issues"`
	Tips          []string    `json:"tips"`
	SectionsFound []string    `json:"sections_found"`
	WordCount     int         `json:"word_count"`
	ContactInfo   ContactInfo `json:"has_contact_info"`
}

// Check scans resume text for ATS formatting problems. Every check is
// independent; the input is never an error, only more or fewer findings.
func Check(resumeText string) *Report {
	report := &Report{
		Issues:        []Issue{},
		Tips:          []string{},
		SectionsFound: []string{},
	}
	lower := strings.ToLower(resumeText)

	if nonASCIIPattern.MatchString(resumeText) {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueWarning,
			Message: "Special characters or symbols detected",
			Detail:  "Some ATS systems struggle with emojis, icons, or non-standard characters. Consider replacing them with plain text.",
		})
	}

	for _, section := range commonSections {
		if strings.Contains(lower, section) {
			report.SectionsFound = append(report.SectionsFound, section)
		}
	}
	var missingSections []string
	for _, section := range requiredSections {
		if !strings.Contains(lower, section) {
			missingSections = append(missingSections, titleCase(section))
		}
	}
	if len(missingSections) > 0 {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueWarning,
			Message: "Missing standard section headers: " + strings.Join(missingSections, ", "),
			Detail:  "ATS systems look for standard section headers to categorize your information. Make sure you have clearly labeled sections.",
		})
	}

	report.WordCount = len(strings.Fields(resumeText))
	if report.WordCount < minWordCount {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueWarning,
			Message: "Resume seems very short",
			Detail:  fmt.Sprintf("Your resume is about %d words. Most effective resumes are 400-800 words. Consider adding more detail about your accomplishments.", report.WordCount),
		})
	} else if report.WordCount > maxWordCount {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueInfo,
			Message: "Resume is quite long",
			Detail:  fmt.Sprintf("Your resume is about %d words. For most roles, 1-2 pages (400-800 words) is ideal. Consider trimming less relevant details.", report.WordCount),
		})
	}

	report.ContactInfo = ContactInfo{
		Email:    emailPattern.MatchString(resumeText),
		Phone:    phonePattern.MatchString(resumeText),
		LinkedIn: strings.Contains(lower, "linkedin"),
	}
	if !report.ContactInfo.Email {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueCritical,
			Message: "No email address detected",
			Detail:  "Make sure your email address is clearly visible at the top of your resume.",
		})
	}
	if !report.ContactInfo.Phone {
		report.Tips = append(report.Tips, "Consider adding a phone number to your contact information.")
	}
	if !report.ContactInfo.LinkedIn {
		report.Tips = append(report.Tips, "Adding your LinkedIn profile URL can strengthen your application.")
	}

	verbCount := keywords.Extract(resumeText).Count(taxonomy.ActionVerbs)
	if verbCount < minActionVerbs {
		report.Issues = append(report.Issues, Issue{
			Type:    IssueWarning,
			Message: "Few action verbs detected",
			Detail:  "Strong resumes use action verbs (led, built, improved, managed) to describe accomplishments. Consider rewriting bullet points to start with impactful verbs.",
		})
	}

	report.Tips = append(report.Tips,
		"Use a clean, single-column layout for best ATS compatibility.",
		"Avoid headers and footers; some ATS systems can't read them.",
		"Save as PDF unless the application specifically requests DOCX.",
	)

	return report
}

// titleCase capitalizes the first letter of a lowercase section name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
