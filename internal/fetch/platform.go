package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known job board, used to pick content selectors.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board from the URL host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "myworkdayjobs.com") || strings.Contains(host, "workday.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	default:
		return PlatformUnknown
	}
}

// ContentSelectors returns job-description selectors for a platform, most
// specific first.
func ContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{".job__description.body", ".job__description", "#content", ".job-post-container"}
	case PlatformLever:
		return []string{".posting-page", ".posting-description", ".section-wrapper", ".content"}
	case PlatformWorkday:
		return []string{"[data-automation-id='jobDescription']", ".gwt-HTML", ".job-description"}
	case PlatformLinkedIn:
		return []string{".description__text", ".show-more-less-html", ".jobs-description"}
	default:
		return []string{
			".job-description", ".job-content", "#job-description",
			".posting-content", ".job-details", "main", "article", ".content", "#content",
		}
	}
}

// NoiseSelectors returns elements to strip before extraction: application
// forms, similar-jobs rails, and share widgets common to job boards.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"#application-form", ".application-form", ".apply-button", ".apply-wrapper",
		".similar-jobs", ".related-jobs", ".share-buttons", ".social-share",
	}
	switch platform {
	case PlatformLever:
		return append(common, ".postings-btn-wrapper")
	case PlatformLinkedIn:
		return append(common, ".top-card-layout__cta-container", ".similar-jobs__list")
	default:
		return common
	}
}
