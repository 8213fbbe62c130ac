// Package keywords extracts taxonomy terms from free text using word-boundary
// matching with a stemming fallback for common English word forms.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

// minStemLength is the shortest stem the fallback pattern may use. Shorter
// stems match too loosely to be useful (e.g. "led" would stem to "l").
const minStemLength = 4

// compiledTerm holds the precompiled patterns for one taxonomy term.
type compiledTerm struct {
	term  string
	exact *regexp.Regexp
	stem  *regexp.Regexp // nil when the term's stem is too short
}

// compiled maps each category to its precompiled term patterns. Built once at
// init; immutable afterwards, so extraction is safe for concurrent use.
var compiled = make(map[taxonomy.Category][]compiledTerm, len(taxonomy.Categories))

func init() {
	for _, c := range taxonomy.Categories {
		terms := taxonomy.Terms(c)
		patterns := make([]compiledTerm, 0, len(terms))
		for _, term := range terms {
			ct := compiledTerm{
				term:  term,
				exact: regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`),
			}
			if stem := stemOf(term); len(stem) >= minStemLength {
				ct.stem = regexp.MustCompile(`\b` + regexp.QuoteMeta(stem) + `\w*\b`)
			}
			patterns = append(patterns, ct)
		}
		compiled[c] = patterns
	}
}

// stemOf trims common English suffixes from a term so that noun forms like
// "collaboration" can match verb forms like "collaborate" or "collaborating".
// The trim order (character set "esiond", then "at", then "ing") is a
// documented contract; changing it changes which words match.
func stemOf(term string) string {
	stem := strings.TrimRight(term, "esiond")
	stem = strings.TrimRight(stem, "at")
	return strings.TrimRight(stem, "ing")
}

// Keywords maps each category to the set of taxonomy terms found in a text.
type Keywords map[taxonomy.Category]map[string]bool

// New returns a Keywords value with an empty set for every category.
func New() Keywords {
	kw := make(Keywords, len(taxonomy.Categories))
	for _, c := range taxonomy.Categories {
		kw[c] = make(map[string]bool)
	}
	return kw
}

// Extract scans text and returns, per category, the set of taxonomy terms
// present. Matching is case-insensitive; empty text yields all-empty sets.
func Extract(text string) Keywords {
	lower := strings.ToLower(text)
	found := New()
	for _, c := range taxonomy.Categories {
		for _, ct := range compiled[c] {
			if ct.matches(lower) {
				found[c][ct.term] = true
			}
		}
	}
	return found
}

// matches reports whether the term is present in the lowercased text, either
// as an exact word-boundary match or via the stem fallback.
func (ct compiledTerm) matches(lower string) bool {
	if ct.exact.MatchString(lower) {
		return true
	}
	return ct.stem != nil && ct.stem.MatchString(lower)
}

// Count returns the number of distinct terms found for a category.
func (kw Keywords) Count(c taxonomy.Category) int {
	return len(kw[c])
}

// Sorted returns the category's terms as an alphabetically sorted slice.
func (kw Keywords) Sorted(c taxonomy.Category) []string {
	terms := make([]string, 0, len(kw[c]))
	for term := range kw[c] {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Lists converts to a wire representation keyed by category name, with each
// category's terms alphabetically sorted.
func (kw Keywords) Lists() map[string][]string {
	out := make(map[string][]string, len(taxonomy.Categories))
	for _, c := range taxonomy.Categories {
		out[c.String()] = kw.Sorted(c)
	}
	return out
}

// FromLists builds a Keywords value from a wire representation keyed by
// category name. Unknown category names are ignored.
func FromLists(lists map[string][]string) Keywords {
	kw := New()
	for name, terms := range lists {
		c, ok := taxonomy.ParseCategory(name)
		if !ok {
			continue
		}
		for _, term := range terms {
			kw[c][strings.ToLower(term)] = true
		}
	}
	return kw
}
