package resume

import (
	"regexp"
	"strings"
)

var (
	// emailPattern matches the standard local@domain.tld shape.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePattern matches North-American phone numbers with an optional
	// country code and the common separator characters.
	phonePattern = regexp.MustCompile(`\+?1?\s*\(?\d{3}\)?[-.\s]*\d{3}[-.\s]*\d{4}`)

	// locationPattern matches "City, ST" and "City, ST, Country" shapes
	// with a 2-3 letter uppercase region code.
	locationPattern = regexp.MustCompile(`[A-Za-z][A-Za-z .'-]*,\s*[A-Z]{2,3}(?:,\s*[A-Za-z .'-]+)?`)

	// urlPattern matches explicit http(s) URLs and bare host/path forms
	// like "linkedin.com/in/someone".
	urlPattern = regexp.MustCompile(`(?i)https?://[^\s]+|[a-z0-9.-]+\.[a-z]{2,}(?:/[^\s]*)?`)
)

// contactRules is the ordered extraction table for ContactInfo. Rules are
// independent of each other and evaluated top-down; each takes the first
// plausible match in the text and leaves its field empty when nothing
// matches. The order here is the documented contract.
var contactRules = []struct {
	field   string
	extract func(text string) string
}{
	{"name", extractName},
	{"email", firstMatch(emailPattern)},
	{"phone", firstMatch(phonePattern)},
	{"location", firstMatch(locationPattern)},
	{"linkedin", firstURLContaining("linkedin")},
	{"github", firstURLContaining("github")},
}

// ExtractContact recovers contact information from the full resume text.
// It is not section-scoped: the fields it looks for typically sit above the
// first recognized header.
func ExtractContact(text string) ContactInfo {
	var c ContactInfo
	for _, rule := range contactRules {
		value := rule.extract(text)
		switch rule.field {
		case "name":
			c.Name = value
		case "email":
			c.Email = value
		case "phone":
			c.Phone = value
		case "location":
			c.Location = value
		case "linkedin":
			c.LinkedIn = value
		case "github":
			c.GitHub = value
		}
	}
	return c
}

// extractName returns the first line that is non-empty, contains no digits,
// and has at most three whitespace-separated tokens.
func extractName(text string) string {
	for _, line := range Lines(text) {
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, "0123456789") {
			continue
		}
		if len(strings.Fields(line)) > 3 {
			continue
		}
		return line
	}
	return ""
}

// firstMatch builds a rule that returns the first trimmed match of re.
func firstMatch(re *regexp.Regexp) func(string) string {
	return func(text string) string {
		return strings.TrimSpace(re.FindString(text))
	}
}

// firstURLContaining builds a rule that scans URL-like substrings and
// returns the first one containing needle (case-insensitive).
func firstURLContaining(needle string) func(string) string {
	return func(text string) string {
		for _, url := range urlPattern.FindAllString(text, -1) {
			if strings.Contains(strings.ToLower(url), needle) {
				return strings.TrimRight(url, ".,;")
			}
		}
		return ""
	}
}
